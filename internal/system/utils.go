// internal/system/utils.go
package system

import (
	"go-star-fighter/internal/component"
	"go-star-fighter/internal/config"
	"go-star-fighter/internal/defs"
	"go-star-fighter/internal/entity"
	"go-star-fighter/internal/event"
	"go-star-fighter/internal/types"
	"go-star-fighter/internal/utils"
)

// CreateEnemy spawns an enemy of the given type at pos and returns its
// handle. The heavy picks one of its four movement patterns at random; the
// boss starts in phase one aiming for its hold altitude.
func CreateEnemy(ecs *entity.ECS, rng *utils.PRNGService, t defs.EnemyType, pos utils.Vec2) types.EntityID {
	def := defs.EnemyLibrary[t]

	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: pos.X, Y: pos.Y}
	ecs.Velocities[id] = &component.Velocity{X: 0, Y: def.DescentSpeed}
	ecs.Healths[id] = &component.Health{Value: def.Health, Max: def.Health}
	ecs.Renderables[id] = &component.Renderable{
		Color:     def.Visuals.Color,
		Radius:    def.Visuals.Radius,
		HasStroke: t == defs.EnemyBoss,
	}

	enemy := &component.Enemy{
		Type:            t,
		BulletDamage:    def.BulletDamage,
		CollisionDamage: def.CollisionDamage,
	}
	switch t {
	case defs.EnemyHeavy:
		enemy.MovementPattern = 1 + rng.Intn(4)
		enemy.TargetX = pos.X
		enemy.TargetY = config.HeavyZoneY
	case defs.EnemyBoss:
		enemy.MovementPattern = 1
		enemy.TargetX = pos.X
		enemy.TargetY = config.BossZoneY
		enemy.Phase = component.BossPhaseOne
	}
	ecs.Enemies[id] = enemy
	return id
}

// CreateEnemyBullet spawns a hostile bullet.
func CreateEnemyBullet(ecs *entity.ECS, pos, vel utils.Vec2, damage int) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: pos.X, Y: pos.Y}
	ecs.Velocities[id] = &component.Velocity{X: vel.X, Y: vel.Y}
	ecs.Bullets[id] = &component.Bullet{Damage: damage, FromPlayer: false}
	ecs.Renderables[id] = &component.Renderable{Color: config.EnemyShotColor, Radius: 4}
	return id
}

// ApplyDamage damages an enemy and reports whether it died of this hit.
// Invincible enemies ignore damage entirely; shields absorb before health.
// The boss shifts to phase two the first time its health drops to 75 or
// below while in phase one, gaining a temporary invincibility shield.
func ApplyDamage(ecs *entity.ECS, dispatcher *event.Dispatcher, id types.EntityID, damage int) bool {
	enemy, isEnemy := ecs.Enemies[id]
	health, hasHealth := ecs.Healths[id]
	if !isEnemy || !hasHealth {
		return false
	}
	if enemy.Invincible {
		return false
	}
	if health.Value <= 0 {
		return false
	}

	if enemy.ShieldHealth > 0 {
		enemy.ShieldHealth -= damage
		if enemy.ShieldHealth < 0 {
			enemy.ShieldHealth = 0
		}
	} else {
		health.Value -= damage
		if health.Value < 0 {
			health.Value = 0
		}
	}

	if enemy.Type == defs.EnemyBoss &&
		enemy.Phase == component.BossPhaseOne &&
		health.Value <= config.BossPhase2Health {
		enemy.Phase = component.BossPhaseTwo
		enemy.PhaseTimer = 0
		enemy.Invincible = true
		if dispatcher != nil {
			dispatcher.Dispatch(event.Event{Type: event.BossPhaseStarted, Data: component.BossPhaseTwo})
		}
	}

	return health.Value == 0
}

// DamagePlayer applies a hit to the player, honoring the damage-reduction
// bonus and the one-second invincibility window. Damage never drops below 1.
func DamagePlayer(ecs *entity.ECS, damage int) {
	player := ecs.Player
	if player == nil || player.InvincibilityTimer > 0 {
		return
	}
	health, ok := ecs.Healths[ecs.PlayerID]
	if !ok || health.Value <= 0 {
		return
	}

	actual := damage - player.DamageReduction
	if actual < 1 {
		actual = 1
	}
	health.Value -= actual
	if health.Value < 0 {
		health.Value = 0
	}
	player.InvincibilityTimer = config.PlayerInvincibility
}
