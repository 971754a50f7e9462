// internal/system/movement.go
package system

import (
	"math"

	"go-star-fighter/internal/component"
	"go-star-fighter/internal/config"
	"go-star-fighter/internal/defs"
	"go-star-fighter/internal/entity"
	"go-star-fighter/internal/types"
	"go-star-fighter/internal/utils"
)

// movementFunc advances one enemy for a tick.
type movementFunc func(s *MovementSystem, id types.EntityID, enemy *component.Enemy, pos *component.Position, vel *component.Velocity, deltaTime float64)

// movementScripts is the closed dispatch table of per-type movement.
var movementScripts = map[defs.EnemyType]movementFunc{
	defs.EnemyScout:   (*MovementSystem).moveDescent,
	defs.EnemyCarrier: (*MovementSystem).moveDescent,
	defs.EnemyHeavy:   (*MovementSystem).moveHeavy,
	defs.EnemyBoss:    (*MovementSystem).moveBoss,
}

// MovementSystem advances enemies, bullets and items, handles ricochet
// reflections and culls whatever drifts out of the arena.
type MovementSystem struct {
	ecs *entity.ECS
	rng *utils.PRNGService
}

func NewMovementSystem(ecs *entity.ECS, rng *utils.PRNGService) *MovementSystem {
	return &MovementSystem{ecs: ecs, rng: rng}
}

func (s *MovementSystem) Update(deltaTime float64) {
	for id, enemy := range s.ecs.Enemies {
		pos := s.ecs.Positions[id]
		vel := s.ecs.Velocities[id]
		if pos == nil || vel == nil {
			continue
		}
		enemy.MovementTimer += deltaTime
		enemy.AgeTimer += deltaTime
		if script, ok := movementScripts[enemy.Type]; ok {
			script(s, id, enemy, pos, vel, deltaTime)
		}
		s.cullEnemy(id, enemy, pos)
	}

	for id, bullet := range s.ecs.Bullets {
		pos := s.ecs.Positions[id]
		vel := s.ecs.Velocities[id]
		if pos == nil || vel == nil {
			continue
		}
		pos.X += vel.X * deltaTime * config.BulletUnitScale
		pos.Y += vel.Y * deltaTime * config.BulletUnitScale

		if bullet.Ricochet > 0 {
			s.ricochet(bullet, pos, vel)
		}
		s.cullBullet(id, bullet, pos)
	}

	for id := range s.ecs.Items {
		pos := s.ecs.Positions[id]
		vel := s.ecs.Velocities[id]
		if pos == nil || vel == nil {
			continue
		}
		pos.Y += vel.Y * deltaTime * config.ItemUnitScale
		if pos.Y >= config.ScreenHeight+config.CullMargin {
			s.ecs.RemoveEntity(id)
		}
	}
}

// moveDescent is the scout and carrier script: straight down.
func (s *MovementSystem) moveDescent(_ types.EntityID, _ *component.Enemy, pos *component.Position, vel *component.Velocity, deltaTime float64) {
	pos.Y += vel.Y * deltaTime * config.EnemyUnitScale
}

func (s *MovementSystem) moveHeavy(id types.EntityID, enemy *component.Enemy, pos *component.Position, vel *component.Velocity, deltaTime float64) {
	if !enemy.HasReachedZone {
		pos.Y += vel.Y * deltaTime * config.EnemyUnitScale
		if pos.Y >= enemy.TargetY {
			enemy.HasReachedZone = true
			vel.X, vel.Y = 0, 0
			enemy.MovementTimer = 0
		}
		return
	}

	switch enemy.MovementPattern {
	case 1: // horizontal bounce between margins
		if enemy.MovementTimer >= 3.0 {
			vel.X = -vel.X
			enemy.MovementTimer = 0
		}
		if vel.X == 0 {
			if s.rng.Bool() {
				vel.X = config.HeavySpeed
			} else {
				vel.X = -config.HeavySpeed
			}
		}
		pos.X += vel.X * deltaTime
		if pos.X <= config.HeavyMargin {
			pos.X = config.HeavyMargin
			vel.X = config.HeavySpeed
		}
		if pos.X >= config.ScreenWidth-config.HeavyMargin {
			pos.X = config.ScreenWidth - config.HeavyMargin
			vel.X = -config.HeavySpeed
		}

	case 2: // elliptical orbit around a fixed center
		centerY := (config.HeavyZoneTop + config.HeavyZoneBottom) / 2
		angle := enemy.MovementTimer // angular speed 1 rad/s
		pos.X = enemy.TargetX + config.HeavyOrbitRadius*math.Cos(angle)
		pos.Y = centerY + config.HeavyOrbitRadius*0.5*math.Sin(angle)

	case 3: // randomized zig-zag, re-targeted every two seconds
		if enemy.MovementTimer >= 2.0 {
			vel.X = config.HeavyZigzagSpeed
			if s.rng.Bool() {
				vel.X = -vel.X
			}
			vel.Y = config.HeavyZigzagSpeed * 0.5
			if s.rng.Bool() {
				vel.Y = -vel.Y
			}
			enemy.MovementTimer = 0
		}
		pos.X += vel.X * deltaTime
		pos.Y += vel.Y * deltaTime
		pos.X = utils.Clamp(pos.X, config.HeavyMargin, config.ScreenWidth-config.HeavyMargin)
		pos.Y = utils.Clamp(pos.Y, config.HeavyZoneTop, config.HeavyZoneBottom)

	case 4: // horizontal pursuit of the player, periodic vertical re-target
		if playerPos, ok := s.ecs.Positions[s.ecs.PlayerID]; ok {
			dx := playerPos.X - pos.X
			if math.Abs(dx) > 20.0 {
				direction := 1.0
				if dx < 0 {
					direction = -1.0
				}
				pos.X += direction * config.HeavyPursuit * deltaTime
			}
		}
		if enemy.MovementTimer >= 4.0 {
			enemy.TargetY = s.rng.Range(config.HeavyZoneTop, config.HeavyZoneBottom)
			enemy.MovementTimer = 0
		}
		dy := enemy.TargetY - pos.Y
		if math.Abs(dy) > 5.0 {
			direction := 1.0
			if dy < 0 {
				direction = -1.0
			}
			pos.Y += direction * 20.0 * deltaTime
		}
		pos.X = utils.Clamp(pos.X, config.HeavyMargin, config.ScreenWidth-config.HeavyMargin)
	}
}

func (s *MovementSystem) moveBoss(_ types.EntityID, enemy *component.Enemy, pos *component.Position, vel *component.Velocity, deltaTime float64) {
	if !enemy.HasReachedZone {
		pos.Y += vel.Y * deltaTime * config.EnemyUnitScale
		if pos.Y >= enemy.TargetY {
			enemy.HasReachedZone = true
			vel.X, vel.Y = 1, 0
			enemy.MovementTimer = 0
		}
		return
	}

	pos.X += vel.X * deltaTime * config.BossSpeed
	if pos.X <= config.BossMargin {
		pos.X = config.BossMargin
		vel.X = 1
	}
	if pos.X >= config.ScreenWidth-config.BossMargin {
		pos.X = config.ScreenWidth - config.BossMargin
		vel.X = -1
	}

	// Sinusoidal bob around the hold altitude.
	pos.Y = enemy.TargetY + config.BossBobAmplitude*math.Sin(enemy.MovementTimer*config.BossBobFrequency)
}

// ricochet reflects a bullet off the arena edges. Each axis reflection
// consumes one charge and forgets the bullet's hit history, so it can
// re-damage enemies it already struck before the bounce.
func (s *MovementSystem) ricochet(bullet *component.Bullet, pos *component.Position, vel *component.Velocity) {
	bounced := false
	if pos.X <= 0 || pos.X >= config.ScreenWidth {
		vel.X = -vel.X
		bullet.Ricochet--
		bounced = true
	}
	if pos.Y <= 0 || pos.Y >= config.ScreenHeight {
		vel.Y = -vel.Y
		bullet.Ricochet--
		bounced = true
	}
	if bounced {
		pos.X = utils.Clamp(pos.X, 0, config.ScreenWidth)
		pos.Y = utils.Clamp(pos.Y, 0, config.ScreenHeight)
		bullet.ClearHits()
	}
}

// cullBullet removes bullets that left the arena. Bullets holding ricochet
// charges are never culled by bounds; they die by piercing exhaustion only.
func (s *MovementSystem) cullBullet(id types.EntityID, bullet *component.Bullet, pos *component.Position) {
	if bullet.Ricochet > 0 {
		return
	}
	if pos.X < -config.CullMargin || pos.X > config.ScreenWidth+config.CullMargin ||
		pos.Y < -config.CullMargin || pos.Y > config.ScreenHeight+config.CullMargin {
		s.ecs.RemoveEntity(id)
	}
}

// cullEnemy removes enemies that drifted out. Heavies and the boss hold
// position once they reach their zone and only die in combat.
func (s *MovementSystem) cullEnemy(id types.EntityID, enemy *component.Enemy, pos *component.Position) {
	if (enemy.Type == defs.EnemyHeavy || enemy.Type == defs.EnemyBoss) && enemy.HasReachedZone {
		return
	}
	if pos.Y >= config.ScreenHeight+config.CullMargin ||
		pos.X <= -config.CullMargin || pos.X >= config.ScreenWidth+config.CullMargin {
		s.ecs.RemoveEntity(id)
	}
}
