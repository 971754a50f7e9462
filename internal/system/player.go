// internal/system/player.go
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

// PlayerSystem runs the ship's auto-fire and post-hit invincibility clock.
// Fire rate is 1/AttackSpeed seconds per volley; the volley shape depends on
// the equipped weapon.
type PlayerSystem struct {
	ecs *entity.ECS
	rng *utils.PRNGService
}

func NewPlayerSystem(ecs *entity.ECS, rng *utils.PRNGService) *PlayerSystem {
	return &PlayerSystem{ecs: ecs, rng: rng}
}

func (s *PlayerSystem) Update(deltaTime float64) {
	player := s.ecs.Player
	if player == nil {
		return
	}
	pos, ok := s.ecs.Positions[s.ecs.PlayerID]
	if !ok {
		return
	}

	if player.InvincibilityTimer > 0 {
		player.InvincibilityTimer -= deltaTime
		if player.InvincibilityTimer < 0 {
			player.InvincibilityTimer = 0
		}
	}

	player.ShotTimer += deltaTime
	if player.ShotTimer < 1.0/player.Weapon.AttackSpeed {
		return
	}
	player.ShotTimer = 0
	s.shoot(player, pos)
}

func (s *PlayerSystem) shoot(player *component.Player, pos *component.Position) {
	count := player.TotalBulletCount()
	power := player.TotalAttackPower()
	muzzleY := pos.Y - config.MuzzleOffsetY

	switch player.Weapon.Type {
	case defs.WeaponMachineGun:
		// Barrels alternate left and right of the hull.
		speed := player.Weapon.BulletSpeed * (1.0 + player.BulletSpeedBonus)
		for i := 0; i < count; i++ {
			offsetX := -config.MachineGunOffsetX
			if i%2 == 1 {
				offsetX = config.MachineGunOffsetX
			}
			s.createBullet(
				utils.NewVec2(pos.X+offsetX, muzzleY),
				utils.NewVec2(0, -speed),
				power, player,
			)
		}

	case defs.WeaponShotgun:
		// Fan widens with the pellet count: 30° at two, 45° at three, 60° from four.
		var totalAngle float64
		switch {
		case count <= 1:
			totalAngle = 0
		case count == 2:
			totalAngle = 30
		case count == 3:
			totalAngle = 45
		default:
			totalAngle = 60
		}
		angleStep := 0.0
		if count > 1 {
			angleStep = totalAngle / float64(count-1)
		}
		speed := player.Weapon.BulletSpeed * (1.0 + player.BulletSpeedBonus)
		for i := 0; i < count; i++ {
			angle := (-totalAngle/2 + angleStep*float64(i)) * math.Pi / 180
			s.createBullet(
				utils.NewVec2(pos.X, muzzleY),
				utils.NewVec2(math.Sin(angle)*speed, -math.Cos(angle)*speed),
				power, player,
			)
		}

	case defs.WeaponLaser:
		// Parallel beams, 5px apart, at a fixed beam speed.
		speed := config.LaserBulletSpeed * (1.0 + player.BulletSpeedBonus)
		for i := 0; i < count; i++ {
			offsetX := 0.0
			if count > 1 {
				offsetX = (float64(i) - float64(count-1)/2.0) * 5.0
			}
			s.createBullet(
				utils.NewVec2(pos.X+offsetX, muzzleY),
				utils.NewVec2(0, -speed),
				power, player,
			)
		}
	}
}

// createBullet stamps the player's upgrade state onto a fresh bullet. The
// laser always carries the unlimited-piercing sentinel; crit is rolled per
// bullet, not per volley.
func (s *PlayerSystem) createBullet(pos, vel utils.Vec2, damage int, player *component.Player) types.EntityID {
	bullet := &component.Bullet{
		Damage:       damage,
		FromPlayer:   true,
		Ricochet:     player.Ricochet,
		Burning:      player.BurningDamage,
		ExplosionPct: player.ExplosionDamage,
	}
	if player.Weapon.Type == defs.WeaponLaser {
		bullet.Piercing = config.PiercingUnlimited
	} else {
		bullet.Piercing = player.Piercing
	}
	if s.rng.Chance(player.CritRate) {
		bullet.Damage = int(float64(bullet.Damage) * player.CritDamage)
		bullet.Crit = true
	}

	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: pos.X, Y: pos.Y}
	s.ecs.Velocities[id] = &component.Velocity{X: vel.X, Y: vel.Y}
	s.ecs.Bullets[id] = bullet

	shotColor := config.PlayerShotColor
	if bullet.Crit {
		shotColor = config.CritShotColor
	}
	s.ecs.Renderables[id] = &component.Renderable{Color: shotColor, Radius: 3}
	return id
}
