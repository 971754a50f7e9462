// internal/system/attack.go
package system

import (
	"math"

	"go-star-fighter/internal/component"
	"go-star-fighter/internal/config"
	"go-star-fighter/internal/defs"
	"go-star-fighter/internal/entity"
	"go-star-fighter/internal/utils"
)

// pendingBullet defers bullet creation until after the enemy loop so the
// component maps are not grown mid-iteration.
type pendingBullet struct {
	pos, vel utils.Vec2
	damage   int
}

// AttackSystem runs the per-type enemy fire scripts: the heavy's four-variant
// cycle, the carrier's scout hatch and the boss's radial burst phases.
type AttackSystem struct {
	ecs *entity.ECS
	rng *utils.PRNGService

	newBullets []pendingBullet
	newScouts  []utils.Vec2
}

func NewAttackSystem(ecs *entity.ECS, rng *utils.PRNGService) *AttackSystem {
	return &AttackSystem{ecs: ecs, rng: rng}
}

func (s *AttackSystem) Update(deltaTime float64) {
	s.newBullets = s.newBullets[:0]
	s.newScouts = s.newScouts[:0]

	for id, enemy := range s.ecs.Enemies {
		pos := s.ecs.Positions[id]
		if pos == nil {
			continue
		}
		switch enemy.Type {
		case defs.EnemyHeavy:
			s.heavyAttack(enemy, pos, deltaTime)
		case defs.EnemyCarrier:
			s.carrierHatch(enemy, pos, deltaTime)
		case defs.EnemyBoss:
			s.bossAttack(enemy, pos, deltaTime)
		}
	}

	for _, b := range s.newBullets {
		CreateEnemyBullet(s.ecs, b.pos, b.vel, b.damage)
	}
	for _, pos := range s.newScouts {
		CreateEnemy(s.ecs, s.rng, defs.EnemyScout, pos)
	}
}

// heavyAttack fires once per second once the heavy holds its zone; a heavy
// still descending stays silent. The variant cycles with the movement timer;
// the spread and fan variants stay silent before the 90-second mark.
func (s *AttackSystem) heavyAttack(enemy *component.Enemy, pos *component.Position, deltaTime float64) {
	if !enemy.HasReachedZone {
		return
	}
	enemy.ShotTimer += deltaTime
	if enemy.ShotTimer < config.HeavyAttackInterval {
		return
	}
	enemy.ShotTimer = 0

	elapsed := s.ecs.GameTime
	playerPos, hasPlayer := s.ecs.Positions[s.ecs.PlayerID]
	muzzle := utils.NewVec2(pos.X, pos.Y+config.EnemyMuzzleOffset)

	switch int(enemy.MovementTimer) % 4 {
	case 0: // spread shot toward the player
		if elapsed < config.HeavyLateAttackTime || !hasPlayer {
			return
		}
		dir := utils.NewVec2(playerPos.X-pos.X, playerPos.Y-pos.Y).Normalize()
		for i := 0; i < 3; i++ {
			spread := (-10.0 + float64(i)*10.0) * math.Pi / 180
			vel := utils.NewVec2(
				dir.X*2.5+math.Sin(spread)*0.5,
				dir.Y*2.5+math.Cos(spread)*0.5,
			)
			s.newBullets = append(s.newBullets, pendingBullet{muzzle, vel, enemy.BulletDamage + 1})
		}

	case 1: // fan burst
		if elapsed < config.HeavyLateAttackTime {
			return
		}
		for i := 0; i < 5; i++ {
			angle := (-30.0 + float64(i)*15.0) * math.Pi / 180
			vel := utils.NewVec2(math.Sin(angle)*2.0, math.Cos(angle)*2.0+1.0)
			s.newBullets = append(s.newBullets, pendingBullet{muzzle, vel, enemy.BulletDamage})
		}

	case 2: // parallel double shot
		vel := utils.NewVec2(0, 3.0)
		s.newBullets = append(s.newBullets,
			pendingBullet{utils.NewVec2(pos.X-10, muzzle.Y), vel, enemy.BulletDamage},
			pendingBullet{utils.NewVec2(pos.X+10, muzzle.Y), vel, enemy.BulletDamage},
		)

	case 3: // predictive lead shot
		if !hasPlayer {
			return
		}
		predict := utils.NewVec2(playerPos.X, playerPos.Y+50)
		dir := utils.NewVec2(predict.X-pos.X, predict.Y-pos.Y).Normalize()
		s.newBullets = append(s.newBullets, pendingBullet{muzzle, dir.Scale(3.0), enemy.BulletDamage + 2})
	}
}

// carrierHatch births one scout just below the carrier every five seconds.
func (s *AttackSystem) carrierHatch(enemy *component.Enemy, pos *component.Position, deltaTime float64) {
	enemy.HatchTimer += deltaTime
	if enemy.HatchTimer < config.CarrierHatchInterval {
		return
	}
	enemy.HatchTimer = 0
	s.newScouts = append(s.newScouts, utils.NewVec2(pos.X, pos.Y+30))
}

// bossAttack drives the two-phase burst script. Phase one alternates 24-way
// and 12-way radial bursts every three seconds on a six-second cycle. Phase
// two holds the invincibility shield for five seconds from phase entry,
// then fires a 32-way burst every two seconds at fixed damage.
func (s *AttackSystem) bossAttack(enemy *component.Enemy, pos *component.Position, deltaTime float64) {
	muzzle := utils.NewVec2(pos.X, pos.Y+50)

	switch enemy.Phase {
	case component.BossPhaseOne:
		enemy.ShotTimer += deltaTime
		if enemy.ShotTimer < config.BossPhase1Interval {
			return
		}
		enemy.ShotTimer = 0

		if int(enemy.AgeTimer)%6 == 0 {
			s.radialBurst(muzzle, 24, 1.5, enemy.BulletDamage)
		} else {
			s.radialBurst(muzzle, 12, 2.0, enemy.BulletDamage)
		}

	case component.BossPhaseTwo:
		enemy.PhaseTimer += deltaTime
		if enemy.Invincible && enemy.PhaseTimer >= config.BossPhase2Shield {
			enemy.Invincible = false
		}

		enemy.ShotTimer += deltaTime
		if enemy.ShotTimer < config.BossPhase2Interval {
			return
		}
		enemy.ShotTimer = 0
		s.radialBurst(muzzle, 32, 2.5, config.BossPhase2Damage)
	}
}

// radialBurst queues count bullets evenly spread over the full circle.
func (s *AttackSystem) radialBurst(origin utils.Vec2, count int, speed float64, damage int) {
	step := 2 * math.Pi / float64(count)
	for i := 0; i < count; i++ {
		angle := float64(i) * step
		vel := utils.NewVec2(math.Cos(angle)*speed, math.Sin(angle)*speed)
		s.newBullets = append(s.newBullets, pendingBullet{origin, vel, damage})
	}
}
