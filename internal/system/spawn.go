// internal/system/spawn.go
package system

import (
	"go-star-fighter/internal/config"
	"go-star-fighter/internal/defs"
	"go-star-fighter/internal/entity"
	"go-star-fighter/internal/utils"
)

// SpawnSystem decides which enemies enter the arena each tick. All
// thresholds are seconds of elapsed battle time; normal spawning is gated
// to once per second by an accumulator clock.
type SpawnSystem struct {
	ecs   *entity.ECS
	rng   *utils.PRNGService
	clock float64
}

func NewSpawnSystem(ecs *entity.ECS, rng *utils.PRNGService) *SpawnSystem {
	return &SpawnSystem{ecs: ecs, rng: rng}
}

func (s *SpawnSystem) Update(deltaTime float64) {
	elapsed := s.ecs.GameTime

	// Boss time: one boss, nothing else.
	if elapsed >= config.BossSpawnTime {
		if !s.ecs.HasEnemyOfType(defs.EnemyBoss) {
			pos := utils.NewVec2(config.ScreenWidth/2, config.SpawnBandTop)
			CreateEnemy(s.ecs, s.rng, defs.EnemyBoss, pos)
		}
		return
	}

	s.clock += deltaTime
	if s.clock < config.SpawnGate {
		return
	}
	s.clock = 0

	sec := int(elapsed)

	// Carrier: guaranteed first appearance in [40,45), then every full minute.
	if elapsed >= config.CarrierFirstSpawn {
		firstWindow := elapsed < config.CarrierFirstWindow && !s.ecs.HasEnemyOfType(defs.EnemyCarrier)
		if sec%config.CarrierSpawnPeriod == 0 || firstWindow {
			CreateEnemy(s.ecs, s.rng, defs.EnemyCarrier, s.bandPosition())
		}
	}

	// Scouts come in growing packs every five seconds.
	if sec%config.ScoutSpawnPeriod == 0 {
		count := 3 + int(elapsed/60.0)
		for i := 0; i < count; i++ {
			CreateEnemy(s.ecs, s.rng, defs.EnemyScout, s.bandPosition())
		}
	}

	// Heavies join from 20s, every ten seconds, in growing numbers.
	if sec%config.HeavySpawnPeriod == 0 && elapsed >= config.HeavySpawnStart {
		count := 1 + int((elapsed-config.HeavySpawnStart)/30.0)
		for i := 0; i < count; i++ {
			CreateEnemy(s.ecs, s.rng, defs.EnemyHeavy, s.bandPosition())
		}
	}
}

// bandPosition draws a uniform spawn point in the upper arena band.
func (s *SpawnSystem) bandPosition() utils.Vec2 {
	left := config.ScreenWidth * config.SpawnBandMargin
	right := config.ScreenWidth * (1 - config.SpawnBandMargin)
	return utils.NewVec2(
		s.rng.Range(left, right),
		s.rng.Range(config.SpawnBandTop, config.SpawnBandBottom),
	)
}
