// internal/system/movement_test.go
package system

import (
	"testing"

	"go-star-fighter/internal/component"
	"go-star-fighter/internal/config"
	"go-star-fighter/internal/defs"
	"go-star-fighter/internal/entity"
	"go-star-fighter/internal/utils"
)

func TestScoutDescends(t *testing.T) {
	ecs := entity.NewECS()
	rng := utils.NewPRNGService(7)
	s := NewMovementSystem(ecs, rng)

	id := CreateEnemy(ecs, rng, defs.EnemyScout, utils.NewVec2(400, 100))
	s.Update(1.0)

	pos := ecs.Positions[id]
	if pos.Y != 150 { // 0.5 units * 100 px/unit
		t.Errorf("scout y = %v, want 150", pos.Y)
	}
	if pos.X != 400 {
		t.Errorf("scout x = %v, want unchanged 400", pos.X)
	}
}

func TestHeavyStopsAtZone(t *testing.T) {
	ecs := entity.NewECS()
	rng := utils.NewPRNGService(7)
	s := NewMovementSystem(ecs, rng)

	id := CreateEnemy(ecs, rng, defs.EnemyHeavy, utils.NewVec2(400, 110))
	s.Update(0.25) // 0.8 * 0.25 * 100 = 20px, crosses y=120

	enemy := ecs.Enemies[id]
	if !enemy.HasReachedZone {
		t.Fatal("heavy did not register zone entry")
	}
	if vel := ecs.Velocities[id]; vel.Y != 0 {
		t.Errorf("heavy vertical velocity = %v after zone entry, want 0", vel.Y)
	}
}

func TestBossBouncesBetweenMargins(t *testing.T) {
	ecs := entity.NewECS()
	rng := utils.NewPRNGService(7)
	s := NewMovementSystem(ecs, rng)

	id := CreateEnemy(ecs, rng, defs.EnemyBoss, utils.NewVec2(400, 50))
	enemy := ecs.Enemies[id]
	enemy.HasReachedZone = true
	pos := ecs.Positions[id]
	pos.X = config.ScreenWidth - config.BossMargin
	pos.Y = enemy.TargetY
	vel := ecs.Velocities[id]
	vel.X, vel.Y = 1, 0

	s.Update(0.1)

	if pos.X != config.ScreenWidth-config.BossMargin {
		t.Errorf("boss x = %v, want clamped at %v", pos.X, config.ScreenWidth-config.BossMargin)
	}
	if vel.X != -1 {
		t.Errorf("boss direction = %v after hitting the margin, want -1", vel.X)
	}
}

func TestRicochetReflectsAndForgetsHits(t *testing.T) {
	ecs := entity.NewECS()
	s := NewMovementSystem(ecs, utils.NewPRNGService(7))

	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: 0, Y: 300}
	ecs.Velocities[id] = &component.Velocity{X: -2, Y: 1}
	bullet := &component.Bullet{Damage: 5, FromPlayer: true, Ricochet: 1}
	bullet.MarkHit(999)
	ecs.Bullets[id] = bullet

	s.Update(0.01)

	if vel := ecs.Velocities[id]; vel.X != 2 {
		t.Errorf("velocity x = %v after bounce, want 2", vel.X)
	}
	if bullet.Ricochet != 0 {
		t.Errorf("ricochet charges = %d, want 0", bullet.Ricochet)
	}
	if bullet.HasHit(999) {
		t.Error("hit history survived the bounce")
	}
	if pos := ecs.Positions[id]; pos.X < 0 {
		t.Errorf("position x = %v, want clamped into the arena", pos.X)
	}
}

func TestBulletCulledOutOfBounds(t *testing.T) {
	ecs := entity.NewECS()
	s := NewMovementSystem(ecs, utils.NewPRNGService(7))

	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: 400, Y: -60}
	ecs.Velocities[id] = &component.Velocity{X: 0, Y: -1}
	ecs.Bullets[id] = &component.Bullet{Damage: 5, FromPlayer: true}

	s.Update(0.01)

	if _, alive := ecs.Bullets[id]; alive {
		t.Error("out-of-bounds bullet survived the cull")
	}
}

func TestRicochetBulletNotCulled(t *testing.T) {
	ecs := entity.NewECS()
	s := NewMovementSystem(ecs, utils.NewPRNGService(7))

	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: 400, Y: -60}
	ecs.Velocities[id] = &component.Velocity{X: 0, Y: -1}
	ecs.Bullets[id] = &component.Bullet{Damage: 5, FromPlayer: true, Ricochet: 2}

	s.Update(0.01)

	if _, alive := ecs.Bullets[id]; !alive {
		t.Error("bullet with ricochet charges was culled by bounds")
	}
}

func TestZoneHoldingHeavyNeverCulled(t *testing.T) {
	ecs := entity.NewECS()
	rng := utils.NewPRNGService(7)
	s := NewMovementSystem(ecs, rng)

	id := CreateEnemy(ecs, rng, defs.EnemyHeavy, utils.NewVec2(400, 100))
	enemy := ecs.Enemies[id]
	enemy.HasReachedZone = true
	enemy.MovementPattern = 1
	ecs.Positions[id].Y = config.ScreenHeight + 100 // would be culled otherwise

	s.Update(0.01)

	if _, alive := ecs.Enemies[id]; !alive {
		t.Error("zone-holding heavy was culled")
	}
}
