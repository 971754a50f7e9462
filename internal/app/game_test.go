// internal/app/game_test.go
package app

import (
	"testing"

	"go-star-fighter/internal/component"
	"go-star-fighter/internal/config"
	"go-star-fighter/internal/defs"
	"go-star-fighter/internal/event"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := NewGame(7)
	g.StartBattle(defs.WeaponMachineGun)
	return g
}

func TestStartBattleCreatesPlayer(t *testing.T) {
	g := newTestGame(t)

	if g.ECS.Player == nil {
		t.Fatal("no player after StartBattle")
	}
	health, ok := g.ECS.Healths[g.ECS.PlayerID]
	if !ok || health.Value != config.PlayerMaxHealth {
		t.Fatalf("player health = %v, want %d", health, config.PlayerMaxHealth)
	}
	pos := g.ECS.Positions[g.ECS.PlayerID]
	if pos.X != config.PlayerStartX || pos.Y != config.PlayerStartY {
		t.Errorf("player start = (%v,%v), want (%v,%v)", pos.X, pos.Y, config.PlayerStartX, config.PlayerStartY)
	}
	if g.ECS.Player.Level != 1 || g.ECS.Player.ExperienceNeeded != 100 {
		t.Errorf("level/threshold = %d/%d, want 1/100", g.ECS.Player.Level, g.ECS.Player.ExperienceNeeded)
	}
}

func TestKillCreditsSession(t *testing.T) {
	g := newTestGame(t)

	g.Dispatcher.Dispatch(event.Event{
		Type: event.EnemyDestroyed,
		Data: event.EnemyDestroyedData{ID: 1, Type: defs.EnemyScout, Gold: 10, Exp: 20},
	})

	if g.Coins != 10 {
		t.Errorf("coins = %d, want 10", g.Coins)
	}
	if g.ECS.Player.Experience != 20 {
		t.Errorf("experience = %d, want 20", g.ECS.Player.Experience)
	}
	snap := g.Snapshot()
	if snap.Kills != 1 || snap.Coins != 10 {
		t.Errorf("snapshot kills/coins = %d/%d, want 1/10", snap.Kills, snap.Coins)
	}
}

func TestExperienceThresholdPausesSimulation(t *testing.T) {
	g := newTestGame(t)
	g.ECS.Player.Experience = 100

	g.Update(0.016)
	if !g.RogueActive() {
		t.Fatal("no rogue offer at the experience threshold")
	}
	if len(g.Offers) != config.RogueOfferCount {
		t.Fatalf("offers = %d, want %d", len(g.Offers), config.RogueOfferCount)
	}

	frozen := g.ECS.GameTime
	g.Update(0.5)
	if g.ECS.GameTime != frozen {
		t.Errorf("game time advanced from %v to %v during selection", frozen, g.ECS.GameTime)
	}
}

func TestMovePlayerClampedToArena(t *testing.T) {
	g := newTestGame(t)

	g.MovePlayer(-10000, -10000)
	pos := g.ECS.Positions[g.ECS.PlayerID]
	if pos.X != config.PlayerMargin || pos.Y != config.PlayerMargin {
		t.Errorf("player at (%v,%v), want clamped to (%v,%v)", pos.X, pos.Y, config.PlayerMargin, config.PlayerMargin)
	}
}

func TestVictoryOnBossKill(t *testing.T) {
	g := newTestGame(t)
	g.ECS.GameTime = config.BossSpawnTime

	g.Update(0.016) // spawns the boss
	bossID, _, ok := g.ECS.FindBoss()
	if !ok {
		t.Fatal("no boss after the spawn window opened")
	}

	// A lethal bullet parked on the boss ends the match this tick.
	g.ECS.Healths[bossID].Value = 1
	bossPos := g.ECS.Positions[bossID]
	id := g.ECS.NewEntity()
	g.ECS.Positions[id] = &component.Position{X: bossPos.X, Y: bossPos.Y}
	g.ECS.Velocities[id] = &component.Velocity{}
	g.ECS.Bullets[id] = &component.Bullet{Damage: 50, FromPlayer: true}

	g.Update(0.001)

	result := g.Result()
	if result == nil || !result.Victory {
		t.Fatalf("result = %+v, want a victory", result)
	}
	if g.Wins != 1 {
		t.Errorf("wins = %d, want 1", g.Wins)
	}
	if result.WeaponUsed != defs.WeaponMachineGun {
		t.Errorf("weapon in result = %v, want machine gun", result.WeaponUsed)
	}
}

func TestDefeatOnPlayerDeath(t *testing.T) {
	g := newTestGame(t)
	g.ECS.Healths[g.ECS.PlayerID].Value = 1

	playerPos := g.ECS.Positions[g.ECS.PlayerID]
	id := g.ECS.NewEntity()
	g.ECS.Positions[id] = &component.Position{X: playerPos.X, Y: playerPos.Y}
	g.ECS.Velocities[id] = &component.Velocity{}
	g.ECS.Bullets[id] = &component.Bullet{Damage: 10, FromPlayer: false}

	g.Update(0.001)

	result := g.Result()
	if result == nil || result.Victory {
		t.Fatalf("result = %+v, want a defeat", result)
	}
	if g.Wins != 0 {
		t.Errorf("wins = %d, want 0", g.Wins)
	}
	if len(g.ECS.Enemies) != 0 || len(g.ECS.Bullets) != 0 {
		t.Error("arena not cleared after the match ended")
	}
}

func TestCoinsResetOnGameOver(t *testing.T) {
	g := newTestGame(t)
	g.Dispatcher.Dispatch(event.Event{
		Type: event.EnemyDestroyed,
		Data: event.EnemyDestroyedData{ID: 1, Type: defs.EnemyScout, Gold: 10, Exp: 20},
	})
	if g.Coins != 10 {
		t.Fatalf("coins = %d mid-match, want 10", g.Coins)
	}

	g.ECS.Healths[g.ECS.PlayerID].Value = 0
	g.Update(0.001)

	result := g.Result()
	if result == nil {
		t.Fatal("match did not end")
	}
	if g.Coins != 0 {
		t.Errorf("coins = %d after entering game over, want 0", g.Coins)
	}
	if result.CoinsEarned != 10 {
		t.Errorf("result coins = %d, want the earned 10", result.CoinsEarned)
	}
}

func TestWeaponPersistsAcrossRestart(t *testing.T) {
	g := NewGame(7)
	g.StartBattle(defs.WeaponShotgun)
	g.ECS.Healths[g.ECS.PlayerID].Value = 0
	g.Update(0.001)
	if g.Result() == nil {
		t.Fatal("match did not end")
	}

	g.RestartBattle()
	if g.Result() != nil {
		t.Error("stale result after restart")
	}
	if g.ECS.Player.Weapon.Type != defs.WeaponShotgun {
		t.Errorf("weapon = %v after restart, want shotgun", g.ECS.Player.Weapon.Type)
	}
	if g.ECS.Player.Level != 1 {
		t.Errorf("level = %d after restart, want reset to 1", g.ECS.Player.Level)
	}
}

func TestAbandonBattleLeavesNoResult(t *testing.T) {
	g := newTestGame(t)
	g.Update(1.0) // let some enemies spawn

	g.AbandonBattle()
	if g.Result() != nil {
		t.Error("abandoning produced a result")
	}
	if len(g.ECS.Enemies) != 0 {
		t.Error("enemies survived AbandonBattle")
	}
}

func TestScoutKillCreditsAndDropsNothing(t *testing.T) {
	g := newTestGame(t)

	// A scout far from the player, hit by two 10-damage bullets.
	scoutID := g.ECS.NewEntity()
	g.ECS.Positions[scoutID] = &component.Position{X: 100, Y: 100}
	g.ECS.Velocities[scoutID] = &component.Velocity{}
	g.ECS.Healths[scoutID] = &component.Health{Value: 20, Max: 20}
	g.ECS.Enemies[scoutID] = &component.Enemy{Type: defs.EnemyScout, CollisionDamage: 5}

	for i := 0; i < 2; i++ {
		id := g.ECS.NewEntity()
		g.ECS.Positions[id] = &component.Position{X: 100, Y: 100}
		g.ECS.Velocities[id] = &component.Velocity{}
		g.ECS.Bullets[id] = &component.Bullet{Damage: 10, FromPlayer: true}
	}

	g.Update(0.001)

	if _, alive := g.ECS.Enemies[scoutID]; alive {
		t.Fatal("scout survived 20 damage")
	}
	if g.Coins != 10 {
		t.Errorf("coins = %d, want 10", g.Coins)
	}
	if g.ECS.Player.Experience != 20 {
		t.Errorf("experience = %d, want 20", g.ECS.Player.Experience)
	}
	if len(g.ECS.Items) != 0 {
		t.Errorf("items = %d, want 0: scouts drop nothing", len(g.ECS.Items))
	}
}

func TestSnapshotReportsBoss(t *testing.T) {
	g := newTestGame(t)
	g.ECS.GameTime = config.BossSpawnTime
	g.Update(0.016)

	snap := g.Snapshot()
	if snap.BossHealth < 0 {
		t.Fatal("snapshot missing the boss")
	}
	if snap.BossMaxHealth != defs.EnemyLibrary[defs.EnemyBoss].Health {
		t.Errorf("boss max health = %d, want %d", snap.BossMaxHealth, defs.EnemyLibrary[defs.EnemyBoss].Health)
	}
}
