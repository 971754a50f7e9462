// internal/app/snapshot.go
package app

import "go-star-fighter/internal/defs"

// HUDSnapshot is a read-only view of the running match for display code.
type HUDSnapshot struct {
	GameTime float64

	Health    int
	MaxHealth int

	Level            int
	Experience       int
	ExperienceNeeded int

	Coins int
	Kills int

	Weapon   defs.WeaponType
	Upgrades []defs.UpgradeID

	BossHealth    int // -1 when no boss is alive
	BossMaxHealth int
	BossShielded  bool
}

// Snapshot captures the current match state for the HUD.
func (g *Game) Snapshot() HUDSnapshot {
	snap := HUDSnapshot{
		GameTime:   g.ECS.GameTime,
		Coins:      g.sessionCoins,
		Kills:      g.sessionKills,
		Weapon:     g.weapon,
		BossHealth: -1,
	}
	if player := g.ECS.Player; player != nil {
		snap.Level = player.Level
		snap.Experience = player.Experience
		snap.ExperienceNeeded = player.ExperienceNeeded
		snap.Upgrades = player.Upgrades
	}
	if health, ok := g.ECS.Healths[g.ECS.PlayerID]; ok {
		snap.Health = health.Value
		snap.MaxHealth = health.Max
	}
	if id, boss, ok := g.ECS.FindBoss(); ok {
		if health, hasHealth := g.ECS.Healths[id]; hasHealth {
			snap.BossHealth = health.Value
			snap.BossMaxHealth = health.Max
		}
		snap.BossShielded = boss.Invincible
	}
	return snap
}
