// internal/app/progression_test.go
package app

import (
	"testing"

	"go-star-fighter/internal/config"
	"go-star-fighter/internal/defs"
)

func upgradeByID(t *testing.T, id defs.UpgradeID) defs.UpgradeDefinition {
	t.Helper()
	for _, u := range defs.UpgradeLibrary {
		if u.ID == id {
			return u
		}
	}
	t.Fatalf("upgrade %d not in library", id)
	return defs.UpgradeDefinition{}
}

func TestApplyUpgradeEffects(t *testing.T) {
	g := newTestGame(t)
	player := g.ECS.Player

	g.applyUpgrade(upgradeByID(t, defs.UpgradeLife))
	if h := g.ECS.Healths[g.ECS.PlayerID]; h.Max != 23 || h.Value != 23 {
		t.Errorf("life upgrade: health %d/%d, want 23/23", h.Value, h.Max)
	}

	g.applyUpgrade(upgradeByID(t, defs.UpgradeFirepower))
	if player.AttackBonus != 2 {
		t.Errorf("attack bonus = %d, want 2", player.AttackBonus)
	}

	g.applyUpgrade(upgradeByID(t, defs.UpgradePrecision))
	g.applyUpgrade(upgradeByID(t, defs.UpgradeMortalBlow))
	if player.CritRate != 0.1 || player.CritDamage != 1.7 {
		t.Errorf("crit = %v/%v, want 0.1/1.7", player.CritRate, player.CritDamage)
	}

	baseSpeed := defs.WeaponLibrary[defs.WeaponMachineGun].AttackSpeed
	g.applyUpgrade(upgradeByID(t, defs.UpgradeOverclock))
	if want := baseSpeed * 1.3; player.Weapon.AttackSpeed != want {
		t.Errorf("attack speed = %v, want %v", player.Weapon.AttackSpeed, want)
	}
	if player.BulletSpeedBonus != 0.3 {
		t.Errorf("bullet speed bonus = %v, want 0.3", player.BulletSpeedBonus)
	}

	g.applyUpgrade(upgradeByID(t, defs.UpgradeArmor))
	g.applyUpgrade(upgradeByID(t, defs.UpgradePiercing))
	g.applyUpgrade(upgradeByID(t, defs.UpgradeBounce))
	g.applyUpgrade(upgradeByID(t, defs.UpgradeIncendiary))
	g.applyUpgrade(upgradeByID(t, defs.UpgradeExplosive))
	if player.DamageReduction != 3 || player.Piercing != 1 || player.Ricochet != 1 ||
		player.BurningDamage != 2 || player.ExplosionDamage != 0.3 {
		t.Errorf("defensive/ammo upgrades not applied: %+v", player)
	}

	if len(player.Upgrades) != 10 {
		t.Errorf("recorded picks = %d, want 10", len(player.Upgrades))
	}
}

func TestMultiShotStackLimit(t *testing.T) {
	g := newTestGame(t)
	multi := upgradeByID(t, defs.UpgradeMultiShot)

	for i := 0; i < multi.MaxStacks; i++ {
		g.applyUpgrade(multi)
	}

	if g.ECS.Player.BulletCountBonus != 5 {
		t.Errorf("bullet count bonus = %d, want 5", g.ECS.Player.BulletCountBonus)
	}
	for _, u := range g.pool {
		if u.ID == defs.UpgradeMultiShot {
			t.Fatal("multi-shot still offered after reaching its stack limit")
		}
	}
	// Base 2 bullets + capped bonus.
	if got := g.ECS.Player.TotalBulletCount(); got != 7 {
		t.Errorf("total bullet count = %d, want 7", got)
	}
}

func TestManualSelectionLevelsUp(t *testing.T) {
	g := newTestGame(t)
	g.ECS.Player.Experience = 120
	g.Update(0.016)
	if !g.RogueActive() {
		t.Fatal("no offer at the threshold")
	}

	g.SelectRogueUpgrade(0)

	if g.RogueActive() {
		t.Fatal("offer still active after a manual pick")
	}
	player := g.ECS.Player
	if player.Level != 2 || player.Experience != 20 || player.ExperienceNeeded != 200 {
		t.Errorf("level/exp/needed = %d/%d/%d, want 2/20/200", player.Level, player.Experience, player.ExperienceNeeded)
	}
	if len(player.Upgrades) != 1 {
		t.Errorf("recorded picks = %d, want 1", len(player.Upgrades))
	}
}

func TestInvalidSelectionIgnored(t *testing.T) {
	g := newTestGame(t)
	g.ECS.Player.Experience = 100
	g.Update(0.016)

	g.SelectRogueUpgrade(-1)
	g.SelectRogueUpgrade(5)

	if !g.RogueActive() {
		t.Fatal("invalid index completed the selection")
	}
	if g.ECS.Player.Level != 1 {
		t.Errorf("level = %d after invalid picks, want 1", g.ECS.Player.Level)
	}
}

func TestAutoPickAfterTimeoutThenHold(t *testing.T) {
	g := newTestGame(t)
	g.ECS.Player.Experience = 100
	g.Update(0.016)

	// Ten seconds of indecision trigger the automatic pick.
	for i := 0; i < 10; i++ {
		g.Update(1.0)
	}
	if !g.AutoSelected() {
		t.Fatal("no automatic pick after the ten-second window")
	}
	if g.ECS.Player.Level != 1 {
		t.Fatal("leveled up before the hold period ended")
	}

	// Picks during the hold are ignored.
	g.SelectRogueUpgrade(0)
	if len(g.ECS.Player.Upgrades) != 1 {
		t.Fatalf("picks = %d, want only the automatic one", len(g.ECS.Player.Upgrades))
	}

	// Two more seconds show the choice, then play resumes.
	g.Update(1.0)
	g.Update(1.0)
	if g.RogueActive() {
		t.Fatal("selection still active after the hold period")
	}
	if g.ECS.Player.Level != 2 {
		t.Errorf("level = %d, want 2", g.ECS.Player.Level)
	}
}

func TestOverflowExperienceChainsOffers(t *testing.T) {
	g := newTestGame(t)
	g.ECS.Player.Experience = 350
	g.Update(0.016)
	if !g.RogueActive() {
		t.Fatal("no offer at the threshold")
	}

	g.SelectRogueUpgrade(0)
	if !g.RogueActive() {
		t.Fatal("overflow experience did not chain into a second offer")
	}
	player := g.ECS.Player
	if player.Level != 2 || player.Experience != 250 {
		t.Fatalf("level/exp = %d/%d mid-chain, want 2/250", player.Level, player.Experience)
	}

	g.SelectRogueUpgrade(0)
	if g.RogueActive() {
		t.Fatal("selection still active after the chain resolved")
	}
	if player.Level != 3 || player.Experience != 50 || player.ExperienceNeeded != 300 {
		t.Errorf("level/exp/needed = %d/%d/%d, want 3/50/300", player.Level, player.Experience, player.ExperienceNeeded)
	}
}

func TestSelectionWindowCountsDown(t *testing.T) {
	g := newTestGame(t)
	g.ECS.Player.Experience = 100
	g.Update(0.016)

	if got := g.SelectTimeLeft(); got != config.RogueSelectWindow {
		t.Fatalf("time left = %v at offer start, want %v", got, config.RogueSelectWindow)
	}
	g.Update(4.0)
	if got := g.SelectTimeLeft(); got != config.RogueSelectWindow-4.0 {
		t.Errorf("time left = %v after 4s, want %v", got, config.RogueSelectWindow-4.0)
	}
}
