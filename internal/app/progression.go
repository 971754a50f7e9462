// internal/app/progression.go
package app

import (
	"go-star-fighter/internal/config"
	"go-star-fighter/internal/defs"
)

// checkLevelUp opens a rogue offer once the experience threshold is met.
// Leveling itself happens when the pick completes, so overflow experience
// can chain straight into the next offer.
func (g *Game) checkLevelUp() {
	player := g.ECS.Player
	if player == nil {
		return
	}
	if player.Experience >= player.ExperienceNeeded {
		g.triggerRogueOffer()
	}
}

// RogueActive reports whether a rogue pick is pending.
func (g *Game) RogueActive() bool {
	return len(g.Offers) > 0
}

// AutoSelected reports whether the pending pick was made by the timeout.
func (g *Game) AutoSelected() bool {
	return g.autoSelected
}

// SelectTimeLeft returns the seconds remaining before auto-selection.
func (g *Game) SelectTimeLeft() float64 {
	left := config.RogueSelectWindow - g.selectTimer
	if left < 0 {
		left = 0
	}
	return left
}

func (g *Game) resetUpgradePool() {
	g.pool = append(g.pool[:0], defs.UpgradeLibrary...)
	g.poolPicks = make(map[defs.UpgradeID]int)
}

func (g *Game) clearRogueState() {
	g.Offers = nil
	g.selectTimer = 0
	g.autoSelected = false
	g.autoHoldTimer = 0
}

// triggerRogueOffer draws up to three distinct upgrades from the pool and
// pauses the battle until one is picked.
func (g *Game) triggerRogueOffer() {
	g.clearRogueState()
	if len(g.pool) == 0 {
		// Pool exhausted: level up immediately, no offer to show.
		g.ECS.Player.LevelUp()
		g.checkLevelUp()
		return
	}
	for _, idx := range g.RNG.PickIndices(len(g.pool), config.RogueOfferCount) {
		g.Offers = append(g.Offers, g.pool[idx])
	}
}

// UpdateRogueSelection advances the offer timers: ten seconds to pick, then
// an automatic uniform pick shown for two seconds before play resumes.
func (g *Game) UpdateRogueSelection(deltaTime float64) {
	if !g.RogueActive() {
		return
	}
	if g.autoSelected {
		g.autoHoldTimer += deltaTime
		if g.autoHoldTimer >= config.RogueAutoPickDelay {
			g.completeSelection()
		}
		return
	}
	g.selectTimer += deltaTime
	if g.selectTimer >= config.RogueSelectWindow {
		g.autoPick()
	}
}

func (g *Game) autoPick() {
	if !g.RogueActive() || g.autoSelected {
		return
	}
	idx := g.RNG.Intn(len(g.Offers))
	g.applyUpgrade(g.Offers[idx])
	g.autoSelected = true
	g.autoHoldTimer = 0
}

// SelectRogueUpgrade takes the offer at index. Out-of-range indices and
// picks after the auto-selection are silently ignored.
func (g *Game) SelectRogueUpgrade(index int) {
	if !g.RogueActive() || g.autoSelected {
		return
	}
	if index < 0 || index >= len(g.Offers) {
		return
	}
	g.applyUpgrade(g.Offers[index])
	g.completeSelection()
}

// applyUpgrade mutates the player and books the pick against the pool's
// stack limits.
func (g *Game) applyUpgrade(upgrade defs.UpgradeDefinition) {
	player := g.ECS.Player
	if player == nil {
		return
	}

	switch upgrade.ID {
	case defs.UpgradeLife:
		if health, ok := g.ECS.Healths[g.ECS.PlayerID]; ok {
			health.Max += 3
			health.Value += 3
		}
	case defs.UpgradeFirepower:
		player.AttackBonus += 2
	case defs.UpgradePrecision:
		player.CritRate += 0.1
	case defs.UpgradeMortalBlow:
		player.CritDamage += 0.2
	case defs.UpgradeMultiShot:
		player.BulletCountBonus++
	case defs.UpgradeExplosive:
		player.ExplosionDamage += 0.3
	case defs.UpgradeIncendiary:
		player.BurningDamage += 2
	case defs.UpgradeOverclock:
		player.BulletSpeedBonus += 0.3
		player.Weapon.AttackSpeed *= 1.3
	case defs.UpgradeArmor:
		player.DamageReduction += 3
	case defs.UpgradePiercing:
		player.Piercing++
	case defs.UpgradeBounce:
		player.Ricochet++
	}

	player.Upgrades = append(player.Upgrades, upgrade.ID)

	g.poolPicks[upgrade.ID]++
	if upgrade.MaxStacks > 0 && g.poolPicks[upgrade.ID] >= upgrade.MaxStacks {
		for i, u := range g.pool {
			if u.ID == upgrade.ID {
				g.pool = append(g.pool[:i], g.pool[i+1:]...)
				break
			}
		}
	}
}

// completeSelection levels the player up and either resumes the battle or
// chains into the next offer when overflow experience crosses the new
// threshold.
func (g *Game) completeSelection() {
	g.clearRogueState()
	if g.ECS.Player == nil {
		return
	}
	g.ECS.Player.LevelUp()
	g.checkLevelUp()
}
