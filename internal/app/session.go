// internal/app/session.go
package app

import (
	"log"

	"go-star-fighter/internal/component"
	"go-star-fighter/internal/event"
)

// OnEvent credits kills into the running session. The combat system only
// announces deaths; coins, experience and the kill count accrue here.
func (g *Game) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyDestroyed:
		data, ok := e.Data.(event.EnemyDestroyedData)
		if !ok {
			return
		}
		g.Coins += data.Gold
		g.sessionCoins += data.Gold
		g.sessionExp += data.Exp
		g.sessionKills++
		if g.ECS.Player != nil {
			g.ECS.Player.AddExperience(data.Exp)
		}

	case event.BossPhaseStarted:
		if phase, ok := e.Data.(int); ok {
			log.Printf("boss entered phase %d at t=%.1fs", phase, g.ECS.GameTime)
		}
	}
}

// endGame freezes the match into an immutable result, counts the win and
// clears the arena. The equipped weapon survives for the next match.
func (g *Game) endGame(victory bool) {
	if g.result != nil {
		return
	}

	level := 0
	if g.ECS.Player != nil {
		level = g.ECS.Player.Level
	}
	g.result = &component.GameResult{
		Victory:          victory,
		FinalLevel:       level,
		CoinsEarned:      g.sessionCoins,
		ExperienceGained: g.sessionExp,
		SurvivalTime:     g.ECS.GameTime,
		EnemiesDefeated:  g.sessionKills,
		TotalDamageDealt: g.combatSystem.DamageDealt,
		WeaponUsed:       g.weapon,
	}
	if victory {
		g.Wins++
	}
	log.Printf("match over: victory=%v t=%.1fs kills=%d damage=%d",
		victory, g.ECS.GameTime, g.sessionKills, g.combatSystem.DamageDealt)

	// Coins do not persist across matches; the result keeps the earned total.
	g.Coins = 0
	g.ECS.Reset()
	g.clearRogueState()
}
