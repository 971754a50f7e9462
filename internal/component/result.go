// internal/component/result.go
package component

import "go-star-fighter/internal/defs"

// GameResult is the immutable end-of-match snapshot. It is built exactly
// once, when the match ends, and never mutated afterwards.
type GameResult struct {
	Victory          bool
	FinalLevel       int
	CoinsEarned      int
	ExperienceGained int
	SurvivalTime     float64
	EnemiesDefeated  int
	TotalDamageDealt int
	WeaponUsed       defs.WeaponType
}
