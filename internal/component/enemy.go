// internal/component/enemy.go
package component

import "go-star-fighter/internal/defs"

// Boss phases. Phase 2 is entered exactly once, at health <= 75.
const (
	BossPhaseOne = 1
	BossPhaseTwo = 2
)

// Enemy carries the scripting state of one enemy. All timers are
// accumulators advanced by tick delta.
type Enemy struct {
	Type            defs.EnemyType
	BulletDamage    int
	CollisionDamage int

	MovementPattern int     // heavy: 1..4, boss: 1, others: 0
	MovementTimer   float64 // reset on zone entry and pattern re-targets
	AgeTimer        float64 // seconds since spawn, drives the boss burst cycle
	ShotTimer       float64
	HatchTimer      float64 // carrier scout births

	TargetX, TargetY float64
	HasReachedZone   bool

	Invincible   bool
	ShieldHealth int
	Phase        int     // boss only
	PhaseTimer   float64 // seconds since the current phase began
}
