// internal/component/player.go
package component

import (
	"go-star-fighter/internal/config"
	"go-star-fighter/internal/defs"
)

// Player holds the player ship state: level, experience and the additive
// bonuses accumulated from rogue upgrades. Position and health live in the
// ECS maps like any other entity; timers are accumulators advanced by tick
// delta, never wall-clock reads.
type Player struct {
	Level            int
	Experience       int
	ExperienceNeeded int

	Weapon Weapon

	AttackBonus      int
	CritRate         float64
	CritDamage       float64
	BulletCountBonus int
	Piercing         int
	Ricochet         int
	BurningDamage    int
	ExplosionDamage  float64 // fraction of bullet damage dealt as splash
	DamageReduction  int
	BulletSpeedBonus float64

	ShotTimer          float64 // seconds since last shot
	InvincibilityTimer float64 // counts down after taking a hit

	Upgrades []defs.UpgradeID // picks taken this match, in order
}

// NewPlayer returns a fresh level-1 player with the given weapon.
func NewPlayer(weapon Weapon) *Player {
	return &Player{
		Level:            1,
		Experience:       0,
		ExperienceNeeded: config.ExperiencePerLevel,
		Weapon:           weapon,
		CritDamage:       config.PlayerBaseCritDamage,
	}
}

// TotalAttackPower combines weapon power with the rogue attack bonus.
func (p *Player) TotalAttackPower() int {
	return p.Weapon.TotalAttackPower() + p.AttackBonus
}

// TotalBulletCount caps the multi-shot bonus at +5 over the weapon base.
func (p *Player) TotalBulletCount() int {
	count := p.Weapon.BulletCount + p.BulletCountBonus
	if max := p.Weapon.BulletCount + 5; count > max {
		count = max
	}
	return count
}

// AddExperience accrues experience; leveling is the progression system's job.
func (p *Player) AddExperience(exp int) {
	p.Experience += exp
}

// LevelUp consumes the current threshold and raises the next one.
func (p *Player) LevelUp() {
	p.Experience -= p.ExperienceNeeded
	p.Level++
	p.ExperienceNeeded = config.ExperiencePerLevel * p.Level
}
