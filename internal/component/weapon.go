// internal/component/weapon.go
package component

import "go-star-fighter/internal/defs"

// Weapon is the player's equipped weapon. The shape is immutable per type;
// AttackSpeed is the only field mutated at runtime (overclock upgrade).
type Weapon struct {
	Type        defs.WeaponType
	AttackPower int
	AttackSpeed float64 // shots per second
	BulletSpeed float64
	BulletCount int
	Enhancement int
}

// NewWeapon builds a weapon from its library definition.
func NewWeapon(t defs.WeaponType) Weapon {
	def := defs.WeaponLibrary[t]
	return Weapon{
		Type:        t,
		AttackPower: def.AttackPower,
		AttackSpeed: def.AttackSpeed,
		BulletSpeed: def.BulletSpeed,
		BulletCount: def.BulletCount,
	}
}

// TotalAttackPower is the base power plus enhancement levels.
func (w *Weapon) TotalAttackPower() int {
	return w.AttackPower + w.Enhancement
}
