// internal/defs/weapons.go
package defs

// WeaponDefinition holds the immutable stats of a weapon type.
type WeaponDefinition struct {
	Type        WeaponType
	Name        string
	AttackPower int
	AttackSpeed float64 // shots per second
	BulletSpeed float64 // arena velocity units; the laser overrides this
	BulletCount int
}

// WeaponLibrary is the library of all weapon definitions, keyed by type.
var WeaponLibrary = map[WeaponType]WeaponDefinition{
	WeaponMachineGun: {
		Type:        WeaponMachineGun,
		Name:        "Machine Gun",
		AttackPower: 2,
		AttackSpeed: 1.2,
		BulletSpeed: 2.0,
		BulletCount: 2,
	},
	WeaponLaser: {
		Type:        WeaponLaser,
		Name:        "Laser",
		AttackPower: 4,
		AttackSpeed: 1.25,
		BulletSpeed: 0.0,
		BulletCount: 1,
	},
	WeaponShotgun: {
		Type:        WeaponShotgun,
		Name:        "Shotgun",
		AttackPower: 4,
		AttackSpeed: 1.0,
		BulletSpeed: 3.0,
		BulletCount: 3,
	},
}
