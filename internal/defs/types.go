// internal/defs/types.go
package defs

// WeaponType identifies one of the selectable player weapons.
type WeaponType string

const (
	WeaponMachineGun WeaponType = "MACHINE_GUN"
	WeaponLaser      WeaponType = "LASER"
	WeaponShotgun    WeaponType = "SHOTGUN"
)

// EnemyType identifies one of the scripted enemy variants.
type EnemyType string

const (
	EnemyScout   EnemyType = "SCOUT"
	EnemyHeavy   EnemyType = "HEAVY"
	EnemyCarrier EnemyType = "CARRIER"
	EnemyBoss    EnemyType = "BOSS"
)

// ItemType identifies a droppable pickup.
type ItemType string

const (
	ItemHealthPack ItemType = "HEALTH_PACK"
)

// UpgradeRarity is the display tier of a rogue upgrade.
type UpgradeRarity string

const (
	RarityCommon    UpgradeRarity = "COMMON"
	RarityRare      UpgradeRarity = "RARE"
	RarityEpic      UpgradeRarity = "EPIC"
	RarityLegendary UpgradeRarity = "LEGENDARY"
)
