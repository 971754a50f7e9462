// internal/defs/upgrades.go
package defs

import "image/color"

// UpgradeID identifies a rogue upgrade in the shared pool.
type UpgradeID int

const (
	UpgradeLife UpgradeID = iota
	UpgradeFirepower
	UpgradePrecision
	UpgradeMortalBlow
	UpgradeMultiShot
	UpgradeExplosive
	UpgradeIncendiary
	UpgradeOverclock
	UpgradeArmor
	UpgradePiercing
	UpgradeBounce
)

// UpgradeDefinition holds the static data of one rogue upgrade.
// MaxStacks 0 means the upgrade can be picked any number of times.
type UpgradeDefinition struct {
	ID           UpgradeID
	Name         string
	ShortDesc    string
	DetailedDesc string
	Icon         string
	Rarity       UpgradeRarity
	MaxStacks    int
}

// UpgradeLibrary is the full rogue upgrade pool, in offer-id order.
var UpgradeLibrary = []UpgradeDefinition{
	{UpgradeLife, "Life-Enhancing", "HP+3", "Grants +3 maximum HP and restores 3 health.", "♥", RarityCommon, 0},
	{UpgradeFirepower, "Firepower Increase", "ATK+2", "Increases base weapon damage by +2.", "⚔", RarityCommon, 0},
	{UpgradePrecision, "Precision Shooting", "CRIT+10%", "Boosts critical strike chance by 10%.", "◉", RarityRare, 0},
	{UpgradeMortalBlow, "Mortal Blow", "CRITDMG+20%", "Increases critical strike damage by 20%.", "✦", RarityEpic, 0},
	{UpgradeMultiShot, "Multi-shot", "BULLET+1", "Fires +1 additional bullet, stacking up to 5 times.", "※", RarityCommon, 5},
	{UpgradeExplosive, "Exploding Warhead", "EXPLOSION+30%", "Bullets deal 30% splash damage to nearby enemies.", "✹", RarityRare, 0},
	{UpgradeIncendiary, "Incendiary Ammunition", "BURNING+2", "Bullets deal +2 additional burning damage.", "♨", RarityCommon, 0},
	{UpgradeOverclock, "Overclocking Engine", "SPEED+30%", "Increases attack speed and projectile speed by 30%.", "⚡", RarityRare, 0},
	{UpgradeArmor, "Vibranium Armor", "DEF+3", "Reduces incoming damage by 3.", "◊", RarityEpic, 0},
	{UpgradePiercing, "Armor Piercing Shell", "PIERCE+1", "Bullets pierce through 1 additional enemy.", "►", RarityRare, 0},
	{UpgradeBounce, "Bouncing Technology", "BOUNCE+1", "Bullets bounce off arena edges 1 additional time.", "◈", RarityEpic, 0},
}

// RarityColor returns the display color key for an upgrade tier.
func RarityColor(r UpgradeRarity) color.RGBA {
	switch r {
	case RarityRare:
		return color.RGBA{76, 153, 255, 255}
	case RarityEpic:
		return color.RGBA{204, 76, 255, 255}
	case RarityLegendary:
		return color.RGBA{255, 204, 51, 255}
	default:
		return color.RGBA{255, 255, 255, 255}
	}
}
