// internal/defs/drops.go
package defs

import "go-star-fighter/internal/config"

// DropEntry is one probabilistic item drop on an enemy death.
type DropEntry struct {
	Item   ItemType
	Chance float64
	Value  int
}

// DropTables maps enemy types to their death drops. Gold and experience are
// unconditional and live in EnemyLibrary; this table only covers items.
var DropTables = map[EnemyType][]DropEntry{
	EnemyHeavy: {
		{Item: ItemHealthPack, Chance: config.HeavyDropChance, Value: config.HealthPackValue},
	},
}
