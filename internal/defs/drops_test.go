// internal/defs/drops_test.go
package defs

import (
	"testing"

	"go-star-fighter/internal/config"
)

func TestHeavyDropTableUsesTunedValues(t *testing.T) {
	entries, ok := DropTables[EnemyHeavy]
	if !ok || len(entries) != 1 {
		t.Fatalf("heavy drop entries = %d, want 1", len(entries))
	}
	entry := entries[0]
	if entry.Item != ItemHealthPack {
		t.Errorf("heavy drop item = %v, want health pack", entry.Item)
	}
	if entry.Chance != config.HeavyDropChance {
		t.Errorf("heavy drop chance = %v, want %v", entry.Chance, config.HeavyDropChance)
	}
	if entry.Value != config.HealthPackValue {
		t.Errorf("health pack value = %d, want %d", entry.Value, config.HealthPackValue)
	}
}

func TestOnlyHeavyDropsItems(t *testing.T) {
	for _, enemyType := range []EnemyType{EnemyScout, EnemyCarrier, EnemyBoss} {
		if _, ok := DropTables[enemyType]; ok {
			t.Errorf("%v has a drop table, want none", enemyType)
		}
	}
}
