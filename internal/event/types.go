// internal/event/types.go
package event

import (
	"go-star-fighter/internal/defs"
	"go-star-fighter/internal/types"
)

const (
	EnemyDestroyed   EventType = "EnemyDestroyed"   // payload: EnemyDestroyedData
	BossPhaseStarted EventType = "BossPhaseStarted" // payload: phase number (int)
	ItemPickedUp     EventType = "ItemPickedUp"     // payload: defs.ItemType
)

// EnemyDestroyedData describes a kill and the loot it credits.
type EnemyDestroyedData struct {
	ID   types.EntityID
	Type defs.EnemyType
	Gold int
	Exp  int
}
