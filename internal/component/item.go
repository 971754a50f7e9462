// internal/component/item.go
package component

import "go-star-fighter/internal/defs"

// Item is a falling pickup dropped by an enemy death.
type Item struct {
	Type  defs.ItemType
	Value int
}
