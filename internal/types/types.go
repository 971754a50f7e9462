// internal/types/types.go
package types

// EntityID is a stable handle for an entity. IDs grow monotonically within
// a match and are never reused, so a removed enemy's ID can stay inside a
// bullet's hit set without ever pointing at the wrong entity.
type EntityID uint64
