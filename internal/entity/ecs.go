// internal/entity/ecs.go
package entity

import (
	"go-star-fighter/internal/component"
	"go-star-fighter/internal/defs"
	"go-star-fighter/internal/types"
)

// ECS holds every entity collection of a match, keyed by stable EntityID.
// IDs are handed out monotonically and never reused, so references held by
// other entities (bullet hit sets) survive removals untouched.
type ECS struct {
	GameTime float64
	NextID   types.EntityID

	Positions   map[types.EntityID]*component.Position
	Velocities  map[types.EntityID]*component.Velocity
	Healths     map[types.EntityID]*component.Health
	Enemies     map[types.EntityID]*component.Enemy
	Bullets     map[types.EntityID]*component.Bullet
	Items       map[types.EntityID]*component.Item
	Renderables map[types.EntityID]*component.Renderable

	PlayerID types.EntityID
	Player   *component.Player
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Velocities:  make(map[types.EntityID]*component.Velocity),
		Healths:     make(map[types.EntityID]*component.Health),
		Enemies:     make(map[types.EntityID]*component.Enemy),
		Bullets:     make(map[types.EntityID]*component.Bullet),
		Items:       make(map[types.EntityID]*component.Item),
		Renderables: make(map[types.EntityID]*component.Renderable),
	}
}

// NewEntity allocates the next stable handle.
func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity deletes the entity from every component map.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Healths, id)
	delete(ecs.Enemies, id)
	delete(ecs.Bullets, id)
	delete(ecs.Items, id)
	delete(ecs.Renderables, id)
}

// Reset clears all collections for a new match. NextID keeps growing so
// handles stay unique across matches within one process.
func (ecs *ECS) Reset() {
	ecs.GameTime = 0
	ecs.Positions = make(map[types.EntityID]*component.Position)
	ecs.Velocities = make(map[types.EntityID]*component.Velocity)
	ecs.Healths = make(map[types.EntityID]*component.Health)
	ecs.Enemies = make(map[types.EntityID]*component.Enemy)
	ecs.Bullets = make(map[types.EntityID]*component.Bullet)
	ecs.Items = make(map[types.EntityID]*component.Item)
	ecs.Renderables = make(map[types.EntityID]*component.Renderable)
	ecs.PlayerID = 0
	ecs.Player = nil
}

// FindBoss returns the boss entity, if one is alive in the collections.
func (ecs *ECS) FindBoss() (types.EntityID, *component.Enemy, bool) {
	for id, enemy := range ecs.Enemies {
		if enemy.Type == defs.EnemyBoss {
			return id, enemy, true
		}
	}
	return 0, nil, false
}

// HasEnemyOfType reports whether any enemy of the given type exists.
func (ecs *ECS) HasEnemyOfType(t defs.EnemyType) bool {
	for _, enemy := range ecs.Enemies {
		if enemy.Type == t {
			return true
		}
	}
	return false
}
