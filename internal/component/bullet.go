// internal/component/bullet.go
package component

import "go-star-fighter/internal/types"

// Bullet is a projectile in flight. HitEnemies stores stable entity handles,
// so enemy removal never invalidates the set; it is cleared when a ricochet
// bullet bounces so it can damage the same enemies again.
type Bullet struct {
	Damage     int
	FromPlayer bool

	Piercing     int // remaining extra targets; config.PiercingUnlimited = beam
	Ricochet     int // remaining edge bounces
	Burning      int
	ExplosionPct float64
	Crit         bool

	HitEnemies map[types.EntityID]struct{}
}

// MarkHit records a struck enemy.
func (b *Bullet) MarkHit(id types.EntityID) {
	if b.HitEnemies == nil {
		b.HitEnemies = make(map[types.EntityID]struct{})
	}
	b.HitEnemies[id] = struct{}{}
}

// HasHit reports whether the bullet already damaged the enemy.
func (b *Bullet) HasHit(id types.EntityID) bool {
	_, ok := b.HitEnemies[id]
	return ok
}

// ClearHits forgets the hit history (ricochet bounce).
func (b *Bullet) ClearHits() {
	b.HitEnemies = nil
}
