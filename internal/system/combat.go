// internal/system/combat.go
package system

import (
	"go-star-fighter/internal/component"
	"go-star-fighter/internal/config"
	"go-star-fighter/internal/defs"
	"go-star-fighter/internal/entity"
	"go-star-fighter/internal/event"
	"go-star-fighter/internal/types"
	"go-star-fighter/internal/utils"
)

// explosionTrigger remembers where a splash bullet struck and how hard the
// blast hits. The origin enemy already took the direct hit and is excluded
// from its own blast.
type explosionTrigger struct {
	origin types.EntityID
	pos    utils.Vec2
	damage int
}

// CombatSystem resolves one tick of collisions: player bullets against
// enemies, splash damage, enemy fire and rams against the player, and item
// pickups. Damage is accumulated per enemy and applied once, so resolution
// does not depend on map iteration order.
type CombatSystem struct {
	ecs        *entity.ECS
	rng        *utils.PRNGService
	dispatcher *event.Dispatcher

	DamageDealt int
}

func NewCombatSystem(ecs *entity.ECS, rng *utils.PRNGService, dispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{ecs: ecs, rng: rng, dispatcher: dispatcher}
}

func (s *CombatSystem) Update(deltaTime float64) {
	s.resolvePlayerBullets()
	s.resolveEnemyBullets()
	s.resolveContact()
	s.resolvePickups()
}

func (s *CombatSystem) resolvePlayerBullets() {
	damageByEnemy := make(map[types.EntityID]int)
	var explosions []explosionTrigger
	var spentBullets []types.EntityID

	for bulletID, bullet := range s.ecs.Bullets {
		if !bullet.FromPlayer {
			continue
		}
		bulletPos := s.ecs.Positions[bulletID]
		if bulletPos == nil {
			continue
		}

		exhausted := false
		for enemyID := range s.ecs.Enemies {
			health := s.ecs.Healths[enemyID]
			enemyPos := s.ecs.Positions[enemyID]
			if health == nil || enemyPos == nil || health.Value <= 0 {
				continue
			}
			if bullet.HasHit(enemyID) {
				continue
			}
			if distance(bulletPos, enemyPos) >= config.BulletHitRadius {
				continue
			}

			bullet.MarkHit(enemyID)
			damage := bullet.Damage + bullet.Burning
			damageByEnemy[enemyID] += damage
			s.DamageDealt += damage

			if bullet.ExplosionPct > 0 {
				explosions = append(explosions, explosionTrigger{
					origin: enemyID,
					pos:    utils.NewVec2(enemyPos.X, enemyPos.Y),
					damage: int(float64(damage) * bullet.ExplosionPct),
				})
			}

			if bullet.Piercing == config.PiercingUnlimited {
				continue
			}
			if bullet.Piercing > 0 {
				bullet.Piercing--
				continue
			}
			exhausted = true
			break
		}

		if exhausted {
			spentBullets = append(spentBullets, bulletID)
		}
	}

	for enemyID, damage := range damageByEnemy {
		if ApplyDamage(s.ecs, s.dispatcher, enemyID, damage) {
			s.killEnemy(enemyID)
		}
	}

	for _, trigger := range explosions {
		s.resolveExplosion(trigger)
	}

	for _, id := range spentBullets {
		s.ecs.RemoveEntity(id)
	}
}

// resolveExplosion splashes every other living enemy within the blast radius.
func (s *CombatSystem) resolveExplosion(trigger explosionTrigger) {
	for enemyID := range s.ecs.Enemies {
		if enemyID == trigger.origin {
			continue
		}
		health := s.ecs.Healths[enemyID]
		pos := s.ecs.Positions[enemyID]
		if health == nil || pos == nil || health.Value <= 0 {
			continue
		}
		if trigger.pos.Distance(utils.NewVec2(pos.X, pos.Y)) >= config.ExplosionRadius {
			continue
		}
		s.DamageDealt += trigger.damage
		if ApplyDamage(s.ecs, s.dispatcher, enemyID, trigger.damage) {
			s.killEnemy(enemyID)
		}
	}
}

// killEnemy credits the kill, rolls the drop table and removes the entity.
// Coins, experience and kill counting happen in the destroy listener.
func (s *CombatSystem) killEnemy(id types.EntityID) {
	enemy := s.ecs.Enemies[id]
	pos := s.ecs.Positions[id]
	if enemy == nil {
		return
	}

	def := defs.EnemyLibrary[enemy.Type]
	if s.dispatcher != nil {
		s.dispatcher.Dispatch(event.Event{
			Type: event.EnemyDestroyed,
			Data: event.EnemyDestroyedData{
				ID:   id,
				Type: enemy.Type,
				Gold: def.DropGold,
				Exp:  def.DropExp,
			},
		})
	}

	if pos != nil {
		for _, drop := range defs.DropTables[enemy.Type] {
			if s.rng.Chance(drop.Chance) {
				s.createItem(drop.Item, utils.NewVec2(pos.X, pos.Y), drop.Value)
			}
		}
	}

	s.ecs.RemoveEntity(id)
}

func (s *CombatSystem) createItem(t defs.ItemType, pos utils.Vec2, value int) types.EntityID {
	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: pos.X, Y: pos.Y}
	s.ecs.Velocities[id] = &component.Velocity{X: 0, Y: 1.0}
	s.ecs.Items[id] = &component.Item{Type: t, Value: value}
	s.ecs.Renderables[id] = &component.Renderable{Color: config.HealthPackColor, Radius: 8}
	return id
}

func (s *CombatSystem) resolveEnemyBullets() {
	playerPos := s.ecs.Positions[s.ecs.PlayerID]
	if playerPos == nil {
		return
	}
	for id, bullet := range s.ecs.Bullets {
		if bullet.FromPlayer {
			continue
		}
		pos := s.ecs.Positions[id]
		if pos == nil {
			continue
		}
		if distance(pos, playerPos) < config.PlayerHitRadius {
			DamagePlayer(s.ecs, bullet.Damage)
			s.ecs.RemoveEntity(id)
		}
	}
}

// resolveContact applies ram damage. The enemy survives the collision; the
// player's invincibility window keeps this from draining health every tick.
func (s *CombatSystem) resolveContact() {
	playerPos := s.ecs.Positions[s.ecs.PlayerID]
	if playerPos == nil {
		return
	}
	for id, enemy := range s.ecs.Enemies {
		pos := s.ecs.Positions[id]
		if pos == nil {
			continue
		}
		if distance(pos, playerPos) < config.ContactRadius {
			DamagePlayer(s.ecs, enemy.CollisionDamage)
		}
	}
}

func (s *CombatSystem) resolvePickups() {
	playerPos := s.ecs.Positions[s.ecs.PlayerID]
	if playerPos == nil {
		return
	}
	for id, item := range s.ecs.Items {
		pos := s.ecs.Positions[id]
		if pos == nil {
			continue
		}
		if distance(pos, playerPos) >= config.PickupRadius {
			continue
		}

		switch item.Type {
		case defs.ItemHealthPack:
			if health, ok := s.ecs.Healths[s.ecs.PlayerID]; ok {
				health.Value += item.Value
				if health.Value > health.Max {
					health.Value = health.Max
				}
			}
		}

		if s.dispatcher != nil {
			s.dispatcher.Dispatch(event.Event{Type: event.ItemPickedUp, Data: item.Type})
		}
		s.ecs.RemoveEntity(id)
	}
}

func distance(a, b *component.Position) float64 {
	return utils.NewVec2(a.X, a.Y).Distance(utils.NewVec2(b.X, b.Y))
}
