// internal/defs/enemies.go
package defs

import "image/color"

// Visuals contains parameters for rendering an enemy.
type Visuals struct {
	Color  color.RGBA
	Radius float32
}

// EnemyDefinition holds all the static data for a specific enemy type.
type EnemyDefinition struct {
	Type            EnemyType
	Name            string
	Health          int
	DescentSpeed    float64 // vertical velocity in arena units
	BulletDamage    int
	CollisionDamage int
	DropGold        int
	DropExp         int
	Visuals         Visuals
}

// EnemyLibrary is the library of all enemy definitions, keyed by type.
var EnemyLibrary map[EnemyType]EnemyDefinition

func init() {
	EnemyLibrary = map[EnemyType]EnemyDefinition{
		EnemyScout: {
			Type:            EnemyScout,
			Name:            "Scout",
			Health:          20,
			DescentSpeed:    0.5,
			BulletDamage:    0,
			CollisionDamage: 5,
			DropGold:        10,
			DropExp:         20,
			Visuals:         Visuals{Color: color.RGBA{200, 200, 210, 255}, Radius: 8},
		},
		EnemyHeavy: {
			Type:            EnemyHeavy,
			Name:            "Heavy",
			Health:          30,
			DescentSpeed:    0.8,
			BulletDamage:    2,
			CollisionDamage: 5,
			DropGold:        20,
			DropExp:         30,
			Visuals:         Visuals{Color: color.RGBA{180, 80, 80, 255}, Radius: 12},
		},
		EnemyCarrier: {
			Type:            EnemyCarrier,
			Name:            "Carrier",
			Health:          100,
			DescentSpeed:    0.3,
			BulletDamage:    0,
			CollisionDamage: 10,
			DropGold:        50,
			DropExp:         50,
			Visuals:         Visuals{Color: color.RGBA{140, 110, 200, 255}, Radius: 20},
		},
		EnemyBoss: {
			Type:            EnemyBoss,
			Name:            "Boss",
			Health:          150,
			DescentSpeed:    0.5,
			BulletDamage:    10,
			CollisionDamage: 20,
			DropGold:        100,
			DropExp:         0,
			Visuals:         Visuals{Color: color.RGBA{230, 60, 60, 255}, Radius: 30},
		},
	}
}
