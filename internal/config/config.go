// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	MaxDeltaTime = 0.06

	// Arena bounds for the player ship.
	PlayerMargin = 25.0
	PlayerSpeed  = 300.0

	PlayerStartX         = 400.0
	PlayerStartY         = 550.0
	PlayerMaxHealth      = 20
	PlayerBaseCritDamage = 1.5
	PlayerInvincibility  = 1.0 // seconds after taking a hit

	ExperiencePerLevel = 100 // threshold = 100 * level

	// Spawner policy, all in seconds of elapsed battle time.
	BossSpawnTime      = 180.0
	SpawnGate          = 1.0
	CarrierFirstSpawn  = 40.0
	CarrierFirstWindow = 45.0
	CarrierSpawnPeriod = 60
	ScoutSpawnPeriod   = 5
	HeavySpawnPeriod   = 10
	HeavySpawnStart    = 20.0

	// Horizontal spawn band is 20%-80% of the arena width, vertical 50-200.
	SpawnBandMargin = 0.2
	SpawnBandTop    = 50.0
	SpawnBandBottom = 200.0

	// Movement.
	EnemyUnitScale   = 100.0 // velocity units to pixels per second
	ItemUnitScale    = 50.0
	BulletUnitScale  = 100.0
	CullMargin       = 50.0
	HeavyZoneY       = 120.0
	HeavyZoneTop     = 80.0
	HeavyZoneBottom  = 200.0
	HeavyMargin      = 50.0
	HeavySpeed       = 50.0
	HeavyOrbitRadius = 60.0
	HeavyZigzagSpeed = 40.0
	HeavyPursuit     = 30.0
	BossZoneY        = 100.0
	BossSpeed        = 80.0
	BossMargin       = 80.0
	BossBobAmplitude = 10.0
	BossBobFrequency = 2.0

	// Attack scripting.
	HeavyAttackInterval  = 1.0
	HeavyLateAttackTime  = 90.0 // spread/fan variants only fire after this
	CarrierHatchInterval = 5.0
	BossPhase1Interval   = 3.0
	BossPhase2Interval   = 2.0
	BossPhase2Health     = 75
	BossPhase2Shield     = 5.0 // invincibility window on phase entry
	BossPhase2Damage     = 15

	// Combat resolution radii.
	BulletHitRadius   = 30.0
	PlayerHitRadius   = 25.0
	ContactRadius     = 30.0
	PickupRadius      = 25.0
	ExplosionRadius   = 50.0
	PiercingUnlimited = 9999 // sentinel: the laser beam never exhausts
	HeavyDropChance   = 0.4
	HealthPackValue   = 30
	LaserBulletSpeed  = 8.0
	MachineGunOffsetX = 15.0
	MuzzleOffsetY     = 10.0
	EnemyMuzzleOffset = 20.0

	// Rogue selection.
	RogueOfferCount    = 3
	RogueSelectWindow  = 10.0
	RogueAutoPickDelay = 2.0
)

var (
	BackgroundColor = color.RGBA{10, 10, 25, 255}
	PlayerColor     = color.RGBA{60, 120, 255, 255}
	ShieldedColor   = color.RGBA{60, 120, 255, 128}
	ScoutColor      = color.RGBA{200, 200, 210, 255}
	HeavyColor      = color.RGBA{180, 80, 80, 255}
	CarrierColor    = color.RGBA{140, 110, 200, 255}
	BossColor       = color.RGBA{230, 60, 60, 255}
	InvincibleTint  = color.RGBA{255, 128, 128, 200}
	PlayerShotColor = color.RGBA{255, 240, 120, 255}
	EnemyShotColor  = color.RGBA{255, 90, 90, 255}
	CritShotColor   = color.RGBA{255, 160, 40, 255}
	HealthPackColor = color.RGBA{80, 220, 120, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDimColor    = color.RGBA{150, 150, 160, 255}
	HealthBackColor = color.RGBA{60, 60, 60, 255}
	HealthHighColor = color.RGBA{50, 205, 50, 255}
	HealthMidColor  = color.RGBA{230, 200, 60, 255}
	HealthLowColor  = color.RGBA{220, 60, 60, 255}
	PanelColor      = color.RGBA{30, 30, 45, 230}
	PanelStroke     = color.RGBA{90, 90, 120, 255}
	ButtonColor     = color.RGBA{50, 50, 70, 255}
	ButtonHover     = color.RGBA{80, 80, 110, 255}
)
