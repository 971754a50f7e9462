// internal/app/game.go
package app

import (
	"go-star-fighter/internal/component"
	"go-star-fighter/internal/config"
	"go-star-fighter/internal/defs"
	"go-star-fighter/internal/entity"
	"go-star-fighter/internal/event"
	"go-star-fighter/internal/system"
	"go-star-fighter/internal/utils"
)

// Game owns one simulation: the ECS, the systems that advance it and the
// match session state. It lives for the whole process; StartBattle resets it
// for a fresh match while the equipped weapon and win count carry over.
type Game struct {
	ECS        *entity.ECS
	Dispatcher *event.Dispatcher
	RNG        *utils.PRNGService

	spawnSystem    *system.SpawnSystem
	movementSystem *system.MovementSystem
	attackSystem   *system.AttackSystem
	playerSystem   *system.PlayerSystem
	combatSystem   *system.CombatSystem
	RenderSystem   *system.RenderSystem

	// Session counters, credited by the destroy listener.
	Coins        int
	Wins         int
	sessionCoins int
	sessionExp   int
	sessionKills int

	// Rogue selection state. Offers is non-empty while a pick is pending.
	Offers        []defs.UpgradeDefinition
	pool          []defs.UpgradeDefinition
	poolPicks     map[defs.UpgradeID]int
	selectTimer   float64
	autoSelected  bool
	autoHoldTimer float64

	result *component.GameResult
	weapon defs.WeaponType
}

// NewGame builds a simulation seeded for reproducible runs. Seed 0 derives
// one from the clock.
func NewGame(seed int64) *Game {
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(seed)

	g := &Game{
		ECS:            ecs,
		Dispatcher:     dispatcher,
		RNG:            rng,
		spawnSystem:    system.NewSpawnSystem(ecs, rng),
		movementSystem: system.NewMovementSystem(ecs, rng),
		attackSystem:   system.NewAttackSystem(ecs, rng),
		playerSystem:   system.NewPlayerSystem(ecs, rng),
		combatSystem:   system.NewCombatSystem(ecs, rng, dispatcher),
		RenderSystem:   system.NewRenderSystem(ecs),
		weapon:         defs.WeaponMachineGun,
	}
	dispatcher.Subscribe(event.EnemyDestroyed, g)
	dispatcher.Subscribe(event.BossPhaseStarted, g)
	g.resetUpgradePool()
	return g
}

// StartBattle resets the match and spawns the player ship with the given
// weapon. The weapon choice persists for later restarts.
func (g *Game) StartBattle(weapon defs.WeaponType) {
	g.weapon = weapon
	g.ECS.Reset()
	g.result = nil
	g.sessionCoins = 0
	g.sessionExp = 0
	g.sessionKills = 0
	g.combatSystem.DamageDealt = 0
	g.clearRogueState()
	g.resetUpgradePool()
	g.createPlayer()
}

// RestartBattle starts a new match with the weapon of the previous one.
func (g *Game) RestartBattle() {
	g.StartBattle(g.weapon)
}

func (g *Game) createPlayer() {
	id := g.ECS.NewEntity()
	g.ECS.PlayerID = id
	g.ECS.Player = component.NewPlayer(component.NewWeapon(g.weapon))
	g.ECS.Positions[id] = &component.Position{X: config.PlayerStartX, Y: config.PlayerStartY}
	g.ECS.Velocities[id] = &component.Velocity{}
	g.ECS.Healths[id] = &component.Health{Value: config.PlayerMaxHealth, Max: config.PlayerMaxHealth}
	g.ECS.Renderables[id] = &component.Renderable{Color: config.PlayerColor, Radius: 12}
}

// Update advances the simulation one tick. While a rogue pick is pending
// only the selection timers run; a finished match does not advance at all.
func (g *Game) Update(deltaTime float64) {
	if g.result != nil {
		return
	}
	if g.RogueActive() {
		g.UpdateRogueSelection(deltaTime)
		return
	}

	g.ECS.GameTime += deltaTime
	g.spawnSystem.Update(deltaTime)
	g.movementSystem.Update(deltaTime)
	g.attackSystem.Update(deltaTime)
	g.playerSystem.Update(deltaTime)
	g.combatSystem.Update(deltaTime)

	g.checkGameOver()
	if g.result == nil {
		g.checkLevelUp()
	}
}

// MovePlayer shifts the ship by the given delta, clamped to the arena.
func (g *Game) MovePlayer(dx, dy float64) {
	pos, ok := g.ECS.Positions[g.ECS.PlayerID]
	if !ok {
		return
	}
	pos.X = utils.Clamp(pos.X+dx, config.PlayerMargin, config.ScreenWidth-config.PlayerMargin)
	pos.Y = utils.Clamp(pos.Y+dy, config.PlayerMargin, config.ScreenHeight-config.PlayerMargin)
}

// AbandonBattle discards the running match without producing a result.
func (g *Game) AbandonBattle() {
	g.ECS.Reset()
	g.result = nil
	g.clearRogueState()
}

func (g *Game) checkGameOver() {
	health, ok := g.ECS.Healths[g.ECS.PlayerID]
	if !ok || health.Value <= 0 {
		g.endGame(false)
		return
	}
	// Victory: the boss window has opened and no boss remains standing.
	if g.ECS.GameTime >= config.BossSpawnTime && !g.ECS.HasEnemyOfType(defs.EnemyBoss) {
		g.endGame(true)
	}
}

// Result returns the end-of-match snapshot, nil while a match runs.
func (g *Game) Result() *component.GameResult {
	return g.result
}

// Weapon returns the currently equipped weapon type.
func (g *Game) Weapon() defs.WeaponType {
	return g.weapon
}

// DamageDealt reports total damage dealt by the player this match.
func (g *Game) DamageDealt() int {
	return g.combatSystem.DamageDealt
}
