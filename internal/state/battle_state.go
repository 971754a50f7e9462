// internal/state/battle_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-star-fighter/internal/config"
	"go-star-fighter/internal/ui"
)

var _ State = (*BattleState)(nil)

// BattleState runs the match: it feeds movement input into the simulation,
// advances it and hands off to the rogue selection or game-over screens.
type BattleState struct {
	ctx *Context
	hud *ui.HUD
}

func NewBattleState(ctx *Context) *BattleState {
	return &BattleState{ctx: ctx, hud: ui.NewHUD()}
}

func (s *BattleState) Enter() {}
func (s *BattleState) Exit()  {}

func (s *BattleState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.ctx.Game.AbandonBattle()
		s.ctx.Machine.SetState(NewMenuState(s.ctx))
		return
	}

	dx, dy := 0.0, 0.0
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dx -= config.PlayerSpeed * deltaTime
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dx += config.PlayerSpeed * deltaTime
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dy -= config.PlayerSpeed * deltaTime
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dy += config.PlayerSpeed * deltaTime
	}
	if dx != 0 || dy != 0 {
		s.ctx.Game.MovePlayer(dx, dy)
	}

	s.ctx.Game.Update(deltaTime)

	if s.ctx.Game.Result() != nil {
		s.ctx.Machine.SetState(NewGameOverState(s.ctx))
		return
	}
	if s.ctx.Game.RogueActive() {
		s.ctx.Machine.SetState(NewRogueSelectionState(s.ctx, s))
	}
}

func (s *BattleState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	s.ctx.Game.RenderSystem.Draw(screen, s.ctx.Game.ECS.GameTime)
	s.hud.Draw(screen, s.ctx.Game.Snapshot())
}
