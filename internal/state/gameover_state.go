// internal/state/gameover_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-star-fighter/internal/config"
	"go-star-fighter/internal/defs"
	"go-star-fighter/pkg/render"
)

var _ State = (*GameOverState)(nil)

// GameOverState shows the frozen match result and offers a restart.
type GameOverState struct {
	ctx *Context
}

func NewGameOverState(ctx *Context) *GameOverState {
	return &GameOverState{ctx: ctx}
}

func (s *GameOverState) Enter() {}
func (s *GameOverState) Exit()  {}

func (s *GameOverState) Update(deltaTime float64) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		s.ctx.Game.RestartBattle()
		s.ctx.Machine.SetState(NewBattleState(s.ctx))
	case inpututil.IsKeyJustPressed(ebiten.KeyW):
		s.ctx.Machine.SetState(NewWeaponSelectState(s.ctx))
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		s.ctx.Machine.SetState(NewMenuState(s.ctx))
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	centerX := config.ScreenWidth / 2

	result := s.ctx.Game.Result()
	if result == nil {
		render.DrawTextCentered(screen, "GAME OVER", centerX, 160, config.TextLightColor)
		return
	}

	title := "DEFEAT"
	titleColor := config.HealthLowColor
	if result.Victory {
		title = "VICTORY"
		titleColor = config.HealthHighColor
	}
	render.DrawTextCentered(screen, title, centerX, 140, titleColor)

	lines := []string{
		fmt.Sprintf("Survived: %.1fs", result.SurvivalTime),
		fmt.Sprintf("Level reached: %d", result.FinalLevel),
		fmt.Sprintf("Enemies defeated: %d", result.EnemiesDefeated),
		fmt.Sprintf("Damage dealt: %d", result.TotalDamageDealt),
		fmt.Sprintf("Coins earned: %d", result.CoinsEarned),
		fmt.Sprintf("Experience gained: %d", result.ExperienceGained),
		fmt.Sprintf("Weapon: %s", defs.WeaponLibrary[result.WeaponUsed].Name),
	}
	y := 200
	for _, line := range lines {
		render.DrawTextCentered(screen, line, centerX, y, config.TextLightColor)
		y += 24
	}

	render.DrawTextCentered(screen, "R restart  -  W change weapon  -  ESC menu", centerX, y+30, config.TextDimColor)
}
