// internal/state/menu_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-star-fighter/internal/config"
	"go-star-fighter/internal/ui"
	"go-star-fighter/pkg/render"
)

var _ State = (*MenuState)(nil)

// MenuState is the title screen: start a run or log in.
type MenuState struct {
	ctx         *Context
	startButton *ui.Button
	loginButton *ui.Button
}

func NewMenuState(ctx *Context) *MenuState {
	centerX := config.ScreenWidth / 2
	return &MenuState{
		ctx:         ctx,
		startButton: ui.NewButton(centerX-100, 280, 200, 40, "1. Start Game"),
		loginButton: ui.NewButton(centerX-100, 340, 200, 40, "2. Login"),
	}
}

func (s *MenuState) Enter() {}
func (s *MenuState) Exit()  {}

func (s *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.Key1) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) || s.startButton.Clicked() {
		s.ctx.Machine.SetState(NewWeaponSelectState(s.ctx))
		return
	}
	if s.ctx.Auth.Enabled() && !s.ctx.User.LoggedIn {
		if inpututil.IsKeyJustPressed(ebiten.Key2) || s.loginButton.Clicked() {
			s.ctx.Machine.SetState(NewLoginState(s.ctx))
		}
	}
}

func (s *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	centerX := config.ScreenWidth / 2

	render.DrawTextCentered(screen, "STAR FIGHTER", centerX, 160, config.TextLightColor)
	render.DrawTextCentered(screen, identityLine(s.ctx), centerX, 200, config.TextDimColor)
	render.DrawTextCentered(screen, fmt.Sprintf("Wins: %d", s.ctx.Game.Wins), centerX, 220, config.TextDimColor)

	s.startButton.Draw(screen)
	switch {
	case s.ctx.User.LoggedIn:
		render.DrawTextCentered(screen, "Logged in", centerX, 365, config.TextDimColor)
	case s.ctx.Auth.Enabled():
		s.loginButton.Draw(screen)
	default:
		render.DrawTextCentered(screen, "Login unavailable (no account database)", centerX, 365, config.TextDimColor)
	}
}

func identityLine(ctx *Context) string {
	if ctx.User.LoggedIn {
		return "Pilot: " + ctx.User.Username
	}
	return "Pilot: Guest"
}
