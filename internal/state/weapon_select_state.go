// internal/state/weapon_select_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-star-fighter/internal/config"
	"go-star-fighter/internal/defs"
	"go-star-fighter/pkg/render"
)

var _ State = (*WeaponSelectState)(nil)

// WeaponSelectState lets the player pick one of the three weapons before a
// match starts.
type WeaponSelectState struct {
	ctx *Context
}

func NewWeaponSelectState(ctx *Context) *WeaponSelectState {
	return &WeaponSelectState{ctx: ctx}
}

func (s *WeaponSelectState) Enter() {}
func (s *WeaponSelectState) Exit()  {}

func (s *WeaponSelectState) Update(deltaTime float64) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.Key1):
		s.start(defs.WeaponMachineGun)
	case inpututil.IsKeyJustPressed(ebiten.Key2):
		s.start(defs.WeaponLaser)
	case inpututil.IsKeyJustPressed(ebiten.Key3):
		s.start(defs.WeaponShotgun)
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		s.ctx.Machine.SetState(NewMenuState(s.ctx))
	}
}

func (s *WeaponSelectState) start(weapon defs.WeaponType) {
	s.ctx.Game.StartBattle(weapon)
	s.ctx.Machine.SetState(NewBattleState(s.ctx))
}

func (s *WeaponSelectState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	centerX := config.ScreenWidth / 2

	render.DrawTextCentered(screen, "SELECT WEAPON", centerX, 140, config.TextLightColor)

	y := 220
	for i, t := range []defs.WeaponType{defs.WeaponMachineGun, defs.WeaponLaser, defs.WeaponShotgun} {
		def := defs.WeaponLibrary[t]
		render.DrawTextCentered(screen,
			fmt.Sprintf("%d. %s", i+1, def.Name), centerX, y, config.TextLightColor)
		render.DrawTextCentered(screen,
			fmt.Sprintf("ATK %d  RATE %.2f/s  BULLETS %d", def.AttackPower, def.AttackSpeed, def.BulletCount),
			centerX, y+18, config.TextDimColor)
		y += 60
	}

	render.DrawTextCentered(screen, "ESC to go back", centerX, y+20, config.TextDimColor)
}
