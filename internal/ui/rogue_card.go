// internal/ui/rogue_card.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"go-star-fighter/internal/config"
	"go-star-fighter/internal/defs"
	"go-star-fighter/pkg/render"
)

// RogueCard draws one upgrade offer. Cards are laid out by the selection
// state; the card only knows its own rectangle.
type RogueCard struct {
	X, Y, W, H float32
	Upgrade    defs.UpgradeDefinition
	Index      int
}

func (c *RogueCard) Draw(screen *ebiten.Image, highlighted bool) {
	border := defs.RarityColor(c.Upgrade.Rarity)
	render.FillRect(screen, c.X, c.Y, c.W, c.H, config.PanelColor)
	width := float32(2)
	if highlighted {
		width = 4
	}
	render.StrokeRect(screen, c.X, c.Y, c.W, c.H, width, border)

	centerX := int(c.X + c.W/2)
	render.DrawTextCentered(screen, fmt.Sprintf("[%d]", c.Index+1), centerX, int(c.Y)+24, config.TextDimColor)
	render.DrawTextCentered(screen, c.Upgrade.Icon, centerX, int(c.Y)+52, border)
	render.DrawTextCentered(screen, c.Upgrade.Name, centerX, int(c.Y)+80, config.TextLightColor)
	render.DrawTextCentered(screen, c.Upgrade.ShortDesc, centerX, int(c.Y)+100, border)
	render.DrawTextCentered(screen, string(c.Upgrade.Rarity), centerX, int(c.Y+c.H)-16, config.TextDimColor)
}
