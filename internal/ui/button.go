// internal/ui/button.go
package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-star-fighter/internal/config"
	"go-star-fighter/pkg/render"
)

// Button is a clickable rectangle with a centered label.
type Button struct {
	Rect  image.Rectangle
	Label string
}

func NewButton(x, y, w, h int, label string) *Button {
	return &Button{
		Rect:  image.Rect(x, y, x+w, y+h),
		Label: label,
	}
}

func (b *Button) hovered() bool {
	x, y := ebiten.CursorPosition()
	return image.Pt(x, y).In(b.Rect)
}

// Clicked reports a left-click landing on the button this tick.
func (b *Button) Clicked() bool {
	return b.hovered() && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

func (b *Button) Draw(screen *ebiten.Image) {
	bg := config.ButtonColor
	if b.hovered() {
		bg = config.ButtonHover
	}
	render.FillRect(screen, float32(b.Rect.Min.X), float32(b.Rect.Min.Y),
		float32(b.Rect.Dx()), float32(b.Rect.Dy()), bg)
	render.StrokeRect(screen, float32(b.Rect.Min.X), float32(b.Rect.Min.Y),
		float32(b.Rect.Dx()), float32(b.Rect.Dy()), 2, config.PanelStroke)
	render.DrawTextCentered(screen, b.Label,
		(b.Rect.Min.X+b.Rect.Max.X)/2, (b.Rect.Min.Y+b.Rect.Max.Y)/2+4, config.TextLightColor)
}
