// pkg/render/draw.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Face is the single UI font face used across the game.
var Face font.Face = basicfont.Face7x13

// FillRect draws a filled axis-aligned rectangle.
func FillRect(screen *ebiten.Image, x, y, w, h float32, clr color.Color) {
	vector.DrawFilledRect(screen, x, y, w, h, clr, true)
}

// StrokeRect draws a rectangle outline.
func StrokeRect(screen *ebiten.Image, x, y, w, h, width float32, clr color.Color) {
	vector.StrokeRect(screen, x, y, w, h, width, clr, true)
}

// FillCircle draws a filled circle.
func FillCircle(screen *ebiten.Image, x, y, radius float32, clr color.Color) {
	vector.DrawFilledCircle(screen, x, y, radius, clr, true)
}

// DrawBar draws a horizontal gauge filled to ratio, clamped to [0,1].
func DrawBar(screen *ebiten.Image, x, y, w, h float32, ratio float64, back, fill color.Color) {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	FillRect(screen, x, y, w, h, back)
	if ratio > 0 {
		FillRect(screen, x, y, w*float32(ratio), h, fill)
	}
}

// DrawText draws a string with its baseline at y.
func DrawText(screen *ebiten.Image, s string, x, y int, clr color.Color) {
	text.Draw(screen, s, Face, x, y, clr)
}

// DrawTextCentered draws a string horizontally centered on centerX.
func DrawTextCentered(screen *ebiten.Image, s string, centerX, y int, clr color.Color) {
	bounds := text.BoundString(Face, s)
	text.Draw(screen, s, Face, centerX-bounds.Dx()/2, y, clr)
}
