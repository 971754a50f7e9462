// internal/state/rogue_state.go
package state

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-star-fighter/internal/config"
	"go-star-fighter/internal/ui"
	"go-star-fighter/pkg/render"
)

// dimColor darkens the battle behind the offer cards.
var dimColor = color.RGBA{0, 0, 0, 128}

var _ State = (*RogueSelectionState)(nil)

// RogueSelectionState overlays the paused battle with the three upgrade
// offers. The battle stays visible behind the cards; play resumes when a
// pick completes, possibly chaining into the next offer.
type RogueSelectionState struct {
	ctx      *Context
	previous *BattleState
	cards    []*ui.RogueCard
}

func NewRogueSelectionState(ctx *Context, previous *BattleState) *RogueSelectionState {
	return &RogueSelectionState{ctx: ctx, previous: previous}
}

func (s *RogueSelectionState) Enter() {
	s.layoutCards()
}

func (s *RogueSelectionState) Exit() {}

func (s *RogueSelectionState) layoutCards() {
	offers := s.ctx.Game.Offers
	const cardW, cardH, gap = 180, 220, 30
	total := len(offers)*cardW + (len(offers)-1)*gap
	x := float32(config.ScreenWidth-total) / 2
	y := float32(config.ScreenHeight-cardH) / 2

	s.cards = s.cards[:0]
	for i, upgrade := range offers {
		s.cards = append(s.cards, &ui.RogueCard{
			X: x + float32(i)*(cardW+gap), Y: y, W: cardW, H: cardH,
			Upgrade: upgrade,
			Index:   i,
		})
	}
}

func (s *RogueSelectionState) Update(deltaTime float64) {
	game := s.ctx.Game
	if !game.AutoSelected() {
		for i := range s.cards {
			key := ebiten.Key1 + ebiten.Key(i)
			if inpututil.IsKeyJustPressed(key) || s.cardClicked(i) {
				game.SelectRogueUpgrade(i)
				break
			}
		}
	}

	game.Update(deltaTime)

	if !game.RogueActive() {
		s.ctx.Machine.SetState(s.previous)
		return
	}
	// A completed pick can chain straight into the next offer.
	if s.offersChanged() {
		s.layoutCards()
	}
}

func (s *RogueSelectionState) offersChanged() bool {
	offers := s.ctx.Game.Offers
	if len(offers) != len(s.cards) {
		return true
	}
	for i, card := range s.cards {
		if card.Upgrade.ID != offers[i].ID {
			return true
		}
	}
	return false
}

func (s *RogueSelectionState) cardClicked(i int) bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	x, y := ebiten.CursorPosition()
	card := s.cards[i]
	rect := image.Rect(int(card.X), int(card.Y), int(card.X+card.W), int(card.Y+card.H))
	return image.Pt(x, y).In(rect)
}

func (s *RogueSelectionState) Draw(screen *ebiten.Image) {
	s.previous.Draw(screen)
	render.FillRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, dimColor)

	centerX := config.ScreenWidth / 2
	render.DrawTextCentered(screen, "LEVEL UP - CHOOSE AN UPGRADE", centerX, 120, config.TextLightColor)

	if s.ctx.Game.AutoSelected() {
		render.DrawTextCentered(screen, "Time's up - upgrade chosen automatically", centerX, 150, config.TextDimColor)
	} else {
		render.DrawTextCentered(screen,
			fmt.Sprintf("Auto-pick in %.0fs", s.ctx.Game.SelectTimeLeft()), centerX, 150, config.TextDimColor)
	}

	for _, card := range s.cards {
		card.Draw(screen, false)
	}
}
