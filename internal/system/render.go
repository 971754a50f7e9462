// internal/system/render.go
package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"go-star-fighter/internal/config"
	"go-star-fighter/internal/defs"
	"go-star-fighter/internal/entity"
	"go-star-fighter/pkg/render"
)

// RenderSystem draws every entity as a circle plus its overlays: enemy
// health bars, the boss shield tint and the player's post-hit flicker.
type RenderSystem struct {
	ecs *entity.ECS
}

func NewRenderSystem(ecs *entity.ECS) *RenderSystem {
	return &RenderSystem{ecs: ecs}
}

func (s *RenderSystem) Draw(screen *ebiten.Image, gameTime float64) {
	for id, r := range s.ecs.Renderables {
		pos, hasPos := s.ecs.Positions[id]
		if !hasPos {
			continue
		}

		clr := r.Color
		if enemy, isEnemy := s.ecs.Enemies[id]; isEnemy && enemy.Invincible {
			clr = config.ShieldedColor
		}
		if id == s.ecs.PlayerID && s.ecs.Player != nil && s.ecs.Player.InvincibilityTimer > 0 {
			// 10Hz flicker while the mercy window runs.
			if math.Mod(gameTime, 0.2) < 0.1 {
				clr = config.InvincibleTint
			}
		}

		if r.HasStroke {
			render.FillCircle(screen, float32(pos.X), float32(pos.Y), r.Radius+2, config.PanelStroke)
		}
		render.FillCircle(screen, float32(pos.X), float32(pos.Y), r.Radius, clr)
	}

	for id, enemy := range s.ecs.Enemies {
		if enemy.Type == defs.EnemyScout {
			continue
		}
		pos := s.ecs.Positions[id]
		health := s.ecs.Healths[id]
		r := s.ecs.Renderables[id]
		if pos == nil || health == nil || r == nil {
			continue
		}
		s.drawHealthBar(screen, float32(pos.X), float32(pos.Y)-r.Radius-8, health.Value, health.Max)
	}
}

func (s *RenderSystem) drawHealthBar(screen *ebiten.Image, centerX, y float32, value, max int) {
	const barWidth, barHeight = 40, 4
	ratio := 0.0
	if max > 0 {
		ratio = float64(value) / float64(max)
	}
	fill := config.HealthHighColor
	switch {
	case ratio < 0.25:
		fill = config.HealthLowColor
	case ratio < 0.6:
		fill = config.HealthMidColor
	}
	render.DrawBar(screen, centerX-barWidth/2, y, barWidth, barHeight, ratio, config.HealthBackColor, fill)
}
