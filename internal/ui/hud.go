// internal/ui/hud.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"go-star-fighter/internal/app"
	"go-star-fighter/internal/config"
	"go-star-fighter/internal/defs"
	"go-star-fighter/pkg/render"
)

// HUD draws the battle overlay: health and experience gauges, the match
// clock, coins and kills, and the boss bar when one is on screen.
type HUD struct{}

func NewHUD() *HUD {
	return &HUD{}
}

func (h *HUD) Draw(screen *ebiten.Image, snap app.HUDSnapshot) {
	// Health gauge, top left.
	healthRatio := 0.0
	if snap.MaxHealth > 0 {
		healthRatio = float64(snap.Health) / float64(snap.MaxHealth)
	}
	render.DrawBar(screen, 10, 10, 160, 14, healthRatio, config.HealthBackColor, config.HealthHighColor)
	render.DrawText(screen, fmt.Sprintf("HP %d/%d", snap.Health, snap.MaxHealth), 14, 21, config.TextLightColor)

	// Experience gauge directly below.
	xpRatio := 0.0
	if snap.ExperienceNeeded > 0 {
		xpRatio = float64(snap.Experience) / float64(snap.ExperienceNeeded)
	}
	render.DrawBar(screen, 10, 28, 160, 8, xpRatio, config.HealthBackColor, config.CarrierColor)
	render.DrawText(screen, fmt.Sprintf("LV %d", snap.Level), 176, 36, config.TextLightColor)

	render.DrawText(screen, fmt.Sprintf("Coins: %d", snap.Coins), 10, 52, config.TextDimColor)
	render.DrawText(screen, fmt.Sprintf("Kills: %d", snap.Kills), 10, 66, config.TextDimColor)
	render.DrawText(screen, weaponName(snap.Weapon), 10, 80, config.TextDimColor)

	// Match clock, top center.
	render.DrawTextCentered(screen, fmt.Sprintf("%.0fs", snap.GameTime), config.ScreenWidth/2, 21, config.TextLightColor)

	if snap.BossHealth >= 0 {
		h.drawBossBar(screen, snap)
	}
}

func (h *HUD) drawBossBar(screen *ebiten.Image, snap app.HUDSnapshot) {
	const barWidth, barHeight = 400, 12
	x := float32(config.ScreenWidth-barWidth) / 2
	ratio := 0.0
	if snap.BossMaxHealth > 0 {
		ratio = float64(snap.BossHealth) / float64(snap.BossMaxHealth)
	}
	fill := config.BossColor
	if snap.BossShielded {
		fill = config.ShieldedColor
	}
	render.DrawBar(screen, x, 36, barWidth, barHeight, ratio, config.HealthBackColor, fill)
	label := "BOSS"
	if snap.BossShielded {
		label = "BOSS [SHIELDED]"
	}
	render.DrawTextCentered(screen, label, config.ScreenWidth/2, 60, config.TextLightColor)
}

func weaponName(t defs.WeaponType) string {
	switch t {
	case defs.WeaponLaser:
		return "Laser"
	case defs.WeaponShotgun:
		return "Shotgun"
	default:
		return "Machinegun"
	}
}
