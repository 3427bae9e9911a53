package systems

import (
	"fmt"

	"github.com/dmac/tilegame/components"
	cfg "github.com/dmac/tilegame/config"
	"github.com/dmac/tilegame/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

const hudMargin = 10

// DrawHUD renders the frame counter and the number of enemies left.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	face := fonts.Mono.Get()
	color := cfg.RGBA(cfg.UI.HUDTextColor)
	lineHeight := face.Metrics().Height.Ceil()

	y := hudMargin + lineHeight
	if entry, ok := components.FPS.First(ecs.World); ok {
		fps := components.FPS.Get(entry)
		text.Draw(screen, fmt.Sprintf("%d", fps.Shown), face, hudMargin, y, color)
	}

	if roster := GetRoster(ecs); roster != nil {
		small := fonts.MonoSmall.Get()
		y += small.Metrics().Height.Ceil() + hudMargin/2
		text.Draw(screen, fmt.Sprintf("enemies %d", len(roster.Enemies)), small, hudMargin, y, color)
	}
}
