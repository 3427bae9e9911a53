package systems

import (
	"image/color"

	"github.com/dmac/tilegame/components"
	cfg "github.com/dmac/tilegame/config"
	"github.com/dmac/tilegame/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// debugTagOrder decides which colour wins for objects with several tags.
var debugTagOrder = []string{tags.ResolvSolid, tags.ResolvPlayer, tags.ResolvEnemy, tags.ResolvItem}

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	camX, camY := cameraOffset(ecs, screen)

	for _, obj := range space.Objects() {
		x := obj.X + camX
		y := obj.Y + camY

		c := color.RGBA{0, 255, 255, 255} // Cyan default
		for _, tag := range debugTagOrder {
			if obj.HasTags(tag) {
				c = cfg.RGBA(cfg.UI.DebugColors[tag])
				break
			}
		}

		// Draw outline
		vector.FillRect(screen, float32(x), float32(y), float32(obj.W), 1, c, false)         // Top
		vector.FillRect(screen, float32(x), float32(y+obj.H-1), float32(obj.W), 1, c, false) // Bottom
		vector.FillRect(screen, float32(x), float32(y), 1, float32(obj.H), c, false)         // Left
		vector.FillRect(screen, float32(x+obj.W-1), float32(y), 1, float32(obj.H), c, false) // Right
	}
}
