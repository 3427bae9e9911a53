package systems

import (
	"github.com/dmac/tilegame/assets"
	cfg "github.com/dmac/tilegame/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// DrawLevel clears the screen and draws a wall sprite on every wall tile.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Background)

	level := currentLevel(ecs)
	if level == nil {
		return
	}
	camX, camY := cameraOffset(ecs, screen)

	wall := assets.Sprite(cfg.SpriteWall)
	size := wall.Bounds().Size()
	opts := &ebiten.DrawImageOptions{}

	for _, tile := range level.Walls() {
		b := level.TileBounds(tile)
		opts.GeoM.Reset()
		opts.GeoM.Scale(b.W/float64(size.X), b.H/float64(size.Y))
		opts.GeoM.Translate(b.X+camX, b.Y+camY)
		screen.DrawImage(wall, opts)
	}
}
