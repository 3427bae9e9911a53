package systems

import (
	"github.com/dmac/tilegame/assets"
	"github.com/dmac/tilegame/components"
	cfg "github.com/dmac/tilegame/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// DrawSprites renders the player, the enemies in roster order and any
// active item on top.
func DrawSprites(ecs *ecs.ECS, screen *ebiten.Image) {
	roster := GetRoster(ecs)
	if roster == nil {
		return
	}
	camX, camY := cameraOffset(ecs, screen)

	if entry, ok := entryOf(ecs.World, roster.Player); ok {
		drawSprite(screen, entry, camX, camY)
	}
	for _, e := range roster.Enemies {
		if entry, ok := entryOf(ecs.World, e); ok {
			drawSprite(screen, entry, camX, camY)
		}
	}

	components.Item.Each(ecs.World, func(e *donburi.Entry) {
		if components.Item.Get(e).Active {
			drawSprite(screen, e, camX, camY)
		}
	})
}

func drawSprite(screen *ebiten.Image, e *donburi.Entry, camX, camY float64) {
	img := assets.Sprite(components.Sprite.Get(e).Key)
	o := components.Object.Get(e)

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()

	size := img.Bounds().Size()
	drawOp.GeoM.Scale(o.W/float64(size.X), o.H/float64(size.Y))
	drawOp.GeoM.Translate(o.X+camX, o.Y+camY)

	if e.HasComponent(components.Enemy) {
		drawOp.ColorScale.ScaleWithColorScale(components.Enemy.Get(e).TintColor)
	}
	if e.HasComponent(components.Flash) {
		if flash := components.Flash.Get(e); flash.Active() {
			fade := 1 - 0.7*flash.Strength
			drawOp.ColorScale.Scale(1, fade, fade, 1)
		}
	}

	screen.DrawImage(img, drawOp)
}

// DrawHealthBars draws a bar above every enemy that was hit recently.
func DrawHealthBars(ecs *ecs.ECS, screen *ebiten.Image) {
	camX, camY := cameraOffset(ecs, screen)

	components.HealthBar.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Health) {
			return
		}
		hp := components.Health.Get(e)
		o := components.Object.Get(e)

		ratio := float32(hp.Current) / float32(hp.Max)
		if ratio < 0 {
			ratio = 0
		}

		x := float32(o.X + camX + (o.W-cfg.UI.HealthBarWidth)/2)
		y := float32(o.Y + camY - cfg.UI.HealthBarMargin - cfg.UI.HealthBarHeight)
		w := float32(cfg.UI.HealthBarWidth)
		h := float32(cfg.UI.HealthBarHeight)

		vector.FillRect(screen, x, y, w, h, cfg.RGBA(cfg.UI.HealthBarBgColor), false)
		vector.FillRect(screen, x, y, w*ratio, h, cfg.RGBA(cfg.UI.HealthBarFgColor), false)
	})
}
