package systems

import (
	"math"

	"github.com/dmac/tilegame/components"
	"github.com/dmac/tilegame/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera follows the player, keeping the level on screen. Levels
// smaller than the window stay centred.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	level := currentLevel(e)
	roster := GetRoster(e)
	if level == nil || roster == nil {
		return
	}
	playerEntry, ok := entryOf(e.World, roster.Player)
	if !ok {
		return // no player, keep the camera where it is
	}
	bounds := components.Object.Get(playerEntry).Rect()

	targetX := bounds.X + bounds.W/2
	targetY := bounds.Y + bounds.H/2

	levelWidth, levelHeight := level.PixelSize()
	targetX = clampAxis(targetX, float64(config.C.Width), float64(levelWidth))
	targetY = clampAxis(targetY, float64(config.C.Height), float64(levelHeight))

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}

func clampAxis(target, screen, level float64) float64 {
	if level <= screen {
		return level / 2
	}
	return math.Max(screen/2, math.Min(level-screen/2, target))
}

// cameraOffset returns the translation from world to screen space.
func cameraOffset(e *ecs.ECS, screen *ebiten.Image) (float64, float64) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return 0, 0
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	return math.Round(float64(width)/2 - camera.Position.X), math.Round(float64(height)/2 - camera.Position.Y)
}
