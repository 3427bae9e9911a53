package factory

import (
	"github.com/dmac/tilegame/archetypes"
	"github.com/dmac/tilegame/components"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera places the camera at (x, y), usually the player spawn.
func CreateCamera(ecs *ecs.ECS, x, y float64) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{
		Position: math.NewVec2(x, y),
	})
}
