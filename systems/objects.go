package systems

import (
	"github.com/dmac/tilegame/components"
	"github.com/dmac/tilegame/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects refreshes the spatial hash cells of everything that moves.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		if e.HasComponent(tags.Wall) {
			continue
		}
		obj := components.Object.Get(e)
		obj.Update()
	}
}
