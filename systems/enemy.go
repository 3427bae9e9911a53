package systems

import (
	"github.com/dmac/tilegame/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies queues each enemy's heading as this tick's move.
func UpdateEnemies(ecs *ecs.ECS) {
	roster := GetRoster(ecs)
	if roster == nil {
		return
	}
	for _, e := range roster.Enemies {
		entry, ok := entryOf(ecs.World, e)
		if !ok {
			continue
		}
		enemy := components.Enemy.Get(entry)
		components.Mobile.Get(entry).Request(enemy.Heading)
	}
}
