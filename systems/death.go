package systems

import (
	"github.com/charmbracelet/log"
	"github.com/dmac/tilegame/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SweepEnemies drops enemies whose health reached zero from the roster,
// the spatial hash and the world. Survivors keep their order.
func SweepEnemies(ecs *ecs.ECS) {
	roster := GetRoster(ecs)
	if roster == nil {
		return
	}

	removed := roster.Sweep(func(e donburi.Entity) bool {
		entry, ok := entryOf(ecs.World, e)
		if !ok {
			return true
		}
		return components.Health.Get(entry).Dead()
	})

	slain := 0
	for _, e := range removed {
		entry, ok := entryOf(ecs.World, e)
		if !ok {
			continue
		}
		log.Info("enemy slain", "type", components.Enemy.Get(entry).TypeName, "remaining", len(roster.Enemies))
		destroyEntity(ecs, entry)
		slain++
	}
	if slain > 0 {
		RecordKills(slain)
	}
}

// destroyEntity removes e and its collision object.
func destroyEntity(ecs *ecs.ECS, e *donburi.Entry) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok && e.HasComponent(components.Object) {
		space := components.Space.Get(spaceEntry)
		if obj := components.Object.Get(e); obj.Object != nil {
			space.Remove(obj.Object)
		}
	}
	ecs.World.Remove(e.Entity())
}
