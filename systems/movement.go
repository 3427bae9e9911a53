package systems

import (
	"time"

	"github.com/dmac/tilegame/components"
	"github.com/dmac/tilegame/shared/gamemath"
	"github.com/dmac/tilegame/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMovement applies pending moves, the player first and then enemies
// in roster order. Each direction is displaced and corrected against the
// level walls on its own, so diagonal input resolves one axis at a time.
func UpdateMovement(ecs *ecs.ECS) {
	roster := GetRoster(ecs)
	level := currentLevel(ecs)
	if roster == nil || level == nil {
		return
	}
	dt := tickDelta(ecs)

	if entry, ok := entryOf(ecs.World, roster.Player); ok {
		moveEntity(entry, level, dt)
	}
	for _, e := range roster.Enemies {
		if entry, ok := entryOf(ecs.World, e); ok {
			moveEntity(entry, level, dt)
		}
	}
}

func moveEntity(e *donburi.Entry, level *leveldata.Level, dt time.Duration) {
	mobile := components.Mobile.Get(e)
	obj := components.Object.Get(e)

	mobile.Blocked = false
	distance := gamemath.Distance(mobile.Speed, dt)
	for _, dir := range mobile.Pending {
		mobile.Facing = dir
		obj.X, obj.Y = gamemath.Displace(obj.X, obj.Y, distance, dir)

		bounds, corrected := level.Resolve(obj.Rect(), dir)
		if corrected {
			obj.X, obj.Y = bounds.X, bounds.Y
			mobile.Blocked = true
		}
	}
	mobile.Pending = mobile.Pending[:0]
}
