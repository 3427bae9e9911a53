package systems

import (
	"time"

	"github.com/dmac/tilegame/components"
	"github.com/yohamta/donburi/ecs"
)

// now is swapped out in tests.
var now = time.Now

// UpdateFPS counts ticks against the wall clock and publishes the count
// once per second.
func UpdateFPS(ecs *ecs.ECS) {
	entry, ok := components.FPS.First(ecs.World)
	if !ok {
		return
	}
	fps := components.FPS.Get(entry)

	t := now()
	if !fps.Last.IsZero() {
		fps.Elapsed += t.Sub(fps.Last)
	}
	fps.Last = t
	fps.Count++

	if fps.Elapsed >= time.Second {
		fps.Shown = fps.Count
		fps.Count = 0
		fps.Elapsed -= time.Second
	}
}
