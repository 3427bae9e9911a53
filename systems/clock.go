package systems

import (
	"time"

	"github.com/dmac/tilegame/components"
	cfg "github.com/dmac/tilegame/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances the frame counter. Every tick covers 1/TPS seconds.
func UpdateClock(ecs *ecs.ECS) {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		return
	}
	clock := components.Clock.Get(entry)
	clock.Frame++
	if clock.Delta == 0 && cfg.C.TPS > 0 {
		clock.Delta = time.Second / time.Duration(cfg.C.TPS)
	}
}

func tickDelta(ecs *ecs.ECS) time.Duration {
	if entry, ok := components.Clock.First(ecs.World); ok {
		return components.Clock.Get(entry).Delta
	}
	return time.Second / 60
}
