package systems

import (
	"github.com/dmac/tilegame/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects advances damage flashes and health bar timers.
func UpdateEffects(ecs *ecs.ECS) {
	updateFlashEffects(ecs)
	updateHealthBars(ecs)
}

func updateFlashEffects(ecs *ecs.ECS) {
	dt := float32(tickDelta(ecs).Seconds())
	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Tween == nil {
			return
		}
		value, finished := flash.Tween.Update(dt)
		flash.Strength = value
		if finished {
			flash.Tween = nil
			flash.Strength = 0
		}
	})
}

// updateHealthBars hides health bars once their time runs out.
func updateHealthBars(ecs *ecs.ECS) {
	var toRemove []*donburi.Entry

	components.HealthBar.Each(ecs.World, func(e *donburi.Entry) {
		bar := components.HealthBar.Get(e)
		bar.TimeToLive--
		if bar.TimeToLive <= 0 {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		e.RemoveComponent(components.HealthBar)
	}
}
