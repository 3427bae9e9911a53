package systems

import (
	"github.com/charmbracelet/log"
	"github.com/dmac/tilegame/components"
	cfg "github.com/dmac/tilegame/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCombat applies queued damage events. Health is not clamped so that
// the sweep can remove anything at or below zero.
func UpdateCombat(ecs *ecs.ECS) {
	var events []*donburi.Entry
	components.DamageEvent.Each(ecs.World, func(e *donburi.Entry) {
		events = append(events, e)
	})

	for _, e := range events {
		applyDamage(e)
		// Remove the damage event component so it is processed only once.
		donburi.Remove[components.DamageEventData](e, components.DamageEvent)
	}
}

func applyDamage(e *donburi.Entry) {
	if !e.HasComponent(components.Health) {
		return
	}
	dmg := components.DamageEvent.Get(e)
	hp := components.Health.Get(e)
	hp.Current -= dmg.Amount

	name := "entity"
	if e.HasComponent(components.Enemy) {
		name = components.Enemy.Get(e).TypeName
	}
	log.Info("enemy damaged", "type", name, "health", hp.Current, "max", hp.Max)

	if e.HasComponent(components.HealthBar) {
		components.HealthBar.Get(e).TimeToLive = cfg.Combat.HealthBarDuration
	} else {
		donburi.Add(e, components.HealthBar, &components.HealthBarData{
			TimeToLive: cfg.Combat.HealthBarDuration,
		})
	}

	if e.HasComponent(components.Flash) {
		TriggerDamageFlash(e)
	}
}

// TriggerDamageFlash restarts the hit tint on e.
func TriggerDamageFlash(e *donburi.Entry) {
	flash := components.Flash.Get(e)
	flash.Tween = gween.New(1, 0, cfg.Combat.FlashDuration, ease.OutQuad)
	flash.Strength = 1
}
