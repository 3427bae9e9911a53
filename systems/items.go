package systems

import (
	"github.com/dmac/tilegame/components"
	"github.com/dmac/tilegame/shared/gamemath"
	"github.com/dmac/tilegame/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateItems keeps every item in front of its owner and lets active items
// damage the enemies they overlap. A held item hits on every tick.
func UpdateItems(ecs *ecs.ECS) {
	roster := GetRoster(ecs)

	tags.Item.Each(ecs.World, func(e *donburi.Entry) {
		item := components.Item.Get(e)
		obj := components.Object.Get(e)

		owner, ok := entryOf(ecs.World, item.Owner)
		if !ok {
			item.Deactivate()
			return
		}

		facing := gamemath.South
		if owner.HasComponent(components.Mobile) {
			facing = components.Mobile.Get(owner).Facing
		}
		obj.X, obj.Y = components.Object.Get(owner).Rect().Ahead(facing, item.Reach)
		obj.Update()

		if !item.Active || roster == nil {
			return
		}

		// The spatial hash trims a pixel off each object's far edge, so a
		// sub-pixel overlap across a cell boundary shares no cell. Test
		// every live enemy instead.
		bounds := obj.Rect()
		for _, enemy := range roster.Enemies {
			enemyEntry, ok := entryOf(ecs.World, enemy)
			if !ok {
				continue
			}
			if !gamemath.Intersects(bounds, components.Object.Get(enemyEntry).Rect()) {
				continue
			}
			queueDamage(enemyEntry, item.Damage, e.Entity())
		}
	})
}

// queueDamage adds amount to the entity's pending damage for this tick.
func queueDamage(target *donburi.Entry, amount int, source donburi.Entity) {
	if target.HasComponent(components.DamageEvent) {
		components.DamageEvent.Get(target).Amount += amount
		return
	}
	donburi.Add(target, components.DamageEvent, &components.DamageEventData{
		Amount: amount,
		Source: source,
	})
}
