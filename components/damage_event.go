package components

import "github.com/yohamta/donburi"

// DamageEventData is queued on an entity with Health and applied once by the
// combat system. Several hits in one tick add up.
type DamageEventData struct {
	Amount int
	Source donburi.Entity // item that dealt the damage
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()
