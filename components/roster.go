package components

import (
	"github.com/yohamta/donburi"
)

// RosterData keeps the player and the live enemies in spawn order. Systems
// walk the roster instead of querying the world so that movement and combat
// visit enemies in a stable order.
type RosterData struct {
	Player  donburi.Entity
	Enemies []donburi.Entity
}

// Sweep removes every enemy for which dead returns true, keeping the
// survivors in their original order. The removed handles are returned.
func (r *RosterData) Sweep(dead func(donburi.Entity) bool) []donburi.Entity {
	var removed []donburi.Entity
	kept := r.Enemies[:0]
	for _, e := range r.Enemies {
		if dead(e) {
			removed = append(removed, e)
			continue
		}
		kept = append(kept, e)
	}
	clear(r.Enemies[len(kept):])
	r.Enemies = kept
	return removed
}

var Roster = donburi.NewComponentType[RosterData]()
