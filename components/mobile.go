package components

import (
	"github.com/dmac/tilegame/shared/gamemath"
	"github.com/yohamta/donburi"
)

// MobileData is shared by everything that walks on the tile map.
type MobileData struct {
	Speed  float64 // pixels per second
	Facing gamemath.Direction

	// Pending holds the directions requested this tick, resolved in order.
	Pending []gamemath.Direction

	// Blocked is set when a wall correction was applied during the last move.
	Blocked bool
}

// Request queues a move in dir for this tick.
func (m *MobileData) Request(dir gamemath.Direction) {
	m.Pending = append(m.Pending, dir)
}

var Mobile = donburi.NewComponentType[MobileData]()
