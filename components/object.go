package components

import (
	"github.com/dmac/tilegame/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

// Rect returns the object's bounds.
func (o *ObjectData) Rect() gamemath.Rect {
	return gamemath.NewRect(o.X, o.Y, o.W, o.H)
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the singleton spatial hash every entity object is added to.
var Space = donburi.NewComponentType[resolv.Space]()
