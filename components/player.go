package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	// Item is the equipped item entity, donburi.Null when nothing is held.
	Item donburi.Entity
}

var Player = donburi.NewComponentType[PlayerData]()
