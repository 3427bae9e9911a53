package components

import (
	"github.com/yohamta/donburi"
)

type SpriteData struct {
	// Key names a cell of the spritesheet.
	Key string
}

var Sprite = donburi.NewComponentType[SpriteData]()
