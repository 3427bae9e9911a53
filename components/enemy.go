package components

import (
	"github.com/dmac/tilegame/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	TypeName  string            // "Moblin" etc...
	TintColor ebiten.ColorScale // Cached color tint from enemy type config

	// Heading is the direction the enemy walks every tick.
	Heading gamemath.Direction
}

var Enemy = donburi.NewComponentType[EnemyData]()
