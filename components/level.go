package components

import (
	"github.com/dmac/tilegame/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Current *leveldata.Level
	Index   int
	Levels  []*leveldata.Level
	Names   []string
}

var Level = donburi.NewComponentType[LevelData]()
