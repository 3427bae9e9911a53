package factory

import (
	"github.com/dmac/tilegame/archetypes"
	"github.com/dmac/tilegame/components"
	"github.com/dmac/tilegame/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel stores the loaded levels and selects the one at levelIndex.
func CreateLevel(ecs *ecs.ECS, levels []*leveldata.Level, names []string, levelIndex int) *donburi.Entry {
	if len(levels) == 0 {
		panic("no levels loaded")
	}

	level := archetypes.Level.Spawn(ecs)

	// Clamp index to valid range
	if levelIndex < 0 || levelIndex >= len(levels) {
		levelIndex = 0
	}

	components.Level.Set(level, &components.LevelData{
		Current: levels[levelIndex],
		Index:   levelIndex,
		Levels:  levels,
		Names:   names,
	})

	return level
}
