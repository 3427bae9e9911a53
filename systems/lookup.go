package systems

import (
	"github.com/dmac/tilegame/components"
	cfg "github.com/dmac/tilegame/config"
	"github.com/dmac/tilegame/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// entryOf resolves a stored handle. Handles of removed entities and
// donburi.Null report false.
func entryOf(w donburi.World, e donburi.Entity) (*donburi.Entry, bool) {
	if e == donburi.Null || !w.Valid(e) {
		return nil, false
	}
	return w.Entry(e), true
}

// GetRoster returns the roster singleton, or nil before a level is populated.
func GetRoster(ecs *ecs.ECS) *components.RosterData {
	entry, ok := components.Roster.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Roster.Get(entry)
}

func currentLevel(ecs *ecs.ECS) *leveldata.Level {
	entry, ok := components.Level.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Level.Get(entry).Current
}

func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{
			Debug: cfg.Debug.Overlay,
		})
	}
	return components.Settings.Get(entry)
}
