package factory

import (
	"time"

	"github.com/dmac/tilegame/archetypes"
	"github.com/dmac/tilegame/components"
	cfg "github.com/dmac/tilegame/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateRoster(ecs *ecs.ECS) *donburi.Entry {
	roster := archetypes.Roster.Spawn(ecs)
	components.Roster.SetValue(roster, components.RosterData{Player: donburi.Null})
	return roster
}

// CreateClock creates the simulation clock ticking at cfg.C.TPS.
func CreateClock(ecs *ecs.ECS) *donburi.Entry {
	clock := archetypes.Clock.Spawn(ecs)
	tps := cfg.C.TPS
	if tps <= 0 {
		tps = 60
	}
	components.Clock.SetValue(clock, components.ClockData{
		Delta: time.Second / time.Duration(tps),
	})
	return clock
}
