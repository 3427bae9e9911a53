package systems

import (
	"math"
	"strings"
	"testing"

	"github.com/dmac/tilegame/components"
	"github.com/dmac/tilegame/shared/leveldata"
	"github.com/dmac/tilegame/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newTestWorld populates a world from a text map given one row per argument.
func newTestWorld(t *testing.T, rows ...string) *ecs.ECS {
	t.Helper()
	level, err := leveldata.ParseString(strings.Join(rows, "\n"))
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	level.Name = "test"

	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateClock(e)
	factory.CreateLevel(e, []*leveldata.Level{level}, []string{level.Name}, 0)
	factory.PopulateLevel(e, level)
	return e
}

func playerOf(t *testing.T, e *ecs.ECS) *donburi.Entry {
	t.Helper()
	entry, ok := entryOf(e.World, GetRoster(e).Player)
	if !ok {
		t.Fatal("player missing from roster")
	}
	return entry
}

func enemiesOf(t *testing.T, e *ecs.ECS) []*donburi.Entry {
	t.Helper()
	var out []*donburi.Entry
	for _, id := range GetRoster(e).Enemies {
		entry, ok := entryOf(e.World, id)
		if !ok {
			t.Fatalf("roster holds removed enemy %v", id)
		}
		out = append(out, entry)
	}
	return out
}

func swordOf(t *testing.T, e *ecs.ECS) *components.ItemData {
	t.Helper()
	player := components.Player.Get(playerOf(t, e))
	entry, ok := entryOf(e.World, player.Item)
	if !ok {
		t.Fatal("player has no item")
	}
	return components.Item.Get(entry)
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
