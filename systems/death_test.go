package systems

import (
	"testing"

	"github.com/dmac/tilegame/components"
	"github.com/dmac/tilegame/tags"
)

func TestSweepEnemies(t *testing.T) {
	e := newTestWorld(t,
		"------",
		"-@mmm-",
		"------",
	)
	enemies := enemiesOf(t, e)
	for i, hp := range []int{0, 5, -3} {
		components.Health.Get(enemies[i]).Current = hp
	}

	SweepEnemies(e)

	roster := GetRoster(e)
	if len(roster.Enemies) != 1 {
		t.Fatalf("%d enemies left, want 1", len(roster.Enemies))
	}
	if roster.Enemies[0] != enemies[1].Entity() {
		t.Error("the surviving enemy should be the one with health left")
	}
	if e.World.Valid(enemies[0].Entity()) || e.World.Valid(enemies[2].Entity()) {
		t.Error("dead enemies should be removed from the world")
	}

	spaceEntry, _ := components.Space.First(e.World)
	inSpace := 0
	for _, obj := range components.Space.Get(spaceEntry).Objects() {
		if obj.HasTags(tags.ResolvEnemy) {
			inSpace++
		}
	}
	if inSpace != 1 {
		t.Errorf("%d enemy objects in space, want 1", inSpace)
	}
}

func TestSweepKeepsOrder(t *testing.T) {
	e := newTestWorld(t,
		"-------",
		"-@mmmm-",
		"-------",
	)
	enemies := enemiesOf(t, e)
	components.Health.Get(enemies[1]).Current = 0

	SweepEnemies(e)

	want := []int{0, 2, 3}
	roster := GetRoster(e)
	if len(roster.Enemies) != len(want) {
		t.Fatalf("%d enemies left, want %d", len(roster.Enemies), len(want))
	}
	for i, idx := range want {
		if roster.Enemies[i] != enemies[idx].Entity() {
			t.Errorf("roster[%d] is not enemy %d", i, idx)
		}
	}
}

func TestSweepWithoutDeaths(t *testing.T) {
	e := newTestWorld(t, "----", "-@m-", "----")
	SweepEnemies(e)
	if n := len(GetRoster(e).Enemies); n != 1 {
		t.Errorf("%d enemies left, want 1", n)
	}
}
