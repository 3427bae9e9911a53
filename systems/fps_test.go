package systems

import (
	"testing"
	"time"

	"github.com/dmac/tilegame/components"
)

func TestUpdateFPS(t *testing.T) {
	e := newTestWorld(t, "---", "-@-", "---")

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	ticks := []time.Duration{0, 250 * time.Millisecond, 500 * time.Millisecond, 750 * time.Millisecond, time.Second}
	var current time.Time
	now = func() time.Time { return current }
	t.Cleanup(func() { now = time.Now })

	entry, _ := components.FPS.First(e.World)
	fps := components.FPS.Get(entry)
	for i, d := range ticks {
		current = start.Add(d)
		UpdateFPS(e)
		if i < len(ticks)-1 && fps.Shown != 0 {
			t.Fatalf("fps published after %v", d)
		}
	}

	if fps.Shown != len(ticks) {
		t.Errorf("fps = %d, want %d", fps.Shown, len(ticks))
	}
	if fps.Count != 0 || fps.Elapsed != 0 {
		t.Errorf("counter not reset: count %d elapsed %v", fps.Count, fps.Elapsed)
	}
}

func TestUpdateClock(t *testing.T) {
	e := newTestWorld(t, "---", "-@-", "---")
	for range 3 {
		UpdateClock(e)
	}
	entry, _ := components.Clock.First(e.World)
	clock := components.Clock.Get(entry)
	if clock.Frame != 3 {
		t.Errorf("frame = %d, want 3", clock.Frame)
	}
	if clock.Delta != time.Second/60 {
		t.Errorf("delta = %v, want %v", clock.Delta, time.Second/60)
	}
}
