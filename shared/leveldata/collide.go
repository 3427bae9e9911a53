package leveldata

import "github.com/dmac/tilegame/shared/gamemath"

// Resolve pushes moving out of every wall it overlaps after travelling in
// dir. Walls are visited in load order and each correction is applied
// before the next wall is tested, so the result depends on tile order.
// The second return value reports whether any correction was made.
func (l *Level) Resolve(moving gamemath.Rect, dir gamemath.Direction) (gamemath.Rect, bool) {
	corrected := false
	for _, tile := range l.Tiles {
		if tile.Kind.Passable() {
			continue
		}
		if x, y, ok := gamemath.ResolveCollision(moving, l.TileBounds(tile), dir); ok {
			moving = moving.At(x, y)
			corrected = true
		}
	}
	return moving, corrected
}
