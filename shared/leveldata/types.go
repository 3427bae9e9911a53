// Package leveldata loads tile maps from the plain text grid format and from
// Tiled TMX files. It has no dependencies on ebitengine, donburi, or resolv.
package leveldata

import "github.com/dmac/tilegame/shared/gamemath"

// DefaultTileSize is the width and height in pixels of a text map cell.
const DefaultTileSize = 32

// TileKind is what occupies a map cell.
type TileKind int

const (
	Empty TileKind = iota
	Wall
	PlayerStart
	EnemyStart
)

func (k TileKind) String() string {
	switch k {
	case Wall:
		return "wall"
	case PlayerStart:
		return "player"
	case EnemyStart:
		return "enemy"
	}
	return "empty"
}

// Passable reports whether entities may walk through tiles of this kind.
// Spawn markers are floor once the level is populated.
func (k TileKind) Passable() bool {
	return k != Wall
}

// Tile is one loaded map cell. Tiles are immutable after load and identified
// by their grid position.
type Tile struct {
	Row, Col int
	Kind     TileKind
}

// Level is a loaded tile map.
type Level struct {
	Name string
	// Tiles holds every non-empty cell in row-major load order.
	Tiles      []Tile
	Rows, Cols int
	TileWidth  int
	TileHeight int

	index []int // Rows*Cols, position in Tiles or -1
}

func newLevel(name string, rows, cols, tileW, tileH int, tiles []Tile) *Level {
	l := &Level{
		Name:       name,
		Tiles:      tiles,
		Rows:       rows,
		Cols:       cols,
		TileWidth:  tileW,
		TileHeight: tileH,
		index:      make([]int, rows*cols),
	}
	for i := range l.index {
		l.index[i] = -1
	}
	for i, t := range tiles {
		l.index[t.Row*cols+t.Col] = i
	}
	return l
}

// TileAt returns the tile at (row, col). Cells outside the map or without a
// tile yield an Empty tile at that position.
func (l *Level) TileAt(row, col int) Tile {
	if row < 0 || col < 0 || row >= l.Rows || col >= l.Cols {
		return Tile{Row: row, Col: col, Kind: Empty}
	}
	if i := l.index[row*l.Cols+col]; i >= 0 {
		return l.Tiles[i]
	}
	return Tile{Row: row, Col: col, Kind: Empty}
}

// TileBounds returns the pixel rectangle covered by t.
func (l *Level) TileBounds(t Tile) gamemath.Rect {
	w, h := float64(l.TileWidth), float64(l.TileHeight)
	return gamemath.NewRect(float64(t.Col)*w, float64(t.Row)*h, w, h)
}

// Walls returns the wall tiles in load order.
func (l *Level) Walls() []Tile {
	return l.ofKind(Wall)
}

// EnemyStarts returns the enemy spawn markers in load order.
func (l *Level) EnemyStarts() []Tile {
	return l.ofKind(EnemyStart)
}

// PlayerStart returns the first player spawn marker.
func (l *Level) PlayerStart() (Tile, bool) {
	for _, t := range l.Tiles {
		if t.Kind == PlayerStart {
			return t, true
		}
	}
	return Tile{}, false
}

// PixelSize returns the map dimensions in pixels.
func (l *Level) PixelSize() (int, int) {
	return l.Cols * l.TileWidth, l.Rows * l.TileHeight
}

func (l *Level) ofKind(kind TileKind) []Tile {
	var out []Tile
	for _, t := range l.Tiles {
		if t.Kind == kind {
			out = append(out, t)
		}
	}
	return out
}
