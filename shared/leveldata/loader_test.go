package leveldata

import (
	"errors"
	"os"
	"testing"
	"testing/fstest"

	"github.com/dmac/tilegame/shared/gamemath"
)

func TestParseSmallMap(t *testing.T) {
	level, err := ParseString("--\n@-\n--")
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	if level.Rows != 3 || level.Cols != 2 {
		t.Fatalf("size = %dx%d, want 3x2", level.Rows, level.Cols)
	}

	want := []Tile{
		{0, 0, Wall}, {0, 1, Wall},
		{1, 0, PlayerStart}, {1, 1, Wall},
		{2, 0, Wall}, {2, 1, Wall},
	}
	if len(level.Tiles) != len(want) {
		t.Fatalf("got %d tiles, want %d", len(level.Tiles), len(want))
	}
	for i, tile := range want {
		if level.Tiles[i] != tile {
			t.Errorf("tile %d = %+v, want %+v", i, level.Tiles[i], tile)
		}
	}

	start, ok := level.PlayerStart()
	if !ok || start.Row != 1 || start.Col != 0 {
		t.Errorf("PlayerStart = %+v, %v; want row 1 col 0", start, ok)
	}
	if got := len(level.Walls()); got != 5 {
		t.Errorf("Walls() returned %d tiles, want 5", got)
	}
}

func TestParseCharacters(t *testing.T) {
	tests := []struct {
		ch   rune
		want TileKind
	}{
		{'-', Wall},
		{'|', Wall},
		{'@', PlayerStart},
		{'m', EnemyStart},
		{'M', Empty},
		{' ', Empty},
		{'x', Empty},
		{'.', Empty},
	}
	for _, tt := range tests {
		level, err := ParseString("@" + string(tt.ch))
		if err != nil {
			t.Fatalf("ParseString(%q): %v", tt.ch, err)
		}
		if got := level.TileAt(0, 1).Kind; got != tt.want {
			t.Errorf("%q parsed as %v, want %v", tt.ch, got, tt.want)
		}
	}
}

func TestTileAtOutOfBounds(t *testing.T) {
	level, err := ParseString("@-")
	if err != nil {
		t.Fatal(err)
	}
	for _, pos := range [][2]int{{-1, 0}, {0, -1}, {1, 0}, {0, 2}, {100, 100}} {
		tile := level.TileAt(pos[0], pos[1])
		if tile.Kind != Empty || tile.Row != pos[0] || tile.Col != pos[1] {
			t.Errorf("TileAt(%d, %d) = %+v, want empty sentinel", pos[0], pos[1], tile)
		}
	}
}

func TestTileBounds(t *testing.T) {
	level, err := ParseString("@\n\n  -")
	if err != nil {
		t.Fatal(err)
	}
	got := level.TileBounds(level.TileAt(2, 2))
	want := gamemath.NewRect(64, 64, 32, 32)
	if got != want {
		t.Errorf("TileBounds = %v, want %v", got, want)
	}
	w, h := level.PixelSize()
	if w != 96 || h != 96 {
		t.Errorf("PixelSize = %dx%d, want 96x96", w, h)
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := ParseString(""); !errors.Is(err, ErrEmptyLevel) {
		t.Errorf("empty map: got %v, want ErrEmptyLevel", err)
	}
	if _, err := ParseString("--\n-m"); !errors.Is(err, ErrNoPlayerStart) {
		t.Errorf("no player: got %v, want ErrNoPlayerStart", err)
	}
}

func TestLoadTextCRLF(t *testing.T) {
	level, err := LoadText(os.DirFS("testdata"), "crlf.txt")
	if err != nil {
		t.Fatalf("LoadText: %v", err)
	}
	if level.Name != "crlf" {
		t.Errorf("Name = %q, want crlf", level.Name)
	}
	if level.Cols != 4 {
		t.Errorf("Cols = %d, want 4 (carriage returns must not count)", level.Cols)
	}
	if got := len(level.EnemyStarts()); got != 1 {
		t.Errorf("EnemyStarts = %d, want 1", got)
	}
	if got := level.TileAt(2, 1).Kind; got != Empty {
		t.Errorf("TileAt(2, 1) = %v, want empty", got)
	}
}

func TestLoadTMX(t *testing.T) {
	level, err := Load(os.DirFS("testdata"), "small.tmx")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if level.TileWidth != 16 || level.TileHeight != 16 {
		t.Errorf("tile size = %dx%d, want 16x16", level.TileWidth, level.TileHeight)
	}
	if level.Rows != 3 || level.Cols != 4 {
		t.Errorf("size = %dx%d, want 3x4", level.Rows, level.Cols)
	}

	start, ok := level.PlayerStart()
	if !ok || start.Row != 1 || start.Col != 1 {
		t.Errorf("PlayerStart = %+v, %v; want row 1 col 1", start, ok)
	}
	if enemies := level.EnemyStarts(); len(enemies) != 1 || enemies[0].Col != 2 {
		t.Errorf("EnemyStarts = %+v, want one at col 2", enemies)
	}
	// The sword tile has no kind and is skipped.
	if got := level.TileAt(1, 3).Kind; got != Empty {
		t.Errorf("TileAt(1, 3) = %v, want empty", got)
	}
	if got := len(level.Walls()); got != 9 {
		t.Errorf("Walls = %d, want 9", got)
	}
}

func TestLoadAllSortsByName(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/zeta.txt":  {Data: []byte("@")},
		"levels/alpha.txt": {Data: []byte("-@")},
		"levels/notes.md":  {Data: []byte("ignored")},
	}
	levels, names, err := LoadAll(fsys, "levels")
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(levels) != 2 || names[0] != "alpha" || names[1] != "zeta" {
		t.Errorf("names = %v, want [alpha zeta]", names)
	}
	if levels[0].Name != "alpha" {
		t.Errorf("levels[0].Name = %q", levels[0].Name)
	}

	if _, _, err := LoadAll(fstest.MapFS{}, "levels"); err == nil {
		t.Error("expected error for a directory without levels")
	}
}

func TestLoadUnsupportedExtension(t *testing.T) {
	fsys := fstest.MapFS{"level.json": {Data: []byte("{}")}}
	if _, err := Load(fsys, "level.json"); err == nil {
		t.Error("expected error for .json level")
	}
}
