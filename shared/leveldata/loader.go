package leveldata

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"
)

var (
	ErrEmptyLevel      = errors.New("level has no rows")
	ErrNoPlayerStart   = errors.New("level has no player start")
	// ErrIncompleteLayer is returned for TMX tile layers smaller than the map.
	ErrIncompleteLayer = errors.New("tile layer does not cover the map")
)

func kindForRune(r rune) TileKind {
	switch r {
	case '-', '|':
		return Wall
	case '@':
		return PlayerStart
	case 'm':
		return EnemyStart
	}
	return Empty
}

// Parse reads a text map: one line per row, one character per column.
// '-' and '|' are walls, '@' is the player start and 'm' an enemy start.
// Every other character leaves the cell empty.
func Parse(r io.Reader) (*Level, error) {
	var (
		tiles []Tile
		rows  int
		cols  int
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		col := 0
		for _, ch := range line {
			if kind := kindForRune(ch); kind != Empty {
				tiles = append(tiles, Tile{Row: rows, Col: col, Kind: kind})
			}
			col++
		}
		cols = max(cols, col)
		rows++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}

	level := newLevel("", rows, cols, DefaultTileSize, DefaultTileSize, tiles)
	if err := validate(level); err != nil {
		return nil, err
	}
	return level, nil
}

// ParseString parses a text map held in memory.
func ParseString(s string) (*Level, error) {
	return Parse(strings.NewReader(s))
}

// LoadText parses the text map at p within fsys.
func LoadText(fsys fs.FS, p string) (*Level, error) {
	f, err := fsys.Open(p)
	if err != nil {
		return nil, fmt.Errorf("open level %s: %w", p, err)
	}
	defer f.Close()

	level, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse level %s: %w", p, err)
	}
	level.Name = stem(p)
	return level, nil
}

// Load picks the loader from the file extension.
func Load(fsys fs.FS, p string) (*Level, error) {
	switch strings.ToLower(path.Ext(p)) {
	case ".txt":
		return LoadText(fsys, p)
	case ".tmx":
		return LoadTMX(fsys, p)
	}
	return nil, fmt.Errorf("unsupported level format %q", p)
}

// LoadAll discovers every .txt and .tmx level in dir within fsys and loads
// them sorted by file name. It returns the levels and their names in the
// same order.
func LoadAll(fsys fs.FS, dir string) ([]*Level, []string, error) {
	var matches []string
	for _, ext := range []string{"txt", "tmx"} {
		pattern := path.Join(dir, "*."+ext)
		found, err := fs.Glob(fsys, pattern)
		if err != nil {
			return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
		}
		matches = append(matches, found...)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no levels found in %s", dir)
	}

	sort.Slice(matches, func(i, j int) bool {
		return path.Base(matches[i]) < path.Base(matches[j])
	})

	levels := make([]*Level, 0, len(matches))
	names := make([]string, 0, len(matches))
	for _, p := range matches {
		level, err := Load(fsys, p)
		if err != nil {
			return nil, nil, err
		}
		levels = append(levels, level)
		names = append(names, level.Name)
	}
	return levels, names, nil
}

func validate(l *Level) error {
	if l.Rows == 0 {
		return ErrEmptyLevel
	}
	if _, ok := l.PlayerStart(); !ok {
		return ErrNoPlayerStart
	}
	return nil
}

func stem(p string) string {
	base := path.Base(p)
	return strings.TrimSuffix(base, path.Ext(base))
}
