package leveldata

import (
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

// TileLayerName is the TMX tile layer read by LoadTMX.
const TileLayerName = "tiles"

// LoadTMX reads a Tiled map. Tiles come from the layer named "tiles"; the
// "kind" property of each tileset tile ("wall", "player" or "enemy") decides
// what the cell holds. Tiles without a known kind are ignored.
func LoadTMX(fsys fs.FS, p string) (*Level, error) {
	levelMap, err := tiled.LoadFile(p, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", p, err)
	}

	var layer *tiled.Layer
	for _, l := range levelMap.Layers {
		if l.Name == TileLayerName {
			layer = l
			break
		}
	}
	if layer == nil {
		return nil, fmt.Errorf("load TMX %s: no %q layer", p, TileLayerName)
	}

	if err := checkLayerSize(layer, levelMap.Width, levelMap.Height); err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", p, err)
	}

	var tiles []Tile
	for row := 0; row < levelMap.Height; row++ {
		for col := 0; col < levelMap.Width; col++ {
			tile := layer.Tiles[row*levelMap.Width+col]
			if tile.IsNil() {
				continue
			}
			tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID)
			if err != nil {
				continue
			}
			kind := kindForName(tilesetTile.Properties.GetString("kind"))
			if kind == Empty {
				continue
			}
			tiles = append(tiles, Tile{Row: row, Col: col, Kind: kind})
		}
	}

	level := newLevel(stem(p), levelMap.Height, levelMap.Width, levelMap.TileWidth, levelMap.TileHeight, tiles)
	if err := validate(level); err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", p, err)
	}
	return level, nil
}

// checkLayerSize rejects layers that do not cover the whole map, such as
// the chunked layers of infinite maps.
func checkLayerSize(layer *tiled.Layer, width, height int) error {
	if len(layer.Tiles) < width*height {
		return fmt.Errorf("%w: layer %q has %d tiles, map is %dx%d", ErrIncompleteLayer, layer.Name, len(layer.Tiles), width, height)
	}
	return nil
}

func kindForName(name string) TileKind {
	switch name {
	case "wall":
		return Wall
	case "player":
		return PlayerStart
	case "enemy":
		return EnemyStart
	}
	return Empty
}
