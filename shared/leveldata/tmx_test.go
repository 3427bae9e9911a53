package leveldata

import (
	"errors"
	"testing"

	"github.com/lafriks/go-tiled"
)

func TestCheckLayerSize(t *testing.T) {
	full := make([]*tiled.LayerTile, 4*3)
	tests := []struct {
		name    string
		layer   *tiled.Layer
		wantErr bool
	}{
		{"full", &tiled.Layer{Name: TileLayerName, Tiles: full}, false},
		{"chunked", &tiled.Layer{Name: TileLayerName}, true},
		{"short", &tiled.Layer{Name: TileLayerName, Tiles: full[:5]}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkLayerSize(tt.layer, 4, 3)
			if (err != nil) != tt.wantErr {
				t.Fatalf("checkLayerSize() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrIncompleteLayer) {
				t.Errorf("error %v is not ErrIncompleteLayer", err)
			}
		})
	}
}
