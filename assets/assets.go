package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"

	"github.com/dmac/tilegame/config"
	"github.com/dmac/tilegame/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

var (
	//go:embed all:levels
	levelFS embed.FS

	//go:embed images/spritesheet.png
	spritesheetPNG []byte
)

// LevelDir is the directory holding the embedded levels.
const LevelDir = "levels"

// SpriteSize is the edge length of a spritesheet cell.
const SpriteSize = 32

// spriteCells maps sprite keys to (column, row) cells of the spritesheet.
var spriteCells = map[string]image.Point{
	config.SpritePlayer: {X: 0, Y: 0},
	config.SpriteEnemy:  {X: 1, Y: 0},
	config.SpriteSword:  {X: 2, Y: 0},
	config.SpriteWall:   {X: 3, Y: 0},
}

// LoadLevels loads every embedded level, sorted by name.
func LoadLevels() ([]*leveldata.Level, []string, error) {
	return leveldata.LoadAll(levelFS, LevelDir)
}

type SpriteLoader struct {
	sheet *ebiten.Image
	cache map[string]*ebiten.Image
}

func NewSpriteLoader() *SpriteLoader {
	return &SpriteLoader{
		cache: make(map[string]*ebiten.Image),
	}
}

func (l *SpriteLoader) mustLoadSheet() *ebiten.Image {
	if l.sheet != nil {
		return l.sheet
	}
	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(spritesheetPNG))
	if err != nil {
		panic(fmt.Sprintf("Failed to create spritesheet image: %v", err))
	}
	l.sheet = img
	return img
}

// Sprite returns a cached sub-image for key. Unknown keys panic.
func (l *SpriteLoader) Sprite(key string) *ebiten.Image {
	if img, ok := l.cache[key]; ok {
		return img
	}

	cell, ok := spriteCells[key]
	if !ok {
		panic(fmt.Sprintf("Unknown sprite %q", key))
	}
	origin := cell.Mul(SpriteSize)
	rect := image.Rectangle{Min: origin, Max: origin.Add(image.Pt(SpriteSize, SpriteSize))}

	img := l.mustLoadSheet().SubImage(rect).(*ebiten.Image)
	l.cache[key] = img
	return img
}

var spriteLoader = NewSpriteLoader()

func Sprite(key string) *ebiten.Image {
	return spriteLoader.Sprite(key)
}
