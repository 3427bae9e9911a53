package config

import (
	"image/color"

	"github.com/dmac/tilegame/shared/gamemath"
)

// Config holds window and loop settings.
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	TPS    int    `yaml:"tps"`
	Title  string `yaml:"title"`

	// Level is the name of the level started with --skip-menu.
	Level string `yaml:"level"`
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Speed  float64            `yaml:"speed"` // pixels per second
	Facing gamemath.Direction `yaml:"facing"`

	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	SpriteKey string `yaml:"sprite"`
}

// EnemyTypeConfig contains configuration for specific enemy types
type EnemyTypeConfig struct {
	Name    string             `yaml:"name"`
	Health  int                `yaml:"health"`
	Speed   float64            `yaml:"speed"`
	Heading gamemath.Direction `yaml:"heading"` // direction walked every tick

	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	SpriteKey string     `yaml:"sprite"`
	TintColor color.RGBA `yaml:"-"`
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	Types map[string]EnemyTypeConfig

	// DefaultType is used for spawn markers and for unknown type names.
	DefaultType string
}

// SwordConfig describes the item equipped on the player at level start.
type SwordConfig struct {
	Damage int     `yaml:"damage"` // per tick while overlapping
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	SpriteKey string `yaml:"sprite"`
}

type CombatConfig struct {
	HealthBarDuration int     `yaml:"health_bar_duration"` // frames
	FlashDuration     float32 `yaml:"flash_duration"`      // seconds
}

type UIConfig struct {
	HealthBarWidth  float64 `yaml:"health_bar_width"`
	HealthBarHeight float64 `yaml:"health_bar_height"`
	HealthBarMargin float64 `yaml:"health_bar_margin"`

	HealthBarBgColor [4]uint8 `yaml:"health_bar_bg"`
	HealthBarFgColor [4]uint8 `yaml:"health_bar_fg"`
	HUDTextColor     [4]uint8 `yaml:"hud_text"`

	DebugColors map[string][4]uint8 `yaml:"debug_colors"`

	HUDFontSize  float64 `yaml:"hud_font_size"`
	MenuFontSize float64 `yaml:"menu_font_size"`
}

type CameraConfig struct {
	FollowSmoothing float64 `yaml:"follow_smoothing"` // How fast camera follows player (0.0-1.0)
}

type DebugConfig struct {
	SkipMenu bool `yaml:"skip_menu"` // Skip menu and go directly to game
	Overlay  bool `yaml:"overlay"`   // Draw collision outlines
}

var C *Config
var Player PlayerConfig
var Enemy EnemyConfig
var Sword SwordConfig
var Combat CombatConfig
var UI UIConfig
var Camera CameraConfig
var Debug DebugConfig

var (
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Background = color.RGBA{R: 50, G: 50, B: 50, A: 255}
	LightBlue  = color.RGBA{R: 100, G: 180, B: 255, A: 255} // Hovered menu buttons
	DarkBlue   = color.RGBA{R: 60, G: 100, B: 160, A: 255}  // Idle menu buttons
)

// Sprite keys into the spritesheet.
const (
	SpritePlayer = "player"
	SpriteEnemy  = "enemy"
	SpriteSword  = "sword"
	SpriteWall   = "wall"
)

func init() {
	setDefaults()
}

func setDefaults() {
	C = &Config{
		Width:  800,
		Height: 600,
		TPS:    60,
		Title:  "tilegame",
		Level:  "basic",
	}

	Player = PlayerConfig{
		Speed:  200,
		Facing: gamemath.South,

		Width:  32,
		Height: 32,

		SpriteKey: SpritePlayer,
	}

	Enemy = EnemyConfig{
		DefaultType: "Moblin",
		Types: map[string]EnemyTypeConfig{
			"Moblin": {
				Name:    "Moblin",
				Health:  100,
				Speed:   50,
				Heading: gamemath.South,

				Width:  32,
				Height: 32,

				SpriteKey: SpriteEnemy,
				TintColor: color.RGBA{R: 255, G: 255, B: 255, A: 255},
			},
		},
	}

	Sword = SwordConfig{
		Damage: 10,
		Width:  32,
		Height: 32,

		SpriteKey: SpriteSword,
	}

	Combat = CombatConfig{
		HealthBarDuration: 90,
		FlashDuration:     0.15,
	}

	UI = UIConfig{
		HealthBarWidth:  32,
		HealthBarHeight: 4,
		HealthBarMargin: 4,

		HealthBarBgColor: [4]uint8{60, 0, 0, 200},
		HealthBarFgColor: [4]uint8{0, 220, 60, 255},
		HUDTextColor:     [4]uint8{255, 255, 255, 255},

		DebugColors: map[string][4]uint8{
			"solid":  {80, 160, 255, 255},
			"Player": {0, 255, 0, 255},
			"Enemy":  {255, 60, 60, 255},
			"Item":   {255, 255, 0, 255},
		},

		HUDFontSize:  24,
		MenuFontSize: 20,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.15,
	}

	Debug = DebugConfig{}
}

// RGBA converts a config colour tuple.
func RGBA(c [4]uint8) color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: c[3]}
}
