// tilegame is a top-down tile game: walk the player through a walled level
// and cut down the enemies with a sword.
//
// Usage:
//
//	tilegame                 - Open the level menu
//	tilegame --skip-menu     - Start the configured level directly
//	tilegame levels          - List the embedded levels
package main

import (
	"fmt"
	"image"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/dmac/tilegame/assets"
	"github.com/dmac/tilegame/config"
	"github.com/dmac/tilegame/fonts"
	"github.com/dmac/tilegame/scenes"
	"github.com/dmac/tilegame/shared/leveldata"
	"github.com/dmac/tilegame/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var (
	flagLevel    string
	flagConfig   string
	flagDebug    bool
	flagSkipMenu bool
	flagLogLevel string
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(levels []*leveldata.Level, names []string, levelIndex int) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewWorldScene(g, levels, names, levelIndex)
	} else {
		g.scene = scenes.NewMenuScene(g, levels, names)
	}

	return g
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

var rootCmd = &cobra.Command{
	Use:           "tilegame",
	Short:         "Top-down tile game",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGame,
}

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the embedded levels",
	RunE:  runLevels,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	rootCmd.Flags().StringVar(&flagLevel, "level", "", "Level to start with --skip-menu")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Show the collision overlay")
	rootCmd.Flags().BoolVar(&flagSkipMenu, "skip-menu", false, "Start the level directly")

	rootCmd.AddCommand(levelsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal("tilegame failed", "err", err)
	}
}

// setup applies logging and configuration shared by every command.
func setup() error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)

	path, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if path != "" {
		log.Info("loaded config", "path", path)
	}
	return nil
}

func runGame(cmd *cobra.Command, args []string) error {
	if err := setup(); err != nil {
		return err
	}

	// Saved settings sit between the config file and the command line.
	if err := systems.InitPersistence("tilegame"); err != nil {
		log.Warn("continuing without saved settings")
	}
	if saved := systems.LoadSettings(); saved != nil {
		config.Debug.Overlay = saved.Debug
		if saved.LastLevel != "" {
			config.C.Level = saved.LastLevel
		}
	}

	if cmd.Flags().Changed("debug") {
		config.Debug.Overlay = flagDebug
	}
	if cmd.Flags().Changed("skip-menu") {
		config.Debug.SkipMenu = flagSkipMenu
	}
	if flagLevel != "" {
		config.C.Level = flagLevel
	}

	levels, names, err := assets.LoadLevels()
	if err != nil {
		return err
	}
	levelIndex, err := findLevel(names, config.C.Level)
	if err != nil {
		if flagLevel != "" {
			return err
		}
		log.Warn("saved level not found, using first level", "level", config.C.Level)
		levelIndex = 0
	}

	if err := fonts.LoadDefaults(config.UI.HUDFontSize); err != nil {
		return err
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.TPS)

	return ebiten.RunGame(NewGame(levels, names, levelIndex))
}

func runLevels(cmd *cobra.Command, args []string) error {
	if err := setup(); err != nil {
		return err
	}

	levels, names, err := assets.LoadLevels()
	if err != nil {
		return err
	}

	maxNameLen := len("NAME")
	for _, name := range names {
		maxNameLen = max(maxNameLen, len(name))
	}

	fmt.Printf("%-*s  %-7s  %s\n", maxNameLen, "NAME", "SIZE", "ENEMIES")
	for i, level := range levels {
		size := fmt.Sprintf("%dx%d", level.Cols, level.Rows)
		fmt.Printf("%-*s  %-7s  %d\n", maxNameLen, names[i], size, len(level.EnemyStarts()))
	}
	return nil
}

func findLevel(names []string, name string) (int, error) {
	for i, n := range names {
		if n == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown level %q (available: %s)", name, strings.Join(names, ", "))
}
