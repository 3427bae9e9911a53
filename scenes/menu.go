package scenes

import (
	"sync"

	"github.com/charmbracelet/log"
	cfg "github.com/dmac/tilegame/config"
	"github.com/dmac/tilegame/shared/leveldata"
	"github.com/dmac/tilegame/systems"
	"github.com/dmac/tilegame/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene lets the player pick a level.
type MenuScene struct {
	sceneChanger SceneChanger
	levels       []*leveldata.Level
	names        []string
	titleUI      *ui.TitleUI
	once         sync.Once
	quit         bool
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger, levels []*leveldata.Level, names []string) *MenuScene {
	return &MenuScene{
		sceneChanger: sc,
		levels:       levels,
		names:        names,
	}
}

func (ms *MenuScene) Update() error {
	ms.once.Do(ms.configure)
	ms.titleUI.Update()

	if ms.quit {
		return ebiten.Termination
	}
	return nil
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Background)

	if ms.titleUI == nil {
		return
	}
	ms.titleUI.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.titleUI = ui.NewTitleUI(ms.names, cfg.Debug.Overlay, ms.play, ms.toggleDebug, func() {
		ms.quit = true
	})
	ms.titleUI.SetEnemiesSlain(systems.Stats().EnemiesSlain)
}

func (ms *MenuScene) play(index int) {
	log.Info("starting level", "level", ms.names[index])
	ms.sceneChanger.ChangeScene(NewWorldScene(ms.sceneChanger, ms.levels, ms.names, index))
}

func (ms *MenuScene) toggleDebug() bool {
	cfg.Debug.Overlay = !cfg.Debug.Overlay

	saved := systems.LoadSettings()
	if saved == nil {
		saved = &systems.SavedSettings{}
	}
	saved.Debug = cfg.Debug.Overlay
	_ = systems.SaveSettings(saved)

	return cfg.Debug.Overlay
}
