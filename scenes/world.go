package scenes

import (
	"sync"

	"github.com/charmbracelet/log"
	"github.com/dmac/tilegame/components"
	cfg "github.com/dmac/tilegame/config"
	"github.com/dmac/tilegame/shared/leveldata"
	"github.com/dmac/tilegame/systems"
	"github.com/dmac/tilegame/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WorldScene plays one level.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	levels       []*leveldata.Level
	names        []string
	index        int
	once         sync.Once
}

// NewWorldScene creates a scene that plays levels[index].
func NewWorldScene(sc SceneChanger, levels []*leveldata.Level, names []string, index int) *WorldScene {
	return &WorldScene{
		sceneChanger: sc,
		levels:       levels,
		names:        names,
		index:        index,
	}
}

func (ws *WorldScene) Update() error {
	ws.once.Do(ws.configure)
	ws.ecs.Update()

	if systems.GetOrCreateSettings(ws.ecs).Quit {
		systems.SaveCurrentSettings(ws.ecs)
		log.Info("quit requested")
		return ebiten.Termination
	}
	return nil
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Background)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePlayer)
	ecs.AddSystem(systems.UpdateEnemies)
	ecs.AddSystem(systems.UpdateMovement)
	ecs.AddSystem(systems.UpdateObjects)
	ecs.AddSystem(systems.UpdateItems)
	ecs.AddSystem(systems.UpdateCombat)
	ecs.AddSystem(systems.UpdateEffects)
	ecs.AddSystem(systems.SweepEnemies)
	ecs.AddSystem(systems.UpdateCamera)
	ecs.AddSystem(systems.UpdateFPS)

	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawSprites)
	ecs.AddRenderer(cfg.Default, systems.DrawHealthBars)
	ecs.AddRenderer(cfg.Overlay, systems.DrawHUD)
	ecs.AddRenderer(cfg.Overlay, systems.DrawDebug)

	ws.ecs = ecs

	factory.CreateClock(ws.ecs)
	level := factory.CreateLevel(ws.ecs, ws.levels, ws.names, ws.index)
	factory.PopulateLevel(ws.ecs, components.Level.Get(level).Current)

	systems.GetOrCreateSettings(ws.ecs)
	systems.SaveCurrentSettings(ws.ecs)
}
