package systems

import (
	"github.com/charmbracelet/log"
	"github.com/dmac/tilegame/components"
	cfg "github.com/dmac/tilegame/config"
	"github.com/dmac/tilegame/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// moveBindings lists the movement actions in the order their directions
// are queued when several are held.
var moveBindings = []struct {
	action cfg.ActionID
	dir    gamemath.Direction
}{
	{cfg.ActionMoveUp, gamemath.North},
	{cfg.ActionMoveRight, gamemath.East},
	{cfg.ActionMoveDown, gamemath.South},
	{cfg.ActionMoveLeft, gamemath.West},
}

// UpdatePlayer turns input into movement requests and item use.
func UpdatePlayer(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	settings := GetOrCreateSettings(ecs)

	if input.Action(cfg.ActionQuit).JustPressed {
		settings.Quit = true
	}
	if input.Action(cfg.ActionToggleDebug).JustPressed {
		settings.Debug = !settings.Debug
		log.Debug("debug overlay toggled", "enabled", settings.Debug)
		SaveCurrentSettings(ecs)
	}

	roster := GetRoster(ecs)
	if roster == nil {
		return
	}
	playerEntry, ok := entryOf(ecs.World, roster.Player)
	if !ok {
		return
	}

	mobile := components.Mobile.Get(playerEntry)
	for _, b := range moveBindings {
		if input.Action(b.action).Pressed {
			mobile.Request(b.dir)
		}
	}

	player := components.Player.Get(playerEntry)
	itemEntry, ok := entryOf(ecs.World, player.Item)
	if !ok {
		return
	}
	item := components.Item.Get(itemEntry)
	use := input.Action(cfg.ActionUseItem)
	switch {
	case use.JustPressed:
		item.Activate()
	case use.JustReleased:
		item.Deactivate()
	}
}
