package components

import "github.com/yohamta/donburi"

type SettingsData struct {
	Debug bool
	// Quit is set when the player asks to leave the game.
	Quit bool
}

var Settings = donburi.NewComponentType[SettingsData]()
