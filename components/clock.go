package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ClockData is the simulation clock. Delta is fixed at one tick.
type ClockData struct {
	Delta time.Duration
	Frame int
}

var Clock = donburi.NewComponentType[ClockData]()

// FPSData counts rendered frames per wall-clock second for the HUD.
type FPSData struct {
	Count   int
	Shown   int
	Elapsed time.Duration
	Last    time.Time
}

var FPS = donburi.NewComponentType[FPSData]()
