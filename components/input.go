package components

import (
	cfg "github.com/dmac/tilegame/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

// Action returns the state of id for this frame.
func (in *InputData) Action(id cfg.ActionID) ActionState {
	if id <= cfg.ActionNone || id >= cfg.ActionCount {
		return ActionState{}
	}
	cur, prev := in.Current[id], in.Previous[id]
	return ActionState{
		Pressed:      cur,
		JustPressed:  cur && !prev,
		JustReleased: !cur && prev,
	}
}

// Advance moves the current frame into Previous and records a new one.
func (in *InputData) Advance(current [cfg.ActionCount]bool) {
	in.Previous = in.Current
	in.Current = current
}

var Input = donburi.NewComponentType[InputData]()
