package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FlashData tints a sprite after it takes damage. Strength runs from 1 back
// to 0 along the tween.
type FlashData struct {
	Tween    *gween.Tween
	Strength float32
}

// Active reports whether the flash is still visible.
func (f *FlashData) Active() bool {
	return f.Tween != nil && f.Strength > 0
}

var Flash = donburi.NewComponentType[FlashData]()
