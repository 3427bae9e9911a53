package components

import (
	"github.com/yohamta/donburi"
)

// ItemData is an equippable item. It only deals damage while Active.
type ItemData struct {
	Owner  donburi.Entity
	Active bool
	Damage int

	// Reach is how far in front of the owner the item sits, in owner sizes.
	Reach float64
}

func (i *ItemData) Activate() {
	i.Active = true
}

func (i *ItemData) Deactivate() {
	i.Active = false
}

func (i *ItemData) SetActive(active bool) {
	if active {
		i.Activate()
	} else {
		i.Deactivate()
	}
}

var Item = donburi.NewComponentType[ItemData]()
