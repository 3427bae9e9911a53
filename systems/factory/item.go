package factory

import (
	"github.com/dmac/tilegame/archetypes"
	"github.com/dmac/tilegame/components"
	cfg "github.com/dmac/tilegame/config"
	"github.com/dmac/tilegame/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSword creates an inactive sword held by owner and equips it when the
// owner is a player.
func CreateSword(ecs *ecs.ECS, owner *donburi.Entry) *donburi.Entry {
	sword := archetypes.Item.Spawn(ecs)

	ownerObj := components.Object.Get(owner)
	obj := resolv.NewObject(ownerObj.X, ownerObj.Y, cfg.Sword.Width, cfg.Sword.Height, tags.ResolvItem)
	obj.SetShape(resolv.NewRectangle(0, 0, cfg.Sword.Width, cfg.Sword.Height))
	obj.Data = sword
	components.Object.SetValue(sword, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Item.SetValue(sword, components.ItemData{
		Owner:  owner.Entity(),
		Damage: cfg.Sword.Damage,
		Reach:  1,
	})
	components.Sprite.SetValue(sword, components.SpriteData{Key: cfg.Sword.SpriteKey})

	if owner.HasComponent(components.Player) {
		components.Player.Get(owner).Item = sword.Entity()
	}

	return sword
}
