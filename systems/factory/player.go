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

func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	obj := resolv.NewObject(x, y, cfg.Player.Width, cfg.Player.Height)
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	obj.AddTags(tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, cfg.Player.Width, cfg.Player.Height))
	obj.Data = player
	addToSpace(ecs, obj)

	components.Player.SetValue(player, components.PlayerData{
		Item: donburi.Null,
	})
	components.Mobile.SetValue(player, components.MobileData{
		Speed:  cfg.Player.Speed,
		Facing: cfg.Player.Facing,
	})
	components.Sprite.SetValue(player, components.SpriteData{Key: cfg.Player.SpriteKey})

	if roster, ok := components.Roster.First(ecs.World); ok {
		components.Roster.Get(roster).Player = player.Entity()
	}

	return player
}
