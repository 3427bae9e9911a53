package factory

import (
	"github.com/charmbracelet/log"
	"github.com/dmac/tilegame/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PopulateLevel builds the world for level: the space, one wall per wall
// tile, the roster, the player with a sword at the player start, the camera
// and one enemy per enemy start. It returns the player entry.
func PopulateLevel(ecs *ecs.ECS, level *leveldata.Level) *donburi.Entry {
	start, ok := level.PlayerStart()
	if !ok {
		panic("level " + level.Name + " has no player start")
	}

	width, height := level.PixelSize()
	CreateSpace(ecs, width, height, level.TileWidth, level.TileHeight)

	walls := level.Walls()
	for _, tile := range walls {
		b := level.TileBounds(tile)
		CreateWall(ecs, b.X, b.Y, b.W, b.H)
	}

	CreateRoster(ecs)

	spawn := level.TileBounds(start)
	player := CreatePlayer(ecs, spawn.X, spawn.Y)
	CreateSword(ecs, player)
	CreateCamera(ecs, spawn.X+spawn.W/2, spawn.Y+spawn.H/2)

	enemies := level.EnemyStarts()
	for _, tile := range enemies {
		b := level.TileBounds(tile)
		CreateEnemy(ecs, b.X, b.Y, "")
	}

	log.Info("level populated", "level", level.Name, "walls", len(walls), "enemies", len(enemies))
	return player
}
