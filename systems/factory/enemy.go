package factory

import (
	"github.com/charmbracelet/log"
	"github.com/dmac/tilegame/archetypes"
	"github.com/dmac/tilegame/components"
	cfg "github.com/dmac/tilegame/config"
	"github.com/dmac/tilegame/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateEnemy(ecs *ecs.ECS, x, y float64, enemyTypeName string) *donburi.Entry {
	// Use the requested enemy type, falling back to the default type
	enemyType, exists := cfg.Enemy.Types[enemyTypeName]
	if !exists {
		if enemyTypeName != "" {
			log.Warn("unknown enemy type", "type", enemyTypeName, "fallback", cfg.Enemy.DefaultType)
		}
		enemyTypeName = cfg.Enemy.DefaultType
		enemyType = cfg.Enemy.Types[enemyTypeName]
	}

	enemy := archetypes.Enemy.Spawn(ecs)

	// Create collision object
	obj := resolv.NewObject(x, y, enemyType.Width, enemyType.Height)
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	obj.SetShape(resolv.NewRectangle(0, 0, enemyType.Width, enemyType.Height))
	obj.AddTags(tags.ResolvEnemy)
	obj.Data = enemy
	addToSpace(ecs, obj)

	enemyData := components.EnemyData{
		TypeName: enemyTypeName,
		Heading:  enemyType.Heading,
	}

	// Pre-calculate and cache color tint
	enemyData.TintColor.Reset()
	if enemyType.TintColor.A != 0 && enemyType.TintColor != cfg.White {
		r := float32(enemyType.TintColor.R) / 255.0
		g := float32(enemyType.TintColor.G) / 255.0
		b := float32(enemyType.TintColor.B) / 255.0
		a := float32(enemyType.TintColor.A) / 255.0
		enemyData.TintColor.Scale(r, g, b, a)
	}

	components.Enemy.SetValue(enemy, enemyData)
	components.Mobile.SetValue(enemy, components.MobileData{
		Speed:  enemyType.Speed,
		Facing: enemyType.Heading,
	})
	components.Health.SetValue(enemy, components.HealthData{
		Current: enemyType.Health,
		Max:     enemyType.Health,
	})
	components.Sprite.SetValue(enemy, components.SpriteData{Key: enemyType.SpriteKey})

	if roster, ok := components.Roster.First(ecs.World); ok {
		r := components.Roster.Get(roster)
		r.Enemies = append(r.Enemies, enemy.Entity())
	}

	return enemy
}
