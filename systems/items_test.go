package systems

import (
	"testing"

	"github.com/dmac/tilegame/components"
	cfg "github.com/dmac/tilegame/config"
	"github.com/dmac/tilegame/shared/gamemath"
	"github.com/yohamta/donburi"
)

func TestItemFollowsOwnerFacing(t *testing.T) {
	tests := []struct {
		facing gamemath.Direction
		wantX  float64
		wantY  float64
	}{
		{gamemath.North, 64, 32},
		{gamemath.East, 96, 64},
		{gamemath.South, 64, 96},
		{gamemath.West, 32, 64},
	}

	for _, tt := range tests {
		t.Run(tt.facing.String(), func(t *testing.T) {
			e := newTestWorld(t,
				"-----",
				"-   -",
				"- @ -",
				"-   -",
				"-----",
			)
			components.Mobile.Get(playerOf(t, e)).Facing = tt.facing

			UpdateItems(e)

			player := components.Player.Get(playerOf(t, e))
			sword, _ := entryOf(e.World, player.Item)
			obj := components.Object.Get(sword)
			if obj.X != tt.wantX || obj.Y != tt.wantY {
				t.Errorf("sword at (%v, %v), want (%v, %v)", obj.X, obj.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestItemDamage(t *testing.T) {
	tests := []struct {
		name   string
		rows   []string
		active bool
		want   bool
	}{
		{
			name:   "active overlapping",
			rows:   []string{"---", "-@-", "-m-", "---"},
			active: true,
			want:   true,
		},
		{
			name:   "inactive overlapping",
			rows:   []string{"---", "-@-", "-m-", "---"},
			active: false,
			want:   false,
		},
		{
			name:   "active touching",
			rows:   []string{"---", "-@-", "- -", "-m-", "---"},
			active: true,
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestWorld(t, tt.rows...)
			swordOf(t, e).SetActive(tt.active)

			UpdateItems(e)

			enemy := enemiesOf(t, e)[0]
			got := enemy.HasComponent(components.DamageEvent)
			if got != tt.want {
				t.Fatalf("damage queued = %v, want %v", got, tt.want)
			}
			if got && components.DamageEvent.Get(enemy).Amount != cfg.Sword.Damage {
				t.Errorf("damage = %d, want %d", components.DamageEvent.Get(enemy).Amount, cfg.Sword.Damage)
			}
		})
	}
}

func TestItemWithoutOwnerDeactivates(t *testing.T) {
	e := newTestWorld(t, "---", "-@-", "---")
	sword := swordOf(t, e)
	sword.Activate()
	sword.Owner = donburi.Null

	UpdateItems(e)

	if sword.Active {
		t.Error("item without an owner should be inactive")
	}
}

func TestQueueDamageAccumulates(t *testing.T) {
	e := newTestWorld(t, "---", "-@-", "-m-", "---")
	enemy := enemiesOf(t, e)[0]

	queueDamage(enemy, 10, donburi.Null)
	queueDamage(enemy, 15, donburi.Null)

	if got := components.DamageEvent.Get(enemy).Amount; got != 25 {
		t.Errorf("queued damage = %d, want 25", got)
	}
}

func TestItemHitsSubPixelOverlapAcrossCells(t *testing.T) {
	e := newTestWorld(t, "---", "-@-", "- -", "-m-", "---")
	player := components.Object.Get(playerOf(t, e))
	player.Y = 32.5
	player.Update()

	enemy := enemiesOf(t, e)[0]
	enemyObj := components.Object.Get(enemy)
	enemyObj.Y = 96.2
	enemyObj.Update()

	swordOf(t, e).Activate()
	UpdateItems(e)

	if !enemy.HasComponent(components.DamageEvent) {
		t.Fatal("sword at y=64.5 overlaps the enemy at y=96.2 and should hit it")
	}
	if got := components.DamageEvent.Get(enemy).Amount; got != cfg.Sword.Damage {
		t.Errorf("damage = %d, want %d", got, cfg.Sword.Damage)
	}
}
