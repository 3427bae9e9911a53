package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dmac/tilegame/shared/gamemath"
)

func TestApplyKeepsMissingKeys(t *testing.T) {
	t.Cleanup(setDefaults)

	err := Apply([]byte(`
window:
  width: 1024
player:
  speed: 120
  facing: east
sword:
  damage: 25
`))
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if C.Width != 1024 || C.Height != 600 {
		t.Errorf("window = %dx%d, want 1024x600", C.Width, C.Height)
	}
	if Player.Speed != 120 || Player.Facing != gamemath.East {
		t.Errorf("player = %+v", Player)
	}
	if Player.Width != 32 {
		t.Errorf("player width lost its default: %v", Player.Width)
	}
	if Sword.Damage != 25 {
		t.Errorf("sword damage = %d, want 25", Sword.Damage)
	}
}

func TestApplyEnemyTypes(t *testing.T) {
	t.Cleanup(setDefaults)

	err := Apply([]byte(`
enemies:
  Moblin:
    speed: 80
  Darknut:
    health: 300
    heading: w
`))
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	moblin := Enemy.Types["Moblin"]
	if moblin.Speed != 80 || moblin.Health != 100 {
		t.Errorf("Moblin = %+v, want speed 80 and default health", moblin)
	}

	darknut, ok := Enemy.Types["Darknut"]
	if !ok {
		t.Fatal("Darknut was not added")
	}
	if darknut.Name != "Darknut" || darknut.Health != 300 || darknut.Heading != gamemath.West {
		t.Errorf("Darknut = %+v", darknut)
	}
	if darknut.Width != 32 || darknut.SpriteKey != SpriteEnemy {
		t.Errorf("Darknut should inherit the default type, got %+v", darknut)
	}
}

func TestApplyRejectsBadDirection(t *testing.T) {
	t.Cleanup(setDefaults)

	if err := Apply([]byte("player:\n  facing: sideways\n")); err == nil {
		t.Error("expected an error for an unknown direction")
	}
}

func TestLoadCustomPath(t *testing.T) {
	t.Cleanup(setDefaults)

	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("debug:\n  overlay: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != path {
		t.Errorf("Load returned %q, want %q", got, path)
	}
	if !Debug.Overlay {
		t.Error("debug overlay was not enabled")
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing custom config")
	}
}
