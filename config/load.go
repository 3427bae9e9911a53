package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LocalFile is the config file looked up in the working directory.
const LocalFile = "tilegame.yaml"

// file is the on-disk layout. Sections point at the globals so that keys
// missing from the file keep their defaults.
type file struct {
	Window  *Config              `yaml:"window"`
	Player  *PlayerConfig        `yaml:"player"`
	Sword   *SwordConfig         `yaml:"sword"`
	Combat  *CombatConfig        `yaml:"combat"`
	UI      *UIConfig            `yaml:"ui"`
	Camera  *CameraConfig        `yaml:"camera"`
	Debug   *DebugConfig         `yaml:"debug"`
	Enemies map[string]yaml.Node `yaml:"enemies"`
}

// Load overlays a YAML config onto the defaults and returns the path it read.
// Search order: customPath -> ~/.tilegame/config.yaml -> ./tilegame.yaml.
// An empty path is returned when no file was found. A customPath that cannot
// be read is an error; the other locations are optional.
func Load(customPath string) (string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := Apply(data); err != nil {
			return "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return customPath, nil
	}

	for _, p := range []string{userConfigPath("config.yaml"), LocalFile} {
		if p == "" {
			continue
		}
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		if err := Apply(data); err != nil {
			return "", fmt.Errorf("failed to parse config %s: %w", p, err)
		}
		return p, nil
	}
	return "", nil
}

// Apply overlays YAML data onto the current configuration.
func Apply(data []byte) error {
	f := file{
		Window: C,
		Player: &Player,
		Sword:  &Sword,
		Combat: &Combat,
		UI:     &UI,
		Camera: &Camera,
		Debug:  &Debug,
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return err
	}

	for name, node := range f.Enemies {
		enemy, ok := Enemy.Types[name]
		if !ok {
			enemy = Enemy.Types[Enemy.DefaultType]
			enemy.Name = name
		}
		if err := node.Decode(&enemy); err != nil {
			return fmt.Errorf("enemy %s: %w", name, err)
		}
		Enemy.Types[name] = enemy
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tilegame", filename)
}
