package systems

import (
	"encoding/json"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

const (
	settingsKey = "settings"
	statsKey    = "stats"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Debug     bool   `json:"debug"`
	LastLevel string `json:"lastLevel"`
}

// SavedStats holds lifetime counters.
type SavedStats struct {
	EnemiesSlain int `json:"enemiesSlain"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool
var stats SavedStats

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Warn("could not initialize persistence", "err", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true

	if loaded := loadItem[SavedStats](statsKey); loaded != nil {
		stats = *loaded
	}
	return nil
}

// LoadSettings loads settings from disk. It returns nil when nothing was
// saved yet or persistence is unavailable.
func LoadSettings() *SavedSettings {
	return loadItem[SavedSettings](settingsKey)
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	return saveItem(settingsKey, s)
}

// SaveCurrentSettings stores the debug overlay state and the level being played.
func SaveCurrentSettings(e *ecs.ECS) {
	saved := &SavedSettings{
		Debug: GetOrCreateSettings(e).Debug,
	}
	if level := currentLevel(e); level != nil {
		saved.LastLevel = level.Name
	}
	_ = SaveSettings(saved)
}

// Stats returns the lifetime counters.
func Stats() SavedStats {
	return stats
}

// RecordKills adds n slain enemies to the lifetime counters.
func RecordKills(n int) {
	stats.EnemiesSlain += n
	_ = saveItem(statsKey, &stats)
}

func loadItem[T any](key string) *T {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := gdataManager.LoadItem(key)
	if err != nil {
		log.Warn("could not load item", "key", key, "err", err)
		return nil
	}
	if len(data) == 0 {
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		log.Warn("could not parse saved item", "key", key, "err", err)
		return nil
	}
	return &v
}

func saveItem(key string, v any) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		log.Warn("could not serialize item", "key", key, "err", err)
		return err
	}

	if err := gdataManager.SaveItem(key, data); err != nil {
		log.Warn("could not save item", "key", key, "err", err)
		return err
	}
	return nil
}
