package systems

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/automoto/burgerspin/components"
	cfg "github.com/automoto/burgerspin/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Debug      bool `json:"debug"`
	Fullscreen bool `json:"fullscreen"`
}

// settingsStore is the part of *gdata.Manager used for settings
type settingsStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var store settingsStore

// session holds the settings carried from one scene to the next
var session *components.SettingsData

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Persistence.AppName,
	})
	if err != nil {
		return err
	}
	store = m
	return nil
}

// LoadSettings loads settings from disk. A nil result with a nil error means
// nothing has been saved yet.
func LoadSettings() (*SavedSettings, error) {
	if store == nil {
		return nil, nil
	}

	data, err := store.LoadItem(cfg.Persistence.SettingsKey)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if data == nil {
		return nil, nil
	}
	return DecodeSettings(data)
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if store == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := store.SaveItem(cfg.Persistence.SettingsKey, data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

func DecodeSettings(data []byte) (*SavedSettings, error) {
	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}
	return &settings, nil
}

// SaveCurrentSettings saves the persistent part of the settings component and
// remembers it for the next scene.
func SaveCurrentSettings(s *components.SettingsData) {
	RememberSettings(s)
	_ = SaveSettings(&SavedSettings{
		Debug:      s.Debug,
		Fullscreen: s.Fullscreen,
	})
}

// RememberSettings keeps the toggles of s for scenes created later in this run.
// Per-frame requests are not carried over.
func RememberSettings(s *components.SettingsData) {
	session = &components.SettingsData{
		Debug:      s.Debug,
		Paused:     s.Paused,
		Fullscreen: s.Fullscreen,
	}
}

// ApplySavedSettingsGlobal applies settings before any scene exists.
// Used during startup, scenes pick up the values when they create their settings.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}
	session = &components.SettingsData{
		Debug:      saved.Debug || cfg.Debug.ShowHUD,
		Fullscreen: saved.Fullscreen,
	}
	ebiten.SetFullscreen(saved.Fullscreen)
}

// InitialSettings returns the settings a fresh scene starts with.
func InitialSettings() components.SettingsData {
	if session != nil {
		return *session
	}
	return components.SettingsData{
		Debug: cfg.Debug.ShowHUD,
	}
}
