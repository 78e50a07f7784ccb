package config

// PersistenceConfig controls where settings are saved
type PersistenceConfig struct {
	AppName     string
	SettingsKey string
}

// Persistence is the global persistence configuration
var Persistence PersistenceConfig

func init() {
	Persistence = PersistenceConfig{
		AppName:     "burgerspin",
		SettingsKey: "settings",
	}
}
