package components

import "github.com/yohamta/donburi"

type SettingsData struct {
	Debug      bool
	Paused     bool
	Fullscreen bool

	// Set by input for the scene to act on after the update
	QuitRequested   bool
	SwitchRequested bool
}

var Settings = donburi.NewComponentType[SettingsData]()
