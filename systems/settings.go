package systems

import (
	"log"

	"github.com/automoto/burgerspin/components"
	cfg "github.com/automoto/burgerspin/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings reacts to the toggle actions polled by UpdateInput.
func UpdateSettings(ecs *ecs.ECS) {
	input := GetOrCreateInput(ecs)
	settings := GetOrCreateSettings(ecs)

	if ApplyActions(settings, input) {
		ebiten.SetFullscreen(settings.Fullscreen)
		SaveCurrentSettings(settings)
	}
}

// ApplyActions updates settings from this frame's input and reports whether a
// persisted field changed.
func ApplyActions(settings *components.SettingsData, input *components.InputData) bool {
	changed := false
	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings.Debug = !settings.Debug
		changed = true
	}
	if GetAction(input, cfg.ActionFullscreen).JustPressed {
		settings.Fullscreen = !settings.Fullscreen
		changed = true
	}
	if GetAction(input, cfg.ActionPause).JustPressed {
		settings.Paused = !settings.Paused
		log.Printf("[settings] paused=%v", settings.Paused)
	}
	if GetAction(input, cfg.ActionSwitchScene).JustPressed {
		settings.SwitchRequested = true
	}
	if GetAction(input, cfg.ActionQuit).JustPressed {
		settings.QuitRequested = true
	}
	return changed
}

// GetOrCreateSettings returns the singleton Settings component, creating if needed
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(entry, InitialSettings())
	}
	return components.Settings.Get(entry)
}
