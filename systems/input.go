package systems

import (
	"github.com/automoto/burgerspin/components"
	cfg "github.com/automoto/burgerspin/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input and updates the InputComponent.
// Must run BEFORE UpdateSettings in the system order.
func UpdateInput(ecs *ecs.ECS) {
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var pressed [cfg.ActionCount]bool
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				pressed[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					pressed[actionID] = true
				}
			}
		}
	}
	ApplyPolledInput(ecs, pressed)
}

// ApplyPolledInput stores one frame of polled actions. The first frame a scene
// sees fills both buffers, so keys still held from the previous scene are not
// reported as JustPressed.
func ApplyPolledInput(ecs *ecs.ECS, pressed [cfg.ActionCount]bool) {
	if entry, ok := components.Input.First(ecs.World); ok {
		PushInput(components.Input.Get(entry), pressed)
		return
	}
	entry := ecs.World.Entry(ecs.World.Create(components.Input))
	components.Input.SetValue(entry, components.InputData{
		Current:  pressed,
		Previous: pressed,
	})
}

// PushInput swaps the frame buffers and stores the newly polled state.
func PushInput(input *components.InputData, pressed [cfg.ActionCount]bool) {
	input.Previous = input.Current
	input.Current = pressed
}

// GetOrCreateInput returns the singleton Input component, creating if needed
func GetOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
