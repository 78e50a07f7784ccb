package systems

import (
	"github.com/automoto/burgerspin/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

const fallbackTPS = 60

// UpdateClock advances the scene clock by one tick.
// Must run before any system that reads the frame time.
func UpdateClock(ecs *ecs.ECS) {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		return
	}
	AdvanceClock(components.Clock.Get(entry), TickDuration())
}

// TickDuration is the length of one Update call in seconds.
func TickDuration() float64 {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = fallbackTPS
	}
	return 1 / float64(tps)
}

func AdvanceClock(clock *components.ClockData, dt float64) {
	if dt < 0 {
		dt = 0
	}
	clock.FrameTime = dt
	clock.Elapsed += dt
	clock.Frames++
}

// FrameTime returns the duration of the current tick, or 0 before the first one.
func FrameTime(ecs *ecs.ECS) float64 {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		return 0
	}
	return components.Clock.Get(entry).FrameTime
}
