package components

import "github.com/yohamta/donburi"

type ClockData struct {
	FrameTime float64 // Seconds covered by the current update
	Elapsed   float64
	Frames    int
}

var Clock = donburi.NewComponentType[ClockData]()
