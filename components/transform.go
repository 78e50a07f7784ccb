package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// TransformData is a 2D position in world units plus a rotation in radians.
// Angles stay within (-Pi, Pi].
type TransformData struct {
	Translation math.Vec2
	Angle       float64
}

var Transform = donburi.NewComponentType[TransformData]()
