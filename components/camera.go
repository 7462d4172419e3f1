package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2
}

var Camera = donburi.NewComponentType[CameraData]()

// FogData is the vision circle drawn over the arena, in world pixels.
type FogData struct {
	Center math.Vec2
	Radius float64
}

var Fog = donburi.NewComponentType[FogData]()
