package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type PlayerData struct {
	Speed float64
	// Direction is this tick's movement input in Y-up space.
	Direction math.Vec2
	// Jump is the running hop, nil when grounded.
	Jump       *gween.Sequence
	JumpOffset float64
}

var Player = donburi.NewComponentType[PlayerData]()
