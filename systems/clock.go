package systems

import (
	"time"

	"github.com/automoto/overworld/components"
	cfg "github.com/automoto/overworld/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances the simulation clock by one fixed step.
// Must run first in the system order.
func UpdateClock(e *ecs.ECS) {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		return
	}
	clock := components.Clock.Get(entry)
	clock.Delta = StepDuration(cfg.C.TPS)
	clock.Tick++
}

// StepDuration is the length of one tick at tps ticks per second.
func StepDuration(tps int) time.Duration {
	if tps <= 0 {
		return 0
	}
	return time.Second / time.Duration(tps)
}

func clockDelta(w donburi.World) time.Duration {
	entry, ok := components.Clock.First(w)
	if !ok {
		return 0
	}
	return components.Clock.Get(entry).Delta
}
