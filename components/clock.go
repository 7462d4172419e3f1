package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ClockData is the simulation clock. Delta is the fixed step of the tick
// being processed.
type ClockData struct {
	Delta time.Duration
	Tick  uint64
}

var Clock = donburi.NewComponentType[ClockData]()
