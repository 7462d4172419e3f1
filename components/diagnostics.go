package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// PerformanceMonitor keeps a sliding window of frame durations.
type PerformanceMonitor struct {
	Samples  []time.Duration
	Window   int
	LastLog  time.Time
	LastTick time.Time
}

// Push records a sample, dropping the oldest past the window.
func (p *PerformanceMonitor) Push(d time.Duration) {
	p.Samples = append(p.Samples, d)
	if p.Window > 0 && len(p.Samples) > p.Window {
		p.Samples = p.Samples[len(p.Samples)-p.Window:]
	}
}

// FPS is the average rate over the window, zero when empty.
func (p *PerformanceMonitor) FPS() float64 {
	if len(p.Samples) == 0 {
		return 0
	}
	var total time.Duration
	for _, s := range p.Samples {
		total += s
	}
	if total <= 0 {
		return 0
	}
	return float64(len(p.Samples)) / total.Seconds()
}

type DiagnosticsData struct {
	Monitor PerformanceMonitor
	Overlay bool
	Now     func() time.Time

	// Frames counts processed ticks since start.
	Frames uint64
}

var Diagnostics = donburi.NewComponentType[DiagnosticsData]()
