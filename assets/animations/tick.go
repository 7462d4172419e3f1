package animations

import (
	"time"

	"github.com/automoto/overworld/config/catalog"
	"golang.org/x/sync/errgroup"
)

// Target bundles the per-character fields one Animate call touches.
// Ready is false while the render-facing atlas is not available yet.
type Target struct {
	Controller *Controller
	State      *State
	Timer      *Timer
	Frame      *int
	Entry      *catalog.CharacterEntry
	Ready      bool
}

// Result is the outcome of animating one target.
type Result struct {
	Clip     Clip
	Resolved bool
}

func (t Target) valid() bool {
	return t.Ready && t.Controller != nil && t.State != nil && t.Timer != nil && t.Frame != nil
}

// AnimateAll runs Animate for every target and returns once all of them
// are done. Targets touch disjoint data, so with workers > 1 they are
// spread over that many goroutines.
func AnimateAll(targets []Target, dt time.Duration, workers int) []Result {
	results := make([]Result, len(targets))
	run := func(i int) {
		t := targets[i]
		if !t.valid() {
			return
		}
		clip, ok := Animate(*t.Controller, *t.State, t.Timer, t.Frame, t.Entry, dt)
		results[i] = Result{Clip: clip, Resolved: ok}
	}

	if workers <= 1 || len(targets) < 2 {
		for i := range targets {
			run(i)
		}
		return results
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for i := range targets {
		g.Go(func() error {
			run(i)
			return nil
		})
	}
	_ = g.Wait()
	return results
}

// Tick animates every target, then commits the motion flags of all of
// them, skipped ones included. The commit never overlaps an Animate call.
func Tick(targets []Target, dt time.Duration, workers int) []Result {
	results := AnimateAll(targets, dt, workers)
	for _, t := range targets {
		if t.State != nil {
			t.State.CommitFlags()
		}
	}
	return results
}
