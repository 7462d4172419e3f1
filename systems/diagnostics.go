package systems

import (
	"time"

	"github.com/automoto/overworld/assets/animations"
	"github.com/automoto/overworld/components"
	cfg "github.com/automoto/overworld/config"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDiagnostics samples frame times, logs the rate once per second and
// emits an animation debug line every cfg.Debug.LogEvery ticks.
func UpdateDiagnostics(e *ecs.ECS) {
	entry, ok := components.Diagnostics.First(e.World)
	if !ok {
		return
	}
	diag := components.Diagnostics.Get(entry)

	if input, ok := components.Input.First(e.World); ok {
		if components.Input.Get(input).Action(cfg.ActionToggleDebug).JustPressed {
			diag.Overlay = !diag.Overlay
		}
	}

	now := diag.Now()
	sampleFrame(diag, now)
	diag.Frames++

	if cfg.Debug.LogEvery > 0 && diag.Frames%cfg.Debug.LogEvery == 0 {
		logAnimations(e.World, diag.Frames)
	}
}

func sampleFrame(diag *components.DiagnosticsData, now time.Time) {
	monitor := &diag.Monitor
	if !monitor.LastTick.IsZero() {
		monitor.Push(now.Sub(monitor.LastTick))
	}
	monitor.LastTick = now

	if monitor.LastLog.IsZero() {
		monitor.LastLog = now
		return
	}
	if now.Sub(monitor.LastLog) >= time.Second {
		monitor.LastLog = now
		log.Info("performance", "fps", monitor.FPS(), "samples", len(monitor.Samples))
	}
}

func logAnimations(w donburi.World, frame uint64) {
	animatedQuery.Each(w, func(e *donburi.Entry) {
		ctrl := components.AnimationController.Get(e)
		character := components.Character.Get(e)
		sprite := components.Sprite.Get(e)
		if sprite.Atlas == nil {
			log.Debug("animation", "frame", frame, "character", character.Entry.Name, "atlas", "pending")
			return
		}
		clip, ok := animations.ResolveClip(*ctrl, &character.Entry)
		if !ok {
			log.Debug("animation", "frame", frame, "character", character.Entry.Name, "kind", ctrl.Current, "clip", "unresolved")
			return
		}
		log.Debug("animation",
			"frame", frame,
			"character", character.Entry.Name,
			"kind", ctrl.Current,
			"facing", ctrl.Facing,
			"index", sprite.Atlas.Index,
			"clip", clip,
		)
	})
}
