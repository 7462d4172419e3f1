// Package sim drives one character through the animation engine without a
// window, tick by tick, from a scripted sequence of motion inputs.
package sim

import (
	"errors"
	"fmt"
	"time"

	"github.com/automoto/overworld/assets/animations"
	"github.com/automoto/overworld/config/catalog"
	"github.com/yohamta/donburi/features/math"
	"gopkg.in/yaml.v3"
)

// DefaultTPS is used when a script does not set its tick rate.
const DefaultTPS = 60

// Step holds the movement inputs for a run of ticks.
type Step struct {
	Ticks   int  `yaml:"ticks"`
	Moving  bool `yaml:"moving"`
	Jumping bool `yaml:"jumping"`
	// Direction is [x, y] with y up. Facing only changes while moving.
	Direction []float64 `yaml:"direction"`
	// Facing sets the facing directly, moving or not.
	Facing string `yaml:"facing"`
	// Kind overrides the animation kind; jump while jumping, walk otherwise.
	Kind catalog.AnimationKind `yaml:"kind"`
}

type Script struct {
	Character string `yaml:"character"`
	TPS       int    `yaml:"tps"`
	Steps     []Step `yaml:"steps"`
}

// Frame is the engine state after one tick.
type Frame struct {
	Tick     int
	Index    int
	Clip     animations.Clip
	Resolved bool
	Facing   animations.Facing
	Kind     catalog.AnimationKind
}

func ParseScript(data []byte) (*Script, error) {
	var script Script
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("sim: decode script: %w", err)
	}
	if err := script.validate(); err != nil {
		return nil, err
	}
	return &script, nil
}

func (s *Script) validate() error {
	var errs []error
	if s.Character == "" {
		errs = append(errs, errors.New("sim: script names no character"))
	}
	if s.TPS < 0 {
		errs = append(errs, fmt.Errorf("sim: tps %d is negative", s.TPS))
	}
	for i, step := range s.Steps {
		if step.Ticks < 1 {
			errs = append(errs, fmt.Errorf("sim: step %d: ticks must be at least 1", i))
		}
		if step.Direction != nil && len(step.Direction) != 2 {
			errs = append(errs, fmt.Errorf("sim: step %d: direction needs two components", i))
		}
		if step.Facing != "" {
			if _, err := animations.ParseFacing(step.Facing); err != nil {
				errs = append(errs, fmt.Errorf("sim: step %d: %w", i, err))
			}
		}
	}
	return errors.Join(errs...)
}

// Step duration at the script's tick rate.
func (s *Script) delta() time.Duration {
	tps := s.TPS
	if tps == 0 {
		tps = DefaultTPS
	}
	return time.Second / time.Duration(tps)
}

// Run plays the script against the named character. The character starts
// the way a freshly spawned player does: walk kind, facing down, frame 0,
// timer at the default frame time.
func Run(script *Script, list *catalog.CharactersList) ([]Frame, error) {
	if err := script.validate(); err != nil {
		return nil, err
	}
	if list == nil {
		return nil, errors.New("sim: no catalog")
	}
	i, ok := list.Find(script.Character)
	if !ok {
		return nil, fmt.Errorf("sim: unknown character %q", script.Character)
	}
	entry := list.Characters[i].Clone()

	ctrl := animations.NewController()
	state := animations.State{}
	timer := animations.NewTimer(animations.DefaultFrameTime)
	frame := 0
	targets := []animations.Target{{
		Controller: &ctrl,
		State:      &state,
		Timer:      &timer,
		Frame:      &frame,
		Entry:      &entry,
		Ready:      true,
	}}

	dt := script.delta()
	var frames []Frame
	tick := 0
	for _, step := range script.Steps {
		for n := 0; n < step.Ticks; n++ {
			tick++
			applyStep(&ctrl, &state, step)
			results := animations.Tick(targets, dt, 1)
			frames = append(frames, Frame{
				Tick:     tick,
				Index:    frame,
				Clip:     results[0].Clip,
				Resolved: results[0].Resolved,
				Facing:   ctrl.Facing,
				Kind:     ctrl.Current,
			})
		}
	}
	return frames, nil
}

// applyStep writes the movement-owned fields the way the game systems do.
func applyStep(ctrl *animations.Controller, state *animations.State, step Step) {
	state.IsMoving = step.Moving
	state.IsJumping = step.Jumping

	switch {
	case step.Kind != "":
		ctrl.Current = step.Kind
	case step.Jumping:
		ctrl.Current = catalog.AnimationJump
	default:
		ctrl.Current = catalog.AnimationWalk
	}

	if step.Facing != "" {
		// validate has already rejected unknown names.
		ctrl.Facing, _ = animations.ParseFacing(step.Facing)
	}
	if step.Moving && len(step.Direction) == 2 {
		dir := math.NewVec2(step.Direction[0], step.Direction[1])
		if dir.X != 0 || dir.Y != 0 {
			ctrl.Facing = animations.FacingFromVector(dir)
		}
	}
}
