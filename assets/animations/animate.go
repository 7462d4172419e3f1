package animations

import (
	"time"

	"github.com/automoto/overworld/config/catalog"
)

// Animate runs one tick of the animation update for a single character and
// writes the result to frame. It returns the resolved clip, or false when
// the character has no usable definition for its current kind, in which
// case nothing is mutated.
//
// On return frame always lies inside the returned clip.
func Animate(ctrl Controller, state State, timer *Timer, frame *int, entry *catalog.CharacterEntry, dt time.Duration) (Clip, bool) {
	def, ok := definition(ctrl, entry)
	if !ok {
		return Clip{}, false
	}
	clip, _ := ResolveClip(ctrl, entry)

	// A facing or kind change can leave the frame in another row block.
	if !clip.Contains(*frame) {
		*frame = clip.Start()
		timer.Reset()
	}

	switch {
	case state.Transition():
		*frame = clip.Start()
		timer.SetDuration(def.FrameTime)
		timer.Reset()
	case state.Animating():
		timer.Tick(dt)
		if timer.JustFinished() {
			*frame = clip.Next(*frame)
		}
	default:
		if *frame != clip.Start() {
			*frame = clip.Start()
		}
	}
	return clip, true
}
