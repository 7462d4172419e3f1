package animations

import "github.com/automoto/overworld/config/catalog"

// Controller selects which clip a character plays. Only movement writes it.
type Controller struct {
	Current catalog.AnimationKind
	Facing  Facing
}

func NewController() Controller {
	return Controller{
		Current: catalog.AnimationWalk,
		Facing:  DefaultFacing,
	}
}

// State carries the motion flags used for transition detection.
// Movement writes IsMoving and IsJumping every tick; WasMoving and
// WasJumping are written by CommitFlags only.
type State struct {
	IsMoving   bool
	WasMoving  bool
	IsJumping  bool
	WasJumping bool
}

// Transition reports whether any motion flag changed since the last commit.
func (s State) Transition() bool {
	startedMoving := s.IsMoving && !s.WasMoving
	stoppedMoving := !s.IsMoving && s.WasMoving
	startedJumping := s.IsJumping && !s.WasJumping
	stoppedJumping := !s.IsJumping && s.WasJumping
	return startedMoving || stoppedMoving || startedJumping || stoppedJumping
}

// Animating is true while the character is moving or jumping.
func (s State) Animating() bool {
	return s.IsMoving || s.IsJumping
}

// CommitFlags closes the detection window for this tick. It must run after
// every Animate call of the tick and before the next tick's movement writes.
func (s *State) CommitFlags() {
	s.WasMoving = s.IsMoving
	s.WasJumping = s.IsJumping
}

// CommitAll commits every state.
func CommitAll(states []*State) {
	for _, s := range states {
		if s != nil {
			s.CommitFlags()
		}
	}
}
