package animations

import (
	"fmt"
	"strings"

	"github.com/yohamta/donburi/features/math"
)

// Facing is one of the four directions a character can look.
type Facing int

const (
	FacingUp Facing = iota
	FacingLeft
	FacingDown
	FacingRight
)

// DefaultFacing is the facing of a freshly spawned character.
const DefaultFacing = FacingDown

// FacingFromVector converts a motion vector into a discrete facing. Y grows
// upwards. Horizontal wins only when it strictly dominates, so ties and the
// zero vector fall through to the vertical test and yield Down.
func FacingFromVector(v math.Vec2) Facing {
	if abs(v.X) > abs(v.Y) {
		if v.X > 0 {
			return FacingRight
		}
		return FacingLeft
	}
	if v.Y > 0 {
		return FacingUp
	}
	return FacingDown
}

// RowOffset maps a facing to its row inside a directional row block.
// Atlas authors must lay directional clips out as Up, Left, Down, Right.
func (f Facing) RowOffset() int {
	switch f {
	case FacingUp:
		return 0
	case FacingLeft:
		return 1
	case FacingRight:
		return 3
	default:
		return 2
	}
}

func (f Facing) String() string {
	switch f {
	case FacingUp:
		return "up"
	case FacingLeft:
		return "left"
	case FacingDown:
		return "down"
	case FacingRight:
		return "right"
	}
	return fmt.Sprintf("facing(%d)", int(f))
}

// ParseFacing is the inverse of String.
func ParseFacing(s string) (Facing, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return FacingUp, nil
	case "left":
		return FacingLeft, nil
	case "down":
		return FacingDown, nil
	case "right":
		return FacingRight, nil
	}
	return DefaultFacing, fmt.Errorf("animations: unknown facing %q", s)
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
