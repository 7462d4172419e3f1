package animations

import "fmt"

// Clip is a contiguous run of frame indices inside a shared atlas.
type Clip struct {
	first int
	last  int
}

// NewClip addresses frameCount frames starting at the first column of row.
// A zero frame count is a content bug, not a runtime condition.
func NewClip(row, frameCount, atlasColumns int) Clip {
	if frameCount < 1 {
		panic(fmt.Sprintf("animations: clip needs at least one frame, got %d", frameCount))
	}
	first := row * atlasColumns
	return Clip{
		first: first,
		last:  first + frameCount - 1,
	}
}

func (c Clip) Start() int {
	return c.first
}

func (c Clip) Last() int {
	return c.last
}

// Len is the number of frames in the clip.
func (c Clip) Len() int {
	return c.last - c.first + 1
}

// Contains reports whether index belongs to the clip.
func (c Clip) Contains(index int) bool {
	return index >= c.first && index <= c.last
}

// Next returns the frame after index, looping back to the start.
func (c Clip) Next(index int) int {
	if index >= c.last {
		return c.first
	}
	return index + 1
}

// IsComplete reports whether a play-once clip has shown its last frame for
// a full frame time.
func (c Clip) IsComplete(index int, timerFinished bool) bool {
	return index >= c.last && timerFinished
}

func (c Clip) String() string {
	return fmt.Sprintf("[%d..%d]", c.first, c.last)
}
