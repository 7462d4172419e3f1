package animations

import "time"

// DefaultFrameTime is used until a transition installs a kind's own frame time.
const DefaultFrameTime = 100 * time.Millisecond

// Timer is a repeating countdown. JustFinished is only true on the tick in
// which the duration elapsed.
type Timer struct {
	duration      time.Duration
	elapsed       time.Duration
	justFinished  bool
	timesFinished int
}

func NewTimer(d time.Duration) Timer {
	return Timer{duration: d}
}

// Tick advances the timer by dt.
func (t *Timer) Tick(dt time.Duration) {
	t.justFinished = false
	t.timesFinished = 0
	if dt < 0 {
		dt = 0
	}
	if t.duration <= 0 {
		t.elapsed = 0
		t.justFinished = true
		t.timesFinished = 1
		return
	}
	t.elapsed += dt
	if t.elapsed >= t.duration {
		t.timesFinished = int(t.elapsed / t.duration)
		t.elapsed %= t.duration
		t.justFinished = true
	}
}

// Reset zeroes the elapsed time and clears the finished signal. The
// duration is kept.
func (t *Timer) Reset() {
	t.elapsed = 0
	t.justFinished = false
	t.timesFinished = 0
}

func (t *Timer) SetDuration(d time.Duration) {
	t.duration = d
}

func (t *Timer) Duration() time.Duration {
	return t.duration
}

func (t *Timer) Elapsed() time.Duration {
	return t.elapsed
}

func (t *Timer) JustFinished() bool {
	return t.justFinished
}

// TimesFinishedThisTick counts how many whole durations the last Tick covered.
func (t *Timer) TimesFinishedThisTick() int {
	return t.timesFinished
}
