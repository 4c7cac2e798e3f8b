package core

import "time"

// FixedStep paces playback at a steady number of frames per second.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given FPS.
// The first call to ShouldStep always fires.
func NewFixedStep(fps int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetFPS(fps)
	fs.accumulator = fs.step
	return fs
}

// SetFPS changes the frame rate. Non-positive values fall back to 1 FPS,
// the pace of the original batch videos.
func (f *FixedStep) SetFPS(fps int) {
	if fps <= 0 {
		fps = 1
	}
	f.step = time.Second / time.Duration(fps)
}

// Interval returns the duration of one frame.
func (f *FixedStep) Interval() time.Duration { return f.step }

// ShouldStep reports whether playback should advance by one generation.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
