package app

import "torus-life/pkg/core"

// Player walks through a finished generation sequence one frame at a time.
type Player struct {
	res      core.Result[*core.Grid]
	idx      int
	paused   bool
	tickOnce bool
}

// NewPlayer starts playback at generation 0.
func NewPlayer(res core.Result[*core.Grid]) *Player {
	return &Player{res: res}
}

// Current returns the generation on screen and its index.
func (p *Player) Current() (*core.Grid, int) { return p.res.Generations[p.idx], p.idx }

// Len returns the number of generations.
func (p *Player) Len() int { return len(p.res.Generations) }

// Termination reports why the underlying run stopped.
func (p *Player) Termination() core.Termination { return p.res.Termination }

// Paused reports whether playback is paused.
func (p *Player) Paused() bool { return p.paused }

// TogglePause pauses or resumes playback.
func (p *Player) TogglePause() { p.paused = !p.paused }

// StepOnce advances a single frame on the next Advance, even while paused.
func (p *Player) StepOnce() { p.tickOnce = true }

// Restart rewinds to generation 0.
func (p *Player) Restart() {
	p.idx = 0
	p.tickOnce = false
}

// Advance moves to the next generation when due is true and playback is
// running, or when a single step was requested. Playback holds on the last
// generation. It reports whether the frame changed.
func (p *Player) Advance(due bool) bool {
	if !(due && !p.paused) && !p.tickOnce {
		return false
	}
	p.tickOnce = false
	if p.idx+1 >= len(p.res.Generations) {
		return false
	}
	p.idx++
	return true
}
