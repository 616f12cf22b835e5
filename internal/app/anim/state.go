package anim

import "math"

// Step is the progress added per tick, scaled by direction
const Step = 0.05

// legSpan is the distance a leg covers before it snaps to its target
const legSpan = 1.0

// State tracks one node's progress through a leg.
// A zero State is idle at progress 0.
type State struct {
	progress  float64
	direction float64
	committed float64
}

// BeginLeg starts a leg when idle and reports whether it did.
// The direction is derived from the committed checkpoint, so successive legs alternate.
func (s *State) BeginLeg() bool {
	if s.direction != 0 {
		return false
	}

	s.direction = 1 - 2*s.committed

	return true
}

// Advance moves progress one step and reports whether the leg completed.
// A completed leg snaps to committed+direction even when the last step overshot.
func (s *State) Advance() bool {
	s.progress += Step * s.direction

	if math.Abs(s.progress-s.committed) <= legSpan {
		return false
	}

	s.progress = s.committed + s.direction
	s.direction = 0
	s.committed = s.progress

	return true
}

// Progress returns the current progress value
func (s State) Progress() float64 {
	return s.progress
}

// Direction returns -1, 0 or +1
func (s State) Direction() int {
	return int(s.direction)
}

// Committed returns the checkpoint reached by the last completed leg
func (s State) Committed() float64 {
	return s.committed
}

// Active reports whether a leg is in progress
func (s State) Active() bool {
	return s.direction != 0
}
