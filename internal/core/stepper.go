package core

import "time"

// Stepper converts wall-clock frame times into a whole number of fixed
// simulation steps. Leftover time carries over to the next frame, so the
// simulation advances at the same rate regardless of how often frames arrive.
type Stepper struct {
	step     time.Duration
	maxSteps int
	acc      time.Duration
	last     time.Time
}

// NewStepper creates a stepper running at tickRate steps per second.
// maxSteps caps the catch-up work done for a single frame; accumulated time
// beyond the cap is dropped.
func NewStepper(tickRate, maxSteps int) *Stepper {
	if tickRate <= 0 {
		tickRate = 60
	}
	if maxSteps <= 0 {
		maxSteps = 1
	}
	return &Stepper{
		step:     time.Second / time.Duration(tickRate),
		maxSteps: maxSteps,
	}
}

// Step returns the fixed step duration.
func (s *Stepper) Step() time.Duration {
	return s.step
}

// Advance records a frame at now and returns how many fixed steps to run.
// The first call only primes the clock and yields one step.
func (s *Stepper) Advance(now time.Time) int {
	if s.last.IsZero() {
		s.last = now
		return 1
	}

	elapsed := now.Sub(s.last)
	s.last = now
	if elapsed < 0 {
		elapsed = 0
	}
	s.acc += elapsed

	steps := int(s.acc / s.step)
	if steps > s.maxSteps {
		steps = s.maxSteps
		s.acc = 0
		return steps
	}
	s.acc -= time.Duration(steps) * s.step
	return steps
}

// Reset forgets the previous frame time and any accumulated remainder.
func (s *Stepper) Reset() {
	s.acc = 0
	s.last = time.Time{}
}
