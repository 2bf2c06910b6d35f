package core

// Sequence plays an ordered list of frames on a fixed cadence.
// It owns no timer; the game clock advances it.
//
// A sequence started with Start shows no frame until the first cadence
// elapses; Current reports ok=false until then.
type Sequence struct {
	frames []string
	every  int // clock ticks per frame
	loop   bool

	active bool
	ticks  int
	cursor int // index of the frame on display, -1 before the first one
}

// NewSequence creates an idle sequence. every is the number of clock ticks
// between frames and is raised to 1 if smaller.
func NewSequence(frames []string, every int, loop bool) Sequence {
	if every < 1 {
		every = 1
	}
	return Sequence{
		frames: append([]string(nil), frames...),
		every:  every,
		loop:   loop,
		cursor: -1,
	}
}

// Start rewinds and activates the sequence.
func (s *Sequence) Start() {
	s.active = true
	s.ticks = 0
	s.cursor = -1
}

// Stop deactivates the sequence without completing it.
func (s *Sequence) Stop() {
	s.active = false
	s.ticks = 0
	s.cursor = -1
}

// Active reports whether the sequence is running.
func (s *Sequence) Active() bool {
	return s.active
}

// Advance moves the sequence forward by one clock tick. It returns true
// exactly once, on the tick a non-looping sequence completes; the cadence
// after the last frame is the completion step.
func (s *Sequence) Advance() (finished bool) {
	if !s.active || len(s.frames) == 0 {
		return false
	}
	s.ticks++
	if s.ticks%s.every != 0 {
		return false
	}

	next := s.cursor + 1
	if next < len(s.frames) {
		s.cursor = next
		return false
	}
	if s.loop {
		s.cursor = 0
		return false
	}

	s.Stop()
	return true
}

// Current returns the frame on display.
func (s *Sequence) Current() (string, bool) {
	if !s.active || s.cursor < 0 {
		return "", false
	}
	return s.frames[s.cursor], true
}

// Frames returns a copy of the frame list.
func (s *Sequence) Frames() []string {
	return append([]string(nil), s.frames...)
}
