// Package input turns raw pointer activity into navigation commands.
package input

import "deckview/internal/nav"

// SwipeThreshold is the minimum horizontal travel, in px-equivalents, that
// counts as a swipe. Shorter drags are ignored.
const SwipeThreshold = 50

// Swipe tracks one horizontal gesture from start to end.
// The zero value is ready to use.
type Swipe struct {
	startX, endX     float64
	hasStart, hasEnd bool
}

// Begin resets the gesture and records its starting x.
func (s *Swipe) Begin(x float64) {
	*s = Swipe{startX: x, hasStart: true}
}

// Move records the latest x.
func (s *Swipe) Move(x float64) {
	s.endX = x
	s.hasEnd = true
}

// End consumes the gesture. A leftward swipe (start right of end) advances,
// a rightward swipe retreats. Without both a start and a move it returns nav.None.
func (s *Swipe) End() nav.Command {
	defer s.Reset()
	if !s.hasStart || !s.hasEnd {
		return nav.None
	}
	distance := s.startX - s.endX
	switch {
	case distance > SwipeThreshold:
		return nav.Advance
	case distance < -SwipeThreshold:
		return nav.Retreat
	default:
		return nav.None
	}
}

// Reset discards any partial gesture.
func (s *Swipe) Reset() {
	*s = Swipe{}
}

// Active reports whether a gesture has started and not yet ended.
func (s *Swipe) Active() bool {
	return s.hasStart
}
