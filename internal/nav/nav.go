// Package nav owns the presentation's current slide index and the two
// commands that move it.
package nav

// Command is a navigation intent produced by an input adapter.
type Command int

const (
	None Command = iota
	Advance
	Retreat
)

func (c Command) String() string {
	switch c {
	case None:
		return "none"
	case Advance:
		return "advance"
	case Retreat:
		return "retreat"
	default:
		return "unknown"
	}
}

// State is the position within a deck. Valid states satisfy 0 <= Index < total.
type State struct {
	Index int
}

// CanAdvance reports whether Advance would change s.
func CanAdvance(s State, total int) bool {
	return s.Index < total-1
}

// CanRetreat reports whether Retreat would change s.
func CanRetreat(s State) bool {
	return s.Index > 0
}

// AdvanceState returns the next state, or s unchanged at the last slide.
func AdvanceState(s State, total int) State {
	if CanAdvance(s, total) {
		return State{Index: s.Index + 1}
	}
	return s
}

// RetreatState returns the previous state, or s unchanged at the first slide.
func RetreatState(s State) State {
	if CanRetreat(s) {
		return State{Index: s.Index - 1}
	}
	return s
}

// Step applies cmd to s. None returns s.
func Step(s State, total int, cmd Command) State {
	switch cmd {
	case Advance:
		return AdvanceState(s, total)
	case Retreat:
		return RetreatState(s)
	default:
		return s
	}
}
