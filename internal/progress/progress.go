// Package progress derives the position indicators shown under a slide.
package progress

import "fmt"

// Progress is a snapshot of (current index, total). It holds no other state
// and is recomputed on every index change.
type Progress struct {
	Index int // 0-based
	Total int
}

// Of returns the progress for index within total slides.
func Of(index, total int) Progress {
	return Progress{Index: index, Total: total}
}

// Ratio is the fraction of slides seen so far, (Index+1)/Total.
// It returns 0 for an empty deck.
func (p Progress) Ratio() float64 {
	if p.Total <= 0 {
		return 0
	}
	return float64(p.Index+1) / float64(p.Total)
}

// Position is the 1-based slide number for display.
func (p Progress) Position() int {
	return p.Index + 1
}

// Label renders the counter, e.g. "3 / 22".
func (p Progress) Label() string {
	return fmt.Sprintf("%d / %d", p.Position(), p.Total)
}

// PrevEnabled reports whether the previous control should accept input.
func (p Progress) PrevEnabled() bool {
	return p.Index > 0
}

// NextEnabled reports whether the next control should accept input.
func (p Progress) NextEnabled() bool {
	return p.Index < p.Total-1
}
