// Package deck holds the immutable slide content shown by the viewer and
// the providers that load it.
package deck

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

// ErrEmptyDeck is returned when a deck has no slides.
var ErrEmptyDeck = errors.New("deck has no slides")

// ValidationError describes a slide that breaks the deck contract.
type ValidationError struct {
	Position int // 0-based position in the deck
	ID       int
	Field    string
	Reason   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("slide %d (id %d): %s %s", e.Position+1, e.ID, e.Field, e.Reason)
}

// Deck is an ordered, read-only sequence of slides.
type Deck struct {
	title  string
	slides []Slide
}

// New validates slides and returns a deck that owns copies of them.
// IDs must be unique and sequential; title and content are required.
func New(title string, slides []Slide) (*Deck, error) {
	if len(slides) == 0 {
		return nil, ErrEmptyDeck
	}
	owned := make([]Slide, len(slides))
	for i, s := range slides {
		kind, err := ParseKind(string(s.Kind))
		if err != nil {
			return nil, &ValidationError{Position: i, ID: s.ID, Field: "kind", Reason: err.Error()}
		}
		s.Kind = kind
		if strings.TrimSpace(s.Title) == "" {
			return nil, &ValidationError{Position: i, ID: s.ID, Field: "title", Reason: "is required"}
		}
		if strings.TrimSpace(s.Content) == "" {
			return nil, &ValidationError{Position: i, ID: s.ID, Field: "content", Reason: "is required"}
		}
		if i > 0 && s.ID != owned[i-1].ID+1 {
			return nil, &ValidationError{
				Position: i,
				ID:       s.ID,
				Field:    "id",
				Reason:   fmt.Sprintf("must follow %d", owned[i-1].ID),
			}
		}
		owned[i] = s.clone()
	}
	return &Deck{title: title, slides: owned}, nil
}

// Title returns the deck title, or the first slide's title if none was set.
func (d *Deck) Title() string {
	if d.title != "" {
		return d.title
	}
	return d.slides[0].Title
}

// Len returns the number of slides.
func (d *Deck) Len() int {
	return len(d.slides)
}

// At returns a copy of the slide at position i. It panics if i is out of range.
func (d *Deck) At(i int) Slide {
	return d.slides[i].clone()
}

// All yields each position and a copy of its slide, in order.
func (d *Deck) All() iter.Seq2[int, Slide] {
	return func(yield func(int, Slide) bool) {
		for i, s := range d.slides {
			if !yield(i, s.clone()) {
				return
			}
		}
	}
}
