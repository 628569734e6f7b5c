package ui

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"
)

// Overlay is a view drawn over the slide area. While any overlay is open
// it takes all keyboard input and navigation is suspended.
type Overlay struct {
	View    View
	Dismiss []string // key strings that close it, e.g. "esc"
}

// IsDismissKey reports whether key closes o.
func (o Overlay) IsDismissKey(key string) bool {
	return slices.Contains(o.Dismiss, key)
}

// OverlayStack holds open overlays; the last pushed is on top.
type OverlayStack struct {
	items []Overlay
}

// Push opens o above the current overlays.
func (s *OverlayStack) Push(o Overlay) {
	s.items = append(s.items, o)
}

// Pop closes the top overlay.
func (s *OverlayStack) Pop() (Overlay, bool) {
	top, ok := s.Peek()
	if ok {
		s.items = s.items[:len(s.items)-1]
	}
	return top, ok
}

// Peek returns the top overlay.
func (s *OverlayStack) Peek() (Overlay, bool) {
	if len(s.items) == 0 {
		return Overlay{}, false
	}
	return s.items[len(s.items)-1], true
}

// Len is the number of open overlays.
func (s *OverlayStack) Len() int { return len(s.items) }

// UpdateTop forwards msg to the top overlay. The bool is false when
// nothing is open.
func (s *OverlayStack) UpdateTop(msg tea.Msg) (tea.Cmd, bool) {
	if len(s.items) == 0 {
		return nil, false
	}
	top := &s.items[len(s.items)-1]
	v, cmd := top.View.Update(msg)
	top.View = v
	return cmd, true
}
