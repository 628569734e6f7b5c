package input

import (
	"deckview/internal/nav"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultCellWidthPx approximates the pixel width of one terminal column.
const DefaultCellWidthPx = 8

// PointerEvent is the outcome of one mouse message.
type PointerEvent struct {
	Command nav.Command // set when a swipe completed
	Click   bool        // press and release landed on the same cell without a swipe
	X, Y    int         // cell of the release, for clicks
}

// Pointer maps Bubble Tea mouse messages onto a Swipe.
// A left press starts the gesture, motion while held moves it, release ends it.
type Pointer struct {
	CellWidthPx float64

	swipe          Swipe
	pressX, pressY int
}

// NewPointer returns a Pointer scaling columns by cellWidthPx
// (DefaultCellWidthPx when cellWidthPx <= 0).
func NewPointer(cellWidthPx float64) *Pointer {
	if cellWidthPx <= 0 {
		cellWidthPx = DefaultCellWidthPx
	}
	return &Pointer{CellWidthPx: cellWidthPx}
}

// Handle feeds one mouse message through the gesture tracker.
func (p *Pointer) Handle(msg tea.MouseMsg) PointerEvent {
	x := float64(msg.X) * p.CellWidthPx
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return PointerEvent{}
		}
		p.pressX, p.pressY = msg.X, msg.Y
		p.swipe.Begin(x)
	case tea.MouseActionMotion:
		if p.swipe.Active() {
			p.swipe.Move(x)
		}
	case tea.MouseActionRelease:
		if !p.swipe.Active() {
			return PointerEvent{}
		}
		if cmd := p.swipe.End(); cmd != nav.None {
			return PointerEvent{Command: cmd}
		}
		if msg.X == p.pressX && msg.Y == p.pressY {
			return PointerEvent{Click: true, X: msg.X, Y: msg.Y}
		}
	}
	return PointerEvent{}
}

// Cancel drops any gesture in progress.
func (p *Pointer) Cancel() {
	p.swipe.Reset()
}
