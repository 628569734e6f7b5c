package ui

import (
	"deckview/internal/nav"
	"deckview/internal/progress"
	"deckview/internal/ui/textutil"

	progressbar "github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

const (
	prevLabel     = "◀ prev"
	nextLabel     = "next ▶"
	controlMargin = 2
)

// hitBox is a horizontal span [start, end) on the controls row.
type hitBox struct {
	start, end int
}

func (b hitBox) contains(x int) bool { return x >= b.start && x < b.end }

// ControlsView renders the progress bar, the slide counter and the
// prev/next buttons, all derived from a progress.Progress.
type ControlsView struct {
	progress progress.Progress
	bar      progressbar.Model
	animate  bool
	width    int

	prevBox, nextBox hitBox
}

// Ensure ControlsView implements View.
var _ View = (*ControlsView)(nil)

// NewControlsView creates controls for p.
func NewControlsView(p progress.Progress, animate bool) *ControlsView {
	c := &ControlsView{
		progress: p,
		bar:      progressbar.New(progressbar.WithDefaultGradient(), progressbar.WithoutPercentage()),
		animate:  animate,
	}
	c.resize(80)
	return c
}

// Progress returns the snapshot currently displayed.
func (c *ControlsView) Progress() progress.Progress { return c.progress }

// SetProgress replaces the snapshot and animates the bar toward the new ratio.
func (c *ControlsView) SetProgress(p progress.Progress) tea.Cmd {
	c.progress = p
	if !c.animate {
		return nil
	}
	return c.bar.SetPercent(p.Ratio())
}

func (c *ControlsView) resize(width int) {
	c.width = width
	c.bar.Width = max(width-2*controlMargin, 10)

	prevW := textutil.VisualWidth(prevLabel)
	nextW := textutil.VisualWidth(nextLabel)
	c.prevBox = hitBox{start: controlMargin, end: controlMargin + prevW}
	c.nextBox = hitBox{start: max(width-controlMargin-nextW, c.prevBox.end+1), end: 0}
	c.nextBox.end = c.nextBox.start + nextW
	// Cells past the right edge are never drawn, so they cannot be clicked.
	c.prevBox.end = min(c.prevBox.end, width)
	c.nextBox.end = min(c.nextBox.end, width)
}

// HitTest maps a click on the controls row (panel-relative x) to a command.
// Clicks on a disabled button return nav.None.
func (c *ControlsView) HitTest(x int) nav.Command {
	switch {
	case c.prevBox.contains(x) && c.progress.PrevEnabled():
		return nav.Retreat
	case c.nextBox.contains(x) && c.progress.NextEnabled():
		return nav.Advance
	default:
		return nav.None
	}
}

// Init implements View.
func (c *ControlsView) Init() tea.Cmd { return nil }

// Update implements View.
func (c *ControlsView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		c.resize(msg.Width)
	case progressbar.FrameMsg:
		m, cmd := c.bar.Update(msg)
		if bar, ok := m.(progressbar.Model); ok {
			c.bar = bar
		}
		return c, cmd
	}
	return c, nil
}

// BarView renders the progress bar row.
func (c *ControlsView) BarView() string {
	bar := c.bar.ViewAs(c.progress.Ratio())
	if c.animate {
		bar = c.bar.View()
	}
	return textutil.Spaces(controlMargin) + bar
}

// View implements View; it renders the controls row.
func (c *ControlsView) View() string {
	prev := Styles.ButtonDisabled.Render(prevLabel)
	if c.progress.PrevEnabled() {
		prev = Styles.Button.Render(prevLabel)
	}
	next := Styles.ButtonDisabled.Render(nextLabel)
	if c.progress.NextEnabled() {
		next = Styles.Button.Render(nextLabel)
	}
	counter := Styles.Counter.Render(c.progress.Label())

	line := textutil.Spaces(c.prevBox.start) + prev
	prevEnd := c.prevBox.start + textutil.VisualWidth(prevLabel)
	gap := c.nextBox.start - prevEnd
	counterW := textutil.VisualWidthStyled(counter)
	if counterW+2 <= gap {
		// Centered when possible, always one column clear of both buttons.
		counterStart := max((c.width-counterW)/2, prevEnd+1)
		counterStart = min(counterStart, c.nextBox.start-1-counterW)
		line += textutil.Spaces(counterStart-prevEnd) + counter +
			textutil.Spaces(c.nextBox.start-counterStart-counterW)
	} else {
		line += textutil.Spaces(gap)
	}
	line += next
	return ansi.Truncate(line, c.width, "")
}
