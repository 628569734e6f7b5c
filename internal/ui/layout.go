package ui

// Panel IDs of the presentation layout, top to bottom.
const (
	PanelProgress = "progress"
	PanelHeader   = "header"
	PanelSlide    = "slide"
	PanelHelp     = "help"
	PanelControls = "controls"
)

// Layout arranges panels.
type Layout interface {
	Panels() []Panel
	Panel(id string) (Panel, bool)
}

// PresentationLayout puts the progress bar and deck header at the top, the
// controls and key hints at the bottom, and the slide in between.
type PresentationLayout struct{}

var _ Layout = PresentationLayout{}

// chromeRows is the number of rows not available to the slide.
const chromeRows = 5

// Panels implements Layout.
func (PresentationLayout) Panels() []Panel {
	return []Panel{
		{ID: PanelProgress, Bounds: func(w, h int) (int, int, int, int) { return 0, 0, w, 1 }},
		{ID: PanelHeader, Bounds: func(w, h int) (int, int, int, int) { return 0, 1, w, 1 }},
		{ID: PanelSlide, Bounds: func(w, h int) (int, int, int, int) { return 0, 2, w, max(h-chromeRows, 1) }},
		{ID: PanelControls, Bounds: func(w, h int) (int, int, int, int) { return 0, max(h-2, 0), w, 1 }},
		{ID: PanelHelp, Bounds: func(w, h int) (int, int, int, int) { return 0, max(h-1, 0), w, 1 }},
	}
}

// Panel implements Layout.
func (l PresentationLayout) Panel(id string) (Panel, bool) {
	for _, p := range l.Panels() {
		if p.ID == id {
			return p, true
		}
	}
	return Panel{}, false
}
