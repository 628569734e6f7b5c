package ui

// BoundsFunc returns the panel's position and size given terminal dimensions.
// Returns x, y, width, height.
type BoundsFunc func(width, height int) (x, y, w, h int)

// Panel is a named screen region.
type Panel struct {
	ID     string
	Bounds BoundsFunc
}

// Contains reports whether cell (px, py) lies inside the panel on a width x height screen,
// and returns the cell relative to the panel's origin.
func (p Panel) Contains(px, py, width, height int) (lx, ly int, ok bool) {
	x, y, w, h := p.Bounds(width, height)
	if px < x || py < y || px >= x+w || py >= y+h {
		return 0, 0, false
	}
	return px - x, py - y, true
}
