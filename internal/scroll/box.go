package scroll

import "troywu.dev/internal/models"

// Box is the rendered vertical extent of a section, in the same units as
// the window offset.
type Box struct {
	Top    float64 `json:"top"`
	Height float64 `json:"height"`
}

// Bottom returns the first offset past the box
func (b Box) Bottom() float64 {
	return b.Top + b.Height
}

// Contains reports whether y falls inside the half-open range [Top, Bottom)
func (b Box) Contains(y float64) bool {
	return y >= b.Top && y < b.Bottom()
}

// Layout resolves the rendered box of a section. A section that is not
// rendered reports false.
type Layout interface {
	Box(id models.SectionID) (Box, bool)
}

// Boxes is a measured layout keyed by section
type Boxes map[models.SectionID]Box

// Box implements Layout
func (b Boxes) Box(id models.SectionID) (Box, bool) {
	box, ok := b[id]
	return box, ok
}

// Extent returns the furthest bottom edge of any box
func (b Boxes) Extent() float64 {
	var max float64
	for _, box := range b {
		if box.Bottom() > max {
			max = box.Bottom()
		}
	}
	return max
}

// Stack lays sections out top to bottom starting at zero, in order.
// Sections without a height are left out of the layout.
func Stack(order []models.SectionID, heights map[models.SectionID]float64) Boxes {
	boxes := make(Boxes, len(heights))
	var top float64
	for _, id := range order {
		h, ok := heights[id]
		if !ok {
			continue
		}
		boxes[id] = Box{Top: top, Height: h}
		top += h
	}
	return boxes
}
