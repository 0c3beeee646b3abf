package easel

// Placement is one drawable pasted at a window position. X and Y locate the
// drawable's top-left corner and may lie outside the window.
type Placement struct {
	Graphic Drawable
	X, Y    int
}

// Scene is an ordered list of placements. Later placements draw on top.
// The same drawable may be placed several times.
type Scene struct {
	placements []Placement
}

// Paste appends d at (x, y).
func (s *Scene) Paste(d Drawable, x, y int) {
	s.placements = append(s.placements, Placement{Graphic: d, X: x, Y: y})
}

// Remove deletes every placement of d. Removing a drawable that was never
// pasted does nothing.
func (s *Scene) Remove(d Drawable) {
	// Build a fresh slice so a draw pass holding the old one is unaffected.
	kept := make([]Placement, 0, len(s.placements))
	for _, p := range s.placements {
		if p.Graphic != d {
			kept = append(kept, p)
		}
	}
	s.placements = kept
}

// Clear removes all placements.
func (s *Scene) Clear() {
	s.placements = nil
}

// Move repositions every placement of d.
func (s *Scene) Move(d Drawable, x, y int) {
	for i := range s.placements {
		if s.placements[i].Graphic == d {
			s.placements[i].X = x
			s.placements[i].Y = y
		}
	}
}

// Len returns the number of placements.
func (s *Scene) Len() int {
	return len(s.placements)
}

// Placements returns a copy of the placements in draw order.
func (s *Scene) Placements() []Placement {
	out := make([]Placement, len(s.placements))
	copy(out, s.placements)
	return out
}

// GraphicAt returns the first pasted drawable covering (x, y), or nil.
//
// Placements are checked in paste order, not reverse draw order, so where
// graphics overlap the one pasted first wins even if a later one is drawn
// over it.
func (s *Scene) GraphicAt(x, y int) Drawable {
	for _, p := range s.placements {
		if p.Graphic.Covers(x-p.X, y-p.Y) {
			return p.Graphic
		}
	}
	return nil
}

// position returns the first placement of d.
func (s *Scene) position(d Drawable) (x, y int, ok bool) {
	for _, p := range s.placements {
		if p.Graphic == d {
			return p.X, p.Y, true
		}
	}
	return 0, 0, false
}
