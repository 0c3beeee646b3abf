package easel

// Rectangle is a filled box with a 1px outline.
type Rectangle struct {
	bitmap
	fill    Color
	outline Color
}

// NewRectangle creates a rectangle whose outline matches its fill.
func NewRectangle(width, height int, fill Color) *Rectangle {
	return NewOutlinedRectangle(width, height, fill, fill)
}

// NewOutlinedRectangle creates a rectangle with a distinct 1px outline.
func NewOutlinedRectangle(width, height int, fill, outline Color) *Rectangle {
	return &Rectangle{
		bitmap:  bitmap{w: width, h: height},
		fill:    fill,
		outline: outline,
	}
}

// FillColor returns the interior color.
func (r *Rectangle) FillColor() Color { return r.fill }

// OutlineColor returns the border color.
func (r *Rectangle) OutlineColor() Color { return r.outline }

// ChangeFillColor sets the interior color and re-renders.
func (r *Rectangle) ChangeFillColor(c Color) {
	r.fill = c
	r.Render()
}

// ChangeOutlineColor sets the border color and re-renders.
func (r *Rectangle) ChangeOutlineColor(c Color) {
	r.outline = c
	r.Render()
}

// Covers reports whether 0 <= x < width and 0 <= y < height.
func (r *Rectangle) Covers(x, y int) bool {
	return r.containsRect(x, y)
}

// Render paints the outline color across the bitmap, then the fill inset by
// one pixel on each side. Boxes 2px or narrower have no interior.
func (r *Rectangle) Render() {
	if r.surf == nil {
		return
	}
	r.surf.Fill(r.outline)
	if r.w > 2 && r.h > 2 {
		r.surf.FillRect(1, 1, r.w-2, r.h-2, r.fill)
	}
}
