package easel

// Circle is a filled disk with a 1px outline on a transparent square.
type Circle struct {
	bitmap
	fill    Color
	outline Color
}

// NewCircle creates a circle whose outline matches its fill.
func NewCircle(diameter int, fill Color) *Circle {
	return NewOutlinedCircle(diameter, fill, fill)
}

// NewOutlinedCircle creates a circle with a distinct 1px outline.
func NewOutlinedCircle(diameter int, fill, outline Color) *Circle {
	return &Circle{
		bitmap:  bitmap{w: diameter, h: diameter},
		fill:    fill,
		outline: outline,
	}
}

// Diameter returns the bitmap side length.
func (c *Circle) Diameter() int { return c.w }

// FillColor returns the interior color.
func (c *Circle) FillColor() Color { return c.fill }

// OutlineColor returns the ring color.
func (c *Circle) OutlineColor() Color { return c.outline }

// ChangeFillColor sets the interior color and re-renders.
func (c *Circle) ChangeFillColor(col Color) {
	c.fill = col
	c.Render()
}

// ChangeOutlineColor sets the ring color and re-renders.
func (c *Circle) ChangeOutlineColor(col Color) {
	c.outline = col
	c.Render()
}

// radius uses integer division, so odd diameters put the center half a
// pixel up and left of the true middle.
func (c *Circle) radius() int {
	return c.w / 2
}

// Covers reports whether (x, y) lies strictly inside the circle.
func (c *Circle) Covers(x, y int) bool {
	r := c.radius()
	dx, dy := r-x, r-y
	return dx*dx+dy*dy < r*r
}

// Render draws the outline disk and then the fill disk one pixel smaller.
func (c *Circle) Render() {
	if c.surf == nil {
		return
	}
	r := c.radius()
	c.surf.Clear()
	c.surf.FillCircle(r, r, r, c.outline)
	c.surf.FillCircle(r, r, r-1, c.fill)
}
