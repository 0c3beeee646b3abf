package easel

// Drawable is a fixed-size bitmap with a hit test. The set of drawables is
// closed: Rectangle, Circle and Textbox.
//
// A drawable's bitmap is allocated by the Window's backend the first time it
// is drawn. From then on every Change* call re-renders it immediately.
type Drawable interface {
	// Width and Height are fixed at construction.
	Width() int
	Height() int
	// Covers reports whether the local point (x, y) hits the drawable.
	// The origin is the drawable's top-left corner.
	Covers(x, y int) bool
	// Render re-rasterizes the bitmap from the current attributes. It does
	// nothing until the drawable has been drawn once.
	Render()

	pixels() *bitmap
}

// bitmap is the lazily allocated pixel store shared by all drawables.
type bitmap struct {
	w, h int
	surf Surface
}

func (b *bitmap) pixels() *bitmap { return b }

// Width returns the bitmap width in pixels.
func (b *bitmap) Width() int { return b.w }

// Height returns the bitmap height in pixels.
func (b *bitmap) Height() int { return b.h }

// containsRect is the half-open rectangle hit test used by rectangles and
// textboxes.
func (b *bitmap) containsRect(x, y int) bool {
	return 0 <= x && x < b.w && 0 <= y && y < b.h
}

// surfaceOf returns d's bitmap, allocating and rendering it with backend on
// first use.
func surfaceOf(d Drawable, backend Backend) Surface {
	bm := d.pixels()
	if bm.surf == nil {
		bm.surf = backend.NewSurface(bm.w, bm.h)
		d.Render()
	}
	return bm.surf
}
