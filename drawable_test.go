package easel

import (
	"image"
	"testing"
)

var (
	red  = Color{1, 0, 0, 1}
	blue = Color{0, 0, 1, 1}
)

// rendered allocates d's bitmap on the raster backend and returns its pixels.
func rendered(t *testing.T, d Drawable) *image.RGBA {
	t.Helper()
	img, ok := surfaceOf(d, RasterBackend{}).Image().(*image.RGBA)
	if !ok {
		t.Fatal("raster surface should expose *image.RGBA")
	}
	return img
}

func wantPixel(t *testing.T, img *image.RGBA, x, y int, want Color) {
	t.Helper()
	if got := img.RGBAAt(x, y); got != want.toRGBA() {
		t.Errorf("pixel (%d, %d) = %v, want %v", x, y, got, want.toRGBA())
	}
}

// --- Rectangle ---

func TestRectangleCovers(t *testing.T) {
	r := NewRectangle(10, 6, red)
	tests := []struct {
		name   string
		x, y   int
		expect bool
	}{
		{"origin", 0, 0, true},
		{"inside", 5, 3, true},
		{"last pixel", 9, 5, true},
		{"right edge", 10, 0, false},
		{"bottom edge", 0, 6, false},
		{"left of", -1, 0, false},
		{"above", 0, -1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Covers(tt.x, tt.y); got != tt.expect {
				t.Errorf("Covers(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.expect)
			}
		})
	}
}

func TestRectangleHalfOpenBoundsAllSizes(t *testing.T) {
	for w := 3; w < 12; w++ {
		for h := 3; h < 12; h++ {
			r := NewRectangle(w, h, red)
			if !r.Covers(0, 0) || r.Covers(w, 0) || r.Covers(0, h) {
				t.Errorf("%dx%d rectangle bounds are not half-open", w, h)
			}
		}
	}
}

func TestRectangleDefaultsOutlineToFill(t *testing.T) {
	r := NewRectangle(4, 4, red)
	if r.OutlineColor() != red {
		t.Errorf("OutlineColor = %v, want %v", r.OutlineColor(), red)
	}
	if r.Width() != 4 || r.Height() != 4 {
		t.Errorf("size = %dx%d, want 4x4", r.Width(), r.Height())
	}
}

func TestRectangleRender(t *testing.T) {
	r := NewOutlinedRectangle(10, 6, red, Black)
	img := rendered(t, r)
	if b := img.Bounds(); b.Dx() != 10 || b.Dy() != 6 {
		t.Fatalf("bitmap = %v, want 10x6", b)
	}
	wantPixel(t, img, 0, 0, Black)
	wantPixel(t, img, 9, 5, Black)
	wantPixel(t, img, 5, 0, Black)
	wantPixel(t, img, 1, 1, red)
	wantPixel(t, img, 8, 4, red)
}

func TestRectangleDegenerateHasNoFill(t *testing.T) {
	for _, size := range [][2]int{{2, 2}, {1, 5}, {5, 2}} {
		r := NewOutlinedRectangle(size[0], size[1], red, Black)
		img := rendered(t, r)
		for y := 0; y < size[1]; y++ {
			for x := 0; x < size[0]; x++ {
				wantPixel(t, img, x, y, Black)
			}
		}
	}
}

func TestRectangleEmptyDoesNotPanic(t *testing.T) {
	r := NewRectangle(0, -3, red)
	img := rendered(t, r)
	if !img.Bounds().Empty() {
		t.Errorf("bitmap = %v, want empty", img.Bounds())
	}
	if r.Covers(0, 0) {
		t.Error("empty rectangle should cover nothing")
	}
}

func TestRectangleChangeColorsRerender(t *testing.T) {
	r := NewOutlinedRectangle(6, 6, red, Black)
	img := rendered(t, r)

	r.ChangeFillColor(blue)
	if r.FillColor() != blue {
		t.Errorf("FillColor = %v, want %v", r.FillColor(), blue)
	}
	wantPixel(t, img, 3, 3, blue)

	r.ChangeOutlineColor(White)
	wantPixel(t, img, 0, 0, White)
	wantPixel(t, img, 3, 3, blue)
}

func TestChangeBeforeFirstDrawIsApplied(t *testing.T) {
	r := NewRectangle(6, 6, red)
	r.ChangeFillColor(blue)
	if r.surf != nil {
		t.Fatal("bitmap should not exist before the first draw")
	}
	img := rendered(t, r)
	wantPixel(t, img, 3, 3, blue)
}

// --- Circle ---

func TestCircleCovers(t *testing.T) {
	c := NewCircle(10, red)
	tests := []struct {
		name   string
		x, y   int
		expect bool
	}{
		{"center", 5, 5, true},
		{"corner", 0, 0, false},
		{"near edge inside", 5, 1, true},
		{"on boundary", 5, 0, false},
		{"on right boundary", 10, 5, false},
		{"far outside", 50, 50, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Covers(tt.x, tt.y); got != tt.expect {
				t.Errorf("Covers(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.expect)
			}
		})
	}
}

func TestCircleCenterAndCornerAllSizes(t *testing.T) {
	for d := 2; d < 40; d++ {
		c := NewCircle(d, red)
		if !c.Covers(d/2, d/2) {
			t.Errorf("d=%d: center should be covered", d)
		}
		if c.Covers(0, 0) {
			t.Errorf("d=%d: corner should not be covered", d)
		}
	}
}

func TestCircleOddDiameterTruncatesCenter(t *testing.T) {
	c := NewCircle(7, red)
	if c.radius() != 3 {
		t.Fatalf("radius = %d, want 3", c.radius())
	}
	// The center sits at (3, 3), so column 0 is reachable but column 6 is not.
	if !c.Covers(1, 3) {
		t.Error("(1, 3) should be covered")
	}
	if c.Covers(6, 3) {
		t.Error("(6, 3) should not be covered")
	}
}

func TestCircleRender(t *testing.T) {
	c := NewOutlinedCircle(10, red, Black)
	img := rendered(t, c)
	if b := img.Bounds(); b.Dx() != 10 || b.Dy() != 10 {
		t.Fatalf("bitmap = %v, want 10x10", b)
	}
	wantPixel(t, img, 5, 5, red)
	wantPixel(t, img, 5, 1, Black) // inside the outline disk, outside the fill disk
	wantPixel(t, img, 5, 0, Transparent)
	wantPixel(t, img, 0, 0, Transparent)
}

func TestCircleChangeFillColor(t *testing.T) {
	c := NewOutlinedCircle(10, red, Black)
	img := rendered(t, c)
	c.ChangeFillColor(blue)
	wantPixel(t, img, 5, 5, blue)
	wantPixel(t, img, 5, 1, Black)
	c.ChangeOutlineColor(White)
	wantPixel(t, img, 5, 1, White)
	if c.Diameter() != 10 {
		t.Errorf("Diameter = %d, want 10", c.Diameter())
	}
}

// --- Textbox ---

func TestTextboxDefaults(t *testing.T) {
	tb := NewTextbox(100, 40, "hi", TextboxOptions{})
	if tb.TextColor() != Black {
		t.Errorf("TextColor = %v, want Black", tb.TextColor())
	}
	if !tb.FillColor().IsTransparent() {
		t.Errorf("FillColor = %v, want transparent", tb.FillColor())
	}
	if tb.Font() != DefaultFont {
		t.Error("Font should default to DefaultFont")
	}
	if tb.FontSize() != defaultFontSize {
		t.Errorf("FontSize = %v, want %v", tb.FontSize(), defaultFontSize)
	}
}

func TestTextboxCovers(t *testing.T) {
	tb := NewTextbox(100, 40, "hi", TextboxOptions{})
	if !tb.Covers(0, 0) || !tb.Covers(99, 39) {
		t.Error("corners inside the box should be covered")
	}
	if tb.Covers(100, 0) || tb.Covers(0, 40) {
		t.Error("bounds should be half-open")
	}
}

func TestTextboxRenderTransparent(t *testing.T) {
	tb := NewTextbox(20, 10, "", TextboxOptions{})
	img := rendered(t, tb)
	for y := 0; y < 10; y++ {
		for x := 0; x < 20; x++ {
			wantPixel(t, img, x, y, Transparent)
		}
	}
}

func TestTextboxRenderText(t *testing.T) {
	tb := NewTextbox(100, 40, "MMM", TextboxOptions{FillColor: White, FontSize: 20})
	img := rendered(t, tb)
	wantPixel(t, img, 0, 0, White)
	wantPixel(t, img, 99, 39, White)

	if n := countNot(img, White); n == 0 {
		t.Error("expected text pixels in the box")
	}
}

func TestTextboxChangeMessageAndColors(t *testing.T) {
	tb := NewTextbox(100, 40, "MMM", TextboxOptions{FillColor: White, FontSize: 20})
	img := rendered(t, tb)

	tb.ChangeMessage("")
	if tb.Message() != "" {
		t.Errorf("Message = %q, want empty", tb.Message())
	}
	if n := countNot(img, White); n != 0 {
		t.Errorf("%d non-background pixels after clearing the message", n)
	}

	tb.ChangeFillColor(blue)
	wantPixel(t, img, 0, 0, blue)

	tb.ChangeFillColor(Transparent)
	wantPixel(t, img, 0, 0, Transparent)

	tb.ChangeTextColor(red)
	if tb.TextColor() != red {
		t.Errorf("TextColor = %v, want %v", tb.TextColor(), red)
	}
}

func TestTextOrigin(t *testing.T) {
	tests := []struct {
		w, h, tw, th int
		x, y         int
	}{
		{100, 40, 20, 10, 40, 15},
		{101, 41, 21, 11, 40, 15},
		{10, 10, 30, 10, -10, 0},
	}
	for _, tt := range tests {
		x, y := textOrigin(tt.w, tt.h, tt.tw, tt.th)
		if x != tt.x || y != tt.y {
			t.Errorf("textOrigin(%d, %d, %d, %d) = (%d, %d), want (%d, %d)",
				tt.w, tt.h, tt.tw, tt.th, x, y, tt.x, tt.y)
		}
	}
}

func countNot(img *image.RGBA, c Color) int {
	want := c.toRGBA()
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y) != want {
				n++
			}
		}
	}
	return n
}
