package easel

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// RasterBackend draws on CPU-side *image.RGBA buffers. It needs no display,
// so the Headless host uses it.
type RasterBackend struct{}

// NewSurface allocates a transparent surface. Negative sizes yield an
// empty surface.
func (RasterBackend) NewSurface(width, height int) Surface {
	return newRasterSurface(width, height)
}

type rasterSurface struct {
	img *image.RGBA
}

func newRasterSurface(width, height int) *rasterSurface {
	return &rasterSurface{img: image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0)))}
}

func (s *rasterSurface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s *rasterSurface) Image() image.Image {
	return s.img
}

func (s *rasterSurface) Clear() {
	s.Fill(Transparent)
}

func (s *rasterSurface) Fill(c Color) {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c.toRGBA()), image.Point{}, draw.Src)
}

func (s *rasterSurface) FillRect(x, y, w, h int, c Color) {
	if w <= 0 || h <= 0 {
		return
	}
	r := image.Rect(x, y, x+w, y+h).Intersect(s.img.Bounds())
	draw.Draw(s.img, r, image.NewUniform(c.toRGBA()), image.Point{}, draw.Over)
}

func (s *rasterSurface) FillCircle(cx, cy, r int, c Color) {
	if r <= 0 {
		return
	}
	mask := circleMask{cx: cx, cy: cy, r: r}
	box := mask.Bounds().Intersect(s.img.Bounds())
	draw.DrawMask(s.img, box, image.NewUniform(c.toRGBA()), image.Point{}, mask, box.Min, draw.Over)
}

// circleMask is an aliased disk usable as a draw mask.
type circleMask struct {
	cx, cy, r int
}

func (m circleMask) ColorModel() color.Model { return color.AlphaModel }

func (m circleMask) Bounds() image.Rectangle {
	return image.Rect(m.cx-m.r, m.cy-m.r, m.cx+m.r+1, m.cy+m.r+1)
}

func (m circleMask) At(x, y int) color.Color {
	dx, dy := x-m.cx, y-m.cy
	if dx*dx+dy*dy < m.r*m.r {
		return color.Opaque
	}
	return color.Transparent
}

func (s *rasterSurface) MeasureText(msg string, f *Font, size float64) (int, int) {
	face, err := f.rasterFace(size)
	if err != nil {
		return 0, 0
	}
	m := face.Metrics()
	return font.MeasureString(face, msg).Ceil(), (m.Ascent + m.Descent).Ceil()
}

func (s *rasterSurface) DrawText(msg string, f *Font, size float64, x, y int, c Color) {
	face, err := f.rasterFace(size)
	if err != nil || msg == "" {
		return
	}
	d := font.Drawer{
		Dst:  s.img,
		Src:  image.NewUniform(c.toRGBA()),
		Face: face,
		Dot:  fixed.P(x, y+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(msg)
}

func (s *rasterSurface) DrawSurface(src Surface, x, y int) {
	var img image.Image
	if rs, ok := src.(*rasterSurface); ok {
		img = rs.img
	} else {
		img = src.Image()
	}
	b := img.Bounds()
	r := image.Rect(x, y, x+b.Dx(), y+b.Dy())
	draw.Draw(s.img, r, img, b.Min, draw.Over)
}
