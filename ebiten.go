package easel

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenBackend allocates GPU-backed surfaces on *ebiten.Image.
type EbitenBackend struct{}

// NewSurface allocates a transparent surface. Ebitengine rejects empty
// images, so a non-positive size yields a surface that ignores all drawing.
func (EbitenBackend) NewSurface(width, height int) Surface {
	return newEbitenSurface(width, height)
}

type ebitenSurface struct {
	img  *ebiten.Image // nil when the surface is empty
	w, h int
}

func newEbitenSurface(width, height int) *ebitenSurface {
	s := &ebitenSurface{w: max(width, 0), h: max(height, 0)}
	if s.w > 0 && s.h > 0 {
		s.img = ebiten.NewImage(s.w, s.h)
	}
	return s
}

func (s *ebitenSurface) Size() (int, int) {
	return s.w, s.h
}

func (s *ebitenSurface) Image() image.Image {
	if s.img == nil {
		return image.NewRGBA(image.Rectangle{})
	}
	return s.img
}

func (s *ebitenSurface) Clear() {
	if s.img != nil {
		s.img.Clear()
	}
}

func (s *ebitenSurface) Fill(c Color) {
	if s.img != nil {
		s.img.Fill(c)
	}
}

func (s *ebitenSurface) FillRect(x, y, w, h int, c Color) {
	if s.img == nil || w <= 0 || h <= 0 {
		return
	}
	vector.FillRect(s.img, float32(x), float32(y), float32(w), float32(h), c, false)
}

func (s *ebitenSurface) FillCircle(cx, cy, r int, c Color) {
	if s.img == nil || r <= 0 {
		return
	}
	x, y := pixelCenter(cx, cy)
	vector.FillCircle(s.img, x, y, float32(r), c, false)
}

// pixelCenter maps an integer disk center to vector coordinates. Ebitengine
// samples coverage at pixel centers, so the half-pixel shift makes the
// covered set dx*dx + dy*dy < r*r on integer coordinates, as on the raster
// backend.
func pixelCenter(cx, cy int) (float32, float32) {
	return float32(cx) + 0.5, float32(cy) + 0.5
}

func (s *ebitenSurface) MeasureText(msg string, f *Font, size float64) (int, int) {
	face, err := f.goTextFace(size)
	if err != nil {
		return 0, 0
	}
	m := face.Metrics()
	w, h := text.Measure(msg, face, m.HAscent+m.HDescent)
	return int(math.Ceil(w)), int(math.Ceil(h))
}

func (s *ebitenSurface) DrawText(msg string, f *Font, size float64, x, y int, c Color) {
	if s.img == nil || msg == "" {
		return
	}
	face, err := f.goTextFace(size)
	if err != nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(s.img, msg, face, op)
}

func (s *ebitenSurface) DrawSurface(src Surface, x, y int) {
	if s.img == nil {
		return
	}
	var img *ebiten.Image
	switch src := src.(type) {
	case *ebitenSurface:
		img = src.img
	default:
		if w, h := src.Size(); w > 0 && h > 0 {
			img = ebiten.NewImageFromImage(src.Image())
			defer img.Deallocate()
		}
	}
	if img == nil {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(float64(x), float64(y))
	s.img.DrawImage(img, &op)
}
