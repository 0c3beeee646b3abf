package easel

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Font is a parsed TrueType/OpenType font. Backends build sized faces from it
// on demand and cache them on the Font.
type Font struct {
	Name string

	sfnt *opentype.Font

	// raster faces keyed by pixel size
	faces map[float64]font.Face

	// Ebitengine face source, created on first use
	goText *text.GoTextFaceSource
	data   []byte
}

// DefaultFont is Go Regular. Textboxes without a font use it, and so does
// any lookup of an unregistered name.
var DefaultFont = mustLoadFont("Go Regular", goregular.TTF)

var fontRegistry = map[string]*Font{}

// LoadFont parses TTF/OTF data into a Font.
func LoadFont(name string, data []byte) (*Font, error) {
	sfnt, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("easel: failed to parse font %q: %w", name, err)
	}
	return &Font{Name: name, sfnt: sfnt, data: data}, nil
}

func mustLoadFont(name string, data []byte) *Font {
	f, err := LoadFont(name, data)
	if err != nil {
		panic(err)
	}
	return f
}

// RegisterFont makes f available to FontByName under its Name.
// Names are matched case-insensitively.
func RegisterFont(f *Font) {
	fontRegistry[strings.ToLower(f.Name)] = f
}

// FontByName returns the registered font with that name, or DefaultFont.
func FontByName(name string) *Font {
	if f, ok := fontRegistry[strings.ToLower(name)]; ok {
		return f
	}
	return DefaultFont
}

// rasterFace returns a golang.org/x/image face at the given pixel size.
func (f *Font) rasterFace(size float64) (font.Face, error) {
	if face, ok := f.faces[size]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(f.sfnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("easel: face %q size %v: %w", f.Name, size, err)
	}
	if f.faces == nil {
		f.faces = make(map[float64]font.Face)
	}
	f.faces[size] = face
	return face, nil
}

// goTextFace returns an Ebitengine text/v2 face at the given size.
func (f *Font) goTextFace(size float64) (*text.GoTextFace, error) {
	if f.goText == nil {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(f.data))
		if err != nil {
			return nil, fmt.Errorf("easel: failed to parse TTF data: %w", err)
		}
		f.goText = src
	}
	return &text.GoTextFace{Source: f.goText, Size: size}, nil
}
