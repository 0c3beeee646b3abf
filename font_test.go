package easel

import (
	"testing"

	"golang.org/x/image/font/gofont/gobold"
)

func TestFontByNameFallsBack(t *testing.T) {
	for _, name := range []string{"", "Arial", "Helvetica"} {
		if FontByName(name) != DefaultFont {
			t.Errorf("FontByName(%q) should fall back to DefaultFont", name)
		}
	}
}

func TestRegisterFont(t *testing.T) {
	f, err := LoadFont("Go Bold", gobold.TTF)
	if err != nil {
		t.Fatal(err)
	}
	RegisterFont(f)
	defer delete(fontRegistry, "go bold")

	for _, name := range []string{"Go Bold", "go bold", "GO BOLD"} {
		if FontByName(name) != f {
			t.Errorf("FontByName(%q) did not return the registered font", name)
		}
	}

	tb := NewTextbox(50, 20, "x", TextboxOptions{FontName: "go bold"})
	if tb.Font() != f {
		t.Error("textbox should resolve FontName through the registry")
	}
}

func TestLoadFontInvalid(t *testing.T) {
	if _, err := LoadFont("junk", []byte("not a font")); err == nil {
		t.Error("expected error for invalid font data")
	}
}

func TestRasterFaceCached(t *testing.T) {
	f, err := LoadFont("Go Bold", gobold.TTF)
	if err != nil {
		t.Fatal(err)
	}
	a, err := f.rasterFace(14)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := f.rasterFace(14)
	c, _ := f.rasterFace(20)
	if a != b {
		t.Error("same size should reuse the face")
	}
	if a == c {
		t.Error("different sizes should get different faces")
	}
}
