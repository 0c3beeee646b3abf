package easel

import (
	"fmt"
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when the color is handed to a Surface.
type Color struct {
	R, G, B, A float64
}

// Common colors. Transparent is also the zero Color.
var (
	Transparent = Color{}
	White       = Color{1, 1, 1, 1}
	Black       = Color{0, 0, 0, 1}
	Gray        = colorFromRGBA(colornames.Gray)
	DarkGray    = colorFromRGBA(colornames.Darkgray)
)

// IsTransparent reports whether the color has no coverage at all.
func (c Color) IsTransparent() bool {
	return c.A <= 0
}

// RGBA implements color.Color. The result is premultiplied, as the
// interface requires.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.toRGBA().RGBA()
}

// toRGBA converts an easel Color to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// colorFromRGBA converts a straight-alpha 8-bit color to an easel Color.
func colorFromRGBA(c color.RGBA) Color {
	return Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
		A: float64(c.A) / 255,
	}
}

// ParseColor resolves a color string. Accepted forms are CSS/X11 color
// names ("white", "darkgray"), "transparent" or "none", and hex triplets
// ("#f80", "#ff8800").
func ParseColor(s string) (Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch {
	case name == "":
		return Color{}, fmt.Errorf("easel: empty color")
	case name == "transparent" || name == "none":
		return Transparent, nil
	case name[0] == '#':
		if len(name) != 4 && len(name) != 7 {
			return Color{}, fmt.Errorf("easel: parse color %q: want #rgb or #rrggbb", s)
		}
		c, err := colorful.Hex(name)
		if err != nil {
			return Color{}, fmt.Errorf("easel: parse color %q: %w", s, err)
		}
		return Color{R: c.R, G: c.G, B: c.B, A: 1}, nil
	}
	nc, ok := colornames.Map[name]
	if !ok {
		return Color{}, fmt.Errorf("easel: unknown color name %q", s)
	}
	return colorFromRGBA(nc), nil
}

// MustParseColor is like ParseColor but panics on error. Intended for
// package-level color tables.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// EventKind identifies a kind of host event.
type EventKind uint8

const (
	EventMouseDown EventKind = iota // a mouse button was pressed
	EventMouseUp                    // a mouse button was released
	EventMouseMove                  // the cursor moved
	EventKeyDown                    // a key produced a character
	EventQuit                       // the window was asked to close
	EventTimer                      // a registered timer came due
)

var eventKindNames = [...]string{
	EventMouseDown: "mousedown",
	EventMouseUp:   "mouseup",
	EventMouseMove: "mousemove",
	EventKeyDown:   "keydown",
	EventQuit:      "quit",
	EventTimer:     "timer",
}

func (k EventKind) String() string {
	if int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return fmt.Sprintf("EventKind(%d)", k)
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// Event is one entry returned by Host.Poll. Only the fields relevant to
// Kind are set.
type Event struct {
	Kind   EventKind
	X, Y   int         // pointer position for mouse events
	Button MouseButton // mouse down/up
	Char   string      // decoded character for EventKeyDown
	Timer  TimerID     // slot for EventTimer
}
