package easel

import (
	"image"
	"time"
)

// Surface is a fixed-size bitmap that a backend can draw into. All
// coordinates are integer pixels with the origin at the top-left.
// Rectangles and circles with non-positive size draw nothing.
type Surface interface {
	// Size returns the surface dimensions in pixels.
	Size() (width, height int)
	// Clear fills the surface with transparent black.
	Clear()
	// Fill replaces every pixel with c.
	Fill(c Color)
	// FillRect paints the w x h rectangle at (x, y) with c, source-over.
	FillRect(x, y, w, h int, c Color)
	// FillCircle paints the disk of radius r centered on (cx, cy) with c,
	// source-over. Aliased: a pixel is covered when its offset (dx, dy)
	// satisfies dx*dx + dy*dy < r*r.
	FillCircle(cx, cy, r int, c Color)
	// MeasureText returns the pixel extent of msg rendered in f at size.
	MeasureText(msg string, f *Font, size float64) (width, height int)
	// DrawText renders msg with its top-left corner at (x, y).
	DrawText(msg string, f *Font, size float64, x, y int, c Color)
	// DrawSurface composites src over this surface at offset (x, y).
	// A src from a different Backend is converted through Image.
	DrawSurface(src Surface, x, y int)
	// Image exposes the pixels for screenshots.
	Image() image.Image
}

// Backend allocates surfaces.
type Backend interface {
	NewSurface(width, height int) Surface
}

// Host is everything a Window consumes from the platform: a backend, the
// display, a frame clock, an event queue and one-shot timers.
type Host interface {
	Backend

	// Screen returns the back buffer the Window composites into.
	Screen() Surface
	// Present shows the composited back buffer.
	Present()
	// Tick blocks until the next frame at the target rate is due.
	Tick(fps int)
	// Now returns the host clock, measured from host creation.
	Now() time.Duration
	// Poll returns every event since the previous Poll, in arrival order.
	Poll() []Event
	// ArmTimer schedules a single EventTimer tagged id after interval,
	// replacing any pending timer with the same id.
	ArmTimer(id TimerID, interval time.Duration)
	// Close releases host resources.
	Close() error
}
