package easel

import (
	"image"
	"slices"
	"time"
)

// Headless is a Host without a display. It composites into an in-memory
// RGBA buffer, keeps a virtual clock that Tick advances by exactly one
// frame, and delivers only the events pushed to it plus its own timers.
//
// Set RealTime to also sleep in Tick so frames are paced against the wall
// clock.
type Headless struct {
	RasterBackend

	RealTime bool

	screen  *rasterSurface
	base    time.Duration // clock at the last fps change, plus Advance
	ticks   int           // frames ticked at fps since base
	fps     int
	started time.Time
	queue   []Event
	timers  []armedTimer
	frames  int
}

type armedTimer struct {
	id       TimerID
	deadline time.Duration
}

// NewHeadless creates a headless host with a width x height screen.
func NewHeadless(width, height int) *Headless {
	return &Headless{
		screen:  newRasterSurface(width, height),
		started: time.Now(),
	}
}

// Screen returns the in-memory back buffer.
func (h *Headless) Screen() Surface {
	return h.screen
}

// Frame returns the last presented frame. It is the live buffer and is
// overwritten by the next Refresh.
func (h *Headless) Frame() *image.RGBA {
	return h.screen.img
}

// Present counts the frame; there is no display to flip.
func (h *Headless) Present() {
	h.frames++
}

// Frames returns the number of frames presented so far.
func (h *Headless) Frames() int {
	return h.frames
}

// Tick advances the virtual clock by one frame at fps. The clock is
// computed from the frame count, so n frames at fps always sum to
// n/fps seconds without accumulated rounding.
func (h *Headless) Tick(fps int) {
	if fps <= 0 {
		return
	}
	if fps != h.fps {
		h.base = h.Now()
		h.ticks = 0
		h.fps = fps
	}
	h.ticks++
	if h.RealTime {
		if d := time.Until(h.started.Add(h.Now())); d > 0 {
			time.Sleep(d)
		}
	}
}

// Now returns the virtual clock.
func (h *Headless) Now() time.Duration {
	if h.fps <= 0 {
		return h.base
	}
	return h.base + time.Duration(h.ticks)*time.Second/time.Duration(h.fps)
}

// Advance moves the virtual clock forward without presenting a frame.
func (h *Headless) Advance(d time.Duration) {
	h.base += d
}

// Push queues host events, as a platform event loop would.
func (h *Headless) Push(events ...Event) {
	h.queue = append(h.queue, events...)
}

// Poll returns the pushed events followed by every timer that has come due,
// earliest deadline first. Fired timers are disarmed.
func (h *Headless) Poll() []Event {
	events := h.queue
	h.queue = nil

	now := h.Now()
	var due []armedTimer
	pending := h.timers[:0]
	for _, t := range h.timers {
		if t.deadline <= now {
			due = append(due, t)
		} else {
			pending = append(pending, t)
		}
	}
	h.timers = pending

	slices.SortStableFunc(due, func(a, b armedTimer) int {
		switch {
		case a.deadline < b.deadline:
			return -1
		case a.deadline > b.deadline:
			return 1
		}
		return int(a.id - b.id)
	})
	for _, t := range due {
		events = append(events, Event{Kind: EventTimer, Timer: t.id})
	}
	return events
}

// ArmTimer schedules id to fire interval from now.
func (h *Headless) ArmTimer(id TimerID, interval time.Duration) {
	deadline := h.Now() + interval
	for i := range h.timers {
		if h.timers[i].id == id {
			h.timers[i].deadline = deadline
			return
		}
	}
	h.timers = append(h.timers, armedTimer{id: id, deadline: deadline})
}

// Close does nothing; the buffers are garbage collected.
func (h *Headless) Close() error {
	return nil
}
