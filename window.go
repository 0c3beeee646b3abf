package easel

import (
	"time"
)

// Window composites a Scene onto a Host every frame and dispatches the
// host's events to registered handlers.
//
// A Window is not safe for concurrent use. Handlers, timer callbacks and
// tweens all run inside Refresh on the caller's goroutine. They may paste,
// remove or restyle graphics; changes show up on the next frame.
type Window struct {
	Scene

	cfg    Config
	host   Host
	timers timerRegistry
	router eventRouter

	tweens   []*Tween
	lastTick time.Duration
	fps      fpsMeter
	overlay  *Textbox

	injectQueue     []Event
	script          *TestRunner
	screenshotQueue []string

	debug bool
}

// NewWindow creates a window drawing onto host. The window owns host from
// here on; Close releases it.
func NewWindow(cfg Config, host Host) *Window {
	cfg = cfg.withDefaults()
	w := &Window{
		cfg:      cfg,
		host:     host,
		debug:    cfg.Debug,
		lastTick: host.Now(),
	}
	if cfg.ShowFPS {
		w.overlay = newFPSTextbox()
	}
	return w
}

// Width returns the window width in pixels.
func (w *Window) Width() int { return w.cfg.Width }

// Height returns the window height in pixels.
func (w *Window) Height() int { return w.cfg.Height }

// Title returns the window title.
func (w *Window) Title() string { return w.cfg.Title }

// Background returns the color each frame starts from.
func (w *Window) Background() Color { return w.cfg.Background }

// SetBackground changes the color each frame starts from.
func (w *Window) SetBackground(c Color) { w.cfg.Background = c }

// Host returns the host the window draws on.
func (w *Window) Host() Host { return w.host }

// SetDebugMode enables or disables per-frame stats on stderr.
func (w *Window) SetDebugMode(enabled bool) { w.debug = enabled }

// Close releases the host.
func (w *Window) Close() error {
	return w.host.Close()
}

// Refresh draws one frame and handles the events that arrived since the
// previous call. It clears to the background, draws every placement in
// paste order, presents, waits for the frame clock, advances tweens and,
// unless ignoreEvents is set, dispatches pending events.
//
// Refresh reports whether a quit was requested during this frame.
func (w *Window) Refresh(ignoreEvents bool) bool {
	var stats frameStats
	var t0 time.Time
	if w.debug {
		t0 = time.Now()
	}

	screen := w.host.Screen()
	screen.Fill(w.cfg.Background)
	for _, p := range w.placements {
		screen.DrawSurface(surfaceOf(p.Graphic, w.host), p.X, p.Y)
	}
	if w.overlay != nil {
		screen.DrawSurface(surfaceOf(w.overlay, w.host), 0, 0)
	}
	w.host.Present()
	w.flushScreenshots(screen)

	if w.debug {
		stats.drawTime = time.Since(t0)
		stats.placements = len(w.placements)
		t0 = time.Now()
	}

	w.host.Tick(w.cfg.FPS)
	now := w.host.Now()
	dt := now - w.lastTick
	w.lastTick = now
	if w.fps.record(now) && w.overlay != nil {
		w.overlay.ChangeMessage(fpsLabel(w.fps.fps))
	}
	w.updateTweens(dt)

	if w.debug {
		stats.tickTime = time.Since(t0)
		t0 = time.Now()
	}

	quit := false
	if !ignoreEvents {
		quit = w.processEvents(&stats)
	}

	if w.debug {
		stats.dispatchTime = time.Since(t0)
		w.debugLog(stats)
	}
	return quit
}

// processEvents steps the attached script, then drains the injected and
// host events once.
func (w *Window) processEvents(stats *frameStats) bool {
	if w.script != nil {
		w.script.step(w)
	}

	var events []Event
	if ev, ok := w.popInjected(); ok {
		events = append(events, ev)
	}
	events = append(events, w.host.Poll()...)

	quit := false
	for _, ev := range events {
		stats.events++
		switch ev.Kind {
		case EventTimer:
			if w.fireTimer(ev.Timer) {
				stats.handled++
			}
		case EventQuit:
			quit = true
		default:
			if w.router.dispatch(ev) {
				stats.handled++
			}
		}
	}
	return quit
}

// CallEvery calls fn every interval, starting one interval from now. The
// timer lasts for the life of the window. A non-positive interval
// registers the slot without ever firing it.
func (w *Window) CallEvery(interval time.Duration, fn func()) TimerID {
	id := w.timers.add(interval, fn)
	if interval > 0 {
		w.host.ArmTimer(id, interval)
	}
	return id
}

// CallEveryKMilliseconds is CallEvery with the interval in milliseconds.
func (w *Window) CallEveryKMilliseconds(k int, fn func()) TimerID {
	return w.CallEvery(time.Duration(k)*time.Millisecond, fn)
}

// TimerInterval returns the interval registered under id.
func (w *Window) TimerInterval(id TimerID) (time.Duration, bool) {
	slot, ok := w.timers.lookup(id)
	return slot.interval, ok
}

// fireTimer re-arms the slot at its registered interval, then runs its
// callback. Unknown IDs are ignored.
func (w *Window) fireTimer(id TimerID) bool {
	slot, ok := w.timers.lookup(id)
	if !ok || slot.interval <= 0 {
		return false
	}
	w.host.ArmTimer(id, slot.interval)
	if slot.fn != nil {
		slot.fn()
	}
	return true
}

// ListenFor registers fn for an event kind: "mousedown", "mouseup",
// "click" and "mousemove" take func(x, y int); "keypress" takes
// func(key string). A later registration for the same kind replaces the
// earlier one, and a nil fn removes it.
func (w *Window) ListenFor(kind string, fn any) error {
	return w.router.listen(kind, fn)
}

// OnMouseDown sets the handler for mouse button presses.
func (w *Window) OnMouseDown(fn PointerHandler) { w.router.setPointer(KindMouseDown, fn) }

// OnMouseUp sets the handler for mouse button releases.
func (w *Window) OnMouseUp(fn PointerHandler) { w.router.setPointer(KindMouseUp, fn) }

// OnClick sets the handler for presses when no mousedown handler is set.
func (w *Window) OnClick(fn PointerHandler) { w.router.setPointer(KindClick, fn) }

// OnMouseMove sets the handler for cursor motion.
func (w *Window) OnMouseMove(fn PointerHandler) { w.router.setPointer(KindMouseMove, fn) }

// OnKeyPress sets the handler for typed characters.
func (w *Window) OnKeyPress(fn KeyHandler) { w.router.key = fn }
