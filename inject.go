package easel

// Injected events are queued on the Window and consumed one per Refresh,
// ahead of that frame's host events. A click therefore spans two frames,
// as a real press and release would.

func (w *Window) inject(ev Event) {
	w.injectQueue = append(w.injectQueue, ev)
}

// InjectPress queues a left-button press at (x, y).
func (w *Window) InjectPress(x, y int) {
	w.inject(Event{Kind: EventMouseDown, X: x, Y: y, Button: MouseButtonLeft})
}

// InjectRelease queues a left-button release at (x, y).
func (w *Window) InjectRelease(x, y int) {
	w.inject(Event{Kind: EventMouseUp, X: x, Y: y, Button: MouseButtonLeft})
}

// InjectMove queues a cursor move to (x, y).
func (w *Window) InjectMove(x, y int) {
	w.inject(Event{Kind: EventMouseMove, X: x, Y: y})
}

// InjectClick is a convenience that queues a press followed by a release
// at the same position. Consumes two frames.
func (w *Window) InjectClick(x, y int) {
	w.InjectPress(x, y)
	w.InjectRelease(x, y)
}

// InjectDrag queues a press at (fromX, fromY), linearly interpolated moves
// over frames-2 intermediate frames, and a release at (toX, toY). The
// sequence consumes frames frames; the minimum is 2.
func (w *Window) InjectDrag(fromX, fromY, toX, toY, frames int) {
	if frames < 2 {
		frames = 2
	}
	w.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := float64(fromX) + float64(toX-fromX)*t
		y := float64(fromY) + float64(toY-fromY)*t
		w.InjectMove(int(x), int(y))
	}
	w.InjectRelease(toX, toY)
}

// InjectKey queues a key press that produced char.
func (w *Window) InjectKey(char string) {
	w.inject(Event{Kind: EventKeyDown, Char: char})
}

// InjectQuit queues a quit request.
func (w *Window) InjectQuit() {
	w.inject(Event{Kind: EventQuit})
}

// popInjected removes and returns the oldest injected event.
func (w *Window) popInjected() (Event, bool) {
	if len(w.injectQueue) == 0 {
		return Event{}, false
	}
	ev := w.injectQueue[0]
	copy(w.injectQueue, w.injectQueue[1:])
	w.injectQueue = w.injectQueue[:len(w.injectQueue)-1]
	return ev, true
}
