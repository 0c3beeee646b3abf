package easel

import (
	"fmt"
	"slices"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Run opens an Ebitengine window described by cfg and calls app with a
// Window bound to it. app drives its own loop by calling Refresh until it
// reports a quit. Run returns when app returns or the window fails.
//
// Ebitengine must own the main goroutine, so app runs on a second
// goroutine. The two hand control back and forth once per frame and never
// run Window code at the same time.
//
//	err := easel.Run(easel.Config{Title: "Demo", Width: 300, Height: 400},
//		func(w *easel.Window) error {
//			w.Paste(easel.NewCircle(200, easel.DarkGray), 50, 30)
//			for !w.Refresh(false) {
//			}
//			return nil
//		})
func Run(cfg Config, app func(w *Window) error) error {
	cfg = cfg.withDefaults()
	h := newEbitenHost(cfg)
	w := NewWindow(cfg, h)

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(cfg.FPS)

	var appErr error
	go func() {
		defer close(h.appDone)
		appErr = app(w)
	}()

	err := ebiten.RunGame(&game{host: h})
	close(h.stopped)

	select {
	case <-h.appDone:
		if appErr != nil {
			return appErr
		}
	default:
	}
	if err != nil {
		return fmt.Errorf("easel: run: %w", err)
	}
	return nil
}

// ebitenHost is the Host behind Run. The application goroutine owns the
// back buffer and timers except while it is parked in Tick; the Ebitengine
// goroutine touches them only during that window.
type ebitenHost struct {
	EbitenBackend

	width, height int
	back          *ebitenSurface
	front         *ebiten.Image
	presented     bool
	tps           int

	start  time.Time
	timers []wallTimer

	pending      []Event
	cursorX      int
	cursorY      int
	cursorKnown  bool
	closeHandled bool

	yield   chan struct{} // app -> ebiten: frame done, parked in Tick
	resume  chan []Event  // ebiten -> app: events for the next Poll
	appDone chan struct{}
	stopped chan struct{}
}

type wallTimer struct {
	id       TimerID
	deadline time.Time
}

func newEbitenHost(cfg Config) *ebitenHost {
	return &ebitenHost{
		width:   cfg.Width,
		height:  cfg.Height,
		back:    newEbitenSurface(cfg.Width, cfg.Height),
		front:   ebiten.NewImage(cfg.Width, cfg.Height),
		tps:     cfg.FPS,
		start:   time.Now(),
		yield:   make(chan struct{}),
		resume:  make(chan []Event),
		appDone: make(chan struct{}),
		stopped: make(chan struct{}),
	}
}

func (h *ebitenHost) Screen() Surface { return h.back }

func (h *ebitenHost) Present() { h.presented = true }

// Tick parks the application until Ebitengine's next update.
func (h *ebitenHost) Tick(fps int) {
	if fps > 0 && fps != h.tps {
		h.tps = fps
		ebiten.SetTPS(fps)
	}
	select {
	case h.yield <- struct{}{}:
	case <-h.stopped:
		h.pending = append(h.pending, Event{Kind: EventQuit})
		return
	}
	select {
	case evs := <-h.resume:
		h.pending = append(h.pending, evs...)
	case <-h.stopped:
		h.pending = append(h.pending, Event{Kind: EventQuit})
	}
}

func (h *ebitenHost) Now() time.Duration { return time.Since(h.start) }

func (h *ebitenHost) Poll() []Event {
	evs := h.pending
	h.pending = nil
	return evs
}

func (h *ebitenHost) ArmTimer(id TimerID, interval time.Duration) {
	deadline := time.Now().Add(interval)
	for i := range h.timers {
		if h.timers[i].id == id {
			h.timers[i].deadline = deadline
			return
		}
	}
	h.timers = append(h.timers, wallTimer{id: id, deadline: deadline})
}

// Close does nothing. Ebitengine may still draw the front buffer until
// RunGame returns, and it frees its images on exit.
func (h *ebitenHost) Close() error {
	return nil
}

// collect gathers this tick's input and due timers. Called on the
// Ebitengine goroutine while the application is parked.
func (h *ebitenHost) collect() []Event {
	var evs []Event

	mx, my := ebiten.CursorPosition()
	if h.cursorKnown && (mx != h.cursorX || my != h.cursorY) {
		evs = append(evs, Event{Kind: EventMouseMove, X: mx, Y: my})
	}
	h.cursorX, h.cursorY, h.cursorKnown = mx, my, true

	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b.ebiten) {
			evs = append(evs, Event{Kind: EventMouseDown, X: mx, Y: my, Button: b.easel})
		}
		if inpututil.IsMouseButtonJustReleased(b.ebiten) {
			evs = append(evs, Event{Kind: EventMouseUp, X: mx, Y: my, Button: b.easel})
		}
	}

	for _, r := range ebiten.AppendInputChars(nil) {
		evs = append(evs, Event{Kind: EventKeyDown, Char: string(r)})
	}
	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		if ch, ok := controlKeys[k]; ok {
			evs = append(evs, Event{Kind: EventKeyDown, Char: ch})
		}
	}

	if ebiten.IsWindowBeingClosed() && !h.closeHandled {
		h.closeHandled = true
		evs = append(evs, Event{Kind: EventQuit})
	}

	now := time.Now()
	var due []wallTimer
	pending := h.timers[:0]
	for _, t := range h.timers {
		if !now.Before(t.deadline) {
			due = append(due, t)
		} else {
			pending = append(pending, t)
		}
	}
	h.timers = pending
	slices.SortStableFunc(due, func(a, b wallTimer) int { return a.deadline.Compare(b.deadline) })
	for _, t := range due {
		evs = append(evs, Event{Kind: EventTimer, Timer: t.id})
	}
	return evs
}

var mouseButtons = []struct {
	ebiten ebiten.MouseButton
	easel  MouseButton
}{
	{ebiten.MouseButtonLeft, MouseButtonLeft},
	{ebiten.MouseButtonRight, MouseButtonRight},
	{ebiten.MouseButtonMiddle, MouseButtonMiddle},
}

// controlKeys maps keys that produce no input character to the character a
// terminal would send for them.
var controlKeys = map[ebiten.Key]string{
	ebiten.KeyEnter:     "\r",
	ebiten.KeyBackspace: "\b",
	ebiten.KeyTab:       "\t",
	ebiten.KeyEscape:    "\x1b",
	ebiten.KeyDelete:    "\x7f",
}

// game adapts ebitenHost to ebiten.Game.
type game struct {
	host *ebitenHost
}

func (g *game) Update() error {
	h := g.host
	select {
	case <-h.appDone:
		return ebiten.Termination
	case <-h.yield:
	}
	if h.presented && h.back.img != nil {
		h.front.Clear()
		h.front.DrawImage(h.back.img, nil)
		h.presented = false
	}
	evs := h.collect()
	select {
	case h.resume <- evs:
	case <-h.appDone:
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.host.front, nil)
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.host.width, g.host.height
}
