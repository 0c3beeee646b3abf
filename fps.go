package easel

import (
	"fmt"
	"time"
)

const fpsWindow = 500 * time.Millisecond

// fpsMeter averages the frame rate over half-second windows of host time.
type fpsMeter struct {
	frames int
	since  time.Duration
	fps    float64
}

// record counts a frame at now and reports whether a window closed and
// the rate was updated.
func (m *fpsMeter) record(now time.Duration) bool {
	m.frames++
	elapsed := now - m.since
	if elapsed < fpsWindow {
		return false
	}
	m.fps = float64(m.frames) / elapsed.Seconds()
	m.frames = 0
	m.since = now
	return true
}

// ActualFPS returns the measured frame rate, updated every half second.
func (w *Window) ActualFPS() float64 {
	return w.fps.fps
}

// newFPSTextbox creates the readout drawn when Config.ShowFPS is set.
// Refresh rewrites its text each time the meter closes a window. It is not
// part of the Scene, so it always draws last and never wins a hit test.
func newFPSTextbox() *Textbox {
	return NewTextbox(100, 20, fpsLabel(0), TextboxOptions{
		TextColor: White,
		FillColor: Color{0, 0, 0, 0.5},
	})
}

func fpsLabel(fps float64) string {
	if fps <= 0 {
		return "FPS: --"
	}
	return fmt.Sprintf("FPS: %.1f", fps)
}
