package easel

import (
	"fmt"
	"os"
	"time"
)

// frameStats holds per-frame timing and dispatch counts.
// Only populated when the window is in debug mode.
type frameStats struct {
	drawTime     time.Duration
	tickTime     time.Duration
	dispatchTime time.Duration
	placements   int
	events       int
	handled      int
}

// debugLog prints timing and dispatch stats to stderr.
func (w *Window) debugLog(stats frameStats) {
	if !w.debug {
		return
	}
	total := stats.drawTime + stats.tickTime + stats.dispatchTime
	_, _ = fmt.Fprintf(os.Stderr,
		"[easel] draw: %v | tick: %v | dispatch: %v | total: %v\n",
		stats.drawTime, stats.tickTime, stats.dispatchTime, total)
	_, _ = fmt.Fprintf(os.Stderr,
		"[easel] placements: %d | events: %d | handled: %d | timers: %d | tweens: %d\n",
		stats.placements, stats.events, stats.handled, w.timers.len(), len(w.tweens))
}
