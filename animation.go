package easel

import (
	"math"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Fillable is implemented by every drawable with a fill color.
type Fillable interface {
	Drawable
	FillColor() Color
	ChangeFillColor(Color)
}

// Tween animates up to 4 values on a drawable simultaneously. Create one
// with Window.TweenPosition or Window.TweenFillColor; the window advances
// it on every Refresh by the host time that elapsed, and drops it once Done.
type Tween struct {
	tweens [4]*gween.Tween
	count  int
	apply  func(v [4]float64)
	Done   bool
}

// Update advances all tweens by dt seconds and applies the new values.
func (t *Tween) Update(dt float32) {
	if t.Done {
		return
	}
	var vals [4]float64
	allDone := true
	for i := 0; i < t.count; i++ {
		val, finished := t.tweens[i].Update(dt)
		vals[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	t.apply(vals)
	t.Done = allDone
}

// Stop freezes the tween at its current values.
func (t *Tween) Stop() {
	t.Done = true
}

// TweenPosition slides every placement of d from its first placement's
// position to (toX, toY). Positions are rounded to whole pixels. Returns nil
// if d is not pasted.
func (w *Window) TweenPosition(d Drawable, toX, toY int, duration time.Duration, fn ease.TweenFunc) *Tween {
	x, y, ok := w.position(d)
	if !ok {
		return nil
	}
	secs := float32(duration.Seconds())
	t := &Tween{count: 2}
	t.tweens[0] = gween.New(float32(x), float32(toX), secs, fn)
	t.tweens[1] = gween.New(float32(y), float32(toY), secs, fn)
	t.apply = func(v [4]float64) {
		w.Move(d, int(math.Round(v[0])), int(math.Round(v[1])))
	}
	w.tweens = append(w.tweens, t)
	return t
}

// TweenFillColor fades d's fill color to the target, re-rendering d on
// every frame of the fade.
func (w *Window) TweenFillColor(d Fillable, to Color, duration time.Duration, fn ease.TweenFunc) *Tween {
	from := d.FillColor()
	secs := float32(duration.Seconds())
	t := &Tween{count: 4}
	t.tweens[0] = gween.New(float32(from.R), float32(to.R), secs, fn)
	t.tweens[1] = gween.New(float32(from.G), float32(to.G), secs, fn)
	t.tweens[2] = gween.New(float32(from.B), float32(to.B), secs, fn)
	t.tweens[3] = gween.New(float32(from.A), float32(to.A), secs, fn)
	t.apply = func(v [4]float64) {
		d.ChangeFillColor(Color{R: v[0], G: v[1], B: v[2], A: v[3]})
	}
	w.tweens = append(w.tweens, t)
	return t
}

// updateTweens advances active tweens and drops finished ones.
func (w *Window) updateTweens(dt time.Duration) {
	if len(w.tweens) == 0 {
		return
	}
	secs := float32(dt.Seconds())
	active := w.tweens[:0]
	for _, t := range w.tweens {
		t.Update(secs)
		if !t.Done {
			active = append(active, t)
		}
	}
	clear(w.tweens[len(active):])
	w.tweens = active
}
