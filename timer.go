package easel

import "time"

// TimerID identifies a registered timer. IDs are assigned in registration
// order starting at 0 and are never reused.
type TimerID int

type timerSlot struct {
	interval time.Duration
	fn       func()
}

// timerRegistry is the slot table behind Window.CallEvery. Hosts see only
// TimerIDs and map them onto whatever their own timer mechanism needs.
type timerRegistry struct {
	slots []timerSlot
}

// add appends a slot and returns its ID.
func (r *timerRegistry) add(interval time.Duration, fn func()) TimerID {
	r.slots = append(r.slots, timerSlot{interval: interval, fn: fn})
	return TimerID(len(r.slots) - 1)
}

// lookup returns the slot for id, or false if id was never registered.
func (r *timerRegistry) lookup(id TimerID) (timerSlot, bool) {
	if id < 0 || int(id) >= len(r.slots) {
		return timerSlot{}, false
	}
	return r.slots[id], true
}

func (r *timerRegistry) len() int {
	return len(r.slots)
}
