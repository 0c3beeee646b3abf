package easel

import "fmt"

// Handler kinds understood by ListenFor.
const (
	KindMouseDown = "mousedown"
	KindMouseUp   = "mouseup"
	KindClick     = "click"
	KindMouseMove = "mousemove"
	KindKeyPress  = "keypress"
)

// PointerHandler receives the window position of a mouse event.
type PointerHandler func(x, y int)

// KeyHandler receives the character a key press produced.
type KeyHandler func(key string)

// eventRouter holds at most one handler per kind. Registering again for a
// kind replaces the previous handler.
type eventRouter struct {
	pointer map[string]PointerHandler
	key     KeyHandler
}

func (r *eventRouter) setPointer(kind string, fn PointerHandler) {
	if r.pointer == nil {
		r.pointer = make(map[string]PointerHandler)
	}
	if fn == nil {
		delete(r.pointer, kind)
		return
	}
	r.pointer[kind] = fn
}

func (r *eventRouter) listen(kind string, fn any) error {
	switch kind {
	case KindMouseDown, KindMouseUp, KindClick, KindMouseMove:
		switch fn := fn.(type) {
		case PointerHandler:
			r.setPointer(kind, fn)
		case func(x, y int):
			r.setPointer(kind, fn)
		case nil:
			r.setPointer(kind, nil)
		default:
			return fmt.Errorf("easel: %s handler must be func(x, y int), got %T", kind, fn)
		}
	case KindKeyPress:
		switch fn := fn.(type) {
		case KeyHandler:
			r.key = fn
		case func(key string):
			r.key = fn
		case nil:
			r.key = nil
		default:
			return fmt.Errorf("easel: %s handler must be func(key string), got %T", kind, fn)
		}
	default:
		return fmt.Errorf("easel: unknown event kind %q", kind)
	}
	return nil
}

// dispatch routes one non-timer event. It reports whether a handler ran.
// A mouse press goes to "mousedown" when one is registered and to "click"
// only otherwise; the two never both fire for the same press.
func (r *eventRouter) dispatch(ev Event) bool {
	switch ev.Kind {
	case EventMouseDown:
		if fn := r.pointer[KindMouseDown]; fn != nil {
			fn(ev.X, ev.Y)
			return true
		}
		if fn := r.pointer[KindClick]; fn != nil {
			fn(ev.X, ev.Y)
			return true
		}
	case EventMouseUp:
		if fn := r.pointer[KindMouseUp]; fn != nil {
			fn(ev.X, ev.Y)
			return true
		}
	case EventMouseMove:
		if fn := r.pointer[KindMouseMove]; fn != nil {
			fn(ev.X, ev.Y)
			return true
		}
	case EventKeyDown:
		if r.key != nil {
			r.key(ev.Char)
			return true
		}
	}
	return false
}
