// Package easel is a small paste-and-refresh 2D window for [Ebitengine].
//
// A [Window] holds an ordered list of drawables pasted at fixed pixel
// positions. Each call to [Window.Refresh] clears the window, draws every
// placement in paste order, presents the frame, waits for the frame clock
// and then dispatches the mouse, keyboard and timer events that arrived.
// The application owns the loop:
//
//	err := easel.Run(easel.Config{Title: "TELEGRAFF", Width: 300, Height: 400},
//		func(w *easel.Window) error {
//			bulb := easel.NewOutlinedCircle(200, easel.DarkGray, easel.Black)
//			w.Paste(bulb, 50, 30)
//			for !w.Refresh(false) {
//			}
//			return nil
//		})
//
// # Drawables
//
// [Rectangle], [Circle] and [Textbox] are fixed-size bitmaps with a hit
// test. Their Change* methods re-render them in place; the next Refresh
// shows the result. The same drawable may be pasted any number of times.
//
// # Events
//
// Register at most one handler per kind with [Window.OnMouseDown],
// [Window.OnMouseUp], [Window.OnClick], [Window.OnMouseMove] and
// [Window.OnKeyPress], or by name with [Window.ListenFor]. A button press
// goes to the mousedown handler if there is one and to the click handler
// otherwise, never to both. [Window.CallEvery] adds periodic timers.
//
// [Window.GraphicAt] returns the first pasted drawable covering a point.
// Note that this is paste order: where graphics overlap, the one pasted
// first is returned even though the one pasted last is drawn on top.
//
// # Hosts
//
// [Run] binds a Window to an Ebitengine window. [NewHeadless] creates a
// host with no display and a virtual clock, for tests, scripted runs
// ([LoadTestScript]) and screenshots.
//
// [Ebitengine]: https://ebitengine.org
package easel
