package easel

import (
	"os"
	"testing"
)

func TestLoadTestScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "screenshot", "label": "initial"},
			{"action": "click", "x": 100, "y": 200},
			{"action": "wait", "frames": 3},
			{"action": "key", "key": "a"},
			{"action": "screenshot", "label": "after-click"}
		]
	}`)

	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 5 {
		t.Fatalf("expected 5 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].Action != "screenshot" || runner.steps[0].Label != "initial" {
		t.Error("step 0 mismatch")
	}
	if runner.steps[1].Action != "click" || runner.steps[1].X != 100 || runner.steps[1].Y != 200 {
		t.Error("step 1 mismatch")
	}
	if runner.steps[2].Action != "wait" || runner.steps[2].Frames != 3 {
		t.Error("step 2 mismatch")
	}
	if runner.steps[3].Action != "key" || runner.steps[3].Key != "a" {
		t.Error("step 3 mismatch")
	}
}

func TestLoadTestScript_Invalid(t *testing.T) {
	_, err := LoadTestScript([]byte(`not json`))
	if err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestLoadTestScript_Empty(t *testing.T) {
	_, err := LoadTestScript([]byte(`{"steps": []}`))
	if err == nil {
		t.Error("expected error for empty steps")
	}
}

func TestLoadTestScript_UnknownAction(t *testing.T) {
	_, err := LoadTestScript([]byte(`{"steps": [{"action": "teleport"}]}`))
	if err == nil {
		t.Error("expected error for unknown action")
	}
}

func TestRunnerStep_Click(t *testing.T) {
	w, _ := newTestWindow(200, 200, 60)

	data := []byte(`{"steps": [{"action": "click", "x": 50, "y": 50}]}`)
	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatal(err)
	}
	w.SetTestRunner(runner)

	// First step call: click queues press+release (2 events).
	runner.step(w)
	if len(w.injectQueue) != 2 {
		t.Fatalf("expected 2 queued events, got %d", len(w.injectQueue))
	}
	// Injections still pending.
	if runner.Done() {
		t.Error("runner should not be done while inject queue has events")
	}

	w.popInjected()
	w.popInjected()

	runner.step(w)
	if !runner.Done() {
		t.Error("runner should be done after all steps executed and queue drained")
	}
}

func TestRunnerStep_Wait(t *testing.T) {
	w, _ := newTestWindow(10, 10, 60)

	data := []byte(`{"steps": [
		{"action": "wait", "frames": 3},
		{"action": "screenshot", "label": "done"}
	]}`)
	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatal(err)
	}

	// Frame 1: execute wait (waitCount becomes 2).
	runner.step(w)
	if runner.Done() {
		t.Error("should not be done during wait")
	}

	// Frame 2: waitCount 2→1.
	runner.step(w)
	// Frame 3: waitCount 1→0.
	runner.step(w)
	if runner.Done() {
		t.Error("should not be done, screenshot step not yet executed")
	}

	// Frame 4: execute screenshot step, runner finishes.
	runner.step(w)
	if !runner.Done() {
		t.Error("runner should be done after screenshot step")
	}
	if len(w.screenshotQueue) != 1 || w.screenshotQueue[0] != "done" {
		t.Errorf("expected screenshot 'done', got %v", w.screenshotQueue)
	}
}

func TestRunnerStep_Drag(t *testing.T) {
	w, _ := newTestWindow(10, 10, 60)
	data := []byte(`{"steps": [{"action": "drag", "fromX": 10, "fromY": 10, "toX": 200, "toY": 200, "frames": 4}]}`)
	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatal(err)
	}

	runner.step(w)
	if len(w.injectQueue) != 4 {
		t.Fatalf("expected 4 queued events for drag, got %d", len(w.injectQueue))
	}
}

func TestRunnerWaitsForInjectQueue(t *testing.T) {
	w, _ := newTestWindow(10, 10, 60)

	data := []byte(`{"steps": [
		{"action": "click", "x": 50, "y": 50},
		{"action": "screenshot", "label": "after"}
	]}`)
	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatal(err)
	}

	runner.step(w)
	if len(w.injectQueue) != 2 {
		t.Fatalf("expected 2 events, got %d", len(w.injectQueue))
	}

	// Should not advance while the inject queue is not drained.
	runner.step(w)
	if runner.cursor != 1 {
		t.Errorf("cursor should still be 1, got %d", runner.cursor)
	}

	w.injectQueue = w.injectQueue[:0]

	runner.step(w)
	if len(w.screenshotQueue) != 1 || w.screenshotQueue[0] != "after" {
		t.Errorf("expected screenshot 'after', got %v", w.screenshotQueue)
	}
	if !runner.Done() {
		t.Error("runner should be done")
	}
}

func TestRunnerDrivesWindow(t *testing.T) {
	host := NewHeadless(300, 400)
	dir := t.TempDir()
	w := NewWindow(Config{Width: 300, Height: 400, ScreenshotDir: dir}, host)

	bulb := NewOutlinedCircle(200, DarkGray, Black)
	button := NewOutlinedRectangle(150, 50, Gray, Black)
	w.Paste(bulb, 50, 30)
	w.Paste(button, 75, 300)
	w.OnMouseDown(func(x, y int) {
		if w.GraphicAt(x, y) == button {
			bulb.ChangeFillColor(MustParseColor("gold"))
		}
	})
	w.OnMouseUp(func(x, y int) {
		bulb.ChangeFillColor(DarkGray)
	})

	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "press", "x": 150, "y": 320},
		{"action": "screenshot", "label": "lit"},
		{"action": "release", "x": 150, "y": 320},
		{"action": "quit"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	w.SetTestRunner(runner)

	quit := false
	for i := 0; i < 20 && !quit; i++ {
		quit = w.Refresh(false)
	}
	if !quit {
		t.Fatal("script should end with a quit")
	}
	w.Refresh(false)
	if !runner.Done() {
		t.Error("runner should be done")
	}
	if bulb.FillColor() != DarkGray {
		t.Errorf("bulb fill = %v, want DarkGray after release", bulb.FillColor())
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected 1 screenshot, got %d", len(entries))
	}
}
