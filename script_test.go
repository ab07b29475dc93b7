package elements

import (
	"os"
	"testing"
)

func TestLoadScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "snapshot", "label": "initial"},
			{"action": "click", "x": 100, "y": 200},
			{"action": "wait", "frames": 3},
			{"action": "press", "x": 1, "y": 2},
			{"action": "release", "x": 1, "y": 2}
		]
	}`)

	s, err := LoadScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.steps) != 5 {
		t.Fatalf("expected 5 steps, got %d", len(s.steps))
	}
	if s.steps[0].Action != "snapshot" || s.steps[0].Label != "initial" {
		t.Error("step 0 mismatch")
	}
	if s.steps[1].Action != "click" || s.steps[1].X != 100 || s.steps[1].Y != 200 {
		t.Error("step 1 mismatch")
	}
	if s.steps[2].Action != "wait" || s.steps[2].Frames != 3 {
		t.Error("step 2 mismatch")
	}
	if s.SnapshotDir != "snapshots" {
		t.Errorf("SnapshotDir = %q, want snapshots", s.SnapshotDir)
	}
}

func TestLoadScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid json", `not json`},
		{"no steps", `{"steps": []}`},
		{"unknown action", `{"steps": [{"action": "dance"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadScript([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestScriptClick(t *testing.T) {
	doc := newTestDoc(t)
	e := mustCreate(t, doc, "element", "left", "90", "top", "40", "width", "20", "height", "20")
	mustAdd(t, doc.Root(), e)
	doc.Update(0)

	clicks := 0
	e.On(EventClick, func(*Event) { clicks++ })

	s, err := LoadScript([]byte(`{"steps": [{"action": "click", "x": 100, "y": 50}]}`))
	if err != nil {
		t.Fatal(err)
	}
	doc.SetScript(s)

	for i := 0; i < 5 && !s.Done(); i++ {
		doc.Update(0)
	}
	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}
	if !s.Done() {
		t.Error("script should be done")
	}
}

func TestScriptWait(t *testing.T) {
	doc := newTestDoc(t)
	s, err := LoadScript([]byte(`{"steps": [
		{"action": "wait", "frames": 3},
		{"action": "press", "x": 1, "y": 1}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	doc.SetScript(s)

	presses := 0
	doc.Root().On(EventMouseDown, func(*Event) { presses++ })

	// wait occupies three updates, the press is queued on the fourth and
	// consumed in the same update
	for i := 0; i < 3; i++ {
		doc.Update(0)
		if presses != 0 {
			t.Fatalf("press fired during wait (update %d)", i+1)
		}
	}
	doc.Update(0)
	if presses != 1 {
		t.Errorf("presses = %d, want 1", presses)
	}
}

func TestScriptSnapshot(t *testing.T) {
	doc := newTestDoc(t)
	s, err := LoadScript([]byte(`{"steps": [{"action": "snapshot", "label": "first shot"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	s.SnapshotDir = t.TempDir()
	doc.SetScript(s)
	doc.Update(0)

	entries, err := os.ReadDir(s.SnapshotDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("snapshot files = %d, want 1", len(entries))
	}
	if !s.Done() {
		t.Error("script should be done after its only step")
	}
}
