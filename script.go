package elements

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a script.
type scriptStep struct {
	Action string `json:"action"`
	Label  string `json:"label,omitempty"`
	X      int    `json:"x,omitempty"`
	Y      int    `json:"y,omitempty"`
	Frames int    `json:"frames,omitempty"`
}

type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// Script sequences injected pointer events, waits and snapshots across
// updates for automated runs. Attach to a Document via SetScript.
type Script struct {
	// SnapshotDir is where snapshot steps write PNG files.
	SnapshotDir string

	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON script and returns a Script ready to be attached
// with SetScript.
func LoadScript(jsonData []byte) (*Script, error) {
	var f scriptFile
	if err := json.Unmarshal(jsonData, &f); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range f.Steps {
		switch st.Action {
		case "click", "press", "release", "wait", "snapshot":
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: f.Steps, SnapshotDir: "snapshots"}, nil
}

// SetScript attaches a script. Its step runs at the start of every Update.
func (d *Document) SetScript(s *Script) {
	d.script = s
}

// Done reports whether all steps have been executed.
func (s *Script) Done() bool {
	return s.done
}

// step advances the script by one update.
func (s *Script) step(d *Document) {
	if s.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(d.injectQueue) > 0 {
		return
	}
	if s.waitCount > 0 {
		s.waitCount--
		return
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return
	}

	st := s.steps[s.cursor]
	s.cursor++

	switch st.Action {
	case "snapshot":
		if _, err := d.SaveSnapshot(s.SnapshotDir, st.Label); err != nil {
			d.Logger.Error("script snapshot failed", "label", st.Label, "err", err)
		}
	case "click":
		d.InjectClick(st.X, st.Y)
	case "press":
		d.InjectPress(st.X, st.Y)
	case "release":
		d.InjectRelease(st.X, st.Y)
	case "wait":
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1 // this update counts as one
		}
	}

	if s.cursor >= len(s.steps) && s.waitCount == 0 && len(d.injectQueue) == 0 {
		s.done = true
	}
}
