package elements

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenReachesTarget(t *testing.T) {
	doc := newTestDoc(t)
	e := mustCreate(t, doc, "element")
	v := 10.0

	tw := NewTween(e, &v, 100, 1.0, ease.Linear)
	tw.Update(0.5)
	if math.Abs(v-55) > 0.5 {
		t.Errorf("midway = %f, want ~55", v)
	}
	tw.Update(0.5)

	if !tw.Done {
		t.Fatal("expected Done after full duration")
	}
	if math.Abs(v-100) > 1e-3 {
		t.Errorf("value = %f, want 100", v)
	}
	if !e.IsDirty() {
		t.Error("tween steps should request a repaint")
	}
}

func TestTweenStopsOnDisposedTarget(t *testing.T) {
	doc := newTestDoc(t)
	e := mustCreate(t, doc, "element")
	v := 0.0
	tw := NewTween(e, &v, 1, 1.0, ease.Linear)
	e.Dispose()
	tw.Update(0.5)
	if !tw.Done || v != 0 {
		t.Errorf("Done = %v, value = %f; want true, 0", tw.Done, v)
	}
}

func TestDocumentAnimatePrunesFinished(t *testing.T) {
	doc := newTestDoc(t)
	a, b := 0.0, 0.0
	doc.Animate(NewTween(nil, &a, 1, 0.25, ease.Linear))
	doc.Animate(NewTween(nil, &b, 1, 1.0, ease.Linear))

	doc.Update(0.25)
	if len(doc.tweens) != 1 {
		t.Fatalf("tweens = %d, want 1", len(doc.tweens))
	}
	if a != 1 {
		t.Errorf("a = %f, want 1", a)
	}
	doc.Update(0.75)
	if len(doc.tweens) != 0 {
		t.Errorf("tweens = %d, want 0", len(doc.tweens))
	}
}

func TestButtonFeedbackRestarts(t *testing.T) {
	doc := newTestDoc(t)
	btn := mustCreate(t, doc, "uibutton")
	btn.pressFeedback()
	first := btn.tween
	btn.pressFeedback()
	if !first.Done {
		t.Error("restarting feedback should finish the previous tween")
	}
	doc.Update(0)
	if len(doc.tweens) != 1 {
		t.Errorf("tweens = %d, want 1 live feedback tween", len(doc.tweens))
	}
}
