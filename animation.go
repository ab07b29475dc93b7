package elements

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Tween animates one float64 field of an Element. The Document advances every
// started tween from Update; each step writes the field and requests a repaint
// of the target. If the target is disposed, the tween stops immediately.
type Tween struct {
	tween  *gween.Tween
	field  *float64
	target *Element
	Done   bool
}

// NewTween creates a tween moving *field from its current value to to over
// duration seconds.
func NewTween(target *Element, field *float64, to float64, duration float32, fn ease.TweenFunc) *Tween {
	return &Tween{
		tween:  gween.New(float32(*field), float32(to), duration, fn),
		field:  field,
		target: target,
	}
}

// Update advances the tween by dt seconds.
func (t *Tween) Update(dt float32) {
	if t.Done {
		return
	}
	if t.target != nil && t.target.IsDisposed() {
		t.Done = true
		return
	}
	val, finished := t.tween.Update(dt)
	*t.field = float64(val)
	t.Done = finished
	if t.target != nil {
		t.target.RequestPaint()
	}
}

// Animate registers t with the document so Update drives it.
func (d *Document) Animate(t *Tween) {
	d.tweens = append(d.tweens, t)
}

// updateTweens advances all tweens and drops the finished ones.
func (d *Document) updateTweens(dt float32) {
	live := d.tweens[:0]
	for _, t := range d.tweens {
		t.Update(dt)
		if !t.Done {
			live = append(live, t)
		}
	}
	clear(d.tweens[len(live):])
	d.tweens = live
}
