package elements

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

// surface is an element's pixel buffer. It is allocated on load and
// reallocated, keeping its previous pixels, when the element is resized.
type surface struct {
	dc   *gg.Context
	rgba *image.RGBA
	// gen increments every time the buffer content may have changed, so hosts
	// can skip re-uploading unchanged buffers.
	gen uint64
}

// context returns a drawing context of at least 1x1 pixels matching w x h.
func (s *surface) context(w, h int) *gg.Context {
	w, h = max(w, 1), max(h, 1)
	if s.dc != nil && s.rgba.Bounds().Dx() == w && s.rgba.Bounds().Dy() == h {
		return s.dc
	}
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	dc := gg.NewContextForRGBA(rgba)
	if s.rgba != nil {
		dc.DrawImage(s.rgba, 0, 0)
	}
	s.dc, s.rgba = dc, rgba
	s.gen++
	return dc
}

func (s *surface) clear() {
	s.dc.SetColor(color.Transparent)
	s.dc.Clear()
}

func (s *surface) release() {
	s.dc, s.rgba = nil, nil
}

// --- Element surface API ---

// Context returns the element's 2D drawing context, allocating it at the
// current size if needed. Text nodes have no context and return nil.
func (e *Element) Context() *gg.Context {
	if kinds[e.kind].noSurface || e.disposed {
		return nil
	}
	dc := e.surface.context(e.width, e.height)
	if kinds[e.kind].keepBuffer {
		// direct drawing into a canvas is invisible to the paint cycle
		e.surface.gen++
	}
	return dc
}

// Image returns the last rasterized buffer, or nil before the element loads.
func (e *Element) Image() *image.RGBA {
	return e.surface.rgba
}

// Width returns the element width in pixels.
func (e *Element) Width() int { return e.width }

// Height returns the element height in pixels.
func (e *Element) Height() int { return e.height }

// Left returns the horizontal offset from the parent's placement origin.
func (e *Element) Left() int { return e.left }

// Top returns the vertical offset from the parent's placement origin.
func (e *Element) Top() int { return e.top }

// Opacity returns the element opacity and whether it was set.
func (e *Element) Opacity() (float64, bool) { return e.opacity, e.hasOpacity }

// Position returns the placement mode.
func (e *Element) Position() Position { return e.position }

// Cursor returns the pointer cursor hint.
func (e *Element) Cursor() string { return e.cursor }

// SetSize resizes the element and requests a repaint. Negative sizes are
// clamped to zero.
func (e *Element) SetSize(w, h int) {
	w, h = max(w, 0), max(h, 0)
	if w == e.width && h == e.height {
		return
	}
	e.width, e.height = w, h
	e.RequestPaint()
}

// SetPosition sets the left/top offsets.
func (e *Element) SetPosition(left, top int) {
	e.left, e.top = left, top
}

// RequestPaint marks the element dirty; the next Document.Paint repaints it.
func (e *Element) RequestPaint() {
	e.dirty = true
}

// IsDirty reports whether a repaint is pending.
func (e *Element) IsDirty() bool {
	return e.dirty
}

// paint runs one paint cycle for e: clear the buffer, invoke the kind paint
// (or the style default), and return to idle.
func (e *Element) paint() {
	if !e.dirty {
		return
	}
	e.dirty = false
	k := &kinds[e.kind]
	if !e.mounted || e.disposed || k.noSurface || k.keepBuffer {
		return
	}
	dc := e.surface.context(e.width, e.height)
	dc.Push()
	e.surface.clear()
	if k.paint != nil {
		k.paint(e, dc)
	} else {
		e.Style.Paint(dc)
	}
	dc.Pop()
	e.surface.gen++
}
