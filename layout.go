package elements

// offset returns e's top-left corner relative to its parent.
//
// Absolute elements sit at Left/Top. Inline elements flow left to right after
// their preceding inline siblings, wrapping when a row would overflow the
// parent width; Left/Top then nudge the flowed position. A static-right
// element is anchored so its right edge sits Right pixels from the parent's
// right edge.
func (e *Element) offset() (x, y int) {
	p := e.Parent()
	if p == nil || e.position != PositionInline {
		return e.left, e.top
	}
	cx, cy, rowH := 0, 0, 0
	for _, s := range p.children {
		if s.kind == KindText || s.position != PositionInline {
			continue
		}
		if cx > 0 && cx+s.width > p.width {
			cx, cy, rowH = 0, cy+rowH, 0
		}
		if s == e {
			x, y = cx, cy
			break
		}
		cx += s.width
		rowH = max(rowH, s.height)
	}
	if e.staticRight {
		x = p.width - e.width - e.right
	}
	return x + e.left, y + e.top
}

// Bounds returns e's rectangle in document coordinates.
func (e *Element) Bounds() Rect {
	x, y := 0, 0
	for n := e; n != nil; n = n.Parent() {
		ox, oy := n.offset()
		x += ox
		y += oy
	}
	return Rect{X: x, Y: y, Width: e.width, Height: e.height}
}

// hitTest returns the deepest mounted element under (x, y), preferring later
// siblings since they paint on top. (ox, oy) is e's document origin.
func hitTest(e *Element, ox, oy, x, y int) *Element {
	if e.kind == KindText || !e.mounted {
		return nil
	}
	for i := len(e.children) - 1; i >= 0; i-- {
		c := e.children[i]
		cx, cy := c.offset()
		if hit := hitTest(c, ox+cx, oy+cy, x, y); hit != nil {
			return hit
		}
	}
	if (Rect{X: ox, Y: oy, Width: e.width, Height: e.height}).Contains(x, y) {
		return e
	}
	return nil
}

// ElementAt returns the deepest mounted element containing the document point
// (x, y), or nil.
func (d *Document) ElementAt(x, y int) *Element {
	ox, oy := d.root.offset()
	return hitTest(d.root, ox, oy, x, y)
}
