package elements

// PointerDown runs the press half of the pointer state machine at document
// point (x, y): the element under the pointer receives a bubbling mousedown
// and is remembered as the press target.
func (d *Document) PointerDown(x, y int) {
	target := d.ElementAt(x, y)
	d.pressed = target
	d.firePointer(EventMouseDown, target, x, y)
}

// PointerUp runs the release half: mouseup bubbles from the element under the
// pointer, then click fires when press and release hit the same element.
func (d *Document) PointerUp(x, y int) {
	target := d.ElementAt(x, y)
	pressed := d.pressed
	d.pressed = nil
	d.firePointer(EventMouseUp, target, x, y)
	if target != nil && target == pressed {
		d.firePointer(EventClick, target, x, y)
	}
}

// DispatchPointer fires a bubbling pointer event named name on the element
// under (x, y) and returns it, or nil when nothing was hit.
func (d *Document) DispatchPointer(name string, x, y int) *Event {
	return d.firePointer(name, d.ElementAt(x, y), x, y)
}

func (d *Document) firePointer(name string, target *Element, x, y int) *Event {
	if target == nil {
		return nil
	}
	ev := &Event{Name: name, Target: target, X: x, Y: y}
	target.dispatch(ev, true)
	return ev
}
