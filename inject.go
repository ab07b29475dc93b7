package elements

// syntheticPointerEvent represents a single injected pointer event in
// document coordinates.
type syntheticPointerEvent struct {
	x, y    int
	pressed bool
}

// InjectPress queues a pointer press at the given document coordinates.
// The event is consumed on the next Update.
func (d *Document) InjectPress(x, y int) {
	d.injectQueue = append(d.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectRelease queues a pointer release at the given document coordinates.
func (d *Document) InjectRelease(x, y int) {
	d.injectQueue = append(d.injectQueue, syntheticPointerEvent{x: x, y: y})
}

// InjectClick is a convenience that queues a press followed by a release
// at the same coordinates. Consumes two updates.
func (d *Document) InjectClick(x, y int) {
	d.InjectPress(x, y)
	d.InjectRelease(x, y)
}

// InjectPending reports whether injected events are still queued.
func (d *Document) InjectPending() bool {
	return len(d.injectQueue) > 0
}

// processInjectedInput pops one event from the inject queue and feeds it
// through the pointer state machine. Returns true if an event was consumed,
// in which case hosts skip real pointer input for the frame.
func (d *Document) processInjectedInput() bool {
	if len(d.injectQueue) == 0 {
		return false
	}
	evt := d.injectQueue[0]
	copy(d.injectQueue, d.injectQueue[1:])
	d.injectQueue = d.injectQueue[:len(d.injectQueue)-1]

	if evt.pressed {
		d.PointerDown(evt.x, evt.y)
	} else {
		d.PointerUp(evt.x, evt.y)
	}
	return true
}
