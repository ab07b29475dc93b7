package elements

// Event is delivered to listeners registered with Element.On.
type Event struct {
	Name string
	// Target is the element the event was fired on.
	Target *Element
	// CurrentTarget is the element whose listener is running.
	CurrentTarget *Element
	// Data carries the event payload: the new text for text events, the
	// decoded image.Image for imageload, nil otherwise.
	Data any
	// X, Y are document coordinates for pointer events.
	X, Y int

	stopped bool
}

// StopPropagation prevents the event from reaching further ancestors.
func (ev *Event) StopPropagation() {
	ev.stopped = true
}

// Stopped reports whether StopPropagation was called.
func (ev *Event) Stopped() bool {
	return ev.stopped
}

// EventStore receives a record of every event fired in a Document.
// Used to bridge element events into an ECS world (see package ecs).
type EventStore interface {
	EmitEvent(record EventRecord)
}

// EventRecord is the detached form of an Event handed to an EventStore.
type EventRecord struct {
	Name   string
	NodeID NodeID
	Tag    string
	Data   any
	X, Y   int
}

type listener struct {
	id uint32
	fn func(*Event)
}

// ListenerHandle allows removing a registered listener.
type ListenerHandle struct {
	e    *Element
	name string
	id   uint32
}

// Remove unregisters the listener so it no longer fires.
func (h ListenerHandle) Remove() {
	if h.e == nil {
		return
	}
	s := h.e.listeners[h.name]
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = listener{}
			h.e.listeners[h.name] = s[:len(s)-1]
			return
		}
	}
}

// On subscribes fn to events named name fired on this element (and, for
// bubbling pointer events, on its descendants).
func (e *Element) On(name string, fn func(*Event)) ListenerHandle {
	if e.listeners == nil {
		e.listeners = make(map[string][]listener)
	}
	e.doc.nextListenerID++
	id := e.doc.nextListenerID
	e.listeners[name] = append(e.listeners[name], listener{id: id, fn: fn})
	return ListenerHandle{e: e, name: name, id: id}
}

// Fire delivers a non-bubbling event to this element's listeners and returns
// it. Disposed elements fire nothing.
func (e *Element) Fire(name string, data any) *Event {
	ev := &Event{Name: name, Target: e, Data: data}
	e.dispatch(ev, false)
	return ev
}

// dispatch runs listeners on the target and, when bubble is set, on each
// ancestor until propagation stops.
func (e *Element) dispatch(ev *Event, bubble bool) {
	if e.disposed {
		return
	}
	if store := e.doc.store; store != nil {
		store.EmitEvent(EventRecord{Name: ev.Name, NodeID: e.ID, Tag: e.Name(), Data: ev.Data, X: ev.X, Y: ev.Y})
	}
	for cur := e; cur != nil; cur = cur.Parent() {
		ev.CurrentTarget = cur
		// listeners may remove themselves while running
		ls := append([]listener(nil), cur.listeners[ev.Name]...)
		for _, l := range ls {
			l.fn(ev)
		}
		if !bubble || ev.stopped {
			return
		}
	}
}
