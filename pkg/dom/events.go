package dom

// Event carries a dispatched event through the propagation path.
type Event struct {
	// Type is the event name, e.g. "click" or "input".
	Type string

	// Target is the element the event was dispatched on.
	Target *Element

	// CurrentTarget is the element whose listener is running.
	CurrentTarget *Element

	// Value carries event payload data such as an input's current
	// value. May be empty for events that have none.
	Value string

	stopped          bool
	defaultPrevented bool
}

// StopPropagation halts the event's upward walk after the current
// element's listeners finish.
func (ev *Event) StopPropagation() {
	ev.stopped = true
}

// PreventDefault marks the event's default action as cancelled.
func (ev *Event) PreventDefault() {
	ev.defaultPrevented = true
}

// DefaultPrevented reports whether PreventDefault was called.
func (ev *Event) DefaultPrevented() bool {
	return ev.defaultPrevented
}

// ListenerFunc handles an event dispatched to an element.
type ListenerFunc func(*Event)

// AddEventListener registers fn for events of the given type on e.
func (e *Element) AddEventListener(eventType string, fn ListenerFunc) {
	if e.listeners == nil {
		e.listeners = make(map[string][]ListenerFunc)
	}
	e.listeners[eventType] = append(e.listeners[eventType], fn)
}

// RemoveEventListeners drops every listener for the given event type.
func (e *Element) RemoveEventListeners(eventType string) {
	delete(e.listeners, eventType)
}

// RemoveAllListeners drops every listener on the element.
func (e *Element) RemoveAllListeners() {
	e.listeners = nil
}

// ListenerCount returns how many listeners are registered for the
// given event type.
func (e *Element) ListenerCount(eventType string) int {
	return len(e.listeners[eventType])
}

// DispatchEvent fires an event of the given type on e and bubbles it
// toward the root. Listeners on each element along the path run in
// registration order. The walk stops early if a listener calls
// StopPropagation. It returns the event so callers can inspect flags.
func (e *Element) DispatchEvent(eventType, value string) *Event {
	ev := &Event{Type: eventType, Target: e, Value: value}
	for cur := e; cur != nil; cur = ParentElement(cur) {
		ev.CurrentTarget = cur
		fns := cur.listeners[eventType]
		for _, fn := range append([]ListenerFunc(nil), fns...) {
			fn(ev)
		}
		if ev.stopped {
			break
		}
	}
	return ev
}

// ParentElement returns the nearest element ancestor, skipping over
// fragment wrappers. Nil when n has no element ancestor.
func ParentElement(n Node) *Element {
	for p := n.Parent(); p != nil; p = p.Parent() {
		if el, ok := p.(*Element); ok {
			return el
		}
	}
	return nil
}
