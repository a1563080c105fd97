package reconcile

import (
	"sort"
	"strconv"
	"sync/atomic"

	"github.com/lucent-dev/lucent/pkg/dom"
	"github.com/lucent-dev/lucent/pkg/vdom"
)

const (
	// nodeIDAttr indexes every host element the reconciler creates.
	nodeIDAttr = "data-nid"

	// eventKeyAttr is written only on elements carrying event
	// handlers and keys the delegation table.
	eventKeyAttr = "data-ekey"
)

// Delegator routes events for one mount root. Instead of attaching a
// listener per element, it attaches exactly one root listener per
// delegated event type and looks handlers up by the element's event
// key when a dispatch bubbles through the root.
type Delegator struct {
	root      *dom.Element
	delegated map[string]bool
	handlers  map[string]map[string]vdom.Handler
}

// eventKeys numbers element keys document-wide. Nested mount roots
// share the data-ekey namespace, so per-delegator counters would
// collide.
var eventKeys atomic.Uint64

// NewDelegator creates a delegator for the given mount root.
func NewDelegator(root *dom.Element) *Delegator {
	return &Delegator{
		root:      root,
		delegated: make(map[string]bool),
		handlers:  make(map[string]map[string]vdom.Handler),
	}
}

// Root returns the mount root this delegator listens on.
func (d *Delegator) Root() *dom.Element { return d.root }

// SetHandlers replaces the element's handler set. An element gaining
// its first handler is assigned an event key; an element whose handler
// set becomes empty loses its key and table entries.
func (d *Delegator) SetHandlers(el *dom.Element, events map[string]vdom.Handler) {
	key := el.GetAttribute(eventKeyAttr)

	if len(events) == 0 {
		if key != "" {
			delete(d.handlers, key)
			el.RemoveAttribute(eventKeyAttr)
		}
		return
	}

	if key == "" {
		key = "e" + strconv.FormatUint(eventKeys.Add(1), 10)
		el.SetAttribute(eventKeyAttr, key)
	}

	table := make(map[string]vdom.Handler, len(events))
	for eventType, h := range events {
		table[eventType] = h
		d.ensureDelegated(eventType)
	}
	d.handlers[key] = table
}

// RemoveSubtree drops the registrations of every element in the
// subtree. Call before detaching the host nodes so a dispatch can
// never match a stale key.
func (d *Delegator) RemoveSubtree(n dom.Node) {
	el, ok := n.(*dom.Element)
	if ok {
		if key := el.GetAttribute(eventKeyAttr); key != "" {
			delete(d.handlers, key)
		}
	}
	if c, ok := n.(interface{ ChildNodes() []dom.Node }); ok {
		for _, child := range c.ChildNodes() {
			d.RemoveSubtree(child)
		}
	}
}

// Teardown removes every root listener and clears the handler table.
// The (root, type) pairs go back to undelegated; re-mounting starts
// from scratch.
func (d *Delegator) Teardown() {
	for eventType := range d.delegated {
		d.root.RemoveEventListeners(eventType)
	}
	d.delegated = make(map[string]bool)
	d.handlers = make(map[string]map[string]vdom.Handler)
}

// DelegatedTypes returns the sorted set of event types with a root
// listener attached.
func (d *Delegator) DelegatedTypes() []string {
	types := make([]string, 0, len(d.delegated))
	for t := range d.delegated {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// HandlerCount returns the number of keyed elements with live
// registrations.
func (d *Delegator) HandlerCount() int {
	return len(d.handlers)
}

// ensureDelegated attaches the root listener for the event type the
// first time a handler of that type is registered.
func (d *Delegator) ensureDelegated(eventType string) {
	if d.delegated[eventType] {
		return
	}
	d.delegated[eventType] = true
	d.root.AddEventListener(eventType, func(ev *dom.Event) {
		d.dispatch(ev)
	})
}

// dispatch walks from the event target toward the root looking for
// the nearest keyed ancestor with a handler for the event type.
func (d *Delegator) dispatch(ev *dom.Event) {
	for cur := ev.Target; cur != nil; cur = dom.ParentElement(cur) {
		if key := cur.GetAttribute(eventKeyAttr); key != "" {
			if h := d.handlers[key][ev.Type]; h != nil {
				h(ev, cur)
				return
			}
		}
		if cur == d.root {
			return
		}
	}
}
