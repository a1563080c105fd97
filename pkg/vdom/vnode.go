package vdom

import "github.com/lucent-dev/lucent/pkg/dom"

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement  VKind = iota // <div>, <button>, etc.
	KindText                  // Plain text node
	KindFragment              // Grouping without wrapper
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	default:
		return "Unknown"
	}
}

// Handler responds to a delegated host event. The element is the one
// whose registration matched: the nearest registered ancestor of the
// dispatch target, not necessarily the target itself.
type Handler func(ev *dom.Event, el *dom.Element)

// VNode is the virtual node. Attributes and event handlers live in
// separate maps; handlers never appear among attributes.
type VNode struct {
	Kind     VKind              // Node type
	Tag      string             // Element tag name (e.g., "div")
	Attrs    Props              // Plain attributes
	Events   map[string]Handler // Event type ("click") to handler
	Children []*VNode           // Child nodes
	Text     string             // For KindText
}

// Props holds plain attributes. Values may be string, bool, numbers,
// or a map[string]string under the "dataset" key.
type Props map[string]any

// IsInteractive returns true if this node carries event handlers.
func (v *VNode) IsInteractive() bool {
	return v != nil && v.Kind == KindElement && len(v.Events) > 0
}

// On registers an event handler on the node and returns it, for
// chaining after a builder call.
func (v *VNode) On(eventType string, h Handler) *VNode {
	if v.Events == nil {
		v.Events = make(map[string]Handler)
	}
	v.Events[eventType] = h
	return v
}

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// EventHandler pairs an event type with its handler. The type is the
// bare host event name ("click", "input"), never an "on"-prefixed
// attribute name.
type EventHandler struct {
	Event   string
	Handler Handler
}
