package dom

import (
	"sort"
	"strings"
)

// NodeKind is the host node type discriminator.
type NodeKind uint8

const (
	KindElement NodeKind = iota
	KindText
	KindFragment
)

// String returns the string representation of the NodeKind.
func (k NodeKind) String() string {
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

// Node is a live host-tree node: *Element, *Text, or *Fragment.
type Node interface {
	Kind() NodeKind
	Parent() Node
	setParent(Node)

	// OuterHTML serializes the node, mainly for tests and previews.
	OuterHTML() string
}

// container is implemented by nodes that hold children.
type container interface {
	Node
	ChildNodes() []Node
	replaceChildAt(i int, n Node)
}

// Element is a host element node with a tag, attributes, children, and
// per-element event listeners.
type Element struct {
	tag      string
	attrs    map[string]string
	children []Node
	parent   Node

	// listeners are the host listeners attached directly to this
	// element, by event type. Delegation attaches these only on mount
	// roots.
	listeners map[string][]ListenerFunc
}

// NewElement builds a detached element. The tag is lower-cased.
func NewElement(tag string) *Element {
	return &Element{tag: strings.ToLower(tag)}
}

// Kind implements Node.
func (e *Element) Kind() NodeKind { return KindElement }

// Parent implements Node.
func (e *Element) Parent() Node { return e.parent }

func (e *Element) setParent(p Node) { e.parent = p }

// TagName returns the element's lower-cased tag name.
func (e *Element) TagName() string { return e.tag }

// ChildNodes returns the element's children. The returned slice is the
// live backing store; callers mutate it only through the Node methods.
func (e *Element) ChildNodes() []Node { return e.children }

func (e *Element) replaceChildAt(i int, n Node) {
	e.children[i].setParent(nil)
	e.children[i] = n
	n.setParent(e)
}

// SetAttribute sets an attribute value.
func (e *Element) SetAttribute(name, value string) {
	if e.attrs == nil {
		e.attrs = make(map[string]string)
	}
	e.attrs[strings.ToLower(name)] = value
}

// GetAttribute returns the attribute value, or "" when absent.
func (e *Element) GetAttribute(name string) string {
	return e.attrs[strings.ToLower(name)]
}

// HasAttribute reports whether the attribute is present.
func (e *Element) HasAttribute(name string) bool {
	_, ok := e.attrs[strings.ToLower(name)]
	return ok
}

// RemoveAttribute deletes the attribute if present.
func (e *Element) RemoveAttribute(name string) {
	delete(e.attrs, strings.ToLower(name))
}

// AttributeNames returns the present attribute names, sorted.
func (e *Element) AttributeNames() []string {
	names := make([]string, 0, len(e.attrs))
	for name := range e.attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ClassName returns the class attribute value.
func (e *Element) ClassName() string {
	return e.attrs["class"]
}

// SetClassName sets the class attribute.
func (e *Element) SetClassName(v string) {
	e.SetAttribute("class", v)
}

// ID returns the id attribute value.
func (e *Element) ID() string {
	return e.attrs["id"]
}

// AppendChild appends n, detaching it from any previous parent.
func (e *Element) AppendChild(n Node) {
	detach(n)
	n.setParent(e)
	e.children = append(e.children, n)
}

// RemoveChild removes n from the element's children. A node that is
// not a child is left alone.
func (e *Element) RemoveChild(n Node) {
	for i, c := range e.children {
		if c == n {
			e.children = append(e.children[:i], e.children[i+1:]...)
			n.setParent(nil)
			return
		}
	}
}

// ReplaceChild swaps old for n in place, preserving position.
func (e *Element) ReplaceChild(n, old Node) {
	for i, c := range e.children {
		if c == old {
			detach(n)
			e.replaceChildAt(i, n)
			return
		}
	}
}

// Text is a host text node.
type Text struct {
	data   string
	parent Node
}

// NewText builds a detached text node.
func NewText(data string) *Text {
	return &Text{data: data}
}

// Kind implements Node.
func (t *Text) Kind() NodeKind { return KindText }

// Parent implements Node.
func (t *Text) Parent() Node { return t.parent }

func (t *Text) setParent(p Node) { t.parent = p }

// Data returns the text content.
func (t *Text) Data() string { return t.data }

// SetData replaces the text content.
func (t *Text) SetData(s string) { t.data = s }

// Fragment groups host nodes without a wrapper element.
type Fragment struct {
	children []Node
	parent   Node
}

// NewFragment builds a detached, empty fragment.
func NewFragment() *Fragment {
	return &Fragment{}
}

// Kind implements Node.
func (f *Fragment) Kind() NodeKind { return KindFragment }

// Parent implements Node.
func (f *Fragment) Parent() Node { return f.parent }

func (f *Fragment) setParent(p Node) { f.parent = p }

// ChildNodes returns the fragment's children.
func (f *Fragment) ChildNodes() []Node { return f.children }

func (f *Fragment) replaceChildAt(i int, n Node) {
	f.children[i].setParent(nil)
	f.children[i] = n
	n.setParent(f)
}

// AppendChild appends n, detaching it from any previous parent.
func (f *Fragment) AppendChild(n Node) {
	detach(n)
	n.setParent(f)
	f.children = append(f.children, n)
}

// RemoveChild removes n from the fragment's children.
func (f *Fragment) RemoveChild(n Node) {
	for i, c := range f.children {
		if c == n {
			f.children = append(f.children[:i], f.children[i+1:]...)
			n.setParent(nil)
			return
		}
	}
}

// ReplaceChild swaps old for n in place.
func (f *Fragment) ReplaceChild(n, old Node) {
	for i, c := range f.children {
		if c == old {
			detach(n)
			f.replaceChildAt(i, n)
			return
		}
	}
}

// detach removes n from its current parent, if any.
func detach(n Node) {
	switch p := n.Parent().(type) {
	case *Element:
		p.RemoveChild(n)
	case *Fragment:
		p.RemoveChild(n)
	}
}

// TruncateChildren removes children from index n onward, returning the
// removed nodes so the caller can run detach hooks first.
func (e *Element) TruncateChildren(n int) []Node {
	if n >= len(e.children) {
		return nil
	}
	removed := e.children[n:]
	for _, c := range removed {
		c.setParent(nil)
	}
	e.children = e.children[:n]
	return removed
}

// TruncateChildren removes children from index n onward.
func (f *Fragment) TruncateChildren(n int) []Node {
	if n >= len(f.children) {
		return nil
	}
	removed := f.children[n:]
	for _, c := range removed {
		c.setParent(nil)
	}
	f.children = f.children[:n]
	return removed
}
