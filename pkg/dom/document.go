package dom

import (
	"strings"

	"github.com/lucent-dev/lucent/internal/errors"
)

// Document is the root of a host tree. It owns a single documentElement
// ("html") with a "body" child, mirroring the minimal structure mount
// targets are resolved against.
type Document struct {
	root *Element
	body *Element
}

// NewDocument builds an empty document with html and body elements.
func NewDocument() *Document {
	root := NewElement("html")
	body := NewElement("body")
	root.AppendChild(body)
	return &Document{root: root, body: body}
}

// Root returns the document element.
func (d *Document) Root() *Element { return d.root }

// Body returns the body element.
func (d *Document) Body() *Element { return d.body }

// CreateElement builds a detached element with the given tag.
func (d *Document) CreateElement(tag string) *Element {
	return NewElement(tag)
}

// CreateText builds a detached text node.
func (d *Document) CreateText(data string) *Text {
	return NewText(data)
}

// CreateFragment builds a detached, empty fragment.
func (d *Document) CreateFragment() *Fragment {
	return NewFragment()
}

// QuerySelector resolves a selector against the document. Supported
// forms are "#id", ".class", and a bare tag name. The first match in
// depth-first document order wins; nil is returned when nothing
// matches. Unsupported syntax yields an E004 error.
func (d *Document) QuerySelector(selector string) (*Element, error) {
	match, err := compileSelector(selector)
	if err != nil {
		return nil, err
	}
	return findElement(d.root, match), nil
}

// compileSelector parses a selector into a predicate.
func compileSelector(selector string) (func(*Element) bool, error) {
	s := strings.TrimSpace(selector)
	if s == "" {
		return nil, errors.New(errors.CodeBadSelector).WithDetail("empty selector")
	}
	if strings.ContainsAny(s, " >+~[],:") {
		return nil, errors.New(errors.CodeBadSelector).WithDetailf("%q", selector)
	}
	switch {
	case strings.HasPrefix(s, "#"):
		id := s[1:]
		if id == "" || strings.ContainsAny(id, "#.") {
			return nil, errors.New(errors.CodeBadSelector).WithDetailf("%q", selector)
		}
		return func(e *Element) bool { return e.ID() == id }, nil
	case strings.HasPrefix(s, "."):
		class := s[1:]
		if class == "" || strings.ContainsAny(class, "#.") {
			return nil, errors.New(errors.CodeBadSelector).WithDetailf("%q", selector)
		}
		return func(e *Element) bool { return hasClass(e, class) }, nil
	default:
		if strings.ContainsAny(s, "#.") {
			return nil, errors.New(errors.CodeBadSelector).WithDetailf("%q", selector)
		}
		tag := strings.ToLower(s)
		return func(e *Element) bool { return e.TagName() == tag }, nil
	}
}

func hasClass(e *Element, class string) bool {
	for _, c := range strings.Fields(e.ClassName()) {
		if c == class {
			return true
		}
	}
	return false
}

// findElement walks the subtree depth-first, returning the first
// element the predicate accepts.
func findElement(n Node, match func(*Element) bool) *Element {
	switch v := n.(type) {
	case *Element:
		if match(v) {
			return v
		}
		for _, c := range v.ChildNodes() {
			if found := findElement(c, match); found != nil {
				return found
			}
		}
	case *Fragment:
		for _, c := range v.ChildNodes() {
			if found := findElement(c, match); found != nil {
				return found
			}
		}
	}
	return nil
}
