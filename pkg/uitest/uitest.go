package uitest

import (
	"strings"
	"testing"

	"github.com/lucent-dev/lucent/pkg/dom"
	"github.com/lucent-dev/lucent/pkg/render"
	"github.com/lucent-dev/lucent/pkg/runtime"
	"github.com/lucent-dev/lucent/pkg/vdom"
)

// rootSelector is where harness mounts land.
const rootSelector = "#root"

// Harness drives a mounted app against an in-memory document.
type Harness struct {
	t       *testing.T
	ctx     *runtime.Context
	root    *dom.Element
	dispose func()
}

// New creates a harness with a fresh document containing one mount
// root (id "root").
func New(t *testing.T) *Harness {
	t.Helper()
	doc := dom.NewDocument()
	root := doc.CreateElement("div")
	root.SetAttribute("id", "root")
	doc.Body().AppendChild(root)
	return &Harness{
		t:    t,
		ctx:  runtime.NewContext(doc),
		root: root,
	}
}

// Mount binds the producer to the harness root. The mount is disposed
// automatically when the test finishes.
func (h *Harness) Mount(producer runtime.Producer) *Harness {
	h.t.Helper()
	dispose, err := h.ctx.Mount(producer, rootSelector)
	if err != nil {
		h.t.Fatalf("uitest: mount failed: %v", err)
	}
	h.dispose = dispose
	h.t.Cleanup(dispose)
	return h
}

// Unmount disposes the current mount early.
func (h *Harness) Unmount() {
	if h.dispose != nil {
		h.dispose()
		h.dispose = nil
	}
}

// Context returns the underlying runtime context.
func (h *Harness) Context() *runtime.Context { return h.ctx }

// Root returns the mount root element.
func (h *Harness) Root() *dom.Element { return h.root }

// Find resolves a selector against the document, failing the test on
// bad syntax. Returns nil when nothing matches.
func (h *Harness) Find(selector string) *dom.Element {
	h.t.Helper()
	el, err := h.ctx.Document().QuerySelector(selector)
	if err != nil {
		h.t.Fatalf("uitest: %v", err)
	}
	return el
}

// MustFind is Find that fails the test when nothing matches.
func (h *Harness) MustFind(selector string) *dom.Element {
	h.t.Helper()
	el := h.Find(selector)
	if el == nil {
		h.t.Fatalf("uitest: no element matches %q in:\n%s", selector, truncate(h.HTML(), 500))
	}
	return el
}

// Click dispatches a click event on the selected element.
func (h *Harness) Click(selector string) {
	h.t.Helper()
	h.MustFind(selector).DispatchEvent("click", "")
}

// Input dispatches an input event carrying value on the selected
// element.
func (h *Harness) Input(selector, value string) {
	h.t.Helper()
	h.MustFind(selector).DispatchEvent("input", value)
}

// Dispatch fires an arbitrary event on the selected element.
func (h *Harness) Dispatch(selector, eventType, value string) {
	h.t.Helper()
	h.MustFind(selector).DispatchEvent(eventType, value)
}

// HTML returns the mount root's serialized children.
func (h *Harness) HTML() string {
	return h.root.InnerHTML()
}

// Text returns the mount root's concatenated text content.
func (h *Harness) Text() string {
	return dom.TextContent(h.root)
}

// ExpectContains asserts that the rendered output contains the
// substring.
func (h *Harness) ExpectContains(expected string) {
	h.t.Helper()
	if html := h.HTML(); !strings.Contains(html, expected) {
		h.t.Errorf("expected output to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// ExpectNotContains asserts that the rendered output does not contain
// the substring.
func (h *Harness) ExpectNotContains(unexpected string) {
	h.t.Helper()
	if html := h.HTML(); strings.Contains(html, unexpected) {
		h.t.Errorf("expected output to NOT contain %q, got:\n%s", unexpected, truncate(html, 500))
	}
}

// RenderToString renders a VNode tree without mounting it. Useful for
// asserting on pure view functions.
func RenderToString(node *vdom.VNode) string {
	html, err := render.ToString(node)
	if err != nil {
		return ""
	}
	return html
}

// ExpectContains asserts that a rendered tree contains the substring.
func ExpectContains(t *testing.T, node *vdom.VNode, expected string) {
	t.Helper()
	html := RenderToString(node)
	if !strings.Contains(html, expected) {
		t.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// ExpectNotContains asserts that a rendered tree does not contain the
// substring.
func ExpectNotContains(t *testing.T, node *vdom.VNode, unexpected string) {
	t.Helper()
	html := RenderToString(node)
	if strings.Contains(html, unexpected) {
		t.Errorf("expected rendered output to NOT contain %q, got:\n%s", unexpected, truncate(html, 500))
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
