package reconcile

import (
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/lucent-dev/lucent/pkg/dom"
	"github.com/lucent-dev/lucent/pkg/vdom"
)

// Stats counts the host mutations of one reconciliation pass.
type Stats struct {
	Created    int // host nodes created
	Updated    int // elements updated in place
	Removed    int // host nodes removed
	TextWrites int // text content writes
	AttrWrites int // attribute writes and removals
}

// Add accumulates another pass's counts.
func (s *Stats) Add(o Stats) {
	s.Created += o.Created
	s.Updated += o.Updated
	s.Removed += o.Removed
	s.TextWrites += o.TextWrites
	s.AttrWrites += o.AttrWrites
}

var nextNodeID uint64

func newNodeID() string {
	return "n" + strconv.FormatUint(atomic.AddUint64(&nextNodeID, 1), 10)
}

// hostContainer is the child-manipulation surface shared by elements
// and fragments.
type hostContainer interface {
	ChildNodes() []dom.Node
	AppendChild(dom.Node)
	RemoveChild(dom.Node)
	ReplaceChild(n, old dom.Node)
	TruncateChildren(int) []dom.Node
}

// Render cold-renders the tree into the root. The root is expected to
// be empty; existing children are left alone.
func Render(tree *vdom.VNode, root *dom.Element, d *Delegator) Stats {
	var s Stats
	if n := createNode(tree, d, &s); n != nil {
		root.AppendChild(n)
	}
	return s
}

// Diff reconciles the root's existing children against the new tree
// and applies the minimal host mutations.
func Diff(tree *vdom.VNode, root *dom.Element, d *Delegator) Stats {
	var s Stats
	var next []*vdom.VNode
	if tree != nil {
		next = []*vdom.VNode{tree}
	}
	diffChildren(root, next, d, &s)
	return s
}

// diffChildren matches old hosts to new vnodes by position. Surplus
// hosts are removed from the tail, their event registrations dropped
// before detach; surplus vnodes render fresh and append.
func diffChildren(parent hostContainer, next []*vdom.VNode, d *Delegator, s *Stats) {
	next = compact(next)
	old := parent.ChildNodes()

	if len(old) > len(next) {
		for _, n := range old[len(next):] {
			d.RemoveSubtree(n)
		}
		removed := parent.TruncateChildren(len(next))
		s.Removed += len(removed)
		old = parent.ChildNodes()
	}

	for i := 0; i < len(old); i++ {
		diffNode(parent, old[i], next[i], d, s)
	}

	for _, v := range next[len(old):] {
		if n := createNode(v, d, s); n != nil {
			parent.AppendChild(n)
		}
	}
}

// rendersNothing reports whether the vnode produces no host node.
func rendersNothing(v *vdom.VNode) bool {
	return v == nil || (v.Kind == vdom.KindElement && v.Tag == "" && len(v.Children) == 0)
}

// compact drops vnodes that render nothing so positional matching sees
// only renderable entries.
func compact(next []*vdom.VNode) []*vdom.VNode {
	kept := next[:0:0]
	for _, v := range next {
		if !rendersNothing(v) {
			kept = append(kept, v)
		}
	}
	return kept
}

// diffNode reconciles one positional pair.
func diffNode(parent hostContainer, host dom.Node, v *vdom.VNode, d *Delegator, s *Stats) {
	switch v.Kind {
	case vdom.KindText:
		if t, ok := host.(*dom.Text); ok {
			if t.Data() != v.Text {
				t.SetData(v.Text)
				s.TextWrites++
			}
			return
		}

	case vdom.KindFragment:
		if f, ok := host.(*dom.Fragment); ok {
			diffChildren(f, v.Children, d, s)
			return
		}

	case vdom.KindElement:
		// A tagless element renders as a fragment.
		if v.Tag == "" {
			if f, ok := host.(*dom.Fragment); ok {
				diffChildren(f, v.Children, d, s)
				return
			}
			break
		}
		if el, ok := host.(*dom.Element); ok && strings.EqualFold(el.TagName(), v.Tag) {
			applyProps(el, v, d, s)
			diffChildren(el, v.Children, d, s)
			s.Updated++
			return
		}
	}

	// Kind or tag mismatch: discard and re-render.
	replaceNode(parent, host, v, d, s)
}

func replaceNode(parent hostContainer, host dom.Node, v *vdom.VNode, d *Delegator, s *Stats) {
	d.RemoveSubtree(host)
	s.Removed++
	if n := createNode(v, d, s); n != nil {
		parent.ReplaceChild(n, host)
	}
}

// createNode builds a fresh host subtree for the vnode. A nil vnode,
// or an element with no tag and no children, renders nothing.
func createNode(v *vdom.VNode, d *Delegator, s *Stats) dom.Node {
	if v == nil {
		return nil
	}

	switch v.Kind {
	case vdom.KindText:
		s.Created++
		return dom.NewText(v.Text)

	case vdom.KindFragment:
		f := dom.NewFragment()
		s.Created++
		for _, c := range v.Children {
			if n := createNode(c, d, s); n != nil {
				f.AppendChild(n)
			}
		}
		return f

	case vdom.KindElement:
		if v.Tag == "" {
			if len(v.Children) == 0 {
				return nil
			}
			// Tagless with children: materialize as a fragment.
			f := dom.NewFragment()
			s.Created++
			for _, c := range v.Children {
				if n := createNode(c, d, s); n != nil {
					f.AppendChild(n)
				}
			}
			return f
		}
		el := dom.NewElement(v.Tag)
		el.SetAttribute(nodeIDAttr, newNodeID())
		s.Created++
		applyProps(el, v, d, s)
		for _, c := range v.Children {
			if n := createNode(c, d, s); n != nil {
				el.AppendChild(n)
			}
		}
		return el
	}

	return nil
}
