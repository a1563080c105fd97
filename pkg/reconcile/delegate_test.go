package reconcile

import (
	"testing"

	"github.com/lucent-dev/lucent/pkg/dom"
	"github.com/lucent-dev/lucent/pkg/vdom"
)

func TestSingleRootListenerPerType(t *testing.T) {
	root, d := newRoot()

	Render(vdom.Div(
		vdom.Button(vdom.OnClick(func(*dom.Event, *dom.Element) {})),
		vdom.Button(vdom.OnClick(func(*dom.Event, *dom.Element) {})),
		vdom.Button(vdom.OnClick(func(*dom.Event, *dom.Element) {})),
	), root, d)

	if got := root.ListenerCount("click"); got != 1 {
		t.Errorf("root click listeners = %d, want 1", got)
	}
	if got := d.DelegatedTypes(); len(got) != 1 || got[0] != "click" {
		t.Errorf("DelegatedTypes = %v, want [click]", got)
	}
}

func TestDelegatedDispatch(t *testing.T) {
	root, d := newRoot()

	var clicked string
	Render(vdom.Div(
		vdom.Button(vdom.ID("a"), vdom.OnClick(func(ev *dom.Event, el *dom.Element) {
			clicked = el.ID()
		})),
		vdom.Button(vdom.ID("b"), vdom.OnClick(func(ev *dom.Event, el *dom.Element) {
			clicked = el.ID()
		})),
	), root, d)

	wrap := root.ChildNodes()[0].(*dom.Element)
	b := wrap.ChildNodes()[1].(*dom.Element)
	b.DispatchEvent("click", "")

	if clicked != "b" {
		t.Errorf("clicked = %q, want b", clicked)
	}
}

func TestDispatchMatchesNearestKeyedAncestor(t *testing.T) {
	root, d := newRoot()

	var matched string
	Render(vdom.Div(vdom.ID("outer"),
		vdom.OnClick(func(ev *dom.Event, el *dom.Element) { matched = el.ID() }),
		vdom.Span(vdom.ID("plain"),
			vdom.Em(vdom.ID("leaf")),
		),
	), root, d)

	outer := root.ChildNodes()[0].(*dom.Element)
	leaf := outer.ChildNodes()[0].(*dom.Element).ChildNodes()[0].(*dom.Element)
	leaf.DispatchEvent("click", "")

	if matched != "outer" {
		t.Errorf("matched = %q, want outer (handler element, not target)", matched)
	}
}

func TestHandlerReceivesEventValue(t *testing.T) {
	root, d := newRoot()

	var got string
	Render(vdom.Input(vdom.OnInput(func(ev *dom.Event, el *dom.Element) {
		got = ev.Value
	})), root, d)

	input := root.ChildNodes()[0].(*dom.Element)
	input.DispatchEvent("input", "hello")

	if got != "hello" {
		t.Errorf("value = %q, want hello", got)
	}
}

func TestRemovalDropsRegistrations(t *testing.T) {
	root, d := newRoot()

	fired := 0
	Render(vdom.Div(
		vdom.Button(vdom.OnClick(func(*dom.Event, *dom.Element) { fired++ })),
		vdom.Button(vdom.OnClick(func(*dom.Event, *dom.Element) { fired++ })),
	), root, d)

	if d.HandlerCount() != 2 {
		t.Fatalf("HandlerCount = %d, want 2", d.HandlerCount())
	}

	Diff(vdom.Div(
		vdom.Button(vdom.OnClick(func(*dom.Event, *dom.Element) { fired++ })),
	), root, d)

	if d.HandlerCount() != 1 {
		t.Errorf("HandlerCount = %d after removal, want 1", d.HandlerCount())
	}
}

func TestRemovalIsRecursive(t *testing.T) {
	root, d := newRoot()

	Render(vdom.Div(
		vdom.Section(
			vdom.Button(vdom.OnClick(func(*dom.Event, *dom.Element) {})),
			vdom.Div(
				vdom.Button(vdom.OnClick(func(*dom.Event, *dom.Element) {})),
			),
		),
	), root, d)

	if d.HandlerCount() != 2 {
		t.Fatalf("HandlerCount = %d, want 2", d.HandlerCount())
	}

	Diff(vdom.Div(), root, d)

	if d.HandlerCount() != 0 {
		t.Errorf("HandlerCount = %d after subtree removal, want 0", d.HandlerCount())
	}
}

func TestHandlerSetShrinksToEmpty(t *testing.T) {
	root, d := newRoot()

	Render(vdom.Button(vdom.OnClick(func(*dom.Event, *dom.Element) {})), root, d)
	btn := root.ChildNodes()[0].(*dom.Element)
	if !btn.HasAttribute(eventKeyAttr) {
		t.Fatal("handler element should carry an event key")
	}

	Diff(vdom.Button(), root, d)

	if btn.HasAttribute(eventKeyAttr) {
		t.Error("event key should be removed with the last handler")
	}
	if d.HandlerCount() != 0 {
		t.Errorf("HandlerCount = %d, want 0", d.HandlerCount())
	}
}

func TestEventKeyOnlyOnInteractiveElements(t *testing.T) {
	root, d := newRoot()

	Render(vdom.Div(
		vdom.Span(vdom.Text("plain")),
		vdom.Button(vdom.OnClick(func(*dom.Event, *dom.Element) {})),
	), root, d)

	wrap := root.ChildNodes()[0].(*dom.Element)
	span := wrap.ChildNodes()[0].(*dom.Element)
	btn := wrap.ChildNodes()[1].(*dom.Element)

	if span.HasAttribute(eventKeyAttr) {
		t.Error("plain element must not carry an event key")
	}
	if !btn.HasAttribute(eventKeyAttr) {
		t.Error("interactive element must carry an event key")
	}
}

func TestTeardown(t *testing.T) {
	root, d := newRoot()

	fired := false
	Render(vdom.Button(vdom.OnClick(func(*dom.Event, *dom.Element) { fired = true })), root, d)
	btn := root.ChildNodes()[0].(*dom.Element)

	d.Teardown()

	btn.DispatchEvent("click", "")
	if fired {
		t.Error("no handler should run after teardown")
	}
	if root.ListenerCount("click") != 0 {
		t.Errorf("root listeners = %d after teardown, want 0", root.ListenerCount("click"))
	}
	if d.HandlerCount() != 0 || len(d.DelegatedTypes()) != 0 {
		t.Error("teardown should clear both maps")
	}
}

func TestHandlerReplacedOnUpdate(t *testing.T) {
	root, d := newRoot()

	var hits []string
	Render(vdom.Button(vdom.OnClick(func(*dom.Event, *dom.Element) {
		hits = append(hits, "old")
	})), root, d)

	Diff(vdom.Button(vdom.OnClick(func(*dom.Event, *dom.Element) {
		hits = append(hits, "new")
	})), root, d)

	btn := root.ChildNodes()[0].(*dom.Element)
	btn.DispatchEvent("click", "")

	if len(hits) != 1 || hits[0] != "new" {
		t.Errorf("hits = %v, want [new]", hits)
	}
}

// element keys are unique document-wide, so a delegator on an outer
// root never matches a key assigned by a nested root's delegator
func TestEventKeysUniqueAcrossDelegators(t *testing.T) {
	outer := dom.NewElement("div")
	inner := dom.NewElement("section")
	outer.AppendChild(inner)
	do := NewDelegator(outer)
	di := NewDelegator(inner)

	var outerFired, innerFired string
	Render(vdom.Button(vdom.ID("o"), vdom.OnClick(func(ev *dom.Event, el *dom.Element) {
		outerFired = el.ID()
	})), outer, do)
	Render(vdom.Button(vdom.ID("i"), vdom.OnClick(func(ev *dom.Event, el *dom.Element) {
		innerFired = el.ID()
	})), inner, di)

	outerBtn := outer.ChildNodes()[1].(*dom.Element)
	innerBtn := inner.ChildNodes()[0].(*dom.Element)

	if ok, ik := outerBtn.GetAttribute("data-ekey"), innerBtn.GetAttribute("data-ekey"); ok == ik {
		t.Fatalf("both delegators assigned key %q", ok)
	}

	// bubbles through both roots; only the inner registration matches
	innerBtn.DispatchEvent("click", "")
	if innerFired != "i" {
		t.Errorf("innerFired = %q, want i", innerFired)
	}
	if outerFired != "" {
		t.Errorf("outerFired = %q, want unfired", outerFired)
	}
}
