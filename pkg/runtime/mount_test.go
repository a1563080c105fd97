package runtime

import (
	"strings"
	"testing"

	"github.com/lucent-dev/lucent/internal/errors"
	"github.com/lucent-dev/lucent/pkg/dom"
	"github.com/lucent-dev/lucent/pkg/reactive"
	"github.com/lucent-dev/lucent/pkg/vdom"
)

func newTestContext(t *testing.T) (*Context, *dom.Element) {
	t.Helper()
	doc := dom.NewDocument()
	app := doc.CreateElement("div")
	app.SetAttribute("id", "app")
	doc.Body().AppendChild(app)
	return NewContext(doc), app
}

func TestMountRendersAndReacts(t *testing.T) {
	ctx, app := newTestContext(t)
	count := reactive.NewSignal(0)

	dispose, err := ctx.Mount(func() *vdom.VNode {
		return vdom.P(vdom.Textf("count: %d", count.Get()))
	}, "#app")
	if err != nil {
		t.Fatalf("Mount: %v", err)
	}
	defer dispose()

	if got := app.InnerHTML(); !strings.Contains(got, "count: 0") {
		t.Errorf("initial html = %q", got)
	}

	p := app.ChildNodes()[0]

	count.Set(5)

	if got := app.InnerHTML(); !strings.Contains(got, "count: 5") {
		t.Errorf("updated html = %q", got)
	}
	if app.ChildNodes()[0] != p {
		t.Error("update should reconcile in place, not rebuild")
	}
}

func TestMountTargetNotFound(t *testing.T) {
	ctx, _ := newTestContext(t)

	_, err := ctx.Mount(func() *vdom.VNode { return vdom.Div() }, "#missing")
	if !errors.IsCode(err, errors.CodeTargetNotFound) {
		t.Errorf("err = %v, want target-not-found", err)
	}
}

func TestMountBadSelector(t *testing.T) {
	ctx, _ := newTestContext(t)

	_, err := ctx.Mount(func() *vdom.VNode { return vdom.Div() }, "div > p")
	if !errors.IsCode(err, errors.CodeBadSelector) {
		t.Errorf("err = %v, want bad-selector", err)
	}
}

func TestMountDisposeStopsUpdates(t *testing.T) {
	ctx, app := newTestContext(t)
	count := reactive.NewSignal(0)

	dispose, err := ctx.Mount(func() *vdom.VNode {
		return vdom.Button(
			vdom.Textf("%d", count.Get()),
			vdom.OnClick(func(*dom.Event, *dom.Element) { count.Update(func(n int) int { return n + 1 }) }),
		)
	}, "#app")
	if err != nil {
		t.Fatalf("Mount: %v", err)
	}

	dispose()

	before := app.InnerHTML()
	count.Set(99)
	if got := app.InnerHTML(); got != before {
		t.Errorf("html changed after dispose: %q", got)
	}
	if app.ListenerCount("click") != 0 {
		t.Error("delegation should be torn down on dispose")
	}

	// Second dispose is a no-op.
	dispose()
}

func TestMountBatchCoalesces(t *testing.T) {
	ctx, _ := newTestContext(t)
	a := reactive.NewSignal(1)
	b := reactive.NewSignal(2)

	renders := 0
	dispose, err := ctx.Mount(func() *vdom.VNode {
		renders++
		return vdom.Textf("%d", a.Get()+b.Get())
	}, "#app")
	if err != nil {
		t.Fatalf("Mount: %v", err)
	}
	defer dispose()

	renders = 0
	reactive.Batch(func() {
		a.Set(10)
		b.Set(20)
	})

	if renders != 1 {
		t.Errorf("renders = %d inside batch, want 1", renders)
	}
}

func TestMountDelegatedEvents(t *testing.T) {
	ctx, app := newTestContext(t)
	count := reactive.NewSignal(0)

	dispose, err := ctx.Mount(func() *vdom.VNode {
		return vdom.Button(
			vdom.Textf("clicked %d", count.Get()),
			vdom.OnClick(func(*dom.Event, *dom.Element) {
				count.Update(func(n int) int { return n + 1 })
			}),
		)
	}, "#app")
	if err != nil {
		t.Fatalf("Mount: %v", err)
	}
	defer dispose()

	btn := app.ChildNodes()[0].(*dom.Element)
	btn.DispatchEvent("click", "")
	btn.DispatchEvent("click", "")

	if got := app.InnerHTML(); !strings.Contains(got, "clicked 2") {
		t.Errorf("html = %q, want clicked 2", got)
	}
	if app.ListenerCount("click") != 1 {
		t.Errorf("root listeners = %d, want 1", app.ListenerCount("click"))
	}
}

func TestMountErrorHandler(t *testing.T) {
	ctx, _ := newTestContext(t)
	boom := reactive.NewSignal(false)

	var caught error
	dispose, err := ctx.Mount(func() *vdom.VNode {
		if boom.Get() {
			panic("producer failure")
		}
		return vdom.Div()
	}, "#app", WithMountErrorHandler(func(e error) { caught = e }))
	if err != nil {
		t.Fatalf("Mount: %v", err)
	}
	defer dispose()

	boom.Set(true)

	if !errors.IsCode(caught, errors.CodeEffectPanicked) {
		t.Errorf("caught = %v, want effect-panicked", caught)
	}
}

func TestMountReplacesExistingSelector(t *testing.T) {
	ctx, app := newTestContext(t)

	d1, err := ctx.Mount(func() *vdom.VNode { return vdom.Text("first") }, "#app")
	if err != nil {
		t.Fatalf("Mount: %v", err)
	}

	d2, err := ctx.Mount(func() *vdom.VNode { return vdom.Text("second") }, "#app")
	if err != nil {
		t.Fatalf("second Mount: %v", err)
	}
	defer d2()

	if got := app.InnerHTML(); !strings.Contains(got, "second") {
		t.Errorf("html = %q", got)
	}

	// The first mount's disposer is inert after replacement.
	d1()
	if got := app.InnerHTML(); !strings.Contains(got, "second") {
		t.Errorf("html after stale dispose = %q", got)
	}
}

func TestContextDisposed(t *testing.T) {
	ctx, _ := newTestContext(t)
	ctx.Dispose()

	if _, err := ctx.Mount(func() *vdom.VNode { return vdom.Div() }, "#app"); !errors.IsCode(err, errors.CodeContextDisposed) {
		t.Errorf("Mount err = %v, want context-disposed", err)
	}
	if _, err := ctx.Render(vdom.Div(), "#app"); !errors.IsCode(err, errors.CodeContextDisposed) {
		t.Errorf("Render err = %v, want context-disposed", err)
	}
	if _, err := ctx.Diff(vdom.Div(), "#app"); !errors.IsCode(err, errors.CodeContextDisposed) {
		t.Errorf("Diff err = %v, want context-disposed", err)
	}

	// Idempotent.
	ctx.Dispose()
}

func TestRenderAndDiffEntrypoints(t *testing.T) {
	ctx, app := newTestContext(t)

	stats, err := ctx.Render(vdom.P(vdom.Text("one")), "#app")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if stats.Created == 0 {
		t.Error("Render should create nodes")
	}

	p := app.ChildNodes()[0]

	stats, err = ctx.Diff(vdom.P(vdom.Text("two")), "#app")
	if err != nil {
		t.Fatalf("Diff: %v", err)
	}
	if stats.TextWrites != 1 {
		t.Errorf("TextWrites = %d, want 1", stats.TextWrites)
	}
	if app.ChildNodes()[0] != p {
		t.Error("Diff should update in place")
	}
}

func TestDefaultContextIsStable(t *testing.T) {
	if Default() != Default() {
		t.Error("Default should return the same context")
	}
	if Default().Document() == nil {
		t.Error("default context should have a document")
	}
}

func TestMountReplaceWholeSubtree(t *testing.T) {
	ctx, app := newTestContext(t)
	showList := reactive.NewSignal(true)

	dispose, err := ctx.Mount(func() *vdom.VNode {
		if showList.Get() {
			return vdom.Ul(vdom.Li(vdom.Text("a")), vdom.Li(vdom.Text("b")))
		}
		return vdom.P(vdom.Text("empty"))
	}, "#app")
	if err != nil {
		t.Fatalf("Mount: %v", err)
	}
	defer dispose()

	showList.Set(false)

	el := app.ChildNodes()[0].(*dom.Element)
	if el.TagName() != "p" {
		t.Errorf("tag = %q, want p after subtree replace", el.TagName())
	}
	if got := dom.TextContent(app); got != "empty" {
		t.Errorf("text = %q, want empty", got)
	}
}

// Mount and Diff on the same selector share one delegation table, so
// the root carries a single listener per event type across both paths.
func TestMountAndDiffShareDelegation(t *testing.T) {
	ctx, app := newTestContext(t)

	clicks := 0
	dispose, err := ctx.Mount(func() *vdom.VNode {
		return vdom.Button(vdom.OnClick(func(ev *dom.Event, el *dom.Element) {
			clicks++
		}), vdom.Text("go"))
	}, "#app")
	if err != nil {
		t.Fatalf("Mount: %v", err)
	}

	diffClicks := 0
	if _, err := ctx.Diff(vdom.Button(vdom.OnClick(func(ev *dom.Event, el *dom.Element) {
		diffClicks++
	}), vdom.Text("go")), "#app"); err != nil {
		t.Fatalf("Diff: %v", err)
	}

	if got := app.ListenerCount("click"); got != 1 {
		t.Fatalf("root click listeners = %d, want 1", got)
	}

	btn, _ := ctx.Document().QuerySelector("button")
	if btn == nil {
		t.Fatal("button not found")
	}
	btn.DispatchEvent("click", "")

	if clicks != 0 || diffClicks != 1 {
		t.Errorf("clicks = %d, diffClicks = %d, want 0 and 1", clicks, diffClicks)
	}

	dispose()
	if got := app.ListenerCount("click"); got != 0 {
		t.Errorf("root click listeners after dispose = %d, want 0", got)
	}
}
