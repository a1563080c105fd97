package render

import (
	"strings"
	"testing"

	"github.com/lucent-dev/lucent/pkg/dom"
	"github.com/lucent-dev/lucent/pkg/vdom"
)

func TestRenderElement(t *testing.T) {
	tests := []struct {
		name string
		node *vdom.VNode
		want string
	}{
		{
			name: "simple element",
			node: vdom.Div(),
			want: "<div></div>",
		},
		{
			name: "element with text",
			node: vdom.P(vdom.Text("hello")),
			want: "<p>hello</p>",
		},
		{
			name: "nested elements",
			node: vdom.Div(vdom.Span(vdom.Text("a")), vdom.Span(vdom.Text("b"))),
			want: "<div><span>a</span><span>b</span></div>",
		},
		{
			name: "attributes sorted",
			node: vdom.Div(vdom.ID("x"), vdom.Class("c")),
			want: `<div class="c" id="x"></div>`,
		},
		{
			name: "boolean attribute presence only",
			node: vdom.Input(vdom.Type("checkbox"), vdom.Checked()),
			want: `<input checked type="checkbox">`,
		},
		{
			name: "false and nil attributes absent",
			node: vdom.Div(vdom.Custom("a", false), vdom.Custom("b", nil)),
			want: "<div></div>",
		},
		{
			name: "numeric attribute",
			node: vdom.Img(vdom.Src("i.png"), vdom.Width(640)),
			want: `<img src="i.png" width="640">`,
		},
		{
			name: "dataset expansion",
			node: vdom.Div(vdom.Dataset(map[string]string{"row": "1"})),
			want: `<div data-row="1"></div>`,
		},
		{
			name: "void element",
			node: vdom.Br(),
			want: "<br>",
		},
		{
			name: "fragment",
			node: vdom.Fragment(vdom.Text("a"), vdom.Span(vdom.Text("b"))),
			want: "a<span>b</span>",
		},
		{
			name: "text escaping",
			node: vdom.P(vdom.Text("<script>&</script>")),
			want: "<p>&lt;script&gt;&amp;&lt;/script&gt;</p>",
		},
		{
			name: "attribute escaping",
			node: vdom.A(vdom.Href(`/q?a=1&b="x"`)),
			want: `<a href="/q?a=1&amp;b=&quot;x&quot;"></a>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToString(tt.node)
			if err != nil {
				t.Fatalf("ToString: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderSkipsEventHandlers(t *testing.T) {
	node := vdom.Button(
		vdom.Text("go"),
		vdom.OnClick(func(*dom.Event, *dom.Element) {}),
	)

	got, err := ToString(node)
	if err != nil {
		t.Fatalf("ToString: %v", err)
	}
	if strings.Contains(got, "click") {
		t.Errorf("handlers must not render: %q", got)
	}
	if got != "<button>go</button>" {
		t.Errorf("got %q", got)
	}
}

func TestRenderNil(t *testing.T) {
	got, err := ToString(nil)
	if err != nil {
		t.Fatalf("ToString(nil): %v", err)
	}
	if got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestRenderPretty(t *testing.T) {
	r := NewRenderer(RendererConfig{Pretty: true})
	got, err := r.RenderToString(vdom.Div(vdom.P(vdom.Text("x"))))
	if err != nil {
		t.Fatalf("RenderToString: %v", err)
	}
	if !strings.Contains(got, "\n") {
		t.Errorf("pretty output should contain newlines: %q", got)
	}
	if !strings.Contains(got, "<p>") {
		t.Errorf("pretty output lost structure: %q", got)
	}
}

func TestRenderToWriter(t *testing.T) {
	var sb strings.Builder
	r := NewRenderer(RendererConfig{})
	if err := r.RenderToWriter(&sb, vdom.Span(vdom.Text("w"))); err != nil {
		t.Fatalf("RenderToWriter: %v", err)
	}
	if sb.String() != "<span>w</span>" {
		t.Errorf("got %q", sb.String())
	}
}
