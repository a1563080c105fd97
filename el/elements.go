// This file re-exports vdom element constructors for the el package.
package el

import "github.com/lucent-dev/lucent/pkg/vdom"

func IsVoidElement(tag string) bool {
	return vdom.IsVoidElement(tag)
}
func El(tag string, args ...any) *VNode {
	return vdom.El(tag, args...)
}
func Html(args ...any) *VNode {
	return vdom.Html(args...)
}
func Head(args ...any) *VNode {
	return vdom.Head(args...)
}
func Body(args ...any) *VNode {
	return vdom.Body(args...)
}
func Title(args ...any) *VNode {
	return vdom.Title(args...)
}
func Meta(args ...any) *VNode {
	return vdom.Meta(args...)
}
func Link(args ...any) *VNode {
	return vdom.Link(args...)
}
func Header(args ...any) *VNode {
	return vdom.Header(args...)
}
func Footer(args ...any) *VNode {
	return vdom.Footer(args...)
}
func Main(args ...any) *VNode {
	return vdom.Main(args...)
}
func Nav(args ...any) *VNode {
	return vdom.Nav(args...)
}
func Section(args ...any) *VNode {
	return vdom.Section(args...)
}
func Article(args ...any) *VNode {
	return vdom.Article(args...)
}
func Aside(args ...any) *VNode {
	return vdom.Aside(args...)
}
func H1(args ...any) *VNode {
	return vdom.H1(args...)
}
func H2(args ...any) *VNode {
	return vdom.H2(args...)
}
func H3(args ...any) *VNode {
	return vdom.H3(args...)
}
func H4(args ...any) *VNode {
	return vdom.H4(args...)
}
func H5(args ...any) *VNode {
	return vdom.H5(args...)
}
func H6(args ...any) *VNode {
	return vdom.H6(args...)
}
func Div(args ...any) *VNode {
	return vdom.Div(args...)
}
func P(args ...any) *VNode {
	return vdom.P(args...)
}
func Span(args ...any) *VNode {
	return vdom.Span(args...)
}
func Pre(args ...any) *VNode {
	return vdom.Pre(args...)
}
func Blockquote(args ...any) *VNode {
	return vdom.Blockquote(args...)
}
func Ul(args ...any) *VNode {
	return vdom.Ul(args...)
}
func Ol(args ...any) *VNode {
	return vdom.Ol(args...)
}
func Li(args ...any) *VNode {
	return vdom.Li(args...)
}
func Dl(args ...any) *VNode {
	return vdom.Dl(args...)
}
func Dt(args ...any) *VNode {
	return vdom.Dt(args...)
}
func Dd(args ...any) *VNode {
	return vdom.Dd(args...)
}
func Hr(args ...any) *VNode {
	return vdom.Hr(args...)
}
func Figure(args ...any) *VNode {
	return vdom.Figure(args...)
}
func Figcaption(args ...any) *VNode {
	return vdom.Figcaption(args...)
}
func A(args ...any) *VNode {
	return vdom.A(args...)
}
func Strong(args ...any) *VNode {
	return vdom.Strong(args...)
}
func Em(args ...any) *VNode {
	return vdom.Em(args...)
}
func B(args ...any) *VNode {
	return vdom.B(args...)
}
func I(args ...any) *VNode {
	return vdom.I(args...)
}
func U(args ...any) *VNode {
	return vdom.U(args...)
}
func S(args ...any) *VNode {
	return vdom.S(args...)
}
func Small(args ...any) *VNode {
	return vdom.Small(args...)
}
func Mark(args ...any) *VNode {
	return vdom.Mark(args...)
}
func Sub(args ...any) *VNode {
	return vdom.Sub(args...)
}
func Sup(args ...any) *VNode {
	return vdom.Sup(args...)
}
func Code(args ...any) *VNode {
	return vdom.Code(args...)
}
func Kbd(args ...any) *VNode {
	return vdom.Kbd(args...)
}
func Abbr(args ...any) *VNode {
	return vdom.Abbr(args...)
}
func Cite(args ...any) *VNode {
	return vdom.Cite(args...)
}
func Q(args ...any) *VNode {
	return vdom.Q(args...)
}
func Br(args ...any) *VNode {
	return vdom.Br(args...)
}
func Form(args ...any) *VNode {
	return vdom.Form(args...)
}
func Input(args ...any) *VNode {
	return vdom.Input(args...)
}
func Textarea(args ...any) *VNode {
	return vdom.Textarea(args...)
}
func Select(args ...any) *VNode {
	return vdom.Select(args...)
}
func Option(args ...any) *VNode {
	return vdom.Option(args...)
}
func Button(args ...any) *VNode {
	return vdom.Button(args...)
}
func Label(args ...any) *VNode {
	return vdom.Label(args...)
}
func Fieldset(args ...any) *VNode {
	return vdom.Fieldset(args...)
}
func Legend(args ...any) *VNode {
	return vdom.Legend(args...)
}
func Output(args ...any) *VNode {
	return vdom.Output(args...)
}
func Progress(args ...any) *VNode {
	return vdom.Progress(args...)
}
func Table(args ...any) *VNode {
	return vdom.Table(args...)
}
func Thead(args ...any) *VNode {
	return vdom.Thead(args...)
}
func Tbody(args ...any) *VNode {
	return vdom.Tbody(args...)
}
func Tfoot(args ...any) *VNode {
	return vdom.Tfoot(args...)
}
func Tr(args ...any) *VNode {
	return vdom.Tr(args...)
}
func Th(args ...any) *VNode {
	return vdom.Th(args...)
}
func Td(args ...any) *VNode {
	return vdom.Td(args...)
}
func Caption(args ...any) *VNode {
	return vdom.Caption(args...)
}
func Img(args ...any) *VNode {
	return vdom.Img(args...)
}
func Video(args ...any) *VNode {
	return vdom.Video(args...)
}
func Audio(args ...any) *VNode {
	return vdom.Audio(args...)
}
func Source(args ...any) *VNode {
	return vdom.Source(args...)
}
func Canvas(args ...any) *VNode {
	return vdom.Canvas(args...)
}
func Svg(args ...any) *VNode {
	return vdom.Svg(args...)
}
func Details(args ...any) *VNode {
	return vdom.Details(args...)
}
func Summary(args ...any) *VNode {
	return vdom.Summary(args...)
}
func Dialog(args ...any) *VNode {
	return vdom.Dialog(args...)
}
