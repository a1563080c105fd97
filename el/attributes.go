// This file re-exports vdom attribute helpers for the el package.
package el

import "github.com/lucent-dev/lucent/pkg/vdom"

func ID(id string) Attr {
	return vdom.ID(id)
}
func Class(classes ...string) Attr {
	return vdom.Class(classes...)
}
func StyleAttr(style string) Attr {
	return vdom.StyleAttr(style)
}
func Data(key, value string) Attr {
	return vdom.Data(key, value)
}
func Dataset(m map[string]string) Attr {
	return vdom.Dataset(m)
}
func Role(role string) Attr {
	return vdom.Role(role)
}
func AriaLabel(label string) Attr {
	return vdom.AriaLabel(label)
}
func AriaHidden(hidden bool) Attr {
	return vdom.AriaHidden(hidden)
}
func AriaExpanded(expanded bool) Attr {
	return vdom.AriaExpanded(expanded)
}
func AriaLive(mode string) Attr {
	return vdom.AriaLive(mode)
}
func TabIndex(index int) Attr {
	return vdom.TabIndex(index)
}
func Hidden() Attr {
	return vdom.Hidden()
}
func TitleAttr(title string) Attr {
	return vdom.TitleAttr(title)
}
func Href(url string) Attr {
	return vdom.Href(url)
}
func Target(target string) Attr {
	return vdom.Target(target)
}
func Rel(rel string) Attr {
	return vdom.Rel(rel)
}
func Name(name string) Attr {
	return vdom.Name(name)
}
func Value(value string) Attr {
	return vdom.Value(value)
}
func Type(t string) Attr {
	return vdom.Type(t)
}
func Placeholder(text string) Attr {
	return vdom.Placeholder(text)
}
func Disabled() Attr {
	return vdom.Disabled()
}
func Readonly() Attr {
	return vdom.Readonly()
}
func Required() Attr {
	return vdom.Required()
}
func Checked() Attr {
	return vdom.Checked()
}
func Selected() Attr {
	return vdom.Selected()
}
func Multiple() Attr {
	return vdom.Multiple()
}
func Autofocus() Attr {
	return vdom.Autofocus()
}
func Src(url string) Attr {
	return vdom.Src(url)
}
func Alt(text string) Attr {
	return vdom.Alt(text)
}
func Width(w int) Attr {
	return vdom.Width(w)
}
func Height(h int) Attr {
	return vdom.Height(h)
}
func For(id string) Attr {
	return vdom.For(id)
}
func Custom(key string, value any) Attr {
	return vdom.Custom(key, value)
}
