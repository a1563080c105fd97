// This file re-exports vdom event helpers for the el package.
package el

import "github.com/lucent-dev/lucent/pkg/vdom"

func On(eventType string, handler Handler) EventHandler {
	return vdom.On(eventType, handler)
}
func OnClick(handler Handler) EventHandler {
	return vdom.OnClick(handler)
}
func OnDblClick(handler Handler) EventHandler {
	return vdom.OnDblClick(handler)
}
func OnMouseDown(handler Handler) EventHandler {
	return vdom.OnMouseDown(handler)
}
func OnMouseUp(handler Handler) EventHandler {
	return vdom.OnMouseUp(handler)
}
func OnMouseEnter(handler Handler) EventHandler {
	return vdom.OnMouseEnter(handler)
}
func OnMouseLeave(handler Handler) EventHandler {
	return vdom.OnMouseLeave(handler)
}
func OnContextMenu(handler Handler) EventHandler {
	return vdom.OnContextMenu(handler)
}
func OnKeyDown(handler Handler) EventHandler {
	return vdom.OnKeyDown(handler)
}
func OnKeyUp(handler Handler) EventHandler {
	return vdom.OnKeyUp(handler)
}
func OnInput(handler Handler) EventHandler {
	return vdom.OnInput(handler)
}
func OnChange(handler Handler) EventHandler {
	return vdom.OnChange(handler)
}
func OnSubmit(handler Handler) EventHandler {
	return vdom.OnSubmit(handler)
}
func OnFocus(handler Handler) EventHandler {
	return vdom.OnFocus(handler)
}
func OnBlur(handler Handler) EventHandler {
	return vdom.OnBlur(handler)
}
