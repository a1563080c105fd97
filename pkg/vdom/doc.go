// Package vdom provides the virtual node representation for Lucent.
//
// A VNode tree is an immutable description of UI produced by a view
// function. The reconciler in pkg/reconcile compares a new tree against
// the live host tree and applies the minimal set of host mutations.
//
// # Core Types
//
// VNode represents elements, text, and fragments. Attributes and event
// handlers live in separate maps: Attrs holds plain attribute values,
// Events maps host event types to Handler functions. Attr and
// EventHandler are the tagged argument forms the builders accept.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("card"), ID("main"),
//	    H1(Text("Title")),
//	    P(Text("Content")),
//	    OnClick(handler),
//	)
//
// Child order is significant: the reconciler matches children by
// position, so a stable view structure yields minimal updates.
package vdom
