// Package el provides the UI DSL for Lucent.
//
// It re-exports HTML element constructors, attribute helpers, event
// helpers, and common virtual node utilities from
// github.com/lucent-dev/lucent/pkg/vdom.
//
// Typical usage:
//
//	import (
//	    "github.com/lucent-dev/lucent"
//	    . "github.com/lucent-dev/lucent/el"
//	)
//
// This keeps the DSL in a dedicated package while the reactive APIs
// live at the module root.
package el
