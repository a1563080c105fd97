// Package uitest provides testing helpers for Lucent apps.
//
// The harness mounts a producer against an in-memory document,
// dispatches synthetic events by selector, and asserts on the rendered
// HTML.
//
// # Quick Start
//
//	func TestCounter(t *testing.T) {
//	    h := uitest.New(t).Mount(Counter)
//	    h.ExpectContains("count: 0")
//	    h.Click("#increment")
//	    h.ExpectContains("count: 1")
//	}
//
// # Pure View Assertions
//
// View functions that take no signals can be asserted without a mount:
//
//	uitest.ExpectContains(t, Badge("new"), `class="badge"`)
package uitest
