// Package render serializes VNode trees to HTML.
//
// It is the string-output counterpart to pkg/reconcile: the devserver
// uses it to ship a mounted app's markup over HTTP, and test harnesses
// use it for golden assertions. Attributes are emitted in sorted order
// so the output is deterministic; text and attribute values are
// escaped.
package render
