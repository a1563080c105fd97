// Package dom provides the in-memory host document tree that Lucent's
// reconciler mutates: elements, text nodes, fragments, a document with
// selector resolution, and bubbling event dispatch.
//
// The tree is a plain data structure with no rendering of its own; the
// reconciler decides what mutations to issue and this package carries
// them out.
package dom
