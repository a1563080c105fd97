// Package reconcile applies VNode trees to the host tree.
//
// Render cold-renders a tree into an empty root; Diff compares a new
// tree against the root's existing children and applies the minimal
// set of host mutations. Matching is positional: children pair up by
// index, and a tag mismatch always discards and re-renders the host
// subtree. There is no key-based reordering.
//
// Event handlers never touch host attributes. A Delegator per mount
// root attaches one listener per delegated event type on the root and
// routes dispatches to the handler registered for the nearest keyed
// ancestor of the event target.
package reconcile
