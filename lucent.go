// Package lucent provides the public API for the Lucent UI library.
//
// This is the recommended import for most applications:
//
//	import "github.com/lucent-dev/lucent"
//
// Usage:
//
//	count := lucent.NewSignal(0)
//	doubled := lucent.NewComputed(func() int { return count.Get() * 2 })
//	dispose, err := lucent.Mount(func() *lucent.VNode {
//	    return el.Div(el.Textf("count: %d", doubled.Get()))
//	}, "#app")
package lucent

import (
	"github.com/lucent-dev/lucent/pkg/dom"
	"github.com/lucent-dev/lucent/pkg/reactive"
	"github.com/lucent-dev/lucent/pkg/reconcile"
	"github.com/lucent-dev/lucent/pkg/runtime"
	"github.com/lucent-dev/lucent/pkg/vdom"
)

// =============================================================================
// Reactive primitives (re-export from pkg/reactive)
// =============================================================================

// Signal is a mutable reactive value.
type Signal[T any] = reactive.Signal[T]

// Computed is a derived reactive value that tracks its dependencies.
type Computed[T any] = reactive.Computed[T]

// Effect is a reactive side effect with ownership of child effects.
type Effect = reactive.Effect

// Cleanup runs before an effect re-executes and on disposal.
type Cleanup = reactive.Cleanup

// EffectOption configures effect creation.
type EffectOption = reactive.EffectOption

// NewSignal creates a reactive signal with the given initial value.
//
// Example:
//
//	count := lucent.NewSignal(0)
//	count.Set(1)
//	value := count.Get() // 1
func NewSignal[T any](initial T) *Signal[T] {
	return reactive.NewSignal(initial)
}

// NewComputed creates a derived value that recomputes when any signal
// it read last time changes.
//
// Example:
//
//	doubled := lucent.NewComputed(func() int {
//	    return count.Get() * 2
//	})
func NewComputed[T any](compute func() T, opts ...EffectOption) *Computed[T] {
	return reactive.NewComputed(compute, opts...)
}

// NewEffect registers a side effect that re-runs when its dependencies
// change. The returned cleanup, if any, runs before each re-execution
// and on disposal.
//
// Example:
//
//	lucent.NewEffect(func() lucent.Cleanup {
//	    fmt.Println("count is now", count.Get())
//	    return nil
//	})
var NewEffect = reactive.NewEffect

// Batch coalesces writes made inside fn into a single flush.
var Batch = reactive.Batch

// Untracked runs fn without subscribing the current effect to any
// signal fn reads.
var Untracked = reactive.Untracked

// WithPriority orders an effect within a flush; higher runs first.
var WithPriority = reactive.WithPriority

// WithErrorHandler routes effect panics to fn instead of repanicking.
var WithErrorHandler = reactive.WithErrorHandler

// IsCircular reports whether err is a circular dependency error.
var IsCircular = reactive.IsCircular

// IsEffectPanic reports whether err wraps a recovered effect panic.
var IsEffectPanic = reactive.IsEffectPanic

// =============================================================================
// Virtual nodes (re-export from pkg/vdom)
// =============================================================================

// VNode is a virtual node describing a piece of UI.
type VNode = vdom.VNode

// Handler handles a delegated host event.
type Handler = vdom.Handler

// Props holds an element's attributes.
type Props = vdom.Props

// =============================================================================
// Host tree (re-export from pkg/dom)
// =============================================================================

// Document is the in-memory host tree a Context mounts into.
type Document = dom.Document

// Element is a host element node.
type Element = dom.Element

// Event is a host event dispatched against the tree.
type Event = dom.Event

// NewDocument creates an empty host document with html and body roots.
var NewDocument = dom.NewDocument

// =============================================================================
// Runtime (re-export from pkg/runtime)
// =============================================================================

// Context multiplexes mount roots over one Document.
type Context = runtime.Context

// Producer builds the current tree for a mount.
type Producer = runtime.Producer

// MountOption configures a mount.
type MountOption = runtime.MountOption

// Stats counts the host mutations of one render or diff pass.
type Stats = reconcile.Stats

// NewContext creates a runtime context over doc.
var NewContext = runtime.NewContext

// Default returns the process-wide context over a lazily created
// document. Prefer explicit contexts in anything beyond a demo.
var Default = runtime.Default

// WithMountErrorHandler routes producer and effect errors for a mount
// to fn instead of panicking.
var WithMountErrorHandler = runtime.WithMountErrorHandler

// EnableMetrics registers Prometheus metrics for mounts and diffs.
var EnableMetrics = runtime.EnableMetrics

// EnableTracing turns on OpenTelemetry spans around mount and diff.
var EnableTracing = runtime.EnableTracing

// Mount mounts producer at selector on the default context.
//
// Example:
//
//	dispose, err := lucent.Mount(view, "#app")
func Mount(producer Producer, selector string, opts ...MountOption) (func(), error) {
	return runtime.Default().Mount(producer, selector, opts...)
}
