package reactive

import (
	"sync"
	"sync/atomic"

	"github.com/lucent-dev/lucent/internal/errors"
)

// Effect is a reactive unit of work. It runs once on creation and
// re-runs whenever any signal it read during its last run changes.
//
// Effects own the effects created synchronously during their run:
// before every re-run the previous children are disposed and fresh ones
// are created, and disposing a parent disposes its children for good.
type Effect struct {
	id uint64

	// fn is the effect body. A returned Cleanup runs before the next
	// run and on disposal.
	fn func() Cleanup

	cleanup Cleanup

	// sources are the signals this effect read during its last run.
	sources   []*signalBase
	sourcesMu sync.Mutex

	// children are effects created during this effect's last run.
	children   []*Effect
	childrenMu sync.Mutex

	parent *Effect

	// priority orders effects in a flush; higher runs first.
	priority int

	// onError recovers panics from the effect body. nil re-panics.
	onError func(error)

	// queued marks the effect as sitting in the pending queue.
	queued atomic.Bool

	disposed atomic.Bool
}

// EffectOption configures an Effect at creation.
type EffectOption func(*Effect)

// WithPriority sets the scheduler priority. Effects with higher
// priority run first in a flush; the default is 0.
func WithPriority(p int) EffectOption {
	return func(e *Effect) {
		e.priority = p
	}
}

// WithErrorHandler installs a per-effect handler for panics raised by
// the effect body. Without a handler the panic propagates to whoever
// triggered the run.
func WithErrorHandler(fn func(error)) EffectOption {
	return func(e *Effect) {
		e.onError = fn
	}
}

// NewEffect creates an effect, runs fn once synchronously, and returns
// the effect. If called during another effect's run, the new effect is
// owned by that parent.
func NewEffect(fn func() Cleanup, opts ...EffectOption) *Effect {
	e := &Effect{
		id: nextID(),
		fn: fn,
	}
	for _, opt := range opts {
		opt(e)
	}

	if parent := getCurrentParent(); parent != nil {
		e.parent = parent
		parent.addChild(e)
	}

	e.run()
	return e
}

// MarkDirty schedules the effect to re-run. Outside a batch the effect
// runs synchronously; inside a batch it is queued, deduplicated, for
// the flush. Implements Listener.
func (e *Effect) MarkDirty() {
	if e.disposed.Load() {
		return
	}

	tc := getTrackingContext()
	if tc.batchDepth > 0 {
		if e.queued.CompareAndSwap(false, true) {
			tc.pending = append(tc.pending, e)
		}
		return
	}

	e.run()
}

// ID returns the unique identifier for this effect. Implements Listener.
func (e *Effect) ID() uint64 {
	return e.id
}

// live implements Listener; dead relations are pruned by signals.
func (e *Effect) live() bool {
	return !e.disposed.Load()
}

// Priority returns the effect's scheduler priority.
func (e *Effect) Priority() int {
	return e.priority
}

// run executes the effect body with full tracking bookkeeping.
func (e *Effect) run() {
	if e.disposed.Load() {
		return
	}

	tc := getTrackingContext()
	if tc.onStack(e) {
		// The effect re-entered its own frame: a signal it depends on
		// was written during its own run. Fatal rather than recursive.
		err := errors.New(errors.CodeCircularEffect)
		if e.onError != nil {
			e.onError(err)
			return
		}
		panic(err)
	}

	e.queued.Store(false)

	// Children from the previous run never outlive it.
	e.disposeChildren()

	if e.cleanup != nil {
		e.cleanup()
		e.cleanup = nil
	}

	// Start tracking from a clean slate.
	e.sourcesMu.Lock()
	for _, source := range e.sources {
		source.unsubscribe(e)
	}
	e.sources = e.sources[:0]
	e.sourcesMu.Unlock()

	oldListener := setCurrentListener(e)
	oldParent := setCurrentParent(e)
	tc.pushEffect(e)

	defer func() {
		tc.popEffect()
		setCurrentParent(oldParent)
		setCurrentListener(oldListener)

		if r := recover(); r != nil {
			err := asEffectError(r)
			if e.onError != nil {
				e.onError(err)
				return
			}
			panic(err)
		}
	}()

	e.cleanup = e.fn()
}

// addSource records a signal read during execution. Called by signals.
func (e *Effect) addSource(source *signalBase) {
	e.sourcesMu.Lock()
	defer e.sourcesMu.Unlock()

	for _, s := range e.sources {
		if s == source {
			return
		}
	}
	e.sources = append(e.sources, source)
}

// addChild registers a child created during this effect's run.
func (e *Effect) addChild(child *Effect) {
	e.childrenMu.Lock()
	defer e.childrenMu.Unlock()
	e.children = append(e.children, child)
}

// disposeChildren disposes all child effects, last created first.
func (e *Effect) disposeChildren() {
	e.childrenMu.Lock()
	children := e.children
	e.children = nil
	e.childrenMu.Unlock()

	for i := len(children) - 1; i >= 0; i-- {
		children[i].Dispose()
	}
}

// Dispose stops the effect permanently: children are disposed, the
// last cleanup runs, and every subscriber relation is severed. A
// disposed effect never runs again, even if already queued.
func (e *Effect) Dispose() {
	if e.disposed.Swap(true) {
		return
	}

	e.disposeChildren()

	if e.cleanup != nil {
		e.cleanup()
		e.cleanup = nil
	}

	e.sourcesMu.Lock()
	for _, source := range e.sources {
		source.unsubscribe(e)
	}
	e.sources = nil
	e.sourcesMu.Unlock()
}

// IsDisposed reports whether the effect has been disposed.
func (e *Effect) IsDisposed() bool {
	return e.disposed.Load()
}
