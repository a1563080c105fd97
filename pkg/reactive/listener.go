package reactive

// Listener is anything that can be notified when a dependency changes.
// Within this package it is implemented by Effect; Computed listens
// through its internal effect.
type Listener interface {
	// MarkDirty notifies the listener that one of its dependencies has
	// changed. Outside a batch this runs the listener synchronously;
	// inside a batch it queues the listener for the flush.
	MarkDirty()

	// ID returns a unique identifier for this listener, used for
	// deduplication in the pending queue.
	ID() uint64

	// live reports whether the listener can still run. Signals prune
	// dead subscriber relations lazily on notify.
	live() bool
}

// Cleanup is a function returned by effects to release resources.
// It is called before the effect re-runs and when it is disposed.
type Cleanup func()
