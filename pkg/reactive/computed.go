package reactive

// Computed is a derived, memoized value. Its computation runs inside an
// internal effect, so dependencies are tracked automatically and the
// value recomputes when any of them changes. The result lives in a
// private backing signal: readers inside a tracker subscribe to the
// backing signal, and a recomputation that yields an equal value
// notifies no one.
type Computed[T any] struct {
	backing *Signal[T]
	eff     *Effect
}

// NewComputed creates a computed value. compute runs once immediately
// and re-runs when any signal it read changes. Options apply to the
// internal effect; WithErrorHandler recovers panics in compute.
func NewComputed[T any](compute func() T, opts ...EffectOption) *Computed[T] {
	c := &Computed[T]{}

	var zero T
	c.backing = NewSignal(zero)

	c.eff = NewEffect(func() Cleanup {
		v := compute()
		// Set suppresses notification when the recomputation happens
		// to produce an equal value.
		c.backing.Set(v)
		return nil
	}, opts...)

	return c
}

// Get returns the current value, subscribing the active tracker to
// future changes.
func (c *Computed[T]) Get() T {
	return c.backing.Get()
}

// Peek returns the current value without subscribing.
func (c *Computed[T]) Peek() T {
	return c.backing.Peek()
}

// WithEquals configures the equality used to suppress redundant
// downstream notification.
func (c *Computed[T]) WithEquals(fn func(T, T) bool) *Computed[T] {
	c.backing.WithEquals(fn)
	return c
}

// ID returns the unique identifier of the backing signal.
func (c *Computed[T]) ID() uint64 {
	return c.backing.ID()
}

// Dispose stops recomputation. The accessor keeps returning the last
// computed value and never recomputes again.
func (c *Computed[T]) Dispose() {
	c.eff.Dispose()
}

// IsDisposed reports whether the computed has been disposed.
func (c *Computed[T]) IsDisposed() bool {
	return c.eff.IsDisposed()
}
