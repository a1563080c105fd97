package runtime

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/lucent-dev/lucent/internal/errors"
	"github.com/lucent-dev/lucent/pkg/reactive"
	"github.com/lucent-dev/lucent/pkg/reconcile"
	"github.com/lucent-dev/lucent/pkg/vdom"
)

// Producer builds the current view tree. Signals it reads become the
// mount's dependencies: any later write re-runs the producer and
// reconciles the result against the host tree.
type Producer func() *vdom.VNode

// MountOption configures a mount.
type MountOption func(*mountConfig)

type mountConfig struct {
	onError func(error)
}

// WithMountErrorHandler recovers producer panics and effect errors
// with fn instead of propagating them.
func WithMountErrorHandler(fn func(error)) MountOption {
	return func(c *mountConfig) {
		c.onError = fn
	}
}

// mount is one live producer-to-root binding.
type mount struct {
	selector  string
	tree      *reactive.Computed[*vdom.VNode]
	eff       *reactive.Effect
	delegator *reconcile.Delegator
}

func (m *mount) dispose() {
	m.eff.Dispose()
	m.tree.Dispose()
	m.delegator.Teardown()
	recordUnmount()
}

// Mount binds the producer to the element the selector resolves to.
// The first pass cold-renders; every reactive update afterwards runs a
// positional diff. The returned func stops updates and tears down the
// root's event delegation.
func (c *Context) Mount(producer Producer, selector string, opts ...MountOption) (func(), error) {
	cfg := mountConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	spanCtx, span := startSpan(context.Background(), "lucent.mount",
		attribute.String("lucent.selector", selector))

	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		err := errors.New(errors.CodeContextDisposed)
		endSpan(span, err)
		return nil, err
	}
	root, err := c.resolveRoot(selector)
	if err != nil {
		c.mu.Unlock()
		endSpan(span, err)
		return nil, err
	}
	if prev, ok := c.mounts[selector]; ok {
		delete(c.mounts, selector)
		if c.delegators[selector] == prev.delegator {
			delete(c.delegators, selector)
		}
		c.mu.Unlock()
		prev.dispose()
		c.mu.Lock()
	}
	// Shared with Render/Diff at the same selector so the root never
	// carries more than one listener per event type.
	delegator := c.delegator(selector, root)
	c.mu.Unlock()

	effOpts := []reactive.EffectOption{
		reactive.WithErrorHandler(func(err error) {
			recordEffectError()
			if cfg.onError != nil {
				cfg.onError(err)
				return
			}
			panic(err)
		}),
	}

	m := &mount{selector: selector, delegator: delegator}
	m.tree = reactive.NewComputed(producer, effOpts...)

	first := true
	m.eff = reactive.NewEffect(func() reactive.Cleanup {
		tree := m.tree.Get()

		_, diffSpan := startSpan(spanCtx, "lucent.diff",
			attribute.String("lucent.selector", selector))
		start := time.Now()

		var stats reconcile.Stats
		if first {
			first = false
			// Cold render starts from an empty root; leftovers from a
			// previous occupant are discarded wholesale.
			root.TruncateChildren(0)
			stats = reconcile.Render(tree, root, delegator)
		} else {
			stats = reconcile.Diff(tree, root, delegator)
		}

		recordDiff(stats, time.Since(start))
		endSpan(diffSpan, nil)
		return nil
	}, effOpts...)

	c.mu.Lock()
	c.mounts[selector] = m
	c.mu.Unlock()

	recordMount()
	endSpan(span, nil)

	disposed := false
	return func() {
		if disposed {
			return
		}
		disposed = true
		c.mu.Lock()
		if c.mounts[selector] == m {
			delete(c.mounts, selector)
		}
		if c.delegators[selector] == m.delegator {
			delete(c.delegators, selector)
		}
		c.mu.Unlock()
		m.dispose()
	}, nil
}

// Render cold-renders a tree at the selector without reactive
// tracking. Shares the selector's delegation table with later Diff
// calls.
func (c *Context) Render(tree *vdom.VNode, selector string) (reconcile.Stats, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disposed {
		return reconcile.Stats{}, errors.New(errors.CodeContextDisposed)
	}
	root, err := c.resolveRoot(selector)
	if err != nil {
		return reconcile.Stats{}, err
	}

	start := time.Now()
	stats := reconcile.Render(tree, root, c.delegator(selector, root))
	recordDiff(stats, time.Since(start))
	return stats, nil
}

// Diff reconciles a new tree against the selector's current children.
func (c *Context) Diff(tree *vdom.VNode, selector string) (reconcile.Stats, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disposed {
		return reconcile.Stats{}, errors.New(errors.CodeContextDisposed)
	}
	root, err := c.resolveRoot(selector)
	if err != nil {
		return reconcile.Stats{}, err
	}

	start := time.Now()
	stats := reconcile.Diff(tree, root, c.delegator(selector, root))
	recordDiff(stats, time.Since(start))
	return stats, nil
}
