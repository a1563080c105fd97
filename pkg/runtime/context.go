package runtime

import (
	"sync"

	"github.com/lucent-dev/lucent/internal/errors"
	"github.com/lucent-dev/lucent/pkg/dom"
	"github.com/lucent-dev/lucent/pkg/reconcile"
)

// Context multiplexes independent mount roots over one document.
// Mounts are keyed by selector; mounting a second producer at the same
// selector disposes the first. All methods take explicit Context
// handles rather than consulting ambient process state; Default()
// exists for programs that only ever need one.
type Context struct {
	doc *dom.Document

	mu         sync.Mutex
	mounts     map[string]*mount
	delegators map[string]*reconcile.Delegator
	disposed   bool
}

// NewContext creates a context over the given document.
func NewContext(doc *dom.Document) *Context {
	return &Context{
		doc:        doc,
		mounts:     make(map[string]*mount),
		delegators: make(map[string]*reconcile.Delegator),
	}
}

// Document returns the context's document.
func (c *Context) Document() *dom.Document { return c.doc }

// Dispose unmounts everything and marks the context unusable. Further
// Mount/Render/Diff calls fail with a context-disposed error.
func (c *Context) Dispose() {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return
	}
	c.disposed = true
	mounts := c.mounts
	delegators := c.delegators
	c.mounts = map[string]*mount{}
	c.delegators = map[string]*reconcile.Delegator{}
	c.mu.Unlock()

	for _, m := range mounts {
		m.dispose()
	}
	for _, d := range delegators {
		d.Teardown()
	}
}

// resolveRoot resolves the selector to an existing element. A selector
// matching nothing is a target-not-found error; nothing is mutated.
func (c *Context) resolveRoot(selector string) (*dom.Element, error) {
	root, err := c.doc.QuerySelector(selector)
	if err != nil {
		return nil, err
	}
	if root == nil {
		return nil, errors.New(errors.CodeTargetNotFound).WithDetailf("selector %q", selector)
	}
	return root, nil
}

// delegator returns the selector's delegator, creating it on first
// use so repeated Render/Diff calls share one delegation table.
func (c *Context) delegator(selector string, root *dom.Element) *reconcile.Delegator {
	if d, ok := c.delegators[selector]; ok {
		return d
	}
	d := reconcile.NewDelegator(root)
	c.delegators[selector] = d
	return d
}

var (
	defaultContext     *Context
	defaultContextOnce sync.Once
)

// Default returns the lazily initialized process-wide context, backed
// by a fresh empty document.
func Default() *Context {
	defaultContextOnce.Do(func() {
		defaultContext = NewContext(dom.NewDocument())
	})
	return defaultContext
}
