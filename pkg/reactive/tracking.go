package reactive

import (
	"runtime"
	"sync"
)

// TrackingContext holds the reactive state for a goroutine: the
// currently tracking listener, the current parent effect for ownership,
// the batch depth, the pending notification queue, and the effect
// execution stack used for circular-dependency detection.
type TrackingContext struct {
	// currentListener is what's currently tracking dependencies.
	// nil means reads don't create subscriptions.
	currentListener Listener

	// currentParent is the effect that owns effects created right now.
	currentParent *Effect

	// batchDepth tracks nested Batch() calls. When > 0, signal updates
	// queue notifications instead of firing immediately.
	batchDepth int

	// pending accumulates effects to notify when the batch completes.
	pending []*Effect

	// stack holds the effects currently executing, outermost first.
	// An effect re-entering its own frame is a circular dependency.
	stack []*Effect
}

// trackingContexts stores per-goroutine tracking contexts.
var trackingContexts sync.Map

// getGoroutineID extracts the current goroutine's ID from the runtime
// stack header ("goroutine <id> ..."). Implementation detail; never
// exposed.
func getGoroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)

	var id uint64
	for i := 10; i < n; i++ { // skip "goroutine "
		if buf[i] == ' ' {
			break
		}
		id = id*10 + uint64(buf[i]-'0')
	}
	return id
}

// getTrackingContext returns the tracking context for the current
// goroutine, creating one if needed.
func getTrackingContext() *TrackingContext {
	gid := getGoroutineID()

	if ctx, ok := trackingContexts.Load(gid); ok {
		return ctx.(*TrackingContext)
	}

	ctx := &TrackingContext{}
	trackingContexts.Store(gid, ctx)
	return ctx
}

// getCurrentListener returns the active tracker, or nil.
func getCurrentListener() Listener {
	return getTrackingContext().currentListener
}

// setCurrentListener installs l as the active tracker and returns the
// previous one so it can be restored.
func setCurrentListener(l Listener) Listener {
	ctx := getTrackingContext()
	old := ctx.currentListener
	ctx.currentListener = l
	return old
}

// getCurrentParent returns the effect that owns newly created effects.
func getCurrentParent() *Effect {
	return getTrackingContext().currentParent
}

// setCurrentParent installs e as the owning parent and returns the
// previous one.
func setCurrentParent(e *Effect) *Effect {
	ctx := getTrackingContext()
	old := ctx.currentParent
	ctx.currentParent = e
	return old
}

// pushEffect records e on the execution stack.
func (tc *TrackingContext) pushEffect(e *Effect) {
	tc.stack = append(tc.stack, e)
}

// popEffect removes the top of the execution stack.
func (tc *TrackingContext) popEffect() {
	tc.stack = tc.stack[:len(tc.stack)-1]
}

// onStack reports whether e is currently executing on this goroutine.
func (tc *TrackingContext) onStack(e *Effect) bool {
	for _, s := range tc.stack {
		if s == e {
			return true
		}
	}
	return false
}

// Untracked runs fn without tracking signal reads as dependencies.
// For single signal reads, signal.Peek() is clearer.
func Untracked(fn func()) {
	old := setCurrentListener(nil)
	defer setCurrentListener(old)
	fn()
}

// WithListener runs fn with l installed as the active tracker.
// Used internally to set up dependency tracking during renders.
func WithListener(l Listener, fn func()) {
	old := setCurrentListener(l)
	defer setCurrentListener(old)
	fn()
}
