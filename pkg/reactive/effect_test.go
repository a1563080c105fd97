package reactive_test

import (
	"testing"

	"github.com/lucent-dev/lucent/pkg/reactive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// updating any dependency causes exactly one synchronous re-run with
// the post-update values visible
func TestEffectConvergence(t *testing.T) {
	a := reactive.NewSignal(1)
	b := reactive.NewSignal(2)

	var seen []int
	reactive.NewEffect(func() reactive.Cleanup {
		seen = append(seen, a.Get()+b.Get())
		return nil
	})
	require.Equal(t, []int{3}, seen)

	a.Set(10)
	assert.Equal(t, []int{3, 12}, seen)
	b.Set(20)
	assert.Equal(t, []int{3, 12, 30}, seen)
}

func TestEffectDisposalFinality(t *testing.T) {
	s := reactive.NewSignal(0)
	runs := 0
	e := reactive.NewEffect(func() reactive.Cleanup {
		s.Get()
		runs++
		return nil
	})

	e.Dispose()
	s.Set(1)
	s.Set(2)
	assert.Equal(t, 1, runs, "disposed effect must never run again")
}

func TestEffectCleanupRunsBeforeRerunAndOnDispose(t *testing.T) {
	s := reactive.NewSignal(0)
	var events []string
	e := reactive.NewEffect(func() reactive.Cleanup {
		s.Get()
		events = append(events, "run")
		return func() {
			events = append(events, "cleanup")
		}
	})

	s.Set(1)
	e.Dispose()
	assert.Equal(t, []string{"run", "cleanup", "run", "cleanup"}, events)
}

// a parent that creates one child per run leaves exactly one live child
// after re-running
func TestChildEffectRecreation(t *testing.T) {
	parentDep := reactive.NewSignal(0)
	childDep := reactive.NewSignal(0)

	childRuns := 0
	var children []*reactive.Effect

	reactive.NewEffect(func() reactive.Cleanup {
		parentDep.Get()
		child := reactive.NewEffect(func() reactive.Cleanup {
			childDep.Get()
			childRuns++
			return nil
		})
		children = append(children, child)
		return nil
	})

	parentDep.Set(1)
	parentDep.Set(2)

	require.Len(t, children, 3)
	assert.True(t, children[0].IsDisposed())
	assert.True(t, children[1].IsDisposed())
	assert.False(t, children[2].IsDisposed())

	// only the latest child reacts
	childRuns = 0
	childDep.Set(1)
	assert.Equal(t, 1, childRuns)
}

func TestParentDisposeDisposesChildren(t *testing.T) {
	dep := reactive.NewSignal(0)
	var child *reactive.Effect

	parent := reactive.NewEffect(func() reactive.Cleanup {
		child = reactive.NewEffect(func() reactive.Cleanup {
			dep.Get()
			return nil
		})
		return nil
	})

	parent.Dispose()
	assert.True(t, child.IsDisposed())
}

// re-tracking: a dependency read only on some runs stops notifying when
// untracked by the latest run
func TestEffectRetracksDependenciesEachRun(t *testing.T) {
	gate := reactive.NewSignal(true)
	a := reactive.NewSignal("a")
	runs := 0

	reactive.NewEffect(func() reactive.Cleanup {
		runs++
		if gate.Get() {
			a.Get()
		}
		return nil
	})
	require.Equal(t, 1, runs)

	gate.Set(false)
	require.Equal(t, 2, runs)

	a.Set("b")
	assert.Equal(t, 2, runs, "a is no longer a dependency")
}

func TestEffectPanicReachesHandler(t *testing.T) {
	s := reactive.NewSignal(0)
	var handled []error

	reactive.NewEffect(func() reactive.Cleanup {
		if s.Get() > 0 {
			panic("boom")
		}
		return nil
	}, reactive.WithErrorHandler(func(err error) {
		handled = append(handled, err)
	}))

	s.Set(1)
	require.Len(t, handled, 1)
	assert.True(t, reactive.IsEffectPanic(handled[0]))
}

func TestEffectPanicWithoutHandlerPropagates(t *testing.T) {
	assert.Panics(t, func() {
		reactive.NewEffect(func() reactive.Cleanup {
			panic("boom")
		})
	})
}

// a panicking sibling must not corrupt tracking for other effects
func TestEffectPanicLeavesTrackerConsistent(t *testing.T) {
	s := reactive.NewSignal(0)

	reactive.NewEffect(func() reactive.Cleanup {
		if s.Get() > 0 {
			panic("boom")
		}
		return nil
	}, reactive.WithErrorHandler(func(error) {}))

	runs := 0
	reactive.NewEffect(func() reactive.Cleanup {
		s.Get()
		runs++
		return nil
	})

	s.Set(1)
	assert.Equal(t, 2, runs, "sibling effect unaffected by the panic")

	// tracker must be fully restored: untracked reads stay untracked
	probe := reactive.NewSignal(0)
	probe.Get()
	probe.Set(1)
}

// an unhandled panic in one subscriber must not stop the notification
// pass; later subscribers still run and the panic resurfaces afterward
func TestUnhandledEffectPanicDoesNotStarveSiblings(t *testing.T) {
	s := reactive.NewSignal(0)

	reactive.NewEffect(func() reactive.Cleanup {
		if s.Get() > 0 {
			panic("boom")
		}
		return nil
	})

	siblingRuns := 0
	reactive.NewEffect(func() reactive.Cleanup {
		s.Get()
		siblingRuns++
		return nil
	})

	var recovered any
	func() {
		defer func() { recovered = recover() }()
		s.Set(1)
	}()

	require.NotNil(t, recovered)
	err, ok := recovered.(error)
	require.True(t, ok)
	assert.True(t, reactive.IsEffectPanic(err))
	assert.Equal(t, 2, siblingRuns, "sibling saw the update despite the panic")
}

func TestCircularDependencyDetected(t *testing.T) {
	s := reactive.NewSignal(1)
	var handled []error

	reactive.NewEffect(func() reactive.Cleanup {
		// reads s and writes it back: re-enters its own frame
		s.Set(s.Get() + 1)
		return nil
	}, reactive.WithErrorHandler(func(err error) {
		handled = append(handled, err)
	}))

	require.NotEmpty(t, handled)
	assert.True(t, reactive.IsCircular(handled[0]))
}

func TestCircularDependencyWithoutHandlerPanics(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, reactive.IsCircular(err))
	}()

	s := reactive.NewSignal(1)
	reactive.NewEffect(func() reactive.Cleanup {
		s.Set(s.Get() + 1)
		return nil
	})
}
