// Package reactive implements Lucent's fine-grained reactive core:
// signals (mutable reactive cells), computeds (derived, memoized
// values), effects (reactive side effects with parent/child ownership),
// and a batching scheduler with priority ordering.
//
// Reading a signal inside an effect subscribes the effect to that
// signal; writing the signal re-runs the effect. Effects created during
// another effect's run are owned by it: they are disposed before every
// re-run of the parent and recreated fresh, and disposing the parent
// disposes them permanently.
//
//	count := reactive.NewSignal(0)
//	e := reactive.NewEffect(func() reactive.Cleanup {
//	    fmt.Println("count is", count.Get())
//	    return nil
//	})
//	count.Set(1) // effect re-runs synchronously
//	e.Dispose()  // no further runs
package reactive
