package reactive

import "sort"

// Batch groups multiple signal updates into a single notification
// phase. Affected effects are collected, deduplicated, and run once
// when the outermost batch completes.
//
//	Batch(func() {
//	    first.Set("John")
//	    last.Set("Doe")
//	})
//	// dependents run once with both changes visible
//
// Batches nest; only the outermost completion flushes.
func Batch(fn func()) {
	tc := getTrackingContext()
	tc.batchDepth++

	defer func() {
		tc.batchDepth--
		if tc.batchDepth == 0 {
			flush(tc)
		}
	}()

	fn()
}

// flush drains the pending queue and runs each live effect, ordered by
// priority (higher first, stable in enqueue order among equals).
//
// The queue is snapshotted and cleared before anything runs, so effects
// that trigger further notifications enqueue into a fresh queue; those
// run synchronously (batch depth is already zero) or in the next flush.
// Nothing is lost and nothing runs twice per logical notification.
func flush(tc *TrackingContext) {
	// A panicking effect aborts only itself. The rest of the queue
	// still runs; the first panic resurfaces after the drain.
	var failure any

	for len(tc.pending) > 0 {
		queue := tc.pending
		tc.pending = nil

		sort.SliceStable(queue, func(i, j int) bool {
			return queue[i].priority > queue[j].priority
		})

		for _, e := range queue {
			// An effect that already ran mid-flush (a synchronous
			// notification from an earlier entry) has its queued flag
			// cleared and is skipped.
			if !e.queued.CompareAndSwap(true, false) {
				continue
			}
			if e.disposed.Load() {
				continue
			}
			func() {
				defer func() {
					if r := recover(); r != nil && failure == nil {
						failure = r
					}
				}()
				e.run()
			}()
		}
	}

	if failure != nil {
		panic(failure)
	}
}
