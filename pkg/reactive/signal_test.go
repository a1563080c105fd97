package reactive_test

import (
	"testing"

	"github.com/lucent-dev/lucent/pkg/reactive"
	"github.com/stretchr/testify/assert"
)

func TestSignalGetSet(t *testing.T) {
	s := reactive.NewSignal(1)
	assert.Equal(t, 1, s.Get())
	s.Set(2)
	assert.Equal(t, 2, s.Get())
}

func TestSignalUpdate(t *testing.T) {
	s := reactive.NewSignal(10)
	s.Update(func(v int) int { return v + 5 })
	assert.Equal(t, 15, s.Get())
}

// setting an equal value must not notify subscribers
func TestSignalSetEqualValueIsNoop(t *testing.T) {
	s := reactive.NewSignal("a")
	runs := 0
	reactive.NewEffect(func() reactive.Cleanup {
		s.Get()
		runs++
		return nil
	})
	assert.Equal(t, 1, runs)

	s.Set("b")
	assert.Equal(t, 2, runs)
	s.Set("b")
	s.Set("b")
	assert.Equal(t, 2, runs, "equal writes should coalesce to zero notifications")
}

func TestSignalWithEquals(t *testing.T) {
	type point struct{ X, Y int }
	// consider only X for equality
	s := reactive.NewSignal(point{1, 1}).WithEquals(func(a, b point) bool {
		return a.X == b.X
	})
	runs := 0
	reactive.NewEffect(func() reactive.Cleanup {
		s.Get()
		runs++
		return nil
	})

	s.Set(point{1, 99})
	assert.Equal(t, 1, runs, "custom equality should suppress the write")
	s.Set(point{2, 99})
	assert.Equal(t, 2, runs)
}

func TestSignalPeekDoesNotSubscribe(t *testing.T) {
	s := reactive.NewSignal(1)
	runs := 0
	reactive.NewEffect(func() reactive.Cleanup {
		s.Peek()
		runs++
		return nil
	})

	s.Set(2)
	assert.Equal(t, 1, runs)
}

func TestUntrackedReadDoesNotSubscribe(t *testing.T) {
	s := reactive.NewSignal(1)
	runs := 0
	reactive.NewEffect(func() reactive.Cleanup {
		reactive.Untracked(func() {
			s.Get()
		})
		runs++
		return nil
	})

	s.Set(2)
	assert.Equal(t, 1, runs)
}

func TestSignalDeepEqualFallback(t *testing.T) {
	s := reactive.NewSignal([]int{1, 2})
	runs := 0
	reactive.NewEffect(func() reactive.Cleanup {
		s.Get()
		runs++
		return nil
	})

	s.Set([]int{1, 2})
	assert.Equal(t, 1, runs, "deep-equal slice write should not notify")
	s.Set([]int{1, 3})
	assert.Equal(t, 2, runs)
}
