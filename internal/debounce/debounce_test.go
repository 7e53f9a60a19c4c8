package debounce

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const window = 30 * time.Millisecond

func TestTimer_FiresOnce(t *testing.T) {
	var tm Timer
	assert.Equal(t, StateIdle, tm.State())

	var calls atomic.Int32
	tm.Schedule(window, func() { calls.Add(1) })
	assert.Equal(t, StateScheduled, tm.State())

	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, StateFired, tm.State())
	assert.False(t, tm.Cancel(), "cancel after fire must be a no-op")
}

func TestTimer_CancelPreventsExecution(t *testing.T) {
	var tm Timer
	var calls atomic.Int32

	tm.Schedule(window, func() { calls.Add(1) })
	require.True(t, tm.Cancel())
	assert.Equal(t, StateCanceled, tm.State())

	time.Sleep(3 * window)
	assert.Equal(t, int32(0), calls.Load())
}

func TestTimer_RescheduleReplaces(t *testing.T) {
	var tm Timer
	var mu sync.Mutex
	var got []string

	record := func(v string) func() {
		return func() {
			mu.Lock()
			got = append(got, v)
			mu.Unlock()
		}
	}

	tm.Schedule(window, record("a"))
	tm.Schedule(window, record("b"))

	time.Sleep(4 * window)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"b"}, got)
}

func TestTimer_ZeroDurationRunsImmediately(t *testing.T) {
	var tm Timer
	ran := false
	tm.Schedule(0, func() { ran = true })
	assert.True(t, ran)
	assert.Equal(t, StateFired, tm.State())
}

func TestDebouncer_ThreeKeystrokesOneCall(t *testing.T) {
	d := New(window)
	defer d.Stop()

	var mu sync.Mutex
	var calls []string
	search := func(q string) func() {
		return func() {
			mu.Lock()
			calls = append(calls, q)
			mu.Unlock()
		}
	}

	d.Trigger(search("a"))
	d.Trigger(search("an"))
	d.Trigger(search("ann"))
	assert.True(t, d.Pending())

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(calls) == 1
	}, time.Second, 5*time.Millisecond)

	time.Sleep(2 * window)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"ann"}, calls)
	assert.False(t, d.Pending())
}

func TestDebouncer_StopCancelsPendingAndRejectsNew(t *testing.T) {
	d := New(window)
	var calls atomic.Int32

	d.Trigger(func() { calls.Add(1) })
	d.Stop()
	assert.False(t, d.Trigger(func() { calls.Add(1) }))

	time.Sleep(3 * window)
	assert.Equal(t, int32(0), calls.Load())
}

func TestDebouncer_ImmediateInterval(t *testing.T) {
	d := New(0)
	var calls int
	d.Trigger(func() { calls++ })
	d.Trigger(func() { calls++ })
	assert.Equal(t, 2, calls)
}

func TestSequence(t *testing.T) {
	var s Sequence
	assert.False(t, s.IsLatest(0))

	first := s.Next()
	assert.True(t, s.IsLatest(first))

	second := s.Next()
	assert.False(t, s.IsLatest(first))
	assert.True(t, s.IsLatest(second))

	s.Invalidate()
	assert.False(t, s.IsLatest(second))
}
