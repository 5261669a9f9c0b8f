package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC)

func waitForTickers(t *testing.T, clock *clockwork.FakeClock, n int) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, clock.BlockUntilContext(ctx, n))
}

func receive(t *testing.T, ch <-chan time.Time) time.Time {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(2 * time.Second):
		t.Fatal("callback was not invoked")
		return time.Time{}
	}
}

func TestEveryInvokesCallbackOnEachTick(t *testing.T) {
	clock := clockwork.NewFakeClockAt(epoch)
	calls := make(chan time.Time, 4)

	task := Every(clock, time.Second, func(now time.Time) { calls <- now })
	defer task.Stop()

	waitForTickers(t, clock, 1)

	clock.Advance(time.Second)
	assert.Equal(t, epoch.Add(time.Second), receive(t, calls))

	clock.Advance(time.Second)
	assert.Equal(t, epoch.Add(2*time.Second), receive(t, calls))
}

func TestStopPreventsFurtherCallbacks(t *testing.T) {
	clock := clockwork.NewFakeClockAt(epoch)
	calls := make(chan time.Time, 4)

	task := Every(clock, time.Second, func(now time.Time) { calls <- now })
	waitForTickers(t, clock, 1)

	task.Stop()
	clock.Advance(5 * time.Second)

	select {
	case <-calls:
		t.Fatal("callback fired after Stop")
	case <-time.After(50 * time.Millisecond):
	}

	select {
	case <-task.Done():
	default:
		t.Fatal("task goroutine still running after Stop")
	}
}

func TestStopIsIdempotent(t *testing.T) {
	clock := clockwork.NewFakeClockAt(epoch)
	task := Every(clock, time.Second, func(time.Time) {})

	task.Stop()
	assert.NotPanics(t, task.Stop)
}

func TestGroupStopsAllTasks(t *testing.T) {
	clock := clockwork.NewFakeClockAt(epoch)
	var g Group

	first := Every(clock, time.Second, func(time.Time) {})
	second := Every(clock, time.Second, func(time.Time) {})
	g.Add(first)
	g.Add(second)
	assert.Equal(t, 2, g.Len())

	g.Stop()
	assert.Equal(t, 0, g.Len())
	for _, task := range []*Task{first, second} {
		select {
		case <-task.Done():
		default:
			t.Fatal("task still running after group stop")
		}
	}

	late := Every(clock, time.Second, func(time.Time) {})
	g.Add(late)
	select {
	case <-late.Done():
	default:
		t.Fatal("task added to a stopped group kept running")
	}
	assert.NotPanics(t, g.Stop)
}
