package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock fires a bounded number of timers instantly, advancing its own
// time by the requested duration. Once exhausted, After blocks forever.
type fakeClock struct {
	mu    sync.Mutex
	now   time.Time
	fires int
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) After(d time.Duration) <-chan time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.fires == 0 {
		return make(chan time.Time)
	}
	c.fires--
	c.now = c.now.Add(d)

	ch := make(chan time.Time, 1)
	ch <- c.now
	return ch
}

func TestNextRun(t *testing.T) {
	location, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	t.Run("LaterToday", func(t *testing.T) {
		now := time.Date(2026, 3, 14, 21, 30, 0, 0, location)
		next := NextRun(now, 22, 0)
		assert.Equal(t, time.Date(2026, 3, 14, 22, 0, 0, 0, location), next)
	})

	t.Run("AlreadyPassedToday", func(t *testing.T) {
		now := time.Date(2026, 3, 14, 22, 30, 0, 0, location)
		next := NextRun(now, 22, 0)
		assert.Equal(t, time.Date(2026, 3, 15, 22, 0, 0, 0, location), next)
	})

	t.Run("ExactlyNow", func(t *testing.T) {
		now := time.Date(2026, 3, 14, 22, 0, 0, 0, location)
		next := NextRun(now, 22, 0)
		assert.Equal(t, time.Date(2026, 3, 15, 22, 0, 0, 0, location), next)
	})
}

func TestAddRejectsInvalidTime(t *testing.T) {
	sched := New(SystemClock(), time.UTC)
	assert.Error(t, sched.Add("bad", "25:99", func(ctx context.Context) {}))
	assert.Error(t, sched.Add("bad", "evening", func(ctx context.Context) {}))
	assert.NoError(t, sched.Add("good", "22:00", func(ctx context.Context) {}))
}

func TestSchedulerFiresJobAtConfiguredTime(t *testing.T) {
	clock := &fakeClock{
		now:   time.Date(2026, 3, 14, 21, 30, 0, 0, time.UTC),
		fires: 1,
	}

	fired := make(chan time.Time, 1)
	sched := New(clock, time.UTC)
	require.NoError(t, sched.Add("test-job", "22:00", func(ctx context.Context) {
		fired <- clock.Now()
	}))

	ctx, cancel := context.WithCancel(context.Background())
	sched.Start(ctx)

	select {
	case at := <-fired:
		assert.Equal(t, time.Date(2026, 3, 14, 22, 0, 0, 0, time.UTC), at)
	case <-time.After(2 * time.Second):
		t.Fatal("job did not fire")
	}

	cancel()
	sched.Wait()
}

func TestSchedulerStopsOnCancel(t *testing.T) {
	clock := &fakeClock{
		now:   time.Date(2026, 3, 14, 21, 30, 0, 0, time.UTC),
		fires: 0,
	}

	sched := New(clock, time.UTC)
	require.NoError(t, sched.Add("test-job", "22:00", func(ctx context.Context) {
		t.Error("job should not fire")
	}))

	ctx, cancel := context.WithCancel(context.Background())
	sched.Start(ctx)
	cancel()
	sched.Wait()
}
