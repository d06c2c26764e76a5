package rate_limiter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetVisitor_ReusesLimiterPerIP(t *testing.T) {
	l := New(1, 3)

	a := l.GetVisitor("10.0.0.1")
	b := l.GetVisitor("10.0.0.1")
	c := l.GetVisitor("10.0.0.2")

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
	assert.Equal(t, 2, l.Len())
}

func TestAllow_HonoursBurst(t *testing.T) {
	l := New(0.001, 2)

	assert.True(t, l.Allow("ip"))
	assert.True(t, l.Allow("ip"))
	assert.False(t, l.Allow("ip"), "third request should exceed the burst")
	assert.True(t, l.Allow("other"), "buckets are per client")
}

func TestCleanup_DropsIdleVisitors(t *testing.T) {
	l := New(1, 1)
	current := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return current }

	l.GetVisitor("stale")
	current = current.Add(4 * time.Minute)
	l.GetVisitor("fresh")
	current = current.Add(2 * time.Minute)

	assert.Equal(t, 1, l.Cleanup())
	assert.Equal(t, 1, l.Len())

	l.Reset()
	assert.Equal(t, 0, l.Len())
}

func TestStartCleanupLoop_StopsOnCancel(t *testing.T) {
	l := New(1, 1)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		l.StartCleanupLoop(ctx, time.Millisecond)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("cleanup loop did not stop")
	}
}
