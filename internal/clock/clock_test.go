package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManualAdvance(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewManual(start)

	assert.Equal(t, start, c.Now())
	c.Advance(time.Minute)
	assert.Equal(t, start.Add(time.Minute), c.Now())
}

func TestManualAfterFunc(t *testing.T) {
	c := NewManual(time.Unix(0, 0))

	fired := []string{}
	c.AfterFunc(2*time.Second, func() { fired = append(fired, "late") })
	c.AfterFunc(time.Second, func() { fired = append(fired, "early") })

	c.Advance(500 * time.Millisecond)
	assert.Empty(t, fired)

	// Both fire, in deadline order, even within one advance.
	c.Advance(2 * time.Second)
	assert.Equal(t, []string{"early", "late"}, fired)
}

func TestManualTimerStop(t *testing.T) {
	c := NewManual(time.Unix(0, 0))

	fired := false
	timer := c.AfterFunc(time.Second, func() { fired = true })
	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop())

	c.Advance(2 * time.Second)
	assert.False(t, fired)
	assert.Zero(t, c.PendingTimers())
}

func TestManualAfter(t *testing.T) {
	c := NewManual(time.Unix(0, 0))
	ch := c.After(time.Second)

	select {
	case <-ch:
		t.Fatal("fired early")
	default:
	}

	c.Advance(time.Second)
	select {
	case <-ch:
	default:
		t.Fatal("expected fire")
	}
}
