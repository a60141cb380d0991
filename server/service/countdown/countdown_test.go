package countdown

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lyrebird-labs/keepsake/internal/clock"
)

func TestTimeRemaining(t *testing.T) {
	t.Run("passed target is all zero", func(t *testing.T) {
		now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
		for _, target := range []time.Time{
			now,
			now.Add(-time.Second),
			now.AddDate(-1, 0, 0),
		} {
			assert.Equal(t, Remaining{}, TimeRemaining(target, now))
		}
	})

	t.Run("whole unit breakdown", func(t *testing.T) {
		now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		target := time.Date(2024, 1, 2, 1, 2, 3, 0, time.UTC)
		assert.Equal(t, Remaining{Days: 1, Hours: 1, Minutes: 2, Seconds: 3}, TimeRemaining(target, now))
	})

	t.Run("less than a day", func(t *testing.T) {
		now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
		target := time.Date(2024, 1, 1, 23, 30, 15, 0, time.UTC)
		assert.Equal(t, Remaining{Days: 0, Hours: 13, Minutes: 30, Seconds: 15}, TimeRemaining(target, now))
	})

	t.Run("month boundary", func(t *testing.T) {
		now := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
		target := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		// 2024 is a leap year, so January 31 to March 1 spans 30 days.
		assert.Equal(t, Remaining{Days: 30}, TimeRemaining(target, now))
	})

	t.Run("daylight saving spring forward", func(t *testing.T) {
		loc, err := time.LoadLocation("America/New_York")
		require.NoError(t, err)
		// The night of March 10 2024 is only 23 hours long. Calendar
		// day counting still reports exactly one day.
		now := time.Date(2024, 3, 10, 0, 0, 0, 0, loc)
		target := time.Date(2024, 3, 11, 0, 0, 0, 0, loc)
		assert.Equal(t, Remaining{Days: 1}, TimeRemaining(target, now))
	})
}

func TestEngine(t *testing.T) {
	t.Run("ticks while subscribed", func(t *testing.T) {
		manual := clock.NewManual(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
		engine := NewEngine(manual)
		engine.Start(context.Background())

		ch, detach := engine.Subscribe()
		defer detach()

		// Let the tick loop arm its timer before advancing.
		waitForTimer(t, manual)
		manual.Advance(time.Second)

		select {
		case <-ch:
		case <-time.After(time.Second):
			t.Fatal("expected a tick")
		}
	})

	t.Run("stops after last detach", func(t *testing.T) {
		manual := clock.NewManual(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
		engine := NewEngine(manual)
		engine.Start(context.Background())

		ch, detach := engine.Subscribe()
		waitForTimer(t, manual)
		detach()
		detach() // safe to call twice

		manual.Advance(2 * time.Second)
		select {
		case <-ch:
			t.Fatal("tick after detach")
		case <-time.After(50 * time.Millisecond):
		}
	})
}

// waitForTimer polls until the manual clock has a pending timer, i.e.
// the engine goroutine reached its select.
func waitForTimer(t *testing.T, manual *clock.Manual) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if manual.PendingTimers() > 0 {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("engine never armed its timer")
}
