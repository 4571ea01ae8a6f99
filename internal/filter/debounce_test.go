package filter

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitFor(t *testing.T, ch <-chan string) string {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(time.Second):
		require.FailNow(t, "debounced callback did not fire")
		return ""
	}
}

func assertQuiet(t *testing.T, ch <-chan string) {
	t.Helper()
	select {
	case v := <-ch:
		assert.Failf(t, "unexpected callback", "got %q", v)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestDebouncer(t *testing.T) {
	t.Run("rapid keystrokes apply only the last term", func(t *testing.T) {
		clock := clockwork.NewFakeClock()
		d := NewDebouncer(clock, DefaultDebounce)
		fired := make(chan string, 4)

		for _, term := range []string{"a", "ab", "abc"} {
			d.Trigger(func() { fired <- term })
			clock.Advance(100 * time.Millisecond)
		}
		assertQuiet(t, fired)
		assert.True(t, d.Pending())

		clock.Advance(200 * time.Millisecond)
		assert.Equal(t, "abc", waitFor(t, fired))
		assertQuiet(t, fired)
		assert.False(t, d.Pending())
	})

	t.Run("fires once after the quiet period", func(t *testing.T) {
		clock := clockwork.NewFakeClock()
		d := NewDebouncer(clock, DefaultDebounce)
		fired := make(chan string, 1)

		d.Trigger(func() { fired <- "x" })
		clock.Advance(299 * time.Millisecond)
		assertQuiet(t, fired)

		clock.Advance(time.Millisecond)
		assert.Equal(t, "x", waitFor(t, fired))
	})

	t.Run("cancel drops the pending callback", func(t *testing.T) {
		clock := clockwork.NewFakeClock()
		d := NewDebouncer(clock, DefaultDebounce)
		fired := make(chan string, 1)

		d.Trigger(func() { fired <- "dropped" })
		d.Cancel()
		assert.False(t, d.Pending())

		clock.Advance(time.Second)
		assertQuiet(t, fired)
	})

	t.Run("defaults", func(t *testing.T) {
		d := NewDebouncer(nil, 0)
		assert.Equal(t, DefaultDebounce, d.Delay())
	})
}
