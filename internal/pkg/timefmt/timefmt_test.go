package timefmt

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUTC(t *testing.T, now time.Time) *Formatter {
	t.Helper()
	f, err := New("UTC", clockwork.NewFakeClockAt(now))
	require.NoError(t, err)
	return f
}

func TestFormatter_Range(t *testing.T) {
	f := newUTC(t, time.Now())
	start := time.Date(2024, 1, 15, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		end  *time.Time
		want string
	}{
		{name: "ongoing", end: nil, want: "15 Jan 2024, 3:00 pm - Ongoing"},
		{name: "same day", end: ptr(time.Date(2024, 1, 15, 17, 30, 0, 0, time.UTC)), want: "15 Jan 2024, 3:00 pm - 5:30 pm"},
		{name: "spans days", end: ptr(time.Date(2024, 1, 16, 9, 5, 0, 0, time.UTC)), want: "15 Jan 2024, 3:00 pm - 16 Jan 2024, 9:05 am"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Range(start, tt.end))
		})
	}
}

func TestFormatter_Zone(t *testing.T) {
	f, err := New(DefaultZone, clockwork.NewFakeClock())
	require.NoError(t, err)

	// 02:00 UTC on 15 Jan is 15:00 NZDT.
	at := time.Date(2024, 1, 15, 2, 0, 0, 0, time.UTC)
	assert.Equal(t, "15 Jan 2024 at 3:00 pm", f.DateTime(at))
}

func TestFormatter_UnknownZone(t *testing.T) {
	f, err := New("Nowhere/Special", nil)
	assert.Error(t, err)
	require.NotNil(t, f)
	assert.Equal(t, time.UTC, f.Location())
}

func TestFormatter_Relative(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	f := newUTC(t, now)

	tests := []struct {
		at   time.Time
		want string
	}{
		{now.Add(-10 * time.Second), "just now"},
		{now.Add(-1 * time.Minute), "1 minute ago"},
		{now.Add(-3 * time.Hour), "3 hours ago"},
		{now.Add(-49 * time.Hour), "2 days ago"},
		{now.Add(20 * time.Second), "in a moment"},
		{now.Add(30 * time.Minute), "in 30 minutes"},
		{now.Add(24 * time.Hour), "in 1 day"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Relative(tt.at))
		})
	}
}

func ptr(t time.Time) *time.Time { return &t }
