//go:build unit

package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStartOfMonth(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)

	tests := []struct {
		name string
		in   time.Time
		loc  *time.Location
		want time.Time
	}{
		{
			name: "mid month in UTC",
			in:   time.Date(2025, 7, 17, 13, 4, 5, 0, time.UTC),
			loc:  time.UTC,
			want: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "month boundary depends on business zone",
			in:   time.Date(2025, 7, 31, 20, 0, 0, 0, time.UTC),
			loc:  tokyo,
			want: time.Date(2025, 8, 1, 0, 0, 0, 0, tokyo),
		},
		{
			name: "nil location falls back to UTC",
			in:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			loc:  nil,
			want: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StartOfMonth(tt.in, tt.loc)
			assert.True(t, tt.want.Equal(got), "want %s got %s", tt.want, got)
		})
	}
}

func TestMockClock(t *testing.T) {
	start := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)
	c := NewMockClock(start)

	assert.Equal(t, start, c.Now())

	c.Add(48 * time.Hour)
	assert.Equal(t, start.Add(48*time.Hour), c.Now())

	c.Set(start)
	assert.Equal(t, start, c.Now())
}
