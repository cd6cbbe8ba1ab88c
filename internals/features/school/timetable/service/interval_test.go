// file: internals/features/school/timetable/service/interval_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustClock(t *testing.T, s string) Clock {
	t.Helper()
	c, err := ParseClockString(s)
	require.NoError(t, err)
	return c
}

func TestParseClockString(t *testing.T) {
	tests := []struct {
		in      string
		want    Clock
		wantErr bool
	}{
		{in: "00:00", want: 0},
		{in: "07:30", want: 7*60 + 30},
		{in: "13:05:45", want: 13*60 + 5}, // detik dibuang
		{in: "23:59", want: 23*60 + 59},
		{in: " 08:00 ", want: 8 * 60},
		{in: "24:00", wantErr: true},
		{in: "7.30", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseClockString(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestClockString(t *testing.T) {
	assert.Equal(t, "07:30", Clock(7*60+30).String())
	assert.Equal(t, "00:00", Clock(0).String())
	assert.Equal(t, "23:59", Clock(23*60+59).String())
}

func TestClockToTimeRoundTrip(t *testing.T) {
	c := Clock(9*60 + 45)
	assert.Equal(t, c, ClockFromTime(c.ToTime()))
}

func TestTimeRangeValid(t *testing.T) {
	assert.True(t, TimeRange{Start: 60, End: 120}.Valid())
	assert.False(t, TimeRange{Start: 60, End: 60}.Valid(), "range kosong tidak valid")
	assert.False(t, TimeRange{Start: 120, End: 60}.Valid())
}

func TestTimeRangeOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b TimeRange
		want bool
	}{
		{
			name: "identik",
			a:    TimeRange{Start: 480, End: 540},
			b:    TimeRange{Start: 480, End: 540},
			want: true,
		},
		{
			name: "overlap sebagian",
			a:    TimeRange{Start: 480, End: 540},
			b:    TimeRange{Start: 510, End: 570},
			want: true,
		},
		{
			name: "b di dalam a",
			a:    TimeRange{Start: 480, End: 600},
			b:    TimeRange{Start: 500, End: 520},
			want: true,
		},
		{
			name: "bersentuhan di ujung tidak overlap",
			a:    TimeRange{Start: 480, End: 540},
			b:    TimeRange{Start: 540, End: 600},
			want: false,
		},
		{
			name: "terpisah",
			a:    TimeRange{Start: 480, End: 540},
			b:    TimeRange{Start: 600, End: 660},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			// overlap harus simetris
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestTimeRangeContains(t *testing.T) {
	r := TimeRange{Start: 480, End: 540}
	assert.True(t, r.Contains(480), "start inklusif")
	assert.True(t, r.Contains(539))
	assert.False(t, r.Contains(540), "end eksklusif")
	assert.False(t, r.Contains(479))
}

func TestDayName(t *testing.T) {
	assert.Equal(t, "Senin", DayName(1))
	assert.Equal(t, "Jumat", DayName(5))
	assert.Equal(t, "Minggu", DayName(7))
	assert.Equal(t, "", DayName(0))
	assert.Equal(t, "", DayName(8))
}
