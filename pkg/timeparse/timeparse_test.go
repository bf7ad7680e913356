package timeparse_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rowkit/pkg/timeparse"
)

func TestParseISO8601(t *testing.T) {
	t.Run("parses UTC designator", func(t *testing.T) {
		got, err := timeparse.ParseISO8601("2023-01-15T10:30:00Z")
		require.NoError(t, err)
		assert.Equal(t, time.UTC, got.Location())
		assert.True(t, got.Equal(time.Date(2023, 1, 15, 10, 30, 0, 0, time.UTC)))
		assert.Equal(t, "2023-01-15 10:30:00 +0000 UTC", got.String())
	})

	t.Run("parses positive offset with colon", func(t *testing.T) {
		got, err := timeparse.ParseISO8601("2023-01-15T10:30:00+05:30")
		require.NoError(t, err)

		name, offset := got.Zone()
		assert.Equal(t, "+0530", name)
		assert.Equal(t, 5*3600+30*60, offset)
		assert.Equal(t, "2023-01-15T10:30:00+05:30", got.Format(time.RFC3339))
	})

	t.Run("parses negative offset without colon", func(t *testing.T) {
		got, err := timeparse.ParseISO8601("2023-01-15 10:30-0800")
		require.NoError(t, err)

		name, offset := got.Zone()
		assert.Equal(t, "-0800", name)
		assert.Equal(t, -8*3600, offset)
	})

	t.Run("parses hour-only offset", func(t *testing.T) {
		got, err := timeparse.ParseISO8601("2023-01-15T10:30+02")
		require.NoError(t, err)

		_, offset := got.Zone()
		assert.Equal(t, 2*3600, offset)
	})

	t.Run("returns naive time without zone", func(t *testing.T) {
		got, err := timeparse.ParseISO8601("2023-01-15 10:30")
		require.NoError(t, err)
		assert.True(t, timeparse.IsNaive(got))
		assert.Equal(t, 10, got.Hour())
		assert.Equal(t, 0, got.Second())
	})

	t.Run("pads and truncates fractional seconds", func(t *testing.T) {
		got, err := timeparse.ParseISO8601("2023-01-15T10:30:05.5Z")
		require.NoError(t, err)
		assert.Equal(t, 500000*int(time.Microsecond), got.Nanosecond())

		got, err = timeparse.ParseISO8601("2023-01-15T10:30:05.123456789Z")
		require.NoError(t, err)
		assert.Equal(t, 123456*int(time.Microsecond), got.Nanosecond())
	})

	t.Run("accepts single digit components", func(t *testing.T) {
		got, err := timeparse.ParseISO8601("2023-1-5T9:3")
		require.NoError(t, err)
		assert.Equal(t, time.January, got.Month())
		assert.Equal(t, 5, got.Day())
		assert.Equal(t, 9, got.Hour())
		assert.Equal(t, 3, got.Minute())
	})

	t.Run("rejects malformed strings", func(t *testing.T) {
		for _, in := range []string{"", "2023-01-15", "15/01/2023 10:30", "2023-01-15T10:30:00Zjunk", "not a date"} {
			_, err := timeparse.ParseISO8601(in)
			assert.ErrorIs(t, err, timeparse.ErrNotISO8601, in)
		}
	})

	t.Run("rejects out of range components", func(t *testing.T) {
		for _, in := range []string{"2023-13-01T00:00", "2023-02-30T00:00", "2023-01-01T24:00", "2023-01-01T10:60", "2023-01-01T10:00+24:00"} {
			_, err := timeparse.ParseISO8601(in)
			assert.ErrorIs(t, err, timeparse.ErrOutOfRange, in)
		}
	})
}

func TestParseRFC822(t *testing.T) {
	t.Run("parses mail date", func(t *testing.T) {
		got, err := timeparse.ParseRFC822("Sun, 15 Jan 2023 10:30:00 +0000")
		require.NoError(t, err)
		assert.True(t, got.Equal(time.Date(2023, 1, 15, 10, 30, 0, 0, time.UTC)))
	})

	t.Run("keeps numeric offset", func(t *testing.T) {
		got, err := timeparse.ParseRFC822("15 Jan 2023 10:30:00 -0500")
		require.NoError(t, err)
		_, offset := got.Zone()
		assert.Equal(t, -5*3600, offset)
	})

	t.Run("zone does not depend on the host", func(t *testing.T) {
		got, err := timeparse.ParseRFC822("Sun, 15 Jan 2023 10:30:00 +0100")
		require.NoError(t, err)
		assert.NotSame(t, time.Local, got.Location())
		name, offset := got.Zone()
		assert.Equal(t, "+0100", name)
		assert.Equal(t, 3600, offset)

		got, err = timeparse.ParseRFC822("Sun, 15 Jan 2023 10:30:00 GMT")
		require.NoError(t, err)
		assert.NotSame(t, time.Local, got.Location())
		assert.False(t, timeparse.IsNaive(got))
	})

	t.Run("unknown zone is naive", func(t *testing.T) {
		got, err := timeparse.ParseRFC822("Sun, 15 Jan 2023 10:30:00 -0000")
		require.NoError(t, err)
		assert.True(t, timeparse.IsNaive(got))
		assert.True(t, got.Equal(time.Date(2023, 1, 15, 10, 30, 0, 0, time.UTC)), got)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := timeparse.ParseRFC822("yesterday")
		assert.Error(t, err)
	})
}

func TestFixedZone(t *testing.T) {
	tests := []struct {
		name       string
		loc        *time.Location
		wantName   string
		wantOffset int
	}{
		{"positive minutes", timeparse.FixedZone(330), "+0530", 330 * 60},
		{"negative minutes", timeparse.FixedZone(-480), "-0800", -480 * 60},
		{"zero", timeparse.FixedZone(0), "+0000", 0},
		{"float minutes", timeparse.FixedZone(90.5), "+0130", 5430},
		{"duration", timeparse.FixedZone(2*time.Hour + 30*time.Second), "+0200", 7200},
		{"negative duration floors", timeparse.FixedZone(-90 * time.Second), "-0002", -120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, offset := time.Date(2023, 1, 1, 0, 0, 0, 0, tt.loc).Zone()
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}

func TestStrptimeLayout(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{"%Y-%m-%d", "2006-1-2"},
		{"%d/%m/%y %H:%M", "2/1/06 15:4"},
		{"%Y-%m-%dT%H:%M:%S.%f", "2006-1-2T15:4:5"},
		{"%a, %d %b %Y %I:%M %p", "Mon, 2 Jan 2006 3:4 PM"},
		{"%Y-%m-%d %H:%M:%S %z", "2006-1-2 15:4:5 -0700"},
		{"100%%", "100%"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			got, err := timeparse.StrptimeLayout(tt.format)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("rejects unknown directive", func(t *testing.T) {
		_, err := timeparse.StrptimeLayout("%Y-%Q")
		assert.ErrorIs(t, err, timeparse.ErrUnsupportedDirective)
	})

	t.Run("rejects trailing percent", func(t *testing.T) {
		_, err := timeparse.StrptimeLayout("%Y%")
		assert.ErrorIs(t, err, timeparse.ErrUnsupportedDirective)
	})
}

func TestParseLayout(t *testing.T) {
	t.Run("strptime format", func(t *testing.T) {
		got, err := timeparse.ParseLayout("15/01/2023", "%d/%m/%Y")
		require.NoError(t, err)
		assert.True(t, timeparse.IsNaive(got))
		assert.Equal(t, 2023, got.Year())
		assert.Equal(t, 15, got.Day())
	})

	t.Run("unpadded day and month", func(t *testing.T) {
		got, err := timeparse.ParseLayout("5.1.2023", "%d.%m.%Y")
		require.NoError(t, err)
		assert.True(t, timeparse.IsNaive(got))
		assert.True(t, got.Equal(time.Date(2023, 1, 5, 0, 0, 0, 0, time.UTC)), got)

		got, err = timeparse.ParseLayout("05.01.2023", "%d.%m.%Y")
		require.NoError(t, err)
		assert.Equal(t, 5, got.Day())
	})

	t.Run("unpadded clock", func(t *testing.T) {
		got, err := timeparse.ParseLayout("2023-01-15 3:7:9 PM", "%Y-%m-%d %I:%M:%S %p")
		require.NoError(t, err)
		assert.Equal(t, 15, got.Hour())
		assert.Equal(t, 7, got.Minute())
		assert.Equal(t, 9, got.Second())
	})

	t.Run("compact digits", func(t *testing.T) {
		got, err := timeparse.ParseLayout("20230105", "%Y%m%d")
		require.NoError(t, err)
		assert.Equal(t, time.January, got.Month())
		assert.Equal(t, 5, got.Day())
	})

	t.Run("fractional seconds", func(t *testing.T) {
		got, err := timeparse.ParseLayout("2023-01-15 10:30:05.25", "%Y-%m-%d %H:%M:%S.%f")
		require.NoError(t, err)
		assert.Equal(t, 250*int(time.Millisecond), got.Nanosecond())
	})

	t.Run("go layout", func(t *testing.T) {
		got, err := timeparse.ParseLayout("2023-01-15", time.DateOnly)
		require.NoError(t, err)
		assert.Equal(t, time.January, got.Month())
	})

	t.Run("zone directive keeps offset", func(t *testing.T) {
		got, err := timeparse.ParseLayout("2023-01-15 10:30 +0200", "%Y-%m-%d %H:%M %z")
		require.NoError(t, err)
		assert.False(t, timeparse.IsNaive(got))
		_, offset := got.Zone()
		assert.Equal(t, 7200, offset)
	})

	t.Run("mismatch fails", func(t *testing.T) {
		_, err := timeparse.ParseLayout("2023-01-15", "%d/%m/%Y")
		assert.Error(t, err)
	})
}
