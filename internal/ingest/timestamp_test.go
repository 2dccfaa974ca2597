package ingest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp_MonthDayYear(t *testing.T) {
	ts, ok := ParseTimestamp("03/15/2024")
	require.True(t, ok)

	assert.Equal(t, LayoutMonthDayYear, ts.Layout)
	assert.Equal(t, 2024, ts.Year)
	assert.Equal(t, 2, ts.Month, "month is zero-based")
	assert.Equal(t, 15, ts.Day)
	assert.Zero(t, ts.Hour)
	assert.True(t, ts.Valid())
}

func TestParseTimestamp_DayMonthYearWithTime(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Timestamp
	}{
		{
			name: "date only",
			raw:  "15/03/2024 ",
			want: Timestamp{Layout: LayoutDayMonthYear, Year: 2024, Month: 2, Day: 15, invalid: true},
		},
		{
			name: "hour with minutes glued",
			raw:  "15/03/2024 08:00",
			want: Timestamp{Layout: LayoutDayMonthYear, Year: 2024, Month: 2, Day: 15, Hour: 8},
		},
		{
			name: "separate clock fields",
			raw:  "1/3/2024 14 30 5",
			want: Timestamp{Layout: LayoutDayMonthYear, Year: 2024, Month: 2, Day: 1, Hour: 14, Minute: 30, Second: 5},
		},
		{
			name: "four digit first token",
			raw:  "2024/03/15",
			want: Timestamp{Layout: LayoutDayMonthYear, Year: 15, Month: 2, Day: 2024},
		},
		{
			name: "extra tokens ignored",
			raw:  "15 03 2024 1 2 3 4",
			want: Timestamp{Layout: LayoutDayMonthYear, Year: 2024, Month: 2, Day: 15, Hour: 1, Minute: 2, Second: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseTimestamp(tt.raw)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTimestamp_UnicodeSeparators(t *testing.T) {
	want := Timestamp{Layout: LayoutDayMonthYear, Year: 2024, Month: 2, Day: 15, Hour: 8}
	tests := []struct {
		name string
		raw  string
	}{
		{"ascii space", "15/03/2024 08:00"},
		{"no-break space", "15/03/2024\u00a008:00"},
		{"narrow no-break space", "15/03/2024\u202f08:00"},
		{"vertical tab", "15/03/2024\v08:00"},
		{"ideographic space", "15/03/2024\u300008:00"},
		{"en quad", "15/03/2024\u200008:00"},
		{"hair space", "15/03/2024\u200a08:00"},
		{"line separator", "15/03/2024\u202808:00"},
		{"byte order mark", "15/03/2024\ufeff08:00"},
		{"mixed run", "15/03/2024 \u00a0\t08:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseTimestamp(tt.raw)
			require.True(t, ok)
			assert.Equal(t, want, got)
		})
	}
}

func TestParseTimestamp_ZeroPaddedFields(t *testing.T) {
	ts, ok := ParseTimestamp("0000000015/03/2024")
	require.True(t, ok)
	assert.True(t, ts.Valid())
	assert.Equal(t, 15, ts.Day)

	ts, ok = ParseTimestamp("15/03/99999999999")
	require.True(t, ok)
	assert.False(t, ts.Valid(), "values past the cap never match")
}

func TestParseTimestamp_Asymmetry(t *testing.T) {
	// Same digits, different widths: only two-character leading tokens
	// select month/day/year.
	mdy, ok := ParseTimestamp("04/05/2024")
	require.True(t, ok)
	assert.Equal(t, LayoutMonthDayYear, mdy.Layout)
	assert.Equal(t, 3, mdy.Month)
	assert.Equal(t, 5, mdy.Day)

	dmy, ok := ParseTimestamp("4/05/2024")
	require.True(t, ok)
	assert.Equal(t, LayoutDayMonthYear, dmy.Layout)
	assert.Equal(t, 4, dmy.Day)
	assert.Equal(t, 4, dmy.Month)

	withTime, ok := ParseTimestamp("04/05/2024 10")
	require.True(t, ok)
	assert.Equal(t, LayoutDayMonthYear, withTime.Layout)
	assert.Equal(t, 4, withTime.Day)
	assert.Equal(t, 4, withTime.Month)
}

func TestParseTimestamp_TooFewTokens(t *testing.T) {
	for _, raw := range []string{"", "2024-03-15", "15/03", "March 15", "   ", "/"} {
		_, ok := ParseTimestamp(raw)
		assert.False(t, ok, "raw=%q", raw)
	}
}

func TestParseTimestamp_NonNumericTokens(t *testing.T) {
	ts, ok := ParseTimestamp("March 15 2024")
	require.True(t, ok, "three tokens always parse")
	assert.False(t, ts.Valid())

	_, ok = ts.Time(time.UTC)
	assert.False(t, ok)
}

func TestTimestampTime_RollsOver(t *testing.T) {
	ts, ok := ParseTimestamp("15/13/2023")
	require.True(t, ok)
	assert.Equal(t, 12, ts.Month, "no calendar validation at parse time")

	at, ok := ts.Time(time.UTC)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC), at)

	ts, ok = ParseTimestamp("40/01/2024")
	require.True(t, ok)
	at, ok = ts.Time(time.UTC)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, time.February, 9, 0, 0, 0, 0, time.UTC), at)
}

func TestTimestampTime_TwoDigitYear(t *testing.T) {
	ts, ok := ParseTimestamp("03/15/24")
	require.True(t, ok)

	at, ok := ts.Time(time.UTC)
	require.True(t, ok)
	assert.Equal(t, 1924, at.Year())
}

func TestLeadingInt(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"15", 15, true},
		{"08:00", 8, true},
		{"-3", -3, true},
		{"+7x", 7, true},
		{"x7", 0, false},
		{"", 0, false},
		{"-", 0, false},
		{"1234567890", 0, false},
		{"999999999", 999999999, true},
		{"0000000015", 15, true},
		{"-00000000000007", -7, true},
	}
	for _, tt := range tests {
		got, ok := leadingInt(tt.in)
		assert.Equal(t, tt.wantOK, ok, "in=%q", tt.in)
		assert.Equal(t, tt.want, got, "in=%q", tt.in)
	}
}
