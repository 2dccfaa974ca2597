package ingest

import (
	"fmt"
	"regexp"
	"time"
	"unicode/utf8"
)

// Layout identifies which component order a timestamp was read with.
type Layout int

const (
	LayoutUnknown Layout = iota
	LayoutMonthDayYear
	LayoutDayMonthYear
)

func (l Layout) String() string {
	switch l {
	case LayoutMonthDayYear:
		return "month/day/year"
	case LayoutDayMonthYear:
		return "day/month/year"
	default:
		return "unknown"
	}
}

// Timestamp is a parsed calendar instant. Month is zero-based.
type Timestamp struct {
	Layout Layout
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int

	// invalid is set when a component had no leading digits. Such a
	// timestamp parses but never converts to an instant.
	invalid bool
}

// tokenSeparators matches runs of slashes and Unicode whitespace, including
// vertical tab, no-break spaces and the byte order mark. RE2's \s is ASCII only.
var tokenSeparators = regexp.MustCompile(`[\t\n\v\f\r \x{00A0}\x{1680}\x{2000}-\x{200A}\x{2028}\x{2029}\x{202F}\x{205F}\x{3000}\x{FEFF}/]+`)

// maxFieldValue bounds numeric components so conversion cannot overflow.
// Leading zeros do not count against it.
const maxFieldValue = 999_999_999

// ParseTimestamp interprets raw as either month/day/year or
// day/month/year[ hour[ minute[ second]]]. It returns false when raw has
// fewer than three tokens.
func ParseTimestamp(raw string) (Timestamp, bool) {
	tokens := tokenSeparators.Split(raw, -1)

	if len(tokens) == 3 && utf8.RuneCountInString(tokens[0]) == 2 && utf8.RuneCountInString(tokens[1]) == 2 {
		ts := Timestamp{Layout: LayoutMonthDayYear}
		month := ts.field(tokens[0])
		ts.Month = month - 1
		ts.Day = ts.field(tokens[1])
		ts.Year = ts.field(tokens[2])
		return ts, true
	}

	if len(tokens) < 3 {
		return Timestamp{}, false
	}

	ts := Timestamp{Layout: LayoutDayMonthYear}
	ts.Day = ts.field(tokens[0])
	ts.Month = ts.field(tokens[1]) - 1
	ts.Year = ts.field(tokens[2])

	clock := tokens[3:]
	if len(clock) > 0 {
		ts.Hour = ts.field(clock[0])
	}
	if len(clock) > 1 {
		ts.Minute = ts.field(clock[1])
	}
	if len(clock) > 2 {
		ts.Second = ts.field(clock[2])
	}
	return ts, true
}

// field reads the leading integer of token, marking ts invalid when there is none.
func (ts *Timestamp) field(token string) int {
	n, ok := leadingInt(token)
	if !ok {
		ts.invalid = true
	}
	return n
}

// Valid reports whether every component carried a number.
func (ts Timestamp) Valid() bool {
	return !ts.invalid
}

// Time converts ts to an instant in loc. Out-of-range components roll over
// into the neighbouring unit. Years 0 through 99 are taken as 1900-1999.
func (ts Timestamp) Time(loc *time.Location) (time.Time, bool) {
	if ts.invalid {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.Local
	}
	year := ts.Year
	if year >= 0 && year <= 99 {
		year += 1900
	}
	return time.Date(year, time.Month(ts.Month+1), ts.Day, ts.Hour, ts.Minute, ts.Second, 0, loc), true
}

func (ts Timestamp) String() string {
	if ts.invalid {
		return fmt.Sprintf("invalid (%s)", ts.Layout)
	}
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d (%s)",
		ts.Year, ts.Month+1, ts.Day, ts.Hour, ts.Minute, ts.Second, ts.Layout)
}

// leadingInt parses an optional sign followed by decimal digits at the start
// of s, ignoring whatever follows ("08:00" yields 8).
func leadingInt(s string) (int, bool) {
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	n, digits := 0, 0
	for digits < len(s) && s[digits] >= '0' && s[digits] <= '9' {
		n = n*10 + int(s[digits]-'0')
		if n > maxFieldValue {
			return 0, false
		}
		digits++
	}
	if digits == 0 {
		return 0, false
	}
	if neg {
		n = -n
	}
	return n, true
}
