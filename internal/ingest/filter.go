package ingest

import (
	"time"

	"messdigest/internal/types"
)

// FilterStats counts how rows were disposed of by FilterToday.
type FilterStats struct {
	Rows             int `json:"rows"`
	Kept             int `json:"kept"`
	MissingTimestamp int `json:"missing_timestamp"`
	Unparsable       int `json:"unparsable"`
	InvalidDate      int `json:"invalid_date"`
	OtherDay         int `json:"other_day"`
}

// Skipped returns the number of rows that did not become records.
func (s FilterStats) Skipped() int {
	return s.Rows - s.Kept
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day in loc.
func SameDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

// FilterToday returns a Record for every row whose timestamp falls on the
// calendar day of today, evaluated in today's location. Rows keep their
// input order.
func FilterToday(rows []types.RawRow, today time.Time) []types.Record {
	records, _ := FilterTodayWithStats(rows, today)
	return records
}

// FilterTodayWithStats is FilterToday that also reports why rows were dropped.
func FilterTodayWithStats(rows []types.RawRow, today time.Time) ([]types.Record, FilterStats) {
	loc := today.Location()
	stats := FilterStats{Rows: len(rows)}
	records := make([]types.Record, 0, len(rows))

	for _, row := range rows {
		raw := row.Timestamp()
		if raw == "" {
			stats.MissingTimestamp++
			continue
		}

		ts, ok := ParseTimestamp(raw)
		if !ok {
			stats.Unparsable++
			continue
		}

		at, ok := ts.Time(loc)
		if !ok {
			stats.InvalidDate++
			continue
		}

		if !SameDay(at, today, loc) {
			stats.OtherDay++
			continue
		}

		records = append(records, types.RecordFromRow(row))
		stats.Kept++
	}

	return records, stats
}
