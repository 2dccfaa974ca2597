package ingest

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"messdigest/internal/types"
)

var march15 = time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

func TestFilterToday_BothLayoutsMatch(t *testing.T) {
	rows := []types.RawRow{
		types.NewRawRow("03/15/2024", "Alice", "a@x.com", "Leaky faucet"),
		types.NewRawRow("15/03/2024 08:00", "Bob", "b@x.com", "Cold food"),
	}

	got := FilterToday(rows, march15)

	want := []types.Record{
		{Timestamp: "03/15/2024", Name: "Alice", Email: "a@x.com", Complaint: "Leaky faucet"},
		{Timestamp: "15/03/2024 08:00", Name: "Bob", Email: "b@x.com", Complaint: "Cold food"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FilterToday mismatch (-want +got):\n%s", diff)
	}
}

func TestFilterToday_MissingTimestamp(t *testing.T) {
	rows := []types.RawRow{types.NewRawRow("", "Carl", "c@x.com", "No towels")}

	got, stats := FilterTodayWithStats(rows, march15)

	assert.Empty(t, got)
	assert.Equal(t, 1, stats.MissingTimestamp)
	assert.Equal(t, 1, stats.Skipped())
}

func TestFilterToday_PreservesOrderAndSkipsNonMatching(t *testing.T) {
	rows := []types.RawRow{
		types.NewRawRow("Timestamp", "Name", "Email", "Complaint"),
		types.NewRawRow("15/03/2024 09:10:11", "A", "", "first"),
		types.NewRawRow("14/03/2024 23:59:59", "B", "", "yesterday"),
		types.NewRawRow("2024-03-15", "C", "", "iso"),
		types.NewRawRow("15/03/2024 bad", "D", "", "broken clock"),
		types.NewRawRow("03/15/2024", "E", "", "second"),
		types.NewRawRow("15/03/2024 09:10:11", "A", "", "first"),
		types.NewRawRow("03/15/2024"),
	}

	got, stats := FilterTodayWithStats(rows, march15)

	names := make([]string, len(got))
	for i, r := range got {
		names[i] = r.Complaint
	}
	assert.Equal(t, []string{"first", "second", "first", ""}, names, "order kept, duplicates kept")
	assert.Equal(t, FilterStats{
		Rows:        8,
		Kept:        4,
		Unparsable:  2,
		InvalidDate: 1,
		OtherDay:    1,
	}, stats)
}

func TestFilterToday_RolledOverDateMatches(t *testing.T) {
	jan15 := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	rows := []types.RawRow{types.NewRawRow("15/13/2023", "Z", "", "rolled")}

	got := FilterToday(rows, jan15)

	assert.Len(t, got, 1)
	assert.Equal(t, "15/13/2023", got[0].Timestamp, "raw text preserved")
}

func TestFilterToday_UsesTodayLocation(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	today := time.Date(2024, time.March, 15, 0, 0, 0, 0, loc)
	rows := []types.RawRow{
		types.NewRawRow("15/03/2024 00:30", "early", "", "a"),
		types.NewRawRow("14/03/2024 23:30", "late", "", "b"),
	}

	got := FilterToday(rows, today)

	assert.Len(t, got, 1)
	assert.Equal(t, "early", got[0].Name)
}

func TestFilterToday_NoRows(t *testing.T) {
	got, stats := FilterTodayWithStats(nil, march15)
	assert.Empty(t, got)
	assert.Zero(t, stats.Rows)
}

func TestStartOfDay(t *testing.T) {
	at := time.Date(2024, time.March, 15, 17, 45, 3, 99, time.UTC)
	assert.Equal(t, march15, StartOfDay(at))
}

func TestFilterToday_NoBreakSpaceBeforeTime(t *testing.T) {
	rows := []types.RawRow{
		types.NewRawRow("15/03/2024\u00a008:00", "Dana", "d@x.com", "Broken chair"),
		types.NewRawRow("15/03/2024\u202f19:45", "Eli", "e@x.com", "Late dinner"),
	}

	got, stats := FilterTodayWithStats(rows, march15)

	assert.Len(t, got, 2)
	assert.Equal(t, 2, stats.Kept)
	assert.Zero(t, stats.OtherDay)
}
