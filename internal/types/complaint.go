package types

// Column positions of a complaint row (sheet columns A..D).
const (
	ColTimestamp = iota
	ColName
	ColEmail
	ColComplaint

	RowWidth
)

// RawRow is one unprocessed row from the complaint table.
// Missing cells are empty strings.
type RawRow [RowWidth]string

// NewRawRow builds a RawRow from a variable-length cell slice, padding short
// rows and dropping cells beyond the fixed width.
func NewRawRow(cells ...string) RawRow {
	var row RawRow
	copy(row[:], cells)
	return row
}

func (r RawRow) Timestamp() string { return r[ColTimestamp] }
func (r RawRow) Name() string      { return r[ColName] }
func (r RawRow) Email() string     { return r[ColEmail] }
func (r RawRow) Complaint() string { return r[ColComplaint] }

// Record is a RawRow confirmed to belong to the run's calendar day.
// Timestamp keeps the raw cell text for display.
type Record struct {
	Timestamp string `json:"timestamp"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Complaint string `json:"complaint"`
}

// RecordFromRow copies the four cells of row into a Record.
func RecordFromRow(row RawRow) Record {
	return Record{
		Timestamp: row.Timestamp(),
		Name:      row.Name(),
		Email:     row.Email(),
		Complaint: row.Complaint(),
	}
}
