package config

import "time"

// SheetsConfig configures the complaint spreadsheet.
type SheetsConfig struct {
	SpreadsheetID   string `yaml:"spreadsheet_id"`
	CredentialsFile string `yaml:"credentials_file"` // service account JSON
	Columns         string `yaml:"columns"`          // A1 column span read from the first sheet
	Timeout         string `yaml:"timeout"`
}

// GetSheetsTimeout returns the spreadsheet fetch timeout as a duration.
func (c *Config) GetSheetsTimeout() time.Duration {
	return parseDuration(c.Sheets.Timeout, 30*time.Second)
}
