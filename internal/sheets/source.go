// Package sheets reads complaint rows from a Google Sheets spreadsheet.
package sheets

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"

	"messdigest/internal/types"
)

// ErrNoSheets is returned when the spreadsheet has no sheets.
var ErrNoSheets = errors.New("spreadsheet has no sheets")

var _ types.RowSource = (*Source)(nil)

// Config configures a Source.
type Config struct {
	SpreadsheetID   string
	CredentialsFile string // service account JSON; empty uses the client options only
	Columns         string // A1 column span, e.g. "A:D"
	Timeout         time.Duration
	Logger          *zap.Logger
}

// Source fetches rows from the first sheet of a spreadsheet.
type Source struct {
	svc           *gsheets.Service
	spreadsheetID string
	columns       string
	timeout       time.Duration
	logger        *zap.Logger
}

// NewSource creates a read-only Sheets client. Extra client options are
// appended after the credentials option.
func NewSource(ctx context.Context, cfg Config, opts ...option.ClientOption) (*Source, error) {
	if cfg.SpreadsheetID == "" {
		return nil, fmt.Errorf("spreadsheet ID is required")
	}

	clientOpts := []option.ClientOption{option.WithScopes(gsheets.SpreadsheetsReadonlyScope)}
	if cfg.CredentialsFile != "" {
		clientOpts = append(clientOpts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	clientOpts = append(clientOpts, opts...)

	svc, err := gsheets.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Sheets client: %w", err)
	}

	if cfg.Columns == "" {
		cfg.Columns = "A:D"
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	return &Source{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
		columns:       cfg.Columns,
		timeout:       cfg.Timeout,
		logger:        cfg.Logger,
	}, nil
}

// FetchRows returns every row of the first sheet within the configured
// columns. Short rows are padded; an empty sheet yields no rows and no error.
func (s *Source) FetchRows(ctx context.Context) ([]types.RawRow, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	title, err := s.firstSheetTitle(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("using sheet", zap.String("title", title))

	readRange := A1Range(title, s.columns)
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, describe(fmt.Sprintf("failed to read range %s", readRange), err)
	}

	rows := make([]types.RawRow, 0, len(resp.Values))
	for _, values := range resp.Values {
		rows = append(rows, toRawRow(values))
	}

	s.logger.Info("fetched rows", zap.String("range", readRange), zap.Int("rows", len(rows)))
	return rows, nil
}

func (s *Source) firstSheetTitle(ctx context.Context) (string, error) {
	ss, err := s.svc.Spreadsheets.Get(s.spreadsheetID).
		Fields("sheets.properties.title").
		Context(ctx).
		Do()
	if err != nil {
		return "", describe("failed to load spreadsheet", err)
	}
	if len(ss.Sheets) == 0 || ss.Sheets[0].Properties == nil {
		return "", ErrNoSheets
	}
	return ss.Sheets[0].Properties.Title, nil
}

// A1Range builds a quoted A1 range such as 'Form Responses 1'!A:D.
func A1Range(title, columns string) string {
	return fmt.Sprintf("'%s'!%s", strings.ReplaceAll(title, "'", "''"), columns)
}

func toRawRow(values []interface{}) types.RawRow {
	cells := make([]string, 0, len(values))
	for _, v := range values {
		switch cell := v.(type) {
		case nil:
			cells = append(cells, "")
		case string:
			cells = append(cells, cell)
		default:
			cells = append(cells, fmt.Sprint(cell))
		}
	}
	return types.NewRawRow(cells...)
}

// describe wraps err, surfacing the HTTP status of Sheets API failures.
func describe(action string, err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return fmt.Errorf("%s: sheets API status %d: %w", action, apiErr.Code, err)
	}
	return fmt.Errorf("%s: %w", action, err)
}
