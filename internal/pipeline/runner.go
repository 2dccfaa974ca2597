// Package pipeline runs one fetch, filter, summarize and dispatch cycle.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"messdigest/internal/ingest"
	"messdigest/internal/mail"
	"messdigest/internal/types"
)

// Source supplies the raw complaint rows.
type Source = types.RowSource

// Summarizer turns the day's records into HTML. ok is false on any failure.
type Summarizer interface {
	Summarize(ctx context.Context, records []types.Record) (summary string, ok bool)
}

// Dispatcher delivers a summary.
type Dispatcher interface {
	Dispatch(ctx context.Context, summaryHTML string, recordCount int) mail.DeliveryResult
}

// Runner executes the stages strictly in sequence. It holds no state
// between runs and may be reused.
type Runner struct {
	source     Source
	summarizer Summarizer
	dispatcher Dispatcher
	observer   Observer
	logger     *zap.Logger
	filterLog  *zap.Logger
	clock      func() time.Time
	newID      func() string
}

// Option configures a Runner.
type Option func(*Runner)

// WithObserver sets the transition observer.
func WithObserver(o Observer) Option {
	return func(r *Runner) {
		r.observer = o
	}
}

// WithLogger sets the runner logger.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithFilterLogger sets the logger that reports how rows were filtered.
func WithFilterLogger(logger *zap.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.filterLog = logger
		}
	}
}

// WithClock overrides the transition timestamp source.
func WithClock(clock func() time.Time) Option {
	return func(r *Runner) {
		r.clock = clock
	}
}

// WithRunID overrides run ID generation.
func WithRunID(newID func() string) Option {
	return func(r *Runner) {
		r.newID = newID
	}
}

// NewRunner wires the three collaborators into a Runner.
func NewRunner(source Source, summarizer Summarizer, dispatcher Dispatcher, opts ...Option) *Runner {
	r := &Runner{
		source:     source,
		summarizer: summarizer,
		dispatcher: dispatcher,
		logger:     zap.NewNop(),
		filterLog:  zap.NewNop(),
		clock:      time.Now,
		newID:      uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.observer == nil {
		r.observer = NewLogObserver(r.logger)
	}
	return r
}

// run carries the bookkeeping of a single execution.
type run struct {
	*Runner
	outcome types.RunOutcome
}

func (r *run) transition(to types.RunState, e Event) {
	e.RunID = r.outcome.RunID
	e.Day = r.outcome.Day
	e.From = r.outcome.State
	e.To = to
	e.At = r.clock()
	r.outcome.State = to
	r.observer.OnTransition(e)
}

// Run executes one cycle for the calendar day of today, whose location
// decides day boundaries. The returned error is non-nil only when the
// fetch stage fails; every other terminal state is reported in the outcome.
func (r *Runner) Run(ctx context.Context, today time.Time) (types.RunOutcome, error) {
	x := &run{
		Runner: r,
		outcome: types.RunOutcome{
			RunID:          r.newID(),
			Day:            ingest.StartOfDay(today),
			State:          types.StateStart,
			DeliveryStatus: types.DeliverySkipped,
		},
	}

	x.transition(types.StateFetching, Event{})
	rows, err := r.source.FetchRows(ctx)
	if err != nil {
		x.outcome.FailureReason = err.Error()
		x.transition(types.StateFetchFailed, Event{Reason: x.outcome.FailureReason})
		return x.outcome, fmt.Errorf("fetch rows: %w", err)
	}

	x.transition(types.StateFiltering, Event{Rows: len(rows)})
	records, stats := ingest.FilterTodayWithStats(rows, today)
	r.filterLog.Info("filtered rows",
		zap.String("run_id", x.outcome.RunID),
		zap.Int("rows", stats.Rows),
		zap.Int("kept", stats.Kept),
		zap.Int("missing_timestamp", stats.MissingTimestamp),
		zap.Int("unparsable", stats.Unparsable),
		zap.Int("invalid_date", stats.InvalidDate),
		zap.Int("other_day", stats.OtherDay),
	)
	x.outcome.RecordCount = len(records)
	if len(records) == 0 {
		x.transition(types.StateNoRecordsToday, Event{Rows: len(rows), Filter: &stats})
		return x.outcome, nil
	}

	x.transition(types.StateSummarizing, Event{Rows: len(rows), Filter: &stats, RecordCount: len(records)})
	summary, ok := r.summarizer.Summarize(ctx, records)
	if !ok {
		x.outcome.FailureReason = "summary generation failed"
		x.transition(types.StateSummaryFailed, Event{RecordCount: len(records), Reason: x.outcome.FailureReason})
		return x.outcome, nil
	}
	x.outcome.SummaryText = summary

	x.transition(types.StateDispatching, Event{RecordCount: len(records)})
	result := r.dispatcher.Dispatch(ctx, summary, len(records))
	x.outcome.DeliveryStatus = result.Status
	if !result.Delivered() {
		x.outcome.DeliveryStatus = types.DeliveryFailed
		x.outcome.FailureReason = result.Reason
		x.transition(types.StateDispatchFailed, Event{
			RecordCount: len(records),
			Summary:     summary,
			Reason:      result.Reason,
		})
		return x.outcome, nil
	}

	x.transition(types.StateDelivered, Event{RecordCount: len(records)})
	return x.outcome, nil
}
