package pipeline

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"messdigest/internal/ingest"
	"messdigest/internal/types"
)

// Event describes one state transition of a run.
type Event struct {
	RunID string
	Day   time.Time
	From  types.RunState
	To    types.RunState
	At    time.Time

	Rows        int
	RecordCount int
	Filter      *ingest.FilterStats
	Summary     string
	Reason      string
}

// Observer receives every transition of a run, in order.
type Observer interface {
	OnTransition(Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Event)

func (f ObserverFunc) OnTransition(e Event) { f(e) }

// LogObserver writes one structured log entry per transition.
type LogObserver struct {
	logger *zap.Logger
}

// NewLogObserver creates a LogObserver; a nil logger discards entries.
func NewLogObserver(logger *zap.Logger) *LogObserver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogObserver{logger: logger}
}

func (o *LogObserver) OnTransition(e Event) {
	fields := []zap.Field{
		zap.String("run_id", e.RunID),
		zap.String("from", string(e.From)),
		zap.String("to", string(e.To)),
		zap.String("day", e.Day.Format("2006-01-02")),
	}
	if e.Rows > 0 {
		fields = append(fields, zap.Int("rows", e.Rows))
	}
	if e.Filter != nil {
		fields = append(fields,
			zap.Int("kept", e.Filter.Kept),
			zap.Int("missing_timestamp", e.Filter.MissingTimestamp),
			zap.Int("unparsable", e.Filter.Unparsable),
			zap.Int("invalid_date", e.Filter.InvalidDate),
			zap.Int("other_day", e.Filter.OtherDay),
		)
	}
	if e.RecordCount > 0 {
		fields = append(fields, zap.Int("records", e.RecordCount))
	}

	switch e.To {
	case types.StateFetchFailed, types.StateSummaryFailed:
		o.logger.Error("run transition", append(fields, zap.String("reason", e.Reason))...)
	case types.StateDispatchFailed:
		// The summary is otherwise lost when delivery fails.
		o.logger.Error("run transition", append(fields,
			zap.String("reason", e.Reason),
			zap.String("summary", e.Summary))...)
	default:
		o.logger.Info("run transition", fields...)
	}
}

// Recorder keeps every event it receives. Safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *Recorder) OnTransition(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// States returns the destination state of each recorded transition.
func (r *Recorder) States() []types.RunState {
	r.mu.Lock()
	defer r.mu.Unlock()
	states := make([]types.RunState, 0, len(r.events))
	for _, e := range r.events {
		states = append(states, e.To)
	}
	return states
}

// Multi fans events out to several observers.
func Multi(observers ...Observer) Observer {
	return ObserverFunc(func(e Event) {
		for _, o := range observers {
			if o != nil {
				o.OnTransition(e)
			}
		}
	})
}
