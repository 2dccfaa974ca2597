package types

import "time"

// DeliveryStatus is the mail outcome of a run.
type DeliveryStatus string

const (
	DeliveryDelivered DeliveryStatus = "delivered"
	DeliverySkipped   DeliveryStatus = "skipped"
	DeliveryFailed    DeliveryStatus = "failed"
)

// RunState names a pipeline state. Terminal states end a run.
type RunState string

const (
	StateStart          RunState = "start"
	StateFetching       RunState = "fetching"
	StateFetchFailed    RunState = "fetch_failed"
	StateFiltering      RunState = "filtering"
	StateNoRecordsToday RunState = "no_records_today"
	StateSummarizing    RunState = "summarizing"
	StateSummaryFailed  RunState = "summary_failed"
	StateDispatching    RunState = "dispatching"
	StateDelivered      RunState = "delivered"
	StateDispatchFailed RunState = "dispatch_failed"
)

// IsTerminal reports whether no transition leaves s.
func (s RunState) IsTerminal() bool {
	switch s {
	case StateFetchFailed, StateNoRecordsToday, StateSummaryFailed, StateDelivered, StateDispatchFailed:
		return true
	}
	return false
}

// RunOutcome is the single result of one pipeline execution.
type RunOutcome struct {
	RunID          string         `json:"run_id"`
	Day            time.Time      `json:"day"`
	State          RunState       `json:"state"`
	RecordCount    int            `json:"record_count"`
	SummaryText    string         `json:"summary_text,omitempty"`
	DeliveryStatus DeliveryStatus `json:"delivery_status"`
	FailureReason  string         `json:"failure_reason,omitempty"`
}

// HasSummary reports whether a summary was generated during the run.
func (o RunOutcome) HasSummary() bool {
	return o.SummaryText != ""
}
