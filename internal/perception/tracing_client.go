package perception

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Trace captures one provider interaction.
type Trace struct {
	ID       string `json:"id"`
	Provider string `json:"provider"`
	Model    string `json:"model,omitempty"`

	SystemPrompt string `json:"system_prompt"`
	UserPrompt   string `json:"user_prompt"`
	Response     string `json:"response"`

	DurationMs   int64  `json:"duration_ms"`
	Success      bool   `json:"success"`
	ErrorMessage string `json:"error_message,omitempty"`

	Timestamp time.Time `json:"timestamp"`
}

// TraceSink receives a Trace after every call.
type TraceSink interface {
	RecordTrace(trace *Trace)
}

// LogTraceSink writes each Trace as one structured log entry.
type LogTraceSink struct {
	logger *zap.Logger
}

// NewLogTraceSink creates a LogTraceSink; a nil logger discards traces.
func NewLogTraceSink(logger *zap.Logger) *LogTraceSink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogTraceSink{logger: logger}
}

func (s *LogTraceSink) RecordTrace(trace *Trace) {
	s.logger.Info("LLM trace",
		zap.String("trace_id", trace.ID),
		zap.String("provider", trace.Provider),
		zap.String("model", trace.Model),
		zap.String("system_prompt", trace.SystemPrompt),
		zap.String("user_prompt", trace.UserPrompt),
		zap.String("response", trace.Response),
		zap.Int64("duration_ms", trace.DurationMs),
		zap.Bool("success", trace.Success),
		zap.String("error", trace.ErrorMessage),
	)
}

// TracingClient wraps an LLMClient and logs every call.
type TracingClient struct {
	underlying LLMClient
	provider   Provider
	model      string
	logger     *zap.Logger
	sink       TraceSink
}

// NewTracingClient wraps underlying. sink may be nil.
func NewTracingClient(underlying LLMClient, provider Provider, model string, logger *zap.Logger, sink TraceSink) *TracingClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TracingClient{
		underlying: underlying,
		provider:   provider,
		model:      model,
		logger:     logger,
		sink:       sink,
	}
}

// Complete implements LLMClient.Complete with tracing.
func (tc *TracingClient) Complete(ctx context.Context, prompt string) (string, error) {
	return tc.CompleteWithSystem(ctx, "", prompt)
}

// CompleteWithSystem implements LLMClient.CompleteWithSystem with tracing.
func (tc *TracingClient) CompleteWithSystem(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	start := time.Now()
	tc.logger.Debug("LLM call started",
		zap.String("provider", string(tc.provider)),
		zap.String("model", tc.model),
		zap.Int("system_len", len(systemPrompt)),
		zap.Int("prompt_len", len(userPrompt)),
	)

	response, err := tc.underlying.CompleteWithSystem(ctx, systemPrompt, userPrompt)

	duration := time.Since(start)
	if err != nil {
		tc.logger.Warn("LLM call failed",
			zap.String("provider", string(tc.provider)),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
	} else {
		tc.logger.Info("LLM call completed",
			zap.String("provider", string(tc.provider)),
			zap.Duration("duration", duration),
			zap.Int("response_len", len(response)),
		)
	}

	if tc.sink != nil {
		trace := &Trace{
			ID:           uuid.NewString(),
			Provider:     string(tc.provider),
			Model:        tc.model,
			SystemPrompt: systemPrompt,
			UserPrompt:   userPrompt,
			Response:     response,
			DurationMs:   duration.Milliseconds(),
			Success:      err == nil,
			Timestamp:    start,
		}
		if err != nil {
			trace.ErrorMessage = err.Error()
		}
		tc.sink.RecordTrace(trace)
	}

	return response, err
}
