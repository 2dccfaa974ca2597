// Package digest turns a day's complaint records into an HTML summary using
// a text-generation provider.
package digest

import (
	"context"
	"time"

	"go.uber.org/zap"

	"messdigest/internal/types"
)

// Summarizer requests the daily digest from an LLM. Provider failures are
// logged and reported as "no summary"; they never reach the caller as errors.
type Summarizer struct {
	client  types.LLMClient
	day     time.Time
	timeout time.Duration
	logger  *zap.Logger
}

// Option configures a Summarizer.
type Option func(*Summarizer)

// WithTimeout bounds a single provider call.
func WithTimeout(d time.Duration) Option {
	return func(s *Summarizer) {
		s.timeout = d
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Summarizer) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithDay sets the date printed in the request heading. Defaults to the
// current day.
func WithDay(day time.Time) Option {
	return func(s *Summarizer) {
		s.day = day
	}
}

// NewSummarizer creates a Summarizer backed by client.
func NewSummarizer(client types.LLMClient, opts ...Option) *Summarizer {
	s := &Summarizer{
		client: client,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Summarize returns the HTML digest for records, or false when the provider
// fails or returns nothing. Callers pass a non-empty slice.
func (s *Summarizer) Summarize(ctx context.Context, records []types.Record) (string, bool) {
	day := s.day
	if day.IsZero() {
		day = time.Now()
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	s.logger.Info("requesting digest", zap.Int("records", len(records)))

	text, err := s.client.CompleteWithSystem(ctx, SystemPrompt(len(records)), UserPrompt(records, day))
	if err != nil {
		s.logger.Error("digest request failed", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
		return "", false
	}

	text = stripCodeFence(text)
	if text == "" {
		s.logger.Error("digest request returned no text", zap.Duration("elapsed", time.Since(start)))
		return "", false
	}

	s.logger.Info("digest generated", zap.Int("length", len(text)), zap.Duration("elapsed", time.Since(start)))
	return text, true
}
