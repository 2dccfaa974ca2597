package mail

import (
	"context"
	"time"

	"go.uber.org/zap"

	"messdigest/internal/types"
)

// DeliveryResult reports the outcome of one Dispatch call.
type DeliveryResult struct {
	Status types.DeliveryStatus
	Reason string
}

// Delivered reports whether the message was accepted by the transport.
func (r DeliveryResult) Delivered() bool {
	return r.Status == types.DeliveryDelivered
}

// Dispatcher composes the digest and hands it to a Transport exactly once.
type Dispatcher struct {
	transport Transport
	from      string
	to        string
	day       time.Time
	timeout   time.Duration
	logger    *zap.Logger
}

// DispatcherConfig configures a Dispatcher.
type DispatcherConfig struct {
	From    string
	To      string
	Day     time.Time // date shown in the subject; defaults to now
	Timeout time.Duration
	Logger  *zap.Logger
}

// NewDispatcher creates a Dispatcher over transport.
func NewDispatcher(transport Transport, cfg DispatcherConfig) *Dispatcher {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Dispatcher{
		transport: transport,
		from:      cfg.From,
		to:        cfg.To,
		day:       cfg.Day,
		timeout:   cfg.Timeout,
		logger:    cfg.Logger,
	}
}

// Dispatch verifies the transport and sends the digest. Verification and
// send failures both yield a failed result carrying the transport error.
func (d *Dispatcher) Dispatch(ctx context.Context, summaryHTML string, recordCount int) DeliveryResult {
	day := d.day
	if day.IsZero() {
		day = time.Now()
	}
	msg := Compose(d.from, d.to, summaryHTML, recordCount, day)

	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	d.logger.Info("verifying mail transport", zap.String("from", d.from), zap.String("to", d.to))
	if err := d.transport.Verify(ctx); err != nil {
		d.logger.Error("mail transport verification failed", zap.Error(err))
		return DeliveryResult{Status: types.DeliveryFailed, Reason: err.Error()}
	}

	d.logger.Info("sending digest", zap.String("subject", msg.Subject))
	if err := d.transport.Send(ctx, msg); err != nil {
		d.logger.Error("digest send failed", zap.Error(err))
		return DeliveryResult{Status: types.DeliveryFailed, Reason: err.Error()}
	}

	d.logger.Info("digest sent", zap.String("to", d.to))
	return DeliveryResult{Status: types.DeliveryDelivered}
}
