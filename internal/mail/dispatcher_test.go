package mail

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"messdigest/internal/types"
)

type fakeTransport struct {
	verifyErr error
	sendErr   error
	verifies  int
	sent      []Message
	deadline  bool
}

func (f *fakeTransport) Verify(ctx context.Context) error {
	f.verifies++
	_, f.deadline = ctx.Deadline()
	return f.verifyErr
}

func (f *fakeTransport) Send(ctx context.Context, msg Message) error {
	f.sent = append(f.sent, msg)
	return f.sendErr
}

var testDay = time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

func newTestDispatcher(tr Transport) *Dispatcher {
	return NewDispatcher(tr, DispatcherConfig{
		From:    "digest@example.com",
		To:      "warden@example.com",
		Day:     testDay,
		Timeout: time.Second,
	})
}

func TestDispatch_Delivered(t *testing.T) {
	tr := &fakeTransport{}

	res := newTestDispatcher(tr).Dispatch(context.Background(), "<p>ok</p>", 3)

	assert.True(t, res.Delivered())
	assert.Empty(t, res.Reason)
	assert.Equal(t, 1, tr.verifies)
	assert.True(t, tr.deadline)
	require.Len(t, tr.sent, 1)
	assert.Equal(t, "Mess Management Daily Digest - 2024-03-15", tr.sent[0].Subject)
	assert.Contains(t, tr.sent[0].TextBody, "Total Complaints: 3")
}

func TestDispatch_VerifyFailure(t *testing.T) {
	tr := &fakeTransport{verifyErr: errors.New("535 5.7.8 Username and Password not accepted")}

	res := newTestDispatcher(tr).Dispatch(context.Background(), "<p>ok</p>", 1)

	assert.Equal(t, types.DeliveryFailed, res.Status)
	assert.Contains(t, res.Reason, "535 5.7.8")
	assert.Empty(t, tr.sent, "no send after failed verification")
}

func TestDispatch_SendFailure(t *testing.T) {
	tr := &fakeTransport{sendErr: errors.New("552 message too large")}

	res := newTestDispatcher(tr).Dispatch(context.Background(), "<p>ok</p>", 1)

	assert.Equal(t, types.DeliveryFailed, res.Status)
	assert.Equal(t, "552 message too large", res.Reason)
	assert.Len(t, tr.sent, 1, "exactly one attempt")
}
