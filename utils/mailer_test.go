package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now   time.Time
	slept []time.Duration
}

func (f *fakeClock) Now() time.Time { return f.now }

func (f *fakeClock) Sleep(d time.Duration) {
	f.slept = append(f.slept, d)
	f.now = f.now.Add(d)
}

func (f *fakeClock) advance(d time.Duration) { f.now = f.now.Add(d) }

type fakeTransport struct {
	verifyErr error
	sendErr   error

	verifies  int
	sends     int
	sentAt    []time.Time
	clock     *fakeClock
}

func (f *fakeTransport) Verify() error {
	f.verifies++
	return f.verifyErr
}

func (f *fakeTransport) Send(from string, to []string, msg []byte) error {
	f.sends++
	if f.clock != nil {
		f.sentAt = append(f.sentAt, f.clock.now)
	}
	return f.sendErr
}

func newTestMailer() (*Mailer, *fakeTransport, *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)}
	transport := &fakeTransport{clock: clock}
	mailer := NewMailer(transport, clock, "no-reply@example.com", "support@example.com")
	return mailer, transport, clock
}

func TestMailerSendsWhenTransportHealthy(t *testing.T) {
	mailer, transport, _ := newTestMailer()

	ok := mailer.Send([]string{"a@example.com"}, "Hello", "<p>hi</p>")

	assert.True(t, ok)
	assert.Equal(t, 1, transport.verifies)
	assert.Equal(t, 1, transport.sends)
	assert.False(t, mailer.InFallbackMode())
}

func TestMailerRateGate(t *testing.T) {
	mailer, transport, clock := newTestMailer()

	mailer.Send([]string{"a@example.com"}, "First", "<p>1</p>")
	mailer.Send([]string{"b@example.com"}, "Second", "<p>2</p>")

	// The second call waited out the full interval
	require.Len(t, clock.slept, 1)
	assert.Equal(t, sendInterval, clock.slept[0])

	require.Len(t, transport.sentAt, 2)
	gap := transport.sentAt[1].Sub(transport.sentAt[0])
	assert.GreaterOrEqual(t, gap, sendInterval)
}

func TestMailerRateGatePartialWait(t *testing.T) {
	mailer, _, clock := newTestMailer()

	mailer.Send([]string{"a@example.com"}, "First", "<p>1</p>")
	clock.advance(20 * time.Second)
	mailer.Send([]string{"b@example.com"}, "Second", "<p>2</p>")

	require.Len(t, clock.slept, 1)
	assert.Equal(t, 40*time.Second, clock.slept[0])
}

func TestMailerVerificationFailureEntersFallback(t *testing.T) {
	mailer, transport, _ := newTestMailer()
	transport.verifyErr = errors.New("connection refused")

	ok := mailer.Send([]string{"a@example.com"}, "Hello", "<p>hi</p>")

	// Fallback mode logs the message and reports success
	assert.True(t, ok)
	assert.True(t, mailer.InFallbackMode())
	assert.Equal(t, 0, transport.sends)

	// Subsequent sends stay in fallback without touching the transport
	ok = mailer.Send([]string{"b@example.com"}, "Again", "<p>hi</p>")
	assert.True(t, ok)
	assert.Equal(t, 1, transport.verifies)
	assert.Equal(t, 0, transport.sends)
}

func TestMailerSendFailureEntersFallback(t *testing.T) {
	mailer, transport, _ := newTestMailer()
	transport.sendErr = errors.New("broken pipe")

	ok := mailer.Send([]string{"a@example.com"}, "Hello", "<p>hi</p>")

	// A mid-send failure reports false once, then degrades
	assert.False(t, ok)
	assert.True(t, mailer.InFallbackMode())
	assert.Equal(t, 1, transport.sends)

	ok = mailer.Send([]string{"b@example.com"}, "Again", "<p>hi</p>")
	assert.True(t, ok)
	assert.Equal(t, 1, transport.sends)
}

func TestMailerFallbackStillRateGated(t *testing.T) {
	mailer, transport, clock := newTestMailer()
	transport.verifyErr = errors.New("connection refused")

	mailer.Send([]string{"a@example.com"}, "First", "<p>1</p>")
	mailer.Send([]string{"b@example.com"}, "Second", "<p>2</p>")

	// The gate applies before the fallback check
	require.Len(t, clock.slept, 1)
	assert.Equal(t, sendInterval, clock.slept[0])
}
