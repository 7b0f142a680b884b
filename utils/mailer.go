package utils

import (
	"crypto/tls"
	"fmt"
	"log"
	"net"
	"net/smtp"
	"shikhon/config"
	"strings"
	"sync"
	"time"
)

// sendInterval is the process-wide minimum gap between two outgoing
// emails. Every send waits at this gate regardless of recipient.
const sendInterval = 60 * time.Second

// Clock abstracts time so tests can drive the rate gate deterministically
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type systemClock struct{}

func (systemClock) Now() time.Time        { return time.Now() }
func (systemClock) Sleep(d time.Duration) { time.Sleep(d) }

// Transport delivers a raw message. Verify is called once before the
// first real send; a failure flips the mailer into fallback mode.
type Transport interface {
	Verify() error
	Send(from string, to []string, msg []byte) error
}

// Mailer serializes all outgoing email through a single rate gate and
// degrades to log-only fallback mode when the transport cannot be
// verified or fails mid-send. Once in fallback mode it stays there for
// the rest of the process lifetime. Send never returns an error to its
// caller, only a success flag.
type Mailer struct {
	mu        sync.Mutex
	clock     Clock
	transport Transport
	from      string
	replyTo   string

	verified bool
	fallback bool
	lastSend time.Time
}

// NewMailer builds a mailer around the given transport and clock
func NewMailer(transport Transport, clock Clock, from, replyTo string) *Mailer {
	return &Mailer{
		clock:     clock,
		transport: transport,
		from:      from,
		replyTo:   replyTo,
	}
}

// Send delivers one email, waiting at the rate gate first. Returns true
// when the message was delivered or logged in fallback mode, false when
// the transport failed on this call.
func (m *Mailer) Send(to []string, subject, htmlBody string) bool {
	if m == nil {
		log.Printf("[MAILER] Not initialized; dropping %q to %v", subject, to)
		return false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Rate gate: consecutive sends start at least sendInterval apart
	if !m.lastSend.IsZero() {
		if wait := sendInterval - m.clock.Now().Sub(m.lastSend); wait > 0 {
			m.clock.Sleep(wait)
		}
	}
	m.lastSend = m.clock.Now()

	if m.fallback {
		log.Printf("[MAILER] Fallback mode: would send %q to %v", subject, to)
		return true
	}

	if !m.verified {
		if err := m.transport.Verify(); err != nil {
			log.Printf("[MAILER] Transport verification failed, entering fallback mode: %v", err)
			m.fallback = true
			log.Printf("[MAILER] Fallback mode: would send %q to %v", subject, to)
			return true
		}
		m.verified = true
	}

	msg := buildMessage(m.from, m.replyTo, to, subject, htmlBody)
	if err := m.transport.Send(m.from, to, msg); err != nil {
		log.Printf("[MAILER] Send to %v failed, entering fallback mode: %v", to, err)
		m.fallback = true
		return false
	}

	log.Printf("[MAILER] Sent %q to %v", subject, to)
	return true
}

// InFallbackMode reports whether the mailer has degraded to log-only sends
func (m *Mailer) InFallbackMode() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fallback
}

func buildMessage(from, replyTo string, to []string, subject, htmlBody string) []byte {
	msg := "MIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n"
	msg += fmt.Sprintf("From: Shikhon <%s>\r\n", from)
	msg += fmt.Sprintf("Reply-To: %s\r\n", replyTo)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody
	return []byte(msg)
}

// smtpTransport speaks SMTP over implicit TLS (port 465 style)
type smtpTransport struct {
	host string
	port int
	user string
	pass string
}

func (t *smtpTransport) addr() string {
	return fmt.Sprintf("%s:%d", t.host, t.port)
}

func (t *smtpTransport) dial() (*smtp.Client, error) {
	conn, err := tls.DialWithDialer(
		&net.Dialer{Timeout: 30 * time.Second},
		"tcp", t.addr(),
		&tls.Config{ServerName: t.host},
	)
	if err != nil {
		return nil, err
	}

	// Cap the whole SMTP exchange
	if err := conn.SetDeadline(time.Now().Add(60 * time.Second)); err != nil {
		conn.Close()
		return nil, err
	}

	client, err := smtp.NewClient(conn, t.host)
	if err != nil {
		conn.Close()
		return nil, err
	}

	if err := client.Auth(smtp.PlainAuth("", t.user, t.pass, t.host)); err != nil {
		client.Close()
		return nil, err
	}

	return client, nil
}

// Verify opens and authenticates a connection, then closes it
func (t *smtpTransport) Verify() error {
	client, err := t.dial()
	if err != nil {
		return err
	}
	return client.Quit()
}

func (t *smtpTransport) Send(from string, to []string, msg []byte) error {
	client, err := t.dial()
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.Mail(from); err != nil {
		return err
	}
	for _, rcpt := range to {
		if err := client.Rcpt(rcpt); err != nil {
			return err
		}
	}

	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	return client.Quit()
}

// defaultMailer is the process-wide dispatcher used by the Send*Email triggers
var defaultMailer *Mailer

// InitMailer wires the default mailer from application config
func InitMailer() {
	transport := &smtpTransport{
		host: config.AppConfig.SMTPHost,
		port: config.AppConfig.SMTPPort,
		user: config.AppConfig.SMTPUser,
		pass: config.AppConfig.SMTPPass,
	}
	defaultMailer = NewMailer(transport, systemClock{}, "no-reply@shikhon.com.bd", "support@shikhon.com.bd")
}
