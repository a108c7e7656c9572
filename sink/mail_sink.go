package sink

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"
	"strings"
	"time"

	"diag-hub/domain"
	"diag-hub/errors"
	"diag-hub/moderation"
)

const mailSubject = "New Diagnostic Hub Feedback"

// MailSink forwards each feedback record as one plain-text email through an
// authenticated SMTP relay. The relay handshake is a blocking network call
// that may stall, so the whole delivery is bounded by a deadline: on
// timeout the sink reports failure instead of hanging its caller.
type MailSink struct {
	host      string
	port      int
	username  string
	password  string
	to        string
	timeout   time.Duration
	tlsConfig *tls.Config
	log       *slog.Logger
}

func NewMailSink(host string, port int, username, password, to string, timeout time.Duration, log *slog.Logger) *MailSink {
	return &MailSink{
		host:      host,
		port:      port,
		username:  username,
		password:  password,
		to:        to,
		timeout:   timeout,
		tlsConfig: &tls.Config{ServerName: host},
		log:       log,
	}
}

// Deliver sends one notification. Any relay fault or timeout is converted
// to ErrNotificationSink; it never propagates as a raw network error.
func (s *MailSink) Deliver(ctx context.Context, record domain.FeedbackRecord) error {
	deadline := time.Now().Add(s.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}

	addr := fmt.Sprintf("%s:%d", s.host, s.port)
	conn, err := net.DialTimeout("tcp", addr, time.Until(deadline))
	if err != nil {
		return fmt.Errorf("%w: dial %s: %v", errors.ErrNotificationSink, addr, err)
	}
	defer conn.Close()

	// The deadline covers the whole relay conversation, not just the dial.
	if err := conn.SetDeadline(deadline); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrNotificationSink, err)
	}

	client, err := smtp.NewClient(conn, s.host)
	if err != nil {
		return fmt.Errorf("%w: handshake: %v", errors.ErrNotificationSink, err)
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(s.tlsConfig); err != nil {
			return fmt.Errorf("%w: starttls: %v", errors.ErrNotificationSink, err)
		}
	}

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("%w: auth: %v", errors.ErrNotificationSink, err)
	}

	if err := client.Mail(s.username); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrNotificationSink, err)
	}
	if err := client.Rcpt(s.to); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrNotificationSink, err)
	}

	wc, err := client.Data()
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrNotificationSink, err)
	}
	if _, err := wc.Write(composeMessage(s.username, s.to, record)); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrNotificationSink, err)
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrNotificationSink, err)
	}

	if err := client.Quit(); err != nil {
		// Delivery already succeeded; a noisy QUIT is not a failure.
		s.log.Debug("SMTP quit failed after delivery", "error", err)
	}

	s.log.Debug("Feedback notification sent", "id", record.ID, "to", s.to)
	return nil
}

// composeMessage builds the fixed-subject plain-text notification carrying
// the four user-supplied fields plus timestamp. The detected message
// language is included as an operator hint.
func composeMessage(from, to string, record domain.FeedbackRecord) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", mailSubject)
	b.WriteString("\r\n")
	fmt.Fprintf(&b, "Submitted: %s\n", record.At.UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, "Name: %s\n", record.Name)
	fmt.Fprintf(&b, "Email: %s\n", record.Email)
	fmt.Fprintf(&b, "Rating: %d/5\n", record.Rating)
	if lang := moderation.DetectLanguage(record.Message); lang != "" {
		fmt.Fprintf(&b, "Language: %s\n", lang)
	}
	fmt.Fprintf(&b, "\n%s\n", record.Message)
	return []byte(b.String())
}
