package sink

import (
	"bufio"
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"io"
	"log/slog"
	"math/big"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"diag-hub/domain"
	"diag-hub/errors"
)

func selfSignedCert(t *testing.T) tls.Certificate {
	t.Helper()
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	template := x509.Certificate{
		SerialNumber: big.NewInt(1),
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
		IPAddresses:  []net.IP{net.ParseIP("127.0.0.1")},
	}
	der, err := x509.CreateCertificate(rand.Reader, &template, &template, &key.PublicKey, key)
	require.NoError(t, err)
	return tls.Certificate{Certificate: [][]byte{der}, PrivateKey: key}
}

// startFakeRelay speaks just enough ESMTP to carry one delivery through the
// STARTTLS upgrade. The DATA payload it accepts is sent on the returned
// channel.
func startFakeRelay(t *testing.T) (int, <-chan string) {
	t.Helper()
	cert := selfSignedCert(t)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })

	received := make(chan string, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		serveRelay(conn, cert, received)
	}()

	return ln.Addr().(*net.TCPAddr).Port, received
}

func serveRelay(conn net.Conn, cert tls.Certificate, received chan<- string) {
	io.WriteString(conn, "220 relay ESMTP\r\n")
	reader := bufio.NewReader(conn)
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		cmd := strings.ToUpper(strings.TrimSpace(line))
		switch {
		case strings.HasPrefix(cmd, "EHLO"):
			io.WriteString(conn, "250-relay\r\n250-STARTTLS\r\n250 AUTH PLAIN\r\n")
		case strings.HasPrefix(cmd, "STARTTLS"):
			io.WriteString(conn, "220 2.0.0 ready\r\n")
			tlsConn := tls.Server(conn, &tls.Config{Certificates: []tls.Certificate{cert}})
			if err := tlsConn.Handshake(); err != nil {
				return
			}
			conn = tlsConn
			reader = bufio.NewReader(conn)
		case strings.HasPrefix(cmd, "AUTH"):
			io.WriteString(conn, "235 2.7.0 accepted\r\n")
		case strings.HasPrefix(cmd, "MAIL"), strings.HasPrefix(cmd, "RCPT"):
			io.WriteString(conn, "250 ok\r\n")
		case strings.HasPrefix(cmd, "DATA"):
			io.WriteString(conn, "354 end with .\r\n")
			var body strings.Builder
			for {
				dataLine, err := reader.ReadString('\n')
				if err != nil {
					return
				}
				if strings.TrimRight(dataLine, "\r\n") == "." {
					break
				}
				body.WriteString(dataLine)
			}
			received <- body.String()
			io.WriteString(conn, "250 queued\r\n")
		case strings.HasPrefix(cmd, "QUIT"):
			io.WriteString(conn, "221 bye\r\n")
			return
		default:
			io.WriteString(conn, "250 ok\r\n")
		}
	}
}

func TestMailSink_Deliver(t *testing.T) {
	t.Run("should deliver through a relay that advertises STARTTLS", func(t *testing.T) {
		req := require.New(t)
		port, received := startFakeRelay(t)

		s := NewMailSink("127.0.0.1", port, "hub@x.com", "secret", "ops@x.com", 5*time.Second, slog.Default())
		// The test relay presents a throwaway self-signed certificate.
		s.tlsConfig = &tls.Config{InsecureSkipVerify: true}

		err := s.Deliver(context.Background(), domain.NewFeedbackRecord("Ana", "a@x.com", 5, "great"))
		req.NoError(err)

		select {
		case msg := <-received:
			req.Contains(msg, "Subject: "+mailSubject)
			req.Contains(msg, "Name: Ana")
		case <-time.After(2 * time.Second):
			req.FailNow("relay never received the message")
		}
	})

	t.Run("should fail fast with ErrNotificationSink when the relay is unreachable", func(t *testing.T) {
		req := require.New(t)
		s := NewMailSink("127.0.0.1", 9, "hub@x.com", "secret", "ops@x.com", 100*time.Millisecond, slog.Default())

		start := time.Now()
		err := s.Deliver(context.Background(), domain.NewFeedbackRecord("Ana", "a@x.com", 5, "great"))

		req.ErrorIs(err, errors.ErrNotificationSink)
		req.Less(time.Since(start), 2*time.Second)
	})

	t.Run("should honour an already-short context deadline", func(t *testing.T) {
		req := require.New(t)
		s := NewMailSink("192.0.2.1", 587, "hub@x.com", "secret", "ops@x.com", time.Minute, slog.Default())

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		start := time.Now()
		err := s.Deliver(ctx, domain.NewFeedbackRecord("Ana", "a@x.com", 5, "great"))

		req.ErrorIs(err, errors.ErrNotificationSink)
		req.Less(time.Since(start), 2*time.Second)
	})
}

func TestComposeMessage(t *testing.T) {
	t.Run("should carry the fixed subject and all record fields", func(t *testing.T) {
		req := require.New(t)
		record := domain.NewFeedbackRecord("Ana", "a@x.com", 5, "this platform helped our clinic a lot")

		msg := string(composeMessage("hub@x.com", "ops@x.com", record))

		req.Contains(msg, "Subject: "+mailSubject)
		req.Contains(msg, "From: hub@x.com")
		req.Contains(msg, "To: ops@x.com")
		req.Contains(msg, "Name: Ana")
		req.Contains(msg, "Email: a@x.com")
		req.Contains(msg, "Rating: 5/5")
		req.Contains(msg, "this platform helped our clinic a lot")
		req.Contains(msg, "Submitted: "+record.At.UTC().Format(time.RFC3339))
	})

	t.Run("should tag the detected message language", func(t *testing.T) {
		req := require.New(t)
		record := domain.NewFeedbackRecord("Ana", "a@x.com", 5,
			"this platform helped our clinic diagnose patients much faster than before")

		msg := string(composeMessage("hub@x.com", "ops@x.com", record))

		// Header section ends at the first blank line; the language hint
		// sits in the body.
		body := msg[strings.Index(msg, "\r\n\r\n"):]
		req.Contains(body, "Language: en")
	})
}
