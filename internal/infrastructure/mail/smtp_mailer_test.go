package mail

import (
	"context"
	"errors"
	"net/smtp"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestSMTPMailer_Send(t *testing.T) {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	t.Run("builds headers and body", func(t *testing.T) {
		m := NewSMTPMailer("localhost", 1025, "", "", "atelier@localhost", log)

		var gotAddr, gotFrom string
		var gotTo []string
		var gotMsg string
		m.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
			gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, string(msg)
			return nil
		}

		err := m.Send(context.Background(), "client@example.com", "Confirmation", "Bonjour")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotAddr != "localhost:1025" || gotFrom != "atelier@localhost" {
			t.Fatalf("unexpected transport args: %s %s", gotAddr, gotFrom)
		}
		if len(gotTo) != 1 || gotTo[0] != "client@example.com" {
			t.Fatalf("unexpected recipients: %v", gotTo)
		}
		for _, want := range []string{"Subject: Confirmation\r\n", "To: client@example.com\r\n", "charset=utf-8"} {
			if !strings.Contains(gotMsg, want) {
				t.Fatalf("message missing %q:\n%s", want, gotMsg)
			}
		}
		if !strings.HasSuffix(gotMsg, "\r\n\r\nBonjour") {
			t.Fatalf("body not separated from headers:\n%s", gotMsg)
		}
	})

	t.Run("transport error is wrapped", func(t *testing.T) {
		m := NewSMTPMailer("localhost", 1025, "", "", "atelier@localhost", log)
		m.send = func(string, smtp.Auth, string, []string, []byte) error {
			return errors.New("connection refused")
		}

		err := m.Send(context.Background(), "client@example.com", "x", "y")
		if err == nil || !strings.Contains(err.Error(), "client@example.com") {
			t.Fatalf("expected wrapped error naming the recipient, got %v", err)
		}
	})

	t.Run("cancelled context short-circuits", func(t *testing.T) {
		m := NewSMTPMailer("localhost", 1025, "", "", "atelier@localhost", log)
		m.send = func(string, smtp.Auth, string, []string, []byte) error {
			t.Fatal("send must not be called")
			return nil
		}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if err := m.Send(ctx, "client@example.com", "x", "y"); !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	})
}
