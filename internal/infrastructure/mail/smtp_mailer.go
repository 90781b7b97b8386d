package mail

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"atelier_backend/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

// SMTPMailer sends plain-text mail over SMTP. Auth is optional so a local
// catcher (MailHog and friends) works without credentials.
type SMTPMailer struct {
	addr string
	from string
	auth smtp.Auth
	log  *logrus.Logger

	// send is swappable for tests.
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

var _ interfaces.IMailer = (*SMTPMailer)(nil)

func NewSMTPMailer(host string, port int, user, pass, from string, log *logrus.Logger) *SMTPMailer {
	var auth smtp.Auth
	if user != "" {
		auth = smtp.PlainAuth("", user, pass, host)
	}
	return &SMTPMailer{
		addr: fmt.Sprintf("%s:%d", host, port),
		from: from,
		auth: auth,
		log:  log,
		send: smtp.SendMail,
	}
}

func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", m.from)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")
	msg.WriteString(body)

	if err := m.send(m.addr, m.auth, m.from, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("sending mail to %s: %w", to, err)
	}
	m.log.WithField("to", to).Debug("mail sent")
	return nil
}
