package mail

import (
	"errors"
	"fmt"
	"net/smtp"
	"os"
	"strings"
)

var ErrNotConfigured = errors.New("smtp host or sender is missing")

type sendFunc func(addr string, auth smtp.Auth, from string, to []string, msg []byte) error

type Mailer struct {
	addr string
	auth smtp.Auth
	from string
	send sendFunc
}

// NewMailerFromEnv: SMTP_HOST, SMTP_PORT(기본 587), SMTP_USER, SMTP_PASSWORD, SMTP_FROM
func NewMailerFromEnv() *Mailer {
	host := os.Getenv("SMTP_HOST")
	port := os.Getenv("SMTP_PORT")
	if port == "" {
		port = "587"
	}

	var auth smtp.Auth
	if user := os.Getenv("SMTP_USER"); user != "" {
		auth = smtp.PlainAuth("", user, os.Getenv("SMTP_PASSWORD"), host)
	}

	m := &Mailer{auth: auth, from: os.Getenv("SMTP_FROM"), send: smtp.SendMail}
	if host != "" {
		m.addr = host + ":" + port
	}
	return m
}

func (m *Mailer) Send(to, subject, body string) error {
	if m.addr == "" || m.from == "" {
		return ErrNotConfigured
	}
	if to == "" {
		return errors.New("recipient is empty")
	}
	return m.send(m.addr, m.auth, m.from, []string{to}, buildMessage(m.from, to, subject, body))
}

func buildMessage(from, to, subject, body string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", strings.ReplaceAll(subject, "\r\n", " "))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	b.WriteString("\r\n")
	return []byte(b.String())
}
