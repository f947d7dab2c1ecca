package mailer

import (
	"bytes"
	"fmt"
	"net/smtp"
	"strings"
)

// SMTPMailer delivers mail over a plain SMTP relay. No auth and no TLS is
// the Mailpit/local path; PLAIN auth is used whenever a user is configured.
type SMTPMailer struct {
	host string
	port int
	from string
	user string
	pass string
}

func NewSMTPMailer(host string, port int, from, user, pass string) *SMTPMailer {
	return &SMTPMailer{
		host: strings.TrimSpace(host),
		port: port,
		from: strings.TrimSpace(from),
		user: strings.TrimSpace(user),
		pass: pass,
	}
}

func (s *SMTPMailer) Send(toEmail, subject, htmlBody string) error {
	toEmail = strings.TrimSpace(toEmail)
	if toEmail == "" {
		return fmt.Errorf("empty recipient email")
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "From: %s\r\n", s.from)
	fmt.Fprintf(&buf, "To: %s\r\n", toEmail)
	fmt.Fprintf(&buf, "Subject: %s\r\n", subject)
	fmt.Fprintf(&buf, "MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: text/html; charset=utf-8\r\n\r\n")
	fmt.Fprintf(&buf, "%s\r\n", htmlBody)

	addr := fmt.Sprintf("%s:%d", s.host, s.port)

	var auth smtp.Auth
	if s.user != "" {
		auth = smtp.PlainAuth("", s.user, s.pass, s.host)
	}

	return smtp.SendMail(addr, auth, s.from, []string{toEmail}, buf.Bytes())
}
