package mailer

import "log"

// DevMailer logs outbound mail instead of sending it. Used when
// EMAIL_DEV_MODE is set or no relay is configured.
type DevMailer struct{}

func NewDevMailer() *DevMailer {
	return &DevMailer{}
}

func (d *DevMailer) Send(toEmail, subject, htmlBody string) error {
	log.Printf("mail_dev to=%s subject=%q body_len=%d", toEmail, subject, len(htmlBody))
	return nil
}
