package mailer

// Mailer sends transactional email. Delivery is best-effort everywhere it
// is used: callers log failures and carry on, the persisted record stays
// the source of truth.
type Mailer interface {
	Send(toEmail, subject, htmlBody string) error
}
