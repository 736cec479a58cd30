package repositories

import "context"

// MailKind selects the outbound notification template
type MailKind string

const (
	MailKindVerification MailKind = "verification"
	MailKindReset        MailKind = "reset"
	MailKindWelcome      MailKind = "welcome"
)

// Mail is a single outbound notification. Token is empty for the welcome kind.
type Mail struct {
	To    string
	Name  string
	Token string
	Kind  MailKind
}

// MailSender dispatches account notifications. A failure surfaces as an
// internal error from whichever operation triggered the send.
type MailSender interface {
	Send(ctx context.Context, mail *Mail) error
}
