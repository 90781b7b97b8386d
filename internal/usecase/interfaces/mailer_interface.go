package interfaces

import "context"

// IMailer sends plain-text notification mail. Delivery is best-effort:
// callers log failures and never fail the primary operation over them.
type IMailer interface {
	Send(ctx context.Context, to, subject, body string) error
}
