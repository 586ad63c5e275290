package mailer

import (
	"context"
	"time"
)

// Sender delivers account emails. Implementations must be safe for
// concurrent use.
type Sender interface {
	SendPasswordResetCode(ctx context.Context, email, code string, expiresAt time.Time) error
}
