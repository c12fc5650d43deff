package domain

import (
	"context"
	"time"
)

// Session maps an opaque token to an authenticated account. Tokens are
// carried in an HTTP-only cookie and stored server-side with a TTL.
type Session struct {
	Token     string `json:"-"`
	AccountID int64  `json:"account_id"`
	Role      string `json:"role"`
}

type SessionRepository interface {
	Create(ctx context.Context, session *Session, ttl time.Duration) error
	// Get returns (nil, nil) for an unknown or expired token.
	Get(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
}
