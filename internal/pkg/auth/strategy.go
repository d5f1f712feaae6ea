package auth

import (
	"time"

	"github.com/polkiloo/customerhub/internal/domain/model"
)

// DefaultTTL is the lifetime of every issued token.
const DefaultTTL = time.Hour

type Strategy interface {
	IssueToken(claims model.Claims) (string, error)
	ParseToken(token string) (model.Claims, error)
	Name() string
}

type Options struct {
	TTL time.Duration
	Now func() time.Time
}
