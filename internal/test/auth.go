package test

import (
	"context"
	"strings"

	"github.com/polkiloo/customerhub/internal/domain/model"
	pkgAuth "github.com/polkiloo/customerhub/internal/pkg/auth"
)

// HasherStub provides deterministic hashing for tests.
type HasherStub struct {
	HashFn    func(string) (string, error)
	CompareFn func(string, string) error
}

// Hash returns a predictable hash for the supplied password.
func (h HasherStub) Hash(password string) (string, error) {
	if h.HashFn != nil {
		return h.HashFn(password)
	}
	return "hash:" + password, nil
}

// Compare reports pkgAuth.ErrPasswordMismatch unless hash was produced by Hash.
func (h HasherStub) Compare(hash string, password string) error {
	if h.CompareFn != nil {
		return h.CompareFn(hash, password)
	}
	if hash != "hash:"+password {
		return pkgAuth.ErrPasswordMismatch
	}
	return nil
}

// StrategyStub issues and parses tokens via function overrides.
// Without overrides a token is "token:<email>:<name>".
type StrategyStub struct {
	IssueFn func(model.Claims) (string, error)
	ParseFn func(string) (model.Claims, error)
	NameVal string
}

// IssueToken returns deterministic tokens for tests.
func (s StrategyStub) IssueToken(claims model.Claims) (string, error) {
	if s.IssueFn != nil {
		return s.IssueFn(claims)
	}
	return "token:" + claims.Email + ":" + claims.Name, nil
}

// ParseToken parses previously issued token strings.
func (s StrategyStub) ParseToken(token string) (model.Claims, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	rest, ok := strings.CutPrefix(token, "token:")
	email, name, found := strings.Cut(rest, ":")
	if !ok || !found || email == "" {
		return model.Claims{}, pkgAuth.ErrInvalidToken
	}
	return model.Claims{Email: email, Name: name}, nil
}

// Name returns the strategy identifier used in tests.
func (s StrategyStub) Name() string {
	if s.NameVal != "" {
		return s.NameVal
	}
	return "stub"
}

// TokenParserStub implements middleware token parsing contract.
type TokenParserStub struct {
	Claims  model.Claims
	Err     error
	ParseFn func(string) (model.Claims, error)
}

// ParseToken either delegates to override or returns predefined result.
func (s TokenParserStub) ParseToken(token string) (model.Claims, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	if s.Err != nil {
		return model.Claims{}, s.Err
	}
	return s.Claims, nil
}

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, string, string, string) (string, error)
	AuthenticateFn func(context.Context, string, string) (string, error)
	ParseFn        func(string) (model.Claims, error)
}

// Register returns token for successful registration scenarios.
func (s AuthFacadeStub) Register(ctx context.Context, name, email, password string) (string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, name, email, password)
	}
	return "token", nil
}

// Authenticate returns token for successful authentication scenarios.
func (s AuthFacadeStub) Authenticate(ctx context.Context, email, password string) (string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	return "token", nil
}

// ParseToken returns claims of an authenticated user.
func (s AuthFacadeStub) ParseToken(token string) (model.Claims, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return model.Claims{Email: "user@example.com", Name: "User"}, nil
}

var _ pkgAuth.PasswordHasher = HasherStub{}
var _ pkgAuth.Strategy = StrategyStub{}
