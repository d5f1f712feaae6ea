package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/polkiloo/customerhub/internal/domain/model"
)

// ErrInvalidToken covers every verification failure: bad signature, malformed
// payload and expiry are not distinguished.
var ErrInvalidToken = errors.New("invalid auth token")

type tokenClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// JWTStrategy issues and verifies HS256 signed JWTs.
type JWTStrategy struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTStrategy builds JWTStrategy with provided secret and options.
func NewJWTStrategy(secret string, opts Options) *JWTStrategy {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &JWTStrategy{secret: []byte(secret), ttl: ttl, now: now}
}

// IssueToken signs claims into a token valid for the configured TTL.
func (s *JWTStrategy) IssueToken(claims model.Claims) (string, error) {
	issued := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		Email: claims.Email,
		Name:  claims.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(issued.Add(s.ttl)),
		},
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ParseToken verifies signature and expiry and returns embedded claims.
func (s *JWTStrategy) ParseToken(token string) (model.Claims, error) {
	var claims tokenClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsed.Valid {
		return model.Claims{}, ErrInvalidToken
	}
	if claims.Email == "" {
		return model.Claims{}, ErrInvalidToken
	}

	return model.Claims{Email: claims.Email, Name: claims.Name}, nil
}

func (s *JWTStrategy) Name() string {
	return "jwt"
}
