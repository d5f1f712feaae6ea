package usecase

import (
	"context"
	"errors"
	"fmt"

	domainErrors "github.com/polkiloo/customerhub/internal/domain/errors"
	"github.com/polkiloo/customerhub/internal/domain/model"
	"github.com/polkiloo/customerhub/internal/domain/repository"
	pkgAuth "github.com/polkiloo/customerhub/internal/pkg/auth"
)

// AuthUseCase handles user lifecycle and token management.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: strategy}
}

// Register creates a new user and returns a token for it.
func (u *AuthUseCase) Register(ctx context.Context, name, email, password string) (*model.User, string, error) {
	name, email, err := ValidateRegistration(name, email, password)
	if err != nil {
		return nil, "", err
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	if _, err := u.users.GetByEmail(ctx, email); err == nil {
		return nil, "", domainErrors.ErrAlreadyExists
	} else if !errors.Is(err, domainErrors.ErrNotFound) {
		return nil, "", err
	}

	usr, err := u.users.Create(ctx, name, email, hash)
	if err != nil {
		return nil, "", err
	}

	token, err := u.tokens.IssueToken(usr.Claims())
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	return usr, token, nil
}

// Authenticate validates credentials and returns a token for the stored user.
func (u *AuthUseCase) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	email, err := ValidateCredentials(email, password)
	if err != nil {
		return nil, "", err
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidUser
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		if errors.Is(err, pkgAuth.ErrPasswordMismatch) {
			return nil, "", domainErrors.ErrInvalidPassword
		}
		return nil, "", fmt.Errorf("compare password: %w", err)
	}

	token, err := u.tokens.IssueToken(usr.Claims())
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	return usr, token, nil
}

// ParseToken extracts identity claims from provided token.
func (u *AuthUseCase) ParseToken(token string) (model.Claims, error) {
	if token == "" {
		return model.Claims{}, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}
