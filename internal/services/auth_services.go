package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/Magneto-Freelance/magneto-freelance-back/internal/model"
	"github.com/Magneto-Freelance/magneto-freelance-back/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

const (
	MinPasswordLen = 8
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

	// ErrInvalidCredentials covers both "no such account" and "wrong
	// password". The two are collapsed on purpose so responses cannot be
	// used to probe which emails are registered.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrStoreUnavailable means the lookup itself failed; it must never be
	// reported to clients as a credential problem.
	ErrStoreUnavailable = errors.New("account store unavailable")

	// ErrInvalidInput marks a request the client can correct. Handlers map
	// it to 400; anything else out of a registration is a store fault.
	ErrInvalidInput = errors.New("invalid input")
)

// PrincipalStore is the single read the authenticator needs.
type PrincipalStore interface {
	FindByKindAndEmail(ctx context.Context, kind model.PrincipalKind, email string) (*model.Principal, error)
}

type AuthService struct {
	Store PrincipalStore
}

func NewAuthService(store PrincipalStore) *AuthService {
	return &AuthService{Store: store}
}

func validateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("%w: invalid email format", ErrInvalidInput)
	}
	return nil
}

func validatePassword(pw string) error {
	if len(pw) < MinPasswordLen {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, MinPasswordLen)
	}
	return nil
}

// HashPassword produces a salted one-way hash for persistence. The salt is
// random per call, so hashing the same password twice yields different
// strings; VerifyPassword succeeds against any of them.
func (s *AuthService) HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (s *AuthService) VerifyPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

// Authenticate resolves the (kind, email) pair and checks the password
// against the stored hash. Unknown account and password mismatch are
// indistinguishable to the caller; store faults surface separately as
// ErrStoreUnavailable.
func (s *AuthService) Authenticate(ctx context.Context, kind model.PrincipalKind, email, password string) (*model.Principal, error) {
	if !kind.Valid() || email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}
	p, err := s.Store.FindByKindAndEmail(ctx, kind, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if !s.VerifyPassword(password, p.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return p, nil
}
