package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Magneto-Freelance/magneto-freelance-back/internal/model"
	"github.com/Magneto-Freelance/magneto-freelance-back/internal/repository"
)

type PostulantStore interface {
	Create(ctx context.Context, p *model.Postulant) (*model.Postulant, error)
	List(ctx context.Context) ([]model.Postulant, error)
	FindByEmail(ctx context.Context, email string) (*model.Postulant, error)
}

type PostulantService struct {
	Postulants PostulantStore
	Auth       *AuthService
}

func NewPostulantService(store PostulantStore, auth *AuthService) *PostulantService {
	return &PostulantService{Postulants: store, Auth: auth}
}

// Register hashes the plaintext password and persists the postulant. The
// plaintext never reaches the store. Email is unique within the kind; the
// store's unique index backstops this check against races.
func (s *PostulantService) Register(ctx context.Context, name, username, email, password string) (*model.Postulant, error) {
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}
	if _, err := s.Postulants.FindByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("%w: email already registered", ErrInvalidInput)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	hash, err := s.Auth.HashPassword(password)
	if err != nil {
		return nil, err
	}
	return s.Postulants.Create(ctx, &model.Postulant{
		Name:         name,
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	})
}

func (s *PostulantService) List(ctx context.Context) ([]model.Postulant, error) {
	return s.Postulants.List(ctx)
}
