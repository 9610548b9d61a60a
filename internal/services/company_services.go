package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Magneto-Freelance/magneto-freelance-back/internal/model"
	"github.com/Magneto-Freelance/magneto-freelance-back/internal/repository"
)

type CompanyStore interface {
	Create(ctx context.Context, c *model.Company) (*model.Company, error)
	List(ctx context.Context) ([]model.Company, error)
	FindByEmail(ctx context.Context, email string) (*model.Company, error)
}

type CompanyService struct {
	Companies CompanyStore
	Auth      *AuthService
}

func NewCompanyService(store CompanyStore, auth *AuthService) *CompanyService {
	return &CompanyService{Companies: store, Auth: auth}
}

func (s *CompanyService) Register(ctx context.Context, name, username, email, password string) (*model.Company, error) {
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}
	if _, err := s.Companies.FindByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("%w: email already registered", ErrInvalidInput)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	hash, err := s.Auth.HashPassword(password)
	if err != nil {
		return nil, err
	}
	return s.Companies.Create(ctx, &model.Company{
		Name:         name,
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	})
}

func (s *CompanyService) List(ctx context.Context) ([]model.Company, error) {
	return s.Companies.List(ctx)
}
