package repository

import (
	"context"

	"github.com/Magneto-Freelance/magneto-freelance-back/internal/model"
)

// PrincipalLookup resolves a (kind, email) pair against the collection that
// kind lives in. It is the single read path the authenticator depends on.
type PrincipalLookup struct {
	Postulants *PostulantRepository
	Companies  *CompanyRepository
}

func NewPrincipalLookup(pr *PostulantRepository, cr *CompanyRepository) *PrincipalLookup {
	return &PrincipalLookup{Postulants: pr, Companies: cr}
}

func (l *PrincipalLookup) FindByKindAndEmail(ctx context.Context, kind model.PrincipalKind, email string) (*model.Principal, error) {
	switch kind {
	case model.KindPostulant:
		p, err := l.Postulants.FindByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		return &model.Principal{
			ID:           p.ID,
			Kind:         model.KindPostulant,
			Name:         p.Name,
			Username:     p.Username,
			Email:        p.Email,
			PasswordHash: p.PasswordHash,
		}, nil
	case model.KindCompany:
		c, err := l.Companies.FindByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		return &model.Principal{
			ID:           c.ID,
			Kind:         model.KindCompany,
			Name:         c.Name,
			Username:     c.Username,
			Email:        c.Email,
			PasswordHash: c.PasswordHash,
		}, nil
	default:
		return nil, ErrNotFound
	}
}
