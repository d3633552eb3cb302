package service

import (
	"context"
	"errors"

	"github.com/freightdesk/freightdesk-go/internal/model"
	"github.com/freightdesk/freightdesk-go/internal/repository"
)

var ErrCompanyNotFound = errors.New("company not found")

// CompanyStore is the persistence surface for company reads.
type CompanyStore interface {
	List(ctx context.Context) ([]model.Company, error)
	GetByID(ctx context.Context, id int64) (*model.Company, error)
}

// CompanyService handles company reads. Companies are created only through
// registration and are immutable afterwards.
type CompanyService struct {
	store CompanyStore
}

// NewCompanyService creates a new CompanyService.
func NewCompanyService(store CompanyStore) *CompanyService {
	return &CompanyService{store: store}
}

// List returns all companies.
func (s *CompanyService) List(ctx context.Context) ([]model.Company, error) {
	return s.store.List(ctx)
}

// Get returns a company by ID.
func (s *CompanyService) Get(ctx context.Context, id int64) (*model.Company, error) {
	company, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return company, nil
}
