package service

import (
	"context"
	"errors"

	"github.com/freightdesk/freightdesk-go/internal/model"
	"github.com/freightdesk/freightdesk-go/internal/repository"
)

// ErrPackageNotFound covers both a missing row and a row owned by another
// company. Callers must not be able to tell the two apart.
var ErrPackageNotFound = errors.New("package not found")

// PackageStore is the persistence surface for packages.
type PackageStore interface {
	Create(ctx context.Context, pkg *model.Package) error
	GetByID(ctx context.Context, id int64) (*model.Package, error)
	ListByCompany(ctx context.Context, companyID int64) ([]model.Package, error)
	Update(ctx context.Context, id int64, changes map[string]any) error
	Delete(ctx context.Context, id int64) error
}

// PackageService handles package business logic. Every operation is scoped
// to the caller's company.
type PackageService struct {
	store PackageStore
}

// NewPackageService creates a new PackageService.
func NewPackageService(store PackageStore) *PackageService {
	return &PackageService{store: store}
}

// List returns all packages belonging to the company.
func (s *PackageService) List(ctx context.Context, companyID int64) ([]model.Package, error) {
	return s.store.ListByCompany(ctx, companyID)
}

// Create persists a new package for the company. The tenant is always the
// caller's; nothing in the request body can change it.
func (s *PackageService) Create(ctx context.Context, companyID int64, req model.CreatePackageRequest) (int64, error) {
	v := newFieldValidator()
	v.required("order_id", req.OrderID)
	if err := v.err(); err != nil {
		return 0, err
	}

	pkg := &model.Package{
		CompanyID:    companyID,
		OrderID:      req.OrderID,
		PackageAttrs: req.PackageAttrs,
	}

	if err := s.store.Create(ctx, pkg); err != nil {
		return 0, err
	}

	return pkg.ID, nil
}

// Get returns a package by ID, scoped to the company.
func (s *PackageService) Get(ctx context.Context, companyID, id int64) (*model.Package, error) {
	return s.scopedGet(ctx, companyID, id)
}

// Update writes the set fields of req to a package, scoped to the company.
func (s *PackageService) Update(ctx context.Context, companyID, id int64, req model.UpdatePackageRequest) error {
	if _, err := s.scopedGet(ctx, companyID, id); err != nil {
		return err
	}

	changes := req.Changes()
	if req.OrderID != nil {
		changes["order_id"] = *req.OrderID
	}

	return s.store.Update(ctx, id, changes)
}

// Delete removes a package, scoped to the company.
func (s *PackageService) Delete(ctx context.Context, companyID, id int64) error {
	if _, err := s.scopedGet(ctx, companyID, id); err != nil {
		return err
	}

	err := s.store.Delete(ctx, id)
	if errors.Is(err, repository.ErrPackageNotFound) {
		return ErrPackageNotFound
	}
	return err
}

// scopedGet fetches by primary key and enforces the tenant check. A missing
// row and a cross-tenant row produce the same error.
func (s *PackageService) scopedGet(ctx context.Context, companyID, id int64) (*model.Package, error) {
	pkg, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPackageNotFound) {
			return nil, ErrPackageNotFound
		}
		return nil, err
	}
	if pkg.CompanyID != companyID {
		return nil, ErrPackageNotFound
	}
	return pkg, nil
}
