package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/freightdesk/freightdesk-go/internal/crypto"
	"github.com/freightdesk/freightdesk-go/internal/model"
	"github.com/freightdesk/freightdesk-go/internal/repository"
)

// ErrUserNotFound covers both a missing row and a row owned by another
// company, for the same anti-enumeration reason as ErrPackageNotFound.
var ErrUserNotFound = errors.New("user not found")

// UserStore is the persistence surface for users.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	ListByCompany(ctx context.Context, companyID int64) ([]model.User, error)
	Delete(ctx context.Context, id int64) error
}

// UserService handles team-member management within a company.
type UserService struct {
	store UserStore
}

// NewUserService creates a new UserService.
func NewUserService(store UserStore) *UserService {
	return &UserService{store: store}
}

// List returns all users belonging to the company.
func (s *UserService) List(ctx context.Context, companyID int64) ([]model.User, error) {
	return s.store.ListByCompany(ctx, companyID)
}

// Create adds a user to the caller's company. Email uniqueness is global,
// not per company.
func (s *UserService) Create(ctx context.Context, companyID int64, req model.CreateUserRequest) (int64, error) {
	v := newFieldValidator()
	v.required("email", req.Email)
	v.email("email", req.Email)
	v.required("password", req.Password)
	v.minLength("password", req.Password, 6)
	v.required("role", req.Role)
	v.oneOf("role", req.Role, model.RoleAdmin, model.RoleSeller)
	if err := v.err(); err != nil {
		return 0, err
	}

	if _, err := s.store.GetByEmail(ctx, req.Email); err == nil {
		return 0, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return 0, err
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return 0, fmt.Errorf("hashing password: %w", err)
	}

	user := &model.User{
		CompanyID:    companyID,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
	}

	if err := s.store.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return 0, ErrEmailTaken
		}
		return 0, err
	}

	return user.ID, nil
}

// Get returns a user by ID, scoped to the company.
func (s *UserService) Get(ctx context.Context, companyID, id int64) (*model.User, error) {
	return s.scopedGet(ctx, companyID, id)
}

// Delete removes a user, scoped to the company.
func (s *UserService) Delete(ctx context.Context, companyID, id int64) error {
	if _, err := s.scopedGet(ctx, companyID, id); err != nil {
		return err
	}

	err := s.store.Delete(ctx, id)
	if errors.Is(err, repository.ErrUserNotFound) {
		return ErrUserNotFound
	}
	return err
}

func (s *UserService) scopedGet(ctx context.Context, companyID, id int64) (*model.User, error) {
	user, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if user.CompanyID != companyID {
		return nil, ErrUserNotFound
	}
	return user, nil
}
