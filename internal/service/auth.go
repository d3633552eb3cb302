package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/freightdesk/freightdesk-go/internal/crypto"
	"github.com/freightdesk/freightdesk-go/internal/model"
	"github.com/freightdesk/freightdesk-go/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already exists")
)

// AuthStore is the persistence surface the auth flows need.
type AuthStore interface {
	// CreateCompanyWithAdmin atomically creates a company and its first
	// admin user: both rows or neither.
	CreateCompanyWithAdmin(ctx context.Context, company *model.Company, admin *model.User) error
	UserByEmail(ctx context.Context, email string) (*model.User, error)
	CompanyByID(ctx context.Context, id int64) (*model.Company, error)
}

// AuthService handles registration and login.
type AuthService struct {
	store     AuthStore
	jwtSecret string
	jwtExpiry time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(store AuthStore, secret string, expiry time.Duration) *AuthService {
	return &AuthService{
		store:     store,
		jwtSecret: secret,
		jwtExpiry: expiry,
	}
}

// Register creates a company together with its first admin user and returns
// an auth token for the new user.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (model.RegisterResponse, error) {
	v := newFieldValidator()
	v.required("company_name", req.CompanyName)
	v.required("company_address", req.CompanyAddress)
	v.required("email", req.Email)
	v.email("email", req.Email)
	v.required("password", req.Password)
	v.minLength("password", req.Password, 6)
	if err := v.err(); err != nil {
		return model.RegisterResponse{}, err
	}

	if _, err := s.store.UserByEmail(ctx, req.Email); err == nil {
		return model.RegisterResponse{}, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return model.RegisterResponse{}, err
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return model.RegisterResponse{}, fmt.Errorf("hashing password: %w", err)
	}

	company := &model.Company{
		CompanyName:    req.CompanyName,
		CompanyAddress: req.CompanyAddress,
	}
	admin := &model.User{
		Email:        req.Email,
		PasswordHash: hash,
		Role:         model.RoleAdmin,
	}

	if err := s.store.CreateCompanyWithAdmin(ctx, company, admin); err != nil {
		// A registration racing this one may hit the unique index after
		// the lookup above passed.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return model.RegisterResponse{}, ErrEmailTaken
		}
		return model.RegisterResponse{}, err
	}

	token, err := crypto.GenerateToken(admin.ID, company.ID, admin.Email, admin.Role, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.RegisterResponse{}, err
	}

	return model.RegisterResponse{
		CompanyID: company.ID,
		UserID:    admin.ID,
		Token:     token,
	}, nil
}

// Login authenticates a user and returns the user, their company and an auth
// token. Unknown email and wrong password fail identically.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.LoginResponse, error) {
	v := newFieldValidator()
	v.required("email", req.Email)
	v.email("email", req.Email)
	v.required("password", req.Password)
	if err := v.err(); err != nil {
		return model.LoginResponse{}, err
	}

	user, err := s.store.UserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.LoginResponse{}, ErrInvalidCredentials
		}
		return model.LoginResponse{}, err
	}

	match, err := crypto.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		return model.LoginResponse{}, err
	}
	if !match {
		return model.LoginResponse{}, ErrInvalidCredentials
	}

	company, err := s.store.CompanyByID(ctx, user.CompanyID)
	if err != nil {
		return model.LoginResponse{}, err
	}

	token, err := crypto.GenerateToken(user.ID, user.CompanyID, user.Email, user.Role, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.LoginResponse{}, err
	}

	return model.LoginResponse{
		User:    *user,
		Company: *company,
		Token:   token,
	}, nil
}
