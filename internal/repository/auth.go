package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/freightdesk/freightdesk-go/internal/model"
)

// AuthRepository backs the registration and login flows. Registration is the
// only multi-write operation in the system, so the transaction lives here.
type AuthRepository struct {
	db        *sql.DB
	users     *UserRepository
	companies *CompanyRepository
}

// NewAuthRepository creates a new AuthRepository.
func NewAuthRepository(db *sql.DB) *AuthRepository {
	return &AuthRepository{
		db:        db,
		users:     NewUserRepository(db),
		companies: NewCompanyRepository(db),
	}
}

// CreateCompanyWithAdmin inserts a company and its first admin user in a
// single transaction. Either both rows exist afterwards or neither does.
// The generated IDs are set on the passed structs on success.
func (r *AuthRepository) CreateCompanyWithAdmin(ctx context.Context, company *model.Company, admin *model.User) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin registration transaction: %w", err)
	}
	defer tx.Rollback()

	if err := r.companies.CreateTx(ctx, tx, company); err != nil {
		return fmt.Errorf("insert company: %w", err)
	}

	admin.CompanyID = company.ID
	if err := r.users.CreateTx(ctx, tx, admin); err != nil {
		return fmt.Errorf("insert admin user: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit registration transaction: %w", err)
	}

	return nil
}

// UserByEmail retrieves a user by email address.
func (r *AuthRepository) UserByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.users.GetByEmail(ctx, email)
}

// CompanyByID retrieves a company by ID.
func (r *AuthRepository) CompanyByID(ctx context.Context, id int64) (*model.Company, error) {
	return r.companies.GetByID(ctx, id)
}
