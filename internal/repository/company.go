package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/freightdesk/freightdesk-go/internal/model"
)

var ErrCompanyNotFound = errors.New("company not found")

// CompanyRepository handles company persistence operations.
type CompanyRepository struct {
	db *sql.DB
}

// NewCompanyRepository creates a new CompanyRepository.
func NewCompanyRepository(db *sql.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

const companyColumns = `id, company_name, company_address, created_at, updated_at`

// GetByID retrieves a company by its ID.
func (r *CompanyRepository) GetByID(ctx context.Context, id int64) (*model.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = ?`

	company := &model.Company{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&company.ID, &company.CompanyName, &company.CompanyAddress,
		&company.CreatedAt, &company.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}

	return company, nil
}

// List retrieves all companies.
func (r *CompanyRepository) List(ctx context.Context) ([]model.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var companies []model.Company
	for rows.Next() {
		var c model.Company
		if err := rows.Scan(&c.ID, &c.CompanyName, &c.CompanyAddress, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		companies = append(companies, c)
	}

	return companies, rows.Err()
}

// CreateTx inserts a company within the provided transaction and sets the
// generated ID on the company struct.
func (r *CompanyRepository) CreateTx(ctx context.Context, tx *sql.Tx, company *model.Company) error {
	query := `INSERT INTO companies (company_name, company_address) VALUES (?, ?)`

	result, err := tx.ExecContext(ctx, query, company.CompanyName, company.CompanyAddress)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	company.ID = id
	return nil
}
