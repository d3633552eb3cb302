package model

import "time"

// Company is a tenant. Every user and package belongs to exactly one company.
type Company struct {
	ID             int64     `json:"id"`
	CompanyName    string    `json:"company_name"`
	CompanyAddress string    `json:"company_address"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
