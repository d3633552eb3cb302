package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/freightdesk/freightdesk-go/internal/model"
)

var (
	ErrPackageNotFound = errors.New("package not found")
	ErrUnknownColumn   = errors.New("unknown package column")
)

// packageAttrColumns lists the optional package columns, in schema order.
// It is the whitelist for partial updates: a column not in this list (or
// order_id) never reaches the SQL text.
var packageAttrColumns = []string{
	"order_item_id",
	"customer_id",
	"customer_unique_id",
	"customer_zip_code_prefix",
	"customer_city",
	"customer_state",
	"product_id",
	"product_category_name",
	"product_name_length",
	"product_description_length",
	"product_photos_qty",
	"product_weight_g",
	"product_length_cm",
	"product_height_cm",
	"product_width_cm",
	"seller_id",
	"seller_city",
	"seller_state",
	"seller_zip_code_prefix",
	"payment_type",
	"payment_sequential",
	"payment_installments",
	"installments_price",
	"price",
	"freight_value",
	"payment_value",
	"shipping_limit_date",
	"order_purchase_timestamp",
	"order_approved_at",
	"order_delivered_carrier_date",
	"order_delivered_customer_date",
	"order_estimated_delivery_date",
	"shipping_duration",
	"day_of_purchase",
	"month_of_purchase",
	"year_of_purchase",
	"month_year_of_purchase",
	"order_status",
	"order_unique_id",
}

var allowedPackageColumns = func() map[string]bool {
	allowed := map[string]bool{"order_id": true}
	for _, c := range packageAttrColumns {
		allowed[c] = true
	}
	return allowed
}()

// PackageRepository handles package persistence operations.
type PackageRepository struct {
	db *sql.DB
}

// NewPackageRepository creates a new PackageRepository.
func NewPackageRepository(db *sql.DB) *PackageRepository {
	return &PackageRepository{db: db}
}

func packageSelectColumns() string {
	return "id, company_id, order_id, " + strings.Join(packageAttrColumns, ", ") + ", created_at, updated_at"
}

// Create inserts a new package and sets the generated ID on the struct.
// Unset optional attributes persist as NULL.
func (r *PackageRepository) Create(ctx context.Context, pkg *model.Package) error {
	columns := append([]string{"company_id", "order_id"}, packageAttrColumns...)
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")

	query := fmt.Sprintf("INSERT INTO packages (%s) VALUES (%s)", strings.Join(columns, ", "), placeholders)

	args := append([]any{pkg.CompanyID, pkg.OrderID}, packageAttrArgs(&pkg.PackageAttrs)...)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	pkg.ID = id
	return nil
}

// GetByID retrieves a package by its ID. Tenant checks happen in the
// service layer; this is a plain primary-key lookup.
func (r *PackageRepository) GetByID(ctx context.Context, id int64) (*model.Package, error) {
	query := "SELECT " + packageSelectColumns() + " FROM packages WHERE id = ?"

	pkg := &model.Package{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(packageScanDests(pkg)...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPackageNotFound
		}
		return nil, err
	}

	return pkg, nil
}

// ListByCompany retrieves all packages belonging to a company.
func (r *PackageRepository) ListByCompany(ctx context.Context, companyID int64) ([]model.Package, error) {
	query := "SELECT " + packageSelectColumns() + " FROM packages WHERE company_id = ? ORDER BY id"

	rows, err := r.db.QueryContext(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var packages []model.Package
	for rows.Next() {
		var p model.Package
		if err := rows.Scan(packageScanDests(&p)...); err != nil {
			return nil, err
		}
		packages = append(packages, p)
	}

	return packages, rows.Err()
}

// Update writes the given columns for a package. Column names are checked
// against the whitelist; values are always bound as parameters. An empty
// change set is a no-op.
func (r *PackageRepository) Update(ctx context.Context, id int64, changes map[string]any) error {
	if len(changes) == 0 {
		return nil
	}

	columns := make([]string, 0, len(changes))
	for column := range changes {
		if !allowedPackageColumns[column] {
			return fmt.Errorf("%w: %s", ErrUnknownColumn, column)
		}
		columns = append(columns, column)
	}
	sort.Strings(columns)

	assignments := make([]string, len(columns))
	args := make([]any, 0, len(columns)+1)
	for i, column := range columns {
		assignments[i] = column + " = ?"
		args = append(args, changes[column])
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE packages SET %s WHERE id = ?", strings.Join(assignments, ", "))

	_, err := r.db.ExecContext(ctx, query, args...)
	return err
}

// Delete removes a package by ID.
func (r *PackageRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM packages WHERE id = ?`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrPackageNotFound
	}

	return nil
}

// packageAttrArgs returns the attribute values in packageAttrColumns order,
// for INSERT binding. Nil pointers bind as NULL.
func packageAttrArgs(a *model.PackageAttrs) []any {
	return []any{
		a.OrderItemID,
		a.CustomerID,
		a.CustomerUniqueID,
		a.CustomerZipCodePrefix,
		a.CustomerCity,
		a.CustomerState,
		a.ProductID,
		a.ProductCategoryName,
		a.ProductNameLength,
		a.ProductDescriptionLength,
		a.ProductPhotosQty,
		a.ProductWeightG,
		a.ProductLengthCm,
		a.ProductHeightCm,
		a.ProductWidthCm,
		a.SellerID,
		a.SellerCity,
		a.SellerState,
		a.SellerZipCodePrefix,
		a.PaymentType,
		a.PaymentSequential,
		a.PaymentInstallments,
		a.InstallmentsPrice,
		a.Price,
		a.FreightValue,
		a.PaymentValue,
		a.ShippingLimitDate,
		a.OrderPurchaseTimestamp,
		a.OrderApprovedAt,
		a.OrderDeliveredCarrierDate,
		a.OrderDeliveredCustomerDate,
		a.OrderEstimatedDeliveryDate,
		a.ShippingDuration,
		a.DayOfPurchase,
		a.MonthOfPurchase,
		a.YearOfPurchase,
		a.MonthYearOfPurchase,
		a.OrderStatus,
		a.OrderUniqueID,
	}
}

// packageScanDests returns scan destinations matching packageSelectColumns.
// NULL columns scan to nil pointers.
func packageScanDests(p *model.Package) []any {
	a := &p.PackageAttrs
	return []any{
		&p.ID,
		&p.CompanyID,
		&p.OrderID,
		&a.OrderItemID,
		&a.CustomerID,
		&a.CustomerUniqueID,
		&a.CustomerZipCodePrefix,
		&a.CustomerCity,
		&a.CustomerState,
		&a.ProductID,
		&a.ProductCategoryName,
		&a.ProductNameLength,
		&a.ProductDescriptionLength,
		&a.ProductPhotosQty,
		&a.ProductWeightG,
		&a.ProductLengthCm,
		&a.ProductHeightCm,
		&a.ProductWidthCm,
		&a.SellerID,
		&a.SellerCity,
		&a.SellerState,
		&a.SellerZipCodePrefix,
		&a.PaymentType,
		&a.PaymentSequential,
		&a.PaymentInstallments,
		&a.InstallmentsPrice,
		&a.Price,
		&a.FreightValue,
		&a.PaymentValue,
		&a.ShippingLimitDate,
		&a.OrderPurchaseTimestamp,
		&a.OrderApprovedAt,
		&a.OrderDeliveredCarrierDate,
		&a.OrderDeliveredCustomerDate,
		&a.OrderEstimatedDeliveryDate,
		&a.ShippingDuration,
		&a.DayOfPurchase,
		&a.MonthOfPurchase,
		&a.YearOfPurchase,
		&a.MonthYearOfPurchase,
		&a.OrderStatus,
		&a.OrderUniqueID,
		&p.CreatedAt,
		&p.UpdatedAt,
	}
}
