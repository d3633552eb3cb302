package model

import "time"

// Package is a shipment record. Beyond the required order id, every
// attribute is optional; nil pointers persist as SQL NULL. Date and
// timestamp attributes stay strings: the API stores what the client sends.
type Package struct {
	ID        int64  `json:"id"`
	CompanyID int64  `json:"company_id"`
	OrderID   string `json:"order_id"`
	PackageAttrs
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PackageAttrs holds the optional shipment, product and payment attributes
// of a package.
type PackageAttrs struct {
	OrderItemID              *int64   `json:"order_item_id"`
	CustomerID               *string  `json:"customer_id"`
	CustomerUniqueID         *string  `json:"customer_unique_id"`
	CustomerZipCodePrefix    *int64   `json:"customer_zip_code_prefix"`
	CustomerCity             *string  `json:"customer_city"`
	CustomerState            *string  `json:"customer_state"`
	ProductID                *string  `json:"product_id"`
	ProductCategoryName      *string  `json:"product_category_name"`
	ProductNameLength        *int64   `json:"product_name_length"`
	ProductDescriptionLength *int64   `json:"product_description_length"`
	ProductPhotosQty         *int64   `json:"product_photos_qty"`
	ProductWeightG           *float64 `json:"product_weight_g"`
	ProductLengthCm          *float64 `json:"product_length_cm"`
	ProductHeightCm          *float64 `json:"product_height_cm"`
	ProductWidthCm           *float64 `json:"product_width_cm"`
	SellerID                 *string  `json:"seller_id"`
	SellerCity               *string  `json:"seller_city"`
	SellerState              *string  `json:"seller_state"`
	SellerZipCodePrefix      *int64   `json:"seller_zip_code_prefix"`
	PaymentType              *string  `json:"payment_type"`
	PaymentSequential        *int64   `json:"payment_sequential"`
	PaymentInstallments      *int64   `json:"payment_installments"`
	InstallmentsPrice        *float64 `json:"installments_price"`
	Price                    *float64 `json:"price"`
	FreightValue             *float64 `json:"freight_value"`
	PaymentValue             *float64 `json:"payment_value"`
	ShippingLimitDate        *string  `json:"shipping_limit_date"`
	OrderPurchaseTimestamp   *string  `json:"order_purchase_timestamp"`
	OrderApprovedAt          *string  `json:"order_approved_at"`
	OrderDeliveredCarrierDate  *string `json:"order_delivered_carrier_date"`
	OrderDeliveredCustomerDate *string `json:"order_delivered_customer_date"`
	OrderEstimatedDeliveryDate *string `json:"order_estimated_delivery_date"`
	ShippingDuration         *int64   `json:"shipping_duration"`
	DayOfPurchase            *int64   `json:"day_of_purchase"`
	MonthOfPurchase          *int64   `json:"month_of_purchase"`
	YearOfPurchase           *int64   `json:"year_of_purchase"`
	MonthYearOfPurchase      *string  `json:"month_year_of_purchase"`
	OrderStatus              *string  `json:"order_status"`
	OrderUniqueID            *string  `json:"order_unique_id"`
}

// Changes returns the set attributes as a column->value map, used to build
// parameterized partial updates. Column names must match schema.sql.
func (a *PackageAttrs) Changes() map[string]any {
	changes := make(map[string]any)

	if a.OrderItemID != nil {
		changes["order_item_id"] = *a.OrderItemID
	}
	if a.CustomerID != nil {
		changes["customer_id"] = *a.CustomerID
	}
	if a.CustomerUniqueID != nil {
		changes["customer_unique_id"] = *a.CustomerUniqueID
	}
	if a.CustomerZipCodePrefix != nil {
		changes["customer_zip_code_prefix"] = *a.CustomerZipCodePrefix
	}
	if a.CustomerCity != nil {
		changes["customer_city"] = *a.CustomerCity
	}
	if a.CustomerState != nil {
		changes["customer_state"] = *a.CustomerState
	}
	if a.ProductID != nil {
		changes["product_id"] = *a.ProductID
	}
	if a.ProductCategoryName != nil {
		changes["product_category_name"] = *a.ProductCategoryName
	}
	if a.ProductNameLength != nil {
		changes["product_name_length"] = *a.ProductNameLength
	}
	if a.ProductDescriptionLength != nil {
		changes["product_description_length"] = *a.ProductDescriptionLength
	}
	if a.ProductPhotosQty != nil {
		changes["product_photos_qty"] = *a.ProductPhotosQty
	}
	if a.ProductWeightG != nil {
		changes["product_weight_g"] = *a.ProductWeightG
	}
	if a.ProductLengthCm != nil {
		changes["product_length_cm"] = *a.ProductLengthCm
	}
	if a.ProductHeightCm != nil {
		changes["product_height_cm"] = *a.ProductHeightCm
	}
	if a.ProductWidthCm != nil {
		changes["product_width_cm"] = *a.ProductWidthCm
	}
	if a.SellerID != nil {
		changes["seller_id"] = *a.SellerID
	}
	if a.SellerCity != nil {
		changes["seller_city"] = *a.SellerCity
	}
	if a.SellerState != nil {
		changes["seller_state"] = *a.SellerState
	}
	if a.SellerZipCodePrefix != nil {
		changes["seller_zip_code_prefix"] = *a.SellerZipCodePrefix
	}
	if a.PaymentType != nil {
		changes["payment_type"] = *a.PaymentType
	}
	if a.PaymentSequential != nil {
		changes["payment_sequential"] = *a.PaymentSequential
	}
	if a.PaymentInstallments != nil {
		changes["payment_installments"] = *a.PaymentInstallments
	}
	if a.InstallmentsPrice != nil {
		changes["installments_price"] = *a.InstallmentsPrice
	}
	if a.Price != nil {
		changes["price"] = *a.Price
	}
	if a.FreightValue != nil {
		changes["freight_value"] = *a.FreightValue
	}
	if a.PaymentValue != nil {
		changes["payment_value"] = *a.PaymentValue
	}
	if a.ShippingLimitDate != nil {
		changes["shipping_limit_date"] = *a.ShippingLimitDate
	}
	if a.OrderPurchaseTimestamp != nil {
		changes["order_purchase_timestamp"] = *a.OrderPurchaseTimestamp
	}
	if a.OrderApprovedAt != nil {
		changes["order_approved_at"] = *a.OrderApprovedAt
	}
	if a.OrderDeliveredCarrierDate != nil {
		changes["order_delivered_carrier_date"] = *a.OrderDeliveredCarrierDate
	}
	if a.OrderDeliveredCustomerDate != nil {
		changes["order_delivered_customer_date"] = *a.OrderDeliveredCustomerDate
	}
	if a.OrderEstimatedDeliveryDate != nil {
		changes["order_estimated_delivery_date"] = *a.OrderEstimatedDeliveryDate
	}
	if a.ShippingDuration != nil {
		changes["shipping_duration"] = *a.ShippingDuration
	}
	if a.DayOfPurchase != nil {
		changes["day_of_purchase"] = *a.DayOfPurchase
	}
	if a.MonthOfPurchase != nil {
		changes["month_of_purchase"] = *a.MonthOfPurchase
	}
	if a.YearOfPurchase != nil {
		changes["year_of_purchase"] = *a.YearOfPurchase
	}
	if a.MonthYearOfPurchase != nil {
		changes["month_year_of_purchase"] = *a.MonthYearOfPurchase
	}
	if a.OrderStatus != nil {
		changes["order_status"] = *a.OrderStatus
	}
	if a.OrderUniqueID != nil {
		changes["order_unique_id"] = *a.OrderUniqueID
	}

	return changes
}

// CreatePackageRequest is the body of POST /api/packages. Any company_id in
// the request body is ignored; the tenant always comes from the token.
type CreatePackageRequest struct {
	OrderID string `json:"order_id"`
	PackageAttrs
}

// CreatePackageResponse is returned on successful package creation.
type CreatePackageResponse struct {
	PackageID int64 `json:"package_id"`
}

// UpdatePackageRequest is the body of PUT /api/packages/{id}. Only set
// fields are written.
type UpdatePackageRequest struct {
	OrderID *string `json:"order_id"`
	PackageAttrs
}
