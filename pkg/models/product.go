package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/partdepot-backend/pkg/enums"
)

// Product is a seller listing. Image refs are opaque string handles; the
// engine never interprets image bytes.
type Product struct {
	ID          uuid.UUID              `json:"id"`
	SellerID    uuid.UUID              `json:"seller_id"`
	SKU         string                 `json:"sku"`
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Category    enums.ProductCategory  `json:"category"`
	Make        string                 `json:"make"`
	Model       string                 `json:"model"`
	YearStart   int                    `json:"year_start"`
	YearEnd     int                    `json:"year_end"`
	Condition   enums.ProductCondition `json:"condition"`
	Price       decimal.Decimal        `json:"price"`
	Quantity    int                    `json:"quantity"`
	Status      enums.ProductStatus    `json:"status"`
	ImageRefs   []string               `json:"image_refs"`
	IsVehicle   bool                   `json:"is_vehicle"`
	Vehicle     *VehicleDetails        `json:"vehicle,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

// VehicleDetails carries the vehicle-only subset present when IsVehicle is
// set.
type VehicleDetails struct {
	Mileage      int                `json:"mileage"`
	Transmission enums.Transmission `json:"transmission"`
	VIN          string             `json:"vin"`
}

// FitsYear reports whether the listing's compatibility range covers the
// given model year.
func (p *Product) FitsYear(year int) bool {
	return p.YearStart <= year && year <= p.YearEnd
}
