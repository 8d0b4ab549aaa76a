package enums

import "fmt"

// ProductStatus represents the lifecycle of a listing.
type ProductStatus string

const (
	ProductStatusActive     ProductStatus = "active"
	ProductStatusOutOfStock ProductStatus = "out_of_stock"
	ProductStatusSold       ProductStatus = "sold"
	ProductStatusInactive   ProductStatus = "inactive"
)

var validProductStatuses = []ProductStatus{
	ProductStatusActive,
	ProductStatusOutOfStock,
	ProductStatusSold,
	ProductStatusInactive,
}

// String implements fmt.Stringer.
func (s ProductStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known ProductStatus.
func (s ProductStatus) IsValid() bool {
	for _, candidate := range validProductStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseProductStatus converts raw input into a ProductStatus.
func ParseProductStatus(value string) (ProductStatus, error) {
	for _, candidate := range validProductStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid product status %q", value)
}

// Browsable reports whether a listing with this status may appear in the
// public catalog. Sold and inactive listings are always excluded.
func (s ProductStatus) Browsable() bool {
	return s == ProductStatusActive || s == ProductStatusOutOfStock
}

// ProductCondition describes the physical state of a part.
type ProductCondition string

const (
	ProductConditionNew     ProductCondition = "new"
	ProductConditionUsed    ProductCondition = "used"
	ProductConditionSalvage ProductCondition = "salvage"
)

var validProductConditions = []ProductCondition{
	ProductConditionNew,
	ProductConditionUsed,
	ProductConditionSalvage,
}

// String implements fmt.Stringer.
func (c ProductCondition) String() string {
	return string(c)
}

// IsValid reports whether the value is a known ProductCondition.
func (c ProductCondition) IsValid() bool {
	for _, candidate := range validProductConditions {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseProductCondition converts raw input into a ProductCondition.
func ParseProductCondition(value string) (ProductCondition, error) {
	for _, candidate := range validProductConditions {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid product condition %q", value)
}

// ProductCategory buckets listings for browse filtering.
type ProductCategory string

const (
	CategoryEngine       ProductCategory = "engine"
	CategoryTransmission ProductCategory = "transmission"
	CategoryBrakes       ProductCategory = "brakes"
	CategorySuspension   ProductCategory = "suspension"
	CategoryElectrical   ProductCategory = "electrical"
	CategoryBody         ProductCategory = "body"
	CategoryWheelsTires  ProductCategory = "wheels_tires"
	CategoryInterior     ProductCategory = "interior"
	CategoryAccessories  ProductCategory = "accessories"
	CategoryVehicles     ProductCategory = "vehicles"
)

var validProductCategories = []ProductCategory{
	CategoryEngine,
	CategoryTransmission,
	CategoryBrakes,
	CategorySuspension,
	CategoryElectrical,
	CategoryBody,
	CategoryWheelsTires,
	CategoryInterior,
	CategoryAccessories,
	CategoryVehicles,
}

// String implements fmt.Stringer.
func (c ProductCategory) String() string {
	return string(c)
}

// IsValid reports whether the value is a known ProductCategory.
func (c ProductCategory) IsValid() bool {
	for _, candidate := range validProductCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseProductCategory converts raw input into a ProductCategory.
func ParseProductCategory(value string) (ProductCategory, error) {
	for _, candidate := range validProductCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid product category %q", value)
}

// Transmission is the gearbox variant on vehicle listings.
type Transmission string

const (
	TransmissionManual    Transmission = "manual"
	TransmissionAutomatic Transmission = "automatic"
)

var validTransmissions = []Transmission{
	TransmissionManual,
	TransmissionAutomatic,
}

// String implements fmt.Stringer.
func (t Transmission) String() string {
	return string(t)
}

// IsValid reports whether the value is a known Transmission.
func (t Transmission) IsValid() bool {
	for _, candidate := range validTransmissions {
		if candidate == t {
			return true
		}
	}
	return false
}

// ParseTransmission converts raw input into a Transmission.
func ParseTransmission(value string) (Transmission, error) {
	for _, candidate := range validTransmissions {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid transmission %q", value)
}
