package marketplace

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/partdepot-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/partdepot-backend/pkg/errors"
	"github.com/angelmondragon/partdepot-backend/pkg/models"
)

const vinLength = 17

// ProductDraft holds the validated payload to create a listing.
type ProductDraft struct {
	SKU         string
	Name        string
	Description string
	Category    enums.ProductCategory
	Make        string
	Model       string
	YearStart   int
	YearEnd     int
	Condition   enums.ProductCondition
	Price       decimal.Decimal
	Quantity    int
	ImageRefs   []string
	IsVehicle   bool
	Vehicle     *models.VehicleDetails
}

// ProductPatch holds optional mutation values for a listing. The whole patch
// applies or the operation fails; there is no partial application.
type ProductPatch struct {
	SKU         *string
	Name        *string
	Description *string
	Category    *enums.ProductCategory
	Make        *string
	Model       *string
	YearStart   *int
	YearEnd     *int
	Condition   *enums.ProductCondition
	Price       *decimal.Decimal
	Quantity    *int
	Status      *enums.ProductStatus
	ImageRefs   *[]string
	Vehicle     *models.VehicleDetails
}

// CreateProduct adds a listing to the seller's inventory with status active.
// Whether it shows up in the catalog depends on the seller's status, checked
// at read time. Publishing requires at least one image.
func (e *Engine) CreateProduct(sellerID uuid.UUID, draft ProductDraft) (*models.Product, error) {
	if err := validateProductDraft(draft); err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.sellers[sellerID]; !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "seller not found")
	}

	sku := strings.TrimSpace(draft.SKU)
	if sku == "" {
		sku = generateSKU(draft.Make)
	}

	now := time.Now().UTC()
	product := &models.Product{
		ID:          uuid.New(),
		SellerID:    sellerID,
		SKU:         sku,
		Name:        strings.TrimSpace(draft.Name),
		Description: strings.TrimSpace(draft.Description),
		Category:    draft.Category,
		Make:        strings.TrimSpace(draft.Make),
		Model:       strings.TrimSpace(draft.Model),
		YearStart:   draft.YearStart,
		YearEnd:     draft.YearEnd,
		Condition:   draft.Condition,
		Price:       draft.Price,
		Quantity:    draft.Quantity,
		Status:      enums.ProductStatusActive,
		ImageRefs:   append([]string(nil), draft.ImageRefs...),
		IsVehicle:   draft.IsVehicle,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if draft.Vehicle != nil {
		vehicle := *draft.Vehicle
		product.Vehicle = &vehicle
	}

	e.products[product.ID] = product
	e.productOrder = append(e.productOrder, product.ID)

	return cloneProduct(product), nil
}

// UpdateProduct merges the patch into the existing listing. Fails without
// side effects when the product is unknown or the patched values are invalid.
func (e *Engine) UpdateProduct(productID uuid.UUID, patch ProductPatch) (*models.Product, error) {
	if err := validateProductPatch(patch); err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	product, ok := e.products[productID]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}

	applyPatchToProduct(product, patch)
	product.UpdatedAt = time.Now().UTC()

	return cloneProduct(product), nil
}

// DeleteProduct removes the listing unconditionally. Orders snapshot item
// data at creation time, so existing orders are unaffected.
func (e *Engine) DeleteProduct(productID uuid.UUID) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.products[productID]; !ok {
		return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	delete(e.products, productID)
	for i, id := range e.productOrder {
		if id == productID {
			e.productOrder = append(e.productOrder[:i], e.productOrder[i+1:]...)
			break
		}
	}
	return nil
}

// GetProduct returns a copy of the listing regardless of visibility. Seller
// dashboards use this; buyer reads go through the catalog.
func (e *Engine) GetProduct(productID uuid.UUID) (*models.Product, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	product, ok := e.products[productID]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return cloneProduct(product), nil
}

// ListSellerProducts returns the seller's full inventory in insertion order,
// including listings the catalog hides.
func (e *Engine) ListSellerProducts(sellerID uuid.UUID) ([]models.Product, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.sellers[sellerID]; !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "seller not found")
	}

	out := make([]models.Product, 0)
	for _, id := range e.productOrder {
		product := e.products[id]
		if product.SellerID != sellerID {
			continue
		}
		out = append(out, *cloneProduct(product))
	}
	return out, nil
}

func validateProductDraft(draft ProductDraft) error {
	if strings.TrimSpace(draft.Name) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	if len(draft.ImageRefs) == 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "at least one image is required")
	}
	if !draft.Category.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid category")
	}
	if !draft.Condition.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid condition")
	}
	if draft.Price.IsNegative() {
		return pkgerrors.New(pkgerrors.CodeValidation, "price must be non-negative")
	}
	if draft.Quantity < 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "quantity must be non-negative")
	}
	if draft.YearStart > draft.YearEnd {
		return pkgerrors.New(pkgerrors.CodeValidation, "year_start cannot exceed year_end")
	}
	if draft.IsVehicle {
		if draft.Vehicle == nil {
			return pkgerrors.New(pkgerrors.CodeValidation, "vehicle details required for vehicle listings")
		}
		if err := validateVehicleDetails(*draft.Vehicle); err != nil {
			return err
		}
	}
	return nil
}

func validateProductPatch(patch ProductPatch) error {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "name cannot be blank")
	}
	if patch.ImageRefs != nil && len(*patch.ImageRefs) == 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "at least one image is required")
	}
	if patch.Category != nil && !patch.Category.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid category")
	}
	if patch.Condition != nil && !patch.Condition.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid condition")
	}
	if patch.Status != nil && !patch.Status.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid status")
	}
	if patch.Price != nil && patch.Price.IsNegative() {
		return pkgerrors.New(pkgerrors.CodeValidation, "price must be non-negative")
	}
	if patch.Quantity != nil && *patch.Quantity < 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "quantity must be non-negative")
	}
	if patch.Vehicle != nil {
		if err := validateVehicleDetails(*patch.Vehicle); err != nil {
			return err
		}
	}
	return nil
}

func validateVehicleDetails(details models.VehicleDetails) error {
	if details.VIN != "" && len(details.VIN) != vinLength {
		return pkgerrors.New(pkgerrors.CodeValidation, "vin must be 17 characters")
	}
	if details.Mileage < 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "mileage must be non-negative")
	}
	if details.Transmission != "" && !details.Transmission.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid transmission")
	}
	return nil
}

func applyPatchToProduct(product *models.Product, patch ProductPatch) {
	if patch.SKU != nil {
		product.SKU = strings.TrimSpace(*patch.SKU)
	}
	if patch.Name != nil {
		product.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Description != nil {
		product.Description = strings.TrimSpace(*patch.Description)
	}
	if patch.Category != nil {
		product.Category = *patch.Category
	}
	if patch.Make != nil {
		product.Make = strings.TrimSpace(*patch.Make)
	}
	if patch.Model != nil {
		product.Model = strings.TrimSpace(*patch.Model)
	}
	if patch.YearStart != nil {
		product.YearStart = *patch.YearStart
	}
	if patch.YearEnd != nil {
		product.YearEnd = *patch.YearEnd
	}
	if patch.Condition != nil {
		product.Condition = *patch.Condition
	}
	if patch.Price != nil {
		product.Price = *patch.Price
	}
	if patch.Quantity != nil {
		product.Quantity = *patch.Quantity
		if product.Quantity > 0 && product.Status == enums.ProductStatusOutOfStock {
			product.Status = enums.ProductStatusActive
		}
	}
	if patch.Status != nil {
		product.Status = *patch.Status
	}
	if patch.ImageRefs != nil {
		product.ImageRefs = append([]string(nil), *patch.ImageRefs...)
	}
	if patch.Vehicle != nil {
		vehicle := *patch.Vehicle
		product.Vehicle = &vehicle
	}
}

// generateSKU builds a make-prefixed SKU with a short random suffix. No
// uniqueness scan: collisions are possible and accepted at this scale.
func generateSKU(makeName string) string {
	prefix := strings.ToUpper(strings.TrimSpace(makeName))
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	if prefix == "" {
		prefix = "PRT"
	}
	return prefix + "-" + randomToken(6)
}

func cloneProduct(product *models.Product) *models.Product {
	out := *product
	out.ImageRefs = append([]string(nil), product.ImageRefs...)
	if product.Vehicle != nil {
		vehicle := *product.Vehicle
		out.Vehicle = &vehicle
	}
	return &out
}
