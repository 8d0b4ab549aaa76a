package marketplace

import (
	"strings"

	"github.com/google/uuid"

	"github.com/angelmondragon/partdepot-backend/pkg/enums"
	"github.com/angelmondragon/partdepot-backend/pkg/models"
	"github.com/angelmondragon/partdepot-backend/pkg/visibility"
)

// CatalogFilter narrows the public catalog. All fields are optional and
// combine conjunctively. Model only applies together with Make; the UI
// narrows model choices to those observed among make-matching listings.
type CatalogFilter struct {
	Query    string
	Make     string
	Model    string
	Year     *int
	Category *enums.ProductCategory
}

// ListCatalog returns the publicly visible listings matching the filter, in
// stable insertion order. No other sort is part of the contract; price or
// recency ordering is a presentation concern layered on top.
func (e *Engine) ListCatalog(filter CatalogFilter) []models.Product {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]models.Product, 0)
	for _, id := range e.productOrder {
		product := e.products[id]
		seller := e.sellers[product.SellerID]
		if !visibility.Listable(product, seller) {
			continue
		}
		if !matchesFilter(product, filter) {
			continue
		}
		out = append(out, *cloneProduct(product))
	}
	return out
}

// GetListing returns one publicly visible listing. Gated listings surface as
// not found.
func (e *Engine) GetListing(productID uuid.UUID) (*models.Product, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	product := e.products[productID]
	var seller *models.Seller
	if product != nil {
		seller = e.sellers[product.SellerID]
	}
	if err := visibility.EnsureListingVisible(visibility.ListingVisibilityInput{
		Product: product,
		Seller:  seller,
	}); err != nil {
		return nil, err
	}
	return cloneProduct(product), nil
}

// ModelsForMake returns the distinct models observed among visible listings
// of the given make, in first-seen order. Backs the UI's narrowing of model
// choices.
func (e *Engine) ModelsForMake(makeName string) []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, id := range e.productOrder {
		product := e.products[id]
		if !visibility.Listable(product, e.sellers[product.SellerID]) {
			continue
		}
		if !strings.EqualFold(product.Make, makeName) || product.Model == "" {
			continue
		}
		key := strings.ToLower(product.Model)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, product.Model)
	}
	return out
}

func matchesFilter(product *models.Product, filter CatalogFilter) bool {
	if query := strings.TrimSpace(filter.Query); query != "" && !matchesQuery(product, query) {
		return false
	}
	if filter.Make != "" {
		if !strings.EqualFold(product.Make, filter.Make) {
			return false
		}
		if filter.Model != "" && !strings.EqualFold(product.Model, filter.Model) {
			return false
		}
	}
	if filter.Year != nil && !product.FitsYear(*filter.Year) {
		return false
	}
	if filter.Category != nil && product.Category != *filter.Category {
		return false
	}
	return true
}

func matchesQuery(product *models.Product, query string) bool {
	needle := strings.ToLower(query)
	haystacks := []string{product.Name, product.Description, product.SKU}
	if product.Vehicle != nil {
		haystacks = append(haystacks, product.Vehicle.VIN)
	}
	for _, value := range haystacks {
		if strings.Contains(strings.ToLower(value), needle) {
			return true
		}
	}
	return false
}
