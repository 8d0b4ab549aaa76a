package visibility

import (
	"github.com/angelmondragon/partdepot-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/partdepot-backend/pkg/errors"
	"github.com/angelmondragon/partdepot-backend/pkg/models"
)

// ListingVisibilityInput drives the shared visibility checks for buyer-facing
// queries.
type ListingVisibilityInput struct {
	Product *models.Product
	Seller  *models.Seller
}

// Listable is the catalog predicate: a product is discoverable only while its
// status is browsable and its owning seller is approved. Disabling a seller
// hides inventory without mutating it.
func Listable(product *models.Product, seller *models.Seller) bool {
	if product == nil || seller == nil {
		return false
	}
	if !product.Status.Browsable() {
		return false
	}
	return seller.Status == enums.SellerStatusApproved
}

// EnsureListingVisible enforces the canonical rules so gated listings never
// leak through buyer queries. Gated listings surface as not found rather than
// revealing moderation state.
func EnsureListingVisible(input ListingVisibilityInput) error {
	if input.Product == nil {
		return pkgerrors.New(pkgerrors.CodeNotFound, "listing not found")
	}
	if input.Seller == nil {
		return pkgerrors.New(pkgerrors.CodeNotFound, "listing not found")
	}
	if !input.Product.Status.Browsable() {
		return pkgerrors.New(pkgerrors.CodeNotFound, "listing not available")
	}
	if input.Seller.Status != enums.SellerStatusApproved {
		return pkgerrors.New(pkgerrors.CodeNotFound, "listing not available")
	}
	return nil
}
