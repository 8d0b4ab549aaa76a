package visibility

import (
	"testing"

	"github.com/angelmondragon/partdepot-backend/pkg/enums"
	"github.com/angelmondragon/partdepot-backend/pkg/errors"
	"github.com/angelmondragon/partdepot-backend/pkg/models"
)

func approvedSeller() *models.Seller {
	return &models.Seller{
		BusinessName: "Test Auto Parts",
		Status:       enums.SellerStatusApproved,
	}
}

func activeProduct() *models.Product {
	return &models.Product{
		Name:   "Brake caliper",
		Status: enums.ProductStatusActive,
	}
}

func TestListable(t *testing.T) {
	t.Run("active product approved seller", func(t *testing.T) {
		if !Listable(activeProduct(), approvedSeller()) {
			t.Fatal("expected listable")
		}
	})
	t.Run("out of stock remains browsable", func(t *testing.T) {
		product := activeProduct()
		product.Status = enums.ProductStatusOutOfStock
		if !Listable(product, approvedSeller()) {
			t.Fatal("expected out-of-stock listing to remain browsable")
		}
	})
	t.Run("sold excluded", func(t *testing.T) {
		product := activeProduct()
		product.Status = enums.ProductStatusSold
		if Listable(product, approvedSeller()) {
			t.Fatal("sold listings must never be listable")
		}
	})
	t.Run("inactive excluded", func(t *testing.T) {
		product := activeProduct()
		product.Status = enums.ProductStatusInactive
		if Listable(product, approvedSeller()) {
			t.Fatal("inactive listings must never be listable")
		}
	})
	t.Run("pending seller hides inventory", func(t *testing.T) {
		seller := approvedSeller()
		seller.Status = enums.SellerStatusPendingApproval
		if Listable(activeProduct(), seller) {
			t.Fatal("pending sellers must not be listable")
		}
	})
	t.Run("disabled seller hides inventory", func(t *testing.T) {
		seller := approvedSeller()
		seller.Status = enums.SellerStatusDisabled
		if Listable(activeProduct(), seller) {
			t.Fatal("disabled sellers must not be listable")
		}
	})
	t.Run("nil inputs", func(t *testing.T) {
		if Listable(nil, approvedSeller()) || Listable(activeProduct(), nil) {
			t.Fatal("nil inputs must never be listable")
		}
	})
}

func TestEnsureListingVisible(t *testing.T) {
	t.Run("product missing", func(t *testing.T) {
		err := EnsureListingVisible(ListingVisibilityInput{Seller: approvedSeller()})
		if err == nil || errors.As(err).Code() != errors.CodeNotFound {
			t.Fatalf("expected not found, got %v", err)
		}
	})
	t.Run("seller missing", func(t *testing.T) {
		err := EnsureListingVisible(ListingVisibilityInput{Product: activeProduct()})
		if err == nil || errors.As(err).Code() != errors.CodeNotFound {
			t.Fatalf("expected not found, got %v", err)
		}
	})
	t.Run("gated seller surfaces as not found", func(t *testing.T) {
		seller := approvedSeller()
		seller.Status = enums.SellerStatusDisabled
		err := EnsureListingVisible(ListingVisibilityInput{Product: activeProduct(), Seller: seller})
		if err == nil || errors.As(err).Code() != errors.CodeNotFound {
			t.Fatalf("expected not found, got %v", err)
		}
	})
	t.Run("success", func(t *testing.T) {
		err := EnsureListingVisible(ListingVisibilityInput{Product: activeProduct(), Seller: approvedSeller()})
		if err != nil {
			t.Fatalf("expected success, got %v", err)
		}
	})
}
