package marketplace

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/partdepot-backend/pkg/enums"
	"github.com/angelmondragon/partdepot-backend/pkg/models"
	"github.com/angelmondragon/partdepot-backend/pkg/types"
)

func newTestEngine() *Engine {
	return NewEngine(Options{})
}

func testAddress() types.Address {
	return types.Address{
		Line1:      "12 Workshop Rd",
		City:       "Nairobi",
		State:      "Nairobi",
		PostalCode: "00100",
		Country:    "KE",
	}
}

func registerSeller(t *testing.T, e *Engine) *models.Seller {
	t.Helper()
	seller, err := e.RegisterSeller(SellerDraft{
		BusinessName:  "Test Auto Spares",
		ContactPerson: "Sam Tester",
		Phone:         "+254700000000",
		Address:       testAddress(),
	})
	if err != nil {
		t.Fatalf("register seller: %v", err)
	}
	return seller
}

func registerApprovedSeller(t *testing.T, e *Engine) *models.Seller {
	t.Helper()
	seller := registerSeller(t, e)
	if err := e.SetSellerStatus(seller.UserID, enums.SellerStatusApproved); err != nil {
		t.Fatalf("approve seller: %v", err)
	}
	return seller
}

func baseDraft() ProductDraft {
	return ProductDraft{
		Name:        "Front brake caliper",
		Description: "OEM caliper, left side",
		Category:    enums.CategoryBrakes,
		Make:        "Toyota",
		Model:       "Hilux",
		YearStart:   2015,
		YearEnd:     2022,
		Condition:   enums.ProductConditionUsed,
		Price:       decimal.NewFromInt(4500),
		Quantity:    3,
		ImageRefs:   []string{"blob://img/1"},
	}
}

func vehicleDetails() *models.VehicleDetails {
	return &models.VehicleDetails{
		Mileage:      98000,
		Transmission: enums.TransmissionManual,
		VIN:          "JTEBU5JR8K5612345",
	}
}

func createProduct(t *testing.T, e *Engine, sellerID uuid.UUID, mutate func(*ProductDraft)) *models.Product {
	t.Helper()
	draft := baseDraft()
	if mutate != nil {
		mutate(&draft)
	}
	product, err := e.CreateProduct(sellerID, draft)
	if err != nil {
		t.Fatalf("create product: %v", err)
	}
	return product
}
