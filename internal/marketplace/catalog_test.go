package marketplace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/partdepot-backend/pkg/enums"
)

func TestListCatalogExcludesUnapprovedSellers(t *testing.T) {
	e := newTestEngine()
	pending := registerSeller(t, e)
	approved := registerApprovedSeller(t, e)

	createProduct(t, e, pending.UserID, func(d *ProductDraft) { d.Name = "hidden part" })
	visible := createProduct(t, e, approved.UserID, func(d *ProductDraft) { d.Name = "visible part" })

	catalog := e.ListCatalog(CatalogFilter{})
	require.Len(t, catalog, 1)
	assert.Equal(t, visible.ID, catalog[0].ID)
}

func TestListCatalogExcludesSoldAndInactive(t *testing.T) {
	e := newTestEngine()
	seller := registerApprovedSeller(t, e)

	active := createProduct(t, e, seller.UserID, nil)
	sold := createProduct(t, e, seller.UserID, nil)
	inactive := createProduct(t, e, seller.UserID, nil)

	soldStatus := enums.ProductStatusSold
	_, err := e.UpdateProduct(sold.ID, ProductPatch{Status: &soldStatus})
	require.NoError(t, err)
	inactiveStatus := enums.ProductStatusInactive
	_, err = e.UpdateProduct(inactive.ID, ProductPatch{Status: &inactiveStatus})
	require.NoError(t, err)

	catalog := e.ListCatalog(CatalogFilter{})
	require.Len(t, catalog, 1)
	assert.Equal(t, active.ID, catalog[0].ID)
}

func TestListCatalogIncludesOutOfStock(t *testing.T) {
	e := newTestEngine()
	seller := registerApprovedSeller(t, e)
	product := createProduct(t, e, seller.UserID, func(d *ProductDraft) { d.Quantity = 0 })

	oos := enums.ProductStatusOutOfStock
	_, err := e.UpdateProduct(product.ID, ProductPatch{Status: &oos})
	require.NoError(t, err)

	catalog := e.ListCatalog(CatalogFilter{})
	require.Len(t, catalog, 1)
}

func TestDisableSellerHidesWithoutDeleting(t *testing.T) {
	e := newTestEngine()
	seller := registerApprovedSeller(t, e)
	product := createProduct(t, e, seller.UserID, nil)

	require.Len(t, e.ListCatalog(CatalogFilter{}), 1)

	require.NoError(t, e.SetSellerStatus(seller.UserID, enums.SellerStatusDisabled))
	assert.Empty(t, e.ListCatalog(CatalogFilter{}), "disabling must hide the seller's listings")

	stored, err := e.GetProduct(product.ID)
	require.NoError(t, err, "hidden listings must not be deleted")
	assert.Equal(t, enums.ProductStatusActive, stored.Status, "visibility is a predicate, not a product mutation")

	require.NoError(t, e.SetSellerStatus(seller.UserID, enums.SellerStatusApproved))
	assert.Len(t, e.ListCatalog(CatalogFilter{}), 1, "re-enabling must restore visibility")
}

func TestListCatalogFilterMakeAndYear(t *testing.T) {
	e := newTestEngine()
	seller := registerApprovedSeller(t, e)

	match := createProduct(t, e, seller.UserID, func(d *ProductDraft) {
		d.Make = "Toyota"
		d.YearStart = 2018
		d.YearEnd = 2023
	})
	createProduct(t, e, seller.UserID, func(d *ProductDraft) {
		d.Make = "Nissan"
		d.YearStart = 2018
		d.YearEnd = 2023
	})
	createProduct(t, e, seller.UserID, func(d *ProductDraft) {
		d.Make = "Toyota"
		d.YearStart = 2010
		d.YearEnd = 2014
	})

	year := 2021
	catalog := e.ListCatalog(CatalogFilter{Make: "Toyota", Year: &year})
	require.Len(t, catalog, 1)
	assert.Equal(t, match.ID, catalog[0].ID)
}

func TestListCatalogModelOnlyAppliesWithMake(t *testing.T) {
	e := newTestEngine()
	seller := registerApprovedSeller(t, e)

	createProduct(t, e, seller.UserID, func(d *ProductDraft) {
		d.Make = "Toyota"
		d.Model = "Hilux"
	})
	createProduct(t, e, seller.UserID, func(d *ProductDraft) {
		d.Make = "Toyota"
		d.Model = "Corolla"
	})

	// Model without make is ignored.
	assert.Len(t, e.ListCatalog(CatalogFilter{Model: "Hilux"}), 2)
	// Model with make narrows.
	assert.Len(t, e.ListCatalog(CatalogFilter{Make: "Toyota", Model: "Hilux"}), 1)
}

func TestListCatalogFreeTextSearch(t *testing.T) {
	e := newTestEngine()
	seller := registerApprovedSeller(t, e)

	createProduct(t, e, seller.UserID, func(d *ProductDraft) {
		d.Name = "Alternator 12V"
		d.SKU = "ALT-990"
	})
	createProduct(t, e, seller.UserID, func(d *ProductDraft) {
		d.Name = "Radiator"
		d.Description = "Aluminium core radiator"
	})
	createProduct(t, e, seller.UserID, func(d *ProductDraft) {
		d.Name = "Pickup truck"
		d.IsVehicle = true
		d.Vehicle = vehicleDetails()
	})

	assert.Len(t, e.ListCatalog(CatalogFilter{Query: "alternator"}), 1, "name match, case-insensitive")
	assert.Len(t, e.ListCatalog(CatalogFilter{Query: "alt-990"}), 1, "sku match")
	assert.Len(t, e.ListCatalog(CatalogFilter{Query: "aluminium"}), 1, "description match")
	assert.Len(t, e.ListCatalog(CatalogFilter{Query: "JTEBU5JR8K5612345"}), 1, "vin match")
	assert.Empty(t, e.ListCatalog(CatalogFilter{Query: "flux capacitor"}))
}

func TestListCatalogFilterCategory(t *testing.T) {
	e := newTestEngine()
	seller := registerApprovedSeller(t, e)

	createProduct(t, e, seller.UserID, func(d *ProductDraft) { d.Category = enums.CategoryBrakes })
	createProduct(t, e, seller.UserID, func(d *ProductDraft) { d.Category = enums.CategoryElectrical })

	brakes := enums.CategoryBrakes
	catalog := e.ListCatalog(CatalogFilter{Category: &brakes})
	require.Len(t, catalog, 1)
	assert.Equal(t, enums.CategoryBrakes, catalog[0].Category)
}

func TestListCatalogStableOrder(t *testing.T) {
	e := newTestEngine()
	seller := registerApprovedSeller(t, e)

	first := createProduct(t, e, seller.UserID, nil)
	second := createProduct(t, e, seller.UserID, nil)
	third := createProduct(t, e, seller.UserID, nil)

	catalog := e.ListCatalog(CatalogFilter{})
	require.Len(t, catalog, 3)
	assert.Equal(t, first.ID, catalog[0].ID)
	assert.Equal(t, second.ID, catalog[1].ID)
	assert.Equal(t, third.ID, catalog[2].ID)
}

func TestGetListingHidesGatedProducts(t *testing.T) {
	e := newTestEngine()
	seller := registerApprovedSeller(t, e)
	product := createProduct(t, e, seller.UserID, nil)

	_, err := e.GetListing(product.ID)
	require.NoError(t, err)

	require.NoError(t, e.SetSellerStatus(seller.UserID, enums.SellerStatusDisabled))
	_, err = e.GetListing(product.ID)
	assert.Error(t, err, "gated listing must surface as not found")
}

func TestModelsForMake(t *testing.T) {
	e := newTestEngine()
	seller := registerApprovedSeller(t, e)
	disabled := registerApprovedSeller(t, e)

	createProduct(t, e, seller.UserID, func(d *ProductDraft) { d.Make = "Toyota"; d.Model = "Hilux" })
	createProduct(t, e, seller.UserID, func(d *ProductDraft) { d.Make = "Toyota"; d.Model = "Corolla" })
	createProduct(t, e, seller.UserID, func(d *ProductDraft) { d.Make = "toyota"; d.Model = "hilux" })
	createProduct(t, e, disabled.UserID, func(d *ProductDraft) { d.Make = "Toyota"; d.Model = "Land Cruiser" })
	require.NoError(t, e.SetSellerStatus(disabled.UserID, enums.SellerStatusDisabled))

	modelNames := e.ModelsForMake("Toyota")
	assert.Equal(t, []string{"Hilux", "Corolla"}, modelNames, "distinct, first-seen order, visible listings only")
}
