package marketplace

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/partdepot-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/partdepot-backend/pkg/errors"
)

func recordEnquiry(t *testing.T, e *Engine, productID uuid.UUID, channel enums.EnquiryChannel) string {
	t.Helper()
	reference, err := e.RecordEnquiry(EnquiryDraft{
		ProductID:  productID,
		BuyerName:  "Moses Buyer",
		BuyerPhone: "+254722222222",
		Message:    "Is this still available?",
		Channel:    channel,
	})
	if err != nil {
		t.Fatalf("record enquiry: %v", err)
	}
	return reference
}

func TestRecordEnquiryAppendsOneRecord(t *testing.T) {
	e := newTestEngine()
	seller := registerApprovedSeller(t, e)
	product := createProduct(t, e, seller.UserID, nil)

	reference := recordEnquiry(t, e, product.ID, enums.EnquiryChannelForm)
	require.NotEmpty(t, reference)

	enquiries, err := e.ListSellerEnquiries(seller.UserID)
	require.NoError(t, err)
	require.Len(t, enquiries, 1)
	assert.Equal(t, reference, enquiries[0].Reference)
	assert.Equal(t, product.ID, enquiries[0].ProductID)
	assert.Equal(t, seller.UserID, enquiries[0].SellerID)
	assert.Equal(t, enums.EnquiryStatusNew, enquiries[0].Status)
	assert.Equal(t, enums.EnquiryChannelForm, enquiries[0].Channel)
}

func TestRecordEnquiryUniqueReferences(t *testing.T) {
	e := newTestEngine()
	seller := registerApprovedSeller(t, e)
	product := createProduct(t, e, seller.UserID, nil)

	seen := map[string]struct{}{}
	for i := 0; i < 50; i++ {
		reference := recordEnquiry(t, e, product.ID, enums.EnquiryChannelForm)
		if _, dup := seen[reference]; dup {
			t.Fatalf("duplicate reference %q", reference)
		}
		seen[reference] = struct{}{}
	}
}

func TestRecordEnquiryUnknownProduct(t *testing.T) {
	e := newTestEngine()

	_, err := e.RecordEnquiry(EnquiryDraft{
		ProductID: uuid.New(),
		Channel:   enums.EnquiryChannelForm,
	})
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestRecordEnquiryInvalidChannel(t *testing.T) {
	e := newTestEngine()
	seller := registerApprovedSeller(t, e)
	product := createProduct(t, e, seller.UserID, nil)

	_, err := e.RecordEnquiry(EnquiryDraft{
		ProductID: product.ID,
		Channel:   enums.EnquiryChannel("carrier_pigeon"),
	})
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestListSellerEnquiriesScopedToSeller(t *testing.T) {
	e := newTestEngine()
	first := registerApprovedSeller(t, e)
	second := registerApprovedSeller(t, e)
	firstProduct := createProduct(t, e, first.UserID, nil)
	secondProduct := createProduct(t, e, second.UserID, nil)

	recordEnquiry(t, e, firstProduct.ID, enums.EnquiryChannelForm)
	recordEnquiry(t, e, secondProduct.ID, enums.EnquiryChannelDirectContact)

	enquiries, err := e.ListSellerEnquiries(first.UserID)
	require.NoError(t, err)
	require.Len(t, enquiries, 1)
	assert.Equal(t, firstProduct.ID, enquiries[0].ProductID)

	_, err = e.ListSellerEnquiries(uuid.New())
	assert.Error(t, err)
}
