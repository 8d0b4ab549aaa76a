package marketplace

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/angelmondragon/partdepot-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/partdepot-backend/pkg/errors"
	"github.com/angelmondragon/partdepot-backend/pkg/models"
)

// EnquiryDraft holds the payload to record buyer interest in a listing.
// Buyer field shape is a UI concern; the engine only requires the listing
// reference and channel.
type EnquiryDraft struct {
	ProductID  uuid.UUID
	BuyerName  string
	BuyerPhone string
	BuyerEmail string
	Message    string
	Channel    enums.EnquiryChannel
}

// RecordEnquiry appends exactly one enquiry and returns its reference id.
// References are short, human readable, and unique within the session.
func (e *Engine) RecordEnquiry(draft EnquiryDraft) (string, error) {
	if !draft.Channel.IsValid() {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "invalid enquiry channel")
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	product, ok := e.products[draft.ProductID]
	if !ok {
		return "", pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}

	reference := e.nextEnquiryReference()
	enquiry := models.Enquiry{
		Reference:  reference,
		ProductID:  product.ID,
		SellerID:   product.SellerID,
		BuyerName:  strings.TrimSpace(draft.BuyerName),
		BuyerPhone: strings.TrimSpace(draft.BuyerPhone),
		BuyerEmail: strings.TrimSpace(draft.BuyerEmail),
		Message:    draft.Message,
		Channel:    draft.Channel,
		Status:     enums.EnquiryStatusNew,
		CreatedAt:  time.Now().UTC(),
	}

	e.enquiries = append(e.enquiries, enquiry)
	e.enquiryRefs[reference] = struct{}{}
	return reference, nil
}

// ListSellerEnquiries returns the seller's enquiries, newest last.
func (e *Engine) ListSellerEnquiries(sellerID uuid.UUID) ([]models.Enquiry, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.sellers[sellerID]; !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "seller not found")
	}

	out := make([]models.Enquiry, 0)
	for _, enquiry := range e.enquiries {
		if enquiry.SellerID == sellerID {
			out = append(out, enquiry)
		}
	}
	return out, nil
}

// nextEnquiryReference regenerates on collision so references stay unique
// within the session. Callers hold the engine lock.
func (e *Engine) nextEnquiryReference() string {
	for {
		reference := "ENQ-" + randomToken(6)
		if _, taken := e.enquiryRefs[reference]; !taken {
			return reference
		}
	}
}
