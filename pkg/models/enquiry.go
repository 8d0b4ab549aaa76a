package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/angelmondragon/partdepot-backend/pkg/enums"
)

// Enquiry is an immutable record of buyer interest in one listing. Only the
// status field may change after creation.
type Enquiry struct {
	Reference  string               `json:"reference"`
	ProductID  uuid.UUID            `json:"product_id"`
	SellerID   uuid.UUID            `json:"seller_id"`
	BuyerName  string               `json:"buyer_name"`
	BuyerPhone string               `json:"buyer_phone"`
	BuyerEmail string               `json:"buyer_email,omitempty"`
	Message    string               `json:"message"`
	Channel    enums.EnquiryChannel `json:"channel"`
	Status     enums.EnquiryStatus  `json:"status"`
	CreatedAt  time.Time            `json:"created_at"`
}
