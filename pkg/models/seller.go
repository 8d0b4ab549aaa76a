package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/angelmondragon/partdepot-backend/pkg/enums"
	"github.com/angelmondragon/partdepot-backend/pkg/types"
)

// Seller is a registered business. Sellers are never hard-deleted; a
// disabled seller keeps its inventory but loses catalog visibility.
type Seller struct {
	UserID        uuid.UUID          `json:"user_id"`
	BusinessName  string             `json:"business_name"`
	ContactPerson string             `json:"contact_person"`
	Phone         string             `json:"phone"`
	Email         string             `json:"email,omitempty"`
	Address       types.Address      `json:"address"`
	LogoURL       *string            `json:"logo_url,omitempty"`
	Status        enums.SellerStatus `json:"status"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}
