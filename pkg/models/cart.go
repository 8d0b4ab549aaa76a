package models

import "github.com/google/uuid"

// CartEntry is ephemeral session state. A cart collapses into an Order on
// checkout and is cleared afterward.
type CartEntry struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}
