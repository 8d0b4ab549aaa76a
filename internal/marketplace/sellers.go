package marketplace

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/angelmondragon/partdepot-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/partdepot-backend/pkg/errors"
	"github.com/angelmondragon/partdepot-backend/pkg/models"
	"github.com/angelmondragon/partdepot-backend/pkg/types"
)

// SellerDraft holds the validated payload to register a seller.
type SellerDraft struct {
	BusinessName  string
	ContactPerson string
	Phone         string
	Email         string
	Address       types.Address
	LogoURL       *string
}

// RegisterSeller creates a seller in pending_approval (or approved when the
// engine runs with the auto-approve shortcut). Nothing the seller lists is
// publicly visible until an admin approves them.
func (e *Engine) RegisterSeller(draft SellerDraft) (*models.Seller, error) {
	if strings.TrimSpace(draft.BusinessName) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "business name is required")
	}
	if strings.TrimSpace(draft.ContactPerson) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "contact person is required")
	}
	if strings.TrimSpace(draft.Phone) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "phone is required")
	}

	status := enums.SellerStatusPendingApproval
	if e.autoApprove {
		status = enums.SellerStatusApproved
	}

	now := time.Now().UTC()
	seller := &models.Seller{
		UserID:        uuid.New(),
		BusinessName:  strings.TrimSpace(draft.BusinessName),
		ContactPerson: strings.TrimSpace(draft.ContactPerson),
		Phone:         strings.TrimSpace(draft.Phone),
		Email:         strings.TrimSpace(draft.Email),
		Address:       draft.Address,
		LogoURL:       draft.LogoURL,
		Status:        status,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.sellers[seller.UserID] = seller

	out := *seller
	return &out, nil
}

// legalSellerTransitions maps the current status to the statuses an admin may
// move it to.
var legalSellerTransitions = map[enums.SellerStatus][]enums.SellerStatus{
	enums.SellerStatusPendingApproval: {enums.SellerStatusApproved},
	enums.SellerStatusApproved:        {enums.SellerStatusDisabled},
	enums.SellerStatusDisabled:        {enums.SellerStatusApproved},
}

// SetSellerStatus applies an admin moderation action. Disabling a seller
// hides all of their products from the catalog immediately; the products
// themselves are not mutated. Setting the current status again is a no-op.
func (e *Engine) SetSellerStatus(sellerID uuid.UUID, status enums.SellerStatus) error {
	if !status.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid seller status")
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	seller, ok := e.sellers[sellerID]
	if !ok {
		return pkgerrors.New(pkgerrors.CodeNotFound, "seller not found")
	}
	if seller.Status == status {
		return nil
	}
	if !transitionAllowed(seller.Status, status) {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "seller status transition disallowed").
			WithDetails(map[string]string{"from": seller.Status.String(), "to": status.String()})
	}

	seller.Status = status
	seller.UpdatedAt = time.Now().UTC()
	return nil
}

func transitionAllowed(from, to enums.SellerStatus) bool {
	for _, candidate := range legalSellerTransitions[from] {
		if candidate == to {
			return true
		}
	}
	return false
}

// GetSeller returns a copy of the seller record.
func (e *Engine) GetSeller(sellerID uuid.UUID) (*models.Seller, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	seller, ok := e.sellers[sellerID]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "seller not found")
	}
	out := *seller
	return &out, nil
}

// ListSellers returns every seller for admin moderation, pending first so the
// moderation queue reads top-down.
func (e *Engine) ListSellers() []models.Seller {
	e.mu.Lock()
	defer e.mu.Unlock()

	pending := make([]models.Seller, 0)
	rest := make([]models.Seller, 0, len(e.sellers))
	for _, seller := range e.sellers {
		if seller.Status == enums.SellerStatusPendingApproval {
			pending = append(pending, *seller)
			continue
		}
		rest = append(rest, *seller)
	}
	sortSellersByCreation(pending)
	sortSellersByCreation(rest)
	return append(pending, rest...)
}

func sortSellersByCreation(sellers []models.Seller) {
	sort.Slice(sellers, func(i, j int) bool {
		return sellers[i].CreatedAt.Before(sellers[j].CreatedAt)
	})
}
