package cart

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	pkgerrors "github.com/angelmondragon/partdepot-backend/pkg/errors"
	"github.com/angelmondragon/partdepot-backend/pkg/models"
)

// Service holds session carts keyed by an opaque token. Carts are a browser
// convenience; the marketplace engine only ever sees the final entry list at
// checkout.
type Service interface {
	Add(token string, productID uuid.UUID, quantity int) (string, []models.CartEntry, error)
	SetQuantity(token string, productID uuid.UUID, quantity int) ([]models.CartEntry, error)
	Get(token string) []models.CartEntry
	Clear(token string)
}

type service struct {
	mu    sync.Mutex
	carts map[string][]models.CartEntry
}

func NewService() Service {
	return &service{carts: make(map[string][]models.CartEntry)}
}

// Add puts quantity of a product into the cart, merging with an existing
// line. An empty token starts a new cart; the token is always returned.
func (s *service) Add(token string, productID uuid.UUID, quantity int) (string, []models.CartEntry, error) {
	if productID == uuid.Nil {
		return "", nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	if quantity < 1 {
		return "", nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	token = strings.TrimSpace(token)
	if token == "" {
		token = uuid.NewString()
	}

	entries := s.carts[token]
	merged := false
	for i := range entries {
		if entries[i].ProductID == productID {
			entries[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		entries = append(entries, models.CartEntry{ProductID: productID, Quantity: quantity})
	}
	s.carts[token] = entries

	return token, cloneEntries(entries), nil
}

// SetQuantity overwrites a line's quantity. Zero removes the line.
func (s *service) SetQuantity(token string, productID uuid.UUID, quantity int) ([]models.CartEntry, error) {
	if quantity < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must not be negative")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, ok := s.carts[strings.TrimSpace(token)]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "cart not found")
	}

	out := entries[:0]
	found := false
	for _, entry := range entries {
		if entry.ProductID == productID {
			found = true
			if quantity == 0 {
				continue
			}
			entry.Quantity = quantity
		}
		out = append(out, entry)
	}
	if !found {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not in cart")
	}
	s.carts[strings.TrimSpace(token)] = out

	return cloneEntries(out), nil
}

func (s *service) Get(token string) []models.CartEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneEntries(s.carts[strings.TrimSpace(token)])
}

func (s *service) Clear(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, strings.TrimSpace(token))
}

func cloneEntries(entries []models.CartEntry) []models.CartEntry {
	if entries == nil {
		return []models.CartEntry{}
	}
	return append([]models.CartEntry(nil), entries...)
}
