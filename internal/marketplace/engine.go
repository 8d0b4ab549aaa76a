package marketplace

import (
	"crypto/rand"
	"sync"

	"github.com/google/uuid"

	"github.com/angelmondragon/partdepot-backend/pkg/models"
)

// Engine is the single owner of all marketplace state: sellers, products,
// enquiries, orders, and blog posts. Every mutation goes through an Engine
// operation so the visibility rules, the stock floor, and checkout's
// all-or-nothing multi-product mutation are enforced in one place.
//
// All state lives in process memory. A single mutex serializes operations;
// checkout validates every line before applying any quantity decrement, so a
// failed checkout leaves state untouched. A port to a shared database must
// replace that with a serializable transaction per checkout.
type Engine struct {
	mu sync.Mutex

	autoApprove bool

	sellers      map[uuid.UUID]*models.Seller
	products     map[uuid.UUID]*models.Product
	productOrder []uuid.UUID
	enquiries    []models.Enquiry
	enquiryRefs  map[string]struct{}
	orders       []models.Order
	posts        []models.BlogPost
}

// Options configures engine behavior.
type Options struct {
	// AutoApproveSellers registers sellers directly as approved, skipping
	// admin moderation. Demo shortcut.
	AutoApproveSellers bool
}

// NewEngine constructs an empty engine.
func NewEngine(opts Options) *Engine {
	return &Engine{
		autoApprove: opts.AutoApproveSellers,
		sellers:     make(map[uuid.UUID]*models.Seller),
		products:    make(map[uuid.UUID]*models.Product),
		enquiryRefs: make(map[string]struct{}),
	}
}

// referenceAlphabet avoids characters that read ambiguously over the phone.
const referenceAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func randomToken(length int) string {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms; fall back to a
		// fixed token rather than panicking inside an operation.
		for i := range buf {
			buf[i] = 0
		}
	}
	out := make([]byte, length)
	for i, b := range buf {
		out[i] = referenceAlphabet[int(b)%len(referenceAlphabet)]
	}
	return string(out)
}
