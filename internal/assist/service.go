package assist

import (
	"context"
	"strings"

	"github.com/angelmondragon/partdepot-backend/internal/marketplace"
	"github.com/angelmondragon/partdepot-backend/pkg/ai"
	"github.com/angelmondragon/partdepot-backend/pkg/enums"
	"github.com/angelmondragon/partdepot-backend/pkg/errors"
)

// Service turns assist client responses into listing and blog drafts the
// seller can review before saving. Nothing here writes to the engine.
type Service interface {
	VehicleFromVIN(ctx context.Context, vin string) (*ListingHints, error)
	PartFromImage(ctx context.Context, imageRef string) (*ListingHints, error)
	DraftArticle(ctx context.Context, keyword string) (*marketplace.BlogPostDraft, error)
}

type service struct {
	client *ai.Client
}

// NewService wraps the assist client. A nil client yields a service whose
// calls fail with a dependency error, so the server can boot without a key.
func NewService(client *ai.Client) Service {
	return &service{client: client}
}

// ListingHints are prefill values for a product form. All fields are
// suggestions; the seller edits and submits them as a normal draft.
type ListingHints struct {
	Name      string                 `json:"name,omitempty"`
	Make      string                 `json:"make,omitempty"`
	Model     string                 `json:"model,omitempty"`
	YearStart int                    `json:"year_start,omitempty"`
	YearEnd   int                    `json:"year_end,omitempty"`
	Category  *enums.ProductCategory `json:"category,omitempty"`
}

func (s *service) VehicleFromVIN(ctx context.Context, vin string) (*ListingHints, error) {
	if s == nil || s.client == nil {
		return nil, errors.New(errors.CodeDependency, "assist client unavailable")
	}

	decoded, err := s.client.DecodeVIN(ctx, vin)
	if err != nil {
		return nil, err
	}

	return &ListingHints{
		Make:      decoded.Make,
		Model:     decoded.Model,
		YearStart: decoded.Year,
		YearEnd:   decoded.Year,
	}, nil
}

func (s *service) PartFromImage(ctx context.Context, imageRef string) (*ListingHints, error) {
	if s == nil || s.client == nil {
		return nil, errors.New(errors.CodeDependency, "assist client unavailable")
	}
	if strings.TrimSpace(imageRef) == "" {
		return nil, errors.New(errors.CodeValidation, "image ref is required")
	}

	identified, err := s.client.IdentifyPart(ctx, imageRef)
	if err != nil {
		return nil, err
	}

	hints := &ListingHints{
		Name:  identified.Name,
		Make:  identified.Make,
		Model: identified.Model,
	}
	// The service replies with free text; only a recognized category becomes
	// a prefill.
	category := enums.ProductCategory(strings.ToLower(strings.TrimSpace(identified.Category)))
	if category.IsValid() {
		hints.Category = &category
	}
	return hints, nil
}

func (s *service) DraftArticle(ctx context.Context, keyword string) (*marketplace.BlogPostDraft, error) {
	if s == nil || s.client == nil {
		return nil, errors.New(errors.CodeDependency, "assist client unavailable")
	}
	if strings.TrimSpace(keyword) == "" {
		return nil, errors.New(errors.CodeValidation, "keyword is required")
	}

	content, err := s.client.GenerateSEOContent(ctx, keyword)
	if err != nil {
		return nil, err
	}

	return &marketplace.BlogPostDraft{
		Title:    content.Title,
		Slug:     content.Slug,
		Content:  content.Content,
		Keywords: content.Keywords,
	}, nil
}
