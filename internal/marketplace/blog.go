package marketplace

import (
	"strings"
	"time"

	"github.com/google/uuid"

	pkgerrors "github.com/angelmondragon/partdepot-backend/pkg/errors"
	"github.com/angelmondragon/partdepot-backend/pkg/models"
)

// BlogPostDraft holds generated marketing content ready to publish.
type BlogPostDraft struct {
	Title    string
	Slug     string
	Content  string
	Keywords []string
}

// AddBlogPost appends a post. The collection is append-only.
func (e *Engine) AddBlogPost(draft BlogPostDraft) (*models.BlogPost, error) {
	if strings.TrimSpace(draft.Title) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "title is required")
	}
	if strings.TrimSpace(draft.Content) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "content is required")
	}

	slug := strings.TrimSpace(draft.Slug)
	if slug == "" {
		slug = slugify(draft.Title)
	}

	post := models.BlogPost{
		ID:        uuid.New(),
		Title:     strings.TrimSpace(draft.Title),
		Slug:      slug,
		Content:   draft.Content,
		Keywords:  append([]string(nil), draft.Keywords...),
		CreatedAt: time.Now().UTC(),
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.posts = append(e.posts, post)

	out := post
	out.Keywords = append([]string(nil), post.Keywords...)
	return &out, nil
}

// ListBlogPosts returns all posts, oldest first.
func (e *Engine) ListBlogPosts() []models.BlogPost {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]models.BlogPost, len(e.posts))
	for i, post := range e.posts {
		out[i] = post
		out[i].Keywords = append([]string(nil), post.Keywords...)
	}
	return out
}

func slugify(title string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
