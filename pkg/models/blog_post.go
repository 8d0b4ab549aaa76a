package models

import (
	"time"

	"github.com/google/uuid"
)

// BlogPost is generated marketing content. Append-only; unrelated to other
// entities beyond being admin-authored.
type BlogPost struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Content   string    `json:"content"`
	Keywords  []string  `json:"keywords"`
	CreatedAt time.Time `json:"created_at"`
}
