package quotes

import (
	"time"

	"github.com/google/uuid"
)

// Quote is a saved quote owned by one user.
type Quote struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Text      string    `json:"text"`
	Author    string    `json:"author"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

// Public is the quote payload exposed on share pages: the content without
// the owner's identity.
type Public struct {
	ID       uuid.UUID `json:"id"`
	Text     string    `json:"text"`
	Author   string    `json:"author"`
	Category string    `json:"category"`
}

// Public strips ownership from the quote.
func (q *Quote) Public() Public {
	return Public{ID: q.ID, Text: q.Text, Author: q.Author, Category: q.Category}
}
