package categories

import (
	"time"

	"github.com/google/uuid"
)

// DefaultNames are seeded for every new account, matching the keyword
// buckets the quote auto-categorizer suggests from.
var DefaultNames = []string{"inspiration", "motivation", "wisdom", "humor", "other"}

// Category is a user-owned quote category. Names are stored lowercased.
type Category struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
