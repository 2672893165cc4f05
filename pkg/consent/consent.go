package consent

import "time"

// Category identifies a class of client-side data persistence.
type Category string

const (
	CategoryNecessary  Category = "necessary"
	CategoryFunctional Category = "functional"
	CategoryAnalytics  Category = "analytics"
	CategoryMarketing  Category = "marketing"
)

// CategoryDescriptions holds the user-facing explanation of each category,
// served alongside the consent banner.
var CategoryDescriptions = map[Category]string{
	CategoryNecessary:  "Essential cookies that enable basic functionality and security features of the website.",
	CategoryFunctional: "Cookies that enhance the functionality of the website, such as remembering your preferences.",
	CategoryAnalytics:  "Cookies that help us understand how you interact with our website and improve your experience.",
	CategoryMarketing:  "Cookies used to track visitors across websites to display relevant advertisements.",
}

// Settings is the user's recorded consent. It lives client-side as a single
// JSON blob; the server never persists it. Necessary is always true and
// cannot be disabled.
type Settings struct {
	Necessary    bool   `json:"necessary"`
	Functional   bool   `json:"functional"`
	Analytics    bool   `json:"analytics"`
	Marketing    bool   `json:"marketing"`
	ConsentGiven bool   `json:"consentGiven"`
	LastUpdated  string `json:"lastUpdated"` // RFC 3339, empty until first saved
}

// DefaultSettings is the state before the user has made any choice:
// everything but necessary is off and no consent has been given.
func DefaultSettings() Settings {
	return Settings{Necessary: true}
}

// Allows reports whether the settings permit persistence in the category.
// Necessary is always allowed. Every other category requires both an
// explicit consent decision and the category flag itself.
func (s Settings) Allows(category Category) bool {
	if category == CategoryNecessary {
		return true
	}
	if !s.ConsentGiven {
		return false
	}

	switch category {
	case CategoryFunctional:
		return s.Functional
	case CategoryAnalytics:
		return s.Analytics
	case CategoryMarketing:
		return s.Marketing
	default:
		return false
	}
}

// normalized returns a copy safe to store: necessary forced on and the
// update timestamp stamped.
func (s Settings) normalized(now time.Time) Settings {
	s.Necessary = true
	s.LastUpdated = now.UTC().Format(time.RFC3339)
	return s
}
