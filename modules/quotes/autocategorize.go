package quotes

import (
	"regexp"
	"strings"
)

// DefaultCategory is assigned when no keyword list scores a match.
const DefaultCategory = "other"

// categoryKeywords maps each seed category to the terms that suggest it.
var categoryKeywords = map[string][]string{
	"inspiration": {
		"inspire", "dream", "achieve", "possible", "potential", "believe",
		"courage", "hope", "future", "aspire", "overcome", "journey",
	},
	"motivation": {
		"motivate", "drive", "success", "goal", "achieve", "determination",
		"perseverance", "discipline", "focus", "ambition", "excellence", "progress",
	},
	"wisdom": {
		"wisdom", "knowledge", "learn", "understand", "experience", "insight",
		"perspective", "truth", "philosophy", "reflection", "thought", "mind",
	},
	"humor": {
		"humor", "funny", "laugh", "joke", "comedy", "smile", "wit",
		"amusing", "entertain", "hilarious", "irony", "sarcasm",
	},
}

var wordBoundaryPatterns = compileWordPatterns()

func compileWordPatterns() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp)
	for _, keywords := range categoryKeywords {
		for _, keyword := range keywords {
			if _, ok := patterns[keyword]; !ok {
				patterns[keyword] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(keyword) + `\b`)
			}
		}
	}
	return patterns
}

// SuggestCategory scores the quote text and author against each category's
// keyword list and returns the best match. A substring hit scores 1 point
// and an exact word match adds a 0.5 bonus; with no hits at all the result
// is DefaultCategory.
func SuggestCategory(text, author string) string {
	content := strings.ToLower(text + " " + author)

	bestCategory := DefaultCategory
	highestScore := 0.0

	// Map iteration order is random; evaluate categories in a fixed order
	// so ties resolve the same way every call.
	for _, category := range []string{"inspiration", "motivation", "wisdom", "humor"} {
		score := 0.0
		for _, keyword := range categoryKeywords[category] {
			if strings.Contains(content, keyword) {
				score++
				if wordBoundaryPatterns[keyword].MatchString(content) {
					score += 0.5
				}
			}
		}
		if score > highestScore {
			highestScore = score
			bestCategory = category
		}
	}

	return bestCategory
}

// ShouldAutoCategorize reports whether the quote carries enough signal to
// trust the suggestion: long enough to analyze and scoring outside the
// default bucket.
func ShouldAutoCategorize(text, author string) bool {
	if len(text) < 10 {
		return false
	}
	return SuggestCategory(text, author) != DefaultCategory
}
