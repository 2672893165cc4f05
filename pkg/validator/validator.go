package validator

import (
	"fmt"
	"regexp"
	"strings"
)

// ValidationError is a single field-level validation failure.
type ValidationError struct {
	Field   string
	Message string
}

// ValidationErrors collects field-level failures. It implements error so a
// service can return it directly and handlers can surface the messages.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return strings.Join(parts, "; ")
}

// First returns the first failure message, the one shown to the user.
func (ve ValidationErrors) First() string {
	if len(ve) == 0 {
		return ""
	}
	return ve[0].Message
}

// Rule checks one constraint and appends failures to the collection.
type Rule func(*ValidationErrors)

// Apply runs all rules and returns the collected failures as an error, or
// nil when everything passed.
func Apply(rules ...Rule) error {
	var errs ValidationErrors
	for _, rule := range rules {
		rule(&errs)
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Required fails when the trimmed value is empty.
func Required(field, value string) Rule {
	return func(errs *ValidationErrors) {
		if strings.TrimSpace(value) == "" {
			errs.add(field, fmt.Sprintf("%s is required", field))
		}
	}
}

// ValidEmail fails when the value is not a plausible email address.
func ValidEmail(field, value string) Rule {
	return func(errs *ValidationErrors) {
		if !emailRegex.MatchString(value) {
			errs.add(field, "must be a valid email address")
		}
	}
}

// MinLength fails when the value is shorter than min characters.
func MinLength(field, value string, min int) Rule {
	return func(errs *ValidationErrors) {
		if len(value) < min {
			errs.add(field, fmt.Sprintf("must be at least %d characters", min))
		}
	}
}

// MaxLength fails when the value is longer than max characters.
func MaxLength(field, value string, max int) Rule {
	return func(errs *ValidationErrors) {
		if len(value) > max {
			errs.add(field, fmt.Sprintf("must be at most %d characters", max))
		}
	}
}

// Matches fails when two values differ, e.g. password and its confirmation.
func Matches(field, value, other, message string) Rule {
	return func(errs *ValidationErrors) {
		if value != other {
			errs.add(field, message)
		}
	}
}

func (ve *ValidationErrors) add(field, message string) {
	*ve = append(*ve, ValidationError{Field: field, Message: message})
}
