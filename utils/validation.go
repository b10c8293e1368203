package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// FieldValidationError represents a validation error for a specific field
type FieldValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldValidationErrors represents multiple field validation errors
type FieldValidationErrors []FieldValidationError

// Error implements the error interface
func (e FieldValidationErrors) Error() string {
	var messages []string
	for _, err := range e {
		messages = append(messages, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return strings.Join(messages, "; ")
}

var slugRegex = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// MaxSlugLength bounds catalog slugs
const MaxSlugLength = 80

// ValidateSlug checks a catalog slug before it is stored. Slugs are lower-case
// words joined by single dashes.
func ValidateSlug(slug string) error {
	var errs FieldValidationErrors
	switch {
	case slug == "":
		errs = append(errs, FieldValidationError{Field: "slug", Message: "is required"})
	case len(slug) > MaxSlugLength:
		errs = append(errs, FieldValidationError{Field: "slug", Message: fmt.Sprintf("must be at most %d characters", MaxSlugLength)})
	case !slugRegex.MatchString(slug):
		errs = append(errs, FieldValidationError{Field: "slug", Message: "must be lower-case letters and digits separated by dashes"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
