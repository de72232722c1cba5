package configloader

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yaklabco/goicu/pkg/config"
)

// ValidationError represents one configuration finding.
type ValidationError struct {
	// Field is the dotted path of the field, e.g. "pseudo.expansion".
	Field string

	Value any

	Message string

	// FilePath and Line locate the finding when known.
	FilePath string
	Line     int
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		if e.Line > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", e.FilePath, e.Line))
		} else {
			parts = append(parts, e.FilePath)
		}
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors prevent loading.
	Errors []ValidationError

	// Warnings are reported but do not stop loading.
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// Validate checks a merged configuration. Field errors come from
// config.Validate; this adds glob checks and warns about languages that
// have no plural profile and would fall back to English.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if err := cfg.Validate(); err != nil {
		for _, e := range flatten(err) {
			var fieldErr *config.ValidationError
			if errors.As(e, &fieldErr) {
				result.Errors = append(result.Errors, ValidationError{
					Field:   fieldErr.Field,
					Value:   fieldErr.Value,
					Message: fieldErr.Message,
				})
				continue
			}
			result.Errors = append(result.Errors, ValidationError{Message: e.Error()})
		}
	}

	for i, pattern := range cfg.Ignore {
		if _, err := filepath.Match(pattern, ""); err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("ignore[%d]", i),
				Value:   pattern,
				Message: fmt.Sprintf("invalid glob pattern: %v", err),
			})
		}
	}

	if !result.Valid() {
		return result
	}

	reg, err := cfg.Registry()
	if err != nil {
		result.Errors = append(result.Errors, ValidationError{Field: "aliases", Message: err.Error()})
		return result
	}
	if cfg.Language != "" && !reg.IsLanguageSupported(cfg.Language) {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "language",
			Value:   cfg.Language,
			Message: fmt.Sprintf("no plural profile for %q; English rules will be used", cfg.Language),
		})
	}

	return result
}

func flatten(err error) []error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}
