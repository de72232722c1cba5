package config

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"
)

// ValidationError describes one invalid field.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got %v)", e.Field, e.Message, e.Value)
}

// Validate checks every field and returns all problems joined.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}

	var errs []error

	if c.Language != "" {
		if _, err := language.Parse(c.Language); err != nil {
			errs = append(errs, &ValidationError{Field: "language", Value: c.Language, Message: "not a BCP 47 tag"})
		}
	}

	for from, to := range c.Aliases {
		if _, err := language.Parse(from); err != nil {
			errs = append(errs, &ValidationError{Field: "aliases", Value: from, Message: "alias is not a BCP 47 tag"})
		}
		if _, err := language.Parse(to); err != nil {
			errs = append(errs, &ValidationError{Field: "aliases." + from, Value: to, Message: "target is not a BCP 47 tag"})
		}
	}

	if c.Format != "" && !c.Format.IsValid() {
		errs = append(errs, &ValidationError{Field: "format", Value: c.Format, Message: "must be one of text, table, json, yaml, diff"})
	}
	if c.Color != "" && !c.Color.IsValid() {
		errs = append(errs, &ValidationError{Field: "color", Value: c.Color, Message: "must be auto, always or never"})
	}
	if c.Workers < 0 {
		errs = append(errs, &ValidationError{Field: "workers", Value: c.Workers, Message: "must not be negative"})
	}
	if c.Pseudo.Expansion < 0 {
		errs = append(errs, &ValidationError{Field: "pseudo.expansion", Value: c.Pseudo.Expansion, Message: "must not be negative"})
	}

	return errors.Join(errs...)
}
