// Package validate provides input validation utilities for harborctl,
// ensuring configuration integrity before any registry communication happens.
//
// Implements validation rules for registry endpoint URLs, output formats, and
// generic field constraints. All functions leverage the go-playground/validator
// library for standardized validation behavior, replacing manual validation
// code scattered across the configuration packages with centralized, consistent
// checks.
//
// VALIDATION COVERAGE:
//   - Endpoint URLs: scheme and host validation for the registry API endpoint
//   - Required strings: non-empty checks for mandatory configuration fields
//   - Ranges: bounded integer validation for retry attempts and indentation
//
// Used by the settings schema, the CLI flag layer, and the session manager to
// ensure consistent input validation across all system entry points.
package validate

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// Global validator instance using built-in validations
	validate *validator.Validate
)

func init() {
	validate = validator.New()
	// Using built-in validators: required, min, max - no custom registration needed
}

// ValidateField validates a single value against a validator tag expression.
// Provides the shared entry point for all tag-based validation so error
// behavior stays consistent across configuration packages.
func ValidateField(value any, tag string) error {
	return validate.Var(value, tag)
}

// ValidateRequiredString validates that a string field is not empty.
// Uses the validator library for consistent error handling across config validation.
//
// Critical for ensuring required configuration fields like the endpoint URL
// are properly specified before a remote client is constructed. Prevents
// confusing connection errors caused by missing essential parameters.
func ValidateRequiredString(value, fieldName string) error {
	if err := ValidateField(value, "required"); err != nil {
		return fmt.Errorf("%s cannot be empty", fieldName)
	}
	return nil
}

// ValidateIntRange validates that an integer falls within an inclusive range.
// Used for retry attempt counts and JSON indentation width where out-of-range
// values would produce nonsensical behavior rather than hard failures.
func ValidateIntRange(value, min, max int, fieldName string) error {
	if err := ValidateField(value, fmt.Sprintf("min=%d,max=%d", min, max)); err != nil {
		return fmt.Errorf("%s must be between %d and %d", fieldName, min, max)
	}
	return nil
}

// ValidateEndpointURL parses and validates a registry API endpoint URL.
// Requires an http or https scheme and a non-empty host so the HTTP client
// always receives a routable base URL. Scheme and shape checks go through
// the validator's http_url rule; parsing happens afterwards only to hand the
// caller a usable *url.URL.
//
// Essential for processing user-provided endpoints from configuration files,
// environment variables, and CLI flags before any request is attempted.
func ValidateEndpointURL(raw string) (*url.URL, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("endpoint URL cannot be empty")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint URL %q: %w", raw, err)
	}
	if (u.Scheme == "http" || u.Scheme == "https") && u.Host == "" {
		return nil, fmt.Errorf("endpoint URL %q has no host", raw)
	}

	if err := ValidateField(raw, "http_url"); err != nil {
		return nil, fmt.Errorf("endpoint URL %q must use http or https", raw)
	}

	return u, nil
}
