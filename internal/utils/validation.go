package utils

import (
	"errors"
	"regexp"
	"strings"
)

// Compiled regular expressions for validation
var (
	// Detect potentially dangerous characters - focused on injection patterns
	dangerousPattern = regexp.MustCompile(`[<>]|--|\/\*|\*\/|;.*--`)

	// Detect HTML/script tags
	htmlTagPattern = regexp.MustCompile(`<[^>]*>`)
)

// ValidateQuery validates search query strings
func ValidateQuery(query string) error {
	// Empty queries are allowed
	if query == "" {
		return nil
	}

	if len(query) > 200 {
		return errors.New("query too long (max 200 characters)")
	}

	// Check for dangerous characters that could indicate injection attempts
	if dangerousPattern.MatchString(query) {
		return errors.New("query contains invalid characters")
	}

	return nil
}

// ValidateLatitude validates latitude values
func ValidateLatitude(lat float64) error {
	if lat < -90.0 || lat > 90.0 {
		return errors.New("latitude must be between -90 and 90")
	}
	return nil
}

// ValidateLongitude validates longitude values
func ValidateLongitude(lon float64) error {
	if lon < -180.0 || lon > 180.0 {
		return errors.New("longitude must be between -180 and 180")
	}
	return nil
}

// SanitizeInput removes HTML tags and other potentially dangerous content
func SanitizeInput(input string) string {
	// Remove HTML tags
	sanitized := htmlTagPattern.ReplaceAllString(input, "")

	// Trim whitespace
	sanitized = strings.TrimSpace(sanitized)

	return sanitized
}

// ValidateLocationParams validates a latitude/longitude pair, returning
// field-specific errors keyed by the query parameter names.
func ValidateLocationParams(lat, lon float64) map[string][]string {
	fieldErrors := make(map[string][]string)

	if err := ValidateLatitude(lat); err != nil {
		fieldErrors["latitude"] = append(fieldErrors["latitude"], err.Error())
	}

	if err := ValidateLongitude(lon); err != nil {
		fieldErrors["longitude"] = append(fieldErrors["longitude"], err.Error())
	}

	return fieldErrors
}

// ValidateAndSanitizeQuery validates and sanitizes a search query
func ValidateAndSanitizeQuery(query string) (string, error) {
	if err := ValidateQuery(query); err != nil {
		return "", err
	}

	return SanitizeInput(query), nil
}
