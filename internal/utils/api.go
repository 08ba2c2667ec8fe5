package utils

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ParseFloatParam retrieves a float64 value from the provided URL query parameters.
// If the key is not present or the value is invalid, it returns 0 and updates the fieldErrors map.
// - params: URL query parameters.
// - key: The key to look for in the query parameters.
// - fieldErrors: A map to collect validation errors for fields.
// Returns:
// - The parsed float64 value (or 0 if invalid).
// - The updated fieldErrors map containing any validation errors.
func ParseFloatParam(params url.Values, key string, fieldErrors map[string][]string) (float64, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	val := params.Get(key)
	if val == "" {
		return 0, fieldErrors
	}

	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		fieldErrors[key] = append(fieldErrors[key], fmt.Sprintf("Invalid field value for field %q.", key))
	}
	return f, fieldErrors
}

// RequireFloatParam is like ParseFloatParam but also records an error when the
// parameter is absent or blank.
func RequireFloatParam(params url.Values, key string, fieldErrors map[string][]string) (float64, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	if !params.Has(key) || strings.TrimSpace(params.Get(key)) == "" {
		fieldErrors[key] = append(fieldErrors[key], fmt.Sprintf("Missing required field %q.", key))
		return 0, fieldErrors
	}

	return ParseFloatParam(params, key, fieldErrors)
}

// RequireTextParam returns the trimmed value of a required text parameter,
// recording an error when it is missing or empty.
func RequireTextParam(params url.Values, key string, fieldErrors map[string][]string) (string, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	val := strings.TrimSpace(params.Get(key))
	if val == "" {
		fieldErrors[key] = append(fieldErrors[key], fmt.Sprintf("Missing required field %q.", key))
	}
	return val, fieldErrors
}

// ParseBoolParam retrieves an optional boolean value from the provided URL
// query parameters. An absent or blank parameter yields false; an unparsable
// value updates the fieldErrors map.
func ParseBoolParam(params url.Values, key string, fieldErrors map[string][]string) (bool, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	val := params.Get(key)
	if val == "" {
		return false, fieldErrors
	}

	b, err := strconv.ParseBool(val)
	if err != nil {
		fieldErrors[key] = append(fieldErrors[key], fmt.Sprintf("Invalid field value for field %q.", key))
		return false, fieldErrors
	}
	return b, fieldErrors
}
