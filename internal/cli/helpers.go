package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/thenoetrevino/facetview/internal/models"
)

// ParseOption parses an option flag of the form value=count[:selected].
// The value may itself contain '='; the last one separates the count.
func ParseOption(raw string) (models.Option, error) {
	idx := strings.LastIndex(raw, "=")
	if idx <= 0 {
		return models.Option{}, fmt.Errorf("%w: %q (expected value=count[:selected])", models.ErrInvalidOption, raw)
	}
	value, rest := raw[:idx], raw[idx+1:]

	selected := false
	if countStr, flag, ok := strings.Cut(rest, ":"); ok {
		if flag != "selected" {
			return models.Option{}, fmt.Errorf("%w: %q (unknown marker %q)", models.ErrInvalidOption, raw, flag)
		}
		selected = true
		rest = countStr
	}

	count, err := strconv.Atoi(rest)
	if err != nil || count < 0 {
		return models.Option{}, fmt.Errorf("%w: %q (count must be a non-negative integer)", models.ErrInvalidOption, raw)
	}

	return models.Option{Value: value, Count: count, Selected: selected}, nil
}

// ParseOptions parses every option flag in order
func ParseOptions(raw []string) ([]models.Option, error) {
	options := make([]models.Option, 0, len(raw))
	for _, r := range raw {
		opt, err := ParseOption(r)
		if err != nil {
			return nil, err
		}
		options = append(options, opt)
	}
	return options, nil
}

// ParseFilters parses field=value filter flags into typed filters.
// in_stock values are parsed as booleans.
func ParseFilters(raw []string) (models.Filters, error) {
	filters := models.Filters{}
	for _, r := range raw {
		field, value, ok := strings.Cut(r, "=")
		field = strings.TrimSpace(field)
		if !ok || field == "" {
			return nil, fmt.Errorf("%w: %q (expected field=value)", models.ErrInvalidOption, r)
		}
		if err := ValidateField(field); err != nil {
			return nil, err
		}
		if field == models.FieldInStock {
			b, err := strconv.ParseBool(value)
			if err != nil {
				return nil, fmt.Errorf("%w: %q (in_stock must be true or false)", models.ErrInvalidOption, r)
			}
			filters[field] = b
			continue
		}
		filters[field] = value
	}
	return filters, nil
}

// ValidateField checks that field is one of the catalog's facet fields
func ValidateField(field string) error {
	for _, f := range models.FacetFields {
		if f == field {
			return nil
		}
	}
	return fmt.Errorf("%w: %q (must be one of: %s)", models.ErrUnknownField, field, strings.Join(models.FacetFields, ", "))
}
