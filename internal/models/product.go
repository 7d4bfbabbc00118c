package models

import "sort"

// Product is a single catalog entry that facets are computed over
type Product struct {
	ID      int
	Name    string
	Brand   string
	Color   string
	Size    string
	Price   float64
	InStock bool
}

// Filters maps a facet field to its single selected value.
// Methods never mutate the receiver; callers replace their copy.
type Filters map[string]FieldValue

// With returns a copy of the filters with field set to value
func (f Filters) With(field string, value FieldValue) Filters {
	out := make(Filters, len(f)+1)
	for k, v := range f {
		out[k] = v
	}
	out[field] = value
	return out
}

// Without returns a copy of the filters with field removed
func (f Filters) Without(field string) Filters {
	out := make(Filters, len(f))
	for k, v := range f {
		if k != field {
			out[k] = v
		}
	}
	return out
}

// Fields returns the active filter fields in sorted order
func (f Filters) Fields() []string {
	fields := make([]string, 0, len(f))
	for k := range f {
		fields = append(fields, k)
	}
	sort.Strings(fields)
	return fields
}
