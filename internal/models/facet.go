package models

// FieldValue is a single value of a filterable field.
// It holds a primitive (string, integer, float, bool) or a FilterValueRange.
type FieldValue any

// FilterValueRange is a bounded range value, e.g. a price band.
// Either bound may be nil for an open-ended range.
type FilterValueRange struct {
	From FieldValue
	To   FieldValue
	Name string
}

// Option is one candidate value of a facet and how many results it would yield.
type Option struct {
	Value    FieldValue
	Count    int
	Selected bool
}
