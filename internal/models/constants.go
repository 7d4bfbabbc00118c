package models

// ============================================================================
// FACET FIELD CONSTANTS
// ============================================================================

// Facet fields exposed by the product catalog
const (
	FieldBrand   = "brand"
	FieldColor   = "color"
	FieldSize    = "size"
	FieldInStock = "in_stock"
)

// FacetFields lists every facet field in display order
var FacetFields = []string{FieldBrand, FieldColor, FieldSize, FieldInStock}

// FacetLabels maps each facet field to its human-readable title
var FacetLabels = map[string]string{
	FieldBrand:   "Brand",
	FieldColor:   "Color",
	FieldSize:    "Size",
	FieldInStock: "In Stock",
}

// ============================================================================
// CLASS NAME CONSTANTS
// ============================================================================

// BaseFacetClassName is the fixed class token on every facet root container
const BaseFacetClassName = "sui-facet"
