package facet

import "github.com/thenoetrevino/facetview/internal/models"

// ModeKind identifies which of the two render states a facet is in
type ModeKind int

const (
	// ModeList shows every option as a selectable link
	ModeList ModeKind = iota
	// ModeSelected shows only the selected value with a Remove link
	ModeSelected
)

// String returns the name of the mode
func (k ModeKind) String() string {
	switch k {
	case ModeSelected:
		return "selected"
	default:
		return "list"
	}
}

// Mode is the render state derived from a facet's options
type Mode struct {
	Kind ModeKind
	// Value is the selected value; only meaningful in ModeSelected
	Value models.FieldValue
}

// ComputeMode derives the render state from the Selected flags of options.
// The first selected option wins; later selected options are ignored.
func ComputeMode(options []models.Option) Mode {
	for _, o := range options {
		if o.Selected {
			return Mode{Kind: ModeSelected, Value: o.Value}
		}
	}
	return Mode{Kind: ModeList}
}
