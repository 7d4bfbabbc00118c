// Package facet renders single-choice search facets.
//
// SingleLinks maps a facet's options to a markup tree in one of two modes.
// When an option is selected, only that value is shown together with a Remove
// link; otherwise every option is listed with its result count as a link that
// selects it. The widget owns no state: the caller supplies the selection on
// every render and re-renders after either callback fires.
package facet

import (
	"github.com/thenoetrevino/facetview/internal/models"
	"github.com/thenoetrevino/facetview/internal/viewhelpers"
)

// Class tokens of the rendered tree
const (
	ClassTitle    = "sui-facet__title"
	ClassList     = "sui-single-option-facet"
	ClassSelected = "sui-single-option-facet__selected"
	ClassRemove   = "sui-single-option-facet__remove"
	ClassItem     = "sui-single-option-facet__item"
	ClassLink     = "sui-single-option-facet__link"
	ClassCount    = "sui-facet__count"
)

// RemoveText is the caption of the clear affordance
const RemoveText = "Remove"

// Props are the render inputs of a single-choice facet.
// They are read-only for the duration of one render.
type Props struct {
	// ClassName is appended to the base class of the root container. Empty means none.
	ClassName string
	Label     string
	Options   []models.Option

	// OnSelect is called with an option's value when its link is activated
	OnSelect func(value models.FieldValue)
	// OnRemove is called with the selected value when Remove is activated
	OnRemove func(value models.FieldValue)

	// FormatValue turns a value into display text. Defaults to viewhelpers.FilterValueDisplay.
	FormatValue func(value models.FieldValue) string
	// ComposeClassName joins the base class with extras. Defaults to viewhelpers.AppendClassName.
	ComposeClassName func(base string, extra ...string) string
}

func (p Props) formatValue() func(models.FieldValue) string {
	if p.FormatValue != nil {
		return p.FormatValue
	}
	return viewhelpers.FilterValueDisplay
}

func (p Props) rootClassName() string {
	compose := p.ComposeClassName
	if compose == nil {
		compose = viewhelpers.AppendClassName
	}
	if p.ClassName == "" {
		return compose(models.BaseFacetClassName)
	}
	return compose(models.BaseFacetClassName, p.ClassName)
}
