package facet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/facetview/internal/models"
)

func TestComputeMode(t *testing.T) {
	tests := []struct {
		name      string
		options   []models.Option
		wantKind  ModeKind
		wantValue models.FieldValue
	}{
		{"empty", nil, ModeList, nil},
		{"none selected", []models.Option{{Value: "a"}, {Value: "b"}}, ModeList, nil},
		{"one selected", []models.Option{{Value: "a"}, {Value: "b", Selected: true}}, ModeSelected, "b"},
		{
			"first selected wins",
			[]models.Option{{Value: "a"}, {Value: "b", Selected: true}, {Value: "c", Selected: true}},
			ModeSelected, "b",
		},
		{"falsy value still selected", []models.Option{{Value: false, Selected: true}}, ModeSelected, false},
		{"zero value still selected", []models.Option{{Value: 0, Selected: true}}, ModeSelected, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mode := ComputeMode(tt.options)
			assert.Equal(t, tt.wantKind, mode.Kind)
			assert.Equal(t, tt.wantValue, mode.Value)
		})
	}
}

func TestModeKind_String(t *testing.T) {
	assert.Equal(t, "list", ModeList.String())
	assert.Equal(t, "selected", ModeSelected.String())
}
