package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/facetview/internal/models"
)

func TestParseOption_Valid(t *testing.T) {
	tests := []struct {
		raw  string
		want models.Option
	}{
		{"Nike=5", models.Option{Value: "Nike", Count: 5}},
		{"Nike=5:selected", models.Option{Value: "Nike", Count: 5, Selected: true}},
		{"a=b=0", models.Option{Value: "a=b", Count: 0}},
		{"New Balance=2", models.Option{Value: "New Balance", Count: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseOption(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseOption_Invalid(t *testing.T) {
	for _, raw := range []string{"", "Nike", "=5", "Nike=", "Nike=x", "Nike=-1", "Nike=5:chosen"} {
		t.Run(raw, func(t *testing.T) {
			_, err := ParseOption(raw)
			assert.ErrorIs(t, err, models.ErrInvalidOption)
		})
	}
}

func TestParseOptions_KeepsOrder(t *testing.T) {
	got, err := ParseOptions([]string{"Puma=2", "Nike=5"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Puma", got[0].Value)
	assert.Equal(t, "Nike", got[1].Value)

	_, err = ParseOptions([]string{"Puma=2", "bad"})
	assert.Error(t, err)
}

func TestParseFilters(t *testing.T) {
	got, err := ParseFilters([]string{"brand=Nike", "in_stock=false"})
	require.NoError(t, err)
	assert.Equal(t, models.Filters{"brand": "Nike", "in_stock": false}, got)

	_, err = ParseFilters([]string{"weight=10"})
	assert.ErrorIs(t, err, models.ErrUnknownField)

	_, err = ParseFilters([]string{"in_stock=maybe"})
	assert.ErrorIs(t, err, models.ErrInvalidOption)

	_, err = ParseFilters([]string{"brand"})
	assert.ErrorIs(t, err, models.ErrInvalidOption)
}

func TestExitCode(t *testing.T) {
	base := errors.New("boom")

	assert.Equal(t, ExitSuccess, ExitCode(nil))
	assert.Equal(t, ExitError, ExitCode(base))
	assert.Equal(t, ExitNotFound, ExitCode(WithExitCode(ExitNotFound, base)))
	assert.Equal(t, ExitDataErr, ExitCode(MarkReported(fmt.Errorf("wrapped: %w", WithExitCode(ExitDataErr, base)))))
	assert.Nil(t, WithExitCode(ExitUsage, nil))
}

func TestMarkReported(t *testing.T) {
	base := errors.New("boom")

	assert.False(t, IsReported(base))
	assert.True(t, IsReported(MarkReported(base)))
	assert.ErrorIs(t, MarkReported(base), base)
	assert.Nil(t, MarkReported(nil))
}
