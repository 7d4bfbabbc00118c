package models

import (
	"errors"
	"testing"
)

// ============================================================================
// Error Tests
// ============================================================================

func TestErrors_Messages(t *testing.T) {
	tests := []struct {
		err             error
		expectedMessage string
	}{
		{ErrUnknownField, "unknown facet field"},
		{ErrInvalidOption, "invalid facet option"},
	}

	for _, tt := range tests {
		if tt.err.Error() != tt.expectedMessage {
			t.Errorf("Expected error message '%s', got '%s'", tt.expectedMessage, tt.err.Error())
		}
	}
}

func TestErrors_Unique(t *testing.T) {
	if errors.Is(ErrUnknownField, ErrInvalidOption) {
		t.Error("ErrUnknownField should not equal ErrInvalidOption")
	}
}

// ============================================================================
// Filters Tests
// ============================================================================

func TestFilters_WithDoesNotMutate(t *testing.T) {
	base := Filters{FieldBrand: "Nike"}
	next := base.With(FieldColor, "Red")

	if len(base) != 1 {
		t.Errorf("base filters mutated: %v", base)
	}
	if next[FieldColor] != "Red" || next[FieldBrand] != "Nike" {
		t.Errorf("With() = %v, want brand and color set", next)
	}
}

func TestFilters_WithReplacesValue(t *testing.T) {
	next := Filters{FieldBrand: "Nike"}.With(FieldBrand, "Puma")
	if next[FieldBrand] != "Puma" {
		t.Errorf("With() brand = %v, want Puma", next[FieldBrand])
	}
}

func TestFilters_Without(t *testing.T) {
	base := Filters{FieldBrand: "Nike", FieldColor: "Red"}
	next := base.Without(FieldBrand)

	if _, ok := next[FieldBrand]; ok {
		t.Error("Without() should drop brand")
	}
	if len(base) != 2 {
		t.Errorf("base filters mutated: %v", base)
	}
}

func TestFilters_Fields_Sorted(t *testing.T) {
	f := Filters{FieldSize: "M", FieldBrand: "Nike", FieldColor: "Red"}
	got := f.Fields()
	want := []string{FieldBrand, FieldColor, FieldSize}
	if len(got) != len(want) {
		t.Fatalf("Fields() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Fields()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFacetLabels_CoverEveryField(t *testing.T) {
	for _, field := range FacetFields {
		if FacetLabels[field] == "" {
			t.Errorf("missing label for field %q", field)
		}
	}
}
