package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockDataWithID struct {
	ID   int
	Name string
}

func (m mockDataWithID) GetID() int {
	return m.ID
}

type mockHuman struct{}

func (mockHuman) Human() string { return "\x1b[1mBrand\x1b[0m\n  Nike (5)" }

type mockQuiet struct{}

func (mockQuiet) QuietLines() []string { return []string{"Nike", "Puma"} }

func newFormatter(jsonOut, quiet bool) (*OutputFormatter, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return &OutputFormatter{JSON: jsonOut, Quiet: quiet, Out: &out, ErrOut: &errOut}, &out, &errOut
}

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var result map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result), "output: %s", buf.String())
	return result
}

func TestOutputFormatter_Success_JSON(t *testing.T) {
	tests := []struct {
		name string
		data any
		want any
	}{
		{"string data", "simple string", "simple string"},
		{"integer data", 42, float64(42)},
		{"nil data", nil, nil},
		{"map data", map[string]any{"test": "value"}, map[string]any{"test": "value"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, out, _ := newFormatter(true, false)
			require.NoError(t, f.Success(tt.data))

			result := decode(t, out)
			assert.Equal(t, true, result["success"])
			assert.Equal(t, tt.want, result["data"])
		})
	}
}

func TestOutputFormatter_Success_Quiet(t *testing.T) {
	t.Run("with ID", func(t *testing.T) {
		f, out, _ := newFormatter(false, true)
		require.NoError(t, f.Success(mockDataWithID{ID: 123, Name: "Test"}))
		assert.Equal(t, "123\n", out.String())
	})

	t.Run("quiet lines", func(t *testing.T) {
		f, out, _ := newFormatter(false, true)
		require.NoError(t, f.Success(mockQuiet{}))
		assert.Equal(t, "Nike\nPuma\n", out.String())
	})

	t.Run("neither falls back to human output", func(t *testing.T) {
		f, out, _ := newFormatter(false, true)
		require.NoError(t, f.Success("plain"))
		assert.Equal(t, "plain\n", out.String())
	})

	t.Run("ID takes precedence over JSON", func(t *testing.T) {
		f, out, _ := newFormatter(true, true)
		require.NoError(t, f.Success(mockDataWithID{ID: 7}))
		assert.Equal(t, "7\n", out.String())
	})
}

func TestOutputFormatter_Success_HumanReadable(t *testing.T) {
	f, out, _ := newFormatter(false, false)
	require.NoError(t, f.Success(mockHuman{}))

	// A buffer is not a terminal, so styling is stripped
	assert.False(t, f.Styled())
	assert.Equal(t, "Brand\n  Nike (5)\n", out.String())
}

func TestOutputFormatter_Error(t *testing.T) {
	t.Run("JSON", func(t *testing.T) {
		f, out, errOut := newFormatter(true, false)
		require.NoError(t, f.ErrorWithSuggestion("NOT_FOUND", "no such field", "use brand"))

		result := decode(t, out)
		assert.Equal(t, false, result["success"])
		errData := result["error"].(map[string]any)
		assert.Equal(t, "NOT_FOUND", errData["code"])
		assert.Equal(t, "no such field", errData["message"])
		assert.Equal(t, "use brand", errData["suggestion"])
		assert.Empty(t, errOut.String())
	})

	t.Run("JSON without suggestion", func(t *testing.T) {
		f, out, _ := newFormatter(true, false)
		require.NoError(t, f.Error("ERROR", "boom"))

		errData := decode(t, out)["error"].(map[string]any)
		assert.NotContains(t, errData, "suggestion")
	})

	t.Run("human readable", func(t *testing.T) {
		f, out, errOut := newFormatter(false, false)
		require.NoError(t, f.ErrorWithSuggestion("ERROR", "boom", "try again"))

		assert.Empty(t, out.String())
		assert.Contains(t, errOut.String(), "Error: boom")
		assert.Contains(t, errOut.String(), "Suggestion: try again")
	})
}
