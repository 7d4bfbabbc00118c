package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/facetview/internal/cli"
)

func runCmd(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := RenderCmd()
	cmd.SilenceUsage, cmd.SilenceErrors = true, true
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRender_ListMode(t *testing.T) {
	out, _, err := runCmd(t, "--label", "Brand", "--option", "Nike=5", "--option", "Puma=2")
	require.NoError(t, err)
	assert.Equal(t, "Brand\n  Nike (5)\n  Puma (2)\n", out)
}

func TestRender_SelectedMode(t *testing.T) {
	out, _, err := runCmd(t, "--label", "Brand", "--option", "Nike=5:selected", "--option", "Puma=2")
	require.NoError(t, err)
	assert.Equal(t, "Brand\n  Nike (Remove)\n", out)
}

func TestRender_HTML(t *testing.T) {
	out, _, err := runCmd(t,
		"--label", "Brand", "--class", "extra", "--format", "html",
		"--option", "Nike=5:selected", "--option", "Puma=2",
	)
	require.NoError(t, err)

	want := `<div class="sui-facet extra"><div><div class="sui-facet__title">Brand</div>` +
		`<ul class="sui-single-option-facet"><li class="sui-single-option-facet__selected">Nike ` +
		`<span class="sui-single-option-facet__remove">(<a href="/">Remove</a>)</span></li></ul></div></div>` + "\n"
	assert.Equal(t, want, out)
}

func TestRender_NoOptions(t *testing.T) {
	out, _, err := runCmd(t, "--label", "Brand", "--format", "html")
	require.NoError(t, err)
	assert.Contains(t, out, `<ul class="sui-single-option-facet"></ul>`)
}

func TestRender_ActivateSelect(t *testing.T) {
	out, _, err := runCmd(t,
		"--label", "Brand", "--option", "Nike=5", "--option", "Puma=2",
		"--activate", "2", "--json",
	)
	require.NoError(t, err)

	var result map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, true, result["success"])

	data := result["data"].(map[string]any)
	assert.Equal(t, "list", data["mode"])
	assert.Equal(t, "Brand\n  Nike (5)\n  Puma (2)", data["markup"])

	activation := data["activation"].(map[string]any)
	assert.Equal(t, float64(2), activation["index"])
	assert.Equal(t, "Puma", activation["link"])
	assert.Equal(t, "select", activation["callback"])
	assert.Equal(t, "Puma", activation["value"])
	assert.Equal(t, true, activation["default_prevented"])
}

func TestRender_ActivateRemove(t *testing.T) {
	out, _, err := runCmd(t,
		"--label", "Brand", "--option", "Nike=5:selected", "--option", "Puma=2",
		"--activate", "1",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "Nike (Remove)")
	assert.Contains(t, out, `activated #1 "Remove": remove(Nike), default prevented: true`)
}

func TestRender_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
	}{
		{"missing label", []string{"--option", "Nike=5"}, cli.ExitUsage},
		{"bad option", []string{"--label", "Brand", "--option", "Nike"}, cli.ExitDataErr},
		{"bad format", []string{"--label", "Brand", "--format", "xml"}, cli.ExitValidation},
		{"link out of range", []string{"--label", "Brand", "--option", "Nike=5", "--activate", "3"}, cli.ExitNotFound},
		{"negative activate", []string{"--label", "Brand", "--activate", "-1"}, cli.ExitUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errOut, err := runCmd(t, tt.args...)
			require.Error(t, err)
			assert.True(t, cli.IsReported(err))
			assert.Equal(t, tt.code, cli.ExitCode(err))
			assert.Contains(t, errOut, "Error:")
		})
	}
}

func TestRender_ErrorJSON(t *testing.T) {
	out, _, err := runCmd(t, "--label", "Brand", "--option", "Nike", "--json")
	require.Error(t, err)

	var result map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, false, result["success"])
	assert.Equal(t, "DATA_ERROR", result["error"].(map[string]any)["code"])
}
