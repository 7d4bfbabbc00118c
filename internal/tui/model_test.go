package tui

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/facetview/internal/config"
	"github.com/thenoetrevino/facetview/internal/facet"
	"github.com/thenoetrevino/facetview/internal/markup"
	"github.com/thenoetrevino/facetview/internal/models"
	"github.com/thenoetrevino/facetview/internal/testutil"
	"github.com/thenoetrevino/facetview/internal/tui/state"
)

func setupModel(t *testing.T) Model {
	t.Helper()
	repo := testutil.SetupSeededRepo(t)
	return InitialModel(context.Background(), repo, config.Default())
}

func keyPress(s string) tea.KeyPressMsg {
	switch s {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	}
	r := []rune(s)[0]
	return tea.KeyPressMsg{Code: r, Text: s}
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		updated, _ := m.Update(keyPress(k))
		var ok bool
		m, ok = updated.(Model)
		require.True(t, ok)
	}
	return m
}

func brandPanel(t *testing.T, m Model) state.FacetPanel {
	t.Helper()
	panels := m.FacetState.Panels()
	require.NotEmpty(t, panels)
	require.Equal(t, models.FieldBrand, panels[0].Field)
	return panels[0]
}

func TestInitialModel_RendersEveryFacet(t *testing.T) {
	m := setupModel(t)

	panels := m.FacetState.Panels()
	require.Len(t, panels, len(models.FacetFields))
	for i, panel := range panels {
		assert.Equal(t, models.FacetFields[i], panel.Field)
		assert.Equal(t, facet.ModeList, panel.Mode.Kind)
		assert.NotNil(t, panel.Tree)
	}

	assert.Equal(t, 15, m.ResultCount)
	assert.Empty(t, m.FacetState.Filters())

	// Brand options are ordered by count, so Nike comes first
	focused := m.FacetState.FocusedAffordance()
	require.NotNil(t, focused)
	assert.Equal(t, "Nike", focused.TextContent())
}

func TestActivate_SelectsOption(t *testing.T) {
	m := setupModel(t)

	m = press(t, m, "enter")

	assert.Equal(t, models.Filters{models.FieldBrand: "Nike"}, m.FacetState.Filters())
	assert.Equal(t, 5, m.ResultCount)

	panel := brandPanel(t, m)
	assert.Equal(t, facet.ModeSelected, panel.Mode.Kind)
	assert.Equal(t, "Nike", panel.Mode.Value)
	assert.Len(t, panel.Tree.FindByClass(facet.ClassSelected), 1)
	assert.Empty(t, panel.Tree.FindByClass(facet.ClassItem))

	n, ok := m.NotificationState.Latest()
	require.True(t, ok)
	assert.Equal(t, state.LevelInfo, n.Level)
	assert.Equal(t, "Brand: Nike", n.Message)
}

func TestActivate_RemoveClearsSelection(t *testing.T) {
	m := setupModel(t)

	m = press(t, m, "enter")
	require.Equal(t, 5, m.ResultCount)

	// The only affordance left in the brand facet is Remove
	focused := m.FacetState.FocusedAffordance()
	require.NotNil(t, focused)
	assert.Equal(t, facet.RemoveText, focused.TextContent())

	m = press(t, m, "enter")

	assert.Empty(t, m.FacetState.Filters())
	assert.Equal(t, 15, m.ResultCount)
	assert.Equal(t, facet.ModeList, brandPanel(t, m).Mode.Kind)

	n, ok := m.NotificationState.Latest()
	require.True(t, ok)
	assert.Equal(t, "Removed Brand: Nike", n.Message)
}

func TestNavigation_SelectsSecondOption(t *testing.T) {
	m := setupModel(t)

	m = press(t, m, "j", "enter")

	assert.Equal(t, models.Filters{models.FieldBrand: "Adidas"}, m.FacetState.Filters())
	assert.Equal(t, 4, m.ResultCount)
}

func TestNavigation_AcrossFacets(t *testing.T) {
	m := setupModel(t)

	m = press(t, m, "l")
	assert.Equal(t, 1, m.FacetState.PanelCursor())
	assert.Equal(t, 0, m.FacetState.Cursor())

	m = press(t, m, "enter")
	assert.Equal(t, models.Filters{models.FieldColor: "Black"}, m.FacetState.Filters())
	assert.Equal(t, 5, m.ResultCount)

	// Counts in the brand facet now reflect the color filter
	brandOptions := brandPanel(t, m).Tree.FindByClass(facet.ClassCount)
	require.NotEmpty(t, brandOptions)
	assert.Equal(t, "2", brandOptions[0].TextContent())

	m = press(t, m, "h")
	assert.Equal(t, 0, m.FacetState.PanelCursor())
}

func TestActivate_BoolFacet(t *testing.T) {
	m := setupModel(t)

	// in_stock is the last facet
	m = press(t, m, "h", "enter")

	filters := m.FacetState.Filters()
	require.Contains(t, filters, models.FieldInStock)
	assert.Equal(t, true, filters[models.FieldInStock])
	assert.Equal(t, 12, m.ResultCount)
}

func TestClearFacet(t *testing.T) {
	m := setupModel(t)

	m = press(t, m, "enter", "x")

	assert.Empty(t, m.FacetState.Filters())
	assert.Equal(t, 15, m.ResultCount)
}

func TestClearFacet_ListModeIsNoop(t *testing.T) {
	m := setupModel(t)

	m = press(t, m, "x")

	assert.Empty(t, m.FacetState.Filters())
	assert.False(t, m.NotificationState.HasAny())
}

func TestClearAll(t *testing.T) {
	m := setupModel(t)

	m = press(t, m, "enter", "l", "enter", "X")

	assert.Empty(t, m.FacetState.Filters())
	assert.Equal(t, 15, m.ResultCount)
	n, ok := m.NotificationState.Latest()
	require.True(t, ok)
	assert.Equal(t, "Cleared all filters", n.Message)
}

func TestSearchMode_AppliesQuery(t *testing.T) {
	m := setupModel(t)

	m = press(t, m, "/")
	require.Equal(t, state.SearchMode, m.UiState.Mode())

	m.QueryInput.SetValue("air")
	m = press(t, m, "enter")

	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.Equal(t, "air", m.FacetState.Query())
	assert.Equal(t, 2, m.ResultCount)
}

func TestSearchMode_EscDiscardsEdit(t *testing.T) {
	m := setupModel(t)

	m = press(t, m, "/")
	m.QueryInput.SetValue("air")
	m = press(t, m, "esc")

	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.Empty(t, m.FacetState.Query())
	assert.Empty(t, m.QueryInput.Value())
	assert.Equal(t, 15, m.ResultCount)
}

func TestHelpMode(t *testing.T) {
	m := setupModel(t)

	m = press(t, m, "?")
	assert.Equal(t, state.HelpMode, m.UiState.Mode())

	// enter closes help without activating anything
	m = press(t, m, "enter")
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.Empty(t, m.FacetState.Filters())
}

func TestQuit(t *testing.T) {
	m := setupModel(t)

	_, cmd := m.Update(keyPress("q"))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestStaleTreeKeepsRenderTimeValue(t *testing.T) {
	m := setupModel(t)

	// Keep a tree from before the selection changed
	staleLink := m.FacetState.FocusedAffordance()
	require.NotNil(t, staleLink)

	m = press(t, m, "j", "enter")
	require.Equal(t, "Adidas", m.FacetState.Filters()[models.FieldBrand])

	ev := markup.NewEvent()
	require.NoError(t, staleLink.Activate(ev))
	assert.True(t, ev.DefaultPrevented())
	assert.Equal(t, "Nike", m.FacetState.Filters()[models.FieldBrand])
}

func TestView(t *testing.T) {
	m := setupModel(t)

	view := m.View()
	assert.Equal(t, "Loading...", view.Content)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 160, Height: 40})
	m = updated.(Model)

	view = m.View()
	assert.True(t, view.AltScreen)
	content := ansi.Strip(view.Content)
	for _, want := range []string{"Brand", "Color", "Size", "In Stock", "Nike (5)", "15 results", "Air Max 90"} {
		assert.Contains(t, content, want)
	}

	m = press(t, m, "enter")
	content = ansi.Strip(m.View().Content)
	assert.Contains(t, content, "Nike (Remove)")
	assert.Contains(t, content, "Brand: Nike")
}

type failingReader struct{}

func (failingReader) FacetOptions(context.Context, string, string, models.Filters) ([]models.Option, error) {
	return nil, errors.New("boom")
}

func (failingReader) Search(context.Context, string, models.Filters) ([]*models.Product, error) {
	return nil, errors.New("boom")
}

func (failingReader) CountProducts(context.Context, string, models.Filters) (int, error) {
	return 0, errors.New("boom")
}

func TestReload_Errors(t *testing.T) {
	m := InitialModel(context.Background(), failingReader{}, nil)

	// Facets still render, with no options
	panels := m.FacetState.Panels()
	require.Len(t, panels, len(models.FacetFields))
	assert.Equal(t, facet.ModeList, panels[0].Mode.Kind)
	assert.Nil(t, m.FacetState.FocusedAffordance())
	assert.Zero(t, m.ResultCount)

	n, ok := m.NotificationState.Latest()
	require.True(t, ok)
	assert.Equal(t, state.LevelError, n.Level)
}
