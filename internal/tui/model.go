package tui

import (
	"context"
	"fmt"
	"log/slog"

	"charm.land/bubbles/v2/textinput"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/facetview/internal/config"
	"github.com/thenoetrevino/facetview/internal/database"
	"github.com/thenoetrevino/facetview/internal/facet"
	"github.com/thenoetrevino/facetview/internal/models"
	"github.com/thenoetrevino/facetview/internal/tui/components"
	"github.com/thenoetrevino/facetview/internal/tui/state"
	"github.com/thenoetrevino/facetview/internal/tui/theme"
	"github.com/thenoetrevino/facetview/internal/viewhelpers"
)

// Model represents the application state for the facet browser
type Model struct {
	Ctx    context.Context
	Repo   database.ProductReader
	Config *config.Config
	Keys   KeyMap

	UiState           *state.UIState
	FacetState        *state.FacetState
	NotificationState *state.NotificationState

	QueryInput      textinput.Model
	ResultsViewport viewport.Model

	// Products and ResultCount hold the latest search results
	Products    []*models.Product
	ResultCount int

	// Fields are the facet fields shown, in panel order
	Fields []string
}

// InitialModel creates the browser model and performs the first render pass
func InitialModel(ctx context.Context, repo database.ProductReader, cfg *config.Config) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	theme.Init(cfg.ColorScheme)

	ti := textinput.New()
	ti.Placeholder = "Search products..."
	ti.Prompt = "/ "

	m := Model{
		Ctx:               ctx,
		Repo:              repo,
		Config:            cfg,
		Keys:              NewKeyMap(cfg.KeyMappings),
		UiState:           state.NewUIState(),
		FacetState:        state.NewFacetState(),
		NotificationState: state.NewNotificationState(),
		QueryInput:        ti,
		ResultsViewport:   viewport.New(),
		Fields:            models.FacetFields,
	}
	m.Reload()
	return m
}

// Init initializes the Bubble Tea application
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return nil
}

// Reload runs a render pass: every facet widget is rebuilt from fresh
// catalog options, and the results are re-queried. Nothing is cached
// between passes.
func (m *Model) Reload() {
	filters := m.FacetState.Filters()
	query := m.FacetState.Query()

	panels := make([]state.FacetPanel, 0, len(m.Fields))
	for _, field := range m.Fields {
		options, err := m.Repo.FacetOptions(m.Ctx, field, query, filters)
		if err != nil {
			slog.Error("Failed to load facet options", "field", field, "error", err)
			m.NotificationState.Add(state.LevelError, fmt.Sprintf("Failed to load %s", field))
			options = nil
		}

		label := models.FacetLabels[field]
		panels = append(panels, state.FacetPanel{
			Field: field,
			Label: label,
			Mode:  facet.ComputeMode(options),
			Tree: facet.SingleLinks(facet.Props{
				ClassName: m.Config.FacetClassName,
				Label:     label,
				Options:   options,
				OnSelect:  m.selectHandler(field),
				OnRemove:  m.removeHandler(field),
			}),
		})
	}
	m.FacetState.SetPanels(panels)

	products, err := m.Repo.Search(m.Ctx, query, filters)
	if err != nil {
		slog.Error("Failed to search products", "error", err)
		m.NotificationState.Add(state.LevelError, "Failed to search products")
		products = nil
	}
	m.Products = products
	m.ResultCount = len(products)
	m.ResultsViewport.SetContent(components.RenderResults(products))
	m.layoutResults()
}

// layoutResults gives the results pane whatever height the query line,
// facet panels and status bar leave free.
func (m *Model) layoutResults() {
	if m.UiState.Width() == 0 {
		return
	}
	used := lipgloss.Height(m.viewQuery()) + lipgloss.Height(m.viewFacets()) + lipgloss.Height(m.viewStatusBar())
	m.ResultsViewport.SetWidth(m.UiState.Width())
	m.ResultsViewport.SetHeight(max(m.UiState.Height()-used, 1))
}

// selectHandler returns the OnSelect callback for field.
// The callbacks write through the shared state pointers, so they act on
// whichever copy of the model is current when they fire.
func (m *Model) selectHandler(field string) func(models.FieldValue) {
	facetState, notifications := m.FacetState, m.NotificationState
	return func(value models.FieldValue) {
		facetState.SetFilters(facetState.Filters().With(field, value))
		display := viewhelpers.FilterValueDisplay(value)
		slog.Info("Facet value selected", "field", field, "value", display)
		notifications.Add(state.LevelInfo, fmt.Sprintf("%s: %s", models.FacetLabels[field], display))
	}
}

// removeHandler returns the OnRemove callback for field
func (m *Model) removeHandler(field string) func(models.FieldValue) {
	facetState, notifications := m.FacetState, m.NotificationState
	return func(value models.FieldValue) {
		facetState.SetFilters(facetState.Filters().Without(field))
		display := viewhelpers.FilterValueDisplay(value)
		slog.Info("Facet value removed", "field", field, "value", display)
		notifications.Add(state.LevelInfo, fmt.Sprintf("Removed %s: %s", models.FacetLabels[field], display))
	}
}
