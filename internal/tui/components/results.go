package components

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/facetview/internal/models"
)

// RenderResults lists matching products, one per line
func RenderResults(products []*models.Product) string {
	if len(products) == 0 {
		return subtleStyle().Italic(true).Render("No products match the current filters")
	}

	lines := make([]string, 0, len(products))
	for _, p := range products {
		line := fmt.Sprintf("%-24s %-12s %-6s %-2s %8.2f", p.Name, p.Brand, p.Color, p.Size, p.Price)
		if p.InStock {
			lines = append(lines, normalStyle().Render(line))
		} else {
			lines = append(lines, subtleStyle().Render(line+"  sold out"))
		}
	}
	return strings.Join(lines, "\n")
}
