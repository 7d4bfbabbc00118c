package database

import (
	"context"

	"github.com/thenoetrevino/facetview/internal/models"
)

// ProductReader defines read operations for products and their facets.
type ProductReader interface {
	FacetOptions(ctx context.Context, field, query string, filters models.Filters) ([]models.Option, error)
	Search(ctx context.Context, query string, filters models.Filters) ([]*models.Product, error)
	CountProducts(ctx context.Context, query string, filters models.Filters) (int, error)
}

// ProductWriter defines write operations for products.
type ProductWriter interface {
	CreateProduct(ctx context.Context, p *models.Product) (*models.Product, error)
	Seed(ctx context.Context) (int, error)
}

// ProductRepository combines all product-related operations.
type ProductRepository interface {
	ProductReader
	ProductWriter
}
