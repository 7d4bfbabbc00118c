package database

import "github.com/thenoetrevino/facetview/internal/models"

// SeedProducts returns the demo catalog inserted by Seed
func SeedProducts() []models.Product {
	return []models.Product{
		{Name: "Air Zoom Pegasus", Brand: "Nike", Color: "Black", Size: "M", Price: 119.99, InStock: true},
		{Name: "Air Max 90", Brand: "Nike", Color: "White", Size: "L", Price: 129.99, InStock: true},
		{Name: "Dri-FIT Tee", Brand: "Nike", Color: "Red", Size: "S", Price: 29.99, InStock: true},
		{Name: "Tech Fleece Hoodie", Brand: "Nike", Color: "Black", Size: "L", Price: 109.99, InStock: false},
		{Name: "Revolution 6", Brand: "Nike", Color: "Blue", Size: "M", Price: 64.99, InStock: true},
		{Name: "Suede Classic", Brand: "Puma", Color: "Red", Size: "M", Price: 74.99, InStock: true},
		{Name: "RS-X Efekt", Brand: "Puma", Color: "White", Size: "L", Price: 109.99, InStock: false},
		{Name: "Essentials Tee", Brand: "Puma", Color: "Black", Size: "S", Price: 24.99, InStock: true},
		{Name: "Ultraboost Light", Brand: "Adidas", Color: "Black", Size: "M", Price: 189.99, InStock: true},
		{Name: "Samba OG", Brand: "Adidas", Color: "White", Size: "S", Price: 99.99, InStock: true},
		{Name: "Tiro Track Pants", Brand: "Adidas", Color: "Blue", Size: "L", Price: 54.99, InStock: true},
		{Name: "Gazelle", Brand: "Adidas", Color: "Red", Size: "M", Price: 99.99, InStock: false},
		{Name: "Fresh Foam 1080", Brand: "New Balance", Color: "Blue", Size: "M", Price: 164.99, InStock: true},
		{Name: "550", Brand: "New Balance", Color: "White", Size: "L", Price: 109.99, InStock: true},
		{Name: "Chuck Taylor All Star", Brand: "Converse", Color: "Black", Size: "S", Price: 59.99, InStock: true},
	}
}
