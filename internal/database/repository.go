package database

import "database/sql"

// Repository provides a unified interface to all data operations.
type Repository struct {
	*ProductRepo
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		ProductRepo: &ProductRepo{db: db},
	}
}

var _ DataStore = (*Repository)(nil)
