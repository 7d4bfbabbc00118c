package database

// DataStore defines the unified interface for all data operations needed by the TUI and CLI.
// Consumers that only read facets should depend on ProductReader instead.
type DataStore interface {
	ProductRepository
}
