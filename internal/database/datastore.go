package database

// DataStore defines the unified interface for all data operations needed by the services.
// Consumers can depend on smaller interfaces (e.g., TaskReader) for clearer dependencies.
type DataStore interface {
	TaskRepository
}

// Compile-time verification that *Repository implements DataStore
var _ DataStore = (*Repository)(nil)
