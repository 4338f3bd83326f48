package ports

import "go.trai.ch/pack/internal/core/domain"

// OutputStore remembers what was last emitted for each asset.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type OutputStore interface {
	// Get retrieves the record for the asset with the given identity.
	// Returns nil, nil if not found.
	Get(root string, id domain.Ident) (*domain.OutputRecord, error)

	// Put stores the record.
	Put(root string, record domain.OutputRecord) error
}

// OutputWriter writes emitted assets.
type OutputWriter interface {
	// Write replaces the file at path with content, creating parent directories.
	Write(path string, content domain.Content) error
	// Exists reports whether a regular file exists at path.
	Exists(path string) bool
}
