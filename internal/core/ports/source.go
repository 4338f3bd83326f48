package ports

import (
	"context"

	"go.trai.ch/pack/internal/core/domain"
)

// Source is an original input to the asset graph.
// A Source is never mutated after creation; a changed input is a new Source.
//
//go:generate mockgen -source=source.go -destination=mocks/mock_source.go -package=mocks
type Source interface {
	// Ident returns the stable identity of the source.
	Ident() domain.Ident
	// Content reads the source. Failures match domain.ErrContentUnavailable.
	Content(ctx context.Context) (domain.Content, error)
}

// SourceProvider resolves and opens sources under a project root.
type SourceProvider interface {
	// Resolve expands patterns relative to root into sorted, slash-separated relative paths.
	// Files whose base name or relative path matches an ignore pattern are skipped.
	Resolve(root string, patterns, ignores []string) ([]string, error)
	// Open returns the source for a relative path. It does not read the file.
	Open(root, rel string) Source
}
