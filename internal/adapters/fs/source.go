package fs

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"go.trai.ch/pack/internal/core/domain"
	"go.trai.ch/pack/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Source = (*FileSource)(nil)

// FileSource is a file below a project root.
// Its identity is the slash-separated path relative to the root, so it does
// not change when the project is moved.
type FileSource struct {
	root  string
	ident domain.Ident
}

// NewFileSource creates the source for rel below root.
func NewFileSource(root, rel string) *FileSource {
	return &FileSource{
		root:  filepath.Clean(root),
		ident: domain.NewIdent(rel),
	}
}

// Ident returns the root-relative identity.
func (s *FileSource) Ident() domain.Ident {
	return s.ident
}

// Path returns the absolute file path.
func (s *FileSource) Path() string {
	return filepath.Join(s.root, filepath.FromSlash(s.ident.Path.String()))
}

// Content reads the file.
func (s *FileSource) Content(ctx context.Context) (domain.Content, error) {
	if err := ctx.Err(); err != nil {
		return domain.Content{}, err
	}

	//nolint:gosec // Path is derived from the configured project root
	data, err := os.ReadFile(s.Path())
	if err != nil {
		return domain.Content{}, errors.Join(
			domain.ErrContentUnavailable,
			zerr.With(zerr.Wrap(err, "failed to read source"), "path", s.Path()),
		)
	}
	return domain.NewContent(data), nil
}
