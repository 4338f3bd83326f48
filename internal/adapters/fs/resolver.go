package fs

import (
	"os"
	"path"
	"path/filepath"
	"slices"

	"go.trai.ch/pack/internal/core/domain"
	"go.trai.ch/pack/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SourceProvider = (*Provider)(nil)

// Provider implements ports.SourceProvider on the local file system.
type Provider struct {
	walker *Walker
}

// NewProvider creates a new Provider.
func NewProvider(walker *Walker) *Provider {
	return &Provider{walker: walker}
}

// Open returns the file source for rel below root.
func (p *Provider) Open(root, rel string) ports.Source {
	return NewFileSource(root, rel)
}

// Resolve expands glob patterns relative to root. Directories are walked.
// Ignore patterns are matched against base names and root-relative paths.
func (p *Provider) Resolve(root string, patterns, ignores []string) ([]string, error) {
	unique := make(map[string]bool)

	for _, pattern := range patterns {
		full := filepath.Join(root, filepath.FromSlash(pattern))

		matches, err := filepath.Glob(full)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to glob path"), "pattern", pattern)
		}
		if len(matches) == 0 {
			return nil, zerr.With(domain.ErrSourceNotFound, "pattern", pattern)
		}

		for _, match := range matches {
			if err := p.collect(root, match, ignores, unique); err != nil {
				return nil, err
			}
		}
	}

	result := make([]string, 0, len(unique))
	for rel := range unique {
		result = append(result, rel)
	}
	slices.Sort(result)
	return result, nil
}

func (p *Provider) collect(root, match string, ignores []string, into map[string]bool) error {
	info, err := os.Stat(match)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to stat path"), "path", match)
	}

	files := []string{match}
	if info.IsDir() {
		files = slices.Collect(p.walker.WalkFiles(match, ignores))
	}

	for _, file := range files {
		rel, err := filepath.Rel(root, file)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to resolve relative path"), "path", file)
		}
		rel = filepath.ToSlash(rel)
		if ignored(ignores, rel) {
			continue
		}
		into[rel] = true
	}
	return nil
}

func ignored(ignores []string, rel string) bool {
	for _, pattern := range ignores {
		if matched, _ := path.Match(pattern, rel); matched {
			return true
		}
		if matched, _ := path.Match(pattern, path.Base(rel)); matched {
			return true
		}
	}
	return false
}
