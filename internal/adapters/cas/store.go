// Package cas implements the output record store.
package cas

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/pack/internal/core/domain"
	"go.trai.ch/pack/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.OutputStore = (*Store)(nil)

// Store implements ports.OutputStore using a file-per-asset strategy.
// Records live below <root>/.pack/store, named by the sha256 of the identity digest.
type Store struct{}

// NewStore creates a new OutputStore.
func NewStore() *Store {
	return &Store{}
}

// Get retrieves the record for the given asset identity.
func (s *Store) Get(root string, id domain.Ident) (*domain.OutputRecord, error) {
	filename := s.filename(root, id.Digest())
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "ident", id.String())
	}

	var record domain.OutputRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "ident", id.String())
	}

	// A hash collision or a hand-edited file must not be mistaken for this asset.
	if record.Digest != id.Digest() {
		return nil, nil
	}

	return &record, nil
}

// Put stores the record.
func (s *Store) Put(root string, record domain.OutputRecord) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "ident", record.Ident)
	}

	filename := s.filename(root, record.Digest)
	if err := os.MkdirAll(filepath.Dir(filename), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "ident", record.Ident)
	}

	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	if err := os.WriteFile(filename, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "ident", record.Ident)
	}

	return nil
}

func (s *Store) filename(root, key string) string {
	hash := sha256.Sum256([]byte(key))
	return filepath.Join(root, domain.DefaultStorePath(), hex.EncodeToString(hash[:])+".json")
}
