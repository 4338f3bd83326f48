package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pack/internal/adapters/fs"
	"go.trai.ch/pack/internal/core/domain"
)

func TestWriter_Write(t *testing.T) {
	out := filepath.Join(t.TempDir(), "dist", "chunks", "main.js")
	w := fs.NewWriter()

	assert.False(t, w.Exists(out))

	require.NoError(t, w.Write(out, domain.NewContentString("one")))
	assert.True(t, w.Exists(out))

	require.NoError(t, w.Write(out, domain.NewContentString("two")))
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "two", string(data))

	entries, err := os.ReadDir(filepath.Dir(out))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriter_ExistsDirectory(t *testing.T) {
	assert.False(t, fs.NewWriter().Exists(t.TempDir()))
}
