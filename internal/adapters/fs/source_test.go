package fs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pack/internal/adapters/fs"
	"go.trai.ch/pack/internal/core/domain"
)

func TestFileSource_Content(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{"public/logo.svg": "<svg/>"})

	src := fs.NewFileSource(root, "public/logo.svg")

	content, err := src.Content(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "<svg/>", content.String())
	assert.Equal(t, domain.NewIdent("public/logo.svg"), src.Ident())
}

func TestFileSource_IdentIndependentOfRoot(t *testing.T) {
	a := fs.NewFileSource("/tmp/one", "src/a.js")
	b := fs.NewFileSource("/srv/two", "src/a.js")

	assert.Equal(t, a.Ident(), b.Ident())
}

func TestFileSource_Missing(t *testing.T) {
	src := fs.NewFileSource(t.TempDir(), "gone.txt")

	_, err := src.Content(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrContentUnavailable))
	assert.ErrorContains(t, err, "failed to read source")
}

func TestFileSource_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := fs.NewFileSource(t.TempDir(), "a.txt").Content(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
