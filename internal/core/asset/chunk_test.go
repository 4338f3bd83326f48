package asset_test

import (
	"context"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pack/internal/core/asset"
	"go.trai.ch/pack/internal/core/chunking"
	"go.trai.ch/pack/internal/core/domain"
	"go.trai.ch/pack/internal/core/ports"
)

func moduleSources() []*memSource {
	return []*memSource{
		{ident: domain.NewIdent("src/a.js"), data: "export const a = 1;\n"},
		{ident: domain.NewIdent("src/b.js"), data: "console.log(a)"},
	}
}

func buildChunk(cc ports.EcmascriptChunkingContext, sources []*memSource) *asset.Chunk {
	items := make([]ports.OutputAsset, len(sources))
	for i, src := range sources {
		items[i] = asset.NewEcmascriptChunkItem(src, cc)
	}
	return asset.NewChunk(cc, "main", items)
}

func TestChunk_Golden(t *testing.T) {
	tests := []struct {
		name string
		cc   ports.EcmascriptChunkingContext
	}{
		{name: "chunk_development", cc: chunking.NewDevelopment("dist")},
		{name: "chunk_production", cc: chunking.NewProduction("dist")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunk := buildChunk(tt.cc, moduleSources())

			content, err := chunk.Content(context.Background())
			require.NoError(t, err)

			g := goldie.New(t)
			g.Assert(t, tt.name, content.Bytes())
		})
	}
}

func TestEcmascriptChunkItem_Ident(t *testing.T) {
	src := &memSource{ident: domain.NewIdent("src/a.js")}

	dev := asset.NewEcmascriptChunkItem(src, chunking.NewDevelopment("dist"))
	prod := asset.NewEcmascriptChunkItem(src, chunking.NewProduction("dist"))

	assert.Equal(t, "src/a.js [development] (ecmascript)", dev.Ident().String())
	assert.Equal(t, "src/a.js [production] (ecmascript)", prod.Ident().String())
	assert.False(t, dev.Ident() == src.Ident(), "transformed assets must not alias their source")
	assert.Empty(t, dev.References())
}

func TestEcmascriptChunkItem_HotReloadArgument(t *testing.T) {
	src := &memSource{ident: domain.NewIdent("src/a.js"), data: "x()\n"}

	dev, err := asset.NewEcmascriptChunkItem(src, chunking.NewDevelopment("dist")).Content(context.Background())
	require.NoError(t, err)
	assert.Contains(t, dev.String(), "k: __turbopack_refresh__")

	prod, err := asset.NewEcmascriptChunkItem(src, chunking.NewProduction("dist")).Content(context.Background())
	require.NoError(t, err)
	assert.NotContains(t, prod.String(), "__turbopack_refresh__")
}

func TestChunk_Ident(t *testing.T) {
	cc := chunking.NewProduction("dist")
	sources := moduleSources()

	a := buildChunk(cc, sources)
	b := buildChunk(cc, sources)
	assert.True(t, a.Ident() == b.Ident(), "same members give the same identity")
	assert.Equal(t, "chunks/main.js", a.Ident().Path.String())
	assert.Equal(t, "main", a.Name())
	assert.Len(t, a.References(), 2)

	reordered := buildChunk(cc, []*memSource{sources[1], sources[0]})
	assert.False(t, a.Ident() == reordered.Ident(), "membership order is part of the identity")

	dev := buildChunk(chunking.NewDevelopment("dist"), sources)
	assert.False(t, a.Ident() == dev.Ident(), "the chunking context is part of the identity")
}

func TestChunk_PropagatesItemFailure(t *testing.T) {
	sources := moduleSources()
	sources[1].err = errors.Join(domain.ErrContentUnavailable, errors.New("gone"))

	_, err := buildChunk(chunking.NewProduction("dist"), sources).Content(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrContentUnavailable)
}
