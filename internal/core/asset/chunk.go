package asset

import (
	"bytes"
	"context"
	"slices"
	"strconv"

	"go.trai.ch/pack/internal/core/domain"
	"go.trai.ch/pack/internal/core/ports"
)

// ModifierChunk marks chunk assets.
const ModifierChunk = "chunk"

var _ ports.OutputAsset = (*Chunk)(nil)

// Chunk is an emitted chunk: an ordered group of chunk items registered with
// the runtime under the chunk's path.
type Chunk struct {
	name    string
	context ports.ChunkingContext
	items   []ports.OutputAsset
	ident   domain.Ident
}

// NewChunk creates the named chunk for cc holding items in order.
func NewChunk(cc ports.ChunkingContext, name string, items []ports.OutputAsset) *Chunk {
	members := make([]domain.Ident, len(items))
	for i, item := range items {
		members[i] = item.Ident()
	}

	return &Chunk{
		name:    name,
		context: cc,
		items:   slices.Clone(items),
		ident: domain.NewIdent(cc.ChunkPath(name)).
			WithQuery(domain.DigestIdents(members...)).
			WithModifier(ModifierChunk).
			WithLayer(cc.Name()),
	}
}

// Name returns the chunk name.
func (c *Chunk) Name() string {
	return c.name
}

// Ident returns the chunk identity. Its query is a digest of the member identities.
func (c *Chunk) Ident() domain.Ident {
	return c.ident
}

// Content concatenates the items inside the chunk registration.
func (c *Chunk) Content(ctx context.Context) (domain.Content, error) {
	var b bytes.Buffer
	b.WriteString("(globalThis.TURBOPACK = globalThis.TURBOPACK || []).push([")
	b.WriteString(strconv.Quote(c.ident.Path.String()))
	b.WriteString(", {\n")
	for _, item := range c.items {
		content, err := item.Content(ctx)
		if err != nil {
			return domain.Content{}, err
		}
		_, _ = content.WriteTo(&b)
	}
	b.WriteString("}]);\n")

	return domain.NewContent(b.Bytes()), nil
}

// References returns the chunk items.
func (c *Chunk) References() []ports.OutputAsset {
	return slices.Clone(c.items)
}
