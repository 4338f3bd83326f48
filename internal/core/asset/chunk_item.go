package asset

import (
	"bytes"
	"context"
	"strconv"

	"go.trai.ch/pack/internal/core/domain"
	"go.trai.ch/pack/internal/core/ports"
)

// ModifierEcmascript marks assets rendered as ECMAScript chunk items.
const ModifierEcmascript = "ecmascript"

var _ ports.OutputAsset = (*EcmascriptChunkItem)(nil)

// EcmascriptChunkItem is a module rendered as a factory function for a chunk.
type EcmascriptChunkItem struct {
	source  ports.Source
	context ports.EcmascriptChunkingContext
}

// NewEcmascriptChunkItem creates a chunk item for source rendered by cc.
func NewEcmascriptChunkItem(source ports.Source, cc ports.EcmascriptChunkingContext) *EcmascriptChunkItem {
	return &EcmascriptChunkItem{source: source, context: cc}
}

// Ident returns the source identity with the ecmascript modifier in the context's layer.
func (i *EcmascriptChunkItem) Ident() domain.Ident {
	return i.source.Ident().WithModifier(ModifierEcmascript).WithLayer(i.context.Name())
}

// Content renders the module factory.
func (i *EcmascriptChunkItem) Content(ctx context.Context) (domain.Content, error) {
	code, err := i.source.Content(ctx)
	if err != nil {
		return domain.Content{}, err
	}

	var b bytes.Buffer
	b.WriteString(strconv.Quote(i.source.Ident().Path.String()))
	b.WriteString(": (({ r: __turbopack_require__, e: exports, m: module")
	if i.context.HasHotReloadInstrumentation() {
		b.WriteString(", k: __turbopack_refresh__")
	}
	b.WriteString(" }) => {\n")
	_, _ = code.WriteTo(&b)
	if code.Len() > 0 && !bytes.HasSuffix(b.Bytes(), []byte("\n")) {
		b.WriteByte('\n')
	}
	b.WriteString("}),\n")

	return domain.NewContent(b.Bytes()), nil
}

// References returns nil.
func (i *EcmascriptChunkItem) References() []ports.OutputAsset {
	return nil
}
