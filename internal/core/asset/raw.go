// Package asset implements the node kinds of the asset graph.
package asset

import (
	"context"

	"go.trai.ch/pack/internal/core/domain"
	"go.trai.ch/pack/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.OutputAsset   = (*RawOutput)(nil)
	_ ports.IdentVerifier = (*RawOutput)(nil)
)

// RawOutput is an output asset whose content is its source, used as is.
// It has the source's identity and no references, so the raw asset and its
// source are the same cache key.
type RawOutput struct {
	source ports.Source
	ident  domain.Ident
}

// NewRawOutput creates a RawOutput for source.
func NewRawOutput(source ports.Source) *RawOutput {
	return &RawOutput{
		source: source,
		ident:  source.Ident(),
	}
}

// Ident returns the source's identity.
func (r *RawOutput) Ident() domain.Ident {
	return r.source.Ident()
}

// Content returns the source's content and error unchanged.
func (r *RawOutput) Content(ctx context.Context) (domain.Content, error) {
	return r.source.Content(ctx)
}

// References returns nil.
func (r *RawOutput) References() []ports.OutputAsset {
	return nil
}

// VerifyIdent checks that the source still reports the identity it had when
// the asset was constructed.
func (r *RawOutput) VerifyIdent() error {
	current := r.source.Ident()
	if current != r.ident {
		return zerr.With(zerr.With(domain.ErrIdentityMismatch,
			"constructed", r.ident.String()),
			"current", current.String())
	}
	return nil
}
