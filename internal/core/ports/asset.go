package ports

import (
	"context"

	"go.trai.ch/pack/internal/core/domain"
)

// OutputAsset is a node of the asset graph: a unit of build output
// addressable by identity.
//
// Implementations are immutable once constructed. Ident must be stable across
// calls; Content must yield byte-identical results for the same identity unless
// an upstream input changed. Errors from upstream sources are returned unchanged.
//
//go:generate mockgen -source=asset.go -destination=mocks/mock_asset.go -package=mocks
type OutputAsset interface {
	Ident() domain.Ident
	Content(ctx context.Context) (domain.Content, error)
	// References returns the assets this asset is built from. They are shared, not owned.
	References() []OutputAsset
}

// IdentVerifier is implemented by assets that can check their identity against
// the inputs they were constructed from.
type IdentVerifier interface {
	VerifyIdent() error
}
