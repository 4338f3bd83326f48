// Package chunking provides the built-in chunking contexts and the default
// answers to optional capability queries.
package chunking

import (
	"path"

	"go.trai.ch/pack/internal/core/domain"
	"go.trai.ch/pack/internal/core/ports"
	"go.trai.ch/zerr"
)

// ChunkDir is the directory, relative to the output root, that chunks are written to.
const ChunkDir = "chunks"

// Defaults answers every optional capability query with the conservative choice.
// Chunking contexts embed it and override only the queries they opt into.
type Defaults struct{}

// HasHotReloadInstrumentation reports false.
func (Defaults) HasHotReloadInstrumentation() bool {
	return false
}

// HotReloadEnabled reports whether cc instruments chunk items for hot reload.
// Contexts that do not render ECMAScript never do.
func HotReloadEnabled(cc ports.ChunkingContext) bool {
	ecma, ok := cc.(ports.EcmascriptChunkingContext)
	return ok && ecma.HasHotReloadInstrumentation()
}

var (
	_ ports.EcmascriptChunkingContext = (*Production)(nil)
	_ ports.EcmascriptChunkingContext = (*Development)(nil)
)

// Production renders chunks for a production build.
type Production struct {
	Defaults
	outDir string
}

// NewProduction creates a production context writing below outDir.
func NewProduction(outDir string) *Production {
	return &Production{outDir: outDir}
}

// Name returns "production".
func (p *Production) Name() string {
	return string(domain.StrategyProduction)
}

// ChunkPath returns chunks/<name>.js.
func (p *Production) ChunkPath(name string) string {
	return path.Join(ChunkDir, name+".js")
}

// OutputRoot returns the output directory.
func (p *Production) OutputRoot() string {
	return p.outDir
}

// Development renders chunks for a development server.
type Development struct {
	Defaults
	outDir string
}

// NewDevelopment creates a development context writing below outDir.
func NewDevelopment(outDir string) *Development {
	return &Development{outDir: outDir}
}

// Name returns "development".
func (d *Development) Name() string {
	return string(domain.StrategyDevelopment)
}

// ChunkPath returns chunks/<name>.js.
func (d *Development) ChunkPath(name string) string {
	return path.Join(ChunkDir, name+".js")
}

// OutputRoot returns the output directory.
func (d *Development) OutputRoot() string {
	return d.outDir
}

// HasHotReloadInstrumentation reports true: development chunks are served
// by a runtime that understands refresh registration.
func (d *Development) HasHotReloadInstrumentation() bool {
	return true
}

// New returns the chunking context for a strategy.
func New(strategy domain.Strategy, outDir string) (ports.EcmascriptChunkingContext, error) {
	switch strategy {
	case domain.StrategyDevelopment:
		return NewDevelopment(outDir), nil
	case domain.StrategyProduction:
		return NewProduction(outDir), nil
	default:
		return nil, zerr.With(domain.ErrUnknownStrategy, "strategy", string(strategy))
	}
}
