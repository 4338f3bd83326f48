// Package emitter writes the output set of the asset graph.
package emitter

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"runtime"
	"slices"
	"sync"

	"go.trai.ch/pack/internal/core/domain"
	"go.trai.ch/pack/internal/core/ports"
	"go.trai.ch/pack/internal/engine/memo"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Status is the outcome of emitting one asset.
type Status string

const (
	// StatusWritten indicates the asset was written.
	StatusWritten Status = "written"
	// StatusUnchanged indicates the output already held the asset's content.
	StatusUnchanged Status = "unchanged"
)

// Request describes one emission.
type Request struct {
	// Root is the project root. Output records are kept below it.
	Root string
	// OutDir is the absolute directory assets are written to.
	OutDir string
	// Assets is the output set. Their references are traversed but not written.
	Assets []ports.OutputAsset
	// Force writes every asset even when its record matches.
	Force bool
}

// Result is the outcome for one written asset.
type Result struct {
	Ident  domain.Ident
	Path   string
	Hash   string
	Status Status
}

// Report summarizes an emission.
type Report struct {
	// Graph holds every asset reachable from the output set.
	Graph   *domain.Graph
	Results []Result
}

// Count returns the number of results with the given status.
func (r *Report) Count(status Status) int {
	n := 0
	for _, res := range r.Results {
		if res.Status == status {
			n++
		}
	}
	return n
}

// Emitter produces asset content through the cache and writes what changed.
type Emitter struct {
	cache     *memo.Cache
	store     ports.OutputStore
	writer    ports.OutputWriter
	telemetry ports.Telemetry
	logger    ports.Logger

	parallelism int
}

// New creates a new Emitter.
func New(
	cache *memo.Cache,
	store ports.OutputStore,
	writer ports.OutputWriter,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Emitter {
	return &Emitter{
		cache:       cache,
		store:       store,
		writer:      writer,
		telemetry:   telemetry,
		logger:      logger,
		parallelism: runtime.NumCPU(),
	}
}

// SetParallelism bounds the number of assets produced concurrently.
func (e *Emitter) SetParallelism(n int) {
	if n > 0 {
		e.parallelism = n
	}
}

// Emit builds the graph of req.Assets, then produces and writes each asset of
// the output set. Content errors are returned unchanged inside ErrEmitFailed.
func (e *Emitter) Emit(ctx context.Context, req Request) (*Report, error) {
	graph, outputs, err := BuildGraph(req.Assets)
	if err != nil {
		return nil, err
	}

	var (
		mu      sync.Mutex
		results = make([]Result, 0, len(outputs))
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.parallelism)
	for _, a := range outputs {
		g.Go(func() error {
			res, err := e.emitOne(ctx, req, a)
			if err != nil {
				e.logger.Warn(fmt.Sprintf("failed to emit %s", a.Ident()))
				return err
			}
			mu.Lock()
			results = append(results, res)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Join(domain.ErrEmitFailed, err)
	}

	slices.SortFunc(results, func(a, b Result) int {
		return cmp.Compare(a.Path, b.Path)
	})
	return &Report{Graph: graph, Results: results}, nil
}

func (e *Emitter) emitOne(ctx context.Context, req Request, a ports.OutputAsset) (res Result, err error) {
	id := a.Ident()
	ctx, vertex := e.telemetry.Record(ctx, id.String())
	defer func() {
		if err == nil && res.Status == StatusUnchanged {
			vertex.Cached()
			return
		}
		vertex.Complete(err)
	}()

	rel := id.Path.String()
	if !filepath.IsLocal(filepath.FromSlash(rel)) {
		return Result{}, zerr.With(domain.ErrOutputOutsideOutDir, "path", rel)
	}

	content, err := e.cache.Get(ctx, id, a.Content)
	if err != nil {
		return Result{}, err
	}

	target := filepath.Join(req.OutDir, filepath.FromSlash(rel))
	res = Result{
		Ident:  id,
		Path:   path.Clean(rel),
		Hash:   content.Hash(),
		Status: StatusWritten,
	}

	if !req.Force {
		record, err := e.store.Get(req.Root, id)
		if err != nil {
			return Result{}, err
		}
		if record != nil && record.ContentHash == res.Hash && record.Path == target && e.writer.Exists(target) {
			res.Status = StatusUnchanged
			return res, nil
		}
	}

	if err := e.writer.Write(target, content); err != nil {
		return Result{}, err
	}
	if err := e.store.Put(req.Root, domain.NewOutputRecord(id, target, res.Hash)); err != nil {
		return Result{}, err
	}

	_, _ = fmt.Fprintf(vertex.Stdout(), "wrote %s (%d bytes)\n", rel, content.Len())
	return res, nil
}

// BuildGraph collects every asset reachable from roots into a validated graph.
// It returns the roots deduplicated by identity, in their original order.
func BuildGraph(roots []ports.OutputAsset) (*domain.Graph, []ports.OutputAsset, error) {
	graph := domain.NewGraph()
	visited := make(map[domain.Ident]bool)

	var add func(a ports.OutputAsset) error
	add = func(a ports.OutputAsset) error {
		if v, ok := a.(ports.IdentVerifier); ok {
			if err := v.VerifyIdent(); err != nil {
				return err
			}
		}

		id := a.Ident()
		refs := a.References()
		node := domain.Node{Ident: id, References: make([]domain.Ident, len(refs))}
		for i, ref := range refs {
			node.References[i] = ref.Ident()
		}
		// Distinct instances with one identity are deduplicated here, or rejected
		// if they disagree about their references.
		if err := graph.AddAsset(node); err != nil {
			return err
		}

		if visited[id] {
			return nil
		}
		visited[id] = true
		for _, ref := range refs {
			if err := add(ref); err != nil {
				return err
			}
		}
		return nil
	}

	outputs := make([]ports.OutputAsset, 0, len(roots))
	seen := make(map[domain.Ident]bool, len(roots))
	paths := make(map[string]domain.Ident, len(roots))
	for _, root := range roots {
		if err := add(root); err != nil {
			return nil, nil, err
		}
		id := root.Ident()
		if seen[id] {
			continue
		}
		seen[id] = true

		// Two outputs must not be written to the same file.
		p := path.Clean(id.Path.String())
		if other, ok := paths[p]; ok {
			err := zerr.With(domain.ErrAssetConflict, "path", p)
			err = zerr.With(err, "first", other.String())
			return nil, nil, zerr.With(err, "second", id.String())
		}
		paths[p] = id
		outputs = append(outputs, root)
	}

	if err := graph.Validate(); err != nil {
		return nil, nil, err
	}
	return graph, outputs, nil
}
