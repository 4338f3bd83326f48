// Package app implements the application layer for pack.
package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"go.trai.ch/pack/internal/core/asset"
	"go.trai.ch/pack/internal/core/chunking"
	"go.trai.ch/pack/internal/core/domain"
	"go.trai.ch/pack/internal/core/ports"
	"go.trai.ch/pack/internal/engine/emitter"
	"go.trai.ch/pack/internal/engine/memo"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	sources      ports.SourceProvider
	emitter      *emitter.Emitter
	cache        *memo.Cache
	watcher      ports.Watcher
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	sources ports.SourceProvider,
	emit *emitter.Emitter,
	cache *memo.Cache,
	watcher ports.Watcher,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		sources:      sources,
		emitter:      emit,
		cache:        cache,
		watcher:      watcher,
		logger:       logger,
	}
}

// BuildOptions configures a build.
type BuildOptions struct {
	// ConfigPath is the pack.yaml file or the directory holding it.
	ConfigPath string
	// Force rewrites every output.
	Force bool
}

// Build loads the project and emits its output set once.
func (a *App) Build(ctx context.Context, opts BuildOptions) (*emitter.Report, error) {
	project, err := a.load(opts)
	if err != nil {
		return nil, err
	}
	return a.build(ctx, project, opts.Force)
}

// Watch builds the project, then rebuilds whenever a file below the project
// root changes. Content of changed files and everything derived from them is
// invalidated before each rebuild. Failed rebuilds are logged and watching
// continues. Watch returns when ctx is canceled.
func (a *App) Watch(ctx context.Context, opts BuildOptions) error {
	project, err := a.load(opts)
	if err != nil {
		return err
	}

	var graph *domain.Graph
	if report, err := a.build(ctx, project, opts.Force); err != nil {
		a.logger.Error(err)
	} else {
		graph = report.Graph
	}

	if err := a.watcher.Start(ctx, project.Root); err != nil {
		return zerr.Wrap(err, domain.ErrWatchFailed.Error())
	}
	defer func() {
		_ = a.watcher.Stop()
	}()

	a.logger.Info(fmt.Sprintf("watching %s", project.Root))

	for paths := range a.watcher.Changes() {
		changed := relevantPaths(project, paths)
		if len(changed) == 0 {
			continue
		}

		if graph != nil {
			a.cache.Invalidate(graph.AffectedBy(changed...)...)
		} else {
			a.cache.Purge()
		}

		// The configuration is reloaded so edits to pack.yaml take effect.
		next, err := a.load(opts)
		if err != nil {
			a.logger.Error(err)
			continue
		}
		project = next

		a.logger.Info(fmt.Sprintf("rebuilding after %d change(s)", len(changed)))
		report, err := a.build(ctx, project, false)
		if err != nil {
			a.logger.Error(err)
			graph = nil
			continue
		}
		graph = report.Graph
	}

	return nil
}

func (a *App) load(opts BuildOptions) (*domain.Project, error) {
	path := opts.ConfigPath
	if path == "" {
		path = domain.PackFileName
	}
	project, err := a.configLoader.Load(path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return project, nil
}

func (a *App) build(ctx context.Context, project *domain.Project, force bool) (*emitter.Report, error) {
	cc, err := chunking.New(project.Strategy, project.OutDir)
	if err != nil {
		return nil, err
	}

	assets, err := a.collectAssets(project, cc)
	if err != nil {
		return nil, err
	}

	outDir := filepath.Join(project.Root, filepath.FromSlash(cc.OutputRoot()))
	report, err := a.emitter.Emit(ctx, emitter.Request{
		Root:   project.Root,
		OutDir: outDir,
		Assets: assets,
		Force:  force,
	})
	if err != nil {
		return nil, zerr.Wrap(err, "build execution failed")
	}

	a.logger.Info(fmt.Sprintf(
		"emitted %d assets to %s (%d written, %d unchanged)",
		len(report.Results),
		project.OutDir,
		report.Count(emitter.StatusWritten),
		report.Count(emitter.StatusUnchanged),
	))
	if chunking.HotReloadEnabled(cc) {
		a.logger.Info(fmt.Sprintf("%s chunks include hot reload instrumentation", cc.Name()))
	}

	return report, nil
}

// collectAssets builds the output set: raw assets first, then chunks in
// configuration order.
func (a *App) collectAssets(project *domain.Project, cc ports.EcmascriptChunkingContext) ([]ports.OutputAsset, error) {
	var assets []ports.OutputAsset

	if len(project.Assets.Include) > 0 {
		files, err := a.sources.Resolve(project.Root, project.Assets.Include, project.Assets.Ignore)
		if err != nil {
			return nil, err
		}
		for _, rel := range files {
			if generated(project, rel) {
				continue
			}
			assets = append(assets, asset.NewRawOutput(a.sources.Open(project.Root, rel)))
		}
	}

	for _, spec := range project.Chunks {
		items := make([]ports.OutputAsset, len(spec.Modules))
		for i, module := range spec.Modules {
			items[i] = asset.NewEcmascriptChunkItem(a.sources.Open(project.Root, module), cc)
		}
		assets = append(assets, asset.NewChunk(cc, spec.Name, items))
	}

	return assets, nil
}

// relevantPaths maps absolute changed paths to project-relative paths,
// dropping everything outside the root and everything pack generates.
func relevantPaths(project *domain.Project, paths []string) []string {
	var changed []string
	for _, p := range paths {
		rel, err := filepath.Rel(project.Root, p)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			continue
		}
		rel = filepath.ToSlash(rel)
		if generated(project, rel) {
			continue
		}
		changed = append(changed, rel)
	}
	return changed
}

func generated(project *domain.Project, rel string) bool {
	for _, dir := range []string{project.OutDir, domain.PackDirName} {
		if rel == dir || strings.HasPrefix(rel, dir+"/") {
			return true
		}
	}
	return false
}
