package app_test

import (
	"context"
	"errors"
	"iter"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pack/internal/adapters/cas"
	"go.trai.ch/pack/internal/adapters/fs"
	"go.trai.ch/pack/internal/adapters/telemetry"
	"go.trai.ch/pack/internal/app"
	"go.trai.ch/pack/internal/core/domain"
	"go.trai.ch/pack/internal/core/ports/mocks"
	"go.trai.ch/pack/internal/engine/emitter"
	"go.trai.ch/pack/internal/engine/memo"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	root    string
	loader  *mocks.MockConfigLoader
	watcher *mocks.MockWatcher
	logger  *mocks.MockLogger
	cache   *memo.Cache
	app     *app.App
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	root := t.TempDir()
	writeFile(t, root, "public/logo.svg", "<svg/>")
	writeFile(t, root, "public/.DS_Store", "")
	writeFile(t, root, "src/a.js", "export const a = 1;\n")
	writeFile(t, root, "src/b.js", "console.log(a)\n")

	cache, err := memo.New(64)
	require.NoError(t, err)

	f := &fixture{
		root:    root,
		loader:  mocks.NewMockConfigLoader(ctrl),
		watcher: mocks.NewMockWatcher(ctrl),
		logger:  mocks.NewMockLogger(ctrl),
		cache:   cache,
	}
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()

	emit := emitter.New(cache, cas.NewStore(), fs.NewWriter(), telemetry.NewNoOp(), f.logger)
	f.app = app.New(f.loader, fs.NewProvider(fs.NewWalker()), emit, cache, f.watcher, f.logger)
	return f
}

func (f *fixture) project(strategy domain.Strategy) *domain.Project {
	return &domain.Project{
		Root:     f.root,
		OutDir:   "dist",
		Strategy: strategy,
		Assets: domain.AssetSet{
			Include: []string{"public"},
			Ignore:  []string{".DS_Store"},
		},
		Chunks: []domain.ChunkSpec{
			{Name: "main", Modules: []string{"src/a.js", "src/b.js"}},
		},
	}
}

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func readFile(t *testing.T, root, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	require.NoError(t, err)
	return string(data)
}

func TestApp_Build(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(domain.PackFileName).Return(f.project(domain.StrategyDevelopment), nil).Times(2)

	report, err := f.app.Build(context.Background(), app.BuildOptions{})
	require.NoError(t, err)

	require.Len(t, report.Results, 2)
	assert.Equal(t, "chunks/main.js", report.Results[0].Path)
	assert.Equal(t, "public/logo.svg", report.Results[1].Path)
	assert.Equal(t, 2, report.Count(emitter.StatusWritten))
	assert.Equal(t, 4, report.Graph.Len(), "raw asset, chunk and two chunk items")

	assert.Equal(t, "<svg/>", readFile(t, f.root, "dist/public/logo.svg"))
	chunk := readFile(t, f.root, "dist/chunks/main.js")
	assert.Contains(t, chunk, `"src/a.js": (({ r: __turbopack_require__, e: exports, m: module, k: __turbopack_refresh__ }) => {`)
	assert.Contains(t, chunk, "console.log(a)")

	again, err := f.app.Build(context.Background(), app.BuildOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2, again.Count(emitter.StatusUnchanged))
}

func TestApp_Build_Production(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load("site/pack.yaml").Return(f.project(domain.StrategyProduction), nil)

	_, err := f.app.Build(context.Background(), app.BuildOptions{ConfigPath: "site/pack.yaml"})
	require.NoError(t, err)

	chunk := readFile(t, f.root, "dist/chunks/main.js")
	assert.NotContains(t, chunk, "__turbopack_refresh__")
}

func TestApp_Build_Force(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(gomock.Any()).Return(f.project(domain.StrategyProduction), nil).Times(2)

	_, err := f.app.Build(context.Background(), app.BuildOptions{})
	require.NoError(t, err)

	report, err := f.app.Build(context.Background(), app.BuildOptions{Force: true})
	require.NoError(t, err)
	assert.Equal(t, 2, report.Count(emitter.StatusWritten))
}

func TestApp_Build_ConfigLoaderError(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(gomock.Any()).Return(nil, errors.New("no pack.yaml"))

	_, err := f.app.Build(context.Background(), app.BuildOptions{})
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to load configuration")
}

func TestApp_Build_UnknownStrategy(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(gomock.Any()).Return(f.project("staging"), nil)

	_, err := f.app.Build(context.Background(), app.BuildOptions{})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrUnknownStrategy.Error())
}

func TestApp_Build_MissingModule(t *testing.T) {
	f := newFixture(t)
	project := f.project(domain.StrategyProduction)
	project.Chunks[0].Modules = append(project.Chunks[0].Modules, "src/missing.js")
	f.loader.EXPECT().Load(gomock.Any()).Return(project, nil)
	f.logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	_, err := f.app.Build(context.Background(), app.BuildOptions{})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrContentUnavailable.Error())
}

func TestApp_Watch_RebuildsChangedModule(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(gomock.Any()).Return(f.project(domain.StrategyProduction), nil).Times(2)
	f.watcher.EXPECT().Start(gomock.Any(), f.root).Return(nil)
	f.watcher.EXPECT().Stop().Return(nil)
	f.watcher.EXPECT().Changes().DoAndReturn(func() iter.Seq[[]string] {
		return func(yield func([]string) bool) {
			assert.Contains(t, readFile(t, f.root, "dist/chunks/main.js"), "export const a = 1;")

			writeFile(t, f.root, "src/a.js", "export const a = 2;\n")
			if !yield([]string{filepath.Join(f.root, "src", "a.js")}) {
				return
			}
			// Outputs written by the rebuild are not changes.
			yield([]string{filepath.Join(f.root, "dist", "chunks", "main.js")})
		}
	})

	require.NoError(t, f.app.Watch(context.Background(), app.BuildOptions{}))

	chunk := readFile(t, f.root, "dist/chunks/main.js")
	assert.Contains(t, chunk, "export const a = 2;")
	assert.NotContains(t, chunk, "export const a = 1;")

	_, cached := f.cache.Peek(domain.NewIdent("public/logo.svg"))
	assert.True(t, cached, "unrelated assets stay cached")
}

func TestApp_Watch_KeepsWatchingAfterFailure(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(gomock.Any()).Return(f.project(domain.StrategyProduction), nil).Times(3)
	f.logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	f.logger.EXPECT().Error(gomock.Any()).Times(1)
	f.watcher.EXPECT().Start(gomock.Any(), f.root).Return(nil)
	f.watcher.EXPECT().Stop().Return(nil)
	f.watcher.EXPECT().Changes().DoAndReturn(func() iter.Seq[[]string] {
		return func(yield func([]string) bool) {
			a := filepath.Join(f.root, "src", "a.js")

			require.NoError(t, os.Remove(a))
			if !yield([]string{a}) {
				return
			}

			writeFile(t, f.root, "src/a.js", "export const a = 3;\n")
			yield([]string{a})
		}
	})

	require.NoError(t, f.app.Watch(context.Background(), app.BuildOptions{}))
	assert.Contains(t, readFile(t, f.root, "dist/chunks/main.js"), "export const a = 3;")
}
