package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pack/internal/adapters/config"
	"go.trai.ch/pack/internal/core/domain"
	"go.trai.ch/pack/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func createFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newLoader(t *testing.T) (*config.Loader, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	return config.NewLoader(mockLogger), mockLogger
}

func TestLoader_Load_Success(t *testing.T) {
	loader, _ := newLoader(t)
	dir := t.TempDir()
	path := createFile(t, dir, domain.PackFileName, `
version: "1"
outDir: build/out/
strategy: development
assets:
  include: ["public"]
  ignore: [".DS_Store"]
chunks:
  vendor: ["lib/react.js"]
  main: ["src/index.js", "./src/a.js", "src/index.js"]
`)

	project, err := loader.Load(path)
	require.NoError(t, err)

	assert.Equal(t, dir, project.Root)
	assert.Equal(t, "build/out", project.OutDir)
	assert.Equal(t, domain.StrategyDevelopment, project.Strategy)
	assert.Equal(t, []string{"public"}, project.Assets.Include)
	assert.Equal(t, []string{".DS_Store"}, project.Assets.Ignore)
	assert.Equal(t, []domain.ChunkSpec{
		{Name: "main", Modules: []string{"src/index.js", "src/a.js"}},
		{Name: "vendor", Modules: []string{"lib/react.js"}},
	}, project.Chunks)
}

func TestLoader_Load_Directory(t *testing.T) {
	loader, _ := newLoader(t)
	dir := t.TempDir()
	createFile(t, dir, domain.PackFileName, "strategy: production\n")

	project, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, project.Root)
}

func TestLoader_Load_Defaults(t *testing.T) {
	loader, mockLogger := newLoader(t)
	mockLogger.EXPECT().Warn("no strategy defined in pack.yaml, using production").Times(1)

	dir := t.TempDir()
	path := createFile(t, dir, domain.PackFileName, `version: "1"`)

	project, err := loader.Load(path)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultOutDir, project.OutDir)
	assert.Equal(t, domain.StrategyProduction, project.Strategy)
	assert.Empty(t, project.Chunks)
}

func TestLoader_Load_Root(t *testing.T) {
	dir := t.TempDir()
	abs := t.TempDir()

	tests := []struct {
		name string
		root string
		want string
	}{
		{name: "relative", root: "web", want: filepath.Join(dir, "web")},
		{name: "absolute", root: abs, want: abs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader, _ := newLoader(t)
			path := createFile(t, dir, domain.PackFileName, "strategy: production\nroot: "+tt.root+"\n")

			project, err := loader.Load(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, project.Root)
		})
	}
}

func TestLoader_Load_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "unknown strategy",
			content: "strategy: staging\n",
			wantErr: domain.ErrUnknownStrategy.Error(),
		},
		{
			name:    "invalid chunk name",
			content: "strategy: production\nchunks:\n  \"main:app\": [\"src/a.js\"]\n",
			wantErr: domain.ErrInvalidChunkName.Error(),
		},
		{
			name:    "empty chunk",
			content: "strategy: production\nchunks:\n  main: []\n",
			wantErr: domain.ErrEmptyChunk.Error(),
		},
		{
			name:    "out dir escapes root",
			content: "strategy: production\noutDir: ../dist\n",
			wantErr: domain.ErrOutDirOutsideRoot.Error(),
		},
		{
			name:    "out dir is root",
			content: "strategy: production\noutDir: .\n",
			wantErr: domain.ErrOutDirOutsideRoot.Error(),
		},
		{
			name:    "include escapes root",
			content: "strategy: production\nassets:\n  include: [\"public\", \"../shared.txt\"]\n",
			wantErr: domain.ErrPathOutsideRoot.Error(),
		},
		{
			name:    "absolute include",
			content: "strategy: production\nassets:\n  include: [\"/etc/passwd\"]\n",
			wantErr: domain.ErrPathOutsideRoot.Error(),
		},
		{
			name:    "chunk module escapes root",
			content: "strategy: production\nchunks:\n  main: [\"src/a.js\", \"src/../../shared.txt\"]\n",
			wantErr: domain.ErrPathOutsideRoot.Error(),
		},
		{
			name:    "unsupported version",
			content: "version: \"2\"\nstrategy: production\n",
			wantErr: domain.ErrUnsupportedVersion.Error(),
		},
		{
			name:    "invalid yaml",
			content: "chunks: [\n",
			wantErr: domain.ErrConfigParseFailed.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader, _ := newLoader(t)
			path := createFile(t, t.TempDir(), domain.PackFileName, tt.content)

			_, err := loader.Load(path)
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestLoader_Load_Missing(t *testing.T) {
	loader, _ := newLoader(t)

	_, err := loader.Load(filepath.Join(t.TempDir(), domain.PackFileName))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrConfigReadFailed.Error())
}
