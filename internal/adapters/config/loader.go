// Package config provides the configuration loader for pack.
package config

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"slices"

	"go.trai.ch/pack/internal/core/domain"
	"go.trai.ch/pack/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

var validChunkNameRegex = regexp.MustCompile("^[a-zA-Z0-9_-]+$")

// SchemaVersion is the only pack.yaml version this loader understands.
const SchemaVersion = "1"

// Load reads the configuration at path. A directory is resolved to the
// pack.yaml inside it.
func (l *Loader) Load(configPath string) (*domain.Project, error) {
	if info, err := os.Stat(configPath); err == nil && info.IsDir() {
		configPath = filepath.Join(configPath, domain.PackFileName)
	}

	var packfile Packfile
	if err := readAndUnmarshalYAML(configPath, &packfile); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	if packfile.Version != "" && packfile.Version != SchemaVersion {
		return nil, zerr.With(zerr.With(domain.ErrUnsupportedVersion, "version", packfile.Version), "path", configPath)
	}

	root, err := filepath.Abs(resolveRoot(configPath, packfile.Root))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve project root"), "root", packfile.Root)
	}

	outDir, err := resolveOutDir(packfile.OutDir)
	if err != nil {
		return nil, err
	}

	strategy, err := l.resolveStrategy(packfile.Strategy)
	if err != nil {
		return nil, err
	}

	for _, include := range packfile.Assets.Include {
		if !isLocal(include) {
			return nil, zerr.With(domain.ErrPathOutsideRoot, "include", include)
		}
	}

	chunks, err := buildChunks(packfile.Chunks)
	if err != nil {
		return nil, err
	}

	return &domain.Project{
		Root:     root,
		OutDir:   outDir,
		Strategy: strategy,
		Assets: domain.AssetSet{
			Include: packfile.Assets.Include,
			Ignore:  packfile.Assets.Ignore,
		},
		Chunks: chunks,
	}, nil
}

func (l *Loader) resolveStrategy(raw string) (domain.Strategy, error) {
	switch domain.Strategy(raw) {
	case "":
		l.Logger.Warn(fmt.Sprintf("no strategy defined in %s, using %s", domain.PackFileName, domain.StrategyProduction))
		return domain.StrategyProduction, nil
	case domain.StrategyDevelopment, domain.StrategyProduction:
		return domain.Strategy(raw), nil
	default:
		return "", zerr.With(domain.ErrUnknownStrategy, "strategy", raw)
	}
}

func resolveOutDir(raw string) (string, error) {
	if raw == "" {
		return domain.DefaultOutDir, nil
	}
	outDir := path.Clean(filepath.ToSlash(raw))
	if outDir == "." || !isLocal(outDir) {
		return "", zerr.With(domain.ErrOutDirOutsideRoot, "out_dir", raw)
	}
	return outDir, nil
}

func buildChunks(dtos map[string][]string) ([]domain.ChunkSpec, error) {
	names := make([]string, 0, len(dtos))
	for name := range dtos {
		names = append(names, name)
	}
	slices.Sort(names)

	chunks := make([]domain.ChunkSpec, 0, len(names))
	for _, name := range names {
		if !validChunkNameRegex.MatchString(name) {
			return nil, zerr.With(domain.ErrInvalidChunkName, "chunk", name)
		}

		modules := canonicalizeModules(dtos[name])
		if len(modules) == 0 {
			return nil, zerr.With(domain.ErrEmptyChunk, "chunk", name)
		}
		for _, m := range modules {
			if !isLocal(m) {
				return nil, zerr.With(zerr.With(domain.ErrPathOutsideRoot, "module", m), "chunk", name)
			}
		}

		chunks = append(chunks, domain.ChunkSpec{Name: name, Modules: modules})
	}
	return chunks, nil
}

// canonicalizeModules cleans module paths and drops repeats. Declaration
// order is kept because it is the render order.
func canonicalizeModules(modules []string) []string {
	seen := make(map[string]bool, len(modules))
	res := make([]string, 0, len(modules))
	for _, m := range modules {
		if m == "" {
			continue
		}
		m = path.Clean(filepath.ToSlash(m))
		if seen[m] {
			continue
		}
		seen[m] = true
		res = append(res, m)
	}
	return res
}

// isLocal reports whether p stays below the project root once cleaned.
func isLocal(p string) bool {
	return filepath.IsLocal(filepath.FromSlash(path.Clean(filepath.ToSlash(p))))
}

func resolveRoot(configPath, configuredRoot string) string {
	configDir := filepath.Dir(configPath)
	if configuredRoot == "" {
		return filepath.Clean(configDir)
	}
	if filepath.IsAbs(configuredRoot) {
		return filepath.Clean(configuredRoot)
	}
	return filepath.Clean(filepath.Join(configDir, configuredRoot))
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is provided by the user
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
