package domain

// Strategy names a chunking strategy.
type Strategy string

const (
	// StrategyDevelopment renders chunks for a development server with hot reload.
	StrategyDevelopment Strategy = "development"
	// StrategyProduction renders chunks for a production build.
	StrategyProduction Strategy = "production"
)

// Project is a loaded and validated pack.yaml.
type Project struct {
	// Root is the absolute project root. Every other path is relative to it.
	Root string
	// OutDir is the slash-separated output directory.
	OutDir string
	// Strategy selects the chunking context.
	Strategy Strategy
	// Assets lists the files emitted untouched.
	Assets AssetSet
	// Chunks lists the chunks to emit, sorted by name.
	Chunks []ChunkSpec
}

// AssetSet selects files by glob.
type AssetSet struct {
	Include []string
	Ignore  []string
}

// ChunkSpec declares the modules rendered into one chunk.
type ChunkSpec struct {
	Name    string
	Modules []string
}
