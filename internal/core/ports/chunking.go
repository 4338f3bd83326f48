package ports

// ChunkingContext is a strategy controlling how modules are grouped and
// rendered into output chunks.
type ChunkingContext interface {
	// Name identifies the strategy. It becomes the layer of every asset built for it.
	Name() string
	// ChunkPath returns the slash-separated output path of the named chunk,
	// relative to OutputRoot.
	ChunkPath(name string) string
	// OutputRoot returns the slash-separated output directory relative to the project root.
	OutputRoot() string
}

// EcmascriptChunkingContext is implemented by chunking contexts that render
// ECMAScript chunks. Its queries are pure functions of the strategy's own
// configuration and never fail.
type EcmascriptChunkingContext interface {
	ChunkingContext
	// HasHotReloadInstrumentation reports whether generated chunk items receive
	// the __turbopack_refresh__ argument.
	HasHotReloadInstrumentation() bool
}
