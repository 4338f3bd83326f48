package domain

import "go.trai.ch/zerr"

var (
	// ErrContentUnavailable is returned when an upstream source cannot produce its content.
	ErrContentUnavailable = zerr.New("content unavailable")

	// ErrIdentityMismatch is returned when a passthrough asset no longer reports its source's identity.
	ErrIdentityMismatch = zerr.New("identity mismatch")

	// ErrAssetConflict is returned when two assets share an identity but reference different assets.
	ErrAssetConflict = zerr.New("conflicting assets share an identity")

	// ErrMissingReference is returned when an asset references an identity that is not in the graph.
	ErrMissingReference = zerr.New("missing reference")

	// ErrCycleDetected is returned when a cycle is detected in the asset graph.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrSourceNotFound is returned when a declared source pattern matches no files.
	ErrSourceNotFound = zerr.New("source not found")

	// ErrUnknownStrategy is returned when the configuration names an unknown chunking strategy.
	ErrUnknownStrategy = zerr.New("unknown chunking strategy, expected 'development' or 'production'")

	// ErrInvalidChunkName is returned when a chunk name contains invalid characters.
	ErrInvalidChunkName = zerr.New("chunk name can only contain alphanumeric characters, hyphens and underscores")

	// ErrEmptyChunk is returned when a chunk declares no modules.
	ErrEmptyChunk = zerr.New("chunk declares no modules")

	// ErrOutDirOutsideRoot is returned when the output directory is outside the project root.
	ErrOutDirOutsideRoot = zerr.New("output directory is outside project root")

	// ErrPathOutsideRoot is returned when a declared asset or module path leaves the project root.
	ErrPathOutsideRoot = zerr.New("path is outside project root")

	// ErrOutputOutsideOutDir is returned when an asset would be written outside the output directory.
	ErrOutputOutsideOutDir = zerr.New("output path is outside output directory")

	// ErrUnsupportedVersion is returned when the configuration declares an unknown schema version.
	ErrUnsupportedVersion = zerr.New("unsupported config version, expected '1'")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrStoreReadFailed is returned when an output record cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read output record")

	// ErrStoreWriteFailed is returned when an output record cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write output record")

	// ErrOutputWriteFailed is returned when an emitted asset cannot be written.
	ErrOutputWriteFailed = zerr.New("failed to write output")

	// ErrEmitFailed is returned when emitting the output set fails.
	ErrEmitFailed = zerr.New("emit failed")

	// ErrWatchFailed is returned when the file watcher cannot be started.
	ErrWatchFailed = zerr.New("failed to watch project")
)
