package domain

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Ident identifies an asset by the inputs that define it.
//
// Two assets with equal Idents are the same artifact for caching and
// deduplication. Idents are comparable with == and are safe to use as map keys.
// An Ident never carries time or process-local state, so it is reproducible
// across runs given the same inputs.
type Ident struct {
	// Path is the slash-separated path of the originating file, relative to the project root.
	Path InternedString
	// Query distinguishes variants of the same path (for example chunk membership).
	Query InternedString
	// Modifier names the transform applied to the path, empty for untouched sources.
	Modifier InternedString
	// Layer names the chunking context the asset was produced for.
	Layer InternedString
}

// NewIdent creates an Ident for the given relative path.
// The path is cleaned and converted to forward slashes.
func NewIdent(p string) Ident {
	return Ident{Path: NewInternedString(cleanPath(p))}
}

func cleanPath(p string) string {
	if p == "" {
		return ""
	}
	return path.Clean(filepath.ToSlash(p))
}

// WithQuery returns a copy of the Ident with the given query.
func (i Ident) WithQuery(q string) Ident {
	i.Query = NewInternedString(q)
	return i
}

// WithModifier returns a copy of the Ident with the given modifier.
func (i Ident) WithModifier(m string) Ident {
	i.Modifier = NewInternedString(m)
	return i
}

// WithLayer returns a copy of the Ident with the given layer.
func (i Ident) WithLayer(l string) Ident {
	i.Layer = NewInternedString(l)
	return i
}

// IsZero reports whether the Ident has no path.
func (i Ident) IsZero() bool {
	return i.Path.Empty()
}

// String renders the Ident as path?query [layer] (modifier), omitting empty parts.
func (i Ident) String() string {
	var b strings.Builder
	b.WriteString(i.Path.String())
	if !i.Query.Empty() {
		b.WriteByte('?')
		b.WriteString(i.Query.String())
	}
	if !i.Layer.Empty() {
		fmt.Fprintf(&b, " [%s]", i.Layer.String())
	}
	if !i.Modifier.Empty() {
		fmt.Fprintf(&b, " (%s)", i.Modifier.String())
	}
	return b.String()
}

// Digest returns a stable 16 character hex digest of the Ident.
func (i Ident) Digest() string {
	hasher := xxhash.New()
	i.writeTo(hasher)
	return fmt.Sprintf("%016x", hasher.Sum64())
}

func (i Ident) writeTo(hasher *xxhash.Digest) {
	for _, part := range []InternedString{i.Path, i.Query, i.Modifier, i.Layer} {
		_, _ = hasher.WriteString(part.String())
		_, _ = hasher.Write([]byte{0})
	}
}

// DigestIdents returns a stable digest over an ordered list of Idents.
func DigestIdents(idents ...Ident) string {
	hasher := xxhash.New()
	for _, id := range idents {
		id.writeTo(hasher)
		_, _ = hasher.Write([]byte{0}) // Separator between idents
	}
	return fmt.Sprintf("%016x", hasher.Sum64())
}
