package domain

import (
	"bytes"
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"
)

// Content is an immutable snapshot of the bytes an asset produces.
// The zero value is empty content.
type Content struct {
	data []byte
}

// NewContent creates a Content holding a copy of b.
func NewContent(b []byte) Content {
	return Content{data: bytes.Clone(b)}
}

// NewContentString creates a Content holding s.
func NewContentString(s string) Content {
	return Content{data: []byte(s)}
}

// Bytes returns a copy of the content bytes.
func (c Content) Bytes() []byte {
	return bytes.Clone(c.data)
}

// String returns the content as a string.
func (c Content) String() string {
	return string(c.data)
}

// Len returns the size of the content in bytes.
func (c Content) Len() int {
	return len(c.data)
}

// Equal reports whether both snapshots hold the same bytes.
func (c Content) Equal(other Content) bool {
	return bytes.Equal(c.data, other.data)
}

// Hash returns the XXHash of the content as 16 hex characters.
func (c Content) Hash() string {
	return fmt.Sprintf("%016x", xxhash.Sum64(c.data))
}

// WriteTo implements io.WriterTo.
func (c Content) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(c.data)
	return int64(n), err
}
