package domain

// OutputRecord remembers what was last written for an asset.
// Records are keyed by Digest; Ident is the readable form, kept for inspection,
// and distinct identities may render the same Ident string.
type OutputRecord struct {
	Ident       string `json:"ident,omitzero"`
	Digest      string `json:"digest,omitzero"`
	Path        string `json:"path,omitzero"`
	ContentHash string `json:"content_hash,omitzero"`
}

// NewOutputRecord creates the record of id written to path with the given content hash.
func NewOutputRecord(id Ident, path, contentHash string) OutputRecord {
	return OutputRecord{
		Ident:       id.String(),
		Digest:      id.Digest(),
		Path:        path,
		ContentHash: contentHash,
	}
}
