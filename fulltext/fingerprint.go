package fulltext

import (
	"crypto/sha256"
	"encoding/hex"
	"slices"
	"strings"
)

// fingerprint generates a stable hash of the document slice. The
// fingerprint changes when indexed content changes, so Sync can skip
// rebuilding the Bleve index for an unchanged snapshot.
func fingerprint(docs []document) string {
	h := sha256.New()

	for _, doc := range docs {
		h.Write([]byte(doc.ID))
		h.Write([]byte{0}) // separator
		h.Write([]byte(doc.Kind))
		h.Write([]byte{0})
		h.Write([]byte(doc.Title))
		h.Write([]byte{0})
		h.Write([]byte(doc.Body))
		h.Write([]byte{0})

		// Tags are sorted for order-independence, then joined with a
		// separator.
		sortedTags := slices.Clone(doc.Tags)
		slices.Sort(sortedTags)
		h.Write([]byte(strings.Join(sortedTags, "\x01")))
		h.Write([]byte{0})
	}

	return hex.EncodeToString(h.Sum(nil))
}
