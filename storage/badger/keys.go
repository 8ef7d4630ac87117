package badger

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/docdex/docdex/core"
)

// Key prefixes for different data types
const (
	documentPrefix     = "docrec"
	documentDatePrefix = "docrecd"
)

// makeDocumentKey generates a key for a document by ID.
func makeDocumentKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", documentPrefix, id))
}

// makeDocumentDateKey generates a composite key for the upload-date index.
// Format: prefix:timestamp:id
func makeDocumentDateKey(uploadedAt time.Time, id core.ID) []byte {
	prefix := documentDatePrefix + ":"
	buf := make([]byte, len(prefix)+16)
	offset := copy(buf, prefix)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(uploadedAt.UnixMicro()))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makePartialDocumentDateKey generates a partial key for date range queries.
// Format: prefix:timestamp
func makePartialDocumentDateKey(uploadedAt time.Time) []byte {
	prefix := documentDatePrefix + ":"
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(uploadedAt.UnixMicro()))
	return buf
}
