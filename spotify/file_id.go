package spotify

import (
	"bytes"
	"encoding/hex"
)

// FileIDSize is the width of a file identifier in bytes.
const FileIDSize = 20

// FileID is a 20-byte content-addressed identifier of a binary blob, such
// as an image or an audio or video file. It has no internal structure and
// no base62 rendering; it never appears inside the URI grammar.
type FileID [FileIDSize]byte

// FileIDFromBytes copies a FileID from exactly FileIDSize (20) bytes.
func FileIDFromBytes(src []byte) (FileID, error) {
	if len(src) != FileIDSize {
		return FileID{}, &InvalidIDBytesError{Bytes: append([]byte(nil), src...)}
	}
	var id FileID
	copy(id[:], src)
	return id, nil
}

// Compare orders two FileIDs by lexicographic byte order, returning -1, 0,
// or 1. It is suitable for slices.SortFunc.
func (id FileID) Compare(other FileID) int {
	return bytes.Compare(id[:], other[:])
}

// Hex returns the 40-character lowercase hex rendering.
func (id FileID) Hex() string {
	return hex.EncodeToString(id[:])
}

func (id FileID) String() string {
	return id.Hex()
}
