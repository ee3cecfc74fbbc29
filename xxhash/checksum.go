// Package xxhash computes payload checksums used to detect unchanged
// re-imports.
package xxhash

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/cespare/xxhash/v2"
)

// Checksum returns the xxHash64 of data as a 16 character hex string.
func Checksum(data []byte) string {
	b := binary.BigEndian.AppendUint64(nil, xxhash.Sum64(data))
	return hex.EncodeToString(b)
}
