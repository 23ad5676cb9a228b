package hashutil

import (
	"encoding/hex"

	"lukechampine.com/blake3"
)

// HashBytes returns the BLAKE3 hash of data as a hex string, used to
// fingerprint raw input documents for the diagnostics trail.
func HashBytes(data []byte) string {
	hash := blake3.Sum256(data)
	return hex.EncodeToString(hash[:])
}
