// Package signature provides helper functions for producing the hashes
// the blockchain uses to link and prove blocks.
package signature

import (
	"crypto/sha256"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// HashLength is the number of hex characters in every hash we produce.
const HashLength = 2 * sha256.Size

// ZeroHash represents a hash code of zeros. It is used as the parent
// hash of the genesis block.
var ZeroHash = strings.Repeat("0", HashLength)

// =============================================================================

// Hash returns the lowercase hex SHA-256 digest of the specified parts
// written one after the other.
func Hash(parts ...string) string {
	h := sha256.New()
	for _, part := range parts {
		h.Write([]byte(part))
	}

	return common.Bytes2Hex(h.Sum(nil))
}
