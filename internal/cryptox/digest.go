// Package cryptox provides content digests for files handed to the uploader.
package cryptox

import (
	"encoding/hex"
	"fmt"
	"io"

	"golang.org/x/crypto/blake2b"
)

// BlockSize is the read granularity of DigestReader. Memory use stays
// bounded by one block regardless of the input size.
const BlockSize = 32 * 1024

// DigestReader streams r through BLAKE2b-256 and returns the lowercase hex
// digest together with the number of bytes consumed.
func DigestReader(r io.Reader) (string, int64, error) {
	h, err := blake2b.New256(nil)
	if err != nil {
		return "", 0, err
	}

	buf := make([]byte, BlockSize)
	n, err := io.CopyBuffer(h, r, buf)
	if err != nil {
		return "", n, fmt.Errorf("digest read: %w", err)
	}

	return hex.EncodeToString(h.Sum(nil)), n, nil
}
