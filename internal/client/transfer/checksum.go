package transfer

import (
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/sharefile/internal/cryptox"
)

// ChecksumWindow is how many leading bytes of a file feed the fingerprint.
const ChecksumWindow = 8192

// Checksummer produces the checksum sent with a slot request.
type Checksummer interface {
	Checksum(ctx context.Context, f File) (string, error)
}

// ComputeChecksum fingerprints the first ChecksumWindow bytes of r.
//
// For every byte b the signed 32-bit accumulator becomes
// (acc << 5) - acc + b with two's complement wraparound. The absolute value
// is rendered as lowercase hex, zero-padded to at least 16 digits. Servers
// compare against this exact value, so it must not change.
func ComputeChecksum(r io.Reader) (string, error) {
	buf := make([]byte, ChecksumWindow)
	n, err := io.ReadFull(r, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return "", err
	}

	var acc int32
	for _, b := range buf[:n] {
		acc = (acc << 5) - acc + int32(b)
	}

	// widen first: the absolute value of math.MinInt32 does not fit in int32
	abs := int64(acc)
	if abs < 0 {
		abs = -abs
	}

	return fmt.Sprintf("%016x", abs), nil
}

// PrefixChecksum is the default Checksummer: ComputeChecksum over the
// file's leading bytes.
type PrefixChecksum struct{}

func (PrefixChecksum) Checksum(ctx context.Context, f File) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	rc, err := f.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	return ComputeChecksum(rc)
}

// ContentDigest hashes the full content with BLAKE2b-256, streamed in
// fixed-size blocks.
type ContentDigest struct{}

func (ContentDigest) Checksum(ctx context.Context, f File) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	rc, err := f.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	sum, n, err := cryptox.DigestReader(rc)
	if err != nil {
		return "", err
	}
	if n != f.Size() {
		return "", fmt.Errorf("file changed while hashing: read %d of %d bytes", n, f.Size())
	}
	return sum, nil
}

// Checksum modes accepted by NewChecksummer.
const (
	ChecksumModePrefix  = "prefix"
	ChecksumModeBlake2b = "blake2b"
)

func NewChecksummer(mode string) (Checksummer, error) {
	switch mode {
	case "", ChecksumModePrefix:
		return PrefixChecksum{}, nil
	case ChecksumModeBlake2b:
		return ContentDigest{}, nil
	default:
		return nil, fmt.Errorf("unknown checksum mode %q", mode)
	}
}
