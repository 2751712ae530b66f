// Package snapshot encodes the state of a types.Stater into a compact,
// self-checking blob that can be written to disk by the host and
// restored later.
//
// Layout:
//
//	magic   [4]byte "SM83"
//	version uint8
//	hash    uint64 little-endian xxhash of the uncompressed state
//	body    brotli compressed state
package snapshot

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/cespare/xxhash"

	"github.com/thelolagemann/sm83/internal/types"
)

const (
	version    = 1
	headerSize = 4 + 1 + 8
)

var magic = []byte("SM83")

var (
	// ErrInvalidHeader is returned when the data is not a snapshot.
	ErrInvalidHeader = errors.New("snapshot: invalid header")
	// ErrChecksumMismatch is returned when the decoded state does not
	// match the checksum it was saved with.
	ErrChecksumMismatch = errors.New("snapshot: checksum mismatch")
	// ErrSizeMismatch is returned when the decoded state was saved from
	// something of a different shape than the Stater it is loaded into.
	ErrSizeMismatch = errors.New("snapshot: state size mismatch")
)

// Encode saves s and returns the compressed snapshot.
func Encode(s types.Stater) ([]byte, error) {
	state := types.NewState()
	s.Save(state)
	raw := state.Bytes()

	buf := bytes.NewBuffer(make([]byte, 0, headerSize))
	buf.Write(magic)
	buf.WriteByte(version)
	var hash [8]byte
	binary.LittleEndian.PutUint64(hash[:], xxhash.Sum64(raw))
	buf.Write(hash[:])

	w := brotli.NewWriterLevel(buf, brotli.DefaultCompression)
	if _, err := w.Write(raw); err != nil {
		return nil, fmt.Errorf("snapshot: compressing state: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("snapshot: compressing state: %w", err)
	}

	return buf.Bytes(), nil
}

// Decode verifies b and loads it into s. s is left untouched if an error
// is returned.
func Decode(b []byte, s types.Stater) error {
	if len(b) < headerSize || !bytes.Equal(b[:4], magic) {
		return ErrInvalidHeader
	}
	if b[4] != version {
		return fmt.Errorf("%w: unsupported version %d", ErrInvalidHeader, b[4])
	}
	want := binary.LittleEndian.Uint64(b[5:headerSize])

	raw, err := io.ReadAll(brotli.NewReader(bytes.NewReader(b[headerSize:])))
	if err != nil {
		return fmt.Errorf("snapshot: decompressing state: %w", err)
	}
	if got := xxhash.Sum64(raw); got != want {
		return fmt.Errorf("%w: expected %016x, got %016x", ErrChecksumMismatch, want, got)
	}

	// the layout has no framing, so the size s saves is the size it loads
	expected := types.NewState()
	s.Save(expected)
	if len(raw) != len(expected.Bytes()) {
		return fmt.Errorf("%w: expected %d bytes, got %d", ErrSizeMismatch, len(expected.Bytes()), len(raw))
	}

	s.Load(types.StateFromBytes(raw))
	return nil
}
