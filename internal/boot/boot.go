// Package boot validates and identifies bootstrap images before they are
// handed to the CPU. Reading the image from disk is left to the host.
package boot

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/thelolagemann/sm83/internal/types"
)

// ErrInvalidLength is returned when a bootstrap image is neither the
// 256 byte DMG size nor the 2304 byte CGB size.
var ErrInvalidLength = errors.New("boot: invalid boot rom length")

// ROM is a bootstrap image. When the CPU first powers on the image is
// written at address 0x0000 and execution begins at its first byte.
type ROM struct {
	raw      []byte // the raw boot rom
	checksum string // the MD5 checksum of the boot rom
}

// NewROM validates b and returns a ROM. The MD5 checksum is computed up
// front so the model can be identified.
func NewROM(b []byte) (*ROM, error) {
	// 256 bytes for DMG/MGB/SGB, 2304 bytes for CGB
	if len(b) != 256 && len(b) != 2304 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, len(b))
	}

	sum := md5.Sum(b)
	return &ROM{
		raw:      b,
		checksum: hex.EncodeToString(sum[:]),
	}, nil
}

// Bytes returns the raw image.
func (b *ROM) Bytes() []byte {
	return b.raw
}

// Checksum returns the MD5 checksum of the boot rom.
func (b *ROM) Checksum() string {
	if b == nil {
		return ""
	}
	return b.checksum
}

// Model returns the model of the boot rom, determined by its checksum.
// types.Unset is returned for a dump that isn't recognised.
func (b *ROM) Model() types.Model {
	if b == nil {
		return types.Unset
	}
	return knownBootROMChecksums[b.checksum]
}

var knownBootROMChecksums = map[string]types.Model{
	DMG0: types.DMG0,
	DMG:  types.DMGABC,
	MGB:  types.MGB,
	SGB:  types.SGB,
	SGB2: types.SGB2,
	CGB0: types.CGB0,
	CGB:  types.CGBABC,
}

// Published MD5 checksums of the known boot ROM dumps.
const (
	// DMG0 is the early DMG boot ROM, only sold in Japan.
	DMG0 = "a8f84a0ac44da5d3f0ee19f9cea80a8c"
	// DMG is the boot ROM of the original DMG-01.
	DMG = "32fbbd84168d3482956eb3c5051637f5"
	// MGB differs from DMG by a single byte, loading 0xFF into A.
	MGB = "71a378e71ff30b2d8a1f02bf5c7896aa"
	SGB = "d574d4f9c12f305074798f54c091a8b4"
	// SGB2 differs from SGB by a single byte, loading 0xFF into A.
	SGB2 = "e0430bca9925fb9882148fd2dc2418c1"
	CGB0 = "7c773f3c0b01cb73bca8e83227287b7f"
	CGB  = "dbfce9db9deaa2567f6a84fde55f9680"
)
