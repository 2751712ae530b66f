// Package mmu provides the memory bus for the SM83 core. The bus is a
// single flat 64kB address space shared by code, data and memory-mapped
// registers. Bank switching and peripheral side effects belong to
// collaborators outside the core.
package mmu

import (
	"github.com/cespare/xxhash"

	"github.com/thelolagemann/sm83/internal/types"
)

// Size is the number of addressable bytes.
const Size = 0x10000

// MemoryBus is a flat byte store covering the whole 16-bit address
// space. No in-range address can fail.
type MemoryBus struct {
	// 0x0000 - 0xFFFF
	raw [Size]uint8
}

// NewMemoryBus returns a zero-filled MemoryBus.
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{}
}

// ReadByte returns the byte at the given address.
func (m *MemoryBus) ReadByte(address uint16) uint8 {
	return m.raw[address]
}

// ReadSignedByte returns the byte at the given address reinterpreted as
// a two's-complement value, as used by relative jump displacements.
func (m *MemoryBus) ReadSignedByte(address uint16) int8 {
	return int8(m.raw[address])
}

// WriteByte writes the value to the given address.
func (m *MemoryBus) WriteByte(address uint16, value uint8) {
	m.raw[address] = value
}

// WriteArray copies every byte of values into memory starting at
// address. Writes running past 0xFFFF wrap around to 0x0000.
func (m *MemoryBus) WriteArray(address uint16, values []uint8) {
	for i, v := range values {
		m.raw[address+uint16(i)] = v
	}
}

// ReadLY returns the LY register.
func (m *MemoryBus) ReadLY() uint8 {
	return m.raw[types.LY]
}

// WriteLY sets the LY register.
func (m *MemoryBus) WriteLY(value uint8) {
	m.raw[types.LY] = value
}

// Checksum returns a fingerprint of the entire address space, which is
// useful when comparing the memory of two runs.
func (m *MemoryBus) Checksum() uint64 {
	return xxhash.Sum64(m.raw[:])
}

var _ types.Stater = (*MemoryBus)(nil)

// Load restores the address space from the given state.
func (m *MemoryBus) Load(s *types.State) {
	s.ReadData(m.raw[:])
}

// Save writes the address space to the given state.
func (m *MemoryBus) Save(s *types.State) {
	s.WriteData(m.raw[:])
}
