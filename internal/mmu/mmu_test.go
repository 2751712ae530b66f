package mmu

import (
	"testing"

	"github.com/thelolagemann/sm83/internal/types"
)

func TestMemoryBus_ReadWrite(t *testing.T) {
	m := NewMemoryBus()
	for _, addr := range []uint16{0x0000, 0x0100, 0xC000, 0xFF44, 0xFFFF} {
		m.WriteByte(addr, 0x42)
		if v := m.ReadByte(addr); v != 0x42 {
			t.Errorf("expected 0x42 at 0x%04X, got 0x%02X", addr, v)
		}
	}
}

func TestMemoryBus_ReadSignedByte(t *testing.T) {
	m := NewMemoryBus()
	tests := []struct {
		raw  uint8
		want int8
	}{
		{0x00, 0},
		{0x7F, 127},
		{0x80, -128},
		{0xFE, -2},
		{0xFF, -1},
	}
	for _, tt := range tests {
		m.WriteByte(0x100, tt.raw)
		if got := m.ReadSignedByte(0x100); got != tt.want {
			t.Errorf("expected %d for 0x%02X, got %d", tt.want, tt.raw, got)
		}
	}
}

func TestMemoryBus_WriteArray(t *testing.T) {
	t.Run("includes last byte", func(t *testing.T) {
		m := NewMemoryBus()
		data := []byte{0x31, 0xFE, 0xFF, 0xAF, 0x21, 0xFF, 0x9F, 0x32}
		m.WriteArray(0, data)
		for i, b := range data {
			if v := m.ReadByte(uint16(i)); v != b {
				t.Errorf("expected 0x%02X at %d, got 0x%02X", b, i, v)
			}
		}
	})
	t.Run("offset", func(t *testing.T) {
		m := NewMemoryBus()
		m.WriteArray(0x8000, []byte{1, 2, 3})
		if m.ReadByte(0x8002) != 3 {
			t.Errorf("expected 3 at 0x8002, got %d", m.ReadByte(0x8002))
		}
		if m.ReadByte(0x8003) != 0 {
			t.Errorf("expected untouched byte after the array, got %d", m.ReadByte(0x8003))
		}
	})
	t.Run("wraps", func(t *testing.T) {
		m := NewMemoryBus()
		m.WriteArray(0xFFFF, []byte{0xAA, 0xBB})
		if m.ReadByte(0xFFFF) != 0xAA || m.ReadByte(0x0000) != 0xBB {
			t.Errorf("expected write to wrap to 0x0000")
		}
	})
	t.Run("empty", func(t *testing.T) {
		m := NewMemoryBus()
		m.WriteArray(0, nil)
		if m.ReadByte(0) != 0 {
			t.Errorf("expected memory to be untouched")
		}
	})
}

func TestMemoryBus_LY(t *testing.T) {
	m := NewMemoryBus()
	m.WriteLY(0x90)
	if m.ReadByte(types.LY) != 0x90 {
		t.Errorf("expected LY write to land at 0xFF44, got 0x%02X", m.ReadByte(types.LY))
	}
	m.WriteByte(types.LY, 0x12)
	if m.ReadLY() != 0x12 {
		t.Errorf("expected 0x12, got 0x%02X", m.ReadLY())
	}
}

func TestMemoryBus_Checksum(t *testing.T) {
	a, b := NewMemoryBus(), NewMemoryBus()
	if a.Checksum() != b.Checksum() {
		t.Fatalf("expected empty buses to have equal checksums")
	}
	a.WriteByte(0xFFFF, 1)
	if a.Checksum() == b.Checksum() {
		t.Errorf("expected checksum to change after a write")
	}
}

func TestMemoryBus_State(t *testing.T) {
	m := NewMemoryBus()
	m.WriteArray(0x100, []byte{1, 2, 3, 4})
	m.WriteLY(0x99)

	s := types.NewState()
	m.Save(s)
	if len(s.Bytes()) != Size {
		t.Fatalf("expected %d bytes, got %d", Size, len(s.Bytes()))
	}

	restored := NewMemoryBus()
	restored.Load(types.StateFromBytes(s.Bytes()))
	if restored.Checksum() != m.Checksum() {
		t.Errorf("expected restored bus to match the original")
	}
}
