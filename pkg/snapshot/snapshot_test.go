package snapshot

import (
	"errors"
	"testing"

	"github.com/thelolagemann/sm83/internal/cpu"
	"github.com/thelolagemann/sm83/internal/mmu"
)

func TestSnapshot(t *testing.T) {
	c := cpu.New()
	c.LoadBootstrap([]byte{0x31, 0xFE, 0xFF, 0xAF, 0x21, 0xFF, 0x9F})
	for i := 0; i < 3; i++ {
		if err := c.Step(); err != nil {
			t.Fatal(err)
		}
	}
	c.B, c.C = 0x12, 0x34
	c.Carry = true
	c.DebugBreakpoint = true

	b, err := Encode(c)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	restored := cpu.New()
	if err := Decode(b, restored); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if restored.PC != c.PC || restored.SP != c.SP {
		t.Errorf("expected PC=0x%04X SP=0x%04X, got PC=0x%04X SP=0x%04X", c.PC, c.SP, restored.PC, restored.SP)
	}
	if restored.BC.Uint16() != 0x1234 || restored.HL.Uint16() != 0x9FFF {
		t.Errorf("expected BC=0x1234 HL=0x9FFF, got BC=0x%04X HL=0x%04X", restored.BC.Uint16(), restored.HL.Uint16())
	}
	if restored.Flags != c.Flags {
		t.Errorf("expected flags %+v, got %+v", c.Flags, restored.Flags)
	}
	if !restored.DebugBreakpoint || restored.Debug {
		t.Errorf("expected debug state to be restored, got Debug=%v DebugBreakpoint=%v", restored.Debug, restored.DebugBreakpoint)
	}
	if restored.Bus().Checksum() != c.Bus().Checksum() {
		t.Errorf("expected restored memory to match the original")
	}
}

func TestDecode_Invalid(t *testing.T) {
	c := cpu.New()
	b, err := Encode(c)
	if err != nil {
		t.Fatal(err)
	}

	t.Run("header", func(t *testing.T) {
		if err := Decode([]byte("nope"), cpu.New()); !errors.Is(err, ErrInvalidHeader) {
			t.Errorf("expected ErrInvalidHeader, got %v", err)
		}
	})
	t.Run("version", func(t *testing.T) {
		bad := append([]byte(nil), b...)
		bad[4] = 0xFF
		if err := Decode(bad, cpu.New()); !errors.Is(err, ErrInvalidHeader) {
			t.Errorf("expected ErrInvalidHeader, got %v", err)
		}
	})
	t.Run("checksum", func(t *testing.T) {
		bad := append([]byte(nil), b...)
		bad[5] ^= 0xFF
		if err := Decode(bad, cpu.New()); !errors.Is(err, ErrChecksumMismatch) {
			t.Errorf("expected ErrChecksumMismatch, got %v", err)
		}
	})
	t.Run("size", func(t *testing.T) {
		bus := mmu.NewMemoryBus()
		bus.WriteByte(0x0000, 0xAA)
		b, err := Encode(bus)
		if err != nil {
			t.Fatal(err)
		}

		c := cpu.New()
		c.PC = 0x1234
		before := c.Bus().Checksum()
		if err := Decode(b, c); !errors.Is(err, ErrSizeMismatch) {
			t.Fatalf("expected ErrSizeMismatch, got %v", err)
		}
		if c.PC != 0x1234 || c.A != 0 || c.Bus().Checksum() != before {
			t.Errorf("expected CPU to be left untouched, got PC=0x%04X A=0x%02X", c.PC, c.A)
		}
	})
}
