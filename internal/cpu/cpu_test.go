package cpu

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/thelolagemann/sm83/internal/boot"
	"github.com/thelolagemann/sm83/internal/mmu"
	"github.com/thelolagemann/sm83/internal/types"
	"github.com/thelolagemann/sm83/pkg/log"
)

// step writes program at address, points PC at it and executes a single
// instruction.
func step(t *testing.T, c *CPU, address uint16, program ...uint8) {
	t.Helper()
	c.PC = address
	c.Bus().WriteArray(address, program)
	if err := c.Step(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestNew(t *testing.T) {
	c := New()
	if c.PC != 0 || c.SP != 0 || c.AF() != 0 || c.BC.Uint16() != 0 || c.DE.Uint16() != 0 || c.HL.Uint16() != 0 {
		t.Errorf("expected all registers to be zero")
	}
	if c.Bus().Checksum() != mmu.NewMemoryBus().Checksum() {
		t.Errorf("expected memory to be zero-filled")
	}
}

func TestCPU_LoadBootstrap(t *testing.T) {
	c := New()
	program := []byte{0x31, 0xFE, 0xFF, 0xAF}
	c.LoadBootstrap(program)
	for i, b := range program {
		if v := c.Bus().ReadByte(uint16(i)); v != b {
			t.Errorf("expected 0x%02X at %d, got 0x%02X", b, i, v)
		}
	}
}

func TestCPU_Step(t *testing.T) {
	t.Run("advances PC", func(t *testing.T) {
		c := New()
		step(t, c, 0x0000, 0x00)
		if c.PC != 0x0001 {
			t.Errorf("expected PC to be 0x0001, got 0x%04X", c.PC)
		}
	})
	t.Run("prefixed advances PC twice", func(t *testing.T) {
		c := New()
		c.H = 0x80
		step(t, c, 0x0000, 0xCB, 0x7C)
		if c.PC != 0x0002 {
			t.Errorf("expected PC to be 0x0002, got 0x%04X", c.PC)
		}
		if c.Zero {
			t.Errorf("expected zero flag to be unset, got set")
		}
	})
	t.Run("PC wraps", func(t *testing.T) {
		c := New()
		step(t, c, 0xFFFF, 0x00)
		if c.PC != 0x0000 {
			t.Errorf("expected PC to wrap to 0x0000, got 0x%04X", c.PC)
		}
	})
	t.Run("unknown opcode", func(t *testing.T) {
		c := New()
		c.PC = 0x0150
		c.Bus().WriteByte(0x0150, 0xD3)

		err := c.Step()
		if !errors.Is(err, ErrUnknownOpcode) {
			t.Fatalf("expected ErrUnknownOpcode, got %v", err)
		}
		var unknown *UnknownOpcodeError
		if !errors.As(err, &unknown) {
			t.Fatalf("expected *UnknownOpcodeError, got %T", err)
		}
		if unknown.Opcode != 0xD3 || unknown.Prefixed || unknown.PC != 0x0150 {
			t.Errorf("expected opcode 0xD3 at 0x0150, got %+v", unknown)
		}
		if errors.Is(err, ErrUnimplemented) {
			t.Errorf("expected unknown opcode to be distinguishable from unimplemented")
		}
		if !strings.Contains(err.Error(), "0xD3") {
			t.Errorf("expected error to name the opcode, got %q", err.Error())
		}
	})
}

// TestCPU_ClearVRAM runs the memory clearing loop that bootstrap programs
// start with.
func TestCPU_ClearVRAM(t *testing.T) {
	c := New()
	for addr := 0x8000; addr < 0xA000; addr++ {
		c.Bus().WriteByte(uint16(addr), 0xFF)
	}
	c.LoadBootstrap([]byte{
		0x31, 0xFE, 0xFF, // LD SP, 0xFFFE
		0xAF,             // XOR A
		0x21, 0xFF, 0x9F, // LD HL, 0x9FFF
		0x32,             // LD (HL-), A
		0xCB, 0x7C,       // BIT 7, H
		0x20, 0xFB,       // JR NZ, -5
	})

	for steps := 0; c.PC != 0x000C; steps++ {
		if steps > 0x10000 {
			t.Fatalf("expected loop to finish, PC stuck at 0x%04X", c.PC)
		}
		if err := c.Step(); err != nil {
			t.Fatal(err)
		}
	}

	for addr := 0x8000; addr < 0xA000; addr++ {
		if v := c.Bus().ReadByte(uint16(addr)); v != 0 {
			t.Fatalf("expected 0x%04X to be cleared, got 0x%02X", addr, v)
		}
	}
	if c.SP != 0xFFFE {
		t.Errorf("expected SP to be 0xFFFE, got 0x%04X", c.SP)
	}
	if c.HL.Uint16() != 0x7FFF {
		t.Errorf("expected HL to be 0x7FFF, got 0x%04X", c.HL.Uint16())
	}
}

func TestOptions(t *testing.T) {
	t.Run("debug breakpoint", func(t *testing.T) {
		c := New(Debug())
		step(t, c, 0x0000, 0x41) // LD B, C
		if c.DebugBreakpoint {
			t.Errorf("expected no breakpoint for LD B, C")
		}
		step(t, c, 0x0000, 0x40) // LD B, B
		if !c.DebugBreakpoint {
			t.Errorf("expected breakpoint for LD B, B")
		}

		c = New()
		step(t, c, 0x0000, 0x40)
		if c.DebugBreakpoint {
			t.Errorf("expected no breakpoint outside of debug mode")
		}
	})
	t.Run("trace", func(t *testing.T) {
		l := log.New().(*logrus.Logger)
		buf := &bytes.Buffer{}
		l.SetOutput(buf)

		c := New(WithLogger(l), Trace())
		step(t, c, 0x0100, 0x3E, 0x42) // LD A, d8
		if !strings.Contains(buf.String(), "0100: LD A, d8") {
			t.Errorf("expected instruction to be traced, got %q", buf.String())
		}
		if !strings.Contains(buf.String(), "A: 42") {
			t.Errorf("expected registers to be traced, got %q", buf.String())
		}
	})
	t.Run("errors are logged", func(t *testing.T) {
		l := log.New().(*logrus.Logger)
		buf := &bytes.Buffer{}
		l.SetOutput(buf)

		c := New(WithLogger(l))
		c.Bus().WriteByte(0, 0xFD)
		if err := c.Step(); err == nil {
			t.Fatalf("expected an error")
		}
		if !strings.Contains(buf.String(), "unknown instruction 0xFD") {
			t.Errorf("expected error to be logged, got %q", buf.String())
		}
	})
	t.Run("bus", func(t *testing.T) {
		b := mmu.NewMemoryBus()
		b.WriteByte(0x0000, 0x3C) // INC A
		c := New(WithBus(b))
		if err := c.Step(); err != nil {
			t.Fatal(err)
		}
		if c.A != 1 {
			t.Errorf("expected A to be 0x01, got 0x%02X", c.A)
		}
		if c.Bus() != b {
			t.Errorf("expected CPU to use the given bus")
		}
	})
	t.Run("boot rom", func(t *testing.T) {
		raw := make([]byte, 256)
		raw[0], raw[255] = 0x31, 0x50
		rom, err := boot.NewROM(raw)
		if err != nil {
			t.Fatal(err)
		}
		c := New(WithBootROM(rom), WithBus(mmu.NewMemoryBus()))
		if c.Bus().ReadByte(0x0000) != 0x31 || c.Bus().ReadByte(0x00FF) != 0x50 {
			t.Errorf("expected boot rom to be loaded at 0x0000")
		}
		if c.PC != 0 {
			t.Errorf("expected PC to be 0x0000, got 0x%04X", c.PC)
		}
	})
	t.Run("skip boot", func(t *testing.T) {
		c := New(SkipBoot(types.DMGABC))
		if c.PC != 0x0100 || c.SP != 0xFFFE {
			t.Errorf("expected PC 0x0100 SP 0xFFFE, got PC 0x%04X SP 0x%04X", c.PC, c.SP)
		}
		if c.AF() != 0x01B0 || c.HL.Uint16() != 0x014D {
			t.Errorf("expected DMG registers, got AF 0x%04X HL 0x%04X", c.AF(), c.HL.Uint16())
		}
	})
}
