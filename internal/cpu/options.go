package cpu

import (
	"github.com/thelolagemann/sm83/internal/boot"
	"github.com/thelolagemann/sm83/internal/mmu"
	"github.com/thelolagemann/sm83/internal/types"
	"github.com/thelolagemann/sm83/pkg/log"
)

// Opt is a function that modifies a CPU instance.
type Opt func(c *CPU)

// Debug enables the LD B, B breakpoint.
func Debug() Opt {
	return func(c *CPU) {
		c.Debug = true
	}
}

// Trace logs every executed instruction and the resulting registers at
// debug level.
func Trace() Opt {
	return func(c *CPU) {
		c.trace = true
	}
}

// WithLogger sets the logger used by the CPU.
func WithLogger(l log.Logger) Opt {
	return func(c *CPU) {
		c.log = l
	}
}

// WithBus makes the CPU execute from the given bus, so that a host can
// prepare memory before the CPU is created.
func WithBus(b *mmu.MemoryBus) Opt {
	return func(c *CPU) {
		c.bus = b
	}
}

// WithBootROM loads the boot ROM at 0x0000 once the CPU has been
// created. PC, SP and the registers stay zeroed so execution starts at
// the first byte of the boot ROM.
func WithBootROM(rom *boot.ROM) Opt {
	return func(c *CPU) {
		c.bootROM = rom
	}
}

// SkipBoot starts the CPU in the state the given model's boot rom leaves
// it in, with PC at the cartridge entry point 0x0100.
func SkipBoot(m types.Model) Opt {
	return func(c *CPU) {
		c.SetModelRegisters(m)
		c.SP = 0xFFFE
		c.PC = 0x0100
	}
}
