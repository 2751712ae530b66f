// Package cpu implements the SM83 processor: it fetches opcodes from a
// memory bus, decodes them and executes them against the register file.
package cpu

import (
	"github.com/thelolagemann/sm83/internal/boot"
	"github.com/thelolagemann/sm83/internal/mmu"
	"github.com/thelolagemann/sm83/internal/types"
	"github.com/thelolagemann/sm83/pkg/log"
)

// CPU represents the SM83 CPU. It is responsible for executing instructions.
type CPU struct {
	// PC is the program counter, it points to the next instruction to be executed.
	PC uint16
	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// Registers contains the 8-bit registers, the flags, as well as the
	// 16-bit register pairs.
	*types.Registers

	// Debug enables the LD B, B software breakpoint.
	Debug bool
	// DebugBreakpoint is set when a breakpoint is hit in Debug mode. The
	// host is expected to clear it.
	DebugBreakpoint bool

	bus     *mmu.MemoryBus
	log     log.Logger
	trace   bool
	bootROM *boot.ROM
}

// New creates a new CPU with all registers zeroed and an empty memory
// bus, then applies the given options.
func New(opts ...Opt) *CPU {
	c := &CPU{
		Registers: types.NewRegisters(),
		bus:       mmu.NewMemoryBus(),
		log:       log.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.bootROM != nil {
		c.log.Infof("loading %s boot rom (%s)", c.bootROM.Model(), c.bootROM.Checksum())
		c.LoadBootstrap(c.bootROM.Bytes())
	}

	return c
}

// Bus returns the memory bus the CPU executes from.
func (c *CPU) Bus() *mmu.MemoryBus {
	return c.bus
}

// LoadBootstrap writes the given program at address 0x0000.
func (c *CPU) LoadBootstrap(b []byte) {
	c.bus.WriteArray(0x0000, b)
}

// Step fetches, decodes and executes a single instruction. An error is
// returned if the opcode is unknown or the instruction has no handler;
// the CPU state is left as it was at the point of failure so the host
// can inspect it.
func (c *CPU) Step() error {
	pc := c.PC
	opcode := c.readOperand()
	prefixed := opcode == Prefix
	if prefixed {
		opcode = c.readOperand()
	}

	instruction, ok := Decode(opcode, prefixed)
	if !ok {
		err := &UnknownOpcodeError{Opcode: opcode, Prefixed: prefixed, PC: pc}
		c.log.Errorf("%v", err)
		return err
	}

	if c.trace {
		c.log.Debugf("%04X: %s", pc, instruction)
	}

	if err := c.execute(instruction, pc); err != nil {
		c.log.Errorf("%v", err)
		return err
	}

	if c.trace {
		c.log.Debugf("A: %02X F: %02X B: %02X C: %02X D: %02X E: %02X H: %02X L: %02X SP: %04X PC: %04X",
			c.A, c.Flags.Byte(), c.B, c.C, c.D, c.E, c.H, c.L, c.SP, c.PC)
	}

	// LD B, B is used by test ROMs as a software breakpoint
	if c.Debug && instruction.Op == OpLD && instruction.Target == OperandB && instruction.Source == OperandB {
		c.DebugBreakpoint = true
	}

	return nil
}

// readOperand reads the byte at PC and advances PC.
func (c *CPU) readOperand() uint8 {
	value := c.bus.ReadByte(c.PC)
	c.PC++
	return value
}

// readOperand16 reads a little-endian word at PC and advances PC past it.
func (c *CPU) readOperand16() uint16 {
	low := c.readOperand()
	high := c.readOperand()
	return uint16(high)<<8 | uint16(low)
}

var _ types.Stater = (*CPU)(nil)

// Load restores the CPU and its memory from the given state.
func (c *CPU) Load(s *types.State) {
	c.A = s.Read8()
	c.Flags.SetByte(s.Read8())
	c.B = s.Read8()
	c.C = s.Read8()
	c.D = s.Read8()
	c.E = s.Read8()
	c.H = s.Read8()
	c.L = s.Read8()
	c.SP = s.Read16()
	c.PC = s.Read16()
	c.Debug = s.ReadBool()
	c.DebugBreakpoint = s.ReadBool()
	c.bus.Load(s)
}

// Save writes the CPU and its memory to the given state.
func (c *CPU) Save(s *types.State) {
	s.Write8(c.A)
	s.Write8(c.Flags.Byte())
	s.Write8(c.B)
	s.Write8(c.C)
	s.Write8(c.D)
	s.Write8(c.E)
	s.Write8(c.H)
	s.Write8(c.L)
	s.Write16(c.SP)
	s.Write16(c.PC)
	s.WriteBool(c.Debug)
	s.WriteBool(c.DebugBreakpoint)
	c.bus.Save(s)
}
