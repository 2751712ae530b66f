package cpu

import "github.com/thelolagemann/sm83/internal/types"

// read8 returns the 8-bit value selected by op. Immediates are consumed
// from PC, and (HL+)/(HL-) adjust HL after the access. The second return
// value is false if op cannot be read as a byte.
func (c *CPU) read8(op Operand) (uint8, bool) {
	switch op {
	case OperandA:
		return c.A, true
	case OperandB:
		return c.B, true
	case OperandC:
		return c.C, true
	case OperandD:
		return c.D, true
	case OperandE:
		return c.E, true
	case OperandH:
		return c.H, true
	case OperandL:
		return c.L, true
	case OperandN8:
		return c.readOperand(), true
	case OperandCMem:
		return c.bus.ReadByte(types.HighPage + uint16(c.C)), true
	case OperandN8Mem:
		return c.bus.ReadByte(types.HighPage + uint16(c.readOperand())), true
	}

	address, ok := c.address(op)
	if !ok {
		return 0, false
	}
	value := c.bus.ReadByte(address)
	c.postIndex(op)
	return value, true
}

// write8 stores value at the location selected by op. It returns false
// if op cannot be written as a byte.
func (c *CPU) write8(op Operand, value uint8) bool {
	switch op {
	case OperandA:
		c.A = value
	case OperandB:
		c.B = value
	case OperandC:
		c.C = value
	case OperandD:
		c.D = value
	case OperandE:
		c.E = value
	case OperandH:
		c.H = value
	case OperandL:
		c.L = value
	case OperandCMem:
		c.bus.WriteByte(types.HighPage+uint16(c.C), value)
	case OperandN8Mem:
		c.bus.WriteByte(types.HighPage+uint16(c.readOperand()), value)
	default:
		address, ok := c.address(op)
		if !ok {
			return false
		}
		c.bus.WriteByte(address, value)
		c.postIndex(op)
	}
	return true
}

// address resolves a memory operand addressed through a register pair
// or a 16-bit immediate.
func (c *CPU) address(op Operand) (uint16, bool) {
	switch op {
	case OperandBCMem:
		return c.BC.Uint16(), true
	case OperandDEMem:
		return c.DE.Uint16(), true
	case OperandHLMem, OperandHLIMem, OperandHLDMem:
		return c.HL.Uint16(), true
	case OperandN16Mem:
		return c.readOperand16(), true
	}
	return 0, false
}

// postIndex applies the HL adjustment of (HL+) and (HL-).
func (c *CPU) postIndex(op Operand) {
	switch op {
	case OperandHLIMem:
		c.HL.SetUint16(c.HL.Uint16() + 1)
	case OperandHLDMem:
		c.HL.SetUint16(c.HL.Uint16() - 1)
	}
}

// read16 returns the value of a 16-bit register or immediate.
func (c *CPU) read16(op Operand) (uint16, bool) {
	switch op {
	case OperandAF:
		return c.AF(), true
	case OperandBC:
		return c.BC.Uint16(), true
	case OperandDE:
		return c.DE.Uint16(), true
	case OperandHL:
		return c.HL.Uint16(), true
	case OperandSP:
		return c.SP, true
	case OperandN16:
		return c.readOperand16(), true
	}
	return 0, false
}

// write16 stores value in a 16-bit register.
func (c *CPU) write16(op Operand, value uint16) bool {
	switch op {
	case OperandAF:
		c.SetAF(value)
	case OperandBC:
		c.BC.SetUint16(value)
	case OperandDE:
		c.DE.SetUint16(value)
	case OperandHL:
		c.HL.SetUint16(value)
	case OperandSP:
		c.SP = value
	default:
		return false
	}
	return true
}

// load copies an 8-bit value from source to target.
//
//	LD n, n
//	LD n, d8
//	LD n, (rr)
//	LD (rr), n
//	LD (HL+/-), A
//	LD A, (HL+/-)
//	LD (a16), A
//	LD A, (a16)
//
// Flags affected: none.
func (c *CPU) load(in Instruction) bool {
	if !in.Source.readable8() || !in.Target.writable8() {
		return false
	}
	value, ok := c.read8(in.Source)
	if !ok {
		return false
	}
	return c.write8(in.Target, value)
}

// loadHigh is load restricted to the 0xFF00 - 0xFFFF page.
//
//	LDH (a8), A
//	LDH A, (a8)
//	LD (C), A
//	LD A, (C)
func (c *CPU) loadHigh(in Instruction) bool {
	if !in.Target.highPage() && !in.Source.highPage() {
		return false
	}
	return c.load(in)
}

// loadRegister16 loads a little-endian 16-bit immediate into SP or a
// register pair.
//
//	LD nn, d16
//	nn = BC, DE, HL, SP
func (c *CPU) loadRegister16(target Operand) bool {
	if target == OperandAF || !target.is16Bit() {
		return false
	}
	return c.write16(target, c.readOperand16())
}

// load16 handles the two remaining 16-bit loads.
//
//	LD (a16), SP
//	LD SP, HL
func (c *CPU) load16(in Instruction) bool {
	switch {
	case in.Target == OperandN16Mem && in.Source == OperandSP:
		address := c.readOperand16()
		c.bus.WriteByte(address, uint8(c.SP&0xFF))
		c.bus.WriteByte(address+1, uint8(c.SP>>8))
		return true
	case in.Target == OperandSP && in.Source == OperandHL:
		c.SP = c.HL.Uint16()
		return true
	}
	return false
}
