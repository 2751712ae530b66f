package cpu

// pushStack pushes a 16 bit value onto the stack, high byte first.
func (c *CPU) pushStack(value uint16) {
	c.SP--
	c.bus.WriteByte(c.SP, uint8(value>>8))
	c.SP--
	c.bus.WriteByte(c.SP, uint8(value&0xFF))
}

// popStack pops a 16 bit value off the stack, low byte first.
func (c *CPU) popStack() uint16 {
	lower := uint16(c.bus.ReadByte(c.SP))
	c.SP++
	upper := uint16(c.bus.ReadByte(c.SP)) << 8
	c.SP++
	return lower | upper
}

// condition evaluates a jump condition against the flags.
func (c *CPU) condition(cond Condition) (bool, bool) {
	switch cond {
	case CondAlways:
		return true, true
	case CondNZ:
		return !c.Zero, true
	case CondZ:
		return c.Zero, true
	case CondNC:
		return !c.Carry, true
	case CondC:
		return c.Carry, true
	}
	return false, false
}

// jumpRelative reads a signed displacement and, if the condition holds,
// adds it to the address following the displacement. The displacement
// is consumed either way.
//
//	JR e
//	JR cc, e
//	cc = NZ, Z, NC, C
//	e = 8-bit signed immediate value
func (c *CPU) jumpRelative(taken bool) {
	offset := c.bus.ReadSignedByte(c.PC)
	c.PC++
	if taken {
		c.PC += uint16(offset)
	}
}

// jumpAbsolute reads a 16-bit address and jumps to it if the condition
// holds.
//
//	JP nn
//	JP cc, nn
//	cc = NZ, Z, NC, C
//	nn = 16-bit immediate value
func (c *CPU) jumpAbsolute(taken bool) {
	address := c.readOperand16()
	if taken {
		c.PC = address
	}
}

// call reads a 16-bit address and, if the condition holds, pushes the
// address of the next instruction onto the stack and jumps to it.
//
//	CALL nn
//	CALL cc, nn
//	cc = NZ, Z, NC, C
//	nn = 16-bit immediate value
func (c *CPU) call(taken bool) {
	address := c.readOperand16()
	if taken {
		c.pushStack(c.PC)
		c.PC = address
	}
}

// ret pops the top two bytes off the stack and jumps to that address if
// the condition holds.
//
//	RET
//	RET cc
//	cc = NZ, Z, NC, C
func (c *CPU) ret(taken bool) {
	if taken {
		c.PC = c.popStack()
	}
}

// restart pushes PC onto the stack and jumps to one of the fixed vectors
// 0x00, 0x08, ... 0x38.
//
//	RST n
func (c *CPU) restart(vector uint8) {
	c.pushStack(c.PC)
	c.PC = uint16(vector)
}
