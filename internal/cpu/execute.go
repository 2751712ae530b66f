package cpu

// Execute runs a single decoded instruction against the CPU state. Any
// immediates are read from PC. An *UnimplementedError is returned if the
// instruction's operand combination has no handler.
func (c *CPU) Execute(instruction Instruction) error {
	return c.execute(instruction, c.PC)
}

func (c *CPU) execute(in Instruction, pc uint16) error {
	if !c.dispatch(in) {
		return &UnimplementedError{Instruction: in, PC: pc}
	}
	return nil
}

// dispatch performs the instruction and reports whether a handler existed
// for it.
func (c *CPU) dispatch(in Instruction) bool {
	switch in.Op {
	case OpNOP:
		return true

	// loads
	case OpLD:
		return c.load(in)
	case OpLDH:
		return c.loadHigh(in)
	case OpLDN16:
		return c.loadRegister16(in.Target)
	case OpLD16:
		return c.load16(in)
	case OpLDHLSP:
		c.HL.SetUint16(c.addSPSigned())
		return true

	// arithmetic and logic
	case OpINC, OpDEC:
		return c.incDec(in)
	case OpADD, OpADC, OpSUB, OpSBC, OpAND, OpXOR, OpOR, OpCP:
		return c.arithmetic(in)
	case OpADDHL:
		if in.Source == OperandAF || !in.Source.is16Bit() {
			return false
		}
		nn, _ := c.read16(in.Source)
		c.addHL(nn)
		return true
	case OpADDSP:
		c.SP = c.addSPSigned()
		return true
	case OpDAA:
		c.decimalAdjust()
		return true
	case OpCPL:
		c.complement()
		return true
	case OpSCF:
		c.setCarryFlag()
		return true
	case OpCCF:
		c.complementCarryFlag()
		return true

	// accumulator rotates
	case OpRLCA:
		c.rotateAccumulator(c.rotateLeftCarry)
		return true
	case OpRRCA:
		c.rotateAccumulator(c.rotateRightCarry)
		return true
	case OpRLA:
		c.rotateAccumulator(c.rotateLeftThroughCarry)
		return true
	case OpRRA:
		c.rotateAccumulator(c.rotateRightThroughCarry)
		return true

	// control flow
	case OpJR, OpJP, OpCALL, OpRET:
		return c.controlFlow(in)
	case OpRST:
		if in.Vector&^0x38 != 0 {
			return false
		}
		c.restart(in.Vector)
		return true
	case OpPUSH:
		if !in.Source.is16Bit() {
			return false
		}
		value, _ := c.read16(in.Source)
		c.pushStack(value)
		return true
	case OpPOP:
		if !in.Target.is16Bit() {
			return false
		}
		return c.write16(in.Target, c.popStack())

	// prefixed
	case OpRLC:
		return c.modify(in.Target, c.rotateLeftCarry)
	case OpRRC:
		return c.modify(in.Target, c.rotateRightCarry)
	case OpRL:
		return c.modify(in.Target, c.rotateLeftThroughCarry)
	case OpRR:
		return c.modify(in.Target, c.rotateRightThroughCarry)
	case OpSLA:
		return c.modify(in.Target, c.shiftLeftArithmetic)
	case OpSRA:
		return c.modify(in.Target, c.shiftRightArithmetic)
	case OpSWAP:
		return c.modify(in.Target, c.swap)
	case OpSRL:
		return c.modify(in.Target, c.shiftRightLogical)
	case OpBIT:
		if in.Bit > 7 || !in.Source.modifiable() {
			return false
		}
		value, _ := c.read8(in.Source)
		c.testBit(value, in.Bit)
		return true
	case OpRES:
		if in.Bit > 7 {
			return false
		}
		return c.modify(in.Target, func(v uint8) uint8 { return c.resetBit(v, in.Bit) })
	case OpSET:
		if in.Bit > 7 {
			return false
		}
		return c.modify(in.Target, func(v uint8) uint8 { return c.setBit(v, in.Bit) })
	}

	return false
}

// modify applies fn to the byte selected by target and writes the result
// back to the same place.
func (c *CPU) modify(target Operand, fn func(uint8) uint8) bool {
	if !target.modifiable() {
		return false
	}
	value, ok := c.read8(target)
	if !ok {
		return false
	}
	return c.write8(target, fn(value))
}

// incDec handles the 8-bit and 16-bit forms of INC and DEC. The 16-bit
// forms do not affect the flags.
//
//	INC n / DEC n
//	INC nn / DEC nn
//	nn = BC, DE, HL, SP
func (c *CPU) incDec(in Instruction) bool {
	if in.Target.is16Bit() {
		if in.Target == OperandAF {
			return false
		}
		value, _ := c.read16(in.Target)
		if in.Op == OpINC {
			value++
		} else {
			value--
		}
		return c.write16(in.Target, value)
	}

	if in.Op == OpINC {
		return c.modify(in.Target, c.increment)
	}
	return c.modify(in.Target, c.decrement)
}

// arithmetic runs one of the eight accumulator ALU operations.
func (c *CPU) arithmetic(in Instruction) bool {
	if in.Target != OperandA || !in.Source.readable8() {
		return false
	}
	n, ok := c.read8(in.Source)
	if !ok {
		return false
	}

	switch in.Op {
	case OpADD:
		c.add(n, false)
	case OpADC:
		c.add(n, true)
	case OpSUB:
		c.sub(n, false)
	case OpSBC:
		c.sub(n, true)
	case OpAND:
		c.and(n)
	case OpXOR:
		c.xor(n)
	case OpOR:
		c.or(n)
	case OpCP:
		c.compare(n)
	}
	return true
}

// controlFlow runs the conditional jump, call and return instructions.
func (c *CPU) controlFlow(in Instruction) bool {
	taken, ok := c.condition(in.Cond)
	if !ok {
		return false
	}

	switch in.Op {
	case OpJR:
		c.jumpRelative(taken)
	case OpJP:
		switch in.Source {
		case OperandN16:
			c.jumpAbsolute(taken)
		case OperandHL:
			if in.Cond != CondAlways {
				return false
			}
			c.PC = c.HL.Uint16()
		default:
			return false
		}
	case OpCALL:
		c.call(taken)
	case OpRET:
		c.ret(taken)
	}
	return true
}
