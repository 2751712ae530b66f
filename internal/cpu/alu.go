package cpu

// add adds n (and the carry flag if useCarry is set) to the A Register.
//
//	ADD A, n
//	ADC A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) add(n uint8, useCarry bool) {
	var carry uint8
	if useCarry && c.Carry {
		carry = 1
	}
	sum := uint16(c.A) + uint16(n) + uint16(carry)
	halfCarry := (c.A&0xF)+(n&0xF)+carry > 0xF
	c.A = uint8(sum)
	c.Flags.Set(c.A == 0, false, halfCarry, sum > 0xFF)
}

// sub subtracts n (and the carry flag if useCarry is set) from the A
// Register.
//
//	SUB n
//	SBC A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if no borrow from bit 4.
//	C - Set if no borrow.
func (c *CPU) sub(n uint8, useCarry bool) {
	var carry uint8
	if useCarry && c.Carry {
		carry = 1
	}
	diff := int16(c.A) - int16(n) - int16(carry)
	halfCarry := int16(c.A&0xF)-int16(n&0xF)-int16(carry) < 0
	c.A = uint8(diff)
	c.Flags.Set(c.A == 0, true, halfCarry, diff < 0)
}

// and performs a bitwise AND operation on n and the A Register.
//
//	AND n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set.
//	C - Reset.
func (c *CPU) and(n uint8) {
	c.A &= n
	c.Flags.Set(c.A == 0, false, true, false)
}

// or performs a bitwise OR operation on n and the A Register.
//
//	OR n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) or(n uint8) {
	c.A |= n
	c.Flags.Set(c.A == 0, false, false, false)
}

// xor performs a bitwise XOR operation on n and the A Register.
//
//	XOR n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) xor(n uint8) {
	c.A ^= n
	c.Flags.Set(c.A == 0, false, false, false)
}

// compare compares n to the A Register. A is not modified.
//
//	CP n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if A == n.
//	N - Set.
//	H - Set if no borrow from bit 4.
//	C - Set if A < n.
func (c *CPU) compare(n uint8) {
	c.Flags.Set(c.A == n, true, c.A&0xF < n&0xF, c.A < n)
}

// increment n by 1 and set the flags accordingly.
//
//	INC n
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Not affected.
func (c *CPU) increment(n uint8) uint8 {
	incremented := n + 0x01
	c.Flags.Set(incremented == 0, false, n&0xF == 0xF, c.Carry)
	return incremented
}

// decrement n by 1 and set the flags accordingly.
//
//	DEC n
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Not affected.
func (c *CPU) decrement(n uint8) uint8 {
	decremented := n - 0x01
	c.Flags.Set(decremented == 0, true, n&0xF == 0x0, c.Carry)
	return decremented
}

// addHL adds nn to the HL RegisterPair.
//
//	ADD HL, nn
//	nn = BC, DE, HL, SP
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Set if carry from bit 11.
//	C - Set if carry from bit 15.
func (c *CPU) addHL(nn uint16) {
	hl := c.HL.Uint16()
	sum := uint32(hl) + uint32(nn)
	c.Flags.Set(c.Zero, false, (hl&0xFFF)+(nn&0xFFF) > 0xFFF, sum > 0xFFFF)
	c.HL.SetUint16(uint16(sum))
}

// addSPSigned returns SP plus the signed immediate that follows the
// opcode. The flags are computed from the unsigned addition of the low
// byte of SP and the immediate.
//
//	ADD SP, r8
//	LD HL, SP+r8
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) addSPSigned() uint16 {
	value := c.readOperand()
	result := c.SP + uint16(int8(value))
	c.Flags.Set(false, false, (c.SP&0xF)+uint16(value&0xF) > 0xF, (c.SP&0xFF)+uint16(value) > 0xFF)
	return result
}

// decimalAdjust corrects A to a binary coded decimal after an addition or
// subtraction.
//
//	DAA
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Not affected.
//	H - Reset.
//	C - Set or reset according to operation.
func (c *CPU) decimalAdjust() {
	if !c.Subtract {
		if c.Carry || c.A > 0x99 {
			c.A += 0x60
			c.Carry = true
		}
		if c.HalfCarry || c.A&0xF > 0x9 {
			c.A += 0x06
		}
	} else {
		if c.Carry {
			c.A -= 0x60
		}
		if c.HalfCarry {
			c.A -= 0x06
		}
	}
	c.Zero = c.A == 0
	c.HalfCarry = false
}

// complement flips every bit of the A Register.
//
//	CPL
//
// Flags affected:
//
//	Z - Not affected.
//	N - Set.
//	H - Set.
//	C - Not affected.
func (c *CPU) complement() {
	c.A = 0xFF ^ c.A
	c.Subtract = true
	c.HalfCarry = true
}

// setCarryFlag sets the carry flag.
//
//	SCF
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Reset.
//	C - Set.
func (c *CPU) setCarryFlag() {
	c.Flags.Set(c.Zero, false, false, true)
}

// complementCarryFlag flips the carry flag.
//
//	CCF
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Reset.
//	C - Complemented.
func (c *CPU) complementCarryFlag() {
	c.Flags.Set(c.Zero, false, false, !c.Carry)
}
