package types

// Register represents an SM83 Register which is used to hold an 8-bit value.
// The CPU has 8 registers: A, B, C, D, E, H, L, and F. The F register is
// special in that it is used to hold the flags, and is modelled by Flags.
type Register = uint8

// RegisterPair represents a pair of Registers which is used to hold a 16-bit
// value. A pair has no storage of its own, it is a view over two Registers.
type RegisterPair struct {
	High *Register
	Low  *Register
}

// Uint16 returns the value of the RegisterPair as an uint16.
func (r *RegisterPair) Uint16() uint16 {
	return uint16(*r.High)<<8 | uint16(*r.Low)
}

// SetUint16 sets the value of the RegisterPair to the given value.
func (r *RegisterPair) SetUint16(value uint16) {
	*r.High = uint8(value >> 8)
	*r.Low = uint8(value)
}

// Registers represents the SM83 CPU registers.
type Registers struct {
	A Register
	B Register
	C Register
	D Register
	E Register
	H Register
	L Register

	// Flags is the F register.
	Flags

	BC *RegisterPair
	DE *RegisterPair
	HL *RegisterPair
}

// NewRegisters returns a zeroed register file with its pair views
// wired up.
func NewRegisters() *Registers {
	r := &Registers{}
	r.BC = &RegisterPair{High: &r.B, Low: &r.C}
	r.DE = &RegisterPair{High: &r.D, Low: &r.E}
	r.HL = &RegisterPair{High: &r.H, Low: &r.L}
	return r
}

// AF returns the accumulator and the packed flags as a pair.
func (r *Registers) AF() uint16 {
	return uint16(r.A)<<8 | uint16(r.Flags.Byte())
}

// SetAF sets the accumulator and flags from a pair value. The low
// nibble of F does not exist in hardware and is discarded.
func (r *Registers) SetAF(value uint16) {
	r.A = uint8(value >> 8)
	r.Flags.SetByte(uint8(value))
}
