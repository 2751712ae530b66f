package types

import "github.com/thelolagemann/sm83/pkg/bits"

// Bit positions of the flags within the F register.
const (
	FlagZero      uint8 = 7
	FlagSubtract  uint8 = 6
	FlagHalfCarry uint8 = 5
	FlagCarry     uint8 = 4
)

// Flags holds the four condition flags of the CPU. They are only
// changed as a side effect of arithmetic, logic, rotate, shift, bit and
// compare instructions (and POP AF), never by plain loads.
type Flags struct {
	Zero      bool
	Subtract  bool
	HalfCarry bool
	Carry     bool
}

// Set assigns all four flags at once.
func (f *Flags) Set(zero, subtract, halfCarry, carry bool) {
	f.Zero = zero
	f.Subtract = subtract
	f.HalfCarry = halfCarry
	f.Carry = carry
}

// Byte packs the flags into the layout of the F register. The low
// nibble is always zero.
func (f Flags) Byte() uint8 {
	var v uint8
	v = bits.SetTo(v, FlagZero, f.Zero)
	v = bits.SetTo(v, FlagSubtract, f.Subtract)
	v = bits.SetTo(v, FlagHalfCarry, f.HalfCarry)
	v = bits.SetTo(v, FlagCarry, f.Carry)
	return v
}

// SetByte unpacks an F register value into the flags.
func (f *Flags) SetByte(v uint8) {
	f.Zero = bits.Test(v, FlagZero)
	f.Subtract = bits.Test(v, FlagSubtract)
	f.HalfCarry = bits.Test(v, FlagHalfCarry)
	f.Carry = bits.Test(v, FlagCarry)
}
