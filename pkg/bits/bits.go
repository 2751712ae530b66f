// Package bits provides helpers for working with individual bits of a
// byte. Bit 0 is the least significant bit.
package bits

// Val returns the value of the bit at the given index.
func Val(b uint8, i uint8) uint8 {
	return (b >> i) & 1
}

// Reset returns b with the bit at the given index cleared.
func Reset(b, i uint8) uint8 {
	return b &^ (1 << i)
}

// Set returns b with the bit at the given index set.
func Set(b, i uint8) uint8 {
	return b | (1 << i)
}

// Test reports whether the bit at the given index is set.
func Test(b, i uint8) bool {
	return (b>>i)&1 != 0
}

// SetTo sets or clears the bit at the given index depending on v.
func SetTo(b, i uint8, v bool) uint8 {
	if v {
		return Set(b, i)
	}
	return Reset(b, i)
}
