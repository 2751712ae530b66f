package types

const (
	Bit0 = 1 << 0 // 0b0000_0001
	Bit7 = 1 << 7 // 0b1000_0000
)
