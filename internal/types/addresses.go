package types

// HardwareAddress represents the address of a hardware register. The
// hardware registers are mapped to memory addresses 0xFF00 - 0xFF7F &
// 0xFFFF.
type HardwareAddress = uint16

const (
	// HighPage is the base of the page addressed by LDH and LD (C).
	HighPage HardwareAddress = 0xFF00
	// LY is the address of the LY hardware register. The LY hardware
	// register holds the scanline currently being drawn. Until a video
	// collaborator is attached it behaves as plain storage.
	LY HardwareAddress = 0xFF44
)
