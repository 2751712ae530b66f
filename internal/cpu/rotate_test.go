package cpu

import "testing"

func TestInstruction_Rotate(t *testing.T) {
	tests := []struct {
		name    string
		program []uint8
		value   uint8
		carry   bool
		want    uint8
		zero    bool
		carried bool
	}{
		{"RLC B", []uint8{0xCB, 0x00}, 0x85, false, 0x0B, false, true},
		{"RLC B zero", []uint8{0xCB, 0x00}, 0x00, true, 0x00, true, false},
		{"RRC B", []uint8{0xCB, 0x08}, 0x01, false, 0x80, false, true},
		{"RL B", []uint8{0xCB, 0x10}, 0x80, false, 0x00, true, true},
		{"RL B carry in", []uint8{0xCB, 0x10}, 0x11, true, 0x23, false, false},
		{"RR B", []uint8{0xCB, 0x18}, 0x01, false, 0x00, true, true},
		{"RR B carry in", []uint8{0xCB, 0x18}, 0x8A, true, 0xC5, false, false},
		{"SLA B", []uint8{0xCB, 0x20}, 0x80, false, 0x00, true, true},
		{"SLA B carry ignored", []uint8{0xCB, 0x20}, 0x41, true, 0x82, false, false},
		{"SRA B", []uint8{0xCB, 0x28}, 0x8A, false, 0xC5, false, false},
		{"SRA B carry out", []uint8{0xCB, 0x28}, 0x01, false, 0x00, true, true},
		{"SWAP B", []uint8{0xCB, 0x30}, 0xF1, true, 0x1F, false, false},
		{"SWAP B zero", []uint8{0xCB, 0x30}, 0x00, false, 0x00, true, false},
		{"SRL B", []uint8{0xCB, 0x38}, 0xFF, false, 0x7F, false, true},
		{"SRL B zero", []uint8{0xCB, 0x38}, 0x01, false, 0x00, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			c.B = tt.value
			c.Carry = tt.carry
			c.Subtract, c.HalfCarry = true, true
			step(t, c, 0x0000, tt.program...)
			if c.B != tt.want {
				t.Errorf("expected B to be 0x%02X, got 0x%02X", tt.want, c.B)
			}
			expectFlags(t, c, tt.zero, false, false, tt.carried)
		})
	}
}

func TestInstruction_RotateHL(t *testing.T) {
	// 0xCB 0x06 - RLC (HL)
	c := New()
	c.HL.SetUint16(0xC100)
	c.Bus().WriteByte(0xC100, 0x80)
	step(t, c, 0x0000, 0xCB, 0x06)
	if v := c.Bus().ReadByte(0xC100); v != 0x01 {
		t.Errorf("expected 0x01 at 0xC100, got 0x%02X", v)
	}
	if c.HL.Uint16() != 0xC100 {
		t.Errorf("expected HL to be unchanged, got 0x%04X", c.HL.Uint16())
	}
	expectFlags(t, c, false, false, false, true)
}

func TestInstruction_RotateAccumulator(t *testing.T) {
	tests := []struct {
		name    string
		opcode  uint8
		value   uint8
		carry   bool
		want    uint8
		carried bool
	}{
		{"RLCA", 0x07, 0x85, false, 0x0B, true},
		{"RLCA zero", 0x07, 0x00, false, 0x00, false},
		{"RRCA", 0x0F, 0x3B, false, 0x9D, true},
		{"RLA", 0x17, 0x95, true, 0x2B, true},
		{"RLA zero", 0x17, 0x00, false, 0x00, false},
		{"RLA carry out", 0x17, 0x80, false, 0x00, true},
		{"RRA", 0x1F, 0x81, false, 0x40, true},
		{"RRA carry in", 0x1F, 0x00, true, 0x80, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			c.A = tt.value
			c.Carry = tt.carry
			c.Zero = true
			step(t, c, 0x0000, tt.opcode)
			if c.A != tt.want {
				t.Errorf("expected A to be 0x%02X, got 0x%02X", tt.want, c.A)
			}
			// the accumulator forms never set Z
			expectFlags(t, c, false, false, false, tt.carried)
		})
	}
}
