package cpu

import "testing"

func TestInstruction_BIT(t *testing.T) {
	// 0xCB 0x7C - BIT 7, H
	t.Run("BIT 7, H", func(t *testing.T) {
		c := New()
		c.Carry = true
		c.Subtract = true
		c.H = 0x7F
		step(t, c, 0x0000, 0xCB, 0x7C)
		expectFlags(t, c, true, false, true, true)

		c.H = 0x80
		step(t, c, 0x0000, 0xCB, 0x7C)
		expectFlags(t, c, false, false, true, true)
		if c.H != 0x80 {
			t.Errorf("expected H to be unchanged, got 0x%02X", c.H)
		}
	})
	// 0xCB 0x46 - BIT 0, (HL)
	t.Run("BIT 0, (HL)", func(t *testing.T) {
		c := New()
		c.HL.SetUint16(0xC000)
		c.Bus().WriteByte(0xC000, 0xFE)
		step(t, c, 0x0000, 0xCB, 0x46)
		expectFlags(t, c, true, false, true, false)
	})
	t.Run("every bit of A", func(t *testing.T) {
		for b := uint8(0); b < 8; b++ {
			c := New()
			c.A = 1 << b
			step(t, c, 0x0000, 0xCB, 0x47|b<<3)
			if c.Zero {
				t.Errorf("expected BIT %d, A to clear Z for 0x%02X", b, c.A)
			}
		}
	})
}

func TestInstruction_RES_SET(t *testing.T) {
	// 0xCB 0x87 - RES 0, A
	t.Run("RES 0, A", func(t *testing.T) {
		c := New()
		c.A = 0xFF
		c.Flags.Set(true, true, true, true)
		step(t, c, 0x0000, 0xCB, 0x87)
		if c.A != 0xFE {
			t.Errorf("expected A to be 0xFE, got 0x%02X", c.A)
		}
		expectFlags(t, c, true, true, true, true)
	})
	// 0xCB 0xBE - RES 7, (HL)
	t.Run("RES 7, (HL)", func(t *testing.T) {
		c := New()
		c.HL.SetUint16(0xC000)
		c.Bus().WriteByte(0xC000, 0xFF)
		step(t, c, 0x0000, 0xCB, 0xBE)
		if v := c.Bus().ReadByte(0xC000); v != 0x7F {
			t.Errorf("expected 0x7F at 0xC000, got 0x%02X", v)
		}
	})
	// 0xCB 0xD9 - SET 3, C
	t.Run("SET 3, C", func(t *testing.T) {
		c := New()
		step(t, c, 0x0000, 0xCB, 0xD9)
		if c.C != 0x08 {
			t.Errorf("expected C to be 0x08, got 0x%02X", c.C)
		}
		expectFlags(t, c, false, false, false, false)
	})
	// 0xCB 0xFE - SET 7, (HL)
	t.Run("SET 7, (HL)", func(t *testing.T) {
		c := New()
		c.HL.SetUint16(0xC000)
		step(t, c, 0x0000, 0xCB, 0xFE)
		if v := c.Bus().ReadByte(0xC000); v != 0x80 {
			t.Errorf("expected 0x80 at 0xC000, got 0x%02X", v)
		}
	})
}
