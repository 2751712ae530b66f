package types

import "testing"

func TestState(t *testing.T) {
	s := NewState()
	s.Write8(0x12)
	s.Write16(0xBEEF)
	s.WriteBool(true)
	s.WriteData([]byte{1, 2, 3})

	if len(s.Bytes()) != 7 {
		t.Fatalf("expected 7 bytes, got %d", len(s.Bytes()))
	}

	r := StateFromBytes(s.Bytes())
	if v := r.Read8(); v != 0x12 {
		t.Errorf("expected 0x12, got 0x%02X", v)
	}
	if v := r.Read16(); v != 0xBEEF {
		t.Errorf("expected 0xBEEF, got 0x%04X", v)
	}
	if !r.ReadBool() {
		t.Errorf("expected true, got false")
	}
	p := make([]byte, 3)
	r.ReadData(p)
	if p[0] != 1 || p[1] != 2 || p[2] != 3 {
		t.Errorf("expected [1 2 3], got %v", p)
	}
	if r.Read8() != 0 || r.ReadBool() {
		t.Errorf("expected reads past the end to return 0")
	}
}
