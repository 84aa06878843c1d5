package cpu

import (
	"testing"

	deep "github.com/go-test/deep"
)

func TestPairAccessorsRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		set  func(r *Registers, v uint16)
		get  func(r *Registers) uint16
	}{
		{"BC", (*Registers).SetBC, (*Registers).BC},
		{"DE", (*Registers).SetDE, (*Registers).DE},
		{"HL", (*Registers).SetHL, (*Registers).HL},
	}
	for _, test := range tests {
		var r Registers
		test.set(&r, 0x1234)
		if got := test.get(&r); got != 0x1234 {
			t.Errorf("%s round trip: got %.4x, want 0x1234", test.name, got)
		}
	}
}

// TestSetAFNormalizesReservedBits checks that SetAF forces F's
// reserved bits to their documented values regardless of what the
// caller supplies, the way PUSH PSW / POP PSW round trips must behave.
func TestSetAFNormalizesReservedBits(t *testing.T) {
	var r Registers
	r.SetAF(0x1200) // low byte 0x00: reserved bit 1 wrong
	if r.F != 0x02 {
		t.Errorf("F = %.2x, want 0x02 (bit 1 forced, bits 3/5 forced clear)", r.F)
	}

	r.SetAF(0x12FF) // low byte 0xFF: every flag bit set
	if r.F != 0xD7 {
		t.Errorf("F = %.2x, want 0xd7 (0xff masked to reserved pattern)", r.F)
	}
}

func TestSetAFGetAFIdempotent(t *testing.T) {
	var r Registers
	for v := 0; v < 0x10000; v += 0x101 {
		r.SetAF(uint16(v))
		snapshot := r
		r.SetAF(r.AF())
		if diff := deep.Equal(snapshot, r); diff != nil {
			t.Fatalf("SetAF(AF()) not idempotent for seed %.4x: %v", v, diff)
		}
	}
}

func TestFlagGetSet(t *testing.T) {
	var r Registers
	r.SetFlag(FlagCarry, true)
	if !r.Flag(FlagCarry) {
		t.Errorf("Carry not set")
	}
	r.SetFlag(FlagCarry, false)
	if r.Flag(FlagCarry) {
		t.Errorf("Carry not cleared")
	}
}

func TestResetClearsEverythingButReservedFlagBit(t *testing.T) {
	r := Registers{A: 1, B: 2, C: 3, D: 4, E: 5, H: 6, L: 7, SP: 8, PC: 9, F: 0xFF}
	r.Reset()
	want := Registers{F: 0x02}
	if diff := deep.Equal(want, r); diff != nil {
		t.Fatalf("Reset: %v", diff)
	}
}
