package cpu

import "github.com/FiloSanza/intel-8080/bit"

// Flag positions within the F register.
const (
	FlagSign   = 7
	FlagZero   = 6
	FlagAC     = 4
	FlagParity = 2
	FlagCarry  = 0
)

// Registers holds the programmer-visible register file: the eight
// 8-bit registers, the stack pointer and the program counter. B/C, D/E
// and H/L are stored as independent bytes and combined into their
// 16-bit pair view on access, which avoids aliasing bugs when only one
// half of a pair changes.
type Registers struct {
	A, F, B, C, D, E, H, L uint8
	SP, PC                 uint16
}

// Reset puts the register file into its power-up state: every 8-bit
// register and SP/PC at zero, F at 0000_0010 (bit 1 always reads 1 on
// real silicon).
func (r *Registers) Reset() {
	*r = Registers{F: 0x02}
}

// BC returns the 16-bit view of B and C, B in the high byte.
func (r *Registers) BC() uint16 { return uint16(r.B)<<8 | uint16(r.C) }

// SetBC writes B and C from the high/low bytes of value.
func (r *Registers) SetBC(value uint16) {
	r.B = uint8(value >> 8)
	r.C = uint8(value)
}

// DE returns the 16-bit view of D and E, D in the high byte.
func (r *Registers) DE() uint16 { return uint16(r.D)<<8 | uint16(r.E) }

// SetDE writes D and E from the high/low bytes of value.
func (r *Registers) SetDE(value uint16) {
	r.D = uint8(value >> 8)
	r.E = uint8(value)
}

// HL returns the 16-bit view of H and L, H in the high byte.
func (r *Registers) HL() uint16 { return uint16(r.H)<<8 | uint16(r.L) }

// SetHL writes H and L from the high/low bytes of value.
func (r *Registers) SetHL(value uint16) {
	r.H = uint8(value >> 8)
	r.L = uint8(value)
}

// AF returns the PSW view: A in the high byte, flags in the low byte.
func (r *Registers) AF() uint16 { return uint16(r.A)<<8 | uint16(r.F) }

// SetAF writes A and F from the high/low bytes of value, normalizing
// F's reserved bits: bit 1 forced to 1, bits 3 and 5 forced to 0.
func (r *Registers) SetAF(value uint16) {
	r.A = uint8(value >> 8)
	r.F = uint8(value&0xD5) | 0x02
}

// Flag returns whether the given flag bit is set in F.
func (r *Registers) Flag(pos uint) bool {
	return bit.Get(r.F, pos)
}

// SetFlag sets or clears the given flag bit in F.
func (r *Registers) SetFlag(pos uint, value bool) {
	if value {
		r.F = bit.Set(r.F, pos)
	} else {
		r.F = bit.Clear(r.F, pos)
	}
}
