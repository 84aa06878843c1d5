package cpu

import "math/bits"

// parity reports whether v has an even number of set bits.
func parity(v uint8) bool {
	return bits.OnesCount8(v)%2 == 0
}

// setZSP sets the Zero, Sign and Parity flags from result, the common
// tail shared by most ALU operations.
func (c *CPU) setZSP(result uint8) {
	c.Reg.SetFlag(FlagZero, result == 0)
	c.Reg.SetFlag(FlagSign, result&0x80 != 0)
	c.Reg.SetFlag(FlagParity, parity(result))
}

// add implements ADD: A = A + value. All flags affected.
func (c *CPU) add(value uint8) {
	a := c.Reg.A
	result := a + value
	c.setZSP(result)
	c.Reg.SetFlag(FlagAC, (a&0x0F)+(value&0x0F) > 0x0F)
	c.Reg.SetFlag(FlagCarry, uint16(a)+uint16(value) > 0xFF)
	c.Reg.A = result
}

// adc implements ADC: A = A + value + carry-in. All flags affected.
func (c *CPU) adc(value uint8) {
	a := c.Reg.A
	carry := uint8(0)
	if c.Reg.Flag(FlagCarry) {
		carry = 1
	}
	result := a + value + carry
	c.setZSP(result)
	c.Reg.SetFlag(FlagAC, (a&0x0F)+(value&0x0F)+carry > 0x0F)
	c.Reg.SetFlag(FlagCarry, uint16(a)+uint16(value)+uint16(carry) > 0xFF)
	c.Reg.A = result
}

// sub implements SUB: A = A - value. All flags affected.
func (c *CPU) sub(value uint8) {
	a := c.Reg.A
	result := a - value
	c.setZSP(result)
	c.Reg.SetFlag(FlagAC, (a&0x0F) >= (value&0x0F))
	c.Reg.SetFlag(FlagCarry, a < value)
	c.Reg.A = result
}

// sbb implements SBB: A = A - value - borrow-in. All flags affected.
func (c *CPU) sbb(value uint8) {
	a := c.Reg.A
	borrow := uint8(0)
	if c.Reg.Flag(FlagCarry) {
		borrow = 1
	}
	result := a - value - borrow
	c.setZSP(result)
	c.Reg.SetFlag(FlagAC, int(a&0x0F)-int(value&0x0F)-int(borrow) >= 0)
	c.Reg.SetFlag(FlagCarry, uint16(a) < uint16(value)+uint16(borrow))
	c.Reg.A = result
}

// inr implements INR: returns value+1, setting Z/S/P/AC. Carry is not
// affected.
func (c *CPU) inr(value uint8) uint8 {
	result := value + 1
	c.setZSP(result)
	c.Reg.SetFlag(FlagAC, value&0x0F == 0x0F)
	return result
}

// dcr implements DCR: returns value-1, setting Z/S/P/AC. Carry is not
// affected.
func (c *CPU) dcr(value uint8) uint8 {
	result := value - 1
	c.setZSP(result)
	c.Reg.SetFlag(FlagAC, value&0x0F != 0)
	return result
}

// dad implements DAD: HL = HL + value. Only Carry is affected.
func (c *CPU) dad(value uint16) {
	hl := c.Reg.HL()
	result := hl + value
	c.Reg.SetFlag(FlagCarry, uint32(hl)+uint32(value) > 0xFFFF)
	c.Reg.SetHL(result)
}

// daa implements DAA: BCD-adjusts A. Z/S/P reflect the adjusted A;
// Carry may be forced on by the high-nibble correction even when the
// low-nibble correction alone wouldn't set it.
func (c *CPU) daa() {
	var toAdd uint8
	carry := c.Reg.Flag(FlagCarry)
	low := c.Reg.A & 0x0F
	high := c.Reg.A >> 4

	if low > 9 || c.Reg.Flag(FlagAC) {
		toAdd += 0x06
	}
	if high > 9 || carry || (high >= 9 && low > 9) {
		toAdd += 0x60
		carry = true
	}

	c.add(toAdd)
	c.Reg.SetFlag(FlagCarry, carry)
}

// ana implements ANA: A = A & value. Carry is cleared; AC is set from
// the OR of the operands' bit 3 (the documented 8080/8085 quirk, not
// the carry-out of a real bitwise AND).
func (c *CPU) ana(value uint8) {
	a := c.Reg.A
	result := a & value
	c.setZSP(result)
	c.Reg.SetFlag(FlagAC, (a|value)&0x08 != 0)
	c.Reg.SetFlag(FlagCarry, false)
	c.Reg.A = result
}

// xra implements XRA: A = A ^ value. AC and Carry are cleared.
func (c *CPU) xra(value uint8) {
	result := c.Reg.A ^ value
	c.setZSP(result)
	c.Reg.SetFlag(FlagAC, false)
	c.Reg.SetFlag(FlagCarry, false)
	c.Reg.A = result
}

// ora implements ORA: A = A | value. AC and Carry are cleared.
func (c *CPU) ora(value uint8) {
	result := c.Reg.A | value
	c.setZSP(result)
	c.Reg.SetFlag(FlagAC, false)
	c.Reg.SetFlag(FlagCarry, false)
	c.Reg.A = result
}

// cmp implements CMP: performs sub for its flag side effects only: A
// is restored to its pre-operation value.
func (c *CPU) cmp(value uint8) {
	a := c.Reg.A
	c.sub(value)
	c.Reg.A = a
}

// rlc implements RLC: rotate A left, old bit 7 into Carry and bit 0.
// Only Carry is affected.
func (c *CPU) rlc() {
	carry := c.Reg.A&0x80 != 0
	c.Reg.SetFlag(FlagCarry, carry)
	c.Reg.A = c.Reg.A<<1 | b2u8(carry)
}

// rrc implements RRC: rotate A right, old bit 0 into Carry and bit 7.
// Only Carry is affected.
func (c *CPU) rrc() {
	carry := c.Reg.A&0x01 != 0
	c.Reg.SetFlag(FlagCarry, carry)
	c.Reg.A = b2u8(carry)<<7 | c.Reg.A>>1
}

// ral implements RAL: rotate A left through Carry. Only Carry is
// affected.
func (c *CPU) ral() {
	old := c.Reg.Flag(FlagCarry)
	c.Reg.SetFlag(FlagCarry, c.Reg.A&0x80 != 0)
	c.Reg.A = c.Reg.A<<1 | b2u8(old)
}

// rar implements RAR: rotate A right through Carry. Only Carry is
// affected. This is the spec-mandated (CY<<7)|(A>>1) form, not the
// masking bug some reference implementations carry.
func (c *CPU) rar() {
	old := c.Reg.Flag(FlagCarry)
	c.Reg.SetFlag(FlagCarry, c.Reg.A&0x01 != 0)
	c.Reg.A = b2u8(old)<<7 | c.Reg.A>>1
}

// cma implements CMA: A = ^A. No flags affected.
func (c *CPU) cma() {
	c.Reg.A = ^c.Reg.A
}

// cmc implements CMC: Carry = !Carry. Only Carry is affected.
func (c *CPU) cmc() {
	c.Reg.SetFlag(FlagCarry, !c.Reg.Flag(FlagCarry))
}

// stc implements STC: Carry = 1. Only Carry is affected.
func (c *CPU) stc() {
	c.Reg.SetFlag(FlagCarry, true)
}

func b2u8(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
