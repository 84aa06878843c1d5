package cpu

import "github.com/FiloSanza/intel-8080/memory"

// getM reads the byte addressed by HL.
func (c *CPU) getM() uint8 {
	return c.mem.Read(c.Reg.HL())
}

// setM writes the byte addressed by HL.
func (c *CPU) setM(value uint8) {
	c.mem.Write(c.Reg.HL(), value)
}

// lda implements LDA: A = M[imm16].
func (c *CPU) lda() {
	addr := c.fetchWord()
	c.Reg.A = c.mem.Read(addr)
}

// sta implements STA: M[imm16] = A.
func (c *CPU) sta() {
	addr := c.fetchWord()
	c.mem.Write(addr, c.Reg.A)
}

// lhld implements LHLD: HL = read_word(imm16).
func (c *CPU) lhld() {
	addr := c.fetchWord()
	c.Reg.SetHL(memory.ReadWord(c.mem, addr))
}

// shld implements SHLD: write_word(imm16, HL).
func (c *CPU) shld() {
	addr := c.fetchWord()
	memory.WriteWord(c.mem, addr, c.Reg.HL())
}

// ldax implements LDAX(rp): A = M[rp].
func (c *CPU) ldax(rp uint16) {
	c.Reg.A = c.mem.Read(rp)
}

// stax implements STAX(rp): M[rp] = A.
func (c *CPU) stax(rp uint16) {
	c.mem.Write(rp, c.Reg.A)
}

// xchg implements XCHG: swap H<->D and L<->E.
func (c *CPU) xchg() {
	c.Reg.H, c.Reg.D = c.Reg.D, c.Reg.H
	c.Reg.L, c.Reg.E = c.Reg.E, c.Reg.L
}

// inx implements INX rp: rp = rp + 1, wrapping mod 2^16. No flags
// affected. Present in every published 8080 opcode table though the
// data-transfer group it's adjacent to doesn't call it out by name.
func inx(rp uint16) uint16 { return rp + 1 }

// dcx implements DCX rp: rp = rp - 1, wrapping mod 2^16. No flags
// affected.
func dcx(rp uint16) uint16 { return rp - 1 }
