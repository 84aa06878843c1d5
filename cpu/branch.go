package cpu

// jmp implements JMP(cond): read imm16; if cond, PC = imm16. The two
// operand bytes are always consumed via fetchWord regardless of cond.
func (c *CPU) jmp(cond bool) {
	addr := c.fetchWord()
	if cond {
		c.Reg.PC = addr
	}
}

// call implements CALL(cond): read imm16; if cond, push the PC (which
// already points past the instruction) then jump.
func (c *CPU) call(cond bool) {
	addr := c.fetchWord()
	if cond {
		c.push(c.Reg.PC)
		c.Reg.PC = addr
	}
}

// ret implements RET(cond): if cond, pop PC from the stack.
func (c *CPU) ret(cond bool) {
	if cond {
		c.Reg.PC = c.pop()
	}
}

// rst implements RST n: push PC, PC = n*8.
func (c *CPU) rst(n uint8) {
	c.push(c.Reg.PC)
	c.Reg.PC = uint16(n) * 8
}

// pchl implements PCHL: PC = HL. No stack involvement.
func (c *CPU) pchl() {
	c.Reg.PC = c.Reg.HL()
}

// sphl implements SPHL: SP = HL.
func (c *CPU) sphl() {
	c.Reg.SP = c.Reg.HL()
}
