package cpu

import "github.com/FiloSanza/intel-8080/memory"

// push decrements SP by 2 and stores value there, little-endian.
func (c *CPU) push(value uint16) {
	c.Reg.SP -= 2
	memory.WriteWord(c.mem, c.Reg.SP, value)
}

// pop reads the word at SP and increments SP by 2.
func (c *CPU) pop() uint16 {
	value := memory.ReadWord(c.mem, c.Reg.SP)
	c.Reg.SP += 2
	return value
}

// xthl implements XTHL: swap the word at M[SP] with HL.
func (c *CPU) xthl() {
	stackWord := memory.ReadWord(c.mem, c.Reg.SP)
	hl := c.Reg.HL()
	c.Reg.SetHL(stackWord)
	memory.WriteWord(c.mem, c.Reg.SP, hl)
}

// in implements IN port: consumes the port immediate and loads A from
// the I/O bus.
func (c *CPU) in() {
	port := c.fetch()
	c.Reg.A = c.io.In(port)
}

// out implements OUT port: consumes the port immediate and sends A to
// the I/O bus.
func (c *CPU) out() {
	port := c.fetch()
	c.io.Out(port, c.Reg.A)
}

// ei implements EI: enable interrupts.
func (c *CPU) ei() {
	c.interruptsEnabled = true
}

// di implements DI: disable interrupts.
func (c *CPU) di() {
	c.interruptsEnabled = false
}

// hlt implements HLT: stop instruction execution until an interrupt
// arrives.
func (c *CPU) hlt() {
	c.halted = true
}
