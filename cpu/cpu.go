// Package cpu implements the Intel 8080 instruction-decode/execute
// engine: the register file, ALU and data-transfer/branch/stack
// primitives, and the 256-entry opcode dispatcher that ties them to a
// memory.Bank.
package cpu

import (
	"fmt"

	"github.com/FiloSanza/intel-8080/iobus"
	"github.com/FiloSanza/intel-8080/memory"
)

// InvalidCPUState represents a precondition the core can check before
// Step makes the rest of execution total (spec: every documented
// opcode terminates and every memory access is defined; this error is
// reserved for host misuse at construction time, not for opcode
// execution).
type InvalidCPUState struct {
	Reason string
}

// Error implements the error interface.
func (e InvalidCPUState) Error() string {
	return fmt.Sprintf("invalid CPU state: %s", e.Reason)
}

// discardBus is the default I/O bus: OUT is discarded, IN always
// returns 0. Installed whenever Config.IO is nil.
type discardBus struct{}

func (discardBus) In(uint8) uint8    { return 0 }
func (discardBus) Out(uint8, uint8)  {}

// Config configures a new CPU.
type Config struct {
	// Memory is the address space the CPU reads and writes. Required.
	Memory memory.Bank
	// IO is the I/O bus IN/OUT opcodes delegate to. Optional: if nil,
	// OUT is discarded and IN returns 0.
	IO iobus.Bus
}

// CPU is an Intel 8080 core: register file, memory handle, and the
// halted/interrupts-enabled state machine described by the spec.
type CPU struct {
	Reg Registers

	mem memory.Bank
	io  iobus.Bus

	halted            bool
	interruptsEnabled bool
}

// Init constructs a CPU wired to the given memory and I/O bus, in the
// power-on state (all registers reset per Registers.Reset).
func Init(cfg *Config) (*CPU, error) {
	if cfg == nil || cfg.Memory == nil {
		return nil, InvalidCPUState{"Config.Memory must not be nil"}
	}
	c := &CPU{
		mem: cfg.Memory,
		io:  cfg.IO,
	}
	if c.io == nil {
		c.io = discardBus{}
	}
	c.PowerOn()
	return c, nil
}

// PowerOn resets the CPU to its power-up state: registers per
// Registers.Reset, not halted, interrupts disabled.
func (c *CPU) PowerOn() {
	c.Reg.Reset()
	c.halted = false
	c.interruptsEnabled = false
}

// Halted reports whether HLT has stopped instruction execution.
func (c *CPU) Halted() bool { return c.halted }

// InterruptsEnabled reports whether EI/DI currently allow interrupts.
func (c *CPU) InterruptsEnabled() bool { return c.interruptsEnabled }

// Step fetches, decodes and executes one instruction at the current
// PC. If the CPU is halted, Step does nothing.
func (c *CPU) Step() {
	if c.halted {
		return
	}
	op := c.fetch()
	c.dispatch(op)
}

// Interrupt delivers opcode directly to the CPU as if it had just been
// fetched, without advancing PC for the fetch itself (the caller
// supplies the byte, typically an RST). It clears halted and disables
// further interrupts, per the spec's interrupt protocol. It returns
// whether the interrupt was accepted (interrupts must have been
// enabled); a rejected interrupt is dropped entirely.
func (c *CPU) Interrupt(opcode uint8) bool {
	if !c.interruptsEnabled {
		return false
	}
	c.interruptsEnabled = false
	c.halted = false
	c.dispatch(opcode)
	return true
}

// fetch reads the byte at PC and advances PC by one.
func (c *CPU) fetch() uint8 {
	v := c.mem.Read(c.Reg.PC)
	c.Reg.PC++
	return v
}

// fetchWord reads the little-endian word at PC and advances PC by two.
func (c *CPU) fetchWord() uint16 {
	v := memory.ReadWord(c.mem, c.Reg.PC)
	c.Reg.PC += 2
	return v
}
