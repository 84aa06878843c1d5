package cpu

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
)

func TestMOVDiagonalIsNop(t *testing.T) {
	c, mem := newTestCPU()
	mem.Write(0, 0x40) // MOV B,B
	c.Reg.B = 0x42
	c.Step()

	if c.Reg.B != 0x42 {
		t.Fatalf("MOV B,B changed B to %.2x", c.Reg.B)
	}
	if c.Reg.PC != 1 {
		t.Fatalf("PC = %.4x after MOV B,B, want 1", c.Reg.PC)
	}
}

func TestMOVRegisterToRegister(t *testing.T) {
	c, mem := newTestCPU()
	mem.Write(0, 0x47) // MOV B,A
	c.Reg.A = 0x99
	c.Step()

	if c.Reg.B != 0x99 {
		t.Fatalf("MOV B,A: B = %.2x, want 0x99", c.Reg.B)
	}
}

func TestPushPopRoundTrip(t *testing.T) {
	c, mem := newTestCPU()
	c.Reg.SP = 0x2400
	c.Reg.SetBC(0xBEEF)

	mem.Write(0, 0xC5) // PUSH B
	mem.Write(1, 0xD1) // POP D
	c.Step()
	c.Step()

	if got := c.Reg.DE(); got != 0xBEEF {
		t.Fatalf("PUSH B; POP D: DE = %.4x, want 0xbeef\nstate: %s", got, spew.Sdump(c.Reg))
	}
	if c.Reg.SP != 0x2400 {
		t.Fatalf("SP = %.4x after round trip, want back at 0x2400", c.Reg.SP)
	}
}

func TestPushPopRoundTripProperty(t *testing.T) {
	for v := 0; v < 0x10000; v += 0x137 {
		c, mem := newTestCPU()
		c.Reg.SP = 0x2400
		c.Reg.SetBC(uint16(v))
		mem.Write(0, 0xC5)
		mem.Write(1, 0xC1)
		c.Step()
		c.Step()
		if got := c.Reg.BC(); got != uint16(v) {
			t.Fatalf("PUSH B; POP B round trip broke for %.4x: got %.4x", v, got)
		}
	}
}

// TestConditionalCallTaken checks the worked CNZ example: PC=0x0100,
// SP=0x2400, Z=0 (condition true) calling 0x0200 pushes the return
// address and leaves the stack growing downward by 2.
func TestConditionalCallTaken(t *testing.T) {
	c, mem := newTestCPU()
	c.Reg.PC = 0x0100
	c.Reg.SP = 0x2400
	c.Reg.SetFlag(FlagZero, false)

	mem.Write(0x0100, 0xC4) // CNZ a16
	mem.Write(0x0101, 0x00)
	mem.Write(0x0102, 0x02)
	c.Step()

	if c.Reg.PC != 0x0200 {
		t.Fatalf("PC = %.4x, want 0x0200", c.Reg.PC)
	}
	if c.Reg.SP != 0x23FE {
		t.Fatalf("SP = %.4x, want 0x23fe", c.Reg.SP)
	}
	if got := mem.Read(0x23FE); got != 0x03 {
		t.Fatalf("low byte of saved return addr = %.2x, want 0x03", got)
	}
	if got := mem.Read(0x23FF); got != 0x01 {
		t.Fatalf("high byte of saved return addr = %.2x, want 0x01", got)
	}
}

func TestConditionalCallNotTaken(t *testing.T) {
	c, mem := newTestCPU()
	c.Reg.PC = 0x0100
	c.Reg.SP = 0x2400
	c.Reg.SetFlag(FlagZero, true)

	mem.Write(0x0100, 0xC4) // CNZ a16, condition false
	mem.Write(0x0101, 0x00)
	mem.Write(0x0102, 0x02)
	c.Step()

	if c.Reg.PC != 0x0103 {
		t.Fatalf("PC = %.4x, want 0x0103 (fell through)", c.Reg.PC)
	}
	if c.Reg.SP != 0x2400 {
		t.Fatalf("SP = %.4x, want unchanged at 0x2400", c.Reg.SP)
	}
}

func TestConditionalBranchSymmetry(t *testing.T) {
	// JNZ jumps when Z is clear and falls through past its operand
	// when Z is set, like JMP and NOP respectively.
	for _, z := range []bool{true, false} {
		c, mem := newTestCPU()
		c.Reg.SetFlag(FlagZero, z)
		mem.Write(0, 0xC2) // JNZ
		mem.Write(1, 0x00)
		mem.Write(2, 0x10)
		c.Step()

		wantPC := uint16(3)
		if !z {
			wantPC = 0x1000
		}
		if c.Reg.PC != wantPC {
			t.Errorf("JNZ with Z=%t: PC = %.4x, want %.4x", z, c.Reg.PC, wantPC)
		}
	}
}

// TestXTHL checks the worked example: SP=0x10AD pointing at
// 0xF0/0x0D, HL=0x0B3C swaps to HL=0x0DF0 with memory now holding
// 0x3C/0x0B.
func TestXTHL(t *testing.T) {
	c, mem := newTestCPU()
	c.Reg.SP = 0x10AD
	mem.Write(0x10AD, 0xF0)
	mem.Write(0x10AE, 0x0D)
	c.Reg.SetHL(0x0B3C)

	mem.Write(0, 0xE3) // XTHL
	c.Step()

	if got := c.Reg.HL(); got != 0x0DF0 {
		t.Fatalf("HL = %.4x, want 0x0df0", got)
	}
	if got := mem.Read(0x10AD); got != 0x3C {
		t.Errorf("mem[SP] = %.2x, want 0x3c", got)
	}
	if got := mem.Read(0x10AE); got != 0x0B {
		t.Errorf("mem[SP+1] = %.2x, want 0x0b", got)
	}
}

func TestXCHGIsSelfInverse(t *testing.T) {
	c, _ := newTestCPU()
	c.Reg.SetHL(0x1234)
	c.Reg.SetDE(0x5678)
	c.xchg()
	c.xchg()
	if c.Reg.HL() != 0x1234 || c.Reg.DE() != 0x5678 {
		t.Fatalf("XCHG;XCHG did not restore state: HL=%.4x DE=%.4x", c.Reg.HL(), c.Reg.DE())
	}
}

func TestHLTStopsStepping(t *testing.T) {
	c, mem := newTestCPU()
	mem.Write(0, 0x76) // HLT
	mem.Write(1, 0x3C) // INR A, should never execute
	c.Step()
	if !c.Halted() {
		t.Fatalf("Halted() = false after HLT")
	}
	c.Step()
	if c.Reg.PC != 1 {
		t.Fatalf("PC advanced past HLT while halted: %.4x", c.Reg.PC)
	}
	if c.Reg.A != 0 {
		t.Fatalf("INR A executed while halted")
	}
}

func TestInterruptRunsRSTAndClearsHalt(t *testing.T) {
	c, mem := newTestCPU()
	mem.Write(0, 0xFB) // EI
	mem.Write(1, 0x76) // HLT
	c.Reg.SP = 0x2400
	c.Step() // EI
	c.Step() // HLT

	if !c.Halted() {
		t.Fatalf("not halted before interrupt")
	}
	if accepted := c.Interrupt(0xCF); !accepted { // RST 1
		t.Fatalf("Interrupt rejected while enabled")
	}
	if c.Halted() {
		t.Fatalf("still halted after accepted interrupt")
	}
	if c.InterruptsEnabled() {
		t.Fatalf("interrupts still enabled after delivery")
	}
	if c.Reg.PC != 0x0008 {
		t.Fatalf("PC = %.4x after RST 1, want 0x0008", c.Reg.PC)
	}
}

func TestInterruptRejectedWhenDisabled(t *testing.T) {
	c, _ := newTestCPU()
	if accepted := c.Interrupt(0xCF); accepted {
		t.Fatalf("Interrupt accepted with interrupts disabled at power-on")
	}
}
