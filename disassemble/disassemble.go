// Package disassemble implements a pure disassembler for 8080
// opcodes. It never mutates the memory.Bank it reads from and it
// agrees with the cpu package's dispatcher on every instruction's
// byte length.
package disassemble

import (
	"fmt"

	"github.com/FiloSanza/intel-8080/memory"
)

// Step disassembles the instruction at addr and returns its canonical
// mnemonic text along with the number of bytes (1, 2 or 3) the
// instruction occupies. Step always reads the two bytes after addr,
// whatever the instruction's length, so the caller must ensure those
// addresses are valid memory.
func Step(addr uint16, m memory.Bank) (string, int) {
	op := m.Read(addr)
	b1 := m.Read(addr + 1)
	b2 := m.Read(addr + 2)

	switch op {
	case 0x00:
		return "NOP", 1
	case 0x01:
		return fmt.Sprintf("LXI   B,#$%.2x%.2x", b2, b1), 3
	case 0x02:
		return "STAX  B", 1
	case 0x03:
		return "INX   B", 1
	case 0x04:
		return "INR   B", 1
	case 0x05:
		return "DCR   B", 1
	case 0x06:
		return fmt.Sprintf("MVI   B,#$%.2x", b1), 2
	case 0x07:
		return "RLC", 1
	case 0x09:
		return "DAD   B", 1
	case 0x0A:
		return "LDAX  B", 1
	case 0x0B:
		return "DCX   B", 1
	case 0x0C:
		return "INR   C", 1
	case 0x0D:
		return "DCR   C", 1
	case 0x0E:
		return fmt.Sprintf("MVI   C,#$%.2x", b1), 2
	case 0x0F:
		return "RRC", 1
	case 0x11:
		return fmt.Sprintf("LXI   D,#$%.2x%.2x", b2, b1), 3
	case 0x12:
		return "STAX  D", 1
	case 0x13:
		return "INX   D", 1
	case 0x14:
		return "INR   D", 1
	case 0x15:
		return "DCR   D", 1
	case 0x16:
		return fmt.Sprintf("MVI   D,#$%.2x", b1), 2
	case 0x17:
		return "RAL", 1
	case 0x19:
		return "DAD   D", 1
	case 0x1A:
		return "LDAX  D", 1
	case 0x1B:
		return "DCX   D", 1
	case 0x1C:
		return "INR   E", 1
	case 0x1D:
		return "DCR   E", 1
	case 0x1E:
		return fmt.Sprintf("MVI   E,#$%.2x", b1), 2
	case 0x1F:
		return "RAR", 1
	case 0x21:
		return fmt.Sprintf("LXI   H,#$%.2x%.2x", b2, b1), 3
	case 0x22:
		return fmt.Sprintf("SHLD  $%.2x%.2x", b2, b1), 3
	case 0x23:
		return "INX   H", 1
	case 0x24:
		return "INR   H", 1
	case 0x25:
		return "DCR   H", 1
	case 0x26:
		return fmt.Sprintf("MVI   H,#$%.2x", b1), 2
	case 0x27:
		return "DAA", 1
	case 0x29:
		return "DAD   H", 1
	case 0x2A:
		return fmt.Sprintf("LHLD  $%.2x%.2x", b2, b1), 3
	case 0x2B:
		return "DCX   H", 1
	case 0x2C:
		return "INR   L", 1
	case 0x2D:
		return "DCR   L", 1
	case 0x2E:
		return fmt.Sprintf("MVI   L,#$%.2x", b1), 2
	case 0x2F:
		return "CMA", 1
	case 0x31:
		return fmt.Sprintf("LXI   SP,#$%.2x%.2x", b2, b1), 3
	case 0x32:
		return fmt.Sprintf("STA   $%.2x%.2x", b2, b1), 3
	case 0x33:
		return "INX   SP", 1
	case 0x34:
		return "INR   M", 1
	case 0x35:
		return "DCR   M", 1
	case 0x36:
		return fmt.Sprintf("MVI   M,#$%.2x", b1), 2
	case 0x37:
		return "STC", 1
	case 0x39:
		return "DAD   SP", 1
	case 0x3A:
		return fmt.Sprintf("LDA   $%.2x%.2x", b2, b1), 3
	case 0x3B:
		return "DCX   SP", 1
	case 0x3C:
		return "INR   A", 1
	case 0x3D:
		return "DCR   A", 1
	case 0x3E:
		return fmt.Sprintf("MVI   A,#$%.2x", b1), 2
	case 0x3F:
		return "CMC", 1
	case 0x76:
		return "HLT", 1
	case 0xC0:
		return "RNZ", 1
	case 0xC1:
		return "POP   B", 1
	case 0xC2:
		return fmt.Sprintf("JNZ   $%.2x%.2x", b2, b1), 3
	case 0xC3:
		return fmt.Sprintf("JMP   $%.2x%.2x", b2, b1), 3
	case 0xC4:
		return fmt.Sprintf("CNZ   $%.2x%.2x", b2, b1), 3
	case 0xC5:
		return "PUSH  B", 1
	case 0xC6:
		return fmt.Sprintf("ADI   #$%.2x", b1), 2
	case 0xC7:
		return "RST   0", 1
	case 0xC8:
		return "RZ", 1
	case 0xC9:
		return "RET", 1
	case 0xCA:
		return fmt.Sprintf("JZ    $%.2x%.2x", b2, b1), 3
	case 0xCC:
		return fmt.Sprintf("CZ    $%.2x%.2x", b2, b1), 3
	case 0xCD:
		return fmt.Sprintf("CALL  $%.2x%.2x", b2, b1), 3
	case 0xCE:
		return fmt.Sprintf("ACI   #$%.2x", b1), 2
	case 0xCF:
		return "RST   1", 1
	case 0xD0:
		return "RNC", 1
	case 0xD1:
		return "POP   D", 1
	case 0xD2:
		return fmt.Sprintf("JNC   $%.2x%.2x", b2, b1), 3
	case 0xD3:
		return fmt.Sprintf("OUT   #$%.2x", b1), 2
	case 0xD4:
		return fmt.Sprintf("CNC   $%.2x%.2x", b2, b1), 3
	case 0xD5:
		return "PUSH  D", 1
	case 0xD6:
		return fmt.Sprintf("SUI   #$%.2x", b1), 2
	case 0xD7:
		return "RST   2", 1
	case 0xD8:
		return "RC", 1
	case 0xDA:
		return fmt.Sprintf("JC    $%.2x%.2x", b2, b1), 3
	case 0xDB:
		return fmt.Sprintf("IN    #$%.2x", b1), 2
	case 0xDC:
		return fmt.Sprintf("CC    $%.2x%.2x", b2, b1), 3
	case 0xDE:
		return fmt.Sprintf("SBI   #$%.2x", b1), 2
	case 0xDF:
		return "RST   3", 1
	case 0xE0:
		return "RPO", 1
	case 0xE1:
		return "POP   H", 1
	case 0xE2:
		return fmt.Sprintf("JPO   $%.2x%.2x", b2, b1), 3
	case 0xE3:
		return "XTHL", 1
	case 0xE4:
		return fmt.Sprintf("CPO   $%.2x%.2x", b2, b1), 3
	case 0xE5:
		return "PUSH  H", 1
	case 0xE6:
		return fmt.Sprintf("ANI   #$%.2x", b1), 2
	case 0xE7:
		return "RST   4", 1
	case 0xE8:
		return "RPE", 1
	case 0xE9:
		return "PCHL", 1
	case 0xEA:
		return fmt.Sprintf("JPE   $%.2x%.2x", b2, b1), 3
	case 0xEB:
		return "XCHG", 1
	case 0xEC:
		return fmt.Sprintf("CPE   $%.2x%.2x", b2, b1), 3
	case 0xEE:
		return fmt.Sprintf("XRI   #$%.2x", b1), 2
	case 0xEF:
		return "RST   5", 1
	case 0xF0:
		return "RP", 1
	case 0xF1:
		return "POP   PSW", 1
	case 0xF2:
		return fmt.Sprintf("JP    $%.2x%.2x", b2, b1), 3
	case 0xF3:
		return "DI", 1
	case 0xF4:
		return fmt.Sprintf("CP    $%.2x%.2x", b2, b1), 3
	case 0xF5:
		return "PUSH  PSW", 1
	case 0xF6:
		return fmt.Sprintf("ORI   #$%.2x", b1), 2
	case 0xF7:
		return "RST   6", 1
	case 0xF8:
		return "RM", 1
	case 0xF9:
		return "SPHL", 1
	case 0xFA:
		return fmt.Sprintf("JM    $%.2x%.2x", b2, b1), 3
	case 0xFB:
		return "EI", 1
	case 0xFC:
		return fmt.Sprintf("CM    $%.2x%.2x", b2, b1), 3
	case 0xFE:
		return fmt.Sprintf("CPI   #$%.2x", b1), 2
	case 0xFF:
		return "RST   7", 1
	}

	// MOV and the ALU-over-register blocks (0x40-0xBF) are dense and
	// regular: bits 3-5 select the operation (or destination, for
	// MOV), bits 0-2 select the source register, with 110 meaning
	// memory via HL. Decoding this block by bit-field keeps it in sync
	// with the dispatcher's register order without hand-listing all
	// 128 cases twice.
	if op >= 0x40 && op <= 0xBF {
		return decodeRegisterBlock(op), 1
	}

	// Unpublished opcodes (0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38,
	// 0xCB, 0xD9, 0xDD, 0xED, 0xFD) disassemble as NOP and consume one
	// byte, matching the dispatcher's treatment of them.
	return "NOP", 1
}

var regNames = [8]string{"B", "C", "D", "E", "H", "L", "M", "A"}

func decodeRegisterBlock(op uint8) string {
	if op <= 0x7F {
		dst := regNames[(op>>3)&0x07]
		src := regNames[op&0x07]
		if op == 0x76 {
			return "HLT" // handled above, kept here for documentation
		}
		return fmt.Sprintf("MOV   %s,%s", dst, src)
	}
	src := regNames[op&0x07]
	switch (op >> 3) & 0x07 {
	case 0:
		return fmt.Sprintf("ADD   %s", src)
	case 1:
		return fmt.Sprintf("ADC   %s", src)
	case 2:
		return fmt.Sprintf("SUB   %s", src)
	case 3:
		return fmt.Sprintf("SBB   %s", src)
	case 4:
		return fmt.Sprintf("ANA   %s", src)
	case 5:
		return fmt.Sprintf("XRA   %s", src)
	case 6:
		return fmt.Sprintf("ORA   %s", src)
	default: // 7
		return fmt.Sprintf("CMP   %s", src)
	}
}
