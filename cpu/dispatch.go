package cpu

// dispatch decodes and executes the instruction whose opcode byte is
// op. Any immediate operand bytes are fetched from memory at the
// current PC, which dispatch advances as it goes. Opcodes outside the
// published 8080 set (0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38, 0xCB,
// 0xD9, 0xDD, 0xED, 0xFD) fall through to the default NOP case,
// consuming exactly the one opcode byte already fetched.
func (c *CPU) dispatch(op uint8) {
	switch op {
	case 0x00: // NOP
	case 0x01: // LXI B,d16
		c.Reg.SetBC(c.fetchWord())
	case 0x02: // STAX B
		c.stax(c.Reg.BC())
	case 0x03: // INX B
		c.Reg.SetBC(inx(c.Reg.BC()))
	case 0x04: // INR B
		c.Reg.B = c.inr(c.Reg.B)
	case 0x05: // DCR B
		c.Reg.B = c.dcr(c.Reg.B)
	case 0x06: // MVI B,d8
		c.Reg.B = c.fetch()
	case 0x07: // RLC
		c.rlc()
	case 0x09: // DAD B
		c.dad(c.Reg.BC())
	case 0x0A: // LDAX B
		c.ldax(c.Reg.BC())
	case 0x0B: // DCX B
		c.Reg.SetBC(dcx(c.Reg.BC()))
	case 0x0C: // INR C
		c.Reg.C = c.inr(c.Reg.C)
	case 0x0D: // DCR C
		c.Reg.C = c.dcr(c.Reg.C)
	case 0x0E: // MVI C,d8
		c.Reg.C = c.fetch()
	case 0x0F: // RRC
		c.rrc()
	case 0x11: // LXI D,d16
		c.Reg.SetDE(c.fetchWord())
	case 0x12: // STAX D
		c.stax(c.Reg.DE())
	case 0x13: // INX D
		c.Reg.SetDE(inx(c.Reg.DE()))
	case 0x14: // INR D
		c.Reg.D = c.inr(c.Reg.D)
	case 0x15: // DCR D
		c.Reg.D = c.dcr(c.Reg.D)
	case 0x16: // MVI D,d8
		c.Reg.D = c.fetch()
	case 0x17: // RAL
		c.ral()
	case 0x19: // DAD D
		c.dad(c.Reg.DE())
	case 0x1A: // LDAX D
		c.ldax(c.Reg.DE())
	case 0x1B: // DCX D
		c.Reg.SetDE(dcx(c.Reg.DE()))
	case 0x1C: // INR E
		c.Reg.E = c.inr(c.Reg.E)
	case 0x1D: // DCR E
		c.Reg.E = c.dcr(c.Reg.E)
	case 0x1E: // MVI E,d8
		c.Reg.E = c.fetch()
	case 0x1F: // RAR
		c.rar()
	case 0x21: // LXI H,d16
		c.Reg.SetHL(c.fetchWord())
	case 0x22: // SHLD a16
		c.shld()
	case 0x23: // INX H
		c.Reg.SetHL(inx(c.Reg.HL()))
	case 0x24: // INR H
		c.Reg.H = c.inr(c.Reg.H)
	case 0x25: // DCR H
		c.Reg.H = c.dcr(c.Reg.H)
	case 0x26: // MVI H,d8
		c.Reg.H = c.fetch()
	case 0x27: // DAA
		c.daa()
	case 0x29: // DAD H
		c.dad(c.Reg.HL())
	case 0x2A: // LHLD a16
		c.lhld()
	case 0x2B: // DCX H
		c.Reg.SetHL(dcx(c.Reg.HL()))
	case 0x2C: // INR L
		c.Reg.L = c.inr(c.Reg.L)
	case 0x2D: // DCR L
		c.Reg.L = c.dcr(c.Reg.L)
	case 0x2E: // MVI L,d8
		c.Reg.L = c.fetch()
	case 0x2F: // CMA
		c.cma()
	case 0x31: // LXI SP,d16
		c.Reg.SP = c.fetchWord()
	case 0x32: // STA a16
		c.sta()
	case 0x33: // INX SP
		c.Reg.SP = inx(c.Reg.SP)
	case 0x34: // INR M
		c.setM(c.inr(c.getM()))
	case 0x35: // DCR M
		c.setM(c.dcr(c.getM()))
	case 0x36: // MVI M,d8
		c.setM(c.fetch())
	case 0x37: // STC
		c.stc()
	case 0x39: // DAD SP
		c.dad(c.Reg.SP)
	case 0x3A: // LDA a16
		c.lda()
	case 0x3B: // DCX SP
		c.Reg.SP = dcx(c.Reg.SP)
	case 0x3C: // INR A
		c.Reg.A = c.inr(c.Reg.A)
	case 0x3D: // DCR A
		c.Reg.A = c.dcr(c.Reg.A)
	case 0x3E: // MVI A,d8
		c.Reg.A = c.fetch()
	case 0x3F: // CMC
		c.cmc()

	// MOV r,r' — straight 8-bit register/memory assignment. The
	// diagonal (MOV B,B and its seven siblings) is a no-op but still
	// consumes one instruction byte, which falling into an empty case
	// does here.
	case 0x40:
	case 0x41:
		c.Reg.B = c.Reg.C
	case 0x42:
		c.Reg.B = c.Reg.D
	case 0x43:
		c.Reg.B = c.Reg.E
	case 0x44:
		c.Reg.B = c.Reg.H
	case 0x45:
		c.Reg.B = c.Reg.L
	case 0x46:
		c.Reg.B = c.getM()
	case 0x47:
		c.Reg.B = c.Reg.A
	case 0x48:
		c.Reg.C = c.Reg.B
	case 0x49:
	case 0x4A:
		c.Reg.C = c.Reg.D
	case 0x4B:
		c.Reg.C = c.Reg.E
	case 0x4C:
		c.Reg.C = c.Reg.H
	case 0x4D:
		c.Reg.C = c.Reg.L
	case 0x4E:
		c.Reg.C = c.getM()
	case 0x4F:
		c.Reg.C = c.Reg.A
	case 0x50:
		c.Reg.D = c.Reg.B
	case 0x51:
		c.Reg.D = c.Reg.C
	case 0x52:
	case 0x53:
		c.Reg.D = c.Reg.E
	case 0x54:
		c.Reg.D = c.Reg.H
	case 0x55:
		c.Reg.D = c.Reg.L
	case 0x56:
		c.Reg.D = c.getM()
	case 0x57:
		c.Reg.D = c.Reg.A
	case 0x58:
		c.Reg.E = c.Reg.B
	case 0x59:
		c.Reg.E = c.Reg.C
	case 0x5A:
		c.Reg.E = c.Reg.D
	case 0x5B:
	case 0x5C:
		c.Reg.E = c.Reg.H
	case 0x5D:
		c.Reg.E = c.Reg.L
	case 0x5E:
		c.Reg.E = c.getM()
	case 0x5F:
		c.Reg.E = c.Reg.A
	case 0x60:
		c.Reg.H = c.Reg.B
	case 0x61:
		c.Reg.H = c.Reg.C
	case 0x62:
		c.Reg.H = c.Reg.D
	case 0x63:
		c.Reg.H = c.Reg.E
	case 0x64:
	case 0x65:
		c.Reg.H = c.Reg.L
	case 0x66:
		c.Reg.H = c.getM()
	case 0x67:
		c.Reg.H = c.Reg.A
	case 0x68:
		c.Reg.L = c.Reg.B
	case 0x69:
		c.Reg.L = c.Reg.C
	case 0x6A:
		c.Reg.L = c.Reg.D
	case 0x6B:
		c.Reg.L = c.Reg.E
	case 0x6C:
		c.Reg.L = c.Reg.H
	case 0x6D:
	case 0x6E:
		c.Reg.L = c.getM()
	case 0x6F:
		c.Reg.L = c.Reg.A
	case 0x70:
		c.setM(c.Reg.B)
	case 0x71:
		c.setM(c.Reg.C)
	case 0x72:
		c.setM(c.Reg.D)
	case 0x73:
		c.setM(c.Reg.E)
	case 0x74:
		c.setM(c.Reg.H)
	case 0x75:
		c.setM(c.Reg.L)
	case 0x76: // HLT
		c.hlt()
	case 0x77:
		c.setM(c.Reg.A)
	case 0x78:
		c.Reg.A = c.Reg.B
	case 0x79:
		c.Reg.A = c.Reg.C
	case 0x7A:
		c.Reg.A = c.Reg.D
	case 0x7B:
		c.Reg.A = c.Reg.E
	case 0x7C:
		c.Reg.A = c.Reg.H
	case 0x7D:
		c.Reg.A = c.Reg.L
	case 0x7E:
		c.Reg.A = c.getM()
	case 0x7F:

	case 0x80:
		c.add(c.Reg.B)
	case 0x81:
		c.add(c.Reg.C)
	case 0x82:
		c.add(c.Reg.D)
	case 0x83:
		c.add(c.Reg.E)
	case 0x84:
		c.add(c.Reg.H)
	case 0x85:
		c.add(c.Reg.L)
	case 0x86:
		c.add(c.getM())
	case 0x87:
		c.add(c.Reg.A)
	case 0x88:
		c.adc(c.Reg.B)
	case 0x89:
		c.adc(c.Reg.C)
	case 0x8A:
		c.adc(c.Reg.D)
	case 0x8B:
		c.adc(c.Reg.E)
	case 0x8C:
		c.adc(c.Reg.H)
	case 0x8D:
		c.adc(c.Reg.L)
	case 0x8E:
		c.adc(c.getM())
	case 0x8F:
		c.adc(c.Reg.A)
	case 0x90:
		c.sub(c.Reg.B)
	case 0x91:
		c.sub(c.Reg.C)
	case 0x92:
		c.sub(c.Reg.D)
	case 0x93:
		c.sub(c.Reg.E)
	case 0x94:
		c.sub(c.Reg.H)
	case 0x95:
		c.sub(c.Reg.L)
	case 0x96:
		c.sub(c.getM())
	case 0x97:
		c.sub(c.Reg.A)
	case 0x98:
		c.sbb(c.Reg.B)
	case 0x99:
		c.sbb(c.Reg.C)
	case 0x9A:
		c.sbb(c.Reg.D)
	case 0x9B:
		c.sbb(c.Reg.E)
	case 0x9C:
		c.sbb(c.Reg.H)
	case 0x9D:
		c.sbb(c.Reg.L)
	case 0x9E:
		c.sbb(c.getM())
	case 0x9F:
		c.sbb(c.Reg.A)
	case 0xA0:
		c.ana(c.Reg.B)
	case 0xA1:
		c.ana(c.Reg.C)
	case 0xA2:
		c.ana(c.Reg.D)
	case 0xA3:
		c.ana(c.Reg.E)
	case 0xA4:
		c.ana(c.Reg.H)
	case 0xA5:
		c.ana(c.Reg.L)
	case 0xA6:
		c.ana(c.getM())
	case 0xA7:
		c.ana(c.Reg.A)
	case 0xA8:
		c.xra(c.Reg.B)
	case 0xA9:
		c.xra(c.Reg.C)
	case 0xAA:
		c.xra(c.Reg.D)
	case 0xAB:
		c.xra(c.Reg.E)
	case 0xAC:
		c.xra(c.Reg.H)
	case 0xAD:
		c.xra(c.Reg.L)
	case 0xAE:
		c.xra(c.getM())
	case 0xAF:
		c.xra(c.Reg.A)
	case 0xB0:
		c.ora(c.Reg.B)
	case 0xB1:
		c.ora(c.Reg.C)
	case 0xB2:
		c.ora(c.Reg.D)
	case 0xB3:
		c.ora(c.Reg.E)
	case 0xB4:
		c.ora(c.Reg.H)
	case 0xB5:
		c.ora(c.Reg.L)
	case 0xB6:
		c.ora(c.getM())
	case 0xB7:
		c.ora(c.Reg.A)
	case 0xB8:
		c.cmp(c.Reg.B)
	case 0xB9:
		c.cmp(c.Reg.C)
	case 0xBA:
		c.cmp(c.Reg.D)
	case 0xBB:
		c.cmp(c.Reg.E)
	case 0xBC:
		c.cmp(c.Reg.H)
	case 0xBD:
		c.cmp(c.Reg.L)
	case 0xBE:
		c.cmp(c.getM())
	case 0xBF:
		c.cmp(c.Reg.A)

	case 0xC0: // RNZ
		c.ret(!c.Reg.Flag(FlagZero))
	case 0xC1: // POP B
		c.Reg.SetBC(c.pop())
	case 0xC2: // JNZ a16
		c.jmp(!c.Reg.Flag(FlagZero))
	case 0xC3: // JMP a16
		c.jmp(true)
	case 0xC4: // CNZ a16
		c.call(!c.Reg.Flag(FlagZero))
	case 0xC5: // PUSH B
		c.push(c.Reg.BC())
	case 0xC6: // ADI d8
		c.add(c.fetch())
	case 0xC7: // RST 0
		c.rst(0)
	case 0xC8: // RZ
		c.ret(c.Reg.Flag(FlagZero))
	case 0xC9: // RET
		c.ret(true)
	case 0xCA: // JZ a16
		c.jmp(c.Reg.Flag(FlagZero))
	case 0xCC: // CZ a16
		c.call(c.Reg.Flag(FlagZero))
	case 0xCD: // CALL a16
		c.call(true)
	case 0xCE: // ACI d8
		c.adc(c.fetch())
	case 0xCF: // RST 1
		c.rst(1)
	case 0xD0: // RNC
		c.ret(!c.Reg.Flag(FlagCarry))
	case 0xD1: // POP D
		c.Reg.SetDE(c.pop())
	case 0xD2: // JNC a16
		c.jmp(!c.Reg.Flag(FlagCarry))
	case 0xD3: // OUT d8
		c.out()
	case 0xD4: // CNC a16
		c.call(!c.Reg.Flag(FlagCarry))
	case 0xD5: // PUSH D
		c.push(c.Reg.DE())
	case 0xD6: // SUI d8
		c.sub(c.fetch())
	case 0xD7: // RST 2
		c.rst(2)
	case 0xD8: // RC
		c.ret(c.Reg.Flag(FlagCarry))
	case 0xDA: // JC a16
		c.jmp(c.Reg.Flag(FlagCarry))
	case 0xDB: // IN d8
		c.in()
	case 0xDC: // CC a16
		c.call(c.Reg.Flag(FlagCarry))
	case 0xDE: // SBI d8
		c.sbb(c.fetch())
	case 0xDF: // RST 3
		c.rst(3)
	case 0xE0: // RPO
		c.ret(!c.Reg.Flag(FlagParity))
	case 0xE1: // POP H
		c.Reg.SetHL(c.pop())
	case 0xE2: // JPO a16
		c.jmp(!c.Reg.Flag(FlagParity))
	case 0xE3: // XTHL
		c.xthl()
	case 0xE4: // CPO a16
		c.call(!c.Reg.Flag(FlagParity))
	case 0xE5: // PUSH H
		c.push(c.Reg.HL())
	case 0xE6: // ANI d8
		c.ana(c.fetch())
	case 0xE7: // RST 4
		c.rst(4)
	case 0xE8: // RPE
		c.ret(c.Reg.Flag(FlagParity))
	case 0xE9: // PCHL
		c.pchl()
	case 0xEA: // JPE a16
		c.jmp(c.Reg.Flag(FlagParity))
	case 0xEB: // XCHG
		c.xchg()
	case 0xEC: // CPE a16
		c.call(c.Reg.Flag(FlagParity))
	case 0xEE: // XRI d8
		c.xra(c.fetch())
	case 0xEF: // RST 5
		c.rst(5)
	case 0xF0: // RP
		c.ret(!c.Reg.Flag(FlagSign))
	case 0xF1: // POP PSW
		c.Reg.SetAF(c.pop())
	case 0xF2: // JP a16
		c.jmp(!c.Reg.Flag(FlagSign))
	case 0xF3: // DI
		c.di()
	case 0xF4: // CP a16
		c.call(!c.Reg.Flag(FlagSign))
	case 0xF5: // PUSH PSW
		c.push(c.Reg.AF())
	case 0xF6: // ORI d8
		c.ora(c.fetch())
	case 0xF7: // RST 6
		c.rst(6)
	case 0xF8: // RM
		c.ret(c.Reg.Flag(FlagSign))
	case 0xF9: // SPHL
		c.sphl()
	case 0xFA: // JM a16
		c.jmp(c.Reg.Flag(FlagSign))
	case 0xFB: // EI
		c.ei()
	case 0xFC: // CM a16
		c.call(c.Reg.Flag(FlagSign))
	case 0xFE: // CPI d8
		c.cmp(c.fetch())
	case 0xFF: // RST 7
		c.rst(7)

	default:
		// 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38, 0xCB, 0xD9, 0xDD,
		// 0xED, 0xFD: unpublished opcodes, treated as NOP.
	}
}
