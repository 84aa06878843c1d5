package disassemble

import (
	"testing"

	"github.com/FiloSanza/intel-8080/memory"
)

func TestStepLengthsAndMnemonics(t *testing.T) {
	tests := []struct {
		name   string
		bytes  []uint8
		want   string
		length int
	}{
		{"NOP", []uint8{0x00}, "NOP", 1},
		{"LXI B,d16", []uint8{0x01, 0x34, 0x12}, "LXI   B,#$1234", 3},
		{"MVI B,d8", []uint8{0x06, 0x42}, "MVI   B,#$42", 2},
		{"STA a16", []uint8{0x32, 0xAD, 0xBE}, "STA   $bead", 3},
		{"MOV B,B diagonal", []uint8{0x40}, "MOV   B,B", 1},
		{"MOV H,M", []uint8{0x66}, "MOV   H,M", 1},
		{"ADD M", []uint8{0x86}, "ADD   M", 1},
		{"CMP A", []uint8{0xBF}, "CMP   A", 1},
		{"HLT", []uint8{0x76}, "HLT", 1},
		{"ADI d8", []uint8{0xC6, 0x10}, "ADI   #$10", 2},
		{"CALL a16", []uint8{0xCD, 0x00, 0x40}, "CALL  $4000", 3},
		{"unpublished opcode disassembles as NOP", []uint8{0x08}, "NOP", 1},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			mem := memory.NewLinear()
			mem.Load(0, test.bytes)
			got, length := Step(0, mem)
			if got != test.want {
				t.Errorf("Step: got %q, want %q", got, test.want)
			}
			if length != test.length {
				t.Errorf("Step length: got %d, want %d", length, test.length)
			}
		})
	}
}

// TestRegisterBlockCoversAllCombinations confirms every MOV/ALU opcode
// in the dense 0x40-0xBF block decodes as a 1-byte instruction without
// falling back to NOP, and that 0x76 decodes as HLT.
func TestRegisterBlockCoversAllCombinations(t *testing.T) {
	mem := memory.NewLinear()
	for op := 0x40; op <= 0xBF; op++ {
		mem.Write(0, uint8(op))
		got, length := Step(0, mem)
		if op == 0x76 {
			if got != "HLT" {
				t.Errorf("opcode %.2x: got %q, want HLT", op, got)
			}
			continue
		}
		if length != 1 {
			t.Errorf("opcode %.2x: length = %d, want 1", op, length)
		}
		if got == "NOP" {
			t.Errorf("opcode %.2x in register block fell back to NOP", op)
		}
	}
}
