package bit

import "testing"

func TestGet(t *testing.T) {
	tests := []struct {
		name string
		b    uint8
		pos  uint
		want bool
	}{
		{"bit 0 set", 0x01, 0, true},
		{"bit 0 clear", 0xFE, 0, false},
		{"bit 7 set", 0x80, 7, true},
		{"bit 7 clear", 0x7F, 7, false},
		{"mid bit", 0x10, 4, true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := Get(test.b, test.pos); got != test.want {
				t.Errorf("Get(%#.2x, %d) = %v, want %v", test.b, test.pos, got, test.want)
			}
		})
	}
}

func TestSet(t *testing.T) {
	if got, want := Set(0x00, 0), uint8(0x01); got != want {
		t.Errorf("Set(0x00, 0) = %#.2x, want %#.2x", got, want)
	}
	if got, want := Set(0xFE, 0), uint8(0xFF); got != want {
		t.Errorf("Set(0xFE, 0) = %#.2x, want %#.2x", got, want)
	}
	// Setting an already-set bit is a no-op.
	if got, want := Set(0x80, 7), uint8(0x80); got != want {
		t.Errorf("Set(0x80, 7) = %#.2x, want %#.2x", got, want)
	}
}

func TestClear(t *testing.T) {
	if got, want := Clear(0xFF, 0), uint8(0xFE); got != want {
		t.Errorf("Clear(0xFF, 0) = %#.2x, want %#.2x", got, want)
	}
	if got, want := Clear(0x01, 0), uint8(0x00); got != want {
		t.Errorf("Clear(0x01, 0) = %#.2x, want %#.2x", got, want)
	}
	// Clearing an already-clear bit is a no-op.
	if got, want := Clear(0x00, 3), uint8(0x00); got != want {
		t.Errorf("Clear(0x00, 3) = %#.2x, want %#.2x", got, want)
	}
}
