package cpu

// flatMemory is a 64KB RAM-backed memory.Bank used across the cpu test
// suite. It never rejects a read or write, which keeps these tests
// focused on register/flag semantics rather than memory-map edge
// cases (those live in the memory package's own tests).
type flatMemory struct {
	addr [65536]uint8
}

func (m *flatMemory) Read(addr uint16) uint8       { return m.addr[addr] }
func (m *flatMemory) Write(addr uint16, val uint8) { m.addr[addr] = val }

func newTestCPU() (*CPU, *flatMemory) {
	mem := &flatMemory{}
	c, err := Init(&Config{Memory: mem})
	if err != nil {
		panic(err)
	}
	return c, mem
}
