// Package memory defines the 16-bit-addressable byte store the 8080
// core reads and writes, along with the concrete backings (linear RAM,
// a ROM/RAM overlay for the classic arcade memory map) that implement
// it.
package memory

import "fmt"

// Bank is the capability set every memory implementation the core can
// drive must satisfy: a byte-addressed, 16-bit address space.
type Bank interface {
	// Read returns the data byte stored at addr.
	Read(addr uint16) uint8
	// Write updates addr with val. Implementations that model ROM may
	// treat this as a no-op for protected addresses.
	Write(addr uint16, val uint8)
}

// ReadWord returns the little-endian 16-bit value at addr and addr+1.
// Address arithmetic wraps modulo 2^16, so a word straddling 0xFFFF
// reads its high byte from 0x0000.
func ReadWord(b Bank, addr uint16) uint16 {
	lo := b.Read(addr)
	hi := b.Read(addr + 1)
	return uint16(lo) | uint16(hi)<<8
}

// WriteWord stores val at addr/addr+1, low byte first, wrapping as
// ReadWord does.
func WriteWord(b Bank, addr uint16, val uint16) {
	b.Write(addr, uint8(val&0xFF))
	b.Write(addr+1, uint8(val>>8))
}

// Linear is a contiguous 65536-byte RAM bank. It is the simplest Bank
// implementation and the one a bare CPU is built around in tests.
type Linear struct {
	data [1 << 16]uint8
}

// NewLinear returns a Linear bank initialized to all zero bytes.
func NewLinear() *Linear {
	return &Linear{}
}

// Read implements Bank.
func (l *Linear) Read(addr uint16) uint8 {
	return l.data[addr]
}

// Write implements Bank.
func (l *Linear) Write(addr uint16, val uint8) {
	l.data[addr] = val
}

// Load copies b into the bank starting at addr, truncating if it would
// run past the end of the 64KB address space.
func (l *Linear) Load(addr uint16, b []uint8) {
	max := int(1<<16) - int(addr)
	if len(b) > max {
		b = b[:max]
	}
	for i, v := range b {
		l.data[int(addr)+i] = v
	}
}

// ROM wraps a Linear bank and enforces the classic arcade-board memory
// map described by the core's binary format convention: addresses
// below romEnd are write-protected (ROM), addresses at or above
// mirrorStart read and write through to the address modulo mirrorStart
// (RAM is mirrored rather than duplicated in hardware).
type ROM struct {
	ram         *Linear
	romEnd      uint16 // first address no longer protected from writes.
	mirrorStart uint16 // first address that mirrors back into [0, mirrorStart).
}

// NewROM returns a Bank implementing the Space Invaders convention:
// ROM occupies [0, romEnd), RAM occupies [romEnd, mirrorStart), and
// addresses at or above mirrorStart alias back into
// [0, mirrorStart) as the address modulo mirrorStart.
func NewROM(romEnd, mirrorStart uint16) (*ROM, error) {
	if romEnd > mirrorStart {
		return nil, fmt.Errorf("memory: romEnd %#.4x must not exceed mirrorStart %#.4x", romEnd, mirrorStart)
	}
	return &ROM{
		ram:         NewLinear(),
		romEnd:      romEnd,
		mirrorStart: mirrorStart,
	}, nil
}

func (r *ROM) mask(addr uint16) uint16 {
	if addr >= r.mirrorStart {
		return addr % r.mirrorStart
	}
	return addr
}

// Read implements Bank.
func (r *ROM) Read(addr uint16) uint8 {
	return r.ram.Read(r.mask(addr))
}

// Write implements Bank. Writes below romEnd are silently dropped.
func (r *ROM) Write(addr uint16, val uint8) {
	addr = r.mask(addr)
	if addr < r.romEnd {
		return
	}
	r.ram.Write(addr, val)
}

// LoadROM copies the ROM image into the protected region starting at
// address 0, truncating it to romEnd bytes if it's longer.
func (r *ROM) LoadROM(b []uint8) {
	if len(b) > int(r.romEnd) {
		b = b[:r.romEnd]
	}
	r.ram.Load(0, b)
}
