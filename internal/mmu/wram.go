package mmu

import "github.com/thelolagemann/gbcore/internal/types"

// wramBankSize is the size of a single work RAM bank.
const wramBankSize = 0x1000

// WRAM is the 8kB work RAM, split into two 4kB banks. Bank 0 is mapped
// to 0xC000 - 0xCFFF, bank 1 to 0xD000 - 0xDFFF. Bank switching (SVBK)
// is CGB only, so bank 1 is fixed.
type WRAM struct {
	raw [2][wramBankSize]uint8
}

// NewWRAM returns a new, zeroed WRAM.
func NewWRAM() *WRAM {
	return &WRAM{}
}

func bankOf(addr uint16) int {
	if addr < types.WRAM1Start {
		return 0
	}
	return 1
}

// Read returns the value at the given address, 0xC000 - 0xDFFF.
func (w *WRAM) Read(addr uint16) uint8 {
	return w.raw[bankOf(addr)][addr&0xFFF]
}

// Write writes the value at the given address, 0xC000 - 0xDFFF.
func (w *WRAM) Write(addr uint16, v uint8) {
	w.raw[bankOf(addr)][addr&0xFFF] = v
}
