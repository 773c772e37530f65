package cartridge

import (
	"fmt"

	"github.com/thelolagemann/gbcore/internal/types"
)

// romOnly is the controller of cartridges without bank switching. The
// whole ROM is mapped directly at 0x0000 - 0x7FFF, and an optional
// single RAM bank at 0xA000 - 0xBFFF.
type romOnly struct {
	rom []byte
	ram *RAMBank
}

func (*romOnly) isController() {}

func newROMOnly(rom []byte, header Header) (*romOnly, error) {
	if header.ROMBanks != 2 || len(rom) != ROMBankSize*header.ROMBanks {
		return nil, fmt.Errorf("%w: ROM only cartridge must be %d bytes, got %d", types.ErrInvalidROM, 2*ROMBankSize, len(rom))
	}

	r := &romOnly{
		rom: make([]byte, len(rom)),
	}
	copy(r.rom, rom)
	if header.RAMBanks > 0 {
		r.ram = new(RAMBank)
	}

	return r, nil
}

func (r *romOnly) readROM(address uint16) (uint8, error) {
	if address > types.ROMEnd {
		return 0, &types.InvalidMemoryReadError{Address: address}
	}
	if int(address) >= len(r.rom) {
		return 0, &types.InvalidROMIndexError{Index: int(address)}
	}
	return r.rom[address], nil
}

// writeROM always fails, there are no registers to write to.
func (r *romOnly) writeROM(address uint16, value uint8) error {
	return &types.InvalidMemoryWriteError{Address: address, Value: value}
}

func (r *romOnly) readRAM(address uint16) (uint8, error) {
	if r.ram == nil || address < types.ExternalRAMStart || address > types.ExternalRAMEnd {
		return 0, &types.InvalidMemoryReadError{Address: address}
	}
	return r.ram[address-types.ExternalRAMStart], nil
}

func (r *romOnly) writeRAM(address uint16, value uint8) error {
	if r.ram == nil || address < types.ExternalRAMStart || address > types.ExternalRAMEnd {
		return &types.InvalidMemoryWriteError{Address: address, Value: value}
	}
	r.ram[address-types.ExternalRAMStart] = value
	return nil
}

func (r *romOnly) ramBanks() []RAMBank {
	if r.ram == nil {
		return nil
	}
	return []RAMBank{*r.ram}
}

func (r *romOnly) loadRAM(banks []RAMBank) error {
	want := 0
	if r.ram != nil {
		want = 1
	}
	if len(banks) != want {
		return fmt.Errorf("cartridge: expected %d RAM banks, got %d", want, len(banks))
	}
	if want == 1 {
		*r.ram = banks[0]
	}
	return nil
}
