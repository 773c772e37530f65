// Package cartridge provides the Cartridge for the DMG. The cartridge
// holds the game ROM and any external RAM, and decides how the bus
// sees them through its memory bank controller.
package cartridge

import (
	"fmt"

	"github.com/thelolagemann/gbcore/internal/types"
)

const (
	// ROMBankSize is the size of a single ROM bank.
	ROMBankSize = 16 * 1024
	// RAMBankSize is the size of a single external RAM bank.
	RAMBankSize = 8 * 1024
)

// RAMBank is a single bank of external RAM.
type RAMBank = [RAMBankSize]byte

// controller is the memory bank controller of a cartridge. The set of
// controllers is closed: every implementation lives in this package and
// is listed in each dispatch switch of Cartridge, so adding a banked
// controller never changes the bus or CPU.
type controller interface {
	isController()
}

// Cartridge represents a game cartridge with a parsed header.
type Cartridge struct {
	header Header
	mbc    controller
}

// New parses the header of rom and returns a Cartridge with the
// memory bank controller the header asks for.
func New(rom []byte) (*Cartridge, error) {
	header, err := ParseHeader(rom)
	if err != nil {
		return nil, err
	}

	var mbc controller
	switch header.CartridgeType {
	case ROM, ROMRAM, ROMRAMBATT:
		mbc, err = newROMOnly(rom, header)
	default:
		return nil, &types.UnsupportedCartridgeTypeError{Type: header.CartridgeType}
	}
	if err != nil {
		return nil, err
	}

	return &Cartridge{
		header: header,
		mbc:    mbc,
	}, nil
}

// Header returns the parsed cartridge header.
func (c *Cartridge) Header() Header {
	return c.header
}

// Title returns the title of the cartridge, or an empty string if
// the title couldn't be decoded.
func (c *Cartridge) Title() string {
	return c.header.Title
}

// HasBattery reports whether the external RAM is battery backed.
func (c *Cartridge) HasBattery() bool {
	return c.header.CartridgeType.HasBattery()
}

// ReadROM reads a byte from the ROM area (0x0000 - 0x7FFF).
func (c *Cartridge) ReadROM(address uint16) (uint8, error) {
	switch m := c.mbc.(type) {
	case *romOnly:
		return m.readROM(address)
	}
	panic(fmt.Sprintf("cartridge: unhandled controller %T", c.mbc))
}

// WriteROM writes a byte to the ROM area (0x0000 - 0x7FFF). Banked
// controllers interpret these writes as bank selection.
func (c *Cartridge) WriteROM(address uint16, value uint8) error {
	switch m := c.mbc.(type) {
	case *romOnly:
		return m.writeROM(address, value)
	}
	panic(fmt.Sprintf("cartridge: unhandled controller %T", c.mbc))
}

// ReadRAM reads a byte from external RAM (0xA000 - 0xBFFF).
func (c *Cartridge) ReadRAM(address uint16) (uint8, error) {
	switch m := c.mbc.(type) {
	case *romOnly:
		return m.readRAM(address)
	}
	panic(fmt.Sprintf("cartridge: unhandled controller %T", c.mbc))
}

// WriteRAM writes a byte to external RAM (0xA000 - 0xBFFF).
func (c *Cartridge) WriteRAM(address uint16, value uint8) error {
	switch m := c.mbc.(type) {
	case *romOnly:
		return m.writeRAM(address, value)
	}
	panic(fmt.Sprintf("cartridge: unhandled controller %T", c.mbc))
}

// RAMBanks returns a copy of the external RAM banks.
func (c *Cartridge) RAMBanks() []RAMBank {
	switch m := c.mbc.(type) {
	case *romOnly:
		return m.ramBanks()
	}
	panic(fmt.Sprintf("cartridge: unhandled controller %T", c.mbc))
}

// LoadRAM restores the external RAM banks, e.g. from a battery save.
// The number of banks must match the cartridge.
func (c *Cartridge) LoadRAM(banks []RAMBank) error {
	switch m := c.mbc.(type) {
	case *romOnly:
		return m.loadRAM(banks)
	}
	panic(fmt.Sprintf("cartridge: unhandled controller %T", c.mbc))
}
