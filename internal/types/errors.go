package types

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidROM is returned when a ROM image is too short to hold a
	// header, or its length doesn't match what the header declares.
	ErrInvalidROM = errors.New("invalid ROM")
	// ErrNoROM is returned by any memory access made before a cartridge
	// has been attached to the bus.
	ErrNoROM = errors.New("no ROM loaded")
)

// InvalidMemoryReadError is returned when an address can't be read from.
type InvalidMemoryReadError struct {
	Address uint16
}

func (e *InvalidMemoryReadError) Error() string {
	return fmt.Sprintf("invalid read on address 0x%04X", e.Address)
}

// InvalidMemoryWriteError is returned when an address can't be written to.
type InvalidMemoryWriteError struct {
	Address uint16
	Value   uint8
}

func (e *InvalidMemoryWriteError) Error() string {
	return fmt.Sprintf("invalid write on address 0x%04X with value 0x%02X", e.Address, e.Value)
}

// UnknownOpcodeError is returned when the CPU fetches an opcode that
// has no entry in the instruction table it was decoded against.
type UnknownOpcodeError struct {
	Opcode   uint8
	Prefixed bool
}

func (e *UnknownOpcodeError) Error() string {
	if e.Prefixed {
		return fmt.Sprintf("unknown opcode: 0xCB 0x%02X (prefixed)", e.Opcode)
	}
	return fmt.Sprintf("unknown opcode: 0x%02X", e.Opcode)
}

// InvalidROMIndexError is returned when a ROM read falls outside the image.
type InvalidROMIndexError struct {
	Index int
}

func (e *InvalidROMIndexError) Error() string {
	return fmt.Sprintf("ROM has no index %d", e.Index)
}

// UnknownCartridgeTypeError is returned when the cartridge type byte
// (0x0147) doesn't match any known cartridge.
type UnknownCartridgeTypeError struct {
	Code uint8
}

func (e *UnknownCartridgeTypeError) Error() string {
	return fmt.Sprintf("unknown cartridge type code 0x%02X", e.Code)
}

// UnsupportedCartridgeTypeError is returned when the cartridge type is
// known, but there is no memory bank controller implemented for it.
type UnsupportedCartridgeTypeError struct {
	Type fmt.Stringer
}

func (e *UnsupportedCartridgeTypeError) Error() string {
	return fmt.Sprintf("the cartridge type %q is not supported", e.Type.String())
}

// InvalidROMSizeCodeError is returned when the ROM size byte (0x0148)
// is not a known code.
type InvalidROMSizeCodeError struct {
	Code uint8
}

func (e *InvalidROMSizeCodeError) Error() string {
	return fmt.Sprintf("header declares an invalid ROM size code 0x%02X", e.Code)
}

// InvalidRAMSizeCodeError is returned when the RAM size byte (0x0149)
// is not a known code.
type InvalidRAMSizeCodeError struct {
	Code uint8
}

func (e *InvalidRAMSizeCodeError) Error() string {
	return fmt.Sprintf("header declares an invalid RAM size code 0x%02X", e.Code)
}
