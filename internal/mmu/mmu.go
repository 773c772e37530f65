// Package mmu provides a memory management unit for the Game Boy. The
// MMU owns every block of memory and every hardware register, and routes
// each byte of the 64kB address space to its owner.
package mmu

import (
	"errors"
	"io"

	"github.com/thelolagemann/gbcore/internal/cartridge"
	"github.com/thelolagemann/gbcore/internal/interrupts"
	"github.com/thelolagemann/gbcore/internal/ppu"
	"github.com/thelolagemann/gbcore/internal/ram"
	"github.com/thelolagemann/gbcore/internal/serial"
	"github.com/thelolagemann/gbcore/internal/timer"
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/log"
)

// ErrCartridgeAttached is returned when attaching a cartridge to an
// MMU that already has one. Reloading a ROM needs a new MMU.
var ErrCartridgeAttached = errors.New("a cartridge is already attached")

// MMU is the memory management unit for the Game Boy. It handles all
// memory reads and writes to the Game Boy's 64kB of memory.
type MMU struct {
	// 0x0000 - 0x7FFF - ROM (32kB)
	// 0xA000 - 0xBFFF - External RAM (8kB)
	cart *cartridge.Cartridge

	// 0x8000 - 0x9FFF - Video RAM (8kB)
	vRAM *ppu.VRAM

	// 0xC000 - 0xDFFF - Work RAM (8kB)
	wRAM *WRAM

	// 0xFE00 - 0xFE9F - Sprite Attribute Table (160B)
	oam *ppu.OAM

	// 0xFF00 - 0xFF7F - I/O Registers
	timer  *timer.Controller
	irq    *interrupts.Service
	serial *serial.Controller
	ly     uint8

	// 0xFF80 - 0xFFFE - Zero Page RAM (127B)
	zRAM *ram.RAM

	Log log.Logger
}

// NewMMU returns a new MMU without a cartridge. Every access fails with
// types.ErrNoROM until one is attached. Serial output is written to
// serialOut, if not nil.
func NewMMU(logger log.Logger, serialOut io.Writer) *MMU {
	if logger == nil {
		logger = log.NewNullLogger()
	}
	irq := interrupts.NewService()
	return &MMU{
		vRAM:   ppu.NewVRAM(),
		wRAM:   NewWRAM(),
		oam:    ppu.NewOAM(),
		timer:  timer.NewController(irq),
		irq:    irq,
		serial: serial.NewController(serialOut, logger),
		zRAM:   ram.NewRAM(uint32(types.HRAMEnd-types.HRAMStart) + 1),
		Log:    logger,
	}
}

// AttachCartridge attaches the cartridge to the MMU. An MMU holds a
// single cartridge for its whole life.
func (m *MMU) AttachCartridge(cart *cartridge.Cartridge) error {
	if m.cart != nil {
		return ErrCartridgeAttached
	}
	m.cart = cart
	return nil
}

// Cartridge returns the attached cartridge, or nil.
func (m *MMU) Cartridge() *cartridge.Cartridge { return m.cart }

// VRAM returns the video RAM.
func (m *MMU) VRAM() *ppu.VRAM { return m.vRAM }

// OAM returns the object attribute memory.
func (m *MMU) OAM() *ppu.OAM { return m.oam }

// Timer returns the timer controller.
func (m *MMU) Timer() *timer.Controller { return m.timer }

// Interrupts returns the interrupt registers.
func (m *MMU) Interrupts() *interrupts.Service { return m.irq }

// Serial returns the serial controller.
func (m *MMU) Serial() *serial.Controller { return m.serial }

// Tick advances the components driven by the clock.
func (m *MMU) Tick(cycles uint32) {
	m.timer.Tick(cycles)
}

// ResetDivider resets the DIV register.
func (m *MMU) ResetDivider() {
	m.timer.ResetDIV()
}

// Read returns the value at the given address. It handles all the memory
// regions, I/O, etc.
func (m *MMU) Read(address uint16) (uint8, error) {
	if m.cart == nil {
		return 0, types.ErrNoROM
	}

	switch {
	case address <= types.ROMEnd:
		return m.cart.ReadROM(address)
	case address <= types.VRAMEnd:
		return m.vRAM.Read(address - types.VRAMStart), nil
	case address <= types.ExternalRAMEnd:
		return m.cart.ReadRAM(address)
	case address <= types.WRAM1End:
		return m.wRAM.Read(address), nil
	case address <= types.EchoEnd:
		return 0, nil
	case address <= types.OAMEnd:
		return m.oam.Read(address - types.OAMStart), nil
	case address <= types.UnusableEnd:
		return 0, nil
	case address <= types.IOEnd:
		return m.readIO(address), nil
	case address <= types.HRAMEnd:
		return m.zRAM.Read(address - types.HRAMStart), nil
	default:
		return m.irq.Enable, nil
	}
}

// Write writes the value to the given address.
func (m *MMU) Write(address uint16, value uint8) error {
	if m.cart == nil {
		return types.ErrNoROM
	}

	switch {
	case address <= types.ROMEnd:
		return m.cart.WriteROM(address, value)
	case address <= types.VRAMEnd:
		m.vRAM.Write(address-types.VRAMStart, value)
	case address <= types.ExternalRAMEnd:
		return m.cart.WriteRAM(address, value)
	case address <= types.WRAM1End:
		m.wRAM.Write(address, value)
	case address <= types.EchoEnd:
		m.Log.Debugf("mmu: ignoring write to echo RAM 0x%04X", address)
	case address <= types.OAMEnd:
		m.oam.Write(address-types.OAMStart, value)
	case address <= types.UnusableEnd:
		m.Log.Debugf("mmu: ignoring write to unusable memory 0x%04X", address)
	case address <= types.IOEnd:
		m.writeIO(address, value)
	case address <= types.HRAMEnd:
		m.zRAM.Write(address-types.HRAMStart, value)
	default:
		m.irq.Enable = value
	}
	return nil
}

// readIO reads a hardware register. Registers of components that
// aren't emulated read as 0.
func (m *MMU) readIO(address uint16) uint8 {
	switch address {
	case types.SB:
		return m.serial.SB
	case types.SC:
		return m.serial.SC
	case types.DIV:
		return m.timer.DIV()
	case types.TIMA:
		return m.timer.TIMA()
	case types.TMA:
		return m.timer.TMA()
	case types.TAC:
		return m.timer.TAC()
	case types.IF:
		return m.irq.ReadFlag()
	case types.LY:
		return m.ly
	}
	return 0
}

// writeIO writes a hardware register. Writes to registers of components
// that aren't emulated are ignored.
func (m *MMU) writeIO(address uint16, value uint8) {
	switch address {
	case types.SB:
		m.serial.WriteSB(value)
	case types.SC:
		m.serial.WriteSC(value)
	case types.DIV:
		// any write resets the divider
		m.timer.ResetDIV()
	case types.TIMA:
		m.timer.SetTIMA(value)
	case types.TMA:
		m.timer.SetTMA(value)
	case types.TAC:
		m.timer.SetTAC(value)
	case types.IF:
		m.irq.WriteFlag(value)
	case types.LY:
		m.ly = value
	}
}
