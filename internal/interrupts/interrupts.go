// Package interrupts holds the interrupt registers of the DMG.
package interrupts

import "github.com/thelolagemann/gbcore/pkg/bits"

const (
	// VBlankFlag is the VBlank interrupt flag (bit 0),
	// which is requested every time the PPU enters
	// VBlank mode.
	VBlankFlag = bits.Bit0
	// LCDFlag is the LCD interrupt flag (bit 1), which
	// is requested by the LCD STAT register when certain
	// conditions are met.
	LCDFlag = bits.Bit1
	// TimerFlag is the Timer interrupt flag (bit 2),
	// which is requested when the timer overflows,
	// (types.TIMA > 0xFF).
	TimerFlag = bits.Bit2
	// SerialFlag is the Serial interrupt flag (bit 3),
	// which is requested when a serial transfer is
	// completed.
	SerialFlag = bits.Bit3
	// JoypadFlag is the Joypad interrupt Flag (bit 4),
	// which is requested when any of the joypad lines
	// go from high to low.
	JoypadFlag = bits.Bit4

	// unusedBits are the upper 3 bits of IF, they always read as set.
	unusedBits = 0xE0
)

// Service holds the interrupt Flag (types.IF) and interrupt Enable
// (types.IE) registers.
//
// When an interrupt is requested, the corresponding bit
// in the Flag register is set. When an interrupt is
// enabled, the corresponding bit in the Enable register
// is set. Dispatching a requested and enabled interrupt
// to its vector is not modelled, the registers can only
// be observed.
type Service struct {
	Flag   uint8 // interrupt Flag (types.IF)
	Enable uint8 // interrupt Enable (types.IE)
}

// NewService returns a new Service.
func NewService() *Service {
	return &Service{}
}

// ReadFlag returns the IF register. The upper 3 bits are always set.
func (s *Service) ReadFlag() uint8 {
	return s.Flag | unusedBits
}

// WriteFlag writes the IF register, only the first 5 bits are used.
func (s *Service) WriteFlag(v uint8) {
	s.Flag = v &^ unusedBits
}

// HasInterrupts returns true if there are any interrupts
// that are requested and enabled.
func (s *Service) HasInterrupts() bool {
	return s.Enable&s.Flag != 0
}

// Request requests the specified interrupt, by setting
// the corresponding bit in the Flag register.
func (s *Service) Request(flag uint8) {
	s.Flag |= flag
}
