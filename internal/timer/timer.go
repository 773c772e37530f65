// Package timer provides an implementation of the Game Boy
// timer. It is used to generate interrupts at a specific
// frequency. The frequency can be configured using the
// types.TAC register.
package timer

import (
	"github.com/thelolagemann/gbcore/internal/interrupts"
	"github.com/thelolagemann/gbcore/pkg/bits"
)

// selectBits are the bits of the internal divider watched by TIMA,
// indexed by TAC bits 1-0. TIMA increments on the falling edge of
// the selected bit, so every 1024, 16, 64 or 256 cycles.
var selectBits = [4]uint16{512, 8, 32, 128}

// Control is the decoded TAC register.
type Control struct {
	// Enabled is TAC bit 2.
	Enabled bool
	// Period is the number of cycles between TIMA increments.
	Period uint16
}

// DecodeControl decodes a TAC value.
func DecodeControl(tac uint8) Control {
	return Control{
		Enabled: bits.Test(tac, 2),
		Period:  selectBits[tac&0b11] * 2,
	}
}

// Controller is a timer controller. It has four registers:
//
//   - types.DIV: the upper 8 bits of a 16-bit counter incremented every cycle.
//   - types.TIMA: incremented at a rate specified by TAC.
//   - types.TMA: loaded into TIMA when it overflows.
//   - types.TAC: enables TIMA and selects its frequency.
type Controller struct {
	internalDiv uint16

	tima uint8
	tma  uint8
	tac  uint8

	irq *interrupts.Service
}

// NewController returns a new timer controller, requesting
// interrupts.TimerFlag from irq on TIMA overflow.
func NewController(irq *interrupts.Service) *Controller {
	return &Controller{irq: irq}
}

// Tick advances the timer by the given number of cycles.
func (c *Controller) Tick(cycles uint32) {
	for i := uint32(0); i < cycles; i++ {
		c.setDiv(c.internalDiv + 1)
	}
}

// setDiv changes the internal divider, incrementing TIMA when the
// selected bit goes from high to low.
func (c *Controller) setDiv(value uint16) {
	selected := selectBits[c.tac&0b11]
	fallingEdge := c.internalDiv&selected != 0 && value&selected == 0
	c.internalDiv = value

	if fallingEdge && bits.Test(c.tac, 2) {
		c.incrementTIMA()
	}
}

func (c *Controller) incrementTIMA() {
	c.tima++
	if c.tima == 0 {
		c.tima = c.tma
		c.irq.Request(interrupts.TimerFlag)
	}
}

// DIV returns the DIV register.
func (c *Controller) DIV() uint8 {
	return uint8(c.internalDiv >> 8)
}

// ResetDIV resets the internal divider, as done by any write to DIV
// and by STOP.
func (c *Controller) ResetDIV() {
	c.setDiv(0)
}

// TIMA returns the TIMA register.
func (c *Controller) TIMA() uint8 { return c.tima }

// SetTIMA sets the TIMA register.
func (c *Controller) SetTIMA(v uint8) { c.tima = v }

// TMA returns the TMA register.
func (c *Controller) TMA() uint8 { return c.tma }

// SetTMA sets the TMA register.
func (c *Controller) SetTMA(v uint8) { c.tma = v }

// TAC returns the TAC register, the upper 5 bits always read as set.
func (c *Controller) TAC() uint8 {
	return c.tac | 0b1111_1000
}

// SetTAC sets the TAC register.
func (c *Controller) SetTAC(v uint8) {
	c.tac = v & 0b111
}

// Control returns the decoded TAC register.
func (c *Controller) Control() Control {
	return DecodeControl(c.tac)
}
