// Package cpu implements the Sharp LR35902 CPU of the DMG: the
// instruction tables, and the fetch, decode and execute loop.
package cpu

import (
	"fmt"

	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/bits"
)

const (
	// ClockSpeed is the clock speed of the CPU.
	ClockSpeed = 4194304

	// EntryPoint is the address execution starts from once a
	// cartridge has been loaded.
	EntryPoint uint16 = 0x0100

	// idleCycles is the cost of a step while halted or stopped.
	idleCycles = 4
)

// Bus is the memory bus the CPU reads and writes through.
type Bus interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, value uint8) error
	// ResetDivider resets the DIV register, as done by STOP.
	ResetDivider()
}

// CPU represents the Gameboy CPU. It is responsible for executing instructions.
type CPU struct {
	// Registers contains the 8-bit registers and the flags.
	types.Registers

	// PC is the program counter, it points to the next instruction to be executed.
	PC uint16
	// SP is the stack pointer, it points to the top of the stack.
	SP uint16

	// Cycles is the number of clock cycles executed, it wraps around
	// on overflow.
	Cycles uint32

	halted     bool
	stopped    bool
	ime        bool
	pendingIME bool

	bus Bus
}

// NewCPU creates a new CPU instance with the given Bus.
// The Bus is used to read and write to the memory.
func NewCPU(bus Bus) *CPU {
	return &CPU{bus: bus}
}

// Reset clears the CPU state and points the program counter at the
// cartridge entry point.
func (c *CPU) Reset() {
	*c = CPU{
		PC:  EntryPoint,
		bus: c.bus,
	}
}

// Halted reports whether the CPU has executed HALT.
func (c *CPU) Halted() bool { return c.halted }

// Stopped reports whether the CPU has executed STOP.
func (c *CPU) Stopped() bool { return c.stopped }

// IME reports whether the interrupt master enable flag is set.
func (c *CPU) IME() bool { return c.ime }

// PendingIME reports whether an EI is waiting for the following
// instruction to complete.
func (c *CPU) PendingIME() bool { return c.pendingIME }

// Step executes a single instruction and returns the number of clock
// cycles it took. Errors from decode or from the bus are returned
// as-is, the CPU state is left as it was before the failing instruction
// except for any memory writes already made.
func (c *CPU) Step() (uint32, error) {
	if c.halted || c.stopped {
		c.Cycles += idleCycles
		return idleCycles, nil
	}

	in, err := c.fetch()
	if err != nil {
		return 0, err
	}

	// EI takes effect after the instruction that follows it
	enableIME := c.pendingIME

	next, cycles, err := c.execute(in)
	if err != nil {
		return 0, err
	}

	c.PC = next
	c.Cycles += cycles

	if enableIME && c.pendingIME {
		c.ime = true
		c.pendingIME = false
	}

	return cycles, nil
}

// fetch reads and decodes the instruction at PC.
func (c *CPU) fetch() (*Instruction, error) {
	opcode, err := c.bus.Read(c.PC)
	if err != nil {
		return nil, err
	}

	prefixed := opcode == prefixCB
	if prefixed {
		if opcode, err = c.bus.Read(c.PC + 1); err != nil {
			return nil, err
		}
	}

	in, ok := Decode(opcode, prefixed)
	if !ok {
		return nil, &types.UnknownOpcodeError{Opcode: opcode, Prefixed: prefixed}
	}
	return &in, nil
}

// register returns a pointer to the given 8-bit register.
func (c *CPU) register(r Reg8) *uint8 {
	switch r {
	case RegA:
		return &c.A
	case RegB:
		return &c.B
	case RegC:
		return &c.C
	case RegD:
		return &c.D
	case RegE:
		return &c.E
	case RegH:
		return &c.H
	case RegL:
		return &c.L
	}
	panic(fmt.Sprintf("cpu: invalid register %d", r))
}

func (c *CPU) pair(p Reg16) uint16 {
	switch p {
	case AF:
		return c.AF()
	case BC:
		return c.BC()
	case DE:
		return c.DE()
	case HL:
		return c.HL()
	}
	panic(fmt.Sprintf("cpu: invalid register pair %d", p))
}

func (c *CPU) setPair(p Reg16, value uint16) {
	switch p {
	case AF:
		c.SetAF(value)
	case BC:
		c.SetBC(value)
	case DE:
		c.SetDE(value)
	case HL:
		c.SetHL(value)
	default:
		panic(fmt.Sprintf("cpu: invalid register pair %d", p))
	}
}

// immediate reads the byte following the opcode.
func (c *CPU) immediate() (uint8, error) {
	return c.bus.Read(c.PC + 1)
}

// immediate16 reads the little endian word following the opcode.
func (c *CPU) immediate16() (uint16, error) {
	return c.read16(c.PC + 1)
}

func (c *CPU) read16(address uint16) (uint16, error) {
	low, err := c.bus.Read(address)
	if err != nil {
		return 0, err
	}
	high, err := c.bus.Read(address + 1)
	if err != nil {
		return 0, err
	}
	return bits.Join(high, low), nil
}

// address resolves the memory address of a byte operand, and whether
// the operand is in memory at all.
func (c *CPU) address(o ByteOperand) (uint16, bool, error) {
	switch o.Mode {
	case ByteIndirect:
		return c.pair(o.Pair), true, nil
	case ByteHLI, ByteHLD:
		return c.HL(), true, nil
	case ByteHighC:
		return 0xFF00 | uint16(c.C), true, nil
	case ByteHighImmediate:
		n, err := c.immediate()
		return 0xFF00 | uint16(n), true, err
	case ByteDirect:
		a, err := c.immediate16()
		return a, true, err
	}
	return 0, false, nil
}

// stepHL applies the post increment or decrement of (HL+) and (HL-).
func (c *CPU) stepHL(o ByteOperand) {
	switch o.Mode {
	case ByteHLI:
		c.SetHL(c.HL() + 1)
	case ByteHLD:
		c.SetHL(c.HL() - 1)
	}
}

func (c *CPU) readByte(o ByteOperand) (uint8, error) {
	switch o.Mode {
	case ByteRegister:
		return *c.register(o.Reg), nil
	case ByteImmediate:
		return c.immediate()
	}

	address, _, err := c.address(o)
	if err != nil {
		return 0, err
	}
	v, err := c.bus.Read(address)
	if err != nil {
		return 0, err
	}
	c.stepHL(o)
	return v, nil
}

func (c *CPU) writeByte(o ByteOperand, value uint8) error {
	if o.Mode == ByteRegister {
		*c.register(o.Reg) = value
		return nil
	}

	address, ok, err := c.address(o)
	if err != nil {
		return err
	}
	if !ok {
		panic(fmt.Sprintf("cpu: byte operand %s is not writable", o))
	}
	if err := c.bus.Write(address, value); err != nil {
		return err
	}
	c.stepHL(o)
	return nil
}

func (c *CPU) readWord(o WordOperand) (uint16, error) {
	switch o.Mode {
	case WordPair:
		return c.pair(o.Pair), nil
	case WordSP:
		return c.SP, nil
	case WordImmediate:
		return c.immediate16()
	case WordSPPlusI8:
		e, err := c.immediate()
		if err != nil {
			return 0, err
		}
		var result uint16
		result, c.F = addSPSigned(c.SP, e)
		return result, nil
	}
	panic(fmt.Sprintf("cpu: word operand %s is not readable", o))
}

func (c *CPU) writeWord(o WordOperand, value uint16) error {
	switch o.Mode {
	case WordPair:
		c.setPair(o.Pair, value)
		return nil
	case WordSP:
		c.SP = value
		return nil
	case WordDirect:
		address, err := c.immediate16()
		if err != nil {
			return err
		}
		high, low := bits.Split(value)
		if err := c.bus.Write(address, low); err != nil {
			return err
		}
		return c.bus.Write(address+1, high)
	}
	panic(fmt.Sprintf("cpu: word operand %s is not writable", o))
}

// test evaluates the condition of a control flow instruction.
func (c *CPU) test(t JumpTest) bool {
	switch t {
	case Always:
		return true
	case NotZero:
		return !c.F.Zero
	case Zero:
		return c.F.Zero
	case NotCarry:
		return !c.F.Carry
	case Carry:
		return c.F.Carry
	}
	panic(fmt.Sprintf("cpu: invalid jump test %d", t))
}

// branch evaluates the condition of in, and returns whether the branch
// is taken and the cost of the instruction.
func (c *CPU) branch(in *Instruction) (bool, uint32) {
	if in.Test == Always {
		return true, in.Timing.Cycles
	}
	if c.test(in.Test) {
		return true, in.Timing.TakenCycles()
	}
	return false, in.Timing.Cycles
}
