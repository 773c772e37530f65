package cpu

import (
	"fmt"

	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/bits"
)

// execute runs the instruction at PC, and returns the address of the
// next instruction and the number of cycles taken. PC itself is only
// advanced by Step.
func (c *CPU) execute(in *Instruction) (uint16, uint32, error) {
	next := c.PC + in.Timing.Length
	cycles := in.Timing.Cycles

	switch in.Kind {
	case NOP:
	case STOP:
		c.stopped = true
		c.bus.ResetDivider()
	case HALT:
		c.halted = true
	case DI:
		c.ime = false
		c.pendingIME = false
	case EI:
		c.pendingIME = true

	case LD:
		v, err := c.readByte(in.Source)
		if err != nil {
			return 0, 0, err
		}
		if err := c.writeByte(in.Target, v); err != nil {
			return 0, 0, err
		}
	case LD16, ADDSP:
		v, err := c.readWord(in.WordSource)
		if err != nil {
			return 0, 0, err
		}
		if err := c.writeWord(in.WordTarget, v); err != nil {
			return 0, 0, err
		}
	case PUSH:
		if err := c.push(c.pair(in.WordSource.Pair)); err != nil {
			return 0, 0, err
		}
	case POP:
		v, err := c.pop()
		if err != nil {
			return 0, 0, err
		}
		c.setPair(in.WordTarget.Pair, v)

	case ADD, ADC, SUB, SBC, AND, XOR, OR, CP:
		v, err := c.readByte(in.Source)
		if err != nil {
			return 0, 0, err
		}
		c.alu(in.Kind, v)
	case INC, DEC:
		v, err := c.readByte(in.Target)
		if err != nil {
			return 0, 0, err
		}
		if in.Kind == INC {
			v, c.F = increment(v, c.F)
		} else {
			v, c.F = decrement(v, c.F)
		}
		if err := c.writeByte(in.Target, v); err != nil {
			return 0, 0, err
		}
	case INC16, DEC16:
		v, _ := c.readWord(in.WordTarget)
		if in.Kind == INC16 {
			v++
		} else {
			v--
		}
		_ = c.writeWord(in.WordTarget, v)
	case ADD16:
		v, _ := c.readWord(in.WordSource)
		var hl uint16
		hl, c.F = addHL(c.HL(), v, c.F)
		c.SetHL(hl)
	case DAA:
		c.A, c.F = daa(c.A, c.F)
	case CPL:
		c.A = ^c.A
		c.F.Subtract = true
		c.F.HalfCarry = true
	case SCF:
		c.F = types.Flags{Zero: c.F.Zero, Carry: true}
	case CCF:
		c.F = types.Flags{Zero: c.F.Zero, Carry: !c.F.Carry}

	case RLCA, RRCA, RLA, RRA:
		var carry bool
		c.A, carry = rotate(in.Kind, c.A, c.F.Carry)
		c.F = types.Flags{Carry: carry}
	case RLC, RRC, RL, RR, SLA, SRA, SWAP, SRL:
		v, err := c.readByte(in.Target)
		if err != nil {
			return 0, 0, err
		}
		var carry bool
		v, carry = rotate(in.Kind, v, c.F.Carry)
		c.F = types.Flags{Zero: v == 0, Carry: carry}
		if err := c.writeByte(in.Target, v); err != nil {
			return 0, 0, err
		}
	case BIT:
		v, err := c.readByte(in.Source)
		if err != nil {
			return 0, 0, err
		}
		c.F = types.Flags{Zero: !bits.Test(v, in.Bit), HalfCarry: true, Carry: c.F.Carry}
	case RES, SET:
		v, err := c.readByte(in.Target)
		if err != nil {
			return 0, 0, err
		}
		if in.Kind == RES {
			v = bits.Reset(v, in.Bit)
		} else {
			v = bits.Set(v, in.Bit)
		}
		if err := c.writeByte(in.Target, v); err != nil {
			return 0, 0, err
		}

	case JP:
		var taken bool
		if taken, cycles = c.branch(in); taken {
			address, err := c.readWord(in.WordSource)
			if err != nil {
				return 0, 0, err
			}
			next = address
		}
	case JR:
		var taken bool
		if taken, cycles = c.branch(in); taken {
			e, err := c.immediate()
			if err != nil {
				return 0, 0, err
			}
			next += uint16(int8(e))
		}
	case CALL:
		var taken bool
		if taken, cycles = c.branch(in); taken {
			address, err := c.readWord(in.WordSource)
			if err != nil {
				return 0, 0, err
			}
			if err := c.push(next); err != nil {
				return 0, 0, err
			}
			next = address
		}
	case RET:
		var taken bool
		if taken, cycles = c.branch(in); taken {
			address, err := c.pop()
			if err != nil {
				return 0, 0, err
			}
			next = address
		}
	case RETI:
		address, err := c.pop()
		if err != nil {
			return 0, 0, err
		}
		next = address
		c.ime = true
	case RST:
		if err := c.push(next); err != nil {
			return 0, 0, err
		}
		next = in.Vector

	default:
		panic(fmt.Sprintf("cpu: unhandled instruction %s", in))
	}

	return next, cycles, nil
}

// push writes value to the stack, high byte first.
func (c *CPU) push(value uint16) error {
	high, low := bits.Split(value)
	c.SP--
	if err := c.bus.Write(c.SP, high); err != nil {
		return err
	}
	c.SP--
	return c.bus.Write(c.SP, low)
}

// pop reads a value from the stack, low byte first.
func (c *CPU) pop() (uint16, error) {
	low, err := c.bus.Read(c.SP)
	if err != nil {
		return 0, err
	}
	c.SP++
	high, err := c.bus.Read(c.SP)
	if err != nil {
		return 0, err
	}
	c.SP++
	return bits.Join(high, low), nil
}
