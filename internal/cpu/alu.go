package cpu

import (
	"fmt"

	"github.com/thelolagemann/gbcore/internal/types"
)

// add returns a + b (+ carry) and the resulting flags.
//
//	ADD A, n / ADC A, n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func add(a, b uint8, carry bool) (uint8, types.Flags) {
	c := b2u(carry)
	sum := uint16(a) + uint16(b) + uint16(c)
	return uint8(sum), types.Flags{
		Zero:      uint8(sum) == 0,
		HalfCarry: a&0xF+b&0xF+c > 0xF,
		Carry:     sum > 0xFF,
	}
}

// sub returns a - b (- carry) and the resulting flags. CP uses the
// flags and discards the result.
//
//	SUB n / SBC A, n / CP n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if no borrow from bit 4.
//	C - Set if no borrow.
func sub(a, b uint8, carry bool) (uint8, types.Flags) {
	c := b2u(carry)
	result := a - b - c
	return result, types.Flags{
		Zero:      result == 0,
		Subtract:  true,
		HalfCarry: uint16(a&0xF) < uint16(b&0xF)+uint16(c),
		Carry:     uint16(a) < uint16(b)+uint16(c),
	}
}

// alu applies one of the eight accumulator operations to A and n.
func (c *CPU) alu(kind Kind, n uint8) {
	switch kind {
	case ADD:
		c.A, c.F = add(c.A, n, false)
	case ADC:
		c.A, c.F = add(c.A, n, c.F.Carry)
	case SUB:
		c.A, c.F = sub(c.A, n, false)
	case SBC:
		c.A, c.F = sub(c.A, n, c.F.Carry)
	case CP:
		_, c.F = sub(c.A, n, false)
	case AND:
		c.A &= n
		c.F = types.Flags{Zero: c.A == 0, HalfCarry: true}
	case XOR:
		c.A ^= n
		c.F = types.Flags{Zero: c.A == 0}
	case OR:
		c.A |= n
		c.F = types.Flags{Zero: c.A == 0}
	default:
		panic(fmt.Sprintf("cpu: kind %d is not an ALU instruction", kind))
	}
}

// increment returns n + 1, leaving the carry flag untouched.
//
//	INC n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Not affected.
func increment(n uint8, flags types.Flags) (uint8, types.Flags) {
	result := n + 1
	return result, types.Flags{
		Zero:      result == 0,
		HalfCarry: n&0xF == 0xF,
		Carry:     flags.Carry,
	}
}

// decrement returns n - 1, leaving the carry flag untouched.
//
//	DEC n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if no borrow from bit 4.
//	C - Not affected.
func decrement(n uint8, flags types.Flags) (uint8, types.Flags) {
	result := n - 1
	return result, types.Flags{
		Zero:      result == 0,
		Subtract:  true,
		HalfCarry: n&0xF == 0,
		Carry:     flags.Carry,
	}
}

// addHL returns hl + nn.
//
//	ADD HL, nn
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Set if carry from bit 11.
//	C - Set if carry from bit 15.
func addHL(hl, nn uint16, flags types.Flags) (uint16, types.Flags) {
	sum := uint32(hl) + uint32(nn)
	return uint16(sum), types.Flags{
		Zero:      flags.Zero,
		HalfCarry: hl&0xFFF+nn&0xFFF > 0xFFF,
		Carry:     sum > 0xFFFF,
	}
}

// addSPSigned returns sp plus the signed offset e. The carries are
// those of the unsigned addition of e to the low byte of sp.
//
//	ADD SP, e / LD HL, SP+e
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func addSPSigned(sp uint16, e uint8) (uint16, types.Flags) {
	return sp + uint16(int8(e)), types.Flags{
		HalfCarry: sp&0xF+uint16(e&0xF) > 0xF,
		Carry:     sp&0xFF+uint16(e) > 0xFF,
	}
}

// daa adjusts a into binary-coded decimal after an addition or
// subtraction.
//
//	DAA
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Not affected.
//	H - Reset.
//	C - Set or reset according to operation.
func daa(a uint8, flags types.Flags) (uint8, types.Flags) {
	carry := flags.Carry
	if !flags.Subtract {
		if flags.Carry || a > 0x99 {
			a += 0x60
			carry = true
		}
		if flags.HalfCarry || a&0xF > 0x9 {
			a += 0x06
		}
	} else {
		if flags.Carry {
			a -= 0x60
		}
		if flags.HalfCarry {
			a -= 0x06
		}
	}
	return a, types.Flags{
		Zero:     a == 0,
		Subtract: flags.Subtract,
		Carry:    carry,
	}
}

func b2u(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
