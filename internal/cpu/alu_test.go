package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thelolagemann/gbcore/internal/types"
)

func TestAdd(t *testing.T) {
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			result, flags := add(uint8(a), uint8(b), false)
			if result != uint8(a+b) ||
				flags.Carry != (a+b > 0xFF) ||
				flags.HalfCarry != (a&0xF+b&0xF > 0xF) ||
				flags.Zero != (uint8(a+b) == 0) ||
				flags.Subtract {
				t.Fatalf("ADD 0x%02X, 0x%02X: got 0x%02X %+v", a, b, result, flags)
			}
		}
	}
}

func TestSub(t *testing.T) {
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			result, flags := sub(uint8(a), uint8(b), true)
			if result != uint8(a-b-1) ||
				flags.Carry != (a < b+1) ||
				flags.HalfCarry != (a&0xF < b&0xF+1) ||
				flags.Zero != (uint8(a-b-1) == 0) ||
				!flags.Subtract {
				t.Fatalf("SBC 0x%02X, 0x%02X: got 0x%02X %+v", a, b, result, flags)
			}
		}
	}
}

func TestALU(t *testing.T) {
	tests := []struct {
		name     string
		kind     Kind
		a, n     uint8
		carry    bool
		expected uint8
		flags    types.Flags
	}{
		{"ADC with carry", ADC, 0x0F, 0x00, true, 0x10, types.Flags{HalfCarry: true}},
		{"ADD overflow", ADD, 0xFF, 0x01, false, 0x00, types.Flags{Zero: true, HalfCarry: true, Carry: true}},
		{"SUB zero", SUB, 0x3E, 0x3E, false, 0x00, types.Flags{Zero: true, Subtract: true}},
		{"SBC borrow", SBC, 0x00, 0x00, true, 0xFF, types.Flags{Subtract: true, HalfCarry: true, Carry: true}},
		{"CP keeps A", CP, 0x3C, 0x40, false, 0x3C, types.Flags{Subtract: true, Carry: true}},
		{"AND", AND, 0x5A, 0x3F, true, 0x1A, types.Flags{HalfCarry: true}},
		{"AND zero", AND, 0xF0, 0x0F, false, 0x00, types.Flags{Zero: true, HalfCarry: true}},
		{"XOR self", XOR, 0xFF, 0xFF, true, 0x00, types.Flags{Zero: true}},
		{"OR", OR, 0x5A, 0x03, true, 0x5B, types.Flags{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &CPU{}
			c.A = tt.a
			c.F.Carry = tt.carry
			c.alu(tt.kind, tt.n)
			assert.Equal(t, tt.expected, c.A)
			assert.Equal(t, tt.flags, c.F)
		})
	}
}

func TestIncrementDecrement(t *testing.T) {
	v, f := increment(0xFF, types.Flags{Carry: true, Subtract: true})
	assert.Equal(t, uint8(0x00), v)
	assert.Equal(t, types.Flags{Zero: true, HalfCarry: true, Carry: true}, f)

	v, f = increment(0x0E, types.Flags{})
	assert.Equal(t, uint8(0x0F), v)
	assert.Equal(t, types.Flags{}, f)

	v, f = decrement(0x00, types.Flags{})
	assert.Equal(t, uint8(0xFF), v)
	assert.Equal(t, types.Flags{Subtract: true, HalfCarry: true}, f)

	v, f = decrement(0x01, types.Flags{Carry: true})
	assert.Equal(t, uint8(0x00), v)
	assert.Equal(t, types.Flags{Zero: true, Subtract: true, Carry: true}, f)
}

func TestAddHL(t *testing.T) {
	v, f := addHL(0x0FFF, 0x0001, types.Flags{Zero: true, Subtract: true})
	assert.Equal(t, uint16(0x1000), v)
	assert.Equal(t, types.Flags{Zero: true, HalfCarry: true}, f)

	v, f = addHL(0xFFFF, 0x0001, types.Flags{})
	assert.Equal(t, uint16(0x0000), v)
	assert.Equal(t, types.Flags{HalfCarry: true, Carry: true}, f)
}

func TestAddSPSigned(t *testing.T) {
	v, f := addSPSigned(0xFFF8, 0x08)
	assert.Equal(t, uint16(0x0000), v)
	assert.Equal(t, types.Flags{HalfCarry: true, Carry: true}, f)

	v, f = addSPSigned(0x0000, 0xFE)
	assert.Equal(t, uint16(0xFFFE), v)
	assert.Equal(t, types.Flags{}, f)

	v, f = addSPSigned(0xD00F, 0x01)
	assert.Equal(t, uint16(0xD010), v)
	assert.Equal(t, types.Flags{HalfCarry: true}, f)
}

func TestDAA(t *testing.T) {
	tests := []struct {
		name     string
		a        uint8
		flags    types.Flags
		expected uint8
		out      types.Flags
	}{
		{"0x09 + 0x01", 0x0A, types.Flags{}, 0x10, types.Flags{}},
		{"0x99 + 0x01", 0x9A, types.Flags{}, 0x00, types.Flags{Zero: true, Carry: true}},
		{"0x08 + 0x08", 0x10, types.Flags{HalfCarry: true}, 0x16, types.Flags{}},
		{"0x90 + 0x90", 0x20, types.Flags{Carry: true}, 0x80, types.Flags{Carry: true}},
		{"0x10 - 0x01", 0x0F, types.Flags{Subtract: true, HalfCarry: true}, 0x09, types.Flags{Subtract: true}},
		{"0x00 - 0x01", 0xFF, types.Flags{Subtract: true, HalfCarry: true, Carry: true}, 0x99, types.Flags{Subtract: true, Carry: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, f := daa(tt.a, tt.flags)
			assert.Equal(t, tt.expected, v)
			assert.Equal(t, tt.out, f)
		})
	}
}

func TestRotate(t *testing.T) {
	tests := []struct {
		kind     Kind
		n        uint8
		carryIn  bool
		expected uint8
		carry    bool
	}{
		{RLC, 0x85, false, 0x0B, true},
		{RL, 0x80, false, 0x00, true},
		{RL, 0x11, true, 0x23, false},
		{RRC, 0x01, false, 0x80, true},
		{RR, 0x01, false, 0x00, true},
		{RR, 0x8A, true, 0xC5, false},
		{SLA, 0xFF, false, 0xFE, true},
		{SRA, 0x8A, false, 0xC5, false},
		{SRA, 0x01, false, 0x00, true},
		{SRL, 0xFF, true, 0x7F, true},
		{SWAP, 0xF1, true, 0x1F, false},
	}
	for _, tt := range tests {
		v, carry := rotate(tt.kind, tt.n, tt.carryIn)
		assert.Equal(t, tt.expected, v, "kind %d of 0x%02X", tt.kind, tt.n)
		assert.Equal(t, tt.carry, carry, "kind %d of 0x%02X", tt.kind, tt.n)
	}
}
