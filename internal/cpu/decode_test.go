package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var unknownOpcodes = []uint8{0xCB, 0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD}

func TestDecode_Plain(t *testing.T) {
	unknown := map[uint8]bool{}
	for _, opcode := range unknownOpcodes {
		unknown[opcode] = true
	}

	defined := 0
	for i := 0; i < 256; i++ {
		opcode := uint8(i)
		in, ok := Decode(opcode, false)
		again, okAgain := Decode(opcode, false)
		assert.Equal(t, ok, okAgain)
		assert.Equal(t, in, again, "decode of 0x%02X is not stable", opcode)

		if unknown[opcode] {
			assert.False(t, ok, "0x%02X should be unknown", opcode)
			continue
		}
		require.True(t, ok, "0x%02X should be defined", opcode)
		assert.Equal(t, opcode, in.Timing.Opcode)
		assert.False(t, in.Timing.Prefixed)
		assert.NotEmpty(t, in.Name)
		assert.NotZero(t, in.Timing.Length)
		assert.NotZero(t, in.Timing.Cycles)
		defined++
	}
	assert.Equal(t, 244, defined)
}

func TestDecode_Prefixed(t *testing.T) {
	for i := 0; i < 256; i++ {
		in, ok := Decode(uint8(i), true)
		require.True(t, ok, "0xCB 0x%02X should be defined", i)
		assert.True(t, in.Timing.Prefixed)
		assert.Equal(t, uint16(2), in.Timing.Length)
		assert.False(t, in.Timing.HasTakenCycles())
	}

	in, _ := Decode(0x7C, true)
	assert.Equal(t, "BIT 7, H", in.Name)
	assert.Equal(t, uint32(8), in.Timing.Cycles)

	in, _ = Decode(0x46, true)
	assert.Equal(t, "BIT 0, (HL)", in.Name)
	assert.Equal(t, uint32(12), in.Timing.Cycles)

	in, _ = Decode(0x36, true)
	assert.Equal(t, "SWAP (HL)", in.Name)
	assert.Equal(t, uint32(16), in.Timing.Cycles)

	in, _ = Decode(0xFF, true)
	assert.Equal(t, "SET 7, A", in.Name)
}

func TestDecode_Timing(t *testing.T) {
	tests := []struct {
		opcode uint8
		name   string
		length uint16
		cycles uint32
		taken  uint32
	}{
		{0x00, "NOP", 1, 4, 0},
		{0x01, "LD BC, d16", 3, 12, 0},
		{0x08, "LD (a16), SP", 3, 20, 0},
		{0x10, "STOP", 2, 4, 0},
		{0x18, "JR r8", 2, 12, 0},
		{0x20, "JR NZ, r8", 2, 8, 12},
		{0x22, "LD (HL+), A", 1, 8, 0},
		{0x34, "INC (HL)", 1, 12, 0},
		{0x36, "LD (HL), d8", 2, 12, 0},
		{0x3A, "LD A, (HL-)", 1, 8, 0},
		{0x41, "LD B, C", 1, 4, 0},
		{0x46, "LD B, (HL)", 1, 8, 0},
		{0x76, "HALT", 1, 4, 0},
		{0x86, "ADD A, (HL)", 1, 8, 0},
		{0x90, "SUB B", 1, 4, 0},
		{0xC0, "RET NZ", 1, 8, 20},
		{0xC1, "POP BC", 1, 12, 0},
		{0xC2, "JP NZ, a16", 3, 12, 16},
		{0xC3, "JP a16", 3, 16, 0},
		{0xC4, "CALL NZ, a16", 3, 12, 24},
		{0xC5, "PUSH BC", 1, 16, 0},
		{0xC9, "RET", 1, 16, 0},
		{0xCD, "CALL a16", 3, 24, 0},
		{0xD9, "RETI", 1, 16, 0},
		{0xDF, "RST 18H", 1, 16, 0},
		{0xE0, "LDH (a8), A", 2, 12, 0},
		{0xE2, "LD (C), A", 1, 8, 0},
		{0xE8, "ADD SP, r8", 2, 16, 0},
		{0xE9, "JP HL", 1, 4, 0},
		{0xEA, "LD (a16), A", 3, 16, 0},
		{0xF1, "POP AF", 1, 12, 0},
		{0xF8, "LD HL, SP+r8", 2, 12, 0},
		{0xF9, "LD SP, HL", 1, 8, 0},
		{0xFE, "CP d8", 2, 8, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, ok := Decode(tt.opcode, false)
			require.True(t, ok)
			assert.Equal(t, tt.name, in.String())
			assert.Equal(t, tt.length, in.Timing.Length)
			assert.Equal(t, tt.cycles, in.Timing.Cycles)
			if tt.taken == 0 {
				assert.False(t, in.Timing.HasTakenCycles())
			} else {
				assert.Equal(t, tt.taken, in.Timing.TakenCycles())
			}
		})
	}
}

func TestTiming_TakenCyclesPanics(t *testing.T) {
	in, ok := Decode(0x00, false)
	require.True(t, ok)
	assert.Panics(t, func() { in.Timing.TakenCycles() })
}

func TestDisassemble(t *testing.T) {
	mem := map[uint16]uint8{
		0x0100: 0xC3, 0x0101: 0x50, 0x0102: 0x01, // JP $0150
		0x0103: 0x18, 0x0104: 0xFE, // JR $0103
		0x0105: 0xE0, 0x0106: 0x44, // LDH ($FF44), A
		0x0107: 0xCB, 0x0108: 0x7C, // BIT 7, H
		0x0109: 0xF8, 0x010A: 0xFE, // LD HL, SP-2
		0x010B: 0x3E, 0x010C: 0x12, // LD A, $12
	}
	read := func(address uint16) (uint8, error) { return mem[address], nil }

	expected := []string{"JP $0150", "JR $0103", "LDH ($FF44), A", "BIT 7, H", "LD HL, SP-2", "LD A, $12"}
	pc := uint16(0x0100)
	for _, want := range expected {
		text, next, err := Disassemble(read, pc)
		require.NoError(t, err)
		assert.Equal(t, want, text)
		pc = next
	}
	assert.Equal(t, uint16(0x010D), pc)
}
