package gameboy

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thelolagemann/gbcore/internal/cartridge"
	"github.com/thelolagemann/gbcore/internal/cpu"
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/log"
)

// newTestROM returns a 32kB ROM titled title, with program placed at
// the entry point.
func newTestROM(title string, cartType cartridge.Type, program ...uint8) []byte {
	rom := make([]byte, 2*cartridge.ROMBankSize)
	copy(rom[cpu.EntryPoint:], program)
	copy(rom[0x0134:], title)
	rom[0x0147] = uint8(cartType)
	if cartType != cartridge.ROM {
		rom[0x0149] = 0x02
	}
	return rom
}

// serialProgram sends each character over the serial port, then halts.
func serialProgram(s string) []uint8 {
	var program []uint8
	for _, c := range []byte(s) {
		program = append(program,
			0x3E, c, // LD A, c
			0xE0, 0x01, // LDH (SB), A
			0x3E, 0x81, // LD A, 0x81
			0xE0, 0x02, // LDH (SC), A
		)
	}
	return append(program, 0x76) // HALT
}

func TestGameBoy_NoROM(t *testing.T) {
	gb := New()
	assert.ErrorIs(t, gb.Step(), types.ErrNoROM)
}

func TestGameBoy_LoadROM(t *testing.T) {
	gb := New()
	require.NoError(t, gb.LoadROM(newTestROM("NOP", cartridge.ROM)))

	assert.Equal(t, cpu.EntryPoint, gb.CPU.PC)
	require.NoError(t, gb.Step())
	assert.Equal(t, uint16(0x0101), gb.CPU.PC)
	assert.Equal(t, uint32(4), gb.CPU.Cycles)

	// the session holds a single cartridge
	assert.Error(t, gb.LoadROM(newTestROM("NOP", cartridge.ROM)))
}

func TestGameBoy_LoadROM_Invalid(t *testing.T) {
	gb := New()
	assert.ErrorIs(t, gb.LoadROM(make([]byte, 0x100)), types.ErrInvalidROM)

	var unsupported *types.UnsupportedCartridgeTypeError
	err := gb.LoadROM(newTestROM("MBC1", cartridge.MBC1))
	assert.True(t, errors.As(err, &unsupported))
}

func TestGameBoy_Run(t *testing.T) {
	t.Run("max steps", func(t *testing.T) {
		gb := New(MaxSteps(10))
		require.NoError(t, gb.LoadROM(newTestROM("NOP", cartridge.ROM)))
		require.NoError(t, gb.Run())

		assert.Equal(t, uint16(0x010A), gb.CPU.PC)
		assert.Equal(t, uint32(40), gb.CPU.Cycles)
	})

	t.Run("serial", func(t *testing.T) {
		var out bytes.Buffer
		gb := New(WithSerialOutput(&out))
		require.NoError(t, gb.LoadROM(newTestROM("SERIAL", cartridge.ROM, serialProgram("Passed")...)))
		require.NoError(t, gb.Run())

		assert.True(t, gb.CPU.Halted())
		assert.Equal(t, "Passed", out.String())
		assert.Equal(t, "Passed", gb.MMU.Serial().Output())
	})

	t.Run("unknown opcode", func(t *testing.T) {
		gb := New()
		require.NoError(t, gb.LoadROM(newTestROM("BAD", cartridge.ROM, 0x00, 0xD3)))

		var unknown *types.UnknownOpcodeError
		require.True(t, errors.As(gb.Run(), &unknown))
		assert.Equal(t, uint8(0xD3), unknown.Opcode)
		assert.Equal(t, uint16(0x0101), gb.CPU.PC)
	})

	t.Run("timer", func(t *testing.T) {
		gb := New(MaxSteps(64))
		require.NoError(t, gb.LoadROM(newTestROM("NOP", cartridge.ROM)))
		require.NoError(t, gb.Run())

		// 64 NOPs are 256 cycles, one DIV increment
		v, err := gb.MMU.Read(types.DIV)
		require.NoError(t, err)
		assert.Equal(t, uint8(1), v)
	})
}

func TestGameBoy_BatterySave(t *testing.T) {
	dir := t.TempDir()
	rom := newTestROM("BATT", cartridge.ROMRAMBATT,
		0x3E, 0x42, // LD A, 0x42
		0xEA, 0x00, 0xA0, // LD (0xA000), A
		0x76, // HALT
	)

	gb := New(WithSaveDirectory(dir))
	require.NoError(t, gb.LoadROM(rom))
	require.NoError(t, gb.Run())
	assert.FileExists(t, filepath.Join(dir, "BATT.sav"))

	restored := New(WithSaveDirectory(dir))
	require.NoError(t, restored.LoadROM(rom))
	v, err := restored.MMU.Read(0xA000)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x42), v)

	// a cartridge without a battery never touches the save directory
	plain := New(WithSaveDirectory(dir))
	require.NoError(t, plain.LoadROM(newTestROM("PLAIN", cartridge.ROMRAM, 0x76)))
	require.NoError(t, plain.Run())
	assert.NoFileExists(t, filepath.Join(dir, "PLAIN.sav"))
}

func TestGameBoy_Trace(t *testing.T) {
	var logs bytes.Buffer
	gb := New(WithLogger(log.NewWithWriter(&logs, log.DebugLevel)), Trace())
	require.NoError(t, gb.LoadROM(newTestROM("TRACE", cartridge.ROM, 0x3E, 0x4F, 0xC3, 0x50, 0x01)))
	require.NoError(t, gb.Step())
	require.NoError(t, gb.Step())

	assert.Contains(t, logs.String(), "loaded TRACE")
	assert.Contains(t, logs.String(), "fingerprint=")
	assert.Contains(t, logs.String(), "LD A, $4F")
	assert.Contains(t, logs.String(), "JP $0150")
	assert.Equal(t, uint16(0x0150), gb.CPU.PC)
}
