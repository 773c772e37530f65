package mmu

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thelolagemann/gbcore/internal/cartridge"
	"github.com/thelolagemann/gbcore/internal/types"
)

// newTestMMU returns an MMU with a ROM only cartridge attached, with
// one bank of external RAM when withRAM is set.
func newTestMMU(t *testing.T, withRAM bool) *MMU {
	t.Helper()
	rom := make([]byte, 2*cartridge.ROMBankSize)
	copy(rom[0x0134:], "MMU TEST")
	if withRAM {
		rom[0x0147] = uint8(cartridge.ROMRAM)
		rom[0x0149] = 0x02
	}
	rom[0x0000] = 0x31
	rom[0x7FFF] = 0x7F

	cart, err := cartridge.New(rom)
	require.NoError(t, err)

	m := NewMMU(nil, nil)
	require.NoError(t, m.AttachCartridge(cart))
	return m
}

func TestMMU_NoROM(t *testing.T) {
	m := NewMMU(nil, nil)
	for _, addr := range []uint16{0x0000, 0x8000, 0xC000, 0xFF04, 0xFFFF} {
		_, err := m.Read(addr)
		assert.ErrorIs(t, err, types.ErrNoROM)
		assert.ErrorIs(t, m.Write(addr, 0), types.ErrNoROM)
	}
}

func TestMMU_AttachTwice(t *testing.T) {
	m := newTestMMU(t, false)
	assert.ErrorIs(t, m.AttachCartridge(m.Cartridge()), ErrCartridgeAttached)
}

func TestMMU_ROM(t *testing.T) {
	m := newTestMMU(t, false)

	v, err := m.Read(0x0000)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x31), v)
	v, err = m.Read(0x7FFF)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x7F), v)

	err = m.Write(0x2000, 0x01)
	var writeErr *types.InvalidMemoryWriteError
	require.True(t, errors.As(err, &writeErr))
	assert.Equal(t, uint16(0x2000), writeErr.Address)
}

func TestMMU_Routing(t *testing.T) {
	m := newTestMMU(t, true)

	// every plain memory region keeps its own value
	regions := map[uint16]uint8{
		0x8000: 0x01, // VRAM
		0x9FFF: 0x02, // VRAM
		0xA000: 0x03, // external RAM
		0xBFFF: 0x04, // external RAM
		0xC000: 0x05, // WRAM bank 0
		0xCFFF: 0x06,
		0xD000: 0x07, // WRAM bank 1
		0xDFFF: 0x08,
		0xFE00: 0x09, // OAM
		0xFE9F: 0x0A,
		0xFF80: 0x0B, // HRAM
		0xFFFE: 0x0C,
		0xFFFF: 0x0D, // IE
	}
	for addr, v := range regions {
		require.NoError(t, m.Write(addr, v), "write 0x%04X", addr)
	}
	for addr, want := range regions {
		v, err := m.Read(addr)
		require.NoError(t, err, "read 0x%04X", addr)
		assert.Equal(t, want, v, "read 0x%04X", addr)
	}

	assert.Equal(t, uint8(0x01), m.VRAM().Read(0x0000))
	assert.Equal(t, uint8(0x09), m.OAM().Read(0x00))
	assert.Equal(t, uint8(0x0D), m.Interrupts().Enable)
}

func TestMMU_Echo(t *testing.T) {
	m := newTestMMU(t, false)
	require.NoError(t, m.Write(0xC000, 0x42))

	for _, addr := range []uint16{0xE000, 0xF000, 0xFDFF, 0xFEA0, 0xFEFF} {
		require.NoError(t, m.Write(addr, 0xFF))
		v, err := m.Read(addr)
		require.NoError(t, err)
		assert.Equal(t, uint8(0), v, "read 0x%04X", addr)
	}

	v, _ := m.Read(0xC000)
	assert.Equal(t, uint8(0x42), v)
}

func TestMMU_ExternalRAMMissing(t *testing.T) {
	m := newTestMMU(t, false)

	_, err := m.Read(0xA000)
	var readErr *types.InvalidMemoryReadError
	assert.True(t, errors.As(err, &readErr))

	err = m.Write(0xBFFF, 0x01)
	var writeErr *types.InvalidMemoryWriteError
	assert.True(t, errors.As(err, &writeErr))
}

func TestMMU_IO(t *testing.T) {
	m := newTestMMU(t, false)

	t.Run("DIV", func(t *testing.T) {
		m.Tick(256 * 3)
		v, _ := m.Read(types.DIV)
		assert.Equal(t, uint8(3), v)

		require.NoError(t, m.Write(types.DIV, 0x99))
		v, _ = m.Read(types.DIV)
		assert.Equal(t, uint8(0), v)

		m.Tick(256)
		m.ResetDivider()
		v, _ = m.Read(types.DIV)
		assert.Equal(t, uint8(0), v)
	})

	t.Run("timer", func(t *testing.T) {
		require.NoError(t, m.Write(types.TMA, 0x20))
		require.NoError(t, m.Write(types.TIMA, 0xFF))
		require.NoError(t, m.Write(types.TAC, 0x05))

		m.Tick(16)
		v, _ := m.Read(types.TIMA)
		assert.Equal(t, uint8(0x20), v)
		v, _ = m.Read(types.TAC)
		assert.Equal(t, uint8(0xFD), v)
		v, _ = m.Read(types.IF)
		assert.Equal(t, uint8(0xE4), v)
	})

	t.Run("IF", func(t *testing.T) {
		require.NoError(t, m.Write(types.IF, 0x01))
		v, _ := m.Read(types.IF)
		assert.Equal(t, uint8(0xE1), v)
	})

	t.Run("LY", func(t *testing.T) {
		require.NoError(t, m.Write(types.LY, 0x90))
		v, _ := m.Read(types.LY)
		assert.Equal(t, uint8(0x90), v)
	})

	t.Run("unmapped", func(t *testing.T) {
		require.NoError(t, m.Write(0xFF40, 0x91))
		v, err := m.Read(0xFF40)
		require.NoError(t, err)
		assert.Equal(t, uint8(0), v)
	})
}

func TestMMU_Serial(t *testing.T) {
	var out bytes.Buffer
	rom := make([]byte, 2*cartridge.ROMBankSize)
	cart, err := cartridge.New(rom)
	require.NoError(t, err)
	m := NewMMU(nil, &out)
	require.NoError(t, m.AttachCartridge(cart))

	for _, c := range []byte("Passed") {
		require.NoError(t, m.Write(types.SB, c))
		require.NoError(t, m.Write(types.SC, 0x81))
	}
	assert.Equal(t, "Passed", m.Serial().Output())
	assert.Equal(t, "Passed", out.String())

	v, _ := m.Read(types.SB)
	assert.Equal(t, uint8('d'), v)
}

func TestMMU_VRAMTileCache(t *testing.T) {
	m := newTestMMU(t, false)
	require.NoError(t, m.Write(0x8010, 0xFF))
	assert.Equal(t, uint8(1), uint8(m.VRAM().Tile(1)[0][0]))
}
