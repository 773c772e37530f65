// Package ppu holds the memory owned by the picture processing unit:
// video RAM with its decoded tile cache, and object attribute memory.
// Rendering the tiles to a frame is left to front-ends.
package ppu

import "github.com/thelolagemann/gbcore/pkg/bits"

const (
	// VRAMSize is the size of video RAM, 0x8000 - 0x9FFF.
	VRAMSize = 0x2000
	// tileDataSize is the part of video RAM holding tile data, 0x8000 - 0x97FF.
	tileDataSize = 0x1800
	// TileCount is the number of tiles in the tile data.
	TileCount = tileDataSize / 16
)

// PixelValue is the 2-bit colour index of a single pixel, 0 - 3.
type PixelValue uint8

// Tile represents a tile. Each tile has a size of 8x8 pixels and a color
// depth of 4 colors/gray shades, indexed as [row][column]. Tiles can be
// displayed as sprites or as background/window tiles.
type Tile [8][8]PixelValue

// VRAM is the 8kB video RAM. Every write to the tile data also decodes
// the affected tile row into TileSet.
type VRAM struct {
	data [VRAMSize]uint8

	// TileSet holds every tile of the tile data, decoded.
	TileSet [TileCount]Tile
}

// NewVRAM returns a new, zeroed VRAM.
func NewVRAM() *VRAM {
	return &VRAM{}
}

// Read returns the value at the given offset into video RAM.
func (v *VRAM) Read(offset uint16) uint8 {
	return v.data[offset&(VRAMSize-1)]
}

// Write writes the value at the given offset into video RAM.
func (v *VRAM) Write(offset uint16, value uint8) {
	offset &= VRAMSize - 1
	v.data[offset] = value
	if offset < tileDataSize {
		v.updateTileRow(offset)
	}
}

// Tile returns the decoded tile at the given index.
func (v *VRAM) Tile(index int) Tile {
	return v.TileSet[index]
}

// updateTileRow decodes the row of the tile containing offset. Each
// row is two bytes: the first holds bit 0 of each pixel's colour, the
// second bit 1, with bit 7 being the leftmost pixel.
func (v *VRAM) updateTileRow(offset uint16) {
	base := offset &^ 1
	lo, hi := v.data[base], v.data[base+1]

	tile := &v.TileSet[base/16]
	row := (base % 16) / 2
	for x := uint8(0); x < 8; x++ {
		tile[row][x] = PixelValue(bits.Val(lo, 7-x) | bits.Val(hi, 7-x)<<1)
	}
}
