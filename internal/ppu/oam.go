package ppu

// OAMSize is the size of object attribute memory, 0xFE00 - 0xFE9F.
const OAMSize = 0xA0

// OAM (Object Attribute Memory) is the memory used to store the
// attributes of the sprites. It is 160 bytes long and is located at
// 0xFE00-0xFE9F in the memory map. It is divided in 40 entries of 4 bytes
// each, each entry representing a sprite.
type OAM struct {
	data [OAMSize]uint8
}

// NewOAM returns a new, zeroed OAM.
func NewOAM() *OAM {
	return &OAM{}
}

// Read returns the value at the given offset.
func (o *OAM) Read(offset uint16) uint8 {
	return o.data[offset]
}

// Write writes the given value at the given offset.
func (o *OAM) Write(offset uint16, value uint8) {
	o.data[offset] = value
}

// Sprite is a decoded OAM entry.
type Sprite struct {
	Y      uint8
	X      uint8
	TileID uint8

	// Bit 7 - OBJ-to-BG priority (0=OBJ Above BG, 1=OBJ Behind BG color 1-3)
	BehindBackground bool
	// Bit 6 - Y flip          (0=Normal, 1=Vertically mirrored)
	FlipY bool
	// Bit 5 - X flip          (0=Normal, 1=Horizontally mirrored)
	FlipX bool
	// Bit 4 - Palette number  (0=OBP0, 1=OBP1)
	Palette uint8
}

// Sprite decodes the entry at the given index, 0 - 39.
func (o *OAM) Sprite(index int) Sprite {
	entry := o.data[index*4 : index*4+4]
	flags := entry[3]
	return Sprite{
		Y:                entry[0],
		X:                entry[1],
		TileID:           entry[2],
		BehindBackground: flags&0x80 != 0,
		FlipY:            flags&0x40 != 0,
		FlipX:            flags&0x20 != 0,
		Palette:          flags & 0x10 >> 4,
	}
}
