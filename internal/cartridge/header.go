package cartridge

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/thelolagemann/gbcore/internal/types"
)

const (
	titleStart        = 0x0134
	titleEnd          = 0x0143
	cartridgeTypeAddr = 0x0147
	romSizeAddr       = 0x0148
	ramSizeAddr       = 0x0149

	// minimumROMSize is the smallest image that still contains every
	// header field read by ParseHeader.
	minimumROMSize = 0x014F
)

var (
	// romBanks maps the ROM size code to the number of 16kB banks.
	romBanks = map[uint8]int{
		0x00: 2,
		0x01: 4,
		0x02: 8,
		0x03: 16,
		0x04: 32,
		0x05: 64,
		0x06: 128,
		0x07: 256,
		0x08: 512,
	}
	// ramBanks maps the RAM size code to the number of 8kB banks.
	ramBanks = map[uint8]int{
		0x00: 0,
		0x01: 0, // unused
		0x02: 1,
		0x03: 4,
		0x04: 16,
		0x05: 8,
	}
)

// Header represents the header of a cartridge, each cartridge has a header and is
// located at the address space 0x0100-0x014F. The header contains information about
// the cartridge itself, and the hardware it expects to run on.
type Header struct {
	// 0x0134-0x0143 - Title of the game. Only valid if HasTitle is set.
	Title    string
	HasTitle bool

	// 0x0147 - CartridgeType of the game
	CartridgeType Type

	// 0x0148 - number of 16kB ROM banks
	ROMBanks int
	// 0x0149 - number of 8kB RAM banks
	RAMBanks int
}

// ParseHeader parses the header of the given ROM and returns a Header.
func ParseHeader(rom []byte) (Header, error) {
	h := Header{}
	if len(rom) < minimumROMSize {
		return h, types.ErrInvalidROM
	}

	h.Title, h.HasTitle = decodeTitle(rom[titleStart : titleEnd+1])

	h.CartridgeType = Type(rom[cartridgeTypeAddr])
	if !h.CartridgeType.Known() {
		return h, &types.UnknownCartridgeTypeError{Code: rom[cartridgeTypeAddr]}
	}

	var ok bool
	if h.ROMBanks, ok = romBanks[rom[romSizeAddr]]; !ok {
		return h, &types.InvalidROMSizeCodeError{Code: rom[romSizeAddr]}
	}
	if h.RAMBanks, ok = ramBanks[rom[ramSizeAddr]]; !ok {
		return h, &types.InvalidRAMSizeCodeError{Code: rom[ramSizeAddr]}
	}

	return h, nil
}

// decodeTitle returns the title if it is valid text. Unused title
// bytes are padded with 0x00, which is trimmed.
func decodeTitle(b []byte) (string, bool) {
	if !utf8.Valid(b) {
		return "", false
	}
	return strings.TrimRight(string(b), "\x00"), true
}

// ROMSize returns the size of the ROM in bytes, as declared by the header.
func (h Header) ROMSize() int {
	return h.ROMBanks * ROMBankSize
}

// RAMSize returns the size of the external RAM in bytes, as declared by the header.
func (h Header) RAMSize() int {
	return h.RAMBanks * RAMBankSize
}

func (h Header) String() string {
	title := "NO TITLE"
	if h.HasTitle {
		title = h.Title
	}
	return fmt.Sprintf("%s | Type: %s | ROM Size: %dkB | RAM Size: %dkB",
		title, h.CartridgeType, h.ROMSize()/1024, h.RAMSize()/1024)
}

// Describe returns a multi-line description of a ROM file, as shown by
// front-ends after the user has picked a file.
func (h Header) Describe(fileName string, fileSize int) string {
	title := "NO TITLE"
	if h.HasTitle {
		title = h.Title
	}
	return fmt.Sprintf("Title: %s\nFile name: %s\nCartridge type: %s\nFile size: %d bytes",
		title, fileName, h.CartridgeType, fileSize)
}
