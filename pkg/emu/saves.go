// Package emu persists battery backed cartridge RAM between runs.
package emu

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash"

	"github.com/thelolagemann/gbcore/internal/cartridge"
	"github.com/thelolagemann/gbcore/internal/types"
)

// saveMagic marks the start of every save file ("GBSV").
const saveMagic uint32 = 0x56534247

var (
	// ErrBadSave is returned when a save file isn't one written by SaveRAM.
	ErrBadSave = errors.New("not a save file")
	// ErrFingerprintMismatch is returned when a save file was written for
	// a different ROM than the one being loaded.
	ErrFingerprintMismatch = errors.New("save file belongs to a different ROM")
)

// Fingerprint returns the xxhash of the ROM image, used to tie a save
// file to the exact ROM that wrote it.
func Fingerprint(rom []byte) uint64 {
	return xxhash.Sum64(rom)
}

// Save represents a save file on disk.
type Save struct {
	Path string // the path to the save file
}

// NewSave returns the save file for the given cartridge title in dir.
// Characters that can't appear in a file name are replaced.
func NewSave(dir, title string) *Save {
	name := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, title)
	return &Save{Path: filepath.Join(dir, name+".sav")}
}

// SaveRAM writes the RAM banks of the cartridge to <dir>/<title>.sav.
// The file holds the magic, the ROM fingerprint, the bank count and the
// bank contents, in that order.
func SaveRAM(dir, title string, rom []byte, banks []cartridge.RAMBank) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	s := types.NewState()
	s.Write32(saveMagic)
	s.Write64(Fingerprint(rom))
	s.Write8(uint8(len(banks)))
	for i := range banks {
		s.WriteData(banks[i][:])
	}

	save := NewSave(dir, title)

	// write to a temporary file first, so that a crash never leaves a
	// truncated save behind
	tmp := save.Path + ".tmp"
	if err := s.SaveToFile(tmp); err != nil {
		return fmt.Errorf("writing save file: %w", err)
	}
	return os.Rename(tmp, save.Path)
}

// LoadRAM reads the RAM banks stored for the given title. A missing save
// file is not an error, and returns nil banks.
func LoadRAM(dir, title string, rom []byte) ([]cartridge.RAMBank, error) {
	save := NewSave(dir, title)
	s, err := types.StateFromFile(save.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	if s.Read32() != saveMagic {
		return nil, fmt.Errorf("%s: %w", save.Path, ErrBadSave)
	}
	if fp := s.Read64(); fp != Fingerprint(rom) {
		return nil, fmt.Errorf("%s: %w (0x%016X)", save.Path, ErrFingerprintMismatch, fp)
	}

	banks := make([]cartridge.RAMBank, s.Read8())
	for i := range banks {
		s.ReadData(banks[i][:])
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", save.Path, err)
	}
	return banks, nil
}
