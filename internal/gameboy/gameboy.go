// Package gameboy provides an emulation of a Nintendo Game Boy.
//
// A GameBoy ties the CPU to the memory bus, loads a cartridge into it
// and drives the clock, one instruction at a time.
package gameboy

import (
	"fmt"
	"io"

	"github.com/thelolagemann/gbcore/internal/cartridge"
	"github.com/thelolagemann/gbcore/internal/cpu"
	"github.com/thelolagemann/gbcore/internal/mmu"
	"github.com/thelolagemann/gbcore/pkg/emu"
	"github.com/thelolagemann/gbcore/pkg/log"
)

// GameBoy represents a Game Boy. It contains all the components of the Game Boy.
// It is the main entry point for the emulator.
type GameBoy struct {
	CPU *cpu.CPU
	MMU *mmu.MMU

	log.Logger

	rom       []byte
	trace     bool
	saveDir   string
	maxSteps  int
	serialOut io.Writer
}

// New returns a new GameBoy without a cartridge. LoadROM must be
// called before it can be stepped.
func New(opts ...Opt) *GameBoy {
	gb := &GameBoy{
		Logger: log.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(gb)
	}

	gb.MMU = mmu.NewMMU(gb.Logger, gb.serialOut)
	gb.CPU = cpu.NewCPU(gb.MMU)
	return gb
}

// LoadROM inserts the ROM into the GameBoy and resets the CPU to the
// cartridge entry point. When a save directory is set, battery backed
// RAM is restored from it.
func (g *GameBoy) LoadROM(rom []byte) error {
	cart, err := cartridge.New(rom)
	if err != nil {
		return fmt.Errorf("loading ROM: %w", err)
	}
	if err := g.MMU.AttachCartridge(cart); err != nil {
		return err
	}
	g.rom = rom
	g.CPU.Reset()

	g.WithField("fingerprint", fmt.Sprintf("%016x", emu.Fingerprint(rom))).
		Infof("loaded %s", cart.Header())

	if g.saveDir != "" && cart.HasBattery() {
		banks, err := emu.LoadRAM(g.saveDir, g.saveTitle(), rom)
		if err != nil {
			return fmt.Errorf("restoring battery RAM: %w", err)
		}
		if banks != nil {
			if err := cart.LoadRAM(banks); err != nil {
				return fmt.Errorf("restoring battery RAM: %w", err)
			}
			g.Debugf("restored %d RAM bank(s)", len(banks))
		}
	}

	return nil
}

// Step executes a single instruction and advances the rest of the
// hardware by the cycles it took.
func (g *GameBoy) Step() error {
	if g.trace {
		g.traceInstruction()
	}

	cycles, err := g.CPU.Step()
	if err != nil {
		return fmt.Errorf("0x%04X: %w", g.CPU.PC, err)
	}
	g.MMU.Tick(cycles)
	return nil
}

// Run steps the GameBoy until the CPU halts or stops, the step limit
// is reached or an error occurs. Battery RAM is saved before returning.
func (g *GameBoy) Run() error {
	var err error
	for steps := 0; g.maxSteps == 0 || steps < g.maxSteps; steps++ {
		if g.CPU.Halted() || g.CPU.Stopped() {
			break
		}
		if err = g.Step(); err != nil {
			g.Errorf("step failed: %s", err)
			break
		}
	}

	if saveErr := g.SaveRAM(); saveErr != nil {
		g.Errorf("%s", saveErr)
		if err == nil {
			err = saveErr
		}
	}
	return err
}

// SaveRAM writes battery backed RAM to the save directory. It does
// nothing when saves are disabled or the cartridge has no battery.
func (g *GameBoy) SaveRAM() error {
	cart := g.MMU.Cartridge()
	if g.saveDir == "" || cart == nil || !cart.HasBattery() {
		return nil
	}
	banks := cart.RAMBanks()
	if len(banks) == 0 {
		return nil
	}
	if err := emu.SaveRAM(g.saveDir, g.saveTitle(), g.rom, banks); err != nil {
		return fmt.Errorf("saving battery RAM: %w", err)
	}
	return nil
}

// saveTitle names the save file after the cartridge title, falling back
// to the ROM fingerprint for untitled cartridges.
func (g *GameBoy) saveTitle() string {
	h := g.MMU.Cartridge().Header()
	if h.HasTitle && h.Title != "" {
		return h.Title
	}
	return fmt.Sprintf("%016x", emu.Fingerprint(g.rom))
}

func (g *GameBoy) traceInstruction() {
	text, _, err := cpu.Disassemble(g.MMU.Read, g.CPU.PC)
	if err != nil {
		text = "??"
	}
	g.Debugf("%04X  %-20s A:%02X F:%02X BC:%02X%02X DE:%02X%02X HL:%02X%02X SP:%04X CY:%d",
		g.CPU.PC, text, g.CPU.A, g.CPU.F.Byte(), g.CPU.B, g.CPU.C, g.CPU.D, g.CPU.E,
		g.CPU.H, g.CPU.L, g.CPU.SP, g.CPU.Cycles)
}
