package gameboy

import (
	"io"

	"github.com/thelolagemann/gbcore/pkg/log"
)

// Opt is a function that modifies a GameBoy
// instance.
type Opt func(gb *GameBoy)

// WithLogger sets the logger used by the GameBoy and its components.
func WithLogger(log log.Logger) Opt {
	return func(gb *GameBoy) {
		gb.Logger = log
	}
}

// Trace logs every executed instruction at debug level.
func Trace() Opt {
	return func(gb *GameBoy) {
		gb.trace = true
	}
}

// WithSerialOutput writes every character sent over the serial port
// to w. Test ROMs report their results this way.
func WithSerialOutput(w io.Writer) Opt {
	return func(gb *GameBoy) {
		gb.serialOut = w
	}
}

// WithSaveDirectory enables battery saves, stored in dir.
func WithSaveDirectory(dir string) Opt {
	return func(gb *GameBoy) {
		gb.saveDir = dir
	}
}

// MaxSteps stops Run after n instructions. 0 runs until the CPU halts
// or an error occurs.
func MaxSteps(n int) Opt {
	return func(gb *GameBoy) {
		gb.maxSteps = n
	}
}
