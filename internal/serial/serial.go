// Package serial provides the serial port of the DMG. No link cable is
// emulated: the port is used as a debug side channel, where test ROMs
// print text one byte at a time.
package serial

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/thelolagemann/gbcore/pkg/log"
)

const (
	// transferStart is the SC value that starts a transfer on the
	// internal clock, bit 7 (transfer) and bit 0 (clock).
	transferStart = 0x81

	// invalidCharacter is captured in place of a byte that isn't text.
	invalidCharacter = "<?>"
)

// Controller is the serial controller. Before a transfer, SB holds the
// byte to be sent (types.SB). Writing 0x81 to SC (types.SC) captures SB
// as a single character.
type Controller struct {
	SB uint8
	SC uint8

	captured strings.Builder
	out      io.Writer
	log      log.Logger
}

// NewController creates a new Controller. Captured characters are also
// written to out, if not nil.
func NewController(out io.Writer, logger log.Logger) *Controller {
	if logger == nil {
		logger = log.NewNullLogger()
	}
	return &Controller{
		out: out,
		log: logger,
	}
}

// WriteSB writes the SB register.
func (c *Controller) WriteSB(v uint8) {
	c.SB = v
}

// WriteSC writes the SC register, capturing SB when a transfer
// is started.
func (c *Controller) WriteSC(v uint8) {
	c.SC = v
	if v != transferStart {
		return
	}

	char := string([]byte{c.SB})
	if !utf8.ValidString(char) {
		char = invalidCharacter
	}
	c.captured.WriteString(char)
	c.log.Debugf("serial: %q", char)

	if c.out != nil {
		if _, err := io.WriteString(c.out, char); err != nil {
			c.log.Errorf("serial: writing output: %v", err)
		}
	}
}

// Output returns every character captured so far.
func (c *Controller) Output() string {
	return c.captured.String()
}
