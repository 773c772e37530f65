package cpu

import (
	"fmt"
	"strings"

	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/bits"
)

// Disassemble decodes the instruction at pc using read, and returns it
// with its immediate operands filled in, e.g. "JP $0150", along with
// the address of the following instruction.
func Disassemble(read func(address uint16) (uint8, error), pc uint16) (string, uint16, error) {
	opcode, err := read(pc)
	if err != nil {
		return "", pc, err
	}
	prefixed := opcode == prefixCB
	if prefixed {
		if opcode, err = read(pc + 1); err != nil {
			return "", pc, err
		}
	}

	in, ok := Decode(opcode, prefixed)
	if !ok {
		return "", pc, &types.UnknownOpcodeError{Opcode: opcode, Prefixed: prefixed}
	}
	next := pc + in.Timing.Length
	text := in.Name

	switch {
	case strings.Contains(text, "d16"), strings.Contains(text, "a16"):
		low, err := read(pc + 1)
		if err != nil {
			return "", pc, err
		}
		high, err := read(pc + 2)
		if err != nil {
			return "", pc, err
		}
		word := fmt.Sprintf("$%04X", bits.Join(high, low))
		text = strings.NewReplacer("d16", word, "a16", word).Replace(text)
	case strings.Contains(text, "d8"), strings.Contains(text, "a8"), strings.Contains(text, "r8"):
		n, err := read(pc + 1)
		if err != nil {
			return "", pc, err
		}
		switch {
		case in.Kind == JR:
			text = strings.Replace(text, "r8", fmt.Sprintf("$%04X", next+uint16(int8(n))), 1)
		case strings.Contains(text, "+r8"):
			text = strings.Replace(text, "+r8", fmt.Sprintf("%+d", int8(n)), 1)
		case strings.Contains(text, "r8"):
			text = strings.Replace(text, "r8", fmt.Sprintf("%+d", int8(n)), 1)
		case strings.Contains(text, "a8"):
			text = strings.Replace(text, "a8", fmt.Sprintf("$FF%02X", n), 1)
		default:
			text = strings.Replace(text, "d8", fmt.Sprintf("$%02X", n), 1)
		}
	}

	return text, next, nil
}
