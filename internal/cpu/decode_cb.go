package cpu

import "fmt"

// cbCycles returns the cost of a 0xCB instruction on the operand.
// Read-modify-write on (HL) costs two extra memory cycles, BIT only
// reads and costs one.
func cbCycles(operand ByteOperand, readOnly bool) uint32 {
	switch {
	case !isMemory(operand):
		return 8
	case readOnly:
		return 12
	default:
		return 16
	}
}

// generateRotateInstructions defines 0xCB 0x00 - 0x3F.
func generateRotateInstructions() {
	for opcode := 0x00; opcode < 0x40; opcode++ {
		kind := rotateKinds[opcode>>3]
		operand := operandIndex(uint8(opcode))
		defineCB(uint8(opcode), Instruction{
			Kind:   kind,
			Name:   fmt.Sprintf("%s %s", kindNames[kind], operand),
			Target: operand,
			Source: operand,
			Timing: timing(2, cbCycles(operand, false)),
		})
	}
}

// generateBitInstructions defines 0xCB 0x40 - 0xFF.
func generateBitInstructions() {
	for opcode := 0x40; opcode < 0x100; opcode++ {
		bit := uint8(opcode>>3) & 0x7
		operand := operandIndex(uint8(opcode))

		var kind Kind
		var name string
		switch opcode >> 6 {
		case 1:
			kind, name = BIT, "BIT"
		case 2:
			kind, name = RES, "RES"
		default:
			kind, name = SET, "SET"
		}

		defineCB(uint8(opcode), Instruction{
			Kind:   kind,
			Name:   fmt.Sprintf("%s %d, %s", name, bit, operand),
			Target: operand,
			Source: operand,
			Bit:    bit,
			Timing: timing(2, cbCycles(operand, kind == BIT)),
		})
	}
}
