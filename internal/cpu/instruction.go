package cpu

import "fmt"

// Kind is the family an Instruction belongs to. The set of kinds is
// closed, execute handles every one of them.
type Kind uint8

const (
	NOP Kind = iota
	STOP
	HALT
	DI
	EI

	// LD loads a byte, LD16 loads a word.
	LD
	LD16
	PUSH
	POP

	ADD
	ADC
	SUB
	SBC
	AND
	XOR
	OR
	CP
	INC
	DEC
	INC16
	DEC16
	ADD16
	ADDSP
	DAA
	CPL
	SCF
	CCF

	RLCA
	RRCA
	RLA
	RRA
	RLC
	RRC
	RL
	RR
	SLA
	SRA
	SWAP
	SRL
	BIT
	RES
	SET

	JP
	JR
	CALL
	RET
	RETI
	RST
)

// Reg8 identifies one of the 8-bit registers.
type Reg8 uint8

const (
	RegA Reg8 = iota
	RegB
	RegC
	RegD
	RegE
	RegH
	RegL
)

func (r Reg8) String() string {
	return [...]string{"A", "B", "C", "D", "E", "H", "L"}[r]
}

// Reg16 identifies one of the 16-bit register pairs.
type Reg16 uint8

const (
	AF Reg16 = iota
	BC
	DE
	HL
)

func (r Reg16) String() string {
	return [...]string{"AF", "BC", "DE", "HL"}[r]
}

// ByteMode is the addressing mode of a byte operand.
type ByteMode uint8

const (
	// ByteRegister is an 8-bit register, e.g. B.
	ByteRegister ByteMode = iota
	// ByteIndirect is memory addressed by a register pair, e.g. (HL).
	ByteIndirect
	// ByteImmediate is the byte following the opcode, d8.
	ByteImmediate
	// ByteDirect is memory addressed by the word following the opcode, (a16).
	ByteDirect
	// ByteHLI is (HL), incrementing HL after the access.
	ByteHLI
	// ByteHLD is (HL), decrementing HL after the access.
	ByteHLD
	// ByteHighC is memory at 0xFF00 + C.
	ByteHighC
	// ByteHighImmediate is memory at 0xFF00 + a8.
	ByteHighImmediate
)

// ByteOperand is the source or target of a byte-sized operation.
type ByteOperand struct {
	Mode ByteMode
	Reg  Reg8
	Pair Reg16
}

func (o ByteOperand) String() string {
	switch o.Mode {
	case ByteRegister:
		return o.Reg.String()
	case ByteIndirect:
		return "(" + o.Pair.String() + ")"
	case ByteImmediate:
		return "d8"
	case ByteDirect:
		return "(a16)"
	case ByteHLI:
		return "(HL+)"
	case ByteHLD:
		return "(HL-)"
	case ByteHighC:
		return "(C)"
	case ByteHighImmediate:
		return "(a8)"
	}
	panic(fmt.Sprintf("cpu: invalid byte operand mode %d", o.Mode))
}

// WordMode is the addressing mode of a word operand.
type WordMode uint8

const (
	// WordPair is a register pair.
	WordPair WordMode = iota
	// WordSP is the stack pointer.
	WordSP
	// WordImmediate is the word following the opcode, d16 or a16.
	WordImmediate
	// WordDirect is memory addressed by the word following the opcode.
	WordDirect
	// WordSPPlusI8 is the stack pointer plus the signed byte following
	// the opcode.
	WordSPPlusI8
)

// WordOperand is the source or target of a word-sized operation.
type WordOperand struct {
	Mode WordMode
	Pair Reg16
}

func (o WordOperand) String() string {
	switch o.Mode {
	case WordPair:
		return o.Pair.String()
	case WordSP:
		return "SP"
	case WordImmediate:
		return "d16"
	case WordDirect:
		return "(a16)"
	case WordSPPlusI8:
		return "SP+r8"
	}
	panic(fmt.Sprintf("cpu: invalid word operand mode %d", o.Mode))
}

// JumpTest is the condition of a control flow instruction.
type JumpTest uint8

const (
	Always JumpTest = iota
	NotZero
	Zero
	NotCarry
	Carry
)

func (t JumpTest) String() string {
	return [...]string{"", "NZ", "Z", "NC", "C"}[t]
}

// Timing holds the static timing metadata of an Instruction.
type Timing struct {
	// Length is the size of the instruction in bytes, including
	// the 0xCB prefix.
	Length uint16
	// Cycles is the base cost in clock cycles. For conditional
	// instructions this is the cost when the condition fails.
	Cycles uint32
	// Opcode is the byte the instruction was decoded from.
	Opcode uint8
	// Prefixed is set for instructions of the 0xCB table.
	Prefixed bool

	taken    uint32
	hasTaken bool
}

// HasTakenCycles reports whether the instruction has a separate
// cost for a taken branch.
func (t Timing) HasTakenCycles() bool {
	return t.hasTaken
}

// TakenCycles returns the cost of the instruction when its branch is
// taken. Only conditional control flow instructions have one, asking
// any other instruction is a bug in the opcode table and panics.
func (t Timing) TakenCycles() uint32 {
	if !t.hasTaken {
		panic(fmt.Sprintf("cpu: opcode 0x%02X (prefixed: %t) has no taken cycles", t.Opcode, t.Prefixed))
	}
	return t.taken
}

// Instruction is a decoded instruction, with its operands and timing.
// Only the operand fields used by its Kind are meaningful.
type Instruction struct {
	Kind Kind
	Name string

	Target ByteOperand
	Source ByteOperand

	WordTarget WordOperand
	WordSource WordOperand

	// Bit is the bit index of BIT, RES and SET.
	Bit uint8
	// Test is the condition of JP, JR, CALL and RET.
	Test JumpTest
	// Vector is the target address of RST.
	Vector uint16

	Timing Timing
}

// String returns the mnemonic of the instruction.
func (i Instruction) String() string {
	return i.Name
}
