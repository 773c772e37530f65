package cpu

import "fmt"

const prefixCB = 0xCB

var (
	instructionSet   [256]*Instruction
	instructionSetCB [256]*Instruction
)

// Decode returns the instruction for the given opcode, looked up in the
// 0xCB table when prefixed is set. The second return value is false
// for opcodes without an instruction. 0xCB itself is never decoded from
// the plain table, callers must read the following byte instead.
func Decode(opcode byte, prefixed bool) (Instruction, bool) {
	var in *Instruction
	if prefixed {
		in = instructionSetCB[opcode]
	} else {
		in = instructionSet[opcode]
	}
	if in == nil {
		return Instruction{}, false
	}
	return *in, true
}

// define adds the instruction to the plain table.
func define(opcode uint8, in Instruction) {
	if instructionSet[opcode] != nil {
		panic(fmt.Sprintf("cpu: opcode 0x%02X defined twice", opcode))
	}
	in.Timing.Opcode = opcode
	instructionSet[opcode] = &in
}

// defineCB adds the instruction to the 0xCB table.
func defineCB(opcode uint8, in Instruction) {
	if instructionSetCB[opcode] != nil {
		panic(fmt.Sprintf("cpu: opcode 0xCB 0x%02X defined twice", opcode))
	}
	in.Timing.Opcode = opcode
	in.Timing.Prefixed = true
	instructionSetCB[opcode] = &in
}

func timing(length uint16, cycles uint32) Timing {
	return Timing{Length: length, Cycles: cycles}
}

func branchTiming(length uint16, cycles, taken uint32) Timing {
	return Timing{Length: length, Cycles: cycles, taken: taken, hasTaken: true}
}

// operandIndex returns the byte operand encoded in the low three bits
// of an opcode, in the order B, C, D, E, H, L, (HL), A.
func operandIndex(index uint8) ByteOperand {
	switch index & 0x7 {
	case 0:
		return reg(RegB)
	case 1:
		return reg(RegC)
	case 2:
		return reg(RegD)
	case 3:
		return reg(RegE)
	case 4:
		return reg(RegH)
	case 5:
		return reg(RegL)
	case 6:
		return indirect(HL)
	default:
		return reg(RegA)
	}
}

func reg(r Reg8) ByteOperand { return ByteOperand{Mode: ByteRegister, Reg: r} }
func indirect(p Reg16) ByteOperand { return ByteOperand{Mode: ByteIndirect, Pair: p} }
func byteMode(m ByteMode) ByteOperand { return ByteOperand{Mode: m} }
func pair(p Reg16) WordOperand { return WordOperand{Mode: WordPair, Pair: p} }
func wordMode(m WordMode) WordOperand { return WordOperand{Mode: m} }

// isMemory reports whether accessing the operand costs a memory cycle.
func isMemory(o ByteOperand) bool {
	return o.Mode == ByteIndirect
}

var (
	// pairs16 are the pairs encoded in bits 5-4 of 16-bit loads and
	// arithmetic, where 3 selects SP.
	pairs16 = [4]WordOperand{pair(BC), pair(DE), pair(HL), wordMode(WordSP)}
	// stackPairs are the pairs encoded in bits 5-4 of PUSH and POP.
	stackPairs = [4]Reg16{BC, DE, HL, AF}
	// jumpTests are the conditions encoded in bits 4-3 of conditional
	// control flow.
	jumpTests = [4]JumpTest{NotZero, Zero, NotCarry, Carry}
	// aluKinds are the operations encoded in bits 5-3 of 0x80-0xBF
	// and 0xC6-0xFE.
	aluKinds = [8]Kind{ADD, ADC, SUB, SBC, AND, XOR, OR, CP}
	// rotateKinds are the operations encoded in bits 5-3 of 0xCB
	// 0x00-0x3F.
	rotateKinds = [8]Kind{RLC, RRC, RL, RR, SLA, SRA, SWAP, SRL}
)

func aluName(kind Kind, src string) string {
	switch kind {
	case ADD:
		return "ADD A, " + src
	case ADC:
		return "ADC A, " + src
	case SUB:
		return "SUB " + src
	case SBC:
		return "SBC A, " + src
	case AND:
		return "AND " + src
	case XOR:
		return "XOR " + src
	case OR:
		return "OR " + src
	default:
		return "CP " + src
	}
}

var kindNames = map[Kind]string{
	RLC: "RLC", RRC: "RRC", RL: "RL", RR: "RR",
	SLA: "SLA", SRA: "SRA", SWAP: "SWAP", SRL: "SRL",
}

func init() {
	generateControlInstructions()
	generateLoadInstructions()
	generateArithmeticInstructions()
	generateJumpInstructions()

	generateRotateInstructions()
	generateBitInstructions()
}

func generateControlInstructions() {
	define(0x00, Instruction{Kind: NOP, Name: "NOP", Timing: timing(1, 4)})
	// STOP is followed by a padding byte
	define(0x10, Instruction{Kind: STOP, Name: "STOP", Timing: timing(2, 4)})
	define(0x76, Instruction{Kind: HALT, Name: "HALT", Timing: timing(1, 4)})
	define(0xF3, Instruction{Kind: DI, Name: "DI", Timing: timing(1, 4)})
	define(0xFB, Instruction{Kind: EI, Name: "EI", Timing: timing(1, 4)})

	define(0x27, Instruction{Kind: DAA, Name: "DAA", Timing: timing(1, 4)})
	define(0x2F, Instruction{Kind: CPL, Name: "CPL", Timing: timing(1, 4)})
	define(0x37, Instruction{Kind: SCF, Name: "SCF", Timing: timing(1, 4)})
	define(0x3F, Instruction{Kind: CCF, Name: "CCF", Timing: timing(1, 4)})

	define(0x07, Instruction{Kind: RLCA, Name: "RLCA", Timing: timing(1, 4)})
	define(0x0F, Instruction{Kind: RRCA, Name: "RRCA", Timing: timing(1, 4)})
	define(0x17, Instruction{Kind: RLA, Name: "RLA", Timing: timing(1, 4)})
	define(0x1F, Instruction{Kind: RRA, Name: "RRA", Timing: timing(1, 4)})
}

func generateLoadInstructions() {
	// 0x01 - 0x31 - LD rr, d16
	for i, target := range pairs16 {
		define(uint8(i)<<4|0x01, Instruction{
			Kind:       LD16,
			Name:       fmt.Sprintf("LD %s, d16", target),
			WordTarget: target,
			WordSource: wordMode(WordImmediate),
			Timing:     timing(3, 12),
		})
	}

	// 0x02 - 0x3A - LD (rr), A / LD A, (rr)
	accumulatorTargets := [4]ByteOperand{indirect(BC), indirect(DE), byteMode(ByteHLI), byteMode(ByteHLD)}
	for i, mem := range accumulatorTargets {
		define(uint8(i)<<4|0x02, Instruction{
			Kind:   LD,
			Name:   fmt.Sprintf("LD %s, A", mem),
			Target: mem,
			Source: reg(RegA),
			Timing: timing(1, 8),
		})
		define(uint8(i)<<4|0x0A, Instruction{
			Kind:   LD,
			Name:   fmt.Sprintf("LD A, %s", mem),
			Target: reg(RegA),
			Source: mem,
			Timing: timing(1, 8),
		})
	}

	// 0x06 - 0x3E - LD r, d8
	for j := uint8(0); j < 8; j++ {
		target := operandIndex(j)
		cycles := uint32(8)
		if isMemory(target) {
			cycles = 12
		}
		define(j<<3|0x06, Instruction{
			Kind:   LD,
			Name:   fmt.Sprintf("LD %s, d8", target),
			Target: target,
			Source: byteMode(ByteImmediate),
			Timing: timing(2, cycles),
		})
	}

	// 0x40 - 0x7F - LD r, r
	for opcode := 0x40; opcode < 0x80; opcode++ {
		if opcode == 0x76 { // HALT
			continue
		}
		target, source := operandIndex(uint8(opcode)>>3), operandIndex(uint8(opcode))
		cycles := uint32(4)
		if isMemory(target) || isMemory(source) {
			cycles = 8
		}
		define(uint8(opcode), Instruction{
			Kind:   LD,
			Name:   fmt.Sprintf("LD %s, %s", target, source),
			Target: target,
			Source: source,
			Timing: timing(1, cycles),
		})
	}

	define(0x08, Instruction{
		Kind:       LD16,
		Name:       "LD (a16), SP",
		WordTarget: wordMode(WordDirect),
		WordSource: wordMode(WordSP),
		Timing:     timing(3, 20),
	})

	// 0xC1 - 0xF5 - POP rr / PUSH rr
	for i, p := range stackPairs {
		define(0xC1|uint8(i)<<4, Instruction{
			Kind:       POP,
			Name:       fmt.Sprintf("POP %s", p),
			WordTarget: pair(p),
			Timing:     timing(1, 12),
		})
		define(0xC5|uint8(i)<<4, Instruction{
			Kind:       PUSH,
			Name:       fmt.Sprintf("PUSH %s", p),
			WordSource: pair(p),
			Timing:     timing(1, 16),
		})
	}

	define(0xE0, Instruction{Kind: LD, Name: "LDH (a8), A", Target: byteMode(ByteHighImmediate), Source: reg(RegA), Timing: timing(2, 12)})
	define(0xF0, Instruction{Kind: LD, Name: "LDH A, (a8)", Target: reg(RegA), Source: byteMode(ByteHighImmediate), Timing: timing(2, 12)})
	define(0xE2, Instruction{Kind: LD, Name: "LD (C), A", Target: byteMode(ByteHighC), Source: reg(RegA), Timing: timing(1, 8)})
	define(0xF2, Instruction{Kind: LD, Name: "LD A, (C)", Target: reg(RegA), Source: byteMode(ByteHighC), Timing: timing(1, 8)})
	define(0xEA, Instruction{Kind: LD, Name: "LD (a16), A", Target: byteMode(ByteDirect), Source: reg(RegA), Timing: timing(3, 16)})
	define(0xFA, Instruction{Kind: LD, Name: "LD A, (a16)", Target: reg(RegA), Source: byteMode(ByteDirect), Timing: timing(3, 16)})

	define(0xF8, Instruction{
		Kind:       LD16,
		Name:       "LD HL, SP+r8",
		WordTarget: pair(HL),
		WordSource: wordMode(WordSPPlusI8),
		Timing:     timing(2, 12),
	})
	define(0xF9, Instruction{
		Kind:       LD16,
		Name:       "LD SP, HL",
		WordTarget: wordMode(WordSP),
		WordSource: pair(HL),
		Timing:     timing(1, 8),
	})
}

func generateArithmeticInstructions() {
	for i, p := range pairs16 {
		// 0x03 - 0x33 - INC rr
		define(uint8(i)<<4|0x03, Instruction{Kind: INC16, Name: fmt.Sprintf("INC %s", p), WordTarget: p, Timing: timing(1, 8)})
		// 0x0B - 0x3B - DEC rr
		define(uint8(i)<<4|0x0B, Instruction{Kind: DEC16, Name: fmt.Sprintf("DEC %s", p), WordTarget: p, Timing: timing(1, 8)})
		// 0x09 - 0x39 - ADD HL, rr
		define(uint8(i)<<4|0x09, Instruction{Kind: ADD16, Name: fmt.Sprintf("ADD HL, %s", p), WordTarget: pair(HL), WordSource: p, Timing: timing(1, 8)})
	}

	// 0x04 - 0x3D - INC r / DEC r
	for j := uint8(0); j < 8; j++ {
		target := operandIndex(j)
		cycles := uint32(4)
		if isMemory(target) {
			cycles = 12
		}
		define(j<<3|0x04, Instruction{Kind: INC, Name: fmt.Sprintf("INC %s", target), Target: target, Timing: timing(1, cycles)})
		define(j<<3|0x05, Instruction{Kind: DEC, Name: fmt.Sprintf("DEC %s", target), Target: target, Timing: timing(1, cycles)})
	}

	// 0x80 - 0xBF - ALU A, r
	for opcode := 0x80; opcode < 0xC0; opcode++ {
		kind := aluKinds[opcode>>3&0x7]
		source := operandIndex(uint8(opcode))
		cycles := uint32(4)
		if isMemory(source) {
			cycles = 8
		}
		define(uint8(opcode), Instruction{
			Kind:   kind,
			Name:   aluName(kind, source.String()),
			Target: reg(RegA),
			Source: source,
			Timing: timing(1, cycles),
		})
	}

	// 0xC6 - 0xFE - ALU A, d8
	for i, kind := range aluKinds {
		define(0xC6|uint8(i)<<3, Instruction{
			Kind:   kind,
			Name:   aluName(kind, "d8"),
			Target: reg(RegA),
			Source: byteMode(ByteImmediate),
			Timing: timing(2, 8),
		})
	}

	define(0xE8, Instruction{
		Kind:       ADDSP,
		Name:       "ADD SP, r8",
		WordTarget: wordMode(WordSP),
		WordSource: wordMode(WordSPPlusI8),
		Timing:     timing(2, 16),
	})
}

func generateJumpInstructions() {
	define(0x18, Instruction{Kind: JR, Name: "JR r8", Test: Always, Timing: timing(2, 12)})
	define(0xC3, Instruction{Kind: JP, Name: "JP a16", Test: Always, WordSource: wordMode(WordImmediate), Timing: timing(3, 16)})
	define(0xE9, Instruction{Kind: JP, Name: "JP HL", Test: Always, WordSource: pair(HL), Timing: timing(1, 4)})
	define(0xCD, Instruction{Kind: CALL, Name: "CALL a16", Test: Always, WordSource: wordMode(WordImmediate), Timing: timing(3, 24)})
	define(0xC9, Instruction{Kind: RET, Name: "RET", Test: Always, Timing: timing(1, 16)})
	define(0xD9, Instruction{Kind: RETI, Name: "RETI", Test: Always, Timing: timing(1, 16)})

	for i, test := range jumpTests {
		cc := uint8(i) << 3
		// 0x20 - 0x38 - JR cc, r8
		define(0x20|cc, Instruction{Kind: JR, Name: fmt.Sprintf("JR %s, r8", test), Test: test, Timing: branchTiming(2, 8, 12)})
		// 0xC0 - 0xD8 - RET cc
		define(0xC0|cc, Instruction{Kind: RET, Name: fmt.Sprintf("RET %s", test), Test: test, Timing: branchTiming(1, 8, 20)})
		// 0xC2 - 0xDA - JP cc, a16
		define(0xC2|cc, Instruction{
			Kind:       JP,
			Name:       fmt.Sprintf("JP %s, a16", test),
			Test:       test,
			WordSource: wordMode(WordImmediate),
			Timing:     branchTiming(3, 12, 16),
		})
		// 0xC4 - 0xDC - CALL cc, a16
		define(0xC4|cc, Instruction{
			Kind:       CALL,
			Name:       fmt.Sprintf("CALL %s, a16", test),
			Test:       test,
			WordSource: wordMode(WordImmediate),
			Timing:     branchTiming(3, 12, 24),
		})
	}

	// 0xC7 - 0xFF - RST n
	for n := uint8(0); n < 8; n++ {
		vector := uint16(n) << 3
		define(0xC7|n<<3, Instruction{Kind: RST, Name: fmt.Sprintf("RST %02XH", vector), Vector: vector, Timing: timing(1, 16)})
	}
}
