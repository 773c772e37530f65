package types

const (
	zeroFlagPosition      = 7
	subtractFlagPosition  = 6
	halfCarryFlagPosition = 5
	carryFlagPosition     = 4
)

// Register represents a GB Register which is used to hold an 8-bit value.
type Register = uint8

// Flags represents the F register. Only the upper nibble is used, the
// lower nibble always reads back as 0.
//
//	Bit 7: Zero
//	Bit 6: Subtract
//	Bit 5: Half Carry
//	Bit 4: Carry
type Flags struct {
	Zero      bool
	Subtract  bool
	HalfCarry bool
	Carry     bool
}

// Byte packs the flags into their F register representation.
func (f Flags) Byte() uint8 {
	var b uint8
	if f.Zero {
		b |= 1 << zeroFlagPosition
	}
	if f.Subtract {
		b |= 1 << subtractFlagPosition
	}
	if f.HalfCarry {
		b |= 1 << halfCarryFlagPosition
	}
	if f.Carry {
		b |= 1 << carryFlagPosition
	}
	return b
}

// FlagsFromByte unpacks an F register value. Bits 3-0 are discarded.
func FlagsFromByte(b uint8) Flags {
	return Flags{
		Zero:      b>>zeroFlagPosition&1 != 0,
		Subtract:  b>>subtractFlagPosition&1 != 0,
		HalfCarry: b>>halfCarryFlagPosition&1 != 0,
		Carry:     b>>carryFlagPosition&1 != 0,
	}
}

// Registers represents the GB CPU registers. The 8-bit registers can
// be combined into the 16-bit pairs AF, BC, DE and HL, where the first
// register of the pair holds the high byte.
type Registers struct {
	A Register
	B Register
	C Register
	D Register
	E Register
	H Register
	L Register

	F Flags
}

// AF returns the value of the AF register pair.
func (r *Registers) AF() uint16 {
	return uint16(r.A)<<8 | uint16(r.F.Byte())
}

// SetAF sets the AF register pair. The lower nibble of F is dropped.
func (r *Registers) SetAF(value uint16) {
	r.A = uint8(value >> 8)
	r.F = FlagsFromByte(uint8(value))
}

// BC returns the value of the BC register pair.
func (r *Registers) BC() uint16 {
	return uint16(r.B)<<8 | uint16(r.C)
}

// SetBC sets the BC register pair.
func (r *Registers) SetBC(value uint16) {
	r.B = uint8(value >> 8)
	r.C = uint8(value)
}

// DE returns the value of the DE register pair.
func (r *Registers) DE() uint16 {
	return uint16(r.D)<<8 | uint16(r.E)
}

// SetDE sets the DE register pair.
func (r *Registers) SetDE(value uint16) {
	r.D = uint8(value >> 8)
	r.E = uint8(value)
}

// HL returns the value of the HL register pair.
func (r *Registers) HL() uint16 {
	return uint16(r.H)<<8 | uint16(r.L)
}

// SetHL sets the HL register pair.
func (r *Registers) SetHL(value uint16) {
	r.H = uint8(value >> 8)
	r.L = uint8(value)
}
