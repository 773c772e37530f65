package types

// The 64kB address space is split into fixed regions, each owned by a
// single component.
const (
	ROMStart         uint16 = 0x0000
	ROMEnd           uint16 = 0x7FFF
	VRAMStart        uint16 = 0x8000
	VRAMEnd          uint16 = 0x9FFF
	ExternalRAMStart uint16 = 0xA000
	ExternalRAMEnd   uint16 = 0xBFFF
	WRAM0Start       uint16 = 0xC000
	WRAM0End         uint16 = 0xCFFF
	WRAM1Start       uint16 = 0xD000
	WRAM1End         uint16 = 0xDFFF
	EchoStart        uint16 = 0xE000
	EchoEnd          uint16 = 0xFDFF
	OAMStart         uint16 = 0xFE00
	OAMEnd           uint16 = 0xFE9F
	UnusableStart    uint16 = 0xFEA0
	UnusableEnd      uint16 = 0xFEFF
	IOStart          uint16 = 0xFF00
	IOEnd            uint16 = 0xFF7F
	HRAMStart        uint16 = 0xFF80
	HRAMEnd          uint16 = 0xFFFE
)

// HardwareAddress represents the address of a hardware
// register of the Game Boy. The hardware IO are mapped
// to memory addresses 0xFF00 - 0xFF7F & 0xFFFF.
type HardwareAddress = uint16

const (
	// SB is the address of the SB hardware register. The SB
	// hardware register holds the byte to be transferred over
	// the serial port.
	SB HardwareAddress = 0xFF01
	// SC is the address of the SC hardware register. Writing
	// 0x81 starts a transfer using the internal clock.
	SC HardwareAddress = 0xFF02
	// DIV is the address of the DIV hardware register. The DIV
	// hardware register is incremented at a rate of 16384Hz. Internally
	// it is a 16-bit register, but only the upper 8 bits may be read.
	// Writing any value resets it to 0.
	DIV HardwareAddress = 0xFF04
	// TIMA is the address of the TIMA hardware register. The TIMA
	// hardware register is incremented at a rate specified by the TAC
	// hardware register. When TIMA overflows, it is reset to the value
	// specified by the TMA hardware register, and a timer interrupt is
	// requested.
	TIMA HardwareAddress = 0xFF05
	// TMA is the address of the TMA hardware register. The TMA
	// hardware register is loaded into TIMA when it overflows.
	TMA HardwareAddress = 0xFF06
	// TAC is the address of the TAC hardware register. The TAC
	// hardware register is used to control the timer.
	TAC HardwareAddress = 0xFF07
	// IF is the address of the IF hardware register. The IF
	// hardware register is used to request interrupts.
	//
	//  Bit 0: V-Blank Interrupt Request
	//  Bit 1: LCD STAT Interrupt Request
	//  Bit 2: Timer Interrupt Request
	//  Bit 3: Serial Interrupt Request
	//  Bit 4: Joypad Interrupt Request
	IF HardwareAddress = 0xFF0F
	// LY is the address of the LY hardware register, the
	// current scanline. The PPU isn't emulated, so it is
	// a plain byte.
	LY HardwareAddress = 0xFF44
	// IE is the address of the IE hardware register. Each bit
	// enables the interrupt of the same bit in IF.
	IE HardwareAddress = 0xFFFF
)
