package cpu

import (
	"fmt"

	"github.com/thelolagemann/gbcore/pkg/bits"
)

// rotate applies a rotate, shift or swap to n and returns the result
// and the bit shifted out into the carry flag.
//
//	RLC - old bit 7 to carry and bit 0.
//	RL  - old bit 7 to carry, carry to bit 0.
//	RRC - old bit 0 to carry and bit 7.
//	RR  - old bit 0 to carry, carry to bit 7.
//	SLA - old bit 7 to carry, bit 0 reset.
//	SRA - old bit 0 to carry, bit 7 unchanged.
//	SRL - old bit 0 to carry, bit 7 reset.
//	SWAP - nibbles swapped, carry reset.
func rotate(kind Kind, n uint8, carry bool) (uint8, bool) {
	switch kind {
	case RLC, RLCA:
		return n<<1 | n>>7, bits.Test(n, 7)
	case RL, RLA:
		return n<<1 | b2u(carry), bits.Test(n, 7)
	case RRC, RRCA:
		return n>>1 | n<<7, bits.Test(n, 0)
	case RR, RRA:
		return n>>1 | b2u(carry)<<7, bits.Test(n, 0)
	case SLA:
		return n << 1, bits.Test(n, 7)
	case SRA:
		return n>>1 | n&bits.Bit7, bits.Test(n, 0)
	case SRL:
		return n >> 1, bits.Test(n, 0)
	case SWAP:
		return n<<4 | n>>4, false
	}
	panic(fmt.Sprintf("cpu: kind %d is not a rotate instruction", kind))
}
