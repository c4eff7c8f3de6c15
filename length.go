package sha2

import (
	"math/bits"

	"github.com/zeebo/sha2/internal/utils"
)

// uint128 counts message bytes. It is wide enough that the bit count of any
// byte count stored in the low half never overflows.
type uint128 struct {
	hi, lo uint64
}

func (u uint128) add(n uint64) uint128 {
	lo, carry := bits.Add64(u.lo, n, 0)
	return uint128{hi: u.hi + carry, lo: lo}
}

// bits returns the count multiplied by 8.
func (u uint128) bits() uint128 {
	return uint128{hi: u.hi<<3 | u.lo>>61, lo: u.lo << 3}
}

// put writes u big-endian into b, which must be 8 or 16 bytes. An 8 byte
// window receives the low half only.
func (u uint128) put(b []byte) {
	if len(b) == 16 {
		utils.Store(b[:8], u.hi)
		b = b[8:]
	}
	utils.Store(b, u.lo)
}

func getUint128(b []byte) uint128 {
	return uint128{hi: utils.Load[uint64](b[:8]), lo: utils.Load[uint64](b[8:])}
}
