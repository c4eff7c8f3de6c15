package ref

import (
	"encoding/binary"

	"github.com/zeebo/sha2/internal/consts"
)

// pad returns data followed by the 0x80 marker, zeros, and the bit length in
// the final lengthLen bytes, rounded up to a whole number of blocks.
func pad(data []byte, blockLen, lengthLen int) []byte {
	total := (len(data) + 1 + lengthLen + blockLen - 1) / blockLen * blockLen
	msg := make([]byte, total)
	copy(msg, data)
	msg[len(data)] = 0x80

	bitsLen := uint64(len(data)) << 3
	binary.BigEndian.PutUint64(msg[total-8:], bitsLen)
	if lengthLen == 16 {
		binary.BigEndian.PutUint64(msg[total-16:], uint64(len(data))>>61)
	}
	return msg
}

func sum32(iv [8]uint32, words int, data []byte) []byte {
	h := iv
	Block256(&h, pad(data, consts.BlockLen256, consts.LengthLen256))

	out := make([]byte, 4*words)
	for i := 0; i < words; i++ {
		binary.BigEndian.PutUint32(out[4*i:], h[i])
	}
	return out
}

func sum64(iv [8]uint64, words int, data []byte) []byte {
	h := iv
	Block512(&h, pad(data, consts.BlockLen512, consts.LengthLen512))

	out := make([]byte, 8*words)
	for i := 0; i < words; i++ {
		binary.BigEndian.PutUint64(out[8*i:], h[i])
	}
	return out
}

// Sum224 returns the SHA-224 digest of data.
func Sum224(data []byte) []byte { return sum32(consts.IV224, 7, data) }

// Sum256 returns the SHA-256 digest of data.
func Sum256(data []byte) []byte { return sum32(consts.IV256, 8, data) }

// Sum384 returns the SHA-384 digest of data.
func Sum384(data []byte) []byte { return sum64(consts.IV384, 6, data) }

// Sum512 returns the SHA-512 digest of data.
func Sum512(data []byte) []byte { return sum64(consts.IV512, 8, data) }
