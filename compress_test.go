package sha2

import (
	"math/bits"
	"testing"

	"github.com/zeebo/assert"
	"github.com/zeebo/pcg"

	"github.com/zeebo/sha2/ref"
)

func TestRotr(t *testing.T) {
	for i := 0; i < 1e4; i++ {
		x32, x64 := pcg.Uint32(), pcg.Uint64()
		n32, n64 := uint(pcg.Uint32()%31)+1, uint(pcg.Uint32()%63)+1

		assert.Equal(t, rotr(x32, n32), bits.RotateLeft32(x32, -int(n32)))
		assert.Equal(t, rotr(x64, n64), bits.RotateLeft64(x64, -int(n64)))
	}
}

func TestCompress256(t *testing.T) {
	var block [64]byte

	for i := 0; i < 1e4; i++ {
		var s1, s2 [8]uint32
		for j := range &s1 {
			s1[j] = pcg.Uint32()
		}
		for j := range &block {
			block[j] = byte(pcg.Uint32())
		}
		s2 = s1

		compress(sha256Config, block[:], &s1)
		ref.Block256(&s2, block[:])

		assert.Equal(t, s1, s2)
	}
}

func TestCompress512(t *testing.T) {
	var block [128]byte

	for i := 0; i < 1e4; i++ {
		var s1, s2 [8]uint64
		for j := range &s1 {
			s1[j] = pcg.Uint64()
		}
		for j := range &block {
			block[j] = byte(pcg.Uint32())
		}
		s2 = s1

		compress(sha512Config, block[:], &s1)
		ref.Block512(&s2, block[:])

		assert.Equal(t, s1, s2)
	}
}

func TestExpand(t *testing.T) {
	var block [64]byte
	for i := range block {
		block[i] = byte(i)
	}

	var w schedule[uint32]
	expand(sha256Config, block[:], &w)

	assert.Equal(t, w[0], uint32(0x00010203))
	assert.Equal(t, w[15], uint32(0x3c3d3e3f))

	// entries past the variant's round count are untouched
	for i := sha256Config.rounds; i < len(w); i++ {
		assert.Equal(t, w[i], uint32(0))
	}

	// recompute the tail directly from the recurrence
	for i := 16; i < 64; i++ {
		s0 := bits.RotateLeft32(w[i-15], -7) ^ bits.RotateLeft32(w[i-15], -18) ^ w[i-15]>>3
		s1 := bits.RotateLeft32(w[i-2], -17) ^ bits.RotateLeft32(w[i-2], -19) ^ w[i-2]>>10
		assert.Equal(t, w[i], w[i-16]+s0+w[i-7]+s1)
	}
}

func TestRoundsFeedForward(t *testing.T) {
	// with an all zero schedule the rounds still depend on the state, and the
	// result is added to the old state rather than replacing it
	var w schedule[uint32]
	s1 := sha256Config.iv
	rounds(sha256Config, &w, &s1)

	var s2 [8]uint32
	rounds(sha256Config, &w, &s2)

	assert.That(t, s1 != sha256Config.iv)
	assert.That(t, s1 != s2)
}

func BenchmarkCompress256(b *testing.B) {
	var block [64]byte
	s := sha256Config.iv

	b.SetBytes(64)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		compress(sha256Config, block[:], &s)
	}
}

func BenchmarkCompress512(b *testing.B) {
	var block [128]byte
	s := sha512Config.iv

	b.SetBytes(128)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		compress(sha512Config, block[:], &s)
	}
}
