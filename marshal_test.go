package sha2

import (
	"testing"

	"github.com/zeebo/assert"
)

func TestMarshalResume(t *testing.T) {
	data := testInput(1000)

	for _, v := range Variants {
		exp := Sum(v, data)

		for split := 0; split <= len(data); split += 37 {
			h := New(v)
			h.Write(data[:split])

			state, err := h.MarshalBinary()
			assert.NoError(t, err)
			assert.Equal(t, len(state), marshaledLen(v))

			var r Hasher
			assert.NoError(t, r.UnmarshalBinary(state))
			assert.Equal(t, r.Variant(), v)
			assert.Equal(t, r.Len(), uint64(split))

			r.Write(data[split:])
			assert.Equal(t, r.Digest().String(), exp.String())

			// the original is unaffected
			h.Write(data[split:])
			assert.Equal(t, h.Digest().String(), exp.String())
		}
	}
}

func marshaledLen(v Variant) int {
	if v.wide() {
		return marshaledSize(sha512Config)
	}
	return marshaledSize(sha256Config)
}

func TestMarshalErrors(t *testing.T) {
	good, err := New256().MarshalBinary()
	assert.NoError(t, err)

	t.Run("Finalized", func(t *testing.T) {
		h := New256()
		h.Final(make([]byte, Size256))
		_, err := h.MarshalBinary()
		assert.Error(t, err)
	})

	t.Run("Uninitialized", func(t *testing.T) {
		var h Hasher
		_, err := h.MarshalBinary()
		assert.Error(t, err)
	})

	t.Run("Magic", func(t *testing.T) {
		var h Hasher
		assert.Error(t, h.UnmarshalBinary(nil))
		assert.Error(t, h.UnmarshalBinary([]byte("sha3\x02")))
	})

	t.Run("Variant", func(t *testing.T) {
		bad := append([]byte(nil), good...)
		bad[len(magic)] = 9

		var h Hasher
		assert.Error(t, h.UnmarshalBinary(bad))
	})

	t.Run("Mismatch", func(t *testing.T) {
		assert.Error(t, New512().UnmarshalBinary(good))
		assert.NoError(t, New256().UnmarshalBinary(good))
	})

	t.Run("Size", func(t *testing.T) {
		var h Hasher
		assert.Error(t, h.UnmarshalBinary(good[:len(good)-1]))
		assert.Error(t, h.UnmarshalBinary(append(good, 0)))
	})

	t.Run("Used", func(t *testing.T) {
		bad := append([]byte(nil), good...)
		bad[len(bad)-17] = BlockSize256

		var h Hasher
		assert.Error(t, h.UnmarshalBinary(bad))
	})

	t.Run("Length", func(t *testing.T) {
		bad := append([]byte(nil), good...)
		bad[len(bad)-17] = 3

		var h Hasher
		assert.Error(t, h.UnmarshalBinary(bad))
	})
}
