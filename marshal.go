package sha2

import (
	"github.com/pkg/errors"

	"github.com/zeebo/sha2/internal/utils"
)

// The marshaled state is laid out as
//
//	[4 bytes "sha2"] [1 byte variant] [8 state words, big-endian]
//	[block bytes] [1 byte used] [16 byte big-endian length]
const magic = "sha2"

func marshaledSize[W utils.Word](cfg *config[W]) int {
	return len(magic) + 1 + 8*utils.Width[W]() + cfg.blockLen + 1 + 16
}

// MarshalBinary implements encoding.BinaryMarshaler. The state can be
// restored with UnmarshalBinary to continue writing later. A Hasher that has
// been through Final cannot be marshaled.
func (h *Hasher) MarshalBinary() ([]byte, error) {
	if !h.v.Available() {
		return nil, errors.New("sha2: marshal of uninitialized hasher")
	}
	if h.v.wide() {
		return h.w.appendBinary(nil, h.v)
	}
	return h.n.appendBinary(nil, h.v)
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. A zero Hasher takes
// the variant stored in the data; otherwise the variants must match.
func (h *Hasher) UnmarshalBinary(data []byte) error {
	if len(data) < len(magic)+1 || string(data[:len(magic)]) != magic {
		return errors.New("sha2: invalid hash state identifier")
	}
	v := Variant(data[len(magic)])
	if !v.Available() {
		return errors.Errorf("sha2: invalid hash state variant %d", data[len(magic)])
	}
	if h.v != 0 && h.v != v {
		return errors.Errorf("sha2: hash state is %s, hasher is %s", v, h.v)
	}

	tmp := New(v)
	var err error
	if v.wide() {
		err = tmp.w.unmarshal(data)
	} else {
		err = tmp.n.unmarshal(data)
	}
	if err != nil {
		return err
	}
	*h = *tmp
	return nil
}

func (a *hasher[W]) appendBinary(b []byte, v Variant) ([]byte, error) {
	if a.done {
		return nil, errors.New("sha2: cannot marshal a finalized hasher")
	}

	b = append(b, magic...)
	b = append(b, byte(v))

	n := utils.Width[W]()
	var word [8]byte
	for _, x := range a.h {
		utils.Store(word[:], x)
		b = append(b, word[:n]...)
	}

	b = append(b, a.block()...)
	b = append(b, byte(a.used))

	var length [16]byte
	a.n.put(length[:])
	return append(b, length[:]...), nil
}

func (a *hasher[W]) unmarshal(data []byte) error {
	if len(data) != marshaledSize(a.cfg) {
		return errors.Errorf("sha2: hash state has size %d, want %d",
			len(data), marshaledSize(a.cfg))
	}
	data = data[len(magic)+1:]

	n := utils.Width[W]()
	for i := range a.h {
		a.h[i] = utils.Load[W](data[i*n:])
	}
	data = data[8*n:]

	copy(a.block(), data[:a.cfg.blockLen])
	data = data[a.cfg.blockLen:]

	used := int(data[0])
	if used >= a.cfg.blockLen {
		return errors.Errorf("sha2: hash state buffers %d bytes of a %d byte block",
			used, a.cfg.blockLen)
	}
	a.used = used
	a.n = getUint128(data[1:])

	if a.n.lo%uint64(a.cfg.blockLen) != uint64(used) {
		return errors.New("sha2: hash state length does not match buffered bytes")
	}
	return nil
}
