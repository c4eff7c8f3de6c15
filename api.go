package sha2

import (
	"io"
	"unsafe"
)

// Hasher is a hash.Hash for one SHA-2 variant. The zero value is only
// usable as the target of UnmarshalBinary; writing to, summing or resetting
// it panics. Construct one with New or one of the NewNNN functions.
type Hasher struct {
	v Variant
	n hasher[uint32] // SHA-224 and SHA-256
	w hasher[uint64] // SHA-384 and SHA-512
}

// New returns a new Hasher for the variant. It panics if the variant is
// unknown.
func New(v Variant) *Hasher {
	h := &Hasher{v: v}
	switch v {
	case SHA224:
		h.n = newHasher(sha224Config)
	case SHA256:
		h.n = newHasher(sha256Config)
	case SHA384:
		h.w = newHasher(sha384Config)
	case SHA512:
		h.w = newHasher(sha512Config)
	default:
		panic("sha2: unknown variant")
	}
	return h
}

// New224 returns a new Hasher computing SHA-224.
func New224() *Hasher { return New(SHA224) }

// New256 returns a new Hasher computing SHA-256.
func New256() *Hasher { return New(SHA256) }

// New384 returns a new Hasher computing SHA-384.
func New384() *Hasher { return New(SHA384) }

// New512 returns a new Hasher computing SHA-512.
func New512() *Hasher { return New(SHA512) }

func (h *Hasher) mustInit() {
	if !h.v.Available() {
		panic("sha2: use of uninitialized Hasher")
	}
}

func (h *Hasher) update(p []byte) {
	h.mustInit()
	if h.v.wide() {
		h.w.update(p)
	} else {
		h.n.update(p)
	}
}

// Write implements part of the hash.Hash interface. It never returns an error.
func (h *Hasher) Write(p []byte) (int, error) {
	h.update(p)
	return len(p), nil
}

// WriteString is like Write but takes a string. It never returns an error.
func (h *Hasher) WriteString(s string) (int, error) {
	if len(s) > 0 {
		h.update(unsafe.Slice(unsafe.StringData(s), len(s)))
	}
	return len(s), nil
}

// WriteByte writes a single byte. It never returns an error.
func (h *Hasher) WriteByte(c byte) error {
	b := [1]byte{c}
	h.update(b[:])
	return nil
}

// ReadFrom writes everything read from r into the Hasher until io.EOF. The
// only errors returned are those from r.
func (h *Hasher) ReadFrom(r io.Reader) (n int64, err error) {
	var buf [8192]byte
	for {
		m, err := r.Read(buf[:])
		h.update(buf[:m])
		n += int64(m)
		if err == io.EOF {
			return n, nil
		} else if err != nil {
			return n, err
		}
	}
}

// Reset implements part of the hash.Hash interface. It causes the Hasher to
// act as if it was newly created, including after Final.
func (h *Hasher) Reset() {
	h.mustInit()
	if h.v.wide() {
		h.w.reset()
	} else {
		h.n.reset()
	}
}

// Size implements part of the hash.Hash interface. It returns the number of
// bytes the hash will output.
func (h *Hasher) Size() int { return h.v.Size() }

// BlockSize implements part of the hash.Hash interface. It returns the
// variant's block length.
func (h *Hasher) BlockSize() int { return h.v.BlockSize() }

// Variant returns the variant the Hasher computes.
func (h *Hasher) Variant() Variant { return h.v }

// Len returns the number of bytes written since creation or the last Reset.
func (h *Hasher) Len() uint64 {
	if h.v.wide() {
		return h.w.n.lo
	}
	return h.n.n.lo
}

// Clone returns a new Hasher with the same state. Writes to either do not
// affect the other.
func (h *Hasher) Clone() *Hasher {
	c := *h
	return &c
}

func (h *Hasher) sum(out []byte) {
	h.mustInit()
	if h.v.wide() {
		h.w.sum(out)
	} else {
		h.n.sum(out)
	}
}

// Sum implements part of the hash.Hash interface. It appends the digest of
// the Hasher to the provided buffer and returns it. The Hasher may continue
// to be written to afterwards.
func (h *Hasher) Sum(b []byte) []byte {
	size := h.Size()
	if top := len(b) + size; top <= cap(b) && top >= len(b) {
		h.sum(b[len(b):top])
		return b[:top]
	}

	var tmp [MaxSize]byte
	h.sum(tmp[:size])
	return append(b, tmp[:size]...)
}

// Digest returns the current digest without changing the Hasher.
func (h *Hasher) Digest() Digest {
	d := Digest{v: h.v}
	h.sum(d.buf[:h.Size()])
	return d
}

// Final pads the message, writes the digest into out and ends the Hasher.
// out must be exactly Size() bytes. Any use other than Reset afterwards
// panics.
func (h *Hasher) Final(out []byte) {
	h.mustInit()
	if len(out) != h.Size() {
		panic("sha2: digest buffer has the wrong size")
	}
	if h.v.wide() {
		h.w.finalize()
		h.w.writeResult(out)
	} else {
		h.n.finalize()
		h.n.writeResult(out)
	}
}
