package sha2

import "github.com/zeebo/sha2/internal/consts"

// Digest sizes in bytes.
const (
	Size224 = consts.Size224
	Size256 = consts.Size256
	Size384 = consts.Size384
	Size512 = consts.Size512
)

// Block sizes in bytes.
const (
	BlockSize256 = consts.BlockLen256
	BlockSize512 = consts.BlockLen512
)

// Sum224 returns the SHA-224 digest of the data.
func Sum224(data []byte) (out [Size224]byte) {
	h := newHasher(sha224Config)
	h.update(data)
	h.finalize()
	h.writeResult(out[:])
	return out
}

// Sum256 returns the SHA-256 digest of the data.
func Sum256(data []byte) (out [Size256]byte) {
	h := newHasher(sha256Config)
	h.update(data)
	h.finalize()
	h.writeResult(out[:])
	return out
}

// Sum384 returns the SHA-384 digest of the data.
func Sum384(data []byte) (out [Size384]byte) {
	h := newHasher(sha384Config)
	h.update(data)
	h.finalize()
	h.writeResult(out[:])
	return out
}

// Sum512 returns the SHA-512 digest of the data.
func Sum512(data []byte) (out [Size512]byte) {
	h := newHasher(sha512Config)
	h.update(data)
	h.finalize()
	h.writeResult(out[:])
	return out
}

// Sum returns the digest of the data for the variant. It panics if the
// variant is unknown.
func Sum(v Variant, data []byte) Digest {
	h := New(v)
	h.update(data)
	return h.Digest()
}
