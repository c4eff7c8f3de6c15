package sha2

import (
	"encoding/hex"

	"github.com/pkg/errors"
)

// Digest is a finished hash value tagged with the variant that produced it.
// Digests are comparable with ==.
type Digest struct {
	v   Variant
	buf [MaxSize]byte
}

// Variant returns the variant that produced the digest.
func (d Digest) Variant() Variant { return d.v }

// Size returns the digest length in bytes.
func (d Digest) Size() int { return d.v.Size() }

// Bytes returns a copy of the digest bytes.
func (d Digest) Bytes() []byte {
	return append([]byte(nil), d.buf[:d.v.Size()]...)
}

// String returns the digest as lower case hex.
func (d Digest) String() string {
	return hex.EncodeToString(d.buf[:d.v.Size()])
}

// Equal reports whether both digests come from the same variant and hold
// the same bytes.
func (d Digest) Equal(o Digest) bool { return d == o }

// ParseDigest decodes a hex digest for the variant.
func ParseDigest(v Variant, s string) (d Digest, err error) {
	if !v.Available() {
		return Digest{}, errors.Errorf("sha2: unknown variant %d", v)
	}
	if len(s) != 2*v.Size() {
		return Digest{}, errors.Errorf("sha2: %s digest must be %d hex characters, got %d",
			v, 2*v.Size(), len(s))
	}
	d.v = v
	if _, err := hex.Decode(d.buf[:], []byte(s)); err != nil {
		return Digest{}, errors.Wrap(err, "sha2: invalid digest")
	}
	return d, nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Digest) MarshalText() ([]byte, error) {
	if !d.v.Available() {
		return nil, errors.New("sha2: marshal of empty digest")
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The variant is inferred
// from the length of the text.
func (d *Digest) UnmarshalText(text []byte) error {
	v, ok := VariantForSize(len(text) / 2)
	if !ok || len(text)%2 != 0 {
		return errors.Errorf("sha2: no variant has %d hex character digests", len(text))
	}
	parsed, err := ParseDigest(v, string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
