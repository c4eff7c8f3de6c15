package sha2

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/zeebo/sha2/internal/consts"
)

// Variant selects one member of the SHA-2 family.
type Variant uint8

const (
	SHA224 Variant = 1 + iota
	SHA256
	SHA384
	SHA512
)

// Variants lists every supported variant in ascending digest size.
var Variants = []Variant{SHA224, SHA256, SHA384, SHA512}

// MaxSize is the largest digest size of any variant.
const MaxSize = consts.Size512

// Available reports whether v is a known variant.
func (v Variant) Available() bool {
	return v >= SHA224 && v <= SHA512
}

// Size returns the digest length in bytes, or 0 for an unknown variant.
func (v Variant) Size() int {
	switch v {
	case SHA224:
		return consts.Size224
	case SHA256:
		return consts.Size256
	case SHA384:
		return consts.Size384
	case SHA512:
		return consts.Size512
	}
	return 0
}

// BlockSize returns the block length in bytes, or 0 for an unknown variant.
func (v Variant) BlockSize() int {
	switch v {
	case SHA224, SHA256:
		return consts.BlockLen256
	case SHA384, SHA512:
		return consts.BlockLen512
	}
	return 0
}

func (v Variant) wide() bool { return v == SHA384 || v == SHA512 }

func (v Variant) String() string {
	switch v {
	case SHA224:
		return "SHA-224"
	case SHA256:
		return "SHA-256"
	case SHA384:
		return "SHA-384"
	case SHA512:
		return "SHA-512"
	}
	return "Variant(" + strconv.Itoa(int(v)) + ")"
}

// ParseVariant accepts names like "sha256", "SHA-256" or "256".
func ParseVariant(s string) (Variant, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.TrimPrefix(name, "sha")
	name = strings.TrimPrefix(name, "-")
	switch name {
	case "224":
		return SHA224, nil
	case "256":
		return SHA256, nil
	case "384":
		return SHA384, nil
	case "512":
		return SHA512, nil
	}
	return 0, errors.Errorf("sha2: unknown variant %q", s)
}

// VariantForSize returns the variant producing n byte digests.
func VariantForSize(n int) (Variant, bool) {
	for _, v := range Variants {
		if v.Size() == n {
			return v, true
		}
	}
	return 0, false
}

