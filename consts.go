package sha2

import (
	"github.com/zeebo/sha2/internal/consts"
	"github.com/zeebo/sha2/internal/utils"
)

// maxBlockLen is the largest block size of any variant.
const maxBlockLen = consts.BlockLen512

// config holds everything that distinguishes one variant from another.
type config[W utils.Word] struct {
	blockLen  int // bytes per block
	size      int // digest length in bytes
	rounds    int
	outWords  int // state words copied to the digest
	lengthLen int // bytes of the trailing bit length
	iv        [8]W
	k         []W // len(k) == rounds
	staging   [6]uint
	compress  [6]uint
}

var sha224Config = &config[uint32]{
	blockLen:  consts.BlockLen256,
	size:      consts.Size224,
	rounds:    consts.Rounds256,
	outWords:  7,
	lengthLen: consts.LengthLen256,
	iv:        consts.IV224,
	k:         consts.K256[:],
	staging:   consts.Staging256,
	compress:  consts.Compress256,
}

var sha256Config = &config[uint32]{
	blockLen:  consts.BlockLen256,
	size:      consts.Size256,
	rounds:    consts.Rounds256,
	outWords:  8,
	lengthLen: consts.LengthLen256,
	iv:        consts.IV256,
	k:         consts.K256[:],
	staging:   consts.Staging256,
	compress:  consts.Compress256,
}

var sha384Config = &config[uint64]{
	blockLen:  consts.BlockLen512,
	size:      consts.Size384,
	rounds:    consts.Rounds512,
	outWords:  6,
	lengthLen: consts.LengthLen512,
	iv:        consts.IV384,
	k:         consts.K512[:],
	staging:   consts.Staging512,
	compress:  consts.Compress512,
}

var sha512Config = &config[uint64]{
	blockLen:  consts.BlockLen512,
	size:      consts.Size512,
	rounds:    consts.Rounds512,
	outWords:  8,
	lengthLen: consts.LengthLen512,
	iv:        consts.IV512,
	k:         consts.K512[:],
	staging:   consts.Staging512,
	compress:  consts.Compress512,
}
