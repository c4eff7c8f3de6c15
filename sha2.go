package sha2

import (
	"unsafe"

	"github.com/zeebo/sha2/internal/utils"
)

//
// hasher contains state for one sha2 hash
//

type hasher[W utils.Word] struct {
	cfg  *config[W]
	h    [8]W
	n    uint128
	buf  [maxBlockLen / 8]uint64 // word aligned backing for the block
	used int
	done bool
}

func newHasher[W utils.Word](cfg *config[W]) hasher[W] {
	return hasher[W]{cfg: cfg, h: cfg.iv}
}

func (a *hasher[W]) reset() {
	*a = newHasher(a.cfg)
}

func (a *hasher[W]) block() []byte {
	return (*[maxBlockLen]byte)(unsafe.Pointer(&a.buf[0]))[:a.cfg.blockLen]
}

func (a *hasher[W]) update(p []byte) {
	if a.done {
		panic("sha2: write after finalize")
	}

	a.n = a.n.add(uint64(len(p)))
	bl := a.cfg.blockLen

	for len(p) > 0 {
		if a.used == 0 && len(p) >= bl {
			// whole blocks straight from the input
			compress(a.cfg, p[:bl], &a.h)
			p = p[bl:]
			continue
		}

		block := a.block()
		n := copy(block[a.used:], p)
		a.used += n
		p = p[n:]

		if a.used == bl {
			compress(a.cfg, block, &a.h)
			a.used = 0
		}
	}
}

func (a *hasher[W]) finalize() {
	if a.done {
		panic("sha2: finalize called twice")
	}
	a.done = true

	block := a.block()
	block[a.used] = 0x80
	clear(block[a.used+1:])

	if len(block)-a.used < 1+a.cfg.lengthLen {
		compress(a.cfg, block, &a.h)
		clear(block)
	}

	a.n.bits().put(block[len(block)-a.cfg.lengthLen:])
	compress(a.cfg, block, &a.h)
	a.used = 0
}

func (a *hasher[W]) writeResult(out []byte) {
	if len(out) != a.cfg.size {
		panic("sha2: digest buffer has the wrong size")
	}
	utils.WordsToBytes(a.h[:a.cfg.outWords], out)
}

// sum finalizes a copy of a into out, leaving a untouched.
func (a *hasher[W]) sum(out []byte) {
	tmp := *a
	tmp.finalize()
	tmp.writeResult(out)
}
