package utils

import (
	"encoding/binary"
	"unsafe"

	"github.com/zeebo/sha2/internal/consts"
)

// Word is the set of state word types used by the SHA-2 variants.
type Word interface {
	~uint32 | ~uint64
}

// Width returns the size in bytes of W.
func Width[W Word]() int {
	var w W
	return int(unsafe.Sizeof(w))
}

// Load decodes a big-endian word from the first Width[W]() bytes of b.
func Load[W Word](b []byte) W {
	if Width[W]() == 4 {
		return W(binary.BigEndian.Uint32(b))
	}
	return W(binary.BigEndian.Uint64(b))
}

// Store encodes v big-endian into the first Width[W]() bytes of b.
func Store[W Word](b []byte, v W) {
	if Width[W]() == 4 {
		binary.BigEndian.PutUint32(b, uint32(v))
		return
	}
	binary.BigEndian.PutUint64(b, uint64(v))
}

// BytesToWords decodes the first len(words) big-endian words of block.
func BytesToWords[W Word](block []byte, words *[16]W) {
	if consts.IsBigEndian && len(block) >= 16*Width[W]() &&
		uintptr(unsafe.Pointer(&block[0]))%unsafe.Alignof(words[0]) == 0 {
		*words = *(*[16]W)(unsafe.Pointer(&block[0]))
		return
	}
	bytesToWordsGeneric(block, words)
}

func bytesToWordsGeneric[W Word](block []byte, words *[16]W) {
	n := Width[W]()
	for i := range words {
		words[i] = Load[W](block[i*n:])
	}
}

// WordsToBytes encodes words big-endian into out, which must hold
// len(words)*Width[W]() bytes.
func WordsToBytes[W Word](words []W, out []byte) {
	n := Width[W]()
	for i, w := range words {
		Store(out[i*n:], w)
	}
}
