package sha2

import (
	"github.com/zeebo/sha2/internal/consts"
	"github.com/zeebo/sha2/internal/utils"
)

// schedule is large enough for the longest variant. Shorter variants only
// use the first cfg.rounds entries.
type schedule[W utils.Word] [consts.Rounds512]W

func rotr[W utils.Word](x W, n uint) W {
	s := uint(utils.Width[W]()) * 8
	return x>>n | x<<(s-n)
}

// expand fills w from one block.
func expand[W utils.Word](cfg *config[W], block []byte, w *schedule[W]) {
	utils.BytesToWords(block, (*[16]W)(w[:16]))

	c := &cfg.staging
	for i := 16; i < cfg.rounds; i++ {
		v15, v2 := w[i-15], w[i-2]
		s0 := rotr(v15, c[0]) ^ rotr(v15, c[1]) ^ v15>>c[2]
		s1 := rotr(v2, c[3]) ^ rotr(v2, c[4]) ^ v2>>c[5]
		w[i] = w[i-16] + s0 + w[i-7] + s1
	}
}

// rounds mixes the schedule into state.
func rounds[W utils.Word](cfg *config[W], w *schedule[W], state *[8]W) {
	r, k := &cfg.compress, cfg.k[:cfg.rounds]
	a, b, c, d, e, f, g, h := state[0], state[1], state[2], state[3], state[4], state[5], state[6], state[7]

	for i := range k {
		S1 := rotr(e, r[0]) ^ rotr(e, r[1]) ^ rotr(e, r[2])
		ch := (e & f) ^ (^e & g)
		t1 := h + S1 + ch + k[i] + w[i]

		S0 := rotr(a, r[3]) ^ rotr(a, r[4]) ^ rotr(a, r[5])
		maj := (a & b) ^ (a & c) ^ (b & c)
		t2 := S0 + maj

		h, g, f, e, d, c, b, a = g, f, e, d+t1, c, b, a, t1+t2
	}

	state[0] += a
	state[1] += b
	state[2] += c
	state[3] += d
	state[4] += e
	state[5] += f
	state[6] += g
	state[7] += h
}

// compress runs one block through the schedule and the rounds.
func compress[W utils.Word](cfg *config[W], block []byte, state *[8]W) {
	var w schedule[W]
	expand(cfg, block, &w)
	rounds(cfg, &w, state)
}
