package consts

import (
	"math/big"
	"testing"

	"github.com/zeebo/assert"
)

func primes(n int) (out []int64) {
	for c := int64(2); len(out) < n; c++ {
		if big.NewInt(c).ProbablyPrime(0) {
			out = append(out, c)
		}
	}
	return out
}

// frac64 returns the first 64 bits of the fractional part of root, where
// root is floor(x * 2^64) for the irrational x.
func frac64(root *big.Int) uint64 {
	mask := new(big.Int).Lsh(big.NewInt(1), 64)
	mask.Sub(mask, big.NewInt(1))
	return new(big.Int).And(root, mask).Uint64()
}

func icbrt(n *big.Int) *big.Int {
	x := new(big.Int).Lsh(big.NewInt(1), uint((n.BitLen()+2)/3+1))
	for {
		// y = (2x + n/x^2) / 3
		y := new(big.Int).Mul(x, x)
		y.Quo(n, y)
		y.Add(y, new(big.Int).Lsh(x, 1))
		y.Quo(y, big.NewInt(3))
		if y.Cmp(x) >= 0 {
			return x
		}
		x = y
	}
}

func cubeRootFrac(p int64) uint64 {
	n := new(big.Int).Lsh(big.NewInt(p), 192)
	return frac64(icbrt(n))
}

func squareRootFrac(p int64) uint64 {
	n := new(big.Int).Lsh(big.NewInt(p), 128)
	return frac64(new(big.Int).Sqrt(n))
}

func TestRoundConstants(t *testing.T) {
	for i, p := range primes(Rounds512) {
		k := cubeRootFrac(p)
		assert.Equal(t, K512[i], k)
		if i < Rounds256 {
			assert.Equal(t, K256[i], uint32(k>>32))
		}
	}
}

func TestInitialValues(t *testing.T) {
	ps := primes(16)
	for i := 0; i < 8; i++ {
		lo, hi := squareRootFrac(ps[i]), squareRootFrac(ps[i+8])

		assert.Equal(t, IV512[i], lo)
		assert.Equal(t, IV256[i], uint32(lo>>32))
		assert.Equal(t, IV384[i], hi)
		assert.Equal(t, IV224[i], uint32(hi))
	}
}

func TestRotations(t *testing.T) {
	for _, r := range Staging256 {
		assert.That(t, r > 0 && r < 32)
	}
	for _, r := range Compress256 {
		assert.That(t, r > 0 && r < 32)
	}
	for _, r := range Staging512 {
		assert.That(t, r > 0 && r < 64)
	}
	for _, r := range Compress512 {
		assert.That(t, r > 0 && r < 64)
	}
}
