package gf2x

import (
	"math/big"
	"testing"

	"golang.org/x/exp/rand"
)

// newRNG mirrors the teacher's own test-randomness convention
// (golang.org/x/exp/rand, seeded for reproducibility) rather than
// math/rand, matching the original Python suite's random.seed(...).
func newRNG() *rand.Rand {
	return rand.New(rand.NewSource(1234567890))
}

// randBigPoly returns a uniformly random BigPoly with bit length in
// [loBits, hiBits).
func randBigPoly(t *testing.T, rng *rand.Rand, loBits, hiBits int) BigPoly {
	t.Helper()
	if hiBits <= loBits {
		hiBits = loBits + 1
	}
	nBits := loBits + rng.Intn(hiBits-loBits)
	if nBits <= 0 {
		return BigPoly{}
	}
	nBytes := (nBits + 7) / 8
	buf := make([]byte, nBytes)
	if _, err := rng.Read(buf); err != nil {
		t.Fatalf("rng.Read: %v", err)
	}
	// Force the top bit of the window so the result has exactly
	// nBits bits, then mask off anything above it.
	topByteBits := nBits - (nBytes-1)*8
	buf[0] |= 1 << uint(topByteBits-1)
	if topByteBits < 8 {
		buf[0] &= (1 << uint(topByteBits)) - 1
	}
	return FromBytes(buf)
}

// modelMul is the schoolbook oracle from spec.md §8 and
// original_source/tests/test_pygf2x.py's model_mul: XOR-accumulate
// (b << i) for every set bit i of a.
func modelMul(a, b BigPoly) BigPoly {
	var p BigPoly
	nBits := a.BitLen()
	for i := 0; i < nBits; i++ {
		if bitAt(a, i) {
			p = p.Xor(shiftLeftRaw(b, i))
		}
	}
	return p
}

// modelSqr is model_mul(a, a).
func modelSqr(a BigPoly) BigPoly {
	return modelMul(a, a)
}

func bitAt(p BigPoly, i int) bool {
	limb := i / wordBits
	if limb >= len(p.limbs) {
		return false
	}
	return p.limbs[limb]>>uint(i%wordBits)&1 == 1
}

// toBig converts a BigPoly to a math/big.Int for readable test
// failure messages only; it plays no role in any arithmetic here.
func toBig(p BigPoly) *big.Int {
	return new(big.Int).SetBytes(p.Bytes())
}
