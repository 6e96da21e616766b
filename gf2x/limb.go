package gf2x

import "math/bits"

// wordBits is the width of a single limb.
const wordBits = 64

// bitLen returns the one-based index of the top set bit across limbs,
// or 0 if every limb is zero. limbs need not be canonical.
func bitLen(limbs []uint64) int {
	for i := len(limbs) - 1; i >= 0; i-- {
		if limbs[i] != 0 {
			return i*wordBits + bits.Len64(limbs[i])
		}
	}
	return 0
}

// normalize trims high-order zero limbs so the result is canonical:
// the top limb (if any) is nonzero. It may return the input slice
// re-sliced, or nil for the zero polynomial.
func normalize(limbs []uint64) []uint64 {
	n := len(limbs)
	for n > 0 && limbs[n-1] == 0 {
		n--
	}
	if n == 0 {
		return nil
	}
	return limbs[:n]
}

// wordsFor returns the number of limbs needed to hold nBits bits.
func wordsFor(nBits int) int {
	if nBits <= 0 {
		return 0
	}
	return (nBits + wordBits - 1) / wordBits
}

// shiftLeftLimbs returns a fresh, canonical slice representing a * x^k.
func shiftLeftLimbs(a []uint64, k int) []uint64 {
	if k < 0 {
		panic("gf2x: negative shift")
	}
	if len(a) == 0 || k == 0 {
		out := make([]uint64, len(a))
		copy(out, a)
		return normalize(out)
	}
	limbShift := k / wordBits
	bitShift := k % wordBits
	out := make([]uint64, len(a)+limbShift+1)
	if bitShift == 0 {
		copy(out[limbShift:], a)
	} else {
		var carry uint64
		for i, w := range a {
			out[limbShift+i] = (w << bitShift) | carry
			carry = w >> (wordBits - bitShift)
		}
		out[limbShift+len(a)] = carry
	}
	return normalize(out)
}

// shiftRightLimbs returns a fresh, canonical slice representing a / x^k
// (i.e. a >> k, discarding the low k bits).
func shiftRightLimbs(a []uint64, k int) []uint64 {
	if k < 0 {
		panic("gf2x: negative shift")
	}
	if len(a) == 0 || k == 0 {
		out := make([]uint64, len(a))
		copy(out, a)
		return normalize(out)
	}
	limbShift := k / wordBits
	bitShift := k % wordBits
	if limbShift >= len(a) {
		return nil
	}
	src := a[limbShift:]
	out := make([]uint64, len(src))
	if bitShift == 0 {
		copy(out, src)
	} else {
		for i := range src {
			lo := src[i] >> bitShift
			var hi uint64
			if i+1 < len(src) {
				hi = src[i+1] << (wordBits - bitShift)
			}
			out[i] = lo | hi
		}
	}
	return normalize(out)
}

// xorShiftedInPlace computes dst ^= (src << k). dst must already have
// enough limbs to hold the result (len(dst) >= wordsFor(bitLen(src)+k)).
func xorShiftedInPlace(dst []uint64, src []uint64, k int) {
	if len(src) == 0 {
		return
	}
	shifted := shiftLeftLimbs(src, k)
	for i, w := range shifted {
		dst[i] ^= w
	}
}

// extractWindow returns the canonical slice for bits [loBit, loBit+width)
// of a, i.e. (a >> loBit) masked to width bits.
func extractWindow(a []uint64, loBit, width int) []uint64 {
	if width <= 0 {
		return nil
	}
	shifted := shiftRightLimbs(a, loBit)
	nWords := wordsFor(width)
	if nWords > len(shifted) {
		return normalize(shifted)
	}
	out := make([]uint64, nWords)
	copy(out, shifted[:nWords])
	if rem := width % wordBits; rem != 0 {
		out[nWords-1] &= (uint64(1) << rem) - 1
	}
	return normalize(out)
}

// cloneLimbs returns a fresh copy sized exactly to n words (truncating
// or zero-extending a as needed), without normalizing.
func cloneLimbs(a []uint64, n int) []uint64 {
	out := make([]uint64, n)
	copy(out, a)
	return out
}
