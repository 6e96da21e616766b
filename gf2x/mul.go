package gf2x

// karatsubaThresholdLimbs is the limb count at or below which Mul
// dispatches straight to the schoolbook base case instead of
// recursing. Correctness does not depend on this value — only speed
// does — and mul_test.go sweeps it across several values to prove it,
// which is why it is a var rather than a const.
var karatsubaThresholdLimbs = 4

// validateOperand rejects a BigPoly whose bit length already exceeds
// the current MAX_BITS. Inputs are never negative — there is no
// negative BigPoly representable — so this is the only entry-time
// value check multiplication-family operations need.
func validateOperand(op string, p BigPoly) error {
	if n := p.BitLen(); n > GetMaxBits() {
		return newErr(op, KindValue, "operand bit length %d exceeds MAX_BITS=%d", n, GetMaxBits())
	}
	return nil
}

// Mul returns the carry-less product of a and b: a BigPoly of bit
// length BitLen(a)+BitLen(b)-1, or the zero polynomial if either
// input is zero. Mul is commutative.
func Mul(a, b BigPoly) (BigPoly, error) {
	if err := validateOperand("Mul", a); err != nil {
		return BigPoly{}, err
	}
	if err := validateOperand("Mul", b); err != nil {
		return BigPoly{}, err
	}
	if a.IsZero() || b.IsZero() {
		return BigPoly{}, nil
	}
	resultBits := a.BitLen() + b.BitLen() - 1
	if err := checkBitLen("Mul", resultBits); err != nil {
		return BigPoly{}, err
	}
	return fromLimbs(mulLimbsKaratsuba(a.limbs, b.limbs)), nil
}

// mulLimbsSchoolbook multiplies every limb of a against every limb of
// b via clmulWord and XOR-accumulates the (limb-aligned) 128-bit
// partial products. It is the recursion's base case.
func mulLimbsSchoolbook(a, b []uint64) []uint64 {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	out := make([]uint64, len(a)+len(b))
	for i, aw := range a {
		if aw == 0 {
			continue
		}
		for j, bw := range b {
			if bw == 0 {
				continue
			}
			hi, lo := clmulWord(aw, bw)
			out[i+j] ^= lo
			out[i+j+1] ^= hi
		}
	}
	return normalize(out)
}

// mulLimbsKaratsuba implements the GF(2) Karatsuba identity:
//
//	a = a_hi*x^(64*half) + a_lo,  b = b_hi*x^(64*half) + b_lo
//	P0 = a_lo*b_lo
//	P2 = a_hi*b_hi
//	P1 = (a_lo^a_hi)*(b_lo^b_hi) ^ P0 ^ P2
//	a*b = P2<<(128*half) ^ P1<<(64*half) ^ P0
//
// The usual Karatsuba subtraction of P0 and P2 from the cross term
// becomes XOR here, since GF(2) addition and subtraction coincide.
func mulLimbsKaratsuba(a, b []uint64) []uint64 {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	if len(a) <= karatsubaThresholdLimbs || len(b) <= karatsubaThresholdLimbs {
		return mulLimbsSchoolbook(a, b)
	}

	half := (max(len(a), len(b)) + 1) / 2
	aLo, aHi := splitLimbsAt(a, half)
	bLo, bHi := splitLimbsAt(b, half)

	p0 := mulLimbsKaratsuba(aLo, bLo)
	p2 := mulLimbsKaratsuba(aHi, bHi)
	aSum := xorLimbs(aLo, aHi)
	bSum := xorLimbs(bLo, bHi)
	p1 := xorLimbs(mulLimbsKaratsuba(aSum, bSum), p0)
	p1 = xorLimbs(p1, p2)

	outLen := len(p0)
	if need := half + len(p1); need > outLen {
		outLen = need
	}
	if need := 2*half + len(p2); need > outLen {
		outLen = need
	}
	out := make([]uint64, outLen)
	copy(out, p0)
	for i, w := range p1 {
		out[half+i] ^= w
	}
	for i, w := range p2 {
		out[2*half+i] ^= w
	}
	return normalize(out)
}

// splitLimbsAt splits a into its low `half` limbs and the remainder.
func splitLimbsAt(a []uint64, half int) (lo, hi []uint64) {
	if half >= len(a) {
		return a, nil
	}
	return a[:half], a[half:]
}

// xorLimbs returns a fresh, un-normalized limb-wise XOR of a and b.
func xorLimbs(a, b []uint64) []uint64 {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make([]uint64, n)
	copy(out, a)
	for i, w := range b {
		out[i] ^= w
	}
	return out
}
