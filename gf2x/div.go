package gf2x

// DivMod returns the Euclidean quotient and remainder of u divided by
// d: u == Mul(q,d) XOR r, with BitLen(r) < BitLen(d). It handles the
// degenerate cases (d=1, u=0, BitLen(u)<BitLen(d), BitLen(u)==BitLen(d))
// directly, then drives a reciprocal-based long division that consumes
// ne bits of quotient per iteration, where ne = min(BitLen(u)-BitLen(d)+2, BitLen(d)).
func DivMod(u, d BigPoly) (q, r BigPoly, err error) {
	if d.IsZero() {
		return BigPoly{}, BigPoly{}, newErr("DivMod", KindZeroDivision, "divisor is zero")
	}
	if err := validateOperand("DivMod", u); err != nil {
		return BigPoly{}, BigPoly{}, err
	}
	if err := validateOperand("DivMod", d); err != nil {
		return BigPoly{}, BigPoly{}, err
	}

	nd := d.BitLen()
	nu := u.BitLen()

	if nu == 0 {
		return BigPoly{}, BigPoly{}, nil
	}
	if nd == 1 {
		return u, BigPoly{}, nil
	}
	if nu < nd {
		return BigPoly{}, u, nil
	}
	if nu == nd {
		return FromUint64(1), u.Xor(d), nil
	}

	// nu > nd > 1 from here on.
	nq := nu - nd + 1
	ne := min(nq+1, nd)

	e, err := Inv(d, ne)
	if err != nil {
		return BigPoly{}, BigPoly{}, err
	}

	nr := nu
	rr := u
	qq := BigPoly{}

	for nr >= nd+ne {
		top := shiftRightRaw(rr, nr-ne)
		dq := shiftRightRaw(mulRaw(top, e), ne-1)
		nqi := nr - nd - (ne - 1)
		qq = qq.Xor(shiftLeftRaw(dq, nqi))
		rr = rr.Xor(shiftLeftRaw(mulRaw(dq, d), nqi))
		nr -= ne
	}

	m := nr - nd + 1
	top := shiftRightRaw(rr, nr-m)
	eTop := shiftRightRaw(e, ne-m)
	dq := shiftRightRaw(mulRaw(top, eTop), m-1)
	qq = qq.Xor(dq)
	rr = rr.Xor(mulRaw(dq, d))

	return qq, rr, nil
}
