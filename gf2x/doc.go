// Package gf2x implements arbitrary-precision arithmetic over GF(2)[x],
// the ring of polynomials with coefficients in the field with two
// elements. A value is a finite bit string where bit i holds the
// coefficient of x^i; addition and subtraction are XOR; multiplication
// is carry-less.
//
// The field has characteristic 2, so every Karatsuba-style
// decomposition used here drops the usual sign term: a-b and a+b are
// the same operation, XOR.
//
// There is no wire protocol, file format, or CLI in this package. It
// is a pure computational kernel intended for use by coding-theory,
// CRC, and error-correcting-code tooling built on top of it.
package gf2x
