package uint256

import (
	"math/bits"

	"github.com/filecoin-project/go-uint256/types"
)

// DivRem returns the quotient and remainder of x/y, or ErrDivisionByZero.
func (x Uint256) DivRem(y Uint256) (q Uint256, r Uint256, err error) {
	if y.IsZero() {
		return Zero, Zero, ErrDivisionByZero
	}
	q, r = divRem(x, y)
	return q, r, nil
}

// Div returns x/y rounded towards zero
func (x Uint256) Div(y Uint256) (Uint256, error) {
	q, _, err := x.DivRem(y)
	return q, err
}

// Rem returns x mod y
func (x Uint256) Rem(y Uint256) (Uint256, error) {
	_, r, err := x.DivRem(y)
	return r, err
}

// divRem requires y != 0
func divRem(x, y Uint256) (q, r Uint256) {
	if x.LessThan(y) {
		return Zero, x
	}

	// n is the number of significant limbs of the divisor
	n := types.LimbsInUint256
	for y.limbs[n-1] == 0 {
		n--
	}

	if n == 1 {
		var rem uint64
		for i := types.LimbsInUint256 - 1; i >= 0; i-- {
			// rem < y[0] always holds, so Div64 cannot panic
			q.limbs[i], rem = bits.Div64(rem, x.limbs[i], y.limbs[0])
		}
		r.limbs[0] = rem
		return q, r
	}

	// Normalize so that the top limb of the divisor has its high bit set.
	// Shifting a uint64 by 64 yields 0, which covers shift == 0.
	shift := uint(bits.LeadingZeros64(y.limbs[n-1]))
	var vn [types.LimbsInUint256]uint64
	for i := n - 1; i > 0; i-- {
		vn[i] = y.limbs[i]<<shift | y.limbs[i-1]>>(64-shift)
	}
	vn[0] = y.limbs[0] << shift

	var un [types.LimbsInUint256 + 1]uint64
	un[types.LimbsInUint256] = x.limbs[types.LimbsInUint256-1] >> (64 - shift)
	for i := types.LimbsInUint256 - 1; i > 0; i-- {
		un[i] = x.limbs[i]<<shift | x.limbs[i-1]>>(64-shift)
	}
	un[0] = x.limbs[0] << shift

	q = knuthD(un[:], vn[:n])

	for i := 0; i < n-1; i++ {
		r.limbs[i] = un[i]>>shift | un[i+1]<<(64-shift)
	}
	r.limbs[n-1] = un[n-1] >> shift
	return q, r
}

// knuthD divides the normalized u by the normalized d following Knuth,
// TAOCP Vol. 2, 4.3.1, Algorithm D. len(d) >= 2 and len(u) > len(d).
// The remainder is left in the low len(d) limbs of u.
func knuthD(u, d []uint64) Uint256 {
	var q Uint256
	n := len(d)
	dh, dl := d[n-1], d[n-2]

	for j := len(u) - n - 1; j >= 0; j-- {
		u2, u1, u0 := u[j+n], u[j+n-1], u[j+n-2]

		var qhat, rhat uint64
		rhatOverflow := false
		if u2 >= dh {
			qhat = ^uint64(0)
			// rhat = u2*b + u1 - qhat*dh = u1 + dh when u2 == dh
			var c uint64
			rhat, c = bits.Add64(u1, dh, 0)
			rhatOverflow = c != 0
		} else {
			qhat, rhat = bits.Div64(u2, u1, dh)
		}

		// Refine qhat so that it is at most one too large
		for !rhatOverflow {
			ph, pl := bits.Mul64(qhat, dl)
			if ph < rhat || (ph == rhat && pl <= u0) {
				break
			}
			qhat--
			var c uint64
			rhat, c = bits.Add64(rhat, dh, 0)
			rhatOverflow = c != 0
		}

		borrow := subMulTo(u[j:j+n], d, qhat)
		u[j+n] = u2 - borrow
		if u2 < borrow {
			// Subtracted one multiple too many, add it back
			qhat--
			u[j+n] += addTo(u[j:j+n], d)
		}
		q.limbs[j] = qhat
	}
	return q
}

// subMulTo computes x -= y * multiplier and returns the borrow out of x.
// len(x) == len(y)
func subMulTo(x, y []uint64, multiplier uint64) uint64 {
	var borrow uint64
	for i := 0; i < len(y); i++ {
		s, c1 := bits.Sub64(x[i], borrow, 0)
		ph, pl := bits.Mul64(y[i], multiplier)
		t, c2 := bits.Sub64(s, pl, 0)
		x[i] = t
		borrow = ph + c1 + c2
	}
	return borrow
}

// addTo computes x += y and returns the carry out of x.
// len(x) == len(y)
func addTo(x, y []uint64) uint64 {
	var carry uint64
	for i := 0; i < len(y); i++ {
		x[i], carry = bits.Add64(x[i], y[i], carry)
	}
	return carry
}
