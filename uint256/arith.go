package uint256

import (
	"math/bits"

	"github.com/filecoin-project/go-uint256/types"
)

// AddOverflow returns x+y mod 2^256 and whether the true sum exceeded 256 bits
func (x Uint256) AddOverflow(y Uint256) (Uint256, bool) {
	var z Uint256
	var carry uint64
	for i := 0; i < types.LimbsInUint256; i++ {
		z.limbs[i], carry = bits.Add64(x.limbs[i], y.limbs[i], carry)
	}
	return z, carry != 0
}

// Add returns x+y mod 2^256
func (x Uint256) Add(y Uint256) Uint256 {
	z, _ := x.AddOverflow(y)
	return z
}

// AddChecked returns x+y or ErrOverflow if the sum does not fit in 256 bits
func (x Uint256) AddChecked(y Uint256) (Uint256, error) {
	z, overflow := x.AddOverflow(y)
	if overflow {
		return Zero, ErrOverflow
	}
	return z, nil
}

// SubUnderflow returns x-y mod 2^256 and whether y was larger than x
func (x Uint256) SubUnderflow(y Uint256) (Uint256, bool) {
	var z Uint256
	var borrow uint64
	for i := 0; i < types.LimbsInUint256; i++ {
		z.limbs[i], borrow = bits.Sub64(x.limbs[i], y.limbs[i], borrow)
	}
	return z, borrow != 0
}

// Sub returns x-y mod 2^256
func (x Uint256) Sub(y Uint256) Uint256 {
	z, _ := x.SubUnderflow(y)
	return z
}

// SubChecked returns x-y or ErrUnderflow if y > x
func (x Uint256) SubChecked(y Uint256) (Uint256, error) {
	z, underflow := x.SubUnderflow(y)
	if underflow {
		return Zero, ErrUnderflow
	}
	return z, nil
}

// mulFull computes the complete 512-bit product, least significant limb first
func mulFull(x, y Uint256) [2 * types.LimbsInUint256]uint64 {
	var p [2 * types.LimbsInUint256]uint64
	for i := 0; i < types.LimbsInUint256; i++ {
		if x.limbs[i] == 0 {
			continue
		}
		var carry uint64
		for j := 0; j < types.LimbsInUint256; j++ {
			// x[i]*y[j] + p[i+j] + carry < 2^128, so hi never overflows
			hi, lo := bits.Mul64(x.limbs[i], y.limbs[j])
			var c uint64
			lo, c = bits.Add64(lo, p[i+j], 0)
			hi += c
			lo, c = bits.Add64(lo, carry, 0)
			hi += c
			p[i+j] = lo
			carry = hi
		}
		p[i+types.LimbsInUint256] = carry
	}
	return p
}

// MulOverflow returns x*y mod 2^256 and whether the true product exceeded 256 bits
func (x Uint256) MulOverflow(y Uint256) (Uint256, bool) {
	p := mulFull(x, y)
	var z Uint256
	copy(z.limbs[:], p[:types.LimbsInUint256])
	high := p[4] | p[5] | p[6] | p[7]
	return z, high != 0
}

// Mul returns x*y mod 2^256
func (x Uint256) Mul(y Uint256) Uint256 {
	z, _ := x.MulOverflow(y)
	return z
}

// MulChecked returns x*y or ErrOverflow if the product does not fit in 256 bits
func (x Uint256) MulChecked(y Uint256) (Uint256, error) {
	z, overflow := x.MulOverflow(y)
	if overflow {
		return Zero, ErrOverflow
	}
	return z, nil
}
