package uint256

import (
	"github.com/filecoin-project/go-uint256/types"
	"golang.org/x/xerrors"
)

func (x Uint256) And(y Uint256) Uint256 {
	for i := range x.limbs {
		x.limbs[i] &= y.limbs[i]
	}
	return x
}

func (x Uint256) Or(y Uint256) Uint256 {
	for i := range x.limbs {
		x.limbs[i] |= y.limbs[i]
	}
	return x
}

func (x Uint256) Xor(y Uint256) Uint256 {
	for i := range x.limbs {
		x.limbs[i] ^= y.limbs[i]
	}
	return x
}

// Not returns the bitwise complement of x, that is Max - x
func (x Uint256) Not() Uint256 {
	for i := range x.limbs {
		x.limbs[i] = ^x.limbs[i]
	}
	return x
}

// Lsh returns x << k. Bits shifted past bit 255 are dropped.
// A shift of 256 or more fails with ErrShiftAmount rather than being reduced.
func (x Uint256) Lsh(k uint) (Uint256, error) {
	if k >= types.BitsInUint256 {
		return Zero, xerrors.Errorf("left shift by %d: %w", k, ErrShiftAmount)
	}
	limbShift := int(k / types.BitsInLimb)
	bitShift := k % types.BitsInLimb

	var z Uint256
	for i := types.LimbsInUint256 - 1; i >= limbShift; i-- {
		src := i - limbShift
		z.limbs[i] = x.limbs[src] << bitShift
		if src > 0 {
			// a shift by 64 yields 0 when bitShift is 0
			z.limbs[i] |= x.limbs[src-1] >> (types.BitsInLimb - bitShift)
		}
	}
	return z, nil
}

// Rsh returns x >> k. A shift of 256 or more fails with ErrShiftAmount.
func (x Uint256) Rsh(k uint) (Uint256, error) {
	if k >= types.BitsInUint256 {
		return Zero, xerrors.Errorf("right shift by %d: %w", k, ErrShiftAmount)
	}
	limbShift := int(k / types.BitsInLimb)
	bitShift := k % types.BitsInLimb

	var z Uint256
	for i := 0; i < types.LimbsInUint256-limbShift; i++ {
		src := i + limbShift
		z.limbs[i] = x.limbs[src] >> bitShift
		if src+1 < types.LimbsInUint256 {
			z.limbs[i] |= x.limbs[src+1] << (types.BitsInLimb - bitShift)
		}
	}
	return z, nil
}
