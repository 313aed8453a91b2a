// Package uint256 implements fixed-width unsigned 256-bit integers.
//
// A Uint256 is a value: every operation returns a new Uint256 and leaves its
// operands untouched, so values can be shared between goroutines freely.
// Arithmetic comes in two flavours. Add, Sub and Mul wrap modulo 2^256, while
// AddChecked, SubChecked and MulChecked report ErrOverflow or ErrUnderflow
// instead of discarding bits. Operations with an invalid operand, such as a
// zero divisor or a shift of 256 bits or more, always return an error.
package uint256

import (
	"encoding/binary"
	"math/bits"

	"github.com/filecoin-project/go-uint256/types"
	"github.com/filecoin-project/go-uint256/util"
	"golang.org/x/exp/constraints"
	"golang.org/x/xerrors"
)

// Uint256 is an unsigned 256-bit integer.
type Uint256 struct {
	// limbs are stored least significant first, the value being
	// limbs[3]*2^192 + limbs[2]*2^128 + limbs[1]*2^64 + limbs[0]
	limbs [types.LimbsInUint256]uint64
}

var (
	Zero = Uint256{}
	One  = Uint256{limbs: [types.LimbsInUint256]uint64{1, 0, 0, 0}}
	Max  = Uint256{limbs: [types.LimbsInUint256]uint64{^uint64(0), ^uint64(0), ^uint64(0), ^uint64(0)}}
)

// FromLimbs builds a Uint256 from its limbs, least significant first
func FromLimbs(limbs [types.LimbsInUint256]uint64) Uint256 {
	return Uint256{limbs: limbs}
}

// FromUint converts any native unsigned integer
func FromUint[T constraints.Unsigned](v T) Uint256 {
	return Uint256{limbs: [types.LimbsInUint256]uint64{uint64(v), 0, 0, 0}}
}

// FromBigEndian interprets b as a big-endian 256-bit number, b[0] being the most significant byte.
func FromBigEndian(b [types.BytesInUint256]byte) Uint256 {
	var z Uint256
	for i := 0; i < types.LimbsInUint256; i++ {
		// limb i is held by bytes [32-8(i+1), 32-8i)
		off := types.BytesInUint256 - 8*(i+1)
		z.limbs[i] = binary.BigEndian.Uint64(b[off : off+8])
	}
	return z
}

// FromLittleEndian interprets b as a little-endian 256-bit number, b[0] being the least significant byte.
func FromLittleEndian(b [types.BytesInUint256]byte) Uint256 {
	return FromBigEndian(util.Reverse32(b))
}

// Limbs returns the limbs of x, least significant first
func (x Uint256) Limbs() [types.LimbsInUint256]uint64 {
	return x.limbs
}

// BigEndianBytes returns x as 32 bytes, most significant byte first
func (x Uint256) BigEndianBytes() [types.BytesInUint256]byte {
	var b [types.BytesInUint256]byte
	for i := 0; i < types.LimbsInUint256; i++ {
		off := types.BytesInUint256 - 8*(i+1)
		binary.BigEndian.PutUint64(b[off:off+8], x.limbs[i])
	}
	return b
}

// LittleEndianBytes returns x as 32 bytes, least significant byte first
func (x Uint256) LittleEndianBytes() [types.BytesInUint256]byte {
	return util.Reverse32(x.BigEndianBytes())
}

// Bytes returns x in the requested byte order. It panics if e is not a valid
// Endianness, there being no byte order it could fall back to.
func (x Uint256) Bytes(e types.Endianness) [types.BytesInUint256]byte {
	switch e {
	case types.BigEndian:
		return x.BigEndianBytes()
	case types.LittleEndian:
		return x.LittleEndianBytes()
	default:
		panic("uint256: invalid endianness " + e.String())
	}
}

// Uint64 returns x as a uint64, failing with ErrOverflow if it does not fit
func (x Uint256) Uint64() (uint64, error) {
	if x.limbs[1]|x.limbs[2]|x.limbs[3] != 0 {
		return 0, xerrors.Errorf("value needs %d bits: %w", x.BitLen(), ErrOverflow)
	}
	return x.limbs[0], nil
}

func (x Uint256) IsZero() bool {
	return x.limbs[0]|x.limbs[1]|x.limbs[2]|x.limbs[3] == 0
}

// BitLen returns the number of bits required to represent x, 0 for zero
func (x Uint256) BitLen() int {
	for i := types.LimbsInUint256 - 1; i >= 0; i-- {
		if x.limbs[i] != 0 {
			return i*types.BitsInLimb + bits.Len64(x.limbs[i])
		}
	}
	return 0
}

// LeadingZeros returns the number of leading zero bits, 256 for zero
func (x Uint256) LeadingZeros() int {
	return types.BitsInUint256 - x.BitLen()
}

// Bit reports whether bit i is set, bit 0 being the least significant
func (x Uint256) Bit(i uint) (bool, error) {
	if i >= types.BitsInUint256 {
		return false, xerrors.Errorf("bit %d: %w", i, ErrBitIndex)
	}
	return x.limbs[i/types.BitsInLimb]&(1<<(i%types.BitsInLimb)) != 0, nil
}

// SetBit returns a copy of x with bit i set
func (x Uint256) SetBit(i uint) (Uint256, error) {
	if i >= types.BitsInUint256 {
		return Zero, xerrors.Errorf("bit %d: %w", i, ErrBitIndex)
	}
	x.limbs[i/types.BitsInLimb] |= 1 << (i % types.BitsInLimb)
	return x, nil
}
