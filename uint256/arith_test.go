package uint256

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddBasic(t *testing.T) {
	a := FromUint(uint64(1_000_000_000))
	b := FromUint(uint64(999_999_999))
	assert.Equal(t, FromUint(uint64(1_999_999_999)), a.Add(b))
	assert.Equal(t, Max, Max.Add(Zero))
	assert.Equal(t, Max, Max.Sub(One).Add(One))
}

func TestAddCarryAcrossLimbs(t *testing.T) {
	x := FromLimbs([4]uint64{^uint64(0), ^uint64(0), ^uint64(0), 0})
	assert.Equal(t, FromLimbs([4]uint64{0, 0, 0, 1}), x.Add(One))
}

func TestAddWrapLaw(t *testing.T) {
	assert.Equal(t, Zero, Max.Add(One))

	_, overflow := Max.AddOverflow(One)
	assert.True(t, overflow)

	_, err := Max.AddChecked(One)
	assert.ErrorIs(t, err, ErrOverflow)

	z, err := Max.Sub(One).AddChecked(One)
	require.NoError(t, err)
	assert.Equal(t, Max, z)
}

func TestSub(t *testing.T) {
	v1 := FromUint(uint64(1_000_000_000))
	v2 := FromUint(uint64(999_999_999))
	assert.Equal(t, One, v1.Sub(v2))
	assert.Equal(t, FromUint(uint64(999_198_998)), v1.Sub(FromUint(uint64(801_002))))

	borrow := FromLimbs([4]uint64{0, 0, 0, 1})
	assert.Equal(t, FromLimbs([4]uint64{^uint64(0), ^uint64(0), ^uint64(0), 0}), borrow.Sub(One))
}

func TestSubUnderflow(t *testing.T) {
	assert.Equal(t, Max, Zero.Sub(One))

	_, err := One.SubChecked(Max)
	assert.ErrorIs(t, err, ErrUnderflow)
	_, err = FromUint(uint64(100_000_000)).SubChecked(FromUint(uint64(150_000_000_000)))
	assert.ErrorIs(t, err, ErrUnderflow)

	z, err := Max.SubChecked(Max)
	require.NoError(t, err)
	assert.True(t, z.IsZero())
}

func TestMulBasic(t *testing.T) {
	a := FromUint(uint64(1_000_000_000))
	b := FromUint(uint64(999_999_999))
	assert.Equal(t, FromUint(uint64(999_999_999_000_000_000)), a.Mul(b))
	assert.Equal(t, a.Mul(b), b.Mul(a))
	assert.Equal(t, a, a.Mul(One))
	assert.Equal(t, Zero, a.Mul(Zero))
}

func TestMulAcrossLimbs(t *testing.T) {
	// (2^64-1)^2 = 2^128 - 2^65 + 1
	x := FromUint(^uint64(0))
	assert.Equal(t, FromLimbs([4]uint64{1, ^uint64(0) - 1, 0, 0}), x.Mul(x))

	// 2^128 * 2^127 = 2^255
	hi := FromLimbs([4]uint64{0, 0, 1, 0})
	mid := FromLimbs([4]uint64{0, 1 << 63, 0, 0})
	z, err := hi.MulChecked(mid)
	require.NoError(t, err)
	assert.Equal(t, FromLimbs([4]uint64{0, 0, 0, 1 << 63}), z)
}

func TestMulOverflow(t *testing.T) {
	two := FromUint(uint8(2))
	assert.Equal(t, Max.Sub(One), Max.Mul(two))

	_, err := Max.MulChecked(two)
	assert.ErrorIs(t, err, ErrOverflow)

	// 2^128 * 2^128 truncates to zero
	hi := FromLimbs([4]uint64{0, 0, 1, 0})
	z, overflow := hi.MulOverflow(hi)
	assert.True(t, overflow)
	assert.True(t, z.IsZero())

	// Max * Max = 1 mod 2^256
	assert.Equal(t, One, Max.Mul(Max))
}

func TestOperandsUnchanged(t *testing.T) {
	a := fromHex("00000000000000000000000000000000000000000000000000000000deadbeef")
	b := fromHex("0000000000000000000000000000000100000000000000000000000000000003")
	aa, bb := a, b
	_ = a.Add(b)
	_ = a.Sub(b)
	_ = a.Mul(b)
	_, _, _ = b.DivRem(a)
	_, _ = a.Lsh(77)
	assert.Equal(t, aa, a)
	assert.Equal(t, bb, b)
}
