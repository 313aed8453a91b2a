package uint256

import "github.com/filecoin-project/go-uint256/types"

// Cmp compares x and y and returns -1 if x < y, 0 if x == y and +1 if x > y
func (x Uint256) Cmp(y Uint256) int {
	for i := types.LimbsInUint256 - 1; i >= 0; i-- {
		switch {
		case x.limbs[i] < y.limbs[i]:
			return -1
		case x.limbs[i] > y.limbs[i]:
			return 1
		}
	}
	return 0
}

func (x Uint256) Equal(y Uint256) bool {
	return x.limbs == y.limbs
}

func (x Uint256) LessThan(y Uint256) bool {
	return x.Cmp(y) < 0
}

func (x Uint256) LessOrEqual(y Uint256) bool {
	return x.Cmp(y) <= 0
}

func (x Uint256) GreaterThan(y Uint256) bool {
	return x.Cmp(y) > 0
}

func (x Uint256) GreaterOrEqual(y Uint256) bool {
	return x.Cmp(y) >= 0
}
