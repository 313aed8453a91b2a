package util

import "github.com/filecoin-project/go-uint256/types"

// Reverse32 returns a copy of b with the byte order reversed
func Reverse32(b [types.BytesInUint256]byte) [types.BytesInUint256]byte {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return b
}
