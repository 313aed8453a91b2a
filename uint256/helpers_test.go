package uint256

import (
	"encoding/hex"
	"math/rand"

	"github.com/filecoin-project/go-uint256/types"
)

// fromHex parses 64 hex digits, most significant first
func fromHex(s string) Uint256 {
	raw, err := hex.DecodeString(s)
	if err != nil || len(raw) != types.BytesInUint256 {
		panic("bad test vector " + s)
	}
	var b [types.BytesInUint256]byte
	copy(b[:], raw)
	return FromBigEndian(b)
}

// randUint256 returns values with a random number of significant limbs so that
// every division path gets exercised
func randUint256(r *rand.Rand) Uint256 {
	var z Uint256
	n := r.Intn(types.LimbsInUint256 + 1)
	for i := 0; i < n; i++ {
		switch r.Intn(4) {
		case 0:
			z.limbs[i] = ^uint64(0)
		case 1:
			z.limbs[i] = uint64(r.Intn(16))
		default:
			z.limbs[i] = r.Uint64()
		}
	}
	return z
}

func pad32(b []byte) [types.BytesInUint256]byte {
	var out [types.BytesInUint256]byte
	if len(b) > types.BytesInUint256 {
		b = b[:types.BytesInUint256]
	}
	copy(out[types.BytesInUint256-len(b):], b)
	return out
}
