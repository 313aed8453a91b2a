package types

const BitsInUint256 = 256
const BytesInUint256 = 32

// BitsInLimb is the width of a single machine word of a Uint256
const BitsInLimb = 64
const LimbsInUint256 = BitsInUint256 / BitsInLimb

// Endianness is the byte order of a buffer handed to or requested from a Uint256.
// The zero value is not a valid byte order.
type Endianness uint8

const (
	BigEndian Endianness = iota + 1
	LittleEndian
)

// Valid reports whether e names a byte order
func (e Endianness) Valid() bool {
	return e == BigEndian || e == LittleEndian
}

func (e Endianness) String() string {
	switch e {
	case BigEndian:
		return "big"
	case LittleEndian:
		return "little"
	case 0:
		return "unset"
	default:
		return "unknown"
	}
}
