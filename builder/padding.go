package builder

import (
	"fmt"

	"github.com/filecoin-project/go-uint256/types"
	"golang.org/x/xerrors"
)

// PaddingSide names where absent bytes go when a partial buffer is widened to 32 bytes
type PaddingSide uint8

const (
	// Left inserts the fill before the supplied bytes, which end up at the end of the buffer
	Left PaddingSide = iota + 1
	// Right appends the fill after the supplied bytes, which stay at the start of the buffer
	Right
)

func (s PaddingSide) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	case 0:
		return "unset"
	default:
		return "unknown"
	}
}

// PaddingPolicy declares both the side and the value of absent bytes
type PaddingPolicy struct {
	Side PaddingSide
	Fill byte
}

func PadLeft(fill byte) PaddingPolicy {
	return PaddingPolicy{Side: Left, Fill: fill}
}

func PadRight(fill byte) PaddingPolicy {
	return PaddingPolicy{Side: Right, Fill: fill}
}

func (p PaddingPolicy) String() string {
	return fmt.Sprintf("%s(0x%02x)", p.Side, p.Fill)
}

// Pad widens data to 32 bytes according to the policy. The bytes of data keep their order.
func (p PaddingPolicy) Pad(data []byte) ([types.BytesInUint256]byte, error) {
	var padded [types.BytesInUint256]byte
	if len(data) > types.BytesInUint256 {
		return padded, xerrors.Errorf("cannot pad %d bytes into %d: %w", len(data), types.BytesInUint256, ErrShape)
	}
	for i := range padded {
		padded[i] = p.Fill
	}
	switch p.Side {
	case Left:
		copy(padded[types.BytesInUint256-len(data):], data)
	case Right:
		copy(padded[:len(data)], data)
	default:
		return padded, xerrors.Errorf("padding side %s: %w", p.Side, ErrConfiguration)
	}
	return padded, nil
}
