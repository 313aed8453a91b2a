package uint256

import (
	"encoding"
	"io"

	"github.com/filecoin-project/go-uint256/types"
	cbg "github.com/whyrusleeping/cbor-gen"
	xerrors "golang.org/x/xerrors"
)

var _ encoding.BinaryMarshaler = Uint256{}
var _ encoding.BinaryUnmarshaler = (*Uint256)(nil)

// MarshalBinary encodes x as its 32-byte big-endian buffer
func (x Uint256) MarshalBinary() ([]byte, error) {
	b := x.BigEndianBytes()
	return b[:], nil
}

// UnmarshalBinary decodes a 32-byte big-endian buffer, anything shorter or longer is rejected
func (x *Uint256) UnmarshalBinary(data []byte) error {
	if len(data) != types.BytesInUint256 {
		return xerrors.Errorf("unmarshaling %d bytes, expected %d: %w", len(data), types.BytesInUint256, ErrShape)
	}
	var b [types.BytesInUint256]byte
	copy(b[:], data)
	*x = FromBigEndian(b)
	return nil
}

var _ cbg.CBORUnmarshaler = (*Uint256)(nil)
var _ cbg.CBORMarshaler = (*Uint256)(nil)

// MarshalCBOR writes x as a CBOR byte string holding the big-endian buffer
func (x *Uint256) MarshalCBOR(w io.Writer) error {
	if x == nil {
		_, err := w.Write(cbg.CborNull)
		return err
	}
	b := x.BigEndianBytes()
	return cbg.WriteByteArray(w, b[:])
}

func (x *Uint256) UnmarshalCBOR(r io.Reader) error {
	*x = Uint256{}

	nb, err := cbg.ReadByteArray(r, types.BytesInUint256)
	if err != nil {
		return xerrors.Errorf("reading cbor bytearray: %w", err)
	}
	return x.UnmarshalBinary(nb)
}
