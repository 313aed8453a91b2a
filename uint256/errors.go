package uint256

type arithmeticError string

// Sentinel errors returned by the checked operations. Returned errors may wrap
// these with more context; match them with errors.Is.
var (
	ErrOverflow       = arithmeticError("overflow")
	ErrUnderflow      = arithmeticError("underflow")
	ErrDivisionByZero = arithmeticError("division by zero")
	ErrShiftAmount    = arithmeticError("shift amount out of range")
	ErrBitIndex       = arithmeticError("bit index out of range")
	ErrShape          = arithmeticError("wrong buffer length")
)

func (ae arithmeticError) Error() string {
	return string(ae)
}
