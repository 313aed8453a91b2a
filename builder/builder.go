// Package builder constructs Uint256 values from raw bytes.
//
// A Builder never assumes a byte order or a padding rule. The caller declares
// the endianness of the input and, for inputs shorter than 32 bytes, how the
// missing bytes are filled:
//
//	v, err := builder.New().
//		WithEndianness(types.BigEndian).
//		WithPadding(builder.PadLeft(0x00)).
//		FromPartialBytes([]byte{0xcd, 0xef}).
//		Build()
//
// Build reports every missing or invalid setting at once. A Builder is good
// for a single Build call and is not safe for concurrent use.
package builder

import (
	"github.com/filecoin-project/go-uint256/types"
	"github.com/filecoin-project/go-uint256/uint256"
	"github.com/filecoin-project/go-uint256/util"
	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"
	"golang.org/x/xerrors"
)

type sourceKind uint8

const (
	noSource sourceKind = iota
	fullSource
	partialSource
)

func (k sourceKind) String() string {
	switch k {
	case fullSource:
		return "full"
	case partialSource:
		return "partial"
	default:
		return "none"
	}
}

type Builder struct {
	endianness types.Endianness
	padding    *PaddingPolicy

	source  sourceKind
	full    [types.BytesInUint256]byte
	partial []byte
	// shapeErr is set when the byte source was rejected on arrival
	shapeErr error

	spent bool
	log   *zap.Logger
}

func New() *Builder {
	return &Builder{log: zap.NewNop()}
}

// WithLogger sets the logger receiving overwrite warnings, nil restores the no-op logger
func (b *Builder) WithLogger(l *zap.Logger) *Builder {
	if l == nil {
		l = zap.NewNop()
	}
	b.log = l
	return b
}

// WithEndianness records the byte order of the input. A second call replaces the first.
func (b *Builder) WithEndianness(e types.Endianness) *Builder {
	if b.endianness != 0 && b.endianness != e {
		b.log.Warn("endianness overwritten",
			zap.Stringer("old", b.endianness), zap.Stringer("new", e))
	}
	b.endianness = e
	return b
}

// WithPadding records how a partial input is widened. It is ignored for full inputs.
func (b *Builder) WithPadding(p PaddingPolicy) *Builder {
	if b.padding != nil && *b.padding != p {
		b.log.Warn("padding policy overwritten",
			zap.Stringer("old", *b.padding), zap.Stringer("new", p))
	}
	b.padding = &p
	return b
}

// FromFullBytes supplies exactly 32 bytes. Any other length is recorded as a
// shape error, visible through Err and returned by Build.
func (b *Builder) FromFullBytes(data []byte) *Builder {
	b.replaceSource(fullSource)
	if len(data) != types.BytesInUint256 {
		b.shapeErr = xerrors.Errorf("full input must be %d bytes, got %d: %w",
			types.BytesInUint256, len(data), ErrShape)
		return b
	}
	copy(b.full[:], data)
	return b
}

// FromArray supplies exactly 32 bytes, the length being checked by the compiler
func (b *Builder) FromArray(data [types.BytesInUint256]byte) *Builder {
	b.replaceSource(fullSource)
	b.full = data
	return b
}

// FromPartialBytes supplies up to 32 bytes, to be widened with the padding policy.
// More than 32 bytes is recorded as a shape error.
func (b *Builder) FromPartialBytes(data []byte) *Builder {
	b.replaceSource(partialSource)
	if len(data) > types.BytesInUint256 {
		b.shapeErr = xerrors.Errorf("partial input must be at most %d bytes, got %d: %w",
			types.BytesInUint256, len(data), ErrShape)
		return b
	}
	b.partial = append(make([]byte, 0, len(data)), data...)
	return b
}

func (b *Builder) replaceSource(kind sourceKind) {
	if b.source != noSource {
		b.log.Warn("byte source overwritten",
			zap.Stringer("old", b.source), zap.Stringer("new", kind))
	}
	b.source = kind
	b.full = [types.BytesInUint256]byte{}
	b.partial = nil
	b.shapeErr = nil
}

// Err returns the shape error of the current byte source, if any
func (b *Builder) Err() error {
	return b.shapeErr
}

// validate lists every setting that keeps the builder from producing a value
func (b *Builder) validate() error {
	var merr *multierror.Error
	if b.shapeErr != nil {
		merr = multierror.Append(merr, b.shapeErr)
	}

	switch {
	case b.endianness == 0:
		merr = multierror.Append(merr, xerrors.Errorf("endianness required: %w", ErrConfiguration))
	case !b.endianness.Valid():
		merr = multierror.Append(merr, xerrors.Errorf("unknown endianness %d: %w", uint8(b.endianness), ErrConfiguration))
	}

	switch b.source {
	case noSource:
		merr = multierror.Append(merr, xerrors.Errorf("bytes required: %w", ErrConfiguration))
	case partialSource:
		switch {
		case b.padding == nil:
			merr = multierror.Append(merr, xerrors.Errorf("padding policy required: %w", ErrConfiguration))
		case b.padding.Side != Left && b.padding.Side != Right:
			merr = multierror.Append(merr, xerrors.Errorf("unknown padding side %d: %w", uint8(b.padding.Side), ErrConfiguration))
		}
	}
	return merr.ErrorOrNil()
}

// Build produces the Uint256 described by the builder. It can be called once;
// later calls fail with ErrBuilderSpent whatever the outcome of the first.
func (b *Builder) Build() (uint256.Uint256, error) {
	if b.spent {
		return uint256.Zero, ErrBuilderSpent
	}
	b.spent = true

	if err := b.validate(); err != nil {
		b.log.Debug("build failed", zap.Error(err))
		return uint256.Zero, err
	}

	buf := b.full
	if b.source == partialSource {
		var err error
		buf, err = b.padding.Pad(b.partial)
		if err != nil {
			return uint256.Zero, xerrors.Errorf("padding partial input: %w", err)
		}
	}

	// canonical order is most significant byte first
	if b.endianness == types.LittleEndian {
		buf = util.Reverse32(buf)
	}

	b.partial = nil
	return uint256.FromBigEndian(buf), nil
}
