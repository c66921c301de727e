package bcn

import (
	"errors"

	"github.com/deepteams/bcn/internal/color565"
)

// Errors returned by the transform entry points.
var (
	// ErrInvalidLength means the input length is not a multiple of the
	// format's block size (8 bytes for BC1, 16 for BC2/BC3).
	ErrInvalidLength = errors.New("bcn: input length not a multiple of block size")
	// ErrSizeMismatch means the output buffer length differs from the
	// input buffer length.
	ErrSizeMismatch = errors.New("bcn: output length must equal input length")
	// ErrOverlap means input and output share storage where the
	// operation does not permit it.
	ErrOverlap = errors.New("bcn: input and output buffers overlap")
	// ErrNoEstimator means EstimateOptions carried no Estimator.
	ErrNoEstimator = errors.New("bcn: no estimator provided")
)

// YCoCgVariant selects the reversible YCoCg-R packing applied to RGB565
// color endpoints, or none. The three variants produce different byte
// distributions; Variant1 compresses best on most inputs.
type YCoCgVariant uint8

const (
	// YCoCgNone applies no decorrelation.
	YCoCgNone YCoCgVariant = iota
	// YCoCgVariant1 keeps green's spare bit in its native slot.
	YCoCgVariant1
	// YCoCgVariant2 moves green's spare bit to the MSB.
	YCoCgVariant2
	// YCoCgVariant3 moves green's spare bit to the LSB.
	YCoCgVariant3
)

// YCoCgVariants lists all variants in declaration order.
var YCoCgVariants = [4]YCoCgVariant{YCoCgNone, YCoCgVariant1, YCoCgVariant2, YCoCgVariant3}

func (v YCoCgVariant) String() string { return color565.Variant(v).String() }

func (v YCoCgVariant) variant() color565.Variant { return color565.Variant(v) }

// ColorNormalization selects the canonical form written for solid-color
// blocks by the normalization entry points.
type ColorNormalization uint8

const (
	// ColorNormNone preserves color data verbatim.
	ColorNormNone ColorNormalization = iota
	// ColorNormColor0Only puts the color in Color0 and zeroes Color1 and
	// the indices.
	ColorNormColor0Only
	// ColorNormReplicateColor writes the color to both endpoints and
	// zeroes the indices.
	ColorNormReplicateColor
)

// NumColorNormalizations is the number of ColorNormalization values.
const NumColorNormalizations = 3

// AlphaNormalization selects the canonical form written for uniform-alpha
// BC3 blocks.
type AlphaNormalization uint8

const (
	// AlphaNormNone preserves alpha data verbatim.
	AlphaNormNone AlphaNormalization = iota
	// AlphaNormUniformZeroIndices writes the shared alpha value to A0
	// and zeroes the rest of the alpha part.
	AlphaNormUniformZeroIndices
	// AlphaNormOpaqueFillAll writes eight 0xFF bytes for fully opaque
	// blocks, falling back to AlphaNormUniformZeroIndices otherwise.
	AlphaNormOpaqueFillAll
	// AlphaNormOpaqueZeroMaxIndices writes zero endpoints and all-ones
	// indices for fully opaque blocks, falling back to
	// AlphaNormUniformZeroIndices otherwise.
	AlphaNormOpaqueZeroMaxIndices
)

// NumAlphaNormalizations is the number of AlphaNormalization values.
const NumAlphaNormalizations = 4

// checkTransformArgs validates the common transform preconditions.
// Exact aliasing is rejected; partial overlap cannot be detected portably
// and is documented as undefined.
func checkTransformArgs(dst, src []byte, blockSize int) error {
	if len(src)%blockSize != 0 {
		return ErrInvalidLength
	}
	if len(dst) != len(src) {
		return ErrSizeMismatch
	}
	if len(src) > 0 && &dst[0] == &src[0] {
		return ErrOverlap
	}
	return nil
}

// checkNormalizeArgs validates the normalization preconditions; exact
// aliasing (in-place operation) is permitted.
func checkNormalizeArgs(dst, src []byte, blockSize int) error {
	if len(src)%blockSize != 0 {
		return ErrInvalidLength
	}
	if len(dst) != len(src) {
		return ErrSizeMismatch
	}
	return nil
}
