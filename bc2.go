package bcn

import (
	"github.com/deepteams/bcn/internal/bc2"
)

// BC2BlockSize is the size of one BC2 block in bytes.
const BC2BlockSize = 16

// BC2TransformSettings selects the forward transform applied to a BC2
// payload. The zero value is the plain block split.
type BC2TransformSettings struct {
	Decorrelation        YCoCgVariant
	SplitColourEndpoints bool
}

// DataType returns the estimator tag for data transformed with these
// settings.
func (s BC2TransformSettings) DataType() DataType {
	return dataTypeFor(DataTypeBC2Colours, s.Decorrelation, s.SplitColourEndpoints)
}

// BC2AllSettings lists every settings combination.
func BC2AllSettings() []BC2TransformSettings {
	out := make([]BC2TransformSettings, 0, 8)
	for _, split := range []bool{false, true} {
		for _, v := range YCoCgVariants {
			out = append(out, BC2TransformSettings{Decorrelation: v, SplitColourEndpoints: split})
		}
	}
	return out
}

// TransformBC2 rearranges BC2 blocks into the planar layout
// [alpha | colors | indices] selected by settings. dst must be a
// separate buffer of the same length as src; len(src) must be a
// multiple of BC2BlockSize.
func TransformBC2(dst, src []byte, settings BC2TransformSettings) error {
	if err := checkTransformArgs(dst, src, BC2BlockSize); err != nil {
		return err
	}
	bc2.Transform(dst, src, settings.Decorrelation.variant(), settings.SplitColourEndpoints)
	return nil
}

// UntransformBC2 reverses TransformBC2. settings must match the values
// used for the forward transform.
func UntransformBC2(dst, src []byte, settings BC2TransformSettings) error {
	if err := checkTransformArgs(dst, src, BC2BlockSize); err != nil {
		return err
	}
	bc2.Untransform(dst, src, settings.Decorrelation.variant(), settings.SplitColourEndpoints)
	return nil
}

// NormalizeBC2 rewrites the color part of solid-color BC2 blocks to the
// canonical form selected by mode; the explicit alpha bytes always pass
// through verbatim. dst may be exactly src for in-place operation.
func NormalizeBC2(dst, src []byte, mode ColorNormalization) error {
	if err := checkNormalizeArgs(dst, src, BC2BlockSize); err != nil {
		return err
	}
	bc2.Normalize(dst, src, bc2.NormalizeMode(mode))
	return nil
}

// NormalizeBC2AllModes writes every normalization mode's output in one
// pass over src. dsts is indexed by ColorNormalization value.
func NormalizeBC2AllModes(dsts *[NumColorNormalizations][]byte, src []byte) error {
	if len(src)%BC2BlockSize != 0 {
		return ErrInvalidLength
	}
	for i := range dsts {
		if len(dsts[i]) != len(src) {
			return ErrSizeMismatch
		}
	}
	var inner [bc2.NumNormalizeModes][]byte
	copy(inner[:], dsts[:])
	bc2.NormalizeAllModes(&inner, src)
	return nil
}

// TransformBC2Auto transforms src under several parameterizations,
// ranks each with the estimator from opts, and leaves dst holding the
// cheapest one's output.
func TransformBC2Auto(dst, src []byte, opts EstimateOptions) (BC2TransformSettings, error) {
	if err := checkTransformArgs(dst, src, BC2BlockSize); err != nil {
		return BC2TransformSettings{}, err
	}
	c, err := searchBest(dst, src, opts, BC2BlockSize, DataTypeBC2Colours,
		func(dst, src []byte, v YCoCgVariant, split bool) {
			bc2.Transform(dst, src, v.variant(), split)
		})
	if err != nil {
		return BC2TransformSettings{}, err
	}
	return BC2TransformSettings{Decorrelation: c.variant, SplitColourEndpoints: c.split}, nil
}
