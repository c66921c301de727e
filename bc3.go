package bcn

import (
	"github.com/deepteams/bcn/internal/bc3"
)

// BC3BlockSize is the size of one BC3 block in bytes.
const BC3BlockSize = 16

// BC3TransformSettings selects the forward transform applied to a BC3
// payload. The zero value is the plain block split.
type BC3TransformSettings struct {
	Decorrelation        YCoCgVariant
	SplitColourEndpoints bool
}

// DataType returns the estimator tag for data transformed with these
// settings.
func (s BC3TransformSettings) DataType() DataType {
	return dataTypeFor(DataTypeBC3Colours, s.Decorrelation, s.SplitColourEndpoints)
}

// BC3AllSettings lists every settings combination.
func BC3AllSettings() []BC3TransformSettings {
	out := make([]BC3TransformSettings, 0, 8)
	for _, split := range []bool{false, true} {
		for _, v := range YCoCgVariants {
			out = append(out, BC3TransformSettings{Decorrelation: v, SplitColourEndpoints: split})
		}
	}
	return out
}

// TransformBC3 rearranges BC3 blocks into the planar layout
// [alpha endpoints | alpha indices | colors | indices] selected by
// settings. dst must be a separate buffer of the same length as src;
// len(src) must be a multiple of BC3BlockSize.
func TransformBC3(dst, src []byte, settings BC3TransformSettings) error {
	if err := checkTransformArgs(dst, src, BC3BlockSize); err != nil {
		return err
	}
	bc3.Transform(dst, src, settings.Decorrelation.variant(), settings.SplitColourEndpoints)
	return nil
}

// UntransformBC3 reverses TransformBC3. settings must match the values
// used for the forward transform.
func UntransformBC3(dst, src []byte, settings BC3TransformSettings) error {
	if err := checkTransformArgs(dst, src, BC3BlockSize); err != nil {
		return err
	}
	bc3.Untransform(dst, src, settings.Decorrelation.variant(), settings.SplitColourEndpoints)
	return nil
}

// NormalizeBC3 canonicalizes the alpha and color parts of each BC3 block
// independently: uniform-alpha blocks take the form selected by
// alphaMode, solid-color blocks the form selected by colorMode. dst may
// be exactly src for in-place operation.
func NormalizeBC3(dst, src []byte, alphaMode AlphaNormalization, colorMode ColorNormalization) error {
	if err := checkNormalizeArgs(dst, src, BC3BlockSize); err != nil {
		return err
	}
	bc3.Normalize(dst, src, bc3.AlphaNormalizeMode(alphaMode), bc3.NormalizeMode(colorMode))
	return nil
}

// NormalizeBC3AllModes writes every (alpha, color) normalization pair's
// output in one pass over src. dsts is indexed
// [AlphaNormalization][ColorNormalization].
func NormalizeBC3AllModes(dsts *[NumAlphaNormalizations][NumColorNormalizations][]byte, src []byte) error {
	if len(src)%BC3BlockSize != 0 {
		return ErrInvalidLength
	}
	var inner [bc3.NumAlphaNormalizeModes][bc3.NumNormalizeModes][]byte
	for ai := range dsts {
		for ci := range dsts[ai] {
			if len(dsts[ai][ci]) != len(src) {
				return ErrSizeMismatch
			}
			inner[ai][ci] = dsts[ai][ci]
		}
	}
	bc3.NormalizeAllModes(&inner, src)
	return nil
}

// TransformBC3Auto transforms src under several parameterizations,
// ranks each with the estimator from opts, and leaves dst holding the
// cheapest one's output.
func TransformBC3Auto(dst, src []byte, opts EstimateOptions) (BC3TransformSettings, error) {
	if err := checkTransformArgs(dst, src, BC3BlockSize); err != nil {
		return BC3TransformSettings{}, err
	}
	c, err := searchBest(dst, src, opts, BC3BlockSize, DataTypeBC3Colours,
		func(dst, src []byte, v YCoCgVariant, split bool) {
			bc3.Transform(dst, src, v.variant(), split)
		})
	if err != nil {
		return BC3TransformSettings{}, err
	}
	return BC3TransformSettings{Decorrelation: c.variant, SplitColourEndpoints: c.split}, nil
}
