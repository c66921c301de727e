package bcn

import (
	"github.com/deepteams/bcn/internal/bc1"
)

// BC1BlockSize is the size of one BC1 block in bytes.
const BC1BlockSize = 8

// BC1TransformSettings selects the forward transform applied to a BC1
// payload. The same value reverses the transform; record it alongside
// the payload. The zero value is the plain block split.
type BC1TransformSettings struct {
	// Decorrelation is the YCoCg-R packing applied to the color
	// endpoint words.
	Decorrelation YCoCgVariant
	// SplitColourEndpoints separates the color0 and color1 words into
	// their own streams.
	SplitColourEndpoints bool
}

// DataType returns the estimator tag for data transformed with these
// settings.
func (s BC1TransformSettings) DataType() DataType {
	return dataTypeFor(DataTypeBC1Colours, s.Decorrelation, s.SplitColourEndpoints)
}

// BC1AllSettings lists every settings combination, decorrelation variant
// in declaration order within each split value.
func BC1AllSettings() []BC1TransformSettings {
	out := make([]BC1TransformSettings, 0, 8)
	for _, split := range []bool{false, true} {
		for _, v := range YCoCgVariants {
			out = append(out, BC1TransformSettings{Decorrelation: v, SplitColourEndpoints: split})
		}
	}
	return out
}

// TransformBC1 rearranges BC1 blocks into the planar layout selected by
// settings: [colors | indices], with the colors half optionally split
// into color0/color1 streams and optionally decorrelated. dst must be a
// separate buffer of the same length as src; len(src) must be a multiple
// of BC1BlockSize.
func TransformBC1(dst, src []byte, settings BC1TransformSettings) error {
	if err := checkTransformArgs(dst, src, BC1BlockSize); err != nil {
		return err
	}
	bc1.Transform(dst, src, settings.Decorrelation.variant(), settings.SplitColourEndpoints)
	return nil
}

// UntransformBC1 reverses TransformBC1. settings must match the values
// used for the forward transform.
func UntransformBC1(dst, src []byte, settings BC1TransformSettings) error {
	if err := checkTransformArgs(dst, src, BC1BlockSize); err != nil {
		return err
	}
	bc1.Untransform(dst, src, settings.Decorrelation.variant(), settings.SplitColourEndpoints)
	return nil
}

// NormalizeBC1 rewrites visually-equivalent BC1 blocks to canonical
// bytes: fully transparent blocks become eight 0xFF bytes, solid blocks
// whose color survives the RGB565 roundtrip take the form selected by
// mode, and everything else passes through verbatim. dst may be exactly
// src for in-place operation.
func NormalizeBC1(dst, src []byte, mode ColorNormalization) error {
	if err := checkNormalizeArgs(dst, src, BC1BlockSize); err != nil {
		return err
	}
	bc1.Normalize(dst, src, bc1.NormalizeMode(mode))
	return nil
}

// NormalizeBC1AllModes writes every normalization mode's output in one
// pass over src, decoding each block once. dsts is indexed by
// ColorNormalization value; each output must be len(src) bytes.
func NormalizeBC1AllModes(dsts *[NumColorNormalizations][]byte, src []byte) error {
	if len(src)%BC1BlockSize != 0 {
		return ErrInvalidLength
	}
	for i := range dsts {
		if len(dsts[i]) != len(src) {
			return ErrSizeMismatch
		}
	}
	var inner [bc1.NumNormalizeModes][]byte
	copy(inner[:], dsts[:])
	bc1.NormalizeAllModes(&inner, src)
	return nil
}

// NormalizeSplitBC1 normalizes blocks already split into a colors plane
// and an indices plane, in place. Both planes hold 4 bytes per block and
// must be the same length.
func NormalizeSplitBC1(colours, indices []byte, mode ColorNormalization) error {
	if len(colours)%4 != 0 {
		return ErrInvalidLength
	}
	if len(indices) != len(colours) {
		return ErrSizeMismatch
	}
	bc1.NormalizeSplit(colours, indices, bc1.NormalizeMode(mode))
	return nil
}

// TransformBC1Auto transforms src under several parameterizations,
// ranks each with the estimator from opts, and leaves dst holding the
// cheapest one's output. The returned settings reproduce dst via
// TransformBC1 and reverse it via UntransformBC1.
func TransformBC1Auto(dst, src []byte, opts EstimateOptions) (BC1TransformSettings, error) {
	if err := checkTransformArgs(dst, src, BC1BlockSize); err != nil {
		return BC1TransformSettings{}, err
	}
	c, err := searchBest(dst, src, opts, BC1BlockSize, DataTypeBC1Colours,
		func(dst, src []byte, v YCoCgVariant, split bool) {
			bc1.Transform(dst, src, v.variant(), split)
		})
	if err != nil {
		return BC1TransformSettings{}, err
	}
	return BC1TransformSettings{Decorrelation: c.variant, SplitColourEndpoints: c.split}, nil
}
