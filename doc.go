// Package bcn implements lossless, bit-exactly reversible byte
// rearrangements for BC1, BC2 and BC3 (DXT1/DXT3/DXT5) texture payloads.
//
// BCn-compressed textures compress poorly under general-purpose entropy
// coders because every fixed-size block interleaves fields of different
// statistical character: color endpoints, per-pixel index bitstreams and
// alpha data. This package deinterleaves those fields into contiguous
// planes, optionally splits the color endpoints into separate color0 and
// color1 streams, optionally decorrelates the endpoint words with a
// reversible YCoCg-R transform, and can normalize visually-equivalent
// blocks to a single canonical byte sequence. The transformed payload is
// the same length as the input and the inverse transform reconstructs the
// original bytes exactly.
//
// The package supports:
//   - BC1/BC2/BC3 block split and merge
//   - Color endpoint splitting
//   - Three YCoCg-R decorrelation packings plus identity
//   - Solid-color, transparent and uniform-alpha block normalization
//   - Estimator-driven selection of the best transform parameters
//
// Basic usage:
//
//	settings := bcn.BC1TransformSettings{Decorrelation: bcn.YCoCgVariant1, SplitColourEndpoints: true}
//	err := bcn.TransformBC1(dst, src, settings)
//	...
//	err = bcn.UntransformBC1(restored, dst, settings)
//
// To let an estimator pick the parameters, wire up one of the estimators
// from the estimate subpackage:
//
//	settings, err := bcn.TransformBC1Auto(dst, src, bcn.EstimateOptions{
//		Estimator: estimate.LZ4(),
//	})
//
// The caller records the returned settings next to the payload; the
// package writes no header of its own.
package bcn
