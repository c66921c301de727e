package bcn

import (
	"fmt"

	"github.com/deepteams/bcn/internal/pool"
)

// candidate is one (decorrelation, split) pair in a search order.
type candidate struct {
	variant YCoCgVariant
	split   bool
}

// Search orders are fixed and derived from win frequencies measured over
// a 2,130-texture BC1 corpus, arranged so the most likely winner is
// tested last: when it wins, the buffer already holds its output and the
// final re-transform is skipped.
var (
	fastOrder = []candidate{
		{YCoCgNone, false},
		{YCoCgNone, true},
		{YCoCgVariant1, false}, // wins 17.9%
		{YCoCgVariant1, true},  // wins 71.1%, tested last
	}
	comprehensiveOrder = []candidate{
		{YCoCgVariant2, false}, // 0.9%
		{YCoCgNone, false},     // 1.0%
		{YCoCgNone, true},      // 1.1%
		{YCoCgVariant3, false}, // 1.9%
		{YCoCgVariant3, true},  // 2.7%
		{YCoCgVariant2, true},  // 3.5%
		{YCoCgVariant1, false}, // 17.9%
		{YCoCgVariant1, true},  // 71.1%, tested last
	}
)

// transformFunc applies one format's forward transform.
type transformFunc func(dst, src []byte, v YCoCgVariant, split bool)

// searchBest brute-forces the candidate transforms, ranking each by the
// estimator, and leaves dst holding the winner's output.
func searchBest(dst, src []byte, opts EstimateOptions, blockSize int, base DataType, apply transformFunc) (candidate, error) {
	if opts.Estimator == nil {
		return candidate{}, ErrNoEstimator
	}

	region := estimateRegion(dst, blockSize, opts.IncludeIndices)
	maxSize, err := opts.Estimator.MaxCompressedSize(len(region))
	if err != nil {
		return candidate{}, fmt.Errorf("bcn: size estimation: %w", err)
	}
	var scratch []byte
	if maxSize > 0 {
		scratch = pool.Get(maxSize)
		defer pool.Put(scratch)
	}

	order := fastOrder
	if opts.UseAllDecorrelationModes {
		order = comprehensiveOrder
	}

	var best, last candidate
	bestSize := -1
	for _, c := range order {
		apply(dst, src, c.variant, c.split)
		last = c

		size, err := opts.Estimator.EstimateCompressedSize(
			region, dataTypeFor(base, c.variant, c.split), scratch)
		if err != nil {
			return candidate{}, fmt.Errorf("bcn: size estimation: %w", err)
		}
		if bestSize < 0 || size < bestSize {
			bestSize = size
			best = c
		}
	}

	// The buffer holds the last tested output; redo the transform only
	// when some earlier candidate won.
	if best != last {
		apply(dst, src, best.variant, best.split)
	}
	return best, nil
}

// estimateRegion returns the slice of the transformed buffer handed to
// the estimator. Without IncludeIndices this is the color-endpoint
// region: the first half for BC1, and [len/2, 3*len/4) for BC2/BC3,
// where the colors plane lands in every parameterization.
func estimateRegion(dst []byte, blockSize int, includeIndices bool) []byte {
	if includeIndices || len(dst) == 0 {
		return dst
	}
	if blockSize == 8 {
		return dst[:len(dst)/2]
	}
	return dst[len(dst)/2 : len(dst)/2+len(dst)/4]
}
