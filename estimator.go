package bcn

// DataType tags the kind of plane handed to an Estimator. Estimators may
// key caches or per-category state on it; this package propagates the tag
// faithfully and never inspects it.
type DataType uint8

const (
	// DataTypeUnknown is the zero value; the search routines never
	// produce it.
	DataTypeUnknown DataType = iota
	DataTypeBC1Colours
	DataTypeBC1SplitColours
	DataTypeBC1DecorrelatedColours
	DataTypeBC1SplitDecorrelatedColours
	DataTypeBC2Colours
	DataTypeBC2SplitColours
	DataTypeBC2DecorrelatedColours
	DataTypeBC2SplitDecorrelatedColours
	DataTypeBC3Colours
	DataTypeBC3SplitColours
	DataTypeBC3DecorrelatedColours
	DataTypeBC3SplitDecorrelatedColours
)

// dataTypeFor maps a settings pair onto the DataType for the format whose
// plain-colours tag is base.
func dataTypeFor(base DataType, v YCoCgVariant, split bool) DataType {
	d := base
	if split {
		d++
	}
	if v != YCoCgNone {
		d += 2
	}
	return d
}

// Estimator approximates the compressed size of a byte sequence under
// some compressor. The search routines use it as a cost oracle to rank
// transform parameterizations; the absolute values never matter, only
// their order.
//
// Implementations must be safe for repeated calls with different inputs.
// The estimate subpackage provides ready-made implementations.
type Estimator interface {
	// MaxCompressedSize returns an upper bound on the scratch space
	// EstimateCompressedSize needs for an input of uncompressedLen
	// bytes. Returning 0 means no scratch buffer is required.
	MaxCompressedSize(uncompressedLen int) (int, error)

	// EstimateCompressedSize returns the estimated compressed size of
	// input. kind tags the plane category for implementations that keep
	// per-category state. scratch has at least MaxCompressedSize(len(input))
	// bytes when that bound is non-zero; its contents are unspecified
	// afterwards.
	EstimateCompressedSize(input []byte, kind DataType, scratch []byte) (int, error)
}

// EstimateOptions configures the TransformAuto entry points.
type EstimateOptions struct {
	// Estimator ranks the candidate transforms. Required. For the best
	// final file size use the same compression algorithm the payload
	// will ultimately be stored with, or a faster level of it.
	Estimator Estimator

	// UseAllDecorrelationModes widens the search from {None, Variant1}
	// to all four YCoCg-R variants. Doubles the work for typically
	// under 0.1% additional savings.
	UseAllDecorrelationModes bool

	// IncludeIndices feeds the whole transformed buffer to the
	// estimator instead of only the color-endpoint region. Index data
	// has entropy near 7 bits/byte and rarely changes the ranking, so
	// the default excludes it, estimating half the buffer for BC1 and a
	// quarter for BC2/BC3.
	IncludeIndices bool
}
