// Package estimate provides ready-made size estimators for the transform
// selection in package bcn.
//
// An estimator only has to rank transform candidates, not produce exact
// sizes, so a fast compressor whose matching behavior resembles the final
// one is the usual choice: LZ4 ranks well for any LZ-family target at a
// fraction of the cost, while the zstd estimator at a low level is the
// safe default when the payload will be stored as zstd.
package estimate

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/deepteams/bcn"
)

// zstdEstimator compresses the candidate plane with a shared zstd
// encoder. EncodeAll on a nil-writer encoder is safe for concurrent use.
type zstdEstimator struct {
	enc *zstd.Encoder
}

// Zstd returns an estimator backed by zstd at the given level. Use a
// lower level than the final compression for speed; the ranking rarely
// changes.
func Zstd(level zstd.EncoderLevel) (bcn.Estimator, error) {
	enc, err := zstd.NewWriter(nil,
		zstd.WithEncoderLevel(level),
		zstd.WithEncoderCRC(false),
	)
	if err != nil {
		return nil, fmt.Errorf("estimate: creating zstd encoder: %w", err)
	}
	return &zstdEstimator{enc: enc}, nil
}

func (e *zstdEstimator) MaxCompressedSize(uncompressedLen int) (int, error) {
	return e.enc.MaxEncodedSize(uncompressedLen), nil
}

func (e *zstdEstimator) EstimateCompressedSize(input []byte, _ bcn.DataType, scratch []byte) (int, error) {
	return len(e.enc.EncodeAll(input, scratch[:0])), nil
}

// lz4Estimator uses LZ4 block compression. It is the fastest backend and
// a good ranking proxy for any LZ-family target.
type lz4Estimator struct {
	mu sync.Mutex
	c  lz4.Compressor
}

// LZ4 returns an estimator backed by LZ4 block compression.
func LZ4() bcn.Estimator {
	return &lz4Estimator{}
}

func (e *lz4Estimator) MaxCompressedSize(uncompressedLen int) (int, error) {
	return lz4.CompressBlockBound(uncompressedLen), nil
}

func (e *lz4Estimator) EstimateCompressedSize(input []byte, _ bcn.DataType, scratch []byte) (int, error) {
	e.mu.Lock()
	n, err := e.c.CompressBlock(input, scratch)
	e.mu.Unlock()
	if err != nil {
		return 0, fmt.Errorf("estimate: lz4: %w", err)
	}
	if n == 0 {
		// Incompressible input is stored raw.
		return len(input), nil
	}
	return n, nil
}

// flateEstimator counts DEFLATE output bytes without buffering them, so
// it needs no scratch space.
type flateEstimator struct {
	level int
}

// Flate returns an estimator backed by DEFLATE at the given level
// (flate.BestSpeed..flate.BestCompression).
func Flate(level int) bcn.Estimator {
	return &flateEstimator{level: level}
}

func (e *flateEstimator) MaxCompressedSize(int) (int, error) { return 0, nil }

func (e *flateEstimator) EstimateCompressedSize(input []byte, _ bcn.DataType, _ []byte) (int, error) {
	var cw countingWriter
	w, err := flate.NewWriter(&cw, e.level)
	if err != nil {
		return 0, fmt.Errorf("estimate: flate: %w", err)
	}
	if _, err := w.Write(input); err != nil {
		return 0, fmt.Errorf("estimate: flate: %w", err)
	}
	if err := w.Close(); err != nil {
		return 0, fmt.Errorf("estimate: flate: %w", err)
	}
	return int(cw.n), nil
}

type countingWriter struct {
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	c.n += int64(len(p))
	return len(p), nil
}
