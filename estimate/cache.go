package estimate

import (
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/deepteams/bcn"
)

// cacheKey identifies an estimate by plane category and content hash.
// The DataType component is what lets identical bytes from different
// plane categories keep separate entries if a backend ever reports
// category-dependent sizes.
type cacheKey struct {
	kind bcn.DataType
	sum  uint64
}

// cachedEstimator memoizes another estimator's results. The search
// routines re-estimate identical planes whenever candidate settings
// collapse to the same bytes (e.g. on solid-color inputs), and callers
// that sweep mip levels hit repeats too.
type cachedEstimator struct {
	inner bcn.Estimator
	cap   int

	mu sync.Mutex
	m  map[cacheKey]int
}

// Cached wraps inner with a content-addressed memo of up to capacity
// entries. When full, the memo is reset rather than evicted piecemeal;
// the workloads this serves cycle through small working sets.
func Cached(inner bcn.Estimator, capacity int) bcn.Estimator {
	if capacity <= 0 {
		capacity = 1024
	}
	return &cachedEstimator{
		inner: inner,
		cap:   capacity,
		m:     make(map[cacheKey]int),
	}
}

func (e *cachedEstimator) MaxCompressedSize(uncompressedLen int) (int, error) {
	return e.inner.MaxCompressedSize(uncompressedLen)
}

func (e *cachedEstimator) EstimateCompressedSize(input []byte, kind bcn.DataType, scratch []byte) (int, error) {
	key := cacheKey{kind: kind, sum: xxhash.Sum64(input)}

	e.mu.Lock()
	size, ok := e.m[key]
	e.mu.Unlock()
	if ok {
		return size, nil
	}

	size, err := e.inner.EstimateCompressedSize(input, kind, scratch)
	if err != nil {
		return 0, err
	}

	e.mu.Lock()
	if len(e.m) >= e.cap {
		e.m = make(map[cacheKey]int)
	}
	e.m[key] = size
	e.mu.Unlock()
	return size, nil
}
