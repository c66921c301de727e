// Package pool provides bucketed sync.Pool instances for the transient
// buffers the transforms need: estimator scratch space and temporary plane
// copies. Buffers are organized by size class to minimize waste; texture
// payloads run from a few KiB (small mips) to tens of MiB (a 4K BC3
// surface with its mip chain), so the classes skew larger than a
// general-purpose pool.
package pool

import "sync"

// Size classes for bucketed pools.
const (
	Size4K   = 4096
	Size64K  = 65536
	Size512K = 524288
	Size4M   = 4194304
	Size32M  = 33554432
)

var sizes = [5]int{Size4K, Size64K, Size512K, Size4M, Size32M}

// bucketIndex returns the pool index for a given size, or -1 when the size
// exceeds the largest class.
func bucketIndex(size int) int {
	for i, sz := range sizes {
		if size <= sz {
			return i
		}
	}
	return -1
}

var pools [5]sync.Pool

func init() {
	for i := range pools {
		sz := sizes[i]
		pools[i] = sync.Pool{
			New: func() any {
				b := make([]byte, sz)
				return &b
			},
		}
	}
}

// Get returns a byte slice of length size. Requests above the largest size
// class are allocated directly and will not be pooled on Put.
func Get(size int) []byte {
	idx := bucketIndex(size)
	if idx < 0 {
		return make([]byte, size)
	}
	bp := pools[idx].Get().(*[]byte)
	b := *bp
	if cap(b) < size {
		b = make([]byte, sizes[idx])
	}
	return b[:size]
}

// Put returns a byte slice obtained from Get to its pool. Slices whose
// capacity is below the smallest or above the largest size class are
// dropped.
func Put(b []byte) {
	c := cap(b)
	if c < Size4K || c > Size32M {
		return
	}
	// Pool under the largest class the backing array can fully serve.
	idx := -1
	for i := len(sizes) - 1; i >= 0; i-- {
		if c >= sizes[i] {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	b = b[:c]
	pools[idx].Put(&b)
}
