// Package bc1 implements the lossless byte-rearrangement transforms for
// BC1 texture payloads: deinterleaving the 8-byte blocks into a colors
// plane and an indices plane, optionally splitting the color endpoints
// into separate color0/color1 streams, optionally decorrelating the color
// words, and normalizing visually-equivalent blocks to canonical bytes.
//
// Transformed layout, forward direction:
//
//	split=false:  [ colors len/2 | indices len/2 ]
//	split=true:   [ color0 len/4 | color1 len/4 | indices len/2 ]
//
// All transforms are bit-exactly reversible and length-preserving.
package bc1

import "encoding/binary"

// BlockSize is the size of one BC1 block in bytes.
const BlockSize = 8

// Kernel dispatch for the plain split/unsplit pair. Assigned at init,
// the same way the color565 batch kernels are organized; tests call the
// reference and wide kernels directly to compare them.
var (
	splitBlocks   func(dst, src []byte)
	unsplitBlocks func(dst, src []byte)
)

func init() {
	splitBlocks = splitWide
	unsplitBlocks = unsplitWide
}

// Split deinterleaves BC1 blocks into [colors | indices].
// len(src) must be a multiple of 8 and len(dst) == len(src).
func Split(dst, src []byte) { splitBlocks(dst, src) }

// Unsplit re-interleaves [colors | indices] back into BC1 blocks.
func Unsplit(dst, src []byte) { unsplitBlocks(dst, src) }

func splitRef(dst, src []byte) {
	half := len(src) / 2
	for k := 0; k*8+8 <= len(src); k++ {
		copy(dst[k*4:k*4+4], src[k*8:])
		copy(dst[half+k*4:half+k*4+4], src[k*8+4:])
	}
}

func unsplitRef(dst, src []byte) {
	half := len(src) / 2
	for k := 0; k*8+8 <= len(src); k++ {
		copy(dst[k*8:k*8+4], src[k*4:])
		copy(dst[k*8+4:k*8+8], src[half+k*4:])
	}
}

// splitWide reads one 8-byte block per 64-bit load, two blocks per
// iteration, with a scalar tail.
func splitWide(dst, src []byte) {
	n := len(src) / 8
	half := len(src) / 2
	k := 0
	for ; k+2 <= n; k += 2 {
		w0 := binary.LittleEndian.Uint64(src[k*8:])
		w1 := binary.LittleEndian.Uint64(src[k*8+8:])
		binary.LittleEndian.PutUint32(dst[k*4:], uint32(w0))
		binary.LittleEndian.PutUint32(dst[k*4+4:], uint32(w1))
		binary.LittleEndian.PutUint32(dst[half+k*4:], uint32(w0>>32))
		binary.LittleEndian.PutUint32(dst[half+k*4+4:], uint32(w1>>32))
	}
	for ; k < n; k++ {
		w := binary.LittleEndian.Uint64(src[k*8:])
		binary.LittleEndian.PutUint32(dst[k*4:], uint32(w))
		binary.LittleEndian.PutUint32(dst[half+k*4:], uint32(w>>32))
	}
}

// unsplitWide writes one 8-byte block per 64-bit store.
func unsplitWide(dst, src []byte) {
	n := len(src) / 8
	half := len(src) / 2
	k := 0
	for ; k+2 <= n; k += 2 {
		c0 := binary.LittleEndian.Uint32(src[k*4:])
		c1 := binary.LittleEndian.Uint32(src[k*4+4:])
		i0 := binary.LittleEndian.Uint32(src[half+k*4:])
		i1 := binary.LittleEndian.Uint32(src[half+k*4+4:])
		binary.LittleEndian.PutUint64(dst[k*8:], uint64(c0)|uint64(i0)<<32)
		binary.LittleEndian.PutUint64(dst[k*8+8:], uint64(c1)|uint64(i1)<<32)
	}
	for ; k < n; k++ {
		c := binary.LittleEndian.Uint32(src[k*4:])
		ix := binary.LittleEndian.Uint32(src[half+k*4:])
		binary.LittleEndian.PutUint64(dst[k*8:], uint64(c)|uint64(ix)<<32)
	}
}
