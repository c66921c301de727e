// Package bc3 implements the lossless byte-rearrangement transforms for
// BC3 texture payloads. A BC3 block interleaves four fields — two alpha
// endpoints, six bytes of 3-bit alpha indices, the color endpoints, and
// the color indices — so the split produces four planes:
//
//	[ alpha endpoints len/8 | alpha indices 3*len/8 | colors len/4 | indices len/4 ]
//
// With endpoint splitting enabled the colors plane is further divided:
//
//	[ ... | color0 len/8 | color1 len/8 | indices len/4 ]
//
// The 6-byte alpha-index stride is what makes this the awkward format to
// vectorize; the wide kernel moves each block with two 64-bit loads and
// masks the fields apart.
package bc3

import (
	"encoding/binary"

	"github.com/deepteams/bcn/internal/color565"
	"github.com/deepteams/bcn/internal/endpoints"
	"github.com/deepteams/bcn/internal/pool"
)

// BlockSize is the size of one BC3 block in bytes.
const BlockSize = 16

var (
	splitBlocks   func(dst, src []byte)
	unsplitBlocks func(dst, src []byte)
)

func init() {
	splitBlocks = splitWide
	unsplitBlocks = unsplitWide
}

// Split deinterleaves BC3 blocks into
// [alpha endpoints | alpha indices | colors | indices].
// len(src) must be a multiple of 16 and len(dst) == len(src).
func Split(dst, src []byte) { splitBlocks(dst, src) }

// Unsplit re-interleaves the planes back into BC3 blocks.
func Unsplit(dst, src []byte) { unsplitBlocks(dst, src) }

// Plane offsets within a transformed buffer of n bytes:
// alpha endpoints [0, n/8), alpha indices [n/8, n/2),
// colors [n/2, 3n/4), color indices [3n/4, n).

func splitRef(dst, src []byte) {
	aEnd := len(src) / 8
	half := len(src) / 2
	threeQ := half + len(src)/4
	for k := 0; k*16+16 <= len(src); k++ {
		dst[k*2] = src[k*16]
		dst[k*2+1] = src[k*16+1]
		copy(dst[aEnd+k*6:aEnd+k*6+6], src[k*16+2:])
		copy(dst[half+k*4:half+k*4+4], src[k*16+8:])
		copy(dst[threeQ+k*4:threeQ+k*4+4], src[k*16+12:])
	}
}

func unsplitRef(dst, src []byte) {
	aEnd := len(src) / 8
	half := len(src) / 2
	threeQ := half + len(src)/4
	for k := 0; k*16+16 <= len(src); k++ {
		dst[k*16] = src[k*2]
		dst[k*16+1] = src[k*2+1]
		copy(dst[k*16+2:k*16+8], src[aEnd+k*6:])
		copy(dst[k*16+8:k*16+12], src[half+k*4:])
		copy(dst[k*16+12:k*16+16], src[threeQ+k*4:])
	}
}

// splitWide moves one block per iteration: the low 64-bit load covers the
// alpha endpoints plus all six index bytes, the high load the color field.
// The six index bytes cross the store boundary at aEnd+k*6, so the last
// pair is written as a separate 16-bit store.
func splitWide(dst, src []byte) {
	n := len(src) / 16
	aEnd := len(src) / 8
	half := len(src) / 2
	threeQ := half + len(src)/4
	for k := 0; k < n; k++ {
		lo := binary.LittleEndian.Uint64(src[k*16:])
		hi := binary.LittleEndian.Uint64(src[k*16+8:])
		binary.LittleEndian.PutUint16(dst[k*2:], uint16(lo))
		binary.LittleEndian.PutUint32(dst[aEnd+k*6:], uint32(lo>>16))
		binary.LittleEndian.PutUint16(dst[aEnd+k*6+4:], uint16(lo>>48))
		binary.LittleEndian.PutUint32(dst[half+k*4:], uint32(hi))
		binary.LittleEndian.PutUint32(dst[threeQ+k*4:], uint32(hi>>32))
	}
}

func unsplitWide(dst, src []byte) {
	n := len(src) / 16
	aEnd := len(src) / 8
	half := len(src) / 2
	threeQ := half + len(src)/4
	for k := 0; k < n; k++ {
		lo := uint64(binary.LittleEndian.Uint16(src[k*2:])) |
			uint64(binary.LittleEndian.Uint32(src[aEnd+k*6:]))<<16 |
			uint64(binary.LittleEndian.Uint16(src[aEnd+k*6+4:]))<<48
		hi := uint64(binary.LittleEndian.Uint32(src[half+k*4:])) |
			uint64(binary.LittleEndian.Uint32(src[threeQ+k*4:]))<<32
		binary.LittleEndian.PutUint64(dst[k*16:], lo)
		binary.LittleEndian.PutUint64(dst[k*16+8:], hi)
	}
}

// Transform rearranges BC3 blocks into the planar layout selected by
// variant and split. dst and src must not overlap.
func Transform(dst, src []byte, variant color565.Variant, split bool) {
	Split(dst, src)
	colors := dst[len(src)/2 : len(src)/2+len(src)/4]
	if split {
		tmp := pool.Get(len(colors))
		copy(tmp, colors)
		endpoints.Split(colors[:len(colors)/2], colors[len(colors)/2:], tmp)
		pool.Put(tmp)
	}
	if variant != color565.VariantNone {
		color565.DecorrelateSlice(colors, colors, variant)
	}
}

// Untransform reverses Transform for the same variant and split values.
func Untransform(dst, src []byte, variant color565.Variant, split bool) {
	tmp := pool.Get(len(src))
	copy(tmp, src)
	colors := tmp[len(src)/2 : len(src)/2+len(src)/4]
	if variant != color565.VariantNone {
		color565.RecorrelateSlice(colors, colors, variant)
	}
	if split {
		interleaved := pool.Get(len(colors))
		endpoints.Merge(interleaved, colors[:len(colors)/2], colors[len(colors)/2:])
		copy(colors, interleaved)
		pool.Put(interleaved)
	}
	Unsplit(dst, tmp)
	pool.Put(tmp)
}
