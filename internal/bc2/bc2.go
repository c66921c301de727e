// Package bc2 implements the lossless byte-rearrangement transforms for
// BC2 texture payloads. A BC2 block carries 8 bytes of explicit 4-bit
// alpha followed by a BC1-style color field, so the split produces three
// planes:
//
//	[ alpha len/2 | colors len/4 | indices len/4 ]
//
// With endpoint splitting enabled the colors plane is further divided:
//
//	[ alpha len/2 | color0 len/8 | color1 len/8 | indices len/4 ]
//
// The color endpoint words may additionally be decorrelated in place.
// Unlike BC1, the transform stages here run as separate passes over the
// planes; the plane sizes make the extra sweeps cheap relative to the
// fused variants and keep each kernel trivial to verify.
package bc2

import (
	"encoding/binary"

	"github.com/deepteams/bcn/internal/block"
	"github.com/deepteams/bcn/internal/color565"
	"github.com/deepteams/bcn/internal/endpoints"
	"github.com/deepteams/bcn/internal/pool"
)

// BlockSize is the size of one BC2 block in bytes.
const BlockSize = 16

var (
	splitBlocks   func(dst, src []byte)
	unsplitBlocks func(dst, src []byte)
)

func init() {
	splitBlocks = splitWide
	unsplitBlocks = unsplitWide
}

// Split deinterleaves BC2 blocks into [alpha | colors | indices].
// len(src) must be a multiple of 16 and len(dst) == len(src).
func Split(dst, src []byte) { splitBlocks(dst, src) }

// Unsplit re-interleaves the planes back into BC2 blocks.
func Unsplit(dst, src []byte) { unsplitBlocks(dst, src) }

func splitRef(dst, src []byte) {
	half := len(src) / 2
	threeQ := half + len(src)/4
	for k := 0; k*16+16 <= len(src); k++ {
		copy(dst[k*8:k*8+8], src[k*16:])
		copy(dst[half+k*4:half+k*4+4], src[k*16+8:])
		copy(dst[threeQ+k*4:threeQ+k*4+4], src[k*16+12:])
	}
}

func unsplitRef(dst, src []byte) {
	half := len(src) / 2
	threeQ := half + len(src)/4
	for k := 0; k*16+16 <= len(src); k++ {
		copy(dst[k*16:k*16+8], src[k*8:])
		copy(dst[k*16+8:k*16+12], src[half+k*4:])
		copy(dst[k*16+12:k*16+16], src[threeQ+k*4:])
	}
}

// splitWide moves one block per iteration using two 64-bit loads.
func splitWide(dst, src []byte) {
	n := len(src) / 16
	half := len(src) / 2
	threeQ := half + len(src)/4
	for k := 0; k < n; k++ {
		alpha := binary.LittleEndian.Uint64(src[k*16:])
		cw := binary.LittleEndian.Uint64(src[k*16+8:])
		binary.LittleEndian.PutUint64(dst[k*8:], alpha)
		binary.LittleEndian.PutUint32(dst[half+k*4:], uint32(cw))
		binary.LittleEndian.PutUint32(dst[threeQ+k*4:], uint32(cw>>32))
	}
}

func unsplitWide(dst, src []byte) {
	n := len(src) / 16
	half := len(src) / 2
	threeQ := half + len(src)/4
	for k := 0; k < n; k++ {
		alpha := binary.LittleEndian.Uint64(src[k*8:])
		colors := binary.LittleEndian.Uint32(src[half+k*4:])
		indices := binary.LittleEndian.Uint32(src[threeQ+k*4:])
		binary.LittleEndian.PutUint64(dst[k*16:], alpha)
		binary.LittleEndian.PutUint64(dst[k*16+8:], uint64(colors)|uint64(indices)<<32)
	}
}

// Transform rearranges BC2 blocks into the planar layout selected by
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
		// With split endpoints the two streams decorrelate independently,
		// which is the same elementwise pass over the whole region.
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

// NormalizeMode selects how solid-color BC2 blocks are canonicalized.
// Only the trailing 8 color bytes are rewritten; the explicit alpha bytes
// always pass through verbatim.
type NormalizeMode uint8

const (
	NormalizeNone NormalizeMode = iota
	NormalizeColor0Only
	NormalizeReplicateColor
)

// NumNormalizeModes is the number of NormalizeMode values.
const NumNormalizeModes = 3

// NormalizeModes lists all modes in declaration order.
var NormalizeModes = [NumNormalizeModes]NormalizeMode{
	NormalizeNone, NormalizeColor0Only, NormalizeReplicateColor,
}

// analyzeColor reports whether the block's color part is a roundtrippable
// solid color. The compare ignores alpha: BC2 carries alpha out of band,
// so the color field never encodes transparency.
func analyzeColor(blk []byte) (color color565.Color565, ok bool) {
	d := block.DecodeBC2(blk)
	if !d.HasIdenticalPixelsIgnoreAlpha() {
		return 0, false
	}
	px := d.Pixels[0]
	color = px.ToColor565()
	rt := color.ToColor8888()
	if !rt.EqualRGB(px) {
		return 0, false
	}
	return color, true
}

func writeSolidColor(dst []byte, color color565.Color565, mode NormalizeMode) {
	binary.LittleEndian.PutUint16(dst[0:2], color.Raw())
	if mode == NormalizeReplicateColor {
		binary.LittleEndian.PutUint16(dst[2:4], color.Raw())
	} else {
		dst[2], dst[3] = 0, 0
	}
	dst[4], dst[5], dst[6], dst[7] = 0, 0, 0, 0
}

// Normalize rewrites the color part of solid-color blocks to canonical
// bytes; alpha bytes are copied unchanged. dst may be exactly src.
// len(src) must be a multiple of BlockSize.
func Normalize(dst, src []byte, mode NormalizeMode) {
	if mode == NormalizeNone {
		copyAll(dst, src)
		return
	}
	for off := 0; off+BlockSize <= len(src); off += BlockSize {
		sb := src[off : off+BlockSize]
		db := dst[off : off+BlockSize]
		copyAll(db[:8], sb[:8])
		if color, ok := analyzeColor(sb); ok {
			writeSolidColor(db[8:], color, mode)
		} else {
			copyAll(db[8:], sb[8:])
		}
	}
}

// NormalizeAllModes runs the per-block analysis once and writes every
// mode's canonical bytes to its own output, indexed like NormalizeModes.
func NormalizeAllModes(dsts *[NumNormalizeModes][]byte, src []byte) {
	for off := 0; off+BlockSize <= len(src); off += BlockSize {
		sb := src[off : off+BlockSize]
		color, ok := analyzeColor(sb)
		for i, mode := range NormalizeModes {
			db := dsts[i][off : off+BlockSize]
			copy(db[:8], sb[:8])
			if ok && mode != NormalizeNone {
				writeSolidColor(db[8:], color, mode)
			} else {
				copy(db[8:], sb[8:])
			}
		}
	}
}

func copyAll(dst, src []byte) {
	if len(dst) > 0 && len(src) > 0 && &dst[0] == &src[0] {
		return
	}
	copy(dst, src)
}
