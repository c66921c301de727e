package bc3

import (
	"encoding/binary"

	"github.com/deepteams/bcn/internal/block"
	"github.com/deepteams/bcn/internal/color565"
)

// AlphaNormalizeMode selects how uniform-alpha BC3 blocks are
// canonicalized. The alpha part is the first 8 bytes of the block.
type AlphaNormalizeMode uint8

const (
	// AlphaNormalizeNone preserves the alpha part verbatim.
	AlphaNormalizeNone AlphaNormalizeMode = iota
	// AlphaNormalizeUniformZeroIndices writes the shared alpha value to
	// A0 and zeroes everything else.
	AlphaNormalizeUniformZeroIndices
	// AlphaNormalizeOpaqueFillAll writes eight 0xFF bytes for fully
	// opaque blocks; non-opaque uniform blocks fall back to
	// AlphaNormalizeUniformZeroIndices.
	AlphaNormalizeOpaqueFillAll
	// AlphaNormalizeOpaqueZeroMaxIndices writes zero endpoints and
	// all-ones indices for fully opaque blocks: with A0 <= A1 the top
	// index value decodes to 255. Non-opaque uniform blocks fall back to
	// AlphaNormalizeUniformZeroIndices.
	AlphaNormalizeOpaqueZeroMaxIndices
)

// NumAlphaNormalizeModes is the number of AlphaNormalizeMode values.
const NumAlphaNormalizeModes = 4

// AlphaNormalizeModes lists all alpha modes in declaration order.
var AlphaNormalizeModes = [NumAlphaNormalizeModes]AlphaNormalizeMode{
	AlphaNormalizeNone,
	AlphaNormalizeUniformZeroIndices,
	AlphaNormalizeOpaqueFillAll,
	AlphaNormalizeOpaqueZeroMaxIndices,
}

// NormalizeMode selects how solid-color BC3 blocks are canonicalized.
// The color part is the last 8 bytes of the block.
type NormalizeMode uint8

const (
	NormalizeNone NormalizeMode = iota
	NormalizeColor0Only
	NormalizeReplicateColor
)

// NumNormalizeModes is the number of NormalizeMode values.
const NumNormalizeModes = 3

// NormalizeModes lists all color modes in declaration order.
var NormalizeModes = [NumNormalizeModes]NormalizeMode{
	NormalizeNone, NormalizeColor0Only, NormalizeReplicateColor,
}

// analysis is the per-block classification shared by the normalization
// entry points.
type analysis struct {
	uniformAlpha bool
	alphaValue   uint8
	solidColor   bool
	color        color565.Color565
}

func analyze(blk []byte) analysis {
	d := block.DecodeBC3(blk)
	var a analysis
	a.uniformAlpha = d.HasIdenticalAlpha()
	a.alphaValue = d.Pixels[0].A
	if d.HasIdenticalPixelsIgnoreAlpha() {
		px := d.Pixels[0]
		c := px.ToColor565()
		// Alpha-ignoring compare: the color field never encodes
		// transparency in BC3.
		if c.ToColor8888().EqualRGB(px) {
			a.solidColor = true
			a.color = c
		}
	}
	return a
}

// writeAlpha writes the canonical 8-byte alpha part for a uniform-alpha
// block. mode must not be AlphaNormalizeNone.
func writeAlpha(dst []byte, alpha uint8, mode AlphaNormalizeMode) {
	switch {
	case mode == AlphaNormalizeOpaqueFillAll && alpha == 255:
		for i := range dst[:8] {
			dst[i] = 0xFF
		}
	case mode == AlphaNormalizeOpaqueZeroMaxIndices && alpha == 255:
		dst[0], dst[1] = 0, 0
		for i := 2; i < 8; i++ {
			dst[i] = 0xFF
		}
	default:
		dst[0] = alpha
		for i := 1; i < 8; i++ {
			dst[i] = 0
		}
	}
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

// Normalize canonicalizes the alpha and color parts of each block
// independently. dst may be exactly src (in-place); partial overlap is
// not supported. len(src) must be a multiple of BlockSize.
func Normalize(dst, src []byte, alphaMode AlphaNormalizeMode, colorMode NormalizeMode) {
	if alphaMode == AlphaNormalizeNone && colorMode == NormalizeNone {
		copyAll(dst, src)
		return
	}
	for off := 0; off+BlockSize <= len(src); off += BlockSize {
		sb := src[off : off+BlockSize]
		db := dst[off : off+BlockSize]
		a := analyze(sb)

		if a.uniformAlpha && alphaMode != AlphaNormalizeNone {
			writeAlpha(db[:8], a.alphaValue, alphaMode)
		} else {
			copyAll(db[:8], sb[:8])
		}

		if a.solidColor && colorMode != NormalizeNone {
			writeSolidColor(db[8:], a.color, colorMode)
		} else {
			copyAll(db[8:], sb[8:])
		}
	}
}

// NormalizeAllModes runs the per-block analysis once and writes the
// canonical bytes for every (alpha, color) mode pair to its own output,
// indexed [alpha mode][color mode] in declaration order.
func NormalizeAllModes(dsts *[NumAlphaNormalizeModes][NumNormalizeModes][]byte, src []byte) {
	for off := 0; off+BlockSize <= len(src); off += BlockSize {
		sb := src[off : off+BlockSize]
		a := analyze(sb)
		for ai, alphaMode := range AlphaNormalizeModes {
			for ci, colorMode := range NormalizeModes {
				db := dsts[ai][ci][off : off+BlockSize]
				if a.uniformAlpha && alphaMode != AlphaNormalizeNone {
					writeAlpha(db[:8], a.alphaValue, alphaMode)
				} else {
					copy(db[:8], sb[:8])
				}
				if a.solidColor && colorMode != NormalizeNone {
					writeSolidColor(db[8:], a.color, colorMode)
				} else {
					copy(db[8:], sb[8:])
				}
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
