package bc1

import (
	"encoding/binary"

	"github.com/deepteams/bcn/internal/block"
	"github.com/deepteams/bcn/internal/color565"
)

// NormalizeMode selects how solid-color BC1 blocks are canonicalized.
type NormalizeMode uint8

const (
	// NormalizeNone preserves blocks verbatim.
	NormalizeNone NormalizeMode = iota
	// NormalizeColor0Only puts the color in Color0 and zeroes Color1 and
	// the indices, maximizing zero-byte runs.
	NormalizeColor0Only
	// NormalizeReplicateColor writes the color to both endpoints and
	// zeroes the indices; the endpoint pair becomes a repeating 4-byte
	// pattern, which occasionally compresses better.
	NormalizeReplicateColor
)

// NumNormalizeModes is the number of NormalizeMode values.
const NumNormalizeModes = 3

// NormalizeModes lists all modes in declaration order.
var NormalizeModes = [NumNormalizeModes]NormalizeMode{
	NormalizeNone, NormalizeColor0Only, NormalizeReplicateColor,
}

// blockCase classifies one decoded block for normalization.
type blockCase uint8

const (
	caseOther blockCase = iota
	caseTransparent
	caseSolidRoundtrippable
)

// analyze decodes one 8-byte block and classifies it. color is only
// meaningful for caseSolidRoundtrippable.
func analyze(blk []byte) (c blockCase, color color565.Color565) {
	d := block.DecodeBC1(blk)
	if !d.HasIdenticalPixels() {
		return caseOther, 0
	}
	px := d.Pixels[0]
	if px.A == 0 {
		return caseTransparent, 0
	}
	color = px.ToColor565()
	// Canonicalization is only lossless when the color survives the trip
	// back through RGB565.
	if color.ToColor8888() != px {
		return caseOther, 0
	}
	return caseSolidRoundtrippable, color
}

// writeSolid writes the canonical 8-byte form of a roundtrippable solid
// color block for mode. mode must not be NormalizeNone.
func writeSolid(dst []byte, color color565.Color565, mode NormalizeMode) {
	binary.LittleEndian.PutUint16(dst[0:2], color.Raw())
	if mode == NormalizeReplicateColor {
		binary.LittleEndian.PutUint16(dst[2:4], color.Raw())
	} else {
		dst[2], dst[3] = 0, 0
	}
	dst[4], dst[5], dst[6], dst[7] = 0, 0, 0, 0
}

func fill(dst []byte, v byte) {
	for i := range dst {
		dst[i] = v
	}
}

// Normalize rewrites visually-equivalent blocks to canonical bytes.
// Solid roundtrippable blocks take the form selected by mode; fully
// transparent blocks become eight 0xFF bytes; everything else is copied
// verbatim. dst may be exactly src (in-place); partial overlap is not
// supported. len(src) must be a multiple of BlockSize.
func Normalize(dst, src []byte, mode NormalizeMode) {
	if mode == NormalizeNone {
		copyBlocks(dst, src)
		return
	}
	for off := 0; off+BlockSize <= len(src); off += BlockSize {
		sb := src[off : off+BlockSize]
		db := dst[off : off+BlockSize]
		switch c, color := analyze(sb); c {
		case caseTransparent:
			fill(db, 0xFF)
		case caseSolidRoundtrippable:
			writeSolid(db, color, mode)
		default:
			copyBlocks(db, sb)
		}
	}
}

// NormalizeAllModes runs the per-block analysis once and writes every
// mode's canonical bytes to its own output, indexed like NormalizeModes.
// Each output must be len(src) bytes.
func NormalizeAllModes(dsts *[NumNormalizeModes][]byte, src []byte) {
	for off := 0; off+BlockSize <= len(src); off += BlockSize {
		sb := src[off : off+BlockSize]
		c, color := analyze(sb)
		for i, mode := range NormalizeModes {
			db := dsts[i][off : off+BlockSize]
			if mode == NormalizeNone {
				copy(db, sb)
				continue
			}
			switch c {
			case caseTransparent:
				fill(db, 0xFF)
			case caseSolidRoundtrippable:
				writeSolid(db, color, mode)
			default:
				copy(db, sb)
			}
		}
	}
}

// NormalizeSplit normalizes blocks that have already been split into a
// colors plane and an indices plane, in place. Each plane holds 4 bytes
// per block. Blocks that cannot be canonicalized are left untouched.
func NormalizeSplit(colours, indices []byte, mode NormalizeMode) {
	if mode == NormalizeNone {
		return
	}
	var tmp [BlockSize]byte
	for k := 0; k*4+4 <= len(colours); k++ {
		copy(tmp[0:4], colours[k*4:])
		copy(tmp[4:8], indices[k*4:])
		switch c, color := analyze(tmp[:]); c {
		case caseTransparent:
			fill(colours[k*4:k*4+4], 0xFF)
			fill(indices[k*4:k*4+4], 0xFF)
		case caseSolidRoundtrippable:
			writeSolid(tmp[:], color, mode)
			copy(colours[k*4:k*4+4], tmp[0:4])
			copy(indices[k*4:k*4+4], tmp[4:8])
		}
	}
}

// copyBlocks copies src to dst unless they already alias exactly.
func copyBlocks(dst, src []byte) {
	if len(dst) > 0 && len(src) > 0 && &dst[0] == &src[0] {
		return
	}
	copy(dst, src)
}
