package bc1

import (
	"encoding/binary"

	"github.com/deepteams/bcn/internal/color565"
)

// Transform rearranges BC1 blocks into the planar layout selected by
// variant and split. len(src) must be a multiple of BlockSize; dst and src
// must not overlap and len(dst) == len(src).
func Transform(dst, src []byte, variant color565.Variant, split bool) {
	switch {
	case !split && variant == color565.VariantNone:
		Split(dst, src)
	case !split:
		transformDecorrelate(dst, src, variant)
	case variant == color565.VariantNone:
		transformSplitColour(dst, src)
	default:
		transformSplitColourDecorrelate(dst, src, variant)
	}
}

// Untransform reverses Transform for the same variant and split values.
func Untransform(dst, src []byte, variant color565.Variant, split bool) {
	switch {
	case !split && variant == color565.VariantNone:
		Unsplit(dst, src)
	case !split:
		untransformRecorrelate(dst, src, variant)
	case variant == color565.VariantNone:
		untransformSplitColour(dst, src)
	default:
		untransformSplitColourRecorrelate(dst, src, variant)
	}
}

// transformDecorrelate fuses the block split with endpoint decorrelation:
// both 16-bit endpoints of each block are transformed while the block's
// fields are scattered to the two planes.
func transformDecorrelate(dst, src []byte, v color565.Variant) {
	n := len(src) / 8
	half := len(src) / 2
	for k := 0; k < n; k++ {
		c0 := color565.FromRaw(binary.LittleEndian.Uint16(src[k*8:])).Decorrelate(v)
		c1 := color565.FromRaw(binary.LittleEndian.Uint16(src[k*8+2:])).Decorrelate(v)
		binary.LittleEndian.PutUint16(dst[k*4:], c0.Raw())
		binary.LittleEndian.PutUint16(dst[k*4+2:], c1.Raw())
		copy(dst[half+k*4:half+k*4+4], src[k*8+4:])
	}
}

func untransformRecorrelate(dst, src []byte, v color565.Variant) {
	n := len(src) / 8
	half := len(src) / 2
	for k := 0; k < n; k++ {
		c0 := color565.FromRaw(binary.LittleEndian.Uint16(src[k*4:])).Recorrelate(v)
		c1 := color565.FromRaw(binary.LittleEndian.Uint16(src[k*4+2:])).Recorrelate(v)
		binary.LittleEndian.PutUint16(dst[k*8:], c0.Raw())
		binary.LittleEndian.PutUint16(dst[k*8+2:], c1.Raw())
		copy(dst[k*8+4:k*8+8], src[half+k*4:])
	}
}

// transformSplitColour writes [color0 | color1 | indices] in one pass.
func transformSplitColour(dst, src []byte) {
	n := len(src) / 8
	quarter := len(src) / 4
	half := len(src) / 2
	for k := 0; k < n; k++ {
		copy(dst[k*2:k*2+2], src[k*8:])
		copy(dst[quarter+k*2:quarter+k*2+2], src[k*8+2:])
		copy(dst[half+k*4:half+k*4+4], src[k*8+4:])
	}
}

func untransformSplitColour(dst, src []byte) {
	n := len(src) / 8
	quarter := len(src) / 4
	half := len(src) / 2
	for k := 0; k < n; k++ {
		copy(dst[k*8:k*8+2], src[k*2:])
		copy(dst[k*8+2:k*8+4], src[quarter+k*2:])
		copy(dst[k*8+4:k*8+8], src[half+k*4:])
	}
}

func transformSplitColourDecorrelate(dst, src []byte, v color565.Variant) {
	n := len(src) / 8
	quarter := len(src) / 4
	half := len(src) / 2
	for k := 0; k < n; k++ {
		c0 := color565.FromRaw(binary.LittleEndian.Uint16(src[k*8:])).Decorrelate(v)
		c1 := color565.FromRaw(binary.LittleEndian.Uint16(src[k*8+2:])).Decorrelate(v)
		binary.LittleEndian.PutUint16(dst[k*2:], c0.Raw())
		binary.LittleEndian.PutUint16(dst[quarter+k*2:], c1.Raw())
		copy(dst[half+k*4:half+k*4+4], src[k*8+4:])
	}
}

func untransformSplitColourRecorrelate(dst, src []byte, v color565.Variant) {
	n := len(src) / 8
	quarter := len(src) / 4
	half := len(src) / 2
	for k := 0; k < n; k++ {
		c0 := color565.FromRaw(binary.LittleEndian.Uint16(src[k*2:])).Recorrelate(v)
		c1 := color565.FromRaw(binary.LittleEndian.Uint16(src[quarter+k*2:])).Recorrelate(v)
		binary.LittleEndian.PutUint16(dst[k*8:], c0.Raw())
		binary.LittleEndian.PutUint16(dst[k*8+2:], c1.Raw())
		copy(dst[k*8+4:k*8+8], src[half+k*4:])
	}
}
