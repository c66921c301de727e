package color565

import (
	"encoding/binary"

	"golang.org/x/sys/cpu"
)

// Batch kernels over planes of little-endian RGB565 words. Lengths are in
// bytes and must be even. dst and src may be the same slice for the
// one-plane forms; partial overlap is not supported.
//
// Each direction has a reference implementation plus an unrolled variant.
// The function variables below are assigned at init time; tests call the
// reference and unrolled kernels directly to cross-check them.
var (
	decorrelateVar1 func(dst, src []byte)
	decorrelateVar2 func(dst, src []byte)
	decorrelateVar3 func(dst, src []byte)
	recorrelateVar1 func(dst, src []byte)
	recorrelateVar2 func(dst, src []byte)
	recorrelateVar3 func(dst, src []byte)
)

func init() {
	decorrelateVar1 = decorrelateVar1Ref
	decorrelateVar2 = decorrelateVar2Ref
	decorrelateVar3 = decorrelateVar3Ref
	recorrelateVar1 = recorrelateVar1Ref
	recorrelateVar2 = recorrelateVar2Ref
	recorrelateVar3 = recorrelateVar3Ref
	if cpu.X86.HasAVX2 || cpu.ARM64.HasASIMD {
		// Wide cores hide the extra instruction-level parallelism of the
		// four-word variants.
		decorrelateVar1 = decorrelateVar1Unroll4
		decorrelateVar2 = decorrelateVar2Unroll4
		decorrelateVar3 = decorrelateVar3Unroll4
		recorrelateVar1 = recorrelateVar1Unroll4
		recorrelateVar2 = recorrelateVar2Unroll4
		recorrelateVar3 = recorrelateVar3Unroll4
	}
}

// DecorrelateSlice applies the forward transform for v to every RGB565
// word in src, writing the result to dst. len(dst) >= len(src); len(src)
// must be even. VariantNone copies.
func DecorrelateSlice(dst, src []byte, v Variant) {
	switch v {
	case Variant1:
		decorrelateVar1(dst, src)
	case Variant2:
		decorrelateVar2(dst, src)
	case Variant3:
		decorrelateVar3(dst, src)
	default:
		copySame(dst, src)
	}
}

// RecorrelateSlice applies the inverse transform for v to every RGB565
// word in src, writing the result to dst.
func RecorrelateSlice(dst, src []byte, v Variant) {
	switch v {
	case Variant1:
		recorrelateVar1(dst, src)
	case Variant2:
		recorrelateVar2(dst, src)
	case Variant3:
		recorrelateVar3(dst, src)
	default:
		copySame(dst, src)
	}
}

// RecorrelateSliceSplit reads color words from two separate planes and
// writes the recorrelated results interleaved: dst word 2k comes from
// src0 word k, dst word 2k+1 from src1 word k. len(src0) == len(src1),
// len(dst) == len(src0)*2.
func RecorrelateSliceSplit(dst, src0, src1 []byte, v Variant) {
	for i := 0; i+2 <= len(src0); i += 2 {
		c0 := FromRaw(binary.LittleEndian.Uint16(src0[i:])).Recorrelate(v)
		c1 := FromRaw(binary.LittleEndian.Uint16(src1[i:])).Recorrelate(v)
		binary.LittleEndian.PutUint16(dst[i*2:], c0.Raw())
		binary.LittleEndian.PutUint16(dst[i*2+2:], c1.Raw())
	}
}

func copySame(dst, src []byte) {
	if len(dst) >= len(src) && len(src) > 0 && &dst[0] == &src[0] {
		return
	}
	copy(dst, src)
}

func decorrelateVar1Ref(dst, src []byte) {
	for i := 0; i+2 <= len(src); i += 2 {
		c := FromRaw(binary.LittleEndian.Uint16(src[i:]))
		binary.LittleEndian.PutUint16(dst[i:], c.DecorrelateVar1().Raw())
	}
}

func decorrelateVar2Ref(dst, src []byte) {
	for i := 0; i+2 <= len(src); i += 2 {
		c := FromRaw(binary.LittleEndian.Uint16(src[i:]))
		binary.LittleEndian.PutUint16(dst[i:], c.DecorrelateVar2().Raw())
	}
}

func decorrelateVar3Ref(dst, src []byte) {
	for i := 0; i+2 <= len(src); i += 2 {
		c := FromRaw(binary.LittleEndian.Uint16(src[i:]))
		binary.LittleEndian.PutUint16(dst[i:], c.DecorrelateVar3().Raw())
	}
}

func recorrelateVar1Ref(dst, src []byte) {
	for i := 0; i+2 <= len(src); i += 2 {
		c := FromRaw(binary.LittleEndian.Uint16(src[i:]))
		binary.LittleEndian.PutUint16(dst[i:], c.RecorrelateVar1().Raw())
	}
}

func recorrelateVar2Ref(dst, src []byte) {
	for i := 0; i+2 <= len(src); i += 2 {
		c := FromRaw(binary.LittleEndian.Uint16(src[i:]))
		binary.LittleEndian.PutUint16(dst[i:], c.RecorrelateVar2().Raw())
	}
}

func recorrelateVar3Ref(dst, src []byte) {
	for i := 0; i+2 <= len(src); i += 2 {
		c := FromRaw(binary.LittleEndian.Uint16(src[i:]))
		binary.LittleEndian.PutUint16(dst[i:], c.RecorrelateVar3().Raw())
	}
}
