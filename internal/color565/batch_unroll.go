package color565

import "encoding/binary"

// Unrolled variants of the batch kernels. Four words are transformed per
// iteration; the remainder falls through to the reference loop. Output is
// byte-identical to the reference implementations.

func unroll4(dst, src []byte, f func(Color565) Color565) {
	n := len(src) &^ 7
	var i int
	for i = 0; i < n; i += 8 {
		c0 := FromRaw(binary.LittleEndian.Uint16(src[i:]))
		c1 := FromRaw(binary.LittleEndian.Uint16(src[i+2:]))
		c2 := FromRaw(binary.LittleEndian.Uint16(src[i+4:]))
		c3 := FromRaw(binary.LittleEndian.Uint16(src[i+6:]))
		binary.LittleEndian.PutUint16(dst[i:], f(c0).Raw())
		binary.LittleEndian.PutUint16(dst[i+2:], f(c1).Raw())
		binary.LittleEndian.PutUint16(dst[i+4:], f(c2).Raw())
		binary.LittleEndian.PutUint16(dst[i+6:], f(c3).Raw())
	}
	for ; i+2 <= len(src); i += 2 {
		c := FromRaw(binary.LittleEndian.Uint16(src[i:]))
		binary.LittleEndian.PutUint16(dst[i:], f(c).Raw())
	}
}

func decorrelateVar1Unroll4(dst, src []byte) { unroll4(dst, src, Color565.DecorrelateVar1) }
func decorrelateVar2Unroll4(dst, src []byte) { unroll4(dst, src, Color565.DecorrelateVar2) }
func decorrelateVar3Unroll4(dst, src []byte) { unroll4(dst, src, Color565.DecorrelateVar3) }
func recorrelateVar1Unroll4(dst, src []byte) { unroll4(dst, src, Color565.RecorrelateVar1) }
func recorrelateVar2Unroll4(dst, src []byte) { unroll4(dst, src, Color565.RecorrelateVar2) }
func recorrelateVar3Unroll4(dst, src []byte) { unroll4(dst, src, Color565.RecorrelateVar3) }
