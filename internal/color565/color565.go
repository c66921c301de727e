// Package color565 implements the 16-bit RGB565 color value used by the
// BC1/BC2/BC3 color endpoints, together with the reversible YCoCg-R
// decorrelation variants applied to endpoint planes before entropy coding.
//
// YCoCg-R here is computed entirely in 5-bit space so it fits the RGB565
// channel widths: the green channel's low bit does not participate in the
// lifting steps and is carried through verbatim. The three variants differ
// only in where that spare bit lands inside the transformed 16-bit word.
package color565

// Color565 is a 16-bit RGB565 value: 5 bits red (MSBs), 6 bits green,
// 5 bits blue (LSBs). On disk it is stored little-endian.
type Color565 uint16

// FromRaw returns the color for a raw 16-bit RGB565 value.
func FromRaw(v uint16) Color565 { return Color565(v) }

// FromRGB quantizes an 8-bit RGB triple to RGB565 by truncating the low
// bits of each channel.
func FromRGB(r, g, b uint8) Color565 {
	return Color565(uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3))
}

// Raw returns the underlying 16-bit value.
func (c Color565) Raw() uint16 { return uint16(c) }

// R returns the 5-bit red channel.
func (c Color565) R() uint8 { return uint8(c>>11) & 0x1F }

// G returns the 6-bit green channel.
func (c Color565) G() uint8 { return uint8(c>>5) & 0x3F }

// B returns the 5-bit blue channel.
func (c Color565) B() uint8 { return uint8(c) & 0x1F }

// Color8888 is an 8-bit RGBA color value.
type Color8888 struct {
	R, G, B, A uint8
}

// ToColor8888 widens the color to 8-bit RGBA with full alpha. Each channel
// is expanded by top-bit replication so that 0 maps to 0 and the channel
// maximum maps to 255.
func (c Color565) ToColor8888() Color8888 {
	return c.ToColor8888WithAlpha(255)
}

// ToColor8888WithAlpha is ToColor8888 with an explicit alpha value.
func (c Color565) ToColor8888WithAlpha(alpha uint8) Color8888 {
	r5 := c.R()
	g6 := c.G()
	b5 := c.B()
	return Color8888{
		R: r5<<3 | r5>>2,
		G: g6<<2 | g6>>4,
		B: b5<<3 | b5>>2,
		A: alpha,
	}
}

// ToColor565 narrows the color to RGB565, dropping alpha.
func (p Color8888) ToColor565() Color565 {
	return FromRGB(p.R, p.G, p.B)
}

// EqualRGB reports whether two colors share the same RGB triple,
// ignoring alpha.
func (p Color8888) EqualRGB(q Color8888) bool {
	return p.R == q.R && p.G == q.G && p.B == q.B
}

// Variant selects a YCoCg-R packing for endpoint decorrelation.
// The zero value is VariantNone (identity).
type Variant uint8

const (
	// VariantNone leaves colors untouched.
	VariantNone Variant = iota
	// Variant1 keeps the spare green bit in its native RGB565 slot
	// (bit 5). Usually compresses best.
	Variant1
	// Variant2 moves the spare green bit to the MSB. Marginally faster
	// to recorrelate.
	Variant2
	// Variant3 moves the spare green bit to the LSB.
	Variant3
)

// Variants lists all variants in declaration order.
var Variants = [4]Variant{VariantNone, Variant1, Variant2, Variant3}

func (v Variant) String() string {
	switch v {
	case VariantNone:
		return "None"
	case Variant1:
		return "YCoCg1"
	case Variant2:
		return "YCoCg2"
	case Variant3:
		return "YCoCg3"
	}
	return "YCoCg?"
}

// forward runs the YCoCg-R lifting steps over the 5-bit channels and
// returns (y, co, cg, gLow).
func (c Color565) forward() (y, co, cg int16, gLow uint16) {
	r := int16(c>>11) & 0x1F
	g := int16(c>>6) & 0x1F // top 5 bits of green
	gLow = uint16(c>>5) & 1 // spare green bit, carried verbatim
	b := int16(c) & 0x1F

	co = (r - b) & 0x1F
	t := (b + co>>1) & 0x1F
	cg = (g - t) & 0x1F
	y = (t + cg>>1) & 0x1F
	return y, co, cg, gLow
}

// inverse undoes the lifting steps and repacks an RGB565 word with the
// spare green bit restored to its native slot.
func inverse(y, co, cg int16, gLow uint16) Color565 {
	t := (y - cg>>1) & 0x1F
	g := (cg + t) & 0x1F
	b := (t - co>>1) & 0x1F
	r := (b + co) & 0x1F
	return Color565(uint16(r)<<11 | uint16(g)<<6 | gLow<<5 | uint16(b))
}

// DecorrelateVar1 transforms the color to YCoCg-R with the spare green
// bit kept at bit 5: Y[15:11] Co[10:6] gLow[5] Cg[4:0].
func (c Color565) DecorrelateVar1() Color565 {
	y, co, cg, gLow := c.forward()
	return Color565(uint16(y)<<11 | uint16(co)<<6 | gLow<<5 | uint16(cg))
}

// RecorrelateVar1 is the inverse of DecorrelateVar1.
func (c Color565) RecorrelateVar1() Color565 {
	y := int16(c>>11) & 0x1F
	co := int16(c>>6) & 0x1F
	gLow := uint16(c>>5) & 1
	cg := int16(c) & 0x1F
	return inverse(y, co, cg, gLow)
}

// DecorrelateVar2 transforms the color to YCoCg-R with the spare green
// bit at the MSB: gLow[15] Y[14:10] Co[9:5] Cg[4:0].
func (c Color565) DecorrelateVar2() Color565 {
	y, co, cg, gLow := c.forward()
	return Color565(gLow<<15 | uint16(y)<<10 | uint16(co)<<5 | uint16(cg))
}

// RecorrelateVar2 is the inverse of DecorrelateVar2.
func (c Color565) RecorrelateVar2() Color565 {
	gLow := uint16(c) >> 15
	y := int16(c>>10) & 0x1F
	co := int16(c>>5) & 0x1F
	cg := int16(c) & 0x1F
	return inverse(y, co, cg, gLow)
}

// DecorrelateVar3 transforms the color to YCoCg-R with the spare green
// bit at the LSB: Y[15:11] Co[10:6] Cg[5:1] gLow[0].
func (c Color565) DecorrelateVar3() Color565 {
	y, co, cg, gLow := c.forward()
	return Color565(uint16(y)<<11 | uint16(co)<<6 | uint16(cg)<<1 | gLow)
}

// RecorrelateVar3 is the inverse of DecorrelateVar3.
func (c Color565) RecorrelateVar3() Color565 {
	y := int16(c>>11) & 0x1F
	co := int16(c>>6) & 0x1F
	cg := int16(c>>1) & 0x1F
	gLow := uint16(c) & 1
	return inverse(y, co, cg, gLow)
}

// Decorrelate applies the forward transform for the given variant.
// VariantNone returns the color unchanged.
func (c Color565) Decorrelate(v Variant) Color565 {
	switch v {
	case Variant1:
		return c.DecorrelateVar1()
	case Variant2:
		return c.DecorrelateVar2()
	case Variant3:
		return c.DecorrelateVar3()
	}
	return c
}

// Recorrelate applies the inverse transform for the given variant.
// VariantNone returns the color unchanged.
func (c Color565) Recorrelate(v Variant) Color565 {
	switch v {
	case Variant1:
		return c.RecorrelateVar1()
	case Variant2:
		return c.RecorrelateVar2()
	case Variant3:
		return c.RecorrelateVar3()
	}
	return c
}
