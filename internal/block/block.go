// Package block implements software decoders for single BC1, BC2 and BC3
// blocks. The decoders exist for block analysis during normalization; the
// bulk transform pipeline never decodes pixels.
package block

import (
	"encoding/binary"

	"github.com/deepteams/bcn/internal/color565"
)

// Decoded4x4 holds the 16 decoded RGBA pixels of one block, row-major.
type Decoded4x4 struct {
	Pixels [16]color565.Color8888
}

// HasIdenticalPixels reports whether all 16 pixels are equal, alpha
// included.
func (b *Decoded4x4) HasIdenticalPixels() bool {
	first := b.Pixels[0]
	for _, p := range b.Pixels[1:] {
		if p != first {
			return false
		}
	}
	return true
}

// HasIdenticalPixelsIgnoreAlpha reports whether all 16 pixels share the
// same RGB triple.
func (b *Decoded4x4) HasIdenticalPixelsIgnoreAlpha() bool {
	first := b.Pixels[0]
	for _, p := range b.Pixels[1:] {
		if !p.EqualRGB(first) {
			return false
		}
	}
	return true
}

// HasIdenticalAlpha reports whether all 16 pixels share the same alpha
// value.
func (b *Decoded4x4) HasIdenticalAlpha() bool {
	first := b.Pixels[0].A
	for _, p := range b.Pixels[1:] {
		if p.A != first {
			return false
		}
	}
	return true
}

// colorPalette builds the 4-entry palette for a BC1-style color field.
// fourColor selects the opaque 4-color mode; otherwise the block is in
// punch-through mode where entry 3 is the transparent pixel.
func colorPalette(c0, c1 color565.Color565, fourColor bool) [4]color565.Color8888 {
	p0 := c0.ToColor8888()
	p1 := c1.ToColor8888()
	var pal [4]color565.Color8888
	pal[0] = p0
	pal[1] = p1
	if fourColor {
		pal[2] = color565.Color8888{
			R: uint8((2*uint16(p0.R) + uint16(p1.R)) / 3),
			G: uint8((2*uint16(p0.G) + uint16(p1.G)) / 3),
			B: uint8((2*uint16(p0.B) + uint16(p1.B)) / 3),
			A: 255,
		}
		pal[3] = color565.Color8888{
			R: uint8((uint16(p0.R) + 2*uint16(p1.R)) / 3),
			G: uint8((uint16(p0.G) + 2*uint16(p1.G)) / 3),
			B: uint8((uint16(p0.B) + 2*uint16(p1.B)) / 3),
			A: 255,
		}
	} else {
		pal[2] = color565.Color8888{
			R: uint8((uint16(p0.R) + uint16(p1.R)) / 2),
			G: uint8((uint16(p0.G) + uint16(p1.G)) / 2),
			B: uint8((uint16(p0.B) + uint16(p1.B)) / 2),
			A: 255,
		}
		pal[3] = color565.Color8888{} // transparent black
	}
	return pal
}

// decodeColorField fills the RGB channels of dst from an 8-byte BC1-style
// color field. alwaysFourColor forces 4-color interpolation regardless of
// endpoint ordering (BC2/BC3 behavior).
func decodeColorField(dst *Decoded4x4, field []byte, alwaysFourColor bool) {
	c0 := color565.FromRaw(binary.LittleEndian.Uint16(field[0:2]))
	c1 := color565.FromRaw(binary.LittleEndian.Uint16(field[2:4]))
	indices := binary.LittleEndian.Uint32(field[4:8])
	fourColor := alwaysFourColor || c0.Raw() > c1.Raw()
	pal := colorPalette(c0, c1, fourColor)
	for i := 0; i < 16; i++ {
		dst.Pixels[i] = pal[indices>>(uint(i)*2)&3]
	}
}

// DecodeBC1 decodes one 8-byte BC1 block.
func DecodeBC1(blk []byte) Decoded4x4 {
	var d Decoded4x4
	decodeColorField(&d, blk[0:8], false)
	return d
}

// DecodeBC2 decodes one 16-byte BC2 block. The color part always uses
// 4-color mode; the 4-bit explicit alpha values are widened by nibble
// replication.
func DecodeBC2(blk []byte) Decoded4x4 {
	var d Decoded4x4
	decodeColorField(&d, blk[8:16], true)
	for i := 0; i < 16; i++ {
		nib := blk[i/2] >> (uint(i%2) * 4) & 0x0F
		d.Pixels[i].A = nib<<4 | nib
	}
	return d
}

// alphaPalette builds the 8-entry interpolated alpha palette for a BC3
// block. a0 > a1 selects the 8-value ramp; otherwise a 6-value ramp plus
// literal 0 and 255.
func alphaPalette(a0, a1 uint8) [8]uint8 {
	var pal [8]uint8
	pal[0] = a0
	pal[1] = a1
	if a0 > a1 {
		for i := 1; i < 7; i++ {
			pal[i+1] = uint8((uint16(7-i)*uint16(a0) + uint16(i)*uint16(a1)) / 7)
		}
	} else {
		for i := 1; i < 5; i++ {
			pal[i+1] = uint8((uint16(5-i)*uint16(a0) + uint16(i)*uint16(a1)) / 5)
		}
		pal[6] = 0
		pal[7] = 255
	}
	return pal
}

// DecodeBC3 decodes one 16-byte BC3 block. The color part always uses
// 4-color mode; alpha comes from the interpolated 3-bit index stream.
func DecodeBC3(blk []byte) Decoded4x4 {
	var d Decoded4x4
	decodeColorField(&d, blk[8:16], true)

	pal := alphaPalette(blk[0], blk[1])
	// Sixteen 3-bit indices packed little-endian across 6 bytes.
	bits := uint64(binary.LittleEndian.Uint32(blk[2:6])) |
		uint64(binary.LittleEndian.Uint16(blk[6:8]))<<32
	for i := 0; i < 16; i++ {
		d.Pixels[i].A = pal[bits>>(uint(i)*3)&7]
	}
	return d
}
