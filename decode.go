package bcn

import (
	"github.com/deepteams/bcn/internal/block"
)

// RGBA is one decoded pixel.
type RGBA struct {
	R, G, B, A uint8
}

func pixelsOf(d block.Decoded4x4) [16]RGBA {
	var out [16]RGBA
	for i, p := range d.Pixels {
		out[i] = RGBA{p.R, p.G, p.B, p.A}
	}
	return out
}

// DecodeBC1Block decodes one 8-byte BC1 block into its 16 pixels,
// row-major. Intended for analysis tooling; the transforms never decode
// pixels outside normalization.
func DecodeBC1Block(blk []byte) ([16]RGBA, error) {
	if len(blk) != BC1BlockSize {
		return [16]RGBA{}, ErrInvalidLength
	}
	return pixelsOf(block.DecodeBC1(blk)), nil
}

// DecodeBC2Block decodes one 16-byte BC2 block into its 16 pixels.
func DecodeBC2Block(blk []byte) ([16]RGBA, error) {
	if len(blk) != BC2BlockSize {
		return [16]RGBA{}, ErrInvalidLength
	}
	return pixelsOf(block.DecodeBC2(blk)), nil
}

// DecodeBC3Block decodes one 16-byte BC3 block into its 16 pixels.
func DecodeBC3Block(blk []byte) ([16]RGBA, error) {
	if len(blk) != BC3BlockSize {
		return [16]RGBA{}, ErrInvalidLength
	}
	return pixelsOf(block.DecodeBC3(blk)), nil
}
