package bc3

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/deepteams/bcn/internal/block"
	"github.com/deepteams/bcn/internal/color565"
)

// generateTestData builds deterministic BC3 blocks with distinct byte
// ranges per field so plane layout mistakes show up immediately.
func generateTestData(numBlocks int) []byte {
	data := make([]byte, numBlocks*BlockSize)
	for k := 0; k < numBlocks; k++ {
		b := data[k*16:]
		b[0] = 0x10 + byte(k*2)
		b[1] = 0x11 + byte(k*2)
		for i := 0; i < 6; i++ {
			b[2+i] = 0x40 + byte(k*6+i)
		}
		for i := 0; i < 4; i++ {
			b[8+i] = byte(k*4 + i)
			b[12+i] = 0x80 + byte(k*4+i)
		}
	}
	return data
}

func TestSplit_PlaneLayout(t *testing.T) {
	src := generateTestData(2)
	dst := make([]byte, len(src))
	Split(dst, src)
	want := []byte{
		0x10, 0x11, 0x12, 0x13, // alpha endpoints
		0x40, 0x41, 0x42, 0x43, 0x44, 0x45, // alpha indices block 0
		0x46, 0x47, 0x48, 0x49, 0x4A, 0x4B, // alpha indices block 1
		0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, // colors
		0x80, 0x81, 0x82, 0x83, 0x84, 0x85, 0x86, 0x87, // indices
	}
	if !bytes.Equal(dst, want) {
		t.Errorf("Split = % x\nwant    % x", dst, want)
	}
}

func TestSplitVariants_Equivalence(t *testing.T) {
	src := generateTestData(101)
	refOut := make([]byte, len(src))
	wideOut := make([]byte, len(src))
	splitRef(refOut, src)
	splitWide(wideOut, src)
	if !bytes.Equal(refOut, wideOut) {
		t.Error("splitWide differs from splitRef")
	}
	refBack := make([]byte, len(src))
	wideBack := make([]byte, len(src))
	unsplitRef(refBack, refOut)
	unsplitWide(wideBack, refOut)
	if !bytes.Equal(refBack, wideBack) {
		t.Error("unsplitWide differs from unsplitRef")
	}
	if !bytes.Equal(refBack, src) {
		t.Error("unsplitRef(splitRef(x)) != x")
	}
}

func TestTransform_RoundtripAllSettings(t *testing.T) {
	for _, v := range color565.Variants {
		for _, split := range []bool{false, true} {
			for _, blocks := range []int{0, 1, 2, 5, 33, 256} {
				src := make([]byte, blocks*BlockSize)
				rng := rand.New(rand.NewSource(int64(blocks) + 200))
				rng.Read(src)
				dst := make([]byte, len(src))
				Transform(dst, src, v, split)
				back := make([]byte, len(src))
				Untransform(back, dst, v, split)
				if !bytes.Equal(back, src) {
					t.Fatalf("variant=%v split=%v blocks=%d: roundtrip mismatch", v, split, blocks)
				}
			}
		}
	}
}

// uniformAlphaBlock returns a BC3 block with A0=A1=alpha, zero alpha
// indices, and a solid red color part.
func uniformAlphaBlock(alpha byte) []byte {
	blk := make([]byte, 16)
	blk[0], blk[1] = alpha, alpha
	blk[8], blk[9] = 0x00, 0xF8
	return blk
}

func TestNormalizeAlpha_CanonicalForms(t *testing.T) {
	src := uniformAlphaBlock(0xFF)
	tests := []struct {
		name string
		mode AlphaNormalizeMode
		want []byte
	}{
		{"UniformZeroIndices", AlphaNormalizeUniformZeroIndices,
			[]byte{0xFF, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}},
		{"OpaqueFillAll", AlphaNormalizeOpaqueFillAll,
			[]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}},
		{"OpaqueZeroMaxIndices", AlphaNormalizeOpaqueZeroMaxIndices,
			[]byte{0x00, 0x00, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := make([]byte, 16)
			Normalize(dst, src, tt.mode, NormalizeNone)
			if !bytes.Equal(dst[:8], tt.want) {
				t.Errorf("alpha part = % x, want % x", dst[:8], tt.want)
			}
			// Every canonical form must still decode to alpha 255.
			d := block.DecodeBC3(dst)
			for i, p := range d.Pixels {
				if p.A != 255 {
					t.Fatalf("pixel %d alpha = %d after normalization", i, p.A)
				}
			}
		})
	}
}

func TestNormalizeAlpha_NonOpaqueFallback(t *testing.T) {
	src := uniformAlphaBlock(0x80)
	want := []byte{0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
	for _, mode := range []AlphaNormalizeMode{
		AlphaNormalizeOpaqueFillAll, AlphaNormalizeOpaqueZeroMaxIndices,
	} {
		dst := make([]byte, 16)
		Normalize(dst, src, mode, NormalizeNone)
		if !bytes.Equal(dst[:8], want) {
			t.Errorf("mode=%d: alpha part = % x, want fallback % x", mode, dst[:8], want)
		}
		d := block.DecodeBC3(dst)
		for i, p := range d.Pixels {
			if p.A != 0x80 {
				t.Fatalf("mode=%d: pixel %d alpha = %d, want 0x80", mode, i, p.A)
			}
		}
	}
}

func TestNormalizeAlpha_MixedAlphaPassthrough(t *testing.T) {
	blk := make([]byte, 16)
	blk[0], blk[1] = 0xFF, 0x00 // 8-value ramp
	blk[2] = 0x08               // pixel 0 -> index 0, pixel 1 -> index 1
	dst := make([]byte, 16)
	Normalize(dst, blk, AlphaNormalizeUniformZeroIndices, NormalizeNone)
	if !bytes.Equal(dst[:8], blk[:8]) {
		t.Errorf("mixed alpha part altered: % x", dst[:8])
	}
}

func TestNormalizeColor_IndependentOfAlpha(t *testing.T) {
	src := uniformAlphaBlock(0x42)
	dst := make([]byte, 16)
	Normalize(dst, src, AlphaNormalizeNone, NormalizeColor0Only)
	if !bytes.Equal(dst[:8], src[:8]) {
		t.Errorf("alpha part altered with AlphaNormalizeNone: % x", dst[:8])
	}
	if want := []byte{0x00, 0xF8, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}; !bytes.Equal(dst[8:], want) {
		t.Errorf("color part = % x, want % x", dst[8:], want)
	}
}

func TestNormalize_InPlace(t *testing.T) {
	src := append(uniformAlphaBlock(0xFF), generateTestData(3)...)
	want := make([]byte, len(src))
	Normalize(want, src, AlphaNormalizeOpaqueFillAll, NormalizeReplicateColor)
	buf := append([]byte(nil), src...)
	Normalize(buf, buf, AlphaNormalizeOpaqueFillAll, NormalizeReplicateColor)
	if !bytes.Equal(buf, want) {
		t.Error("in-place normalization differs from out-of-place")
	}
}

func TestNormalizeAllModes_MatchesPerMode(t *testing.T) {
	src := append(generateTestData(3), uniformAlphaBlock(0xFF)...)
	var dsts [NumAlphaNormalizeModes][NumNormalizeModes][]byte
	for ai := range dsts {
		for ci := range dsts[ai] {
			dsts[ai][ci] = make([]byte, len(src))
		}
	}
	NormalizeAllModes(&dsts, src)
	for ai, alphaMode := range AlphaNormalizeModes {
		for ci, colorMode := range NormalizeModes {
			want := make([]byte, len(src))
			Normalize(want, src, alphaMode, colorMode)
			if !bytes.Equal(dsts[ai][ci], want) {
				t.Errorf("alpha=%d color=%d: fan-out differs from Normalize", alphaMode, colorMode)
			}
		}
	}
}
