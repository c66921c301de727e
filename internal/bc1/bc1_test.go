package bc1

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/deepteams/bcn/internal/block"
	"github.com/deepteams/bcn/internal/color565"
)

// generateTestData builds deterministic BC1 blocks: color bytes count up
// from 0, index bytes from 128, four per block.
func generateTestData(numBlocks int) []byte {
	data := make([]byte, numBlocks*BlockSize)
	colorByte := byte(0)
	indexByte := byte(128)
	for k := 0; k < numBlocks; k++ {
		for i := 0; i < 4; i++ {
			data[k*8+i] = colorByte + byte(i)
			data[k*8+4+i] = indexByte + byte(i)
		}
		colorByte += 4
		indexByte += 4
	}
	return data
}

func TestGenerateTestData(t *testing.T) {
	want := []byte{
		0x00, 0x01, 0x02, 0x03, 0x80, 0x81, 0x82, 0x83,
		0x04, 0x05, 0x06, 0x07, 0x84, 0x85, 0x86, 0x87,
		0x08, 0x09, 0x0A, 0x0B, 0x88, 0x89, 0x8A, 0x8B,
	}
	if got := generateTestData(3); !bytes.Equal(got, want) {
		t.Errorf("generateTestData(3) = % x, want % x", got, want)
	}
}

func TestSplit_PlaneLayout(t *testing.T) {
	src := generateTestData(3)
	dst := make([]byte, len(src))
	Split(dst, src)
	want := []byte{
		0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0A, 0x0B,
		0x80, 0x81, 0x82, 0x83, 0x84, 0x85, 0x86, 0x87, 0x88, 0x89, 0x8A, 0x8B,
	}
	if !bytes.Equal(dst, want) {
		t.Errorf("Split = % x\nwant    % x", dst, want)
	}
}

func TestTransform_RoundtripAllSettings(t *testing.T) {
	sizes := []int{0, 1, 2, 3, 7, 16, 65, 640}
	for _, v := range color565.Variants {
		for _, split := range []bool{false, true} {
			for _, blocks := range sizes {
				src := generateTestData(blocks)
				rng := rand.New(rand.NewSource(int64(blocks)))
				if blocks > 4 {
					rng.Read(src) // mix in arbitrary bytes too
				}
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

func TestTransform_SplitColourLayout(t *testing.T) {
	src := generateTestData(2)
	dst := make([]byte, len(src))
	Transform(dst, src, color565.VariantNone, true)
	want := []byte{
		0x00, 0x01, 0x04, 0x05, // color0 stream
		0x02, 0x03, 0x06, 0x07, // color1 stream
		0x80, 0x81, 0x82, 0x83, 0x84, 0x85, 0x86, 0x87, // indices
	}
	if !bytes.Equal(dst, want) {
		t.Errorf("split-colour layout = % x\nwant % x", dst, want)
	}
}

func TestTransform_DecorrelateMatchesBatch(t *testing.T) {
	// The fused split+decorrelate kernel must agree with doing the steps
	// separately.
	src := generateTestData(37)
	for _, v := range []color565.Variant{color565.Variant1, color565.Variant2, color565.Variant3} {
		fused := make([]byte, len(src))
		Transform(fused, src, v, false)

		staged := make([]byte, len(src))
		Split(staged, src)
		color565.DecorrelateSlice(staged[:len(src)/2], staged[:len(src)/2], v)
		if !bytes.Equal(fused, staged) {
			t.Fatalf("%v: fused kernel differs from staged pipeline", v)
		}
	}
}

func TestSplitVariants_Equivalence(t *testing.T) {
	src := generateTestData(131) // odd count exercises the wide kernels' tails
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

func TestNormalize_SolidRed(t *testing.T) {
	src := []byte{0x00, 0xF8, 0x01, 0x01, 0x00, 0x00, 0x00, 0x00}

	dst := make([]byte, 8)
	Normalize(dst, src, NormalizeColor0Only)
	if want := []byte{0x00, 0xF8, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}; !bytes.Equal(dst, want) {
		t.Errorf("Color0Only = % x, want % x", dst, want)
	}

	Normalize(dst, src, NormalizeReplicateColor)
	if want := []byte{0x00, 0xF8, 0x00, 0xF8, 0x00, 0x00, 0x00, 0x00}; !bytes.Equal(dst, want) {
		t.Errorf("ReplicateColor = % x, want % x", dst, want)
	}
}

func TestNormalize_Transparent(t *testing.T) {
	src := []byte{0x00, 0x80, 0x00, 0xF8, 0xFF, 0xFF, 0xFF, 0xFF}
	for _, mode := range []NormalizeMode{NormalizeColor0Only, NormalizeReplicateColor} {
		dst := make([]byte, 8)
		Normalize(dst, src, mode)
		if want := bytes.Repeat([]byte{0xFF}, 8); !bytes.Equal(dst, want) {
			t.Errorf("mode=%d: % x, want all FF", mode, dst)
		}
	}
}

func TestNormalize_MixedBlockPassthrough(t *testing.T) {
	// Black/white endpoints with all four indices in use.
	src := []byte{0xFF, 0xFF, 0x00, 0x00, 0xE4, 0xE4, 0xE4, 0xE4}
	dst := make([]byte, 8)
	Normalize(dst, src, NormalizeColor0Only)
	if !bytes.Equal(dst, src) {
		t.Errorf("mixed block was altered: % x", dst)
	}
}

func TestNormalize_NonRoundtrippablePassthrough(t *testing.T) {
	// Punch-through mode, all pixels from palette entry 2 = (c0+c1)/2.
	// Blue 24 and blue 33 average to 28, which does not exist exactly in
	// RGB565, so the block must pass through unchanged.
	src := []byte{0x03, 0x00, 0x04, 0x00, 0xAA, 0xAA, 0xAA, 0xAA}
	dst := make([]byte, 8)
	Normalize(dst, src, NormalizeColor0Only)
	if !bytes.Equal(dst, src) {
		t.Errorf("non-roundtrippable block was altered: % x", dst)
	}
}

func TestNormalize_NoneCopies(t *testing.T) {
	src := generateTestData(5)
	dst := make([]byte, len(src))
	Normalize(dst, src, NormalizeNone)
	if !bytes.Equal(dst, src) {
		t.Error("NormalizeNone must copy verbatim")
	}
}

func TestNormalize_InPlace(t *testing.T) {
	src := append(
		[]byte{0x00, 0xF8, 0x01, 0x01, 0x00, 0x00, 0x00, 0x00},    // solid red
		[]byte{0x00, 0x80, 0x00, 0xF8, 0xFF, 0xFF, 0xFF, 0xFF}..., // transparent
	)
	want := make([]byte, len(src))
	Normalize(want, src, NormalizeColor0Only)

	buf := append([]byte(nil), src...)
	Normalize(buf, buf, NormalizeColor0Only)
	if !bytes.Equal(buf, want) {
		t.Errorf("in-place result % x, want % x", buf, want)
	}
}

func TestNormalize_DecodePreserved(t *testing.T) {
	// Canonicalization must not change what the block decodes to.
	blocks := [][]byte{
		{0x00, 0xF8, 0x01, 0x01, 0x00, 0x00, 0x00, 0x00}, // solid red
		{0x00, 0x80, 0x00, 0xF8, 0xFF, 0xFF, 0xFF, 0xFF}, // transparent
		{0xFF, 0xFF, 0x00, 0x00, 0xE4, 0xE4, 0xE4, 0xE4}, // mixed
	}
	for _, mode := range []NormalizeMode{NormalizeColor0Only, NormalizeReplicateColor} {
		for i, src := range blocks {
			dst := make([]byte, 8)
			Normalize(dst, src, mode)
			before := decodePixels(src)
			after := decodePixels(dst)
			if before != after {
				t.Errorf("mode=%d block=%d: decode changed by normalization", mode, i)
			}
		}
	}
}

func TestNormalize_CanonicalFormStability(t *testing.T) {
	// Two different encodings of solid red must normalize identically.
	// 0xF800 in both endpoints, indices all 1 (select color1).
	a := []byte{0x00, 0xF8, 0x01, 0x01, 0x00, 0x00, 0x00, 0x00}
	b := []byte{0x00, 0xF8, 0x00, 0xF8, 0x55, 0x55, 0x55, 0x55}
	for _, mode := range []NormalizeMode{NormalizeColor0Only, NormalizeReplicateColor} {
		na := make([]byte, 8)
		nb := make([]byte, 8)
		Normalize(na, a, mode)
		Normalize(nb, b, mode)
		if !bytes.Equal(na, nb) {
			t.Errorf("mode=%d: canonical forms differ: % x vs % x", mode, na, nb)
		}
	}
}

func TestNormalizeAllModes_MatchesPerMode(t *testing.T) {
	src := append(generateTestData(4),
		0x00, 0xF8, 0x01, 0x01, 0x00, 0x00, 0x00, 0x00, // solid red
		0x00, 0x80, 0x00, 0xF8, 0xFF, 0xFF, 0xFF, 0xFF, // transparent
	)
	var dsts [NumNormalizeModes][]byte
	for i := range dsts {
		dsts[i] = make([]byte, len(src))
	}
	NormalizeAllModes(&dsts, src)
	for i, mode := range NormalizeModes {
		want := make([]byte, len(src))
		Normalize(want, src, mode)
		if !bytes.Equal(dsts[i], want) {
			t.Errorf("mode=%d: fan-out output differs from Normalize", mode)
		}
	}
}

func TestNormalizeSplit_MatchesUnsplitPath(t *testing.T) {
	src := append(generateTestData(3),
		0x00, 0xF8, 0x01, 0x01, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x80, 0x00, 0xF8, 0xFF, 0xFF, 0xFF, 0xFF,
	)
	for _, mode := range NormalizeModes {
		// Reference: normalize then split.
		norm := make([]byte, len(src))
		Normalize(norm, src, mode)
		want := make([]byte, len(src))
		Split(want, norm)

		// Split first, then normalize the planes in place.
		got := make([]byte, len(src))
		Split(got, src)
		half := len(src) / 2
		NormalizeSplit(got[:half], got[half:], mode)

		if !bytes.Equal(got, want) {
			t.Errorf("mode=%d: split-plane normalization differs", mode)
		}
	}
}

// decodePixels returns a comparable snapshot of a block's decoded pixels.
func decodePixels(blk []byte) [16]color565.Color8888 {
	d := block.DecodeBC1(blk)
	return d.Pixels
}
