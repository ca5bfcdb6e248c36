package filter

import "testing"

func TestConvolveSharpenUniform(t *testing.T) {
	pix := solid(5, 5, 90, 120, 150, 255)
	Convolve3x3(pix, 5, 5, Sharpen)

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if c := at(pix, 5, x, y); c != [4]byte{90, 120, 150, 255} {
				t.Fatalf("pixel (%d,%d) = %v, want unchanged", x, y, c)
			}
		}
	}
}

func TestConvolveReadsUnmodifiedCopy(t *testing.T) {
	pix := solid(5, 5, 100, 100, 100, 255)
	set(pix, 5, 2, 2, 120, 120, 120, 255)
	Convolve3x3(pix, 5, 5, Sharpen)

	// 5*120 - 4*100
	if c := at(pix, 5, 2, 2); c[0] != 200 {
		t.Errorf("center = %d, want 200", c[0])
	}
	// 5*100 - 120 - 3*100
	if c := at(pix, 5, 1, 2); c[0] != 80 {
		t.Errorf("left neighbor = %d, want 80", c[0])
	}
}

func TestConvolvePreservesAlpha(t *testing.T) {
	pix := solid(3, 3, 50, 50, 50, 77)
	Convolve3x3(pix, 3, 3, Sharpen)
	for i := 3; i < len(pix); i += 4 {
		if pix[i] != 77 {
			t.Fatalf("alpha at %d = %d, want 77", i, pix[i])
		}
	}
}
