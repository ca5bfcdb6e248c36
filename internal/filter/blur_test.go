package filter

import "testing"

func TestBlurUniform(t *testing.T) {
	pix := solid(16, 16, 100, 150, 200, 255)
	Blur(pix, 16, 16, 3)

	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			c := at(pix, 16, x, y)
			if !near(c[0], 100, 1) || !near(c[1], 150, 1) || !near(c[2], 200, 1) || !near(c[3], 255, 1) {
				t.Fatalf("pixel (%d,%d) = %v, want ~[100 150 200 255]", x, y, c)
			}
		}
	}
}

func TestBlurZeroRadius(t *testing.T) {
	pix := solid(4, 4, 0, 0, 0, 0)
	set(pix, 4, 1, 1, 255, 0, 0, 255)
	Blur(pix, 4, 4, 0)

	if c := at(pix, 4, 1, 1); c != [4]byte{255, 0, 0, 255} {
		t.Errorf("zero radius changed pixel: %v", c)
	}
}

func TestBlurSpreadsWithoutDarkening(t *testing.T) {
	pix := solid(9, 9, 0, 0, 0, 0)
	set(pix, 9, 4, 4, 255, 0, 0, 255)
	Blur(pix, 9, 9, 1)

	center := at(pix, 9, 4, 4)
	if center[3] >= 255 {
		t.Errorf("center alpha = %d, want < 255 after blur", center[3])
	}

	n := at(pix, 9, 5, 4)
	if n[3] == 0 {
		t.Fatal("neighbor alpha = 0, want spread")
	}
	if !near(n[0], 255, 2) || n[1] != 0 || n[2] != 0 {
		t.Errorf("neighbor color = %v, want red (premultiplied blur)", n)
	}
}

func TestBlurAlpha(t *testing.T) {
	a := make([]byte, 25)
	a[12] = 255
	BlurAlpha(a, 5, 5, 1)

	if a[12] == 255 || a[12] == 0 {
		t.Errorf("center = %d, want partial", a[12])
	}
	if a[13] == 0 || a[7] == 0 {
		t.Errorf("neighbors not spread: %v", a)
	}
	if a[13] != a[11] || a[7] != a[17] {
		t.Errorf("blur not symmetric: %v", a)
	}
}

func TestBlurRadiusCapped(t *testing.T) {
	huge := solid(5, 5, 0, 0, 0, 0)
	set(huge, 5, 2, 2, 255, 0, 0, 255)
	capped := solid(5, 5, 0, 0, 0, 0)
	set(capped, 5, 2, 2, 255, 0, 0, 255)

	Blur(huge, 5, 5, 1e12)
	Blur(capped, 5, 5, MaxRadius(5, 5))
	for i := range huge {
		if huge[i] != capped[i] {
			t.Fatalf("byte %d = %d, want %d", i, huge[i], capped[i])
		}
	}

	a := make([]byte, 9)
	a[4] = 255
	BlurAlpha(a, 3, 3, 1e12)
	if a[0] == 0 {
		t.Errorf("BlurAlpha did not spread: %v", a)
	}
}

func TestMaxRadius(t *testing.T) {
	tests := []struct {
		w, h int
		want float64
	}{
		{30, 12, 10},
		{12, 30, 10},
		{1, 1, 1},
	}
	for _, tt := range tests {
		if got := MaxRadius(tt.w, tt.h); got != tt.want {
			t.Errorf("MaxRadius(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}

func BenchmarkBlur(b *testing.B) {
	pix := solid(256, 256, 10, 20, 30, 255)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Blur(pix, 256, 256, 4)
	}
}
