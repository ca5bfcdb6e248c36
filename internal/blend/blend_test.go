package blend

import "testing"

func TestForOpaque(t *testing.T) {
	tests := []struct {
		name string
		mode Mode
		src  [4]byte
		dst  [4]byte
		want [4]byte
	}{
		{"normal red over white", ModeNormal, [4]byte{255, 0, 0, 255}, [4]byte{255, 255, 255, 255}, [4]byte{255, 0, 0, 255}},
		{"multiply gray gray", ModeMultiply, [4]byte{128, 128, 128, 255}, [4]byte{128, 128, 128, 255}, [4]byte{64, 64, 64, 255}},
		{"multiply black white", ModeMultiply, [4]byte{0, 0, 0, 255}, [4]byte{255, 255, 255, 255}, [4]byte{0, 0, 0, 255}},
		{"screen black over white", ModeScreen, [4]byte{0, 0, 0, 255}, [4]byte{255, 255, 255, 255}, [4]byte{255, 255, 255, 255}},
		{"screen black over black", ModeScreen, [4]byte{0, 0, 0, 255}, [4]byte{0, 0, 0, 255}, [4]byte{0, 0, 0, 255}},
		{"darken", ModeDarken, [4]byte{200, 10, 100, 255}, [4]byte{100, 50, 100, 255}, [4]byte{100, 10, 100, 255}},
		{"lighten", ModeLighten, [4]byte{200, 10, 100, 255}, [4]byte{100, 50, 100, 255}, [4]byte{200, 50, 100, 255}},
		{"difference white white", ModeDifference, [4]byte{255, 255, 255, 255}, [4]byte{255, 255, 255, 255}, [4]byte{0, 0, 0, 255}},
		{"difference", ModeDifference, [4]byte{50, 200, 0, 255}, [4]byte{100, 100, 0, 255}, [4]byte{50, 100, 0, 255}},
		{"exclusion black", ModeExclusion, [4]byte{0, 0, 0, 255}, [4]byte{90, 90, 90, 255}, [4]byte{90, 90, 90, 255}},
		{"overlay over black", ModeOverlay, [4]byte{255, 255, 255, 255}, [4]byte{0, 0, 0, 255}, [4]byte{0, 0, 0, 255}},
		{"hard light white", ModeHardLight, [4]byte{255, 255, 255, 255}, [4]byte{128, 128, 128, 255}, [4]byte{255, 255, 255, 255}},
		{"color dodge white", ModeColorDodge, [4]byte{255, 255, 255, 255}, [4]byte{10, 10, 10, 255}, [4]byte{255, 255, 255, 255}},
		{"color burn black", ModeColorBurn, [4]byte{0, 0, 0, 255}, [4]byte{10, 10, 10, 255}, [4]byte{0, 0, 0, 255}},
		{"soft light black over white", ModeSoftLight, [4]byte{0, 0, 0, 255}, [4]byte{255, 255, 255, 255}, [4]byte{255, 255, 255, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, d := tt.src, tt.dst
			r, g, b, a := For(tt.mode)(s[0], s[1], s[2], s[3], d[0], d[1], d[2], d[3])
			got := [4]byte{r, g, b, a}
			if got != tt.want {
				t.Errorf("For(%d) = %v, want %v", tt.mode, got, tt.want)
			}
		})
	}
}

func TestSeparableTransparentSource(t *testing.T) {
	for m := ModeNormal; m < modeCount; m++ {
		r, g, b, a := For(m)(0, 0, 0, 0, 10, 20, 30, 255)
		if r != 10 || g != 20 || b != 30 || a != 255 {
			t.Errorf("mode %d: transparent source changed destination to (%d,%d,%d,%d)", m, r, g, b, a)
		}
	}
}

func TestSeparableTransparentDestination(t *testing.T) {
	for m := ModeMultiply; m < modeCount; m++ {
		r, g, b, a := For(m)(40, 50, 60, 128, 0, 0, 0, 0)
		if r != 40 || g != 50 || b != 60 || a != 128 {
			t.Errorf("mode %d: got (%d,%d,%d,%d), want source", m, r, g, b, a)
		}
	}
}

func TestDestinationOut(t *testing.T) {
	r, g, b, a := DestinationOut(255, 0, 0, 255, 100, 100, 100, 255)
	if r != 0 || g != 0 || b != 0 || a != 0 {
		t.Errorf("opaque erase = (%d,%d,%d,%d), want zero", r, g, b, a)
	}

	_, _, _, a = DestinationOut(0, 0, 0, 128, 255, 255, 255, 255)
	if a != 127 {
		t.Errorf("half erase alpha = %d, want 127", a)
	}
}

func TestValid(t *testing.T) {
	if !ModeExclusion.Valid() {
		t.Error("ModeExclusion should be valid")
	}
	if Mode(200).Valid() {
		t.Error("Mode(200) should be invalid")
	}
}

func TestLayerHalfOpacity(t *testing.T) {
	dst := []byte{255, 255, 255, 255}
	src := []byte{255, 0, 0, 255}

	Layer(dst, src, ModeNormal, 128)

	want := []byte{255, 127, 127, 255}
	for i := range want {
		if diff := int(dst[i]) - int(want[i]); diff < -1 || diff > 1 {
			t.Fatalf("Layer() = %v, want ~%v", dst, want)
		}
	}
}

func TestLayerZeroOpacity(t *testing.T) {
	dst := []byte{1, 2, 3, 4}
	Layer(dst, []byte{255, 255, 255, 255}, ModeNormal, 0)
	if dst[0] != 1 || dst[3] != 4 {
		t.Errorf("zero opacity modified destination: %v", dst)
	}
}

func TestPremultiplyRoundTrip(t *testing.T) {
	tests := [][4]byte{
		{255, 0, 0, 255},
		{0, 0, 0, 0},
		{200, 100, 50, 128},
		{255, 255, 255, 1},
	}
	for _, c := range tests {
		pr, pg, pb, pa := Premultiply(c[0], c[1], c[2], c[3])
		r, g, b, a := Unpremultiply(pr, pg, pb, pa)
		if a != c[3] {
			t.Errorf("alpha changed for %v: %d", c, a)
		}
		if c[3] >= 128 {
			for i, v := range [3]byte{r, g, b} {
				if d := int(v) - int(c[i]); d < -2 || d > 2 {
					t.Errorf("round trip %v channel %d = %d", c, i, v)
				}
			}
		}
	}
}

func TestPixel(t *testing.T) {
	p := []byte{0, 0, 255, 255}
	Pixel(p, 255, 0, 0, 255, SourceOver)
	if p[0] != 255 || p[2] != 0 {
		t.Errorf("Pixel() = %v, want red", p)
	}

	Pixel(p, 0, 0, 0, 0, SourceOver)
	if p[0] != 255 {
		t.Errorf("zero alpha Pixel() changed destination: %v", p)
	}
}

func BenchmarkLayerNormal(b *testing.B) {
	dst := make([]byte, 256*256*4)
	src := make([]byte, 256*256*4)
	for i := range src {
		src[i] = byte(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Layer(dst, src, ModeNormal, 200)
	}
}
