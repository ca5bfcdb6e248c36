package sketch

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func exportSurface(t *testing.T, background RGBA) *Surface {
	t.Helper()
	s := newTestSurface(t, 32, 24, WithBackground(background))
	b := brushOf(Red, 2)
	b.FillShape = true
	s.DrawShape(ShapeRectangle, Pt(4, 4), Pt(20, 20), b)
	return s
}

func TestExportLossless(t *testing.T) {
	decoders := map[Format]func(*bytes.Reader) (image.Image, error){
		FormatPNG:  func(r *bytes.Reader) (image.Image, error) { return png.Decode(r) },
		FormatTIFF: func(r *bytes.Reader) (image.Image, error) { return tiff.Decode(r) },
		FormatBMP:  func(r *bytes.Reader) (image.Image, error) { return bmp.Decode(r) },
	}
	for f, decode := range decoders {
		t.Run(f.String(), func(t *testing.T) {
			s := exportSurface(t, Yellow)
			var buf bytes.Buffer
			if err := s.Export(&buf, f); err != nil {
				t.Fatalf("Export: %v", err)
			}
			img, err := decode(bytes.NewReader(buf.Bytes()))
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if img.Bounds().Dx() != 32 || img.Bounds().Dy() != 24 {
				t.Fatalf("bounds = %v", img.Bounds())
			}
			if got := FromImage(img); !got.Equal(s.Composite()) {
				t.Error("decoded image differs from composite")
			}
		})
	}
}

func TestExportJPEGFlattens(t *testing.T) {
	s := exportSurface(t, Transparent)
	var buf bytes.Buffer
	if err := s.Export(&buf, FormatJPEG); err != nil {
		t.Fatalf("Export: %v", err)
	}
	img, err := jpeg.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	// Transparent areas land on white.
	r, g, b, _ := img.At(28, 2).RGBA()
	if r>>8 < 240 || g>>8 < 240 || b>>8 < 240 {
		t.Errorf("flattened backdrop = %d,%d,%d, want near white", r>>8, g>>8, b>>8)
	}
	r, g, b, _ = img.At(12, 12).RGBA()
	if r>>8 < 200 || g>>8 > 60 || b>>8 > 60 {
		t.Errorf("red area = %d,%d,%d", r>>8, g>>8, b>>8)
	}
}

func TestExportSVG(t *testing.T) {
	s := exportSurface(t, Transparent)
	var buf bytes.Buffer
	if err := s.Export(&buf, FormatSVG); err != nil {
		t.Fatalf("Export: %v", err)
	}
	doc := buf.String()
	for _, want := range []string{"<svg", `width="32"`, `height="24"`, "data:image/png;base64,", "</svg>"} {
		if !strings.Contains(doc, want) {
			t.Errorf("svg missing %q", want)
		}
	}

	start := strings.Index(doc, "base64,") + len("base64,")
	end := strings.Index(doc[start:], `"`)
	raw, err := base64.StdEncoding.DecodeString(doc[start : start+end])
	if err != nil {
		t.Fatalf("embedded data: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("embedded png: %v", err)
	}
	if !FromImage(img).Equal(s.Composite()) {
		t.Error("embedded image differs from composite")
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestExportErrors(t *testing.T) {
	s := exportSurface(t, Transparent)
	if err := s.Export(&bytes.Buffer{}, Format(42)); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("unknown format error = %v", err)
	}
	if err := s.ExportSVG(failWriter{}); err == nil {
		t.Error("ExportSVG ignored write error")
	}
	if err := s.Export(failWriter{}, FormatPNG); err == nil {
		t.Error("Export ignored write error")
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"png", FormatPNG},
		{".JPG", FormatJPEG},
		{"jpeg", FormatJPEG},
		{"out/drawing.tif", FormatTIFF},
		{"scan.tiff", FormatTIFF},
		{"bmp", FormatBMP},
		{"card.svg", FormatSVG},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if err != nil || got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
			}
		})
	}
	if _, err := ParseFormat("drawing.webp"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("webp error = %v", err)
	}
}

func TestThumbnail(t *testing.T) {
	s := newTestSurface(t, 200, 100)
	tests := []struct {
		name       string
		maxW, maxH int
		wantW      int
		wantH      int
	}{
		{"width bound", 50, 50, 50, 25},
		{"height bound", 400, 20, 40, 20},
		{"already fits", 400, 400, 200, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := s.Thumbnail(tt.maxW, tt.maxH)
			if err != nil {
				t.Fatalf("Thumbnail: %v", err)
			}
			if img.Bounds().Dx() != tt.wantW || img.Bounds().Dy() != tt.wantH {
				t.Errorf("size = %v, want %dx%d", img.Bounds(), tt.wantW, tt.wantH)
			}
			if c := img.NRGBAAt(tt.wantW/2, tt.wantH/2); c.R != 255 || c.A != 255 {
				t.Errorf("center = %v, want white", c)
			}
		})
	}
	if _, err := s.Thumbnail(0, 10); !errors.Is(err, ErrEmptyThumbnail) {
		t.Errorf("zero bound error = %v", err)
	}
}
