package sketch

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"math"
	"path/filepath"
	"strings"

	svg "github.com/ajstarks/svgo"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"

	"github.com/gogpu/sketch/internal/blend"
)

// Format is an export encoding.
type Format uint8

// Export formats.
const (
	FormatPNG Format = iota
	FormatJPEG
	FormatTIFF
	FormatBMP
	FormatSVG
)

// JPEGQuality is the quality used for JPEG export.
const JPEGQuality = 92

func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatJPEG:
		return "jpeg"
	case FormatTIFF:
		return "tiff"
	case FormatBMP:
		return "bmp"
	case FormatSVG:
		return "svg"
	default:
		return fmt.Sprintf("Format(%d)", f)
	}
}

// ParseFormat maps a format name, extension, or file name to a Format.
// "png", ".png", and "out/drawing.png" all yield FormatPNG.
func ParseFormat(name string) (Format, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if ext := filepath.Ext(key); ext != "" {
		key = ext
	}
	switch strings.TrimPrefix(key, ".") {
	case "png":
		return FormatPNG, nil
	case "jpg", "jpeg":
		return FormatJPEG, nil
	case "tif", "tiff":
		return FormatTIFF, nil
	case "bmp":
		return FormatBMP, nil
	case "svg":
		return FormatSVG, nil
	}
	return FormatPNG, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Export encodes the composite in the given format.
func (s *Surface) Export(w io.Writer, f Format) error {
	img := s.Composite().ToImage()
	var err error
	switch f {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatJPEG:
		err = jpeg.Encode(w, s.flattened(), &jpeg.Options{Quality: JPEGQuality})
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatSVG:
		return s.ExportSVG(w)
	default:
		return fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
	if err != nil {
		return fmt.Errorf("sketch: encode %v: %w", f, err)
	}
	return nil
}

// flattened returns the composite over an opaque backdrop: the background
// color when it is opaque, white otherwise.
func (s *Surface) flattened() *image.NRGBA {
	backdrop := s.background
	if backdrop.A < 1 {
		backdrop = White
	}
	pm := NewPixmap(s.width, s.height)
	pm.Clear(backdrop)
	blend.Layer(pm.data, s.Composite().data, blend.ModeNormal, 255)
	return pm.ToImage()
}

// ExportSVG writes a minimal SVG document that embeds the composite as a
// base64 PNG image.
func (s *Surface) ExportSVG(w io.Writer) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, s.Composite().ToImage()); err != nil {
		return fmt.Errorf("sketch: encode svg image: %w", err)
	}
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(s.width, s.height)
	canvas.Image(0, 0, s.width, s.height, "data:image/png;base64,"+base64.StdEncoding.EncodeToString(buf.Bytes()))
	canvas.End()
	if ew.err != nil {
		return fmt.Errorf("sketch: write svg: %w", ew.err)
	}
	return nil
}

// errWriter keeps the first write error; svg.SVG discards them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

// Thumbnail returns the composite scaled down with Catmull-Rom filtering to
// fit within maxWidth x maxHeight, preserving aspect ratio. Surfaces that
// already fit are returned at full size.
func (s *Surface) Thumbnail(maxWidth, maxHeight int) (*image.NRGBA, error) {
	if maxWidth <= 0 || maxHeight <= 0 {
		return nil, ErrEmptyThumbnail
	}
	src := s.Composite().ToImage()
	scale := math.Min(1, math.Min(float64(maxWidth)/float64(s.width), float64(maxHeight)/float64(s.height)))
	w := max(1, int(math.Round(float64(s.width)*scale)))
	h := max(1, int(math.Round(float64(s.height)*scale)))
	if w == s.width && h == s.height {
		return src, nil
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst, nil
}
