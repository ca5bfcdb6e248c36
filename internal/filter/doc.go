// Package filter implements whole-buffer image filters for sketch layers.
//
// Filters operate in place on straight-alpha RGBA byte buffers (4 bytes per
// pixel, row-major, no padding):
//   - Gaussian blur (separable, premultiplied to avoid dark fringes)
//   - 3x3 convolution (sharpen) reading from a private copy of the input
//   - Per-pixel color transforms (grayscale, sepia, contrast, ...)
package filter
