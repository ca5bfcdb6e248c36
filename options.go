package sketch

// SurfaceOption configures a Surface during creation.
//
// Example:
//
//	s, err := sketch.NewSurface(800, 600,
//	    sketch.WithBackground(sketch.Transparent),
//	    sketch.WithHistoryLimit(20),
//	)
type SurfaceOption func(*surfaceOptions)

// surfaceOptions holds optional configuration for Surface creation.
type surfaceOptions struct {
	background   RGBA
	historyLimit int
	seed         uint64
	baseName     string
}

// DefaultHistoryLimit is the number of undo entries kept by default.
const DefaultHistoryLimit = 50

func defaultOptions() surfaceOptions {
	return surfaceOptions{
		background:   White,
		historyLimit: DefaultHistoryLimit,
		seed:         1,
		baseName:     "Background",
	}
}

// WithBackground sets the background color used to fill the base layer
// and to refill it on HardReset. JPEG export also flattens onto it.
func WithBackground(c RGBA) SurfaceOption {
	return func(o *surfaceOptions) {
		o.background = c
	}
}

// WithHistoryLimit bounds the undo stack. Values below 1 are ignored.
func WithHistoryLimit(n int) SurfaceOption {
	return func(o *surfaceOptions) {
		if n > 0 {
			o.historyLimit = n
		}
	}
}

// WithSeed seeds the random source used by diffuse tools so strokes can be
// replayed pixel for pixel.
func WithSeed(seed uint64) SurfaceOption {
	return func(o *surfaceOptions) {
		o.seed = seed
	}
}

// WithBaseName names the layer created with the surface.
func WithBaseName(name string) SurfaceOption {
	return func(o *surfaceOptions) {
		if name != "" {
			o.baseName = name
		}
	}
}
