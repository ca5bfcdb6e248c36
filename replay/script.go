package replay

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/sketch"
)

// Script is a recorded drawing session.
type Script struct {
	Width      int      `yaml:"width"`
	Height     int      `yaml:"height"`
	Background string   `yaml:"background,omitempty"`
	Seed       uint64   `yaml:"seed,omitempty"`
	Actions    []Action `yaml:"actions"`
}

// Decode reads a YAML script. Unknown fields are rejected.
func Decode(r io.Reader) (*Script, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var s Script
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("replay: decode script: %w", err)
	}
	return &s, nil
}

// Load reads a YAML script from a file.
func Load(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Encode writes the script as YAML.
func (s *Script) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("replay: encode script: %w", err)
	}
	return enc.Close()
}

// NewSurface creates a surface sized and seeded for the script.
// Extra options are applied after the script's own settings.
func (s *Script) NewSurface(opts ...sketch.SurfaceOption) (*sketch.Surface, error) {
	var base []sketch.SurfaceOption
	if s.Background != "" {
		c, err := sketch.ParseHex(s.Background)
		if err != nil {
			return nil, fmt.Errorf("%w: background: %w", ErrInvalidAction, err)
		}
		base = append(base, sketch.WithBackground(c))
	}
	if s.Seed != 0 {
		base = append(base, sketch.WithSeed(s.Seed))
	}
	return sketch.NewSurface(s.Width, s.Height, append(base, opts...)...)
}
