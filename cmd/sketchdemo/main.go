// Command sketchdemo draws a demo picture with the sketch engine, or replays
// a recorded YAML script, and exports the result.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/replay"
)

func main() {
	var (
		width   = flag.Int("width", 800, "surface width (ignored with -script)")
		height  = flag.Int("height", 600, "surface height (ignored with -script)")
		script  = flag.String("script", "", "YAML script to replay instead of the built-in demo")
		output  = flag.String("output", "demo.png", "output file; the extension selects the format")
		seed    = flag.Uint64("seed", 1, "random seed for diffuse tools")
		verbose = flag.Bool("verbose", false, "log engine activity to stderr")
	)
	flag.Parse()

	if *verbose {
		sketch.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, *script, *width, *height, *seed, *output); err != nil {
		log.Fatalf("sketchdemo: %v", err)
	}
	log.Printf("Drawing saved to %s\n", *output)
}

func run(ctx context.Context, scriptPath string, width, height int, seed uint64, output string) error {
	format, err := sketch.ParseFormat(output)
	if err != nil {
		return err
	}

	var sc *replay.Script
	if scriptPath != "" {
		if sc, err = replay.Load(scriptPath); err != nil {
			return err
		}
	} else {
		sc = demoScript(width, height, seed)
	}

	s, err := sc.NewSurface(sketch.WithSeed(scriptSeed(sc, seed)))
	if err != nil {
		return err
	}
	dir := filepath.Dir(output)
	p := replay.NewPlayer(s, replay.WithExporter(replay.FileExporter(dir)))
	if err := p.Play(ctx, sc); err != nil {
		return err
	}

	f, err := os.Create(output)
	if err != nil {
		return err
	}
	if err := s.Export(f, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// scriptSeed prefers the seed recorded in the script.
func scriptSeed(sc *replay.Script, fallback uint64) uint64 {
	if sc.Seed != 0 {
		return sc.Seed
	}
	return fallback
}

func demoScript(w, h int, seed uint64) *replay.Script {
	fw, fh := float64(w), float64(h)
	f := func(v float64) *float64 { return &v }
	yes := true

	actions := []replay.Action{
		{Op: replay.OpAddLayer, Name: "sky"},
		{Op: replay.OpBrush, Color: "#a8dadc", Size: f(fw / 6), Opacity: f(0.8)},
		{Op: replay.OpStroke, Tool: "watercolor", Points: wave(fw, fh*0.2, fh*0.05, 24)},
		{Op: replay.OpLayer, Layer: "sky", Blend: "multiply"},

		{Op: replay.OpAddLayer, Name: "shapes"},
		{Op: replay.OpBrush, Color: "#e63946", Size: f(4), Fill: &yes, Opacity: f(1)},
		{Op: replay.OpShape, Shape: "heart", X: fw * 0.1, Y: fh * 0.35, X2: fw * 0.3, Y2: fh * 0.65},
		{Op: replay.OpBrush, Color: "#f4a261"},
		{Op: replay.OpShape, Shape: "star", X: fw * 0.4, Y: fh * 0.3, X2: fw * 0.6, Y2: fh * 0.6},
		{Op: replay.OpBrush, Color: "#2a9d8f"},
		{Op: replay.OpShape, Shape: "hexagon", X: fw * 0.7, Y: fh * 0.35, X2: fw * 0.9, Y2: fh * 0.65},
		{Op: replay.OpBrush, Color: "#264653", Size: f(3)},
		{Op: replay.OpShape, Shape: "arrow", X: fw * 0.1, Y: fh * 0.8, X2: fw * 0.9, Y2: fh * 0.8, Fill: new(bool)},

		{Op: replay.OpAddLayer, Name: "ink"},
		{Op: replay.OpMirror, On: &yes},
		{Op: replay.OpBrush, Color: "#1d3557", Size: f(6), Stabilizer: new(int)},
		{Op: replay.OpStroke, Tool: "calligraphy", Points: wave(fw/2, fh*0.9, fh*0.04, 16)},
		{Op: replay.OpBrush, Size: f(14), Opacity: f(1)},
		{Op: replay.OpStroke, Tool: "airbrush", Points: wave(fw/3, fh*0.12, fh*0.02, 12)},
		{Op: replay.OpMirror, On: new(bool)},
		{Op: replay.OpLayer, Layer: "ink", Alpha: f(0.9)},
	}
	return &replay.Script{Width: w, Height: h, Seed: seed, Actions: actions}
}

// wave returns n samples of a sine wave across width starting at x = 0.
func wave(width, y, amp float64, n int) [][2]float64 {
	pts := make([][2]float64, n)
	for i := range n {
		t := float64(i) / float64(n-1)
		pts[i] = [2]float64{t * width, y + amp*math.Sin(t*4*math.Pi)}
	}
	return pts
}
