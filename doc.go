// Package sketch provides a layered raster drawing engine.
//
// # Overview
//
// A [Surface] holds an ordered stack of equally sized layers. Each layer
// has its own visibility, lock, opacity, and blend mode. Freehand strokes,
// parametric shapes, bucket fills, and filters paint on the active layer;
// the surface composites the visible layers for display and export.
//
// # Quick Start
//
//	s, err := sketch.NewSurface(800, 600)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	brush := sketch.DefaultBrush()
//	brush.Color = sketch.Hex("#e63946")
//	brush.Size = 12
//
//	s.AddLayer("ink")
//	s.BeginStroke(100, 100, brush, sketch.Brush)
//	s.ContinueStroke(160, 120, brush, sketch.Brush)
//	s.ContinueStroke(220, 180, brush, sketch.Brush)
//	s.EndStroke()
//
//	f, _ := os.Create("drawing.png")
//	defer f.Close()
//	s.Export(f, sketch.FormatPNG)
//
// # History
//
// Every mutating operation saves a snapshot of all layers before it
// changes pixels, so each stroke, shape, fill, or filter is one undo unit.
// Snapshots share buffers with layers copy-on-write: a layer copies its
// pixels only on the first write after a snapshot.
//
// # Coordinate System
//
// Origin (0,0) is the top-left corner, X increases right, Y increases
// down. Pixel (x, y) covers the unit square from (x, y) to (x+1, y+1).
//
// # Errors
//
// Interactive operations never fail hard. Unknown layer ids, locked
// layers, empty stacks, and out-of-bounds seeds are no-ops reporting false.
// Only [NewSurface] and the export functions return errors.
package sketch
