// Package replay records and plays back drawing sessions.
//
// A [Script] is an ordered list of [Action] values, each naming one Surface
// operation (tool and brush changes, strokes, shapes, fills, filters, layer
// management, history, export). Scripts are stored as YAML:
//
//	width: 400
//	height: 300
//	seed: 7
//	actions:
//	  - op: brush
//	    color: "#1d3557"
//	    size: 6
//	  - op: stroke
//	    tool: brush
//	    points: [[40, 40], [120, 80], [200, 60]]
//	  - op: shape
//	    shape: star
//	    x: 220
//	    y: 120
//	    x2: 320
//	    y2: 220
//	    fill: true
//
// A [Player] applies actions to a Surface in order; a [Recorder] applies
// actions and keeps them so the session can be saved and replayed later.
// With the same seed, playback reproduces the session pixel for pixel.
package replay
