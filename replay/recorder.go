package replay

import (
	"slices"

	"github.com/gogpu/sketch"
)

// Recorder applies actions to a surface and keeps every action that
// succeeded, so the session can be saved as a Script.
//
// Example:
//
//	rec := replay.NewRecorder(surface, 7)
//	rec.Apply(replay.Action{Op: replay.OpStroke, Tool: "brush", Points: pts})
//	rec.Script().Encode(f)
type Recorder struct {
	player  *Player
	seed    uint64
	actions []Action
}

// NewRecorder records actions applied to s. seed is stored in the script
// and must match the seed s was created with for diffuse tools to replay
// identically.
func NewRecorder(s *sketch.Surface, seed uint64, opts ...PlayerOption) *Recorder {
	return &Recorder{
		player: NewPlayer(s, opts...),
		seed:   seed,
	}
}

// Player returns the underlying player.
func (r *Recorder) Player() *Player { return r.player }

// Apply performs the action and records it. Malformed actions are
// returned as errors and not recorded.
func (r *Recorder) Apply(a Action) error {
	if err := r.player.Apply(a); err != nil {
		return err
	}
	r.actions = append(r.actions, a)
	return nil
}

// Len returns the number of recorded actions.
func (r *Recorder) Len() int { return len(r.actions) }

// Reset discards the recorded actions. The surface is not changed.
func (r *Recorder) Reset() { r.actions = nil }

// Script returns the recorded session. The result does not share the
// recorder's action slice.
func (r *Recorder) Script() *Script {
	s := r.player.Surface()
	return &Script{
		Width:      s.Width(),
		Height:     s.Height(),
		Background: s.Background().Hex(),
		Seed:       r.seed,
		Actions:    slices.Clone(r.actions),
	}
}
