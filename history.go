package sketch

import "slices"

// snapshot is one undo unit: every layer's buffer tagged by id.
// Buffers are shared with the layers until a layer writes again.
type snapshot []layerState

type layerState struct {
	id  LayerID
	pix []byte
}

// history holds bounded undo and redo stacks of snapshots.
type history struct {
	undo  []snapshot
	redo  []snapshot
	limit int
}

func (h *history) push(stack *[]snapshot, snap snapshot) {
	*stack = append(*stack, snap)
	if over := len(*stack) - h.limit; over > 0 {
		*stack = slices.Delete(*stack, 0, over)
	}
}

func pop(stack *[]snapshot) snapshot {
	n := len(*stack) - 1
	snap := (*stack)[n]
	(*stack)[n] = nil
	*stack = (*stack)[:n]
	return snap
}

// capture records the current pixels of every layer without copying.
func (s *Surface) capture() snapshot {
	snap := make(snapshot, len(s.layers))
	for i, l := range s.layers {
		l.shared = true
		snap[i] = layerState{id: l.id, pix: l.pix}
	}
	return snap
}

// restore puts each tagged buffer back into its layer. Layers created
// after the snapshot are left untouched.
func (s *Surface) restore(snap snapshot) {
	for _, st := range snap {
		if l := s.Layer(st.id); l != nil {
			l.pix = st.pix
			l.shared = true
		}
	}
}

// SaveToHistory pushes a snapshot of every layer onto the undo stack and
// clears the redo stack. The oldest entry is dropped past the limit.
//
// Every built-in mutating operation calls this before it changes pixels.
// Hosts only need it for edits made outside the Surface API.
func (s *Surface) SaveToHistory() {
	s.history.push(&s.history.undo, s.capture())
	s.history.redo = nil
	Logger().Debug("sketch: history saved", "depth", len(s.history.undo))
}

// Undo restores the most recent snapshot, moving the current state onto
// the redo stack. Returns false when there is nothing to undo.
func (s *Surface) Undo() bool {
	if len(s.history.undo) == 0 {
		return false
	}
	s.history.push(&s.history.redo, s.capture())
	s.restore(pop(&s.history.undo))
	Logger().Debug("sketch: undo", "depth", len(s.history.undo))
	return true
}

// Redo reapplies the most recently undone state.
func (s *Surface) Redo() bool {
	if len(s.history.redo) == 0 {
		return false
	}
	s.history.push(&s.history.undo, s.capture())
	s.restore(pop(&s.history.redo))
	Logger().Debug("sketch: redo", "depth", len(s.history.redo))
	return true
}

// CanUndo reports whether Undo would succeed.
func (s *Surface) CanUndo() bool { return len(s.history.undo) > 0 }

// CanRedo reports whether Redo would succeed.
func (s *Surface) CanRedo() bool { return len(s.history.redo) > 0 }

// UndoDepth returns the number of undo entries.
func (s *Surface) UndoDepth() int { return len(s.history.undo) }

// RedoDepth returns the number of redo entries.
func (s *Surface) RedoDepth() int { return len(s.history.redo) }

// ClearHistory drops both stacks.
func (s *Surface) ClearHistory() {
	s.history.undo = nil
	s.history.redo = nil
}
