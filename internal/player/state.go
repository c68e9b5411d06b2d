package player

// State represents the playback state machine.
//
// The state machine has three states with the following transitions:
//
//   - Stopped → Playing (via Play, builds a fresh pipeline)
//   - Playing → Paused  (via Pause)
//   - Paused  → Playing (via Play, resumes the sink)
//   - any     → Stopped (via Stop, unconditional)
//
// Play while already Playing is an idempotent no-op success. Pause while
// not Playing is a no-op. Settings mutations never change the state on
// their own: they rebuild the sink's stream and preserve the flags.
//
// A sound only counts as Playing when its flag is set, the sink holds a
// stream, and the sink is not reporting paused; Paused analogously. A
// finite, non-looping stream that drains on its own therefore reads as
// Stopped without any transition call.
type State int

const (
	Stopped State = iota
	Playing
	Paused
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive returns true if playback is active (Playing or Paused).
func (s State) IsActive() bool {
	return s == Playing || s == Paused
}

// CanPause returns true if the state allows pausing.
func (s State) CanPause() bool {
	return s == Playing
}
