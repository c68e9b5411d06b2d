package player

import "time"

// Clock supplies the wall-clock readings used for position tracking.
// Playback position is derived from the time elapsed since the last
// transition, not from playback-position telemetry, so tests can swap
// in a deterministic clock instead of sleeping.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }
