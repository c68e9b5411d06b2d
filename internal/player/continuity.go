package player

import "time"

// The functions in this file compute the resume offset to feed the
// pipeline builder when one setting changes mid-flight, so that the
// rebuilt stream continues where the old one left off. All of them take
// the position under the OLD settings and the new value of the one
// changed setting, and are pure so they can be tested in isolation.

// position is a snapshot of where playback currently is.
type position struct {
	// elapsed is the wall-clock play time (0 when stopped).
	elapsed time.Duration
	// looped is the playback offset within the loop body, past the delay
	// prefix. Only meaningful when defined is true.
	looped  time.Duration
	defined bool
}

// loopLength is the effective length of one loop iteration:
// base − cut_start − cut_end + loop_gap.
func loopLength(cfg Settings, base time.Duration) time.Duration {
	return base - cfg.CutStart - cfg.CutEnd + cfg.LoopGap
}

// loopedPosition derives the looped play position from raw elapsed time.
// It is undefined until the sound has emerged from its delay prefix.
func loopedPosition(elapsed time.Duration, cfg Settings, base time.Duration) position {
	pos := position{elapsed: elapsed}
	if elapsed > cfg.Delay {
		pos.looped = durationRem(elapsed-cfg.Delay, loopLength(cfg, base))
		pos.defined = true
	}
	return pos
}

// durationRem returns a mod b, with a = k·b + rem for some k ≥ 0 and
// 0 ≤ rem < b. Returns 0 for non-positive b.
func durationRem(a, b time.Duration) time.Duration {
	if b <= 0 {
		return 0
	}
	return a % b
}

// resumeAfterDelay re-expresses the current loop position relative to the
// new delay prefix. While still inside the delay window the elapsed time
// carries over directly, capped so a now-shorter delay is never overshot.
func resumeAfterDelay(pos position, newDelay time.Duration) time.Duration {
	if pos.defined {
		return pos.looped + newDelay
	}
	return min(pos.elapsed, newDelay)
}

// resumeAfterCutStart shifts the loop position by the change in trimmed
// length, or snaps to the new start when the current position falls
// inside the newly removed region.
func resumeAfterCutStart(pos position, cfg Settings, newCut time.Duration) time.Duration {
	if !pos.defined {
		return pos.elapsed
	}
	if pos.looped < newCut {
		return newCut + cfg.Delay
	}
	return pos.looped - (newCut - cfg.CutStart) + cfg.Delay
}

// resumeAfterCutEnd keeps the position fixed unless it falls beyond the
// moved end boundary: a shortened track snaps forward to the new end, a
// lengthened track shifts positions past the old end by the added length.
func resumeAfterCutEnd(pos position, cfg Settings, base, newCut time.Duration) time.Duration {
	if !pos.defined {
		return pos.elapsed
	}
	cutLocation := base - newCut - cfg.CutStart
	endLocation := base - cfg.CutEnd - cfg.CutStart
	switch {
	case cutLocation < endLocation && pos.looped > cutLocation && pos.looped < endLocation:
		return cutLocation + cfg.Delay
	case cutLocation > endLocation && pos.looped > endLocation:
		return pos.looped + cfg.Delay + (cutLocation - endLocation)
	default:
		return pos.looped + cfg.Delay
	}
}

// resumeAfterLoop caps the position to the newly sized loop so it never
// overshoots when the gap shrinks or looping turns off.
func resumeAfterLoop(pos position, cfg Settings, base time.Duration, enable bool, newGap time.Duration) time.Duration {
	if !pos.defined {
		return pos.elapsed
	}
	newLoop := loopLength(cfg, base) - cfg.LoopGap
	if enable {
		newLoop += newGap
	}
	return min(pos.looped+cfg.Delay, newLoop)
}
