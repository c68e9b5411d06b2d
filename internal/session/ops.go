package session

import "time"

// Play starts every selected player.
func (s *Session) Play(ids, groupIDs []string) error {
	return s.apply(ids, groupIDs, func(p Player) error { return p.Play() })
}

// Pause pauses every selected player.
func (s *Session) Pause(ids, groupIDs []string) error {
	return s.apply(ids, groupIDs, func(p Player) error {
		p.Pause()
		return nil
	})
}

// Stop stops every selected player.
func (s *Session) Stop(ids, groupIDs []string) error {
	return s.apply(ids, groupIDs, func(p Player) error {
		p.Stop()
		return nil
	})
}

// SetVolume sets the volume percentage on every selected player.
func (s *Session) SetVolume(ids, groupIDs []string, percent uint) error {
	return s.apply(ids, groupIDs, func(p Player) error {
		p.SetVolume(percent)
		return nil
	})
}

// SetDelay sets the silent lead-in on every selected player.
func (s *Session) SetDelay(ids, groupIDs []string, delay time.Duration) error {
	return s.apply(ids, groupIDs, func(p Player) error { return p.SetDelay(delay) })
}

// SetCutStart sets the front trim on every selected player.
func (s *Session) SetCutStart(ids, groupIDs []string, cut time.Duration) error {
	return s.apply(ids, groupIDs, func(p Player) error { return p.SetCutStart(cut) })
}

// SetCutEnd sets the back trim on every selected player.
func (s *Session) SetCutEnd(ids, groupIDs []string, cut time.Duration) error {
	return s.apply(ids, groupIDs, func(p Player) error { return p.SetCutEnd(cut) })
}

// Loop enables looping with the given gap on every selected player.
func (s *Session) Loop(ids, groupIDs []string, gap time.Duration) error {
	return s.apply(ids, groupIDs, func(p Player) error { return p.SetLoop(true, gap) })
}

// Unloop disables looping on every selected player, keeping its gap
// setting for the next Loop.
func (s *Session) Unloop(ids, groupIDs []string) error {
	return s.apply(ids, groupIDs, func(p Player) error {
		return p.SetLoop(false, p.Settings().LoopGap)
	})
}
