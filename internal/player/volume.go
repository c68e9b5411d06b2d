package player

import "math"

// Amplitude converts a volume percentage to the linear amplitude scalar
// applied at the sink. The curve follows perceived loudness rather than
// power: 100% maps to amplitude 1.0, and 0% to 2^-32 (very quiet, but
// never exact silence). Values above 100% amplify.
func Amplitude(percent uint) float64 {
	curved := math.Cbrt(math.Cbrt(math.Cbrt(float64(percent) / 100)))
	return math.Pow(2, (curved*192-192)/6)
}

// SetVolume stores the volume percentage and applies the amplitude
// conversion to the sink. Valid in any state and does not rebuild the
// pipeline.
func (p *Player) SetVolume(percent uint) {
	p.cfg.Volume = percent
	p.sink.SetVolume(Amplitude(percent))
}

// Volume returns the current volume percentage.
func (p *Player) Volume() uint { return p.cfg.Volume }
