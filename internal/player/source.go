package player

import (
	"time"

	"github.com/gopxl/beep/v2"
)

// Source is an immutable handle to the fully decoded sample sequence of
// one audio asset. It is built once per player and shared between copies;
// buffer slices handed out by it are independent streamers, so the handle
// itself is never consumed.
type Source struct {
	buf *beep.Buffer
}

func newSource(buf *beep.Buffer) *Source {
	return &Source{buf: buf}
}

// Format returns the sample rate, channel count and precision of the
// decoded asset.
func (s *Source) Format() beep.Format { return s.buf.Format() }

// Len returns the total number of decoded samples.
func (s *Source) Len() int { return s.buf.Len() }

// Duration returns the total duration of the decoded asset.
func (s *Source) Duration() time.Duration {
	return s.buf.Format().SampleRate.D(s.buf.Len())
}

// streamer returns a fresh sample stream over the given sample range.
func (s *Source) streamer(from, to int) beep.StreamSeeker {
	return s.buf.Streamer(from, to)
}
