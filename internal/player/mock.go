package player

import (
	"time"

	"github.com/gopxl/beep/v2"
)

// MockDevice is a test double for Device. It records every sink it hands
// out so tests can inspect what players did to them.
type MockDevice struct {
	Sinks   []*MockSink
	SinkErr error
}

func (d *MockDevice) NewSink() (Sink, error) {
	if d.SinkErr != nil {
		return nil, d.SinkErr
	}
	s := &MockSink{}
	d.Sinks = append(d.Sinks, s)
	return s, nil
}

// MockSink is a test double for Sink. It keeps the enqueued stream and
// transport state without touching any audio hardware.
type MockSink struct {
	Stream    beep.Streamer
	Rate      beep.SampleRate
	Amplitude float64
	Enqueues  int

	playing  bool
	finished bool
}

var _ Sink = (*MockSink)(nil)

func (s *MockSink) Enqueue(st beep.Streamer, rate beep.SampleRate) {
	s.Stream = st
	s.Rate = rate
	s.finished = false
	s.Enqueues++
}

func (s *MockSink) Play() { s.playing = true }

func (s *MockSink) Pause() { s.playing = false }

func (s *MockSink) Clear() {
	s.Stream = nil
	s.playing = false
}

func (s *MockSink) SetVolume(amplitude float64) { s.Amplitude = amplitude }

func (s *MockSink) Empty() bool { return s.Stream == nil || s.finished }

func (s *MockSink) Paused() bool { return !s.Empty() && !s.playing }

// FinishStream simulates the enqueued stream draining on its own.
func (s *MockSink) FinishStream() { s.finished = true }

// FakeClock is a manually advanced Clock for deterministic timing tests.
type FakeClock struct {
	now time.Time
}

func NewFakeClock() *FakeClock {
	return &FakeClock{now: time.Unix(1700000000, 0)}
}

func (c *FakeClock) Now() time.Time { return c.now }

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// NewTestPlayer builds a player over an in-memory source with the given
// base length, wired to a MockSink and FakeClock. Useful outside this
// package for session tests that need a real engine without audio
// hardware.
func NewTestPlayer(name string, base time.Duration) (*Player, *MockSink, *FakeClock) {
	dev := &MockDevice{}
	clock := NewFakeClock()
	p, err := fromSource(dev, silentSource(base), "mock://"+name, name, clock)
	if err != nil {
		// MockDevice.NewSink cannot fail without SinkErr set.
		panic(err)
	}
	return p, dev.Sinks[0], clock
}

// silentSource builds a decoded source of pure silence with the given
// duration, at the speaker's native rate.
func silentSource(d time.Duration) *Source {
	format := beep.Format{SampleRate: outputRate, NumChannels: 2, Precision: 2}
	buf := beep.NewBuffer(format)
	buf.Append(beep.Silence(format.SampleRate.N(d)))
	return newSource(buf)
}
