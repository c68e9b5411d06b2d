package player

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
)

// Sink is the output abstraction that consumes a sample stream and
// actually produces sound. A sink holds at most one live stream;
// Enqueue discards the previous one.
type Sink interface {
	// Enqueue replaces the sink's stream with s, leaving it paused.
	// rate is the native sample rate of s.
	Enqueue(s beep.Streamer, rate beep.SampleRate)
	Play()
	Pause()
	Clear()
	// SetVolume applies a linear amplitude scalar (1.0 = unchanged).
	SetVolume(amplitude float64)
	// Empty reports whether the sink holds no live stream, either because
	// nothing was enqueued or the stream drained on its own.
	Empty() bool
	Paused() bool
}

// Device acquires output sinks.
type Device interface {
	NewSink() (Sink, error)
}

const (
	outputRate      = beep.SampleRate(44100)
	resampleQuality = 4
)

var speakerInitialized bool

// OpenDevice initializes the process-wide speaker and returns a Device
// handing out independent sinks on it. Safe to call more than once; the
// speaker is only initialized the first time.
func OpenDevice() (Device, error) {
	if !speakerInitialized {
		if err := speaker.Init(outputRate, outputRate.N(time.Second/10)); err != nil {
			return nil, newError(KindDeviceSetup, err, "failed to set up your audio device")
		}
		speakerInitialized = true
	}
	return speakerDevice{}, nil
}

type speakerDevice struct{}

func (speakerDevice) NewSink() (Sink, error) {
	return &speakerSink{exponent: 0}, nil
}

// speakerSink plays one stream at a time on the shared speaker. Each
// enqueued stream gets its own ctrl→volume chain; the previous chain is
// detached by nilling its ctrl streamer, which makes the speaker's mixer
// drop it.
type speakerSink struct {
	ctrl     *beep.Ctrl
	vol      *effects.Volume
	done     *atomic.Bool // set by the end-of-stream callback
	exponent float64      // log2 of the current amplitude
}

var _ Sink = (*speakerSink)(nil)

func (s *speakerSink) Enqueue(st beep.Streamer, rate beep.SampleRate) {
	s.detach()

	if rate != outputRate {
		st = beep.Resample(resampleQuality, rate, outputRate, st)
	}

	ctrl := &beep.Ctrl{Streamer: st, Paused: true}
	vol := &effects.Volume{Streamer: ctrl, Base: 2, Volume: s.exponent}
	done := &atomic.Bool{}

	s.ctrl = ctrl
	s.vol = vol
	s.done = done

	// The callback runs on the speaker goroutine; done must not require
	// the speaker lock.
	speaker.Play(beep.Seq(vol, beep.Callback(func() {
		done.Store(true)
	})))
}

func (s *speakerSink) detach() {
	if s.ctrl == nil {
		return
	}
	speaker.Lock()
	s.ctrl.Streamer = nil
	speaker.Unlock()
	s.ctrl = nil
	s.vol = nil
	s.done = nil
}

func (s *speakerSink) Play() {
	if s.Empty() {
		return
	}
	speaker.Lock()
	s.ctrl.Paused = false
	speaker.Unlock()
}

func (s *speakerSink) Pause() {
	if s.Empty() {
		return
	}
	speaker.Lock()
	s.ctrl.Paused = true
	speaker.Unlock()
}

func (s *speakerSink) Clear() {
	s.detach()
}

func (s *speakerSink) SetVolume(amplitude float64) {
	s.exponent = math.Log2(amplitude)
	if s.vol != nil {
		speaker.Lock()
		s.vol.Volume = s.exponent
		speaker.Unlock()
	}
}

func (s *speakerSink) Empty() bool {
	return s.ctrl == nil || s.done.Load()
}

func (s *speakerSink) Paused() bool {
	if s.Empty() {
		return false
	}
	speaker.Lock()
	paused := s.ctrl.Paused
	speaker.Unlock()
	return paused
}
