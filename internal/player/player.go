package player

import (
	"fmt"
	"strings"
	"time"
)

// Settings is the persisted, mutable configuration of one sound.
type Settings struct {
	Volume   uint // percentage, may exceed 100
	Looping  bool
	LoopGap  time.Duration // silence appended at the loop point
	Delay    time.Duration // silent lead-in before the sound starts
	CutStart time.Duration // trimmed from the front
	CutEnd   time.Duration // trimmed from the back
}

// Player is the live-reconfigurable looping engine for a single sound.
// Every setting can change while the sound is playing: the mutators
// compute a resume offset from the current wall-clock position, rebuild
// the sample-stream pipeline, and swap it into the sink without an
// audible jump or restart.
//
// A Player owns its sink and decoded source exclusively. Its methods are
// synchronous and must be serialized by the caller; there is no internal
// locking and no background goroutine.
type Player struct {
	name  string
	group string
	media string

	dev   Device
	sink  Sink
	src   *Source
	clock Clock

	cfg Settings

	playing    bool
	paused     bool
	lastPoll   time.Time     // zero while not actively advancing
	timeAtPoll time.Duration // accumulated play time as of lastPoll
}

// New constructs a stopped player for the given media file. Construction
// fails if a sink cannot be acquired or the file cannot be opened and
// decoded; a failed construction has no side effects.
func New(dev Device, media, name string) (*Player, error) {
	src, err := decodeFile(media)
	if err != nil {
		return nil, err
	}
	return fromSource(dev, src, media, name, systemClock{})
}

func fromSource(dev Device, src *Source, media, name string, clock Clock) (*Player, error) {
	sink, err := dev.NewSink()
	if err != nil {
		return nil, err
	}
	p := &Player{
		name:  name,
		media: media,
		dev:   dev,
		sink:  sink,
		src:   src,
		clock: clock,
		cfg:   Settings{Volume: 100},
	}
	p.sink.SetVolume(Amplitude(p.cfg.Volume))
	return p, nil
}

// Copy returns a new stopped player with the given name, sharing this
// player's decoded source but owning a fresh sink. Settings carry over.
func (p *Player) Copy(name string) (*Player, error) {
	cp, err := fromSource(p.dev, p.src, p.media, name, p.clock)
	if err != nil {
		return nil, err
	}
	cp.group = p.group
	cp.cfg = p.cfg
	cp.sink.SetVolume(Amplitude(cp.cfg.Volume))
	return cp, nil
}

// Name returns the player's unique identifier. Uniqueness is enforced by
// the session, not here.
func (p *Player) Name() string { return p.name }

// Group returns the player's group label, empty when ungrouped.
func (p *Player) Group() string { return p.group }

// SetGroup sets the player's group label.
func (p *Player) SetGroup(group string) { p.group = group }

// Media returns the media file locator.
func (p *Player) Media() string { return p.media }

// Settings returns a snapshot of the current configuration.
func (p *Player) Settings() Settings { return p.cfg }

// BaseLength returns the immutable total duration of the decoded asset.
func (p *Player) BaseLength() time.Duration { return p.src.Duration() }

func (p *Player) isPlaying() bool {
	return p.playing && !p.paused && !p.sink.Empty() && !p.sink.Paused()
}

func (p *Player) isPaused() bool {
	return p.paused && !p.playing && !p.sink.Empty() && p.sink.Paused()
}

// State reports the current playback state.
func (p *Player) State() State {
	switch {
	case p.isPlaying():
		return Playing
	case p.isPaused():
		return Paused
	default:
		return Stopped
	}
}

// Play starts or resumes playback. Calling Play while already playing is
// a no-op success.
func (p *Player) Play() error {
	if p.isPlaying() {
		return nil
	}
	if p.isPaused() {
		p.sink.Play()
	} else {
		p.timeAtPoll = 0
		p.rebuild(0, true)
	}
	p.lastPoll = p.clock.Now()
	p.playing, p.paused = true, false
	return nil
}

// Pause pauses playback, capturing the accumulated play time. No-op
// unless currently playing.
func (p *Player) Pause() {
	if !p.isPlaying() {
		return
	}
	p.timeAtPoll = p.PlayTime()
	p.lastPoll = p.clock.Now()
	p.sink.Pause()
	p.paused, p.playing = true, false
}

// Stop clears the sink and resets all transient state. It always lands
// in Stopped regardless of the prior state.
func (p *Player) Stop() {
	p.playing = false
	p.paused = false
	p.lastPoll = time.Time{}
	p.timeAtPoll = 0
	p.sink.Clear()
}

// PlayTime returns the wall-clock play time: accumulated time plus the
// stretch since the last transition while playing, the accumulated time
// while paused, and zero while stopped.
func (p *Player) PlayTime() time.Duration {
	if p.isPlaying() && !p.lastPoll.IsZero() {
		return p.timeAtPoll + p.clock.Now().Sub(p.lastPoll)
	}
	if p.isPaused() {
		return p.timeAtPoll
	}
	return 0
}

// LoopedPlayTime returns the current playback offset within the loop
// body. The second return is false while the sound has not yet emerged
// from its delay prefix (or is stopped).
func (p *Player) LoopedPlayTime() (time.Duration, bool) {
	pos := p.position()
	return pos.looped, pos.defined
}

func (p *Player) position() position {
	return loopedPosition(p.PlayTime(), p.cfg, p.src.Duration())
}

// SetDelay changes the silent lead-in, preserving the perceived
// position.
func (p *Player) SetDelay(delay time.Duration) error {
	if delay < 0 {
		return newError(KindInvalidConfig, nil, "delay cannot be negative")
	}
	resume := resumeAfterDelay(p.position(), delay)
	p.cfg.Delay = delay
	p.reapply(resume)
	return nil
}

// SetCutStart changes the duration trimmed from the front, preserving
// the perceived position.
func (p *Player) SetCutStart(cut time.Duration) error {
	if err := p.validateCuts(cut, p.cfg.CutEnd); err != nil {
		return err
	}
	resume := resumeAfterCutStart(p.position(), p.cfg, cut)
	p.cfg.CutStart = cut
	p.reapply(resume)
	return nil
}

// SetCutEnd changes the duration trimmed from the back, preserving the
// perceived position.
func (p *Player) SetCutEnd(cut time.Duration) error {
	if err := p.validateCuts(p.cfg.CutStart, cut); err != nil {
		return err
	}
	resume := resumeAfterCutEnd(p.position(), p.cfg, p.src.Duration(), cut)
	p.cfg.CutEnd = cut
	p.reapply(resume)
	return nil
}

// SetLoop enables or disables looping with the given silence gap at the
// loop point, preserving the perceived position.
func (p *Player) SetLoop(enable bool, gap time.Duration) error {
	if gap < 0 {
		return newError(KindInvalidConfig, nil, "loop gap cannot be negative")
	}
	resume := resumeAfterLoop(p.position(), p.cfg, p.src.Duration(), enable, gap)
	p.cfg.Looping = enable
	p.cfg.LoopGap = gap
	p.reapply(resume)
	return nil
}

func (p *Player) validateCuts(cutStart, cutEnd time.Duration) error {
	if cutStart < 0 || cutEnd < 0 {
		return newError(KindInvalidConfig, nil, "cut durations cannot be negative")
	}
	if total := cutStart + cutEnd; total > p.src.Duration() {
		return newError(KindInvalidConfig, nil,
			"cuts of %v exceed the sound's length of %v", total, p.src.Duration())
	}
	return nil
}

// reapply rebuilds the pipeline at the given resume offset, preserving
// the play/pause flags. Mutating settings never starts or stops a sound
// on its own.
func (p *Player) reapply(resume time.Duration) {
	active := p.isPlaying()
	wasPaused := p.isPaused()
	p.rebuild(resume, active)
	// Later position math must run in the rebuilt stream's timeline.
	if active || wasPaused {
		p.timeAtPoll = resume
		p.lastPoll = p.clock.Now()
	}
}

func (p *Player) rebuild(resume time.Duration, startImmediately bool) {
	pl := newPlan(p.cfg, p.src, resume)
	p.sink.Enqueue(pl.realize(p.src), p.src.Format().SampleRate)
	if startImmediately {
		p.sink.Play()
	} else {
		p.sink.Pause()
	}
}

// String renders a short status description.
func (p *Player) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s:", p.name)
	switch p.State() {
	case Playing:
		fmt.Fprintf(&b, "\n\tplaying, for %v", p.PlayTime().Truncate(time.Second))
	case Paused:
		fmt.Fprintf(&b, "\n\tpaused at %v", p.PlayTime().Truncate(time.Second))
	default:
		b.WriteString("\n\tnot playing")
	}
	fmt.Fprintf(&b, "\n\tvolume: %d%%", p.cfg.Volume)
	if p.cfg.Looping {
		fmt.Fprintf(&b, "\n\tloops every %v", loopLength(p.cfg, p.src.Duration()))
	}
	if p.cfg.CutStart > 0 {
		fmt.Fprintf(&b, "\n\tstarts at: %v", p.cfg.CutStart)
	}
	if p.cfg.CutEnd > 0 {
		fmt.Fprintf(&b, "\n\tends at: %v", p.src.Duration()-p.cfg.CutEnd)
	}
	if p.cfg.Delay > 0 {
		fmt.Fprintf(&b, "\n\tdelay: %v", p.cfg.Delay)
	}
	return b.String()
}
