package player

import (
	"time"

	"github.com/gopxl/beep/v2"
)

// plan describes the sample-stream pipeline for one set of settings as a
// flat list of optional stages, so the stage order stays auditable and
// the builder is testable without an audio device. Stage order:
//
//  1. slice the decoded buffer to [bodyFrom, bodyTo), the cut body
//  2. if padTo > 0, mix with silence and truncate to padTo, giving the
//     loop body padded with the trailing gap
//  3. if repeat, restart the body indefinitely
//  4. if delay > 0, prepend that many samples of silence
//  5. if drop > 0, discard that many samples of the composed stream;
//     this is what lets playback resume in the middle
//
// All fields are sample counts at the source's native rate.
type plan struct {
	bodyFrom int
	bodyTo   int
	padTo    int
	repeat   bool
	delay    int
	drop     int
}

// newPlan computes the pipeline description for the given settings and
// resume offset. It is a pure function of its inputs.
func newPlan(cfg Settings, src *Source, resume time.Duration) plan {
	sr := src.Format().SampleRate

	pl := plan{bodyFrom: 0, bodyTo: src.Len()}
	if cfg.CutEnd > 0 {
		pl.bodyTo = src.Len() - sr.N(cfg.CutEnd)
	}
	if cfg.CutStart > 0 {
		pl.bodyFrom = sr.N(cfg.CutStart)
	}
	if pl.bodyFrom > pl.bodyTo {
		pl.bodyFrom = pl.bodyTo
	}
	if cfg.Looping && cfg.LoopGap > 0 {
		pl.padTo = sr.N(loopLength(cfg, src.Duration()))
	}
	pl.repeat = cfg.Looping
	if cfg.Delay > 0 {
		pl.delay = sr.N(cfg.Delay)
	}
	if resume > 0 {
		pl.drop = sr.N(resume)
	}
	return pl
}

// realize composes the plan into the sample stream to hand to the sink.
func (pl plan) realize(src *Source) beep.Streamer {
	body := func() beep.Streamer {
		s := beep.Streamer(src.streamer(pl.bodyFrom, pl.bodyTo))
		if pl.padTo > 0 {
			s = beep.Take(pl.padTo, beep.Mix(s, beep.Silence(-1)))
		}
		return s
	}

	var out beep.Streamer
	if pl.repeat {
		out = &repeater{next: body}
	} else {
		out = body()
	}
	if pl.delay > 0 {
		out = beep.Seq(beep.Silence(pl.delay), out)
	}
	if pl.drop > 0 {
		out = &dropStreamer{remaining: pl.drop, s: out}
	}
	return out
}

// repeater streams one loop iteration after another, pulling a fresh
// body stream from next each time the previous one drains.
type repeater struct {
	next func() beep.Streamer
	cur  beep.Streamer
}

var _ beep.Streamer = (*repeater)(nil)

func (r *repeater) Stream(samples [][2]float64) (n int, ok bool) {
	if r.cur == nil {
		r.cur = r.next()
	}
	for n < len(samples) {
		m, more := r.cur.Stream(samples[n:])
		n += m
		if more {
			continue
		}
		if m == 0 && n == 0 {
			// A fresh body produced nothing; bail out instead of spinning.
			fresh := r.next()
			if fm, fok := fresh.Stream(samples); fok {
				r.cur = fresh
				n += fm
				continue
			}
			return 0, false
		}
		r.cur = r.next()
	}
	return n, true
}

func (r *repeater) Err() error {
	if r.cur != nil {
		return r.cur.Err()
	}
	return nil
}

// dropStreamer discards the first remaining samples of the wrapped
// stream, then passes everything through.
type dropStreamer struct {
	remaining int
	s         beep.Streamer
}

var _ beep.Streamer = (*dropStreamer)(nil)

func (d *dropStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	for d.remaining > 0 {
		chunk := samples
		if d.remaining < len(chunk) {
			chunk = chunk[:d.remaining]
		}
		m, more := d.s.Stream(chunk)
		d.remaining -= m
		if !more {
			d.remaining = 0
			return 0, false
		}
	}
	return d.s.Stream(samples)
}

func (d *dropStreamer) Err() error { return d.s.Err() }
