package player

import "time"

// Record is the flat persisted form of one player's configuration.
// Durations are stored at seconds resolution; transient play state is
// never persisted, so a reconstructed player always starts Stopped.
type Record struct {
	Media    string `json:"media"`
	Name     string `json:"name"`
	Group    string `json:"group,omitempty"`
	Volume   uint   `json:"volume"`
	Looping  bool   `json:"looping"`
	LoopGap  int64  `json:"loop_gap"`  // seconds
	Delay    int64  `json:"delay"`     // seconds
	CutEnd   int64  `json:"cut_end"`   // seconds
	CutStart int64  `json:"cut_start"` // seconds
}

// Record returns the player's persisted form. Sub-second setting
// components are truncated.
func (p *Player) Record() Record {
	return Record{
		Media:    p.media,
		Name:     p.name,
		Group:    p.group,
		Volume:   p.cfg.Volume,
		Looping:  p.cfg.Looping,
		LoopGap:  int64(p.cfg.LoopGap / time.Second),
		Delay:    int64(p.cfg.Delay / time.Second),
		CutEnd:   int64(p.cfg.CutEnd / time.Second),
		CutStart: int64(p.cfg.CutStart / time.Second),
	}
}

// FromRecord reconstructs a stopped player from its persisted form,
// reopening and decoding the media it refers to.
func FromRecord(dev Device, rec Record) (*Player, error) {
	src, err := decodeFile(rec.Media)
	if err != nil {
		return nil, err
	}
	return fromRecordSource(dev, src, rec, systemClock{})
}

func fromRecordSource(dev Device, src *Source, rec Record, clock Clock) (*Player, error) {
	p, err := fromSource(dev, src, rec.Media, rec.Name, clock)
	if err != nil {
		return nil, err
	}
	cfg := Settings{
		Volume:   rec.Volume,
		Looping:  rec.Looping,
		LoopGap:  time.Duration(rec.LoopGap) * time.Second,
		Delay:    time.Duration(rec.Delay) * time.Second,
		CutEnd:   time.Duration(rec.CutEnd) * time.Second,
		CutStart: time.Duration(rec.CutStart) * time.Second,
	}
	// A hand-edited session file may carry values the live mutators
	// would refuse; hold it to the same rules.
	if cfg.Delay < 0 {
		return nil, newError(KindInvalidConfig, nil, "delay cannot be negative")
	}
	if cfg.LoopGap < 0 {
		return nil, newError(KindInvalidConfig, nil, "loop gap cannot be negative")
	}
	if err := p.validateCuts(cfg.CutStart, cfg.CutEnd); err != nil {
		return nil, err
	}
	p.group = rec.Group
	p.cfg = cfg
	p.sink.SetVolume(Amplitude(cfg.Volume))
	return p, nil
}
