package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/llehouerou/ambience/internal/player"
)

// mockPlayer is a Player double for session tests. It records every
// operation applied to it and can be told to fail a named operation.
type mockPlayer struct {
	name  string
	group string
	media string
	state player.State
	cfg   player.Settings

	Calls  []string
	FailOn string
}

var _ Player = (*mockPlayer)(nil)

func newMockPlayer(media, name string) *mockPlayer {
	return &mockPlayer{name: name, media: media, cfg: player.Settings{Volume: 100}}
}

func (m *mockPlayer) call(op string) error {
	m.Calls = append(m.Calls, op)
	if m.FailOn == op {
		return errors.New(op + " failed")
	}
	return nil
}

func (m *mockPlayer) Name() string { return m.name }

func (m *mockPlayer) Group() string { return m.group }

func (m *mockPlayer) SetGroup(group string) { m.group = group }

func (m *mockPlayer) Play() error {
	if err := m.call("play"); err != nil {
		return err
	}
	m.state = player.Playing
	return nil
}

func (m *mockPlayer) Pause() {
	m.call("pause")
	if m.state == player.Playing {
		m.state = player.Paused
	}
}

func (m *mockPlayer) Stop() {
	m.call("stop")
	m.state = player.Stopped
}

func (m *mockPlayer) State() player.State { return m.state }

func (m *mockPlayer) PlayTime() time.Duration { return 0 }

func (m *mockPlayer) Settings() player.Settings { return m.cfg }

func (m *mockPlayer) SetVolume(percent uint) {
	m.call("volume")
	m.cfg.Volume = percent
}

func (m *mockPlayer) SetDelay(delay time.Duration) error {
	if err := m.call("delay"); err != nil {
		return err
	}
	m.cfg.Delay = delay
	return nil
}

func (m *mockPlayer) SetCutStart(cut time.Duration) error {
	if err := m.call("cut-start"); err != nil {
		return err
	}
	m.cfg.CutStart = cut
	return nil
}

func (m *mockPlayer) SetCutEnd(cut time.Duration) error {
	if err := m.call("cut-end"); err != nil {
		return err
	}
	m.cfg.CutEnd = cut
	return nil
}

func (m *mockPlayer) SetLoop(enable bool, gap time.Duration) error {
	if err := m.call("loop"); err != nil {
		return err
	}
	m.cfg.Looping = enable
	m.cfg.LoopGap = gap
	return nil
}

func (m *mockPlayer) Record() player.Record {
	return player.Record{
		Media:    m.media,
		Name:     m.name,
		Group:    m.group,
		Volume:   m.cfg.Volume,
		Looping:  m.cfg.Looping,
		LoopGap:  int64(m.cfg.LoopGap / time.Second),
		Delay:    int64(m.cfg.Delay / time.Second),
		CutEnd:   int64(m.cfg.CutEnd / time.Second),
		CutStart: int64(m.cfg.CutStart / time.Second),
	}
}

// mockFactory builds mockPlayers and keeps them reachable by name so
// tests can inspect call logs after session operations.
type mockFactory struct {
	Built   map[string]*mockPlayer
	FailFor string
}

var _ Factory = (*mockFactory)(nil)

func newMockFactory() *mockFactory {
	return &mockFactory{Built: make(map[string]*mockPlayer)}
}

func (f *mockFactory) NewPlayer(media, name string) (Player, error) {
	if f.FailFor == name {
		return nil, fmt.Errorf("decoding %s: no such file", media)
	}
	p := newMockPlayer(media, name)
	f.Built[name] = p
	return p, nil
}

func (f *mockFactory) Copy(p Player, name string) (Player, error) {
	src, ok := p.(*mockPlayer)
	if !ok {
		return nil, fmt.Errorf("cannot copy %q: not a mock player", p.Name())
	}
	cp := newMockPlayer(src.media, name)
	cp.group = src.group
	cp.cfg = src.cfg
	f.Built[name] = cp
	return cp, nil
}

func (f *mockFactory) FromRecord(rec player.Record) (Player, error) {
	if f.FailFor == rec.Name {
		return nil, fmt.Errorf("decoding %s: no such file", rec.Media)
	}
	p := newMockPlayer(rec.Media, rec.Name)
	p.group = rec.Group
	p.cfg = player.Settings{
		Volume:   rec.Volume,
		Looping:  rec.Looping,
		LoopGap:  time.Duration(rec.LoopGap) * time.Second,
		Delay:    time.Duration(rec.Delay) * time.Second,
		CutEnd:   time.Duration(rec.CutEnd) * time.Second,
		CutStart: time.Duration(rec.CutStart) * time.Second,
	}
	f.Built[rec.Name] = p
	return p, nil
}
