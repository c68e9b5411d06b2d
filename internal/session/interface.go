package session

import (
	"fmt"
	"time"

	"github.com/llehouerou/ambience/internal/player"
)

// Player is the per-sound contract the session drives. It matches the
// engine's operation set so session logic is testable without audio
// hardware.
type Player interface {
	Name() string
	Group() string
	SetGroup(group string)
	Play() error
	Pause()
	Stop()
	State() player.State
	PlayTime() time.Duration
	SetVolume(percent uint)
	SetDelay(delay time.Duration) error
	SetCutStart(cut time.Duration) error
	SetCutEnd(cut time.Duration) error
	SetLoop(enable bool, gap time.Duration) error
	Settings() player.Settings
	Record() player.Record
}

// Factory constructs players: fresh from a media file, from a persisted
// record, or as a copy of an existing player under a new name.
type Factory interface {
	NewPlayer(media, name string) (Player, error)
	FromRecord(rec player.Record) (Player, error)
	Copy(p Player, name string) (Player, error)
}

// Verify the engine satisfies the contract at compile time.
var _ Player = (*player.Player)(nil)

// DeviceFactory builds real players on an audio device.
type DeviceFactory struct {
	Device player.Device
}

var _ Factory = DeviceFactory{}

func (f DeviceFactory) NewPlayer(media, name string) (Player, error) {
	return player.New(f.Device, media, name)
}

func (f DeviceFactory) FromRecord(rec player.Record) (Player, error) {
	return player.FromRecord(f.Device, rec)
}

func (f DeviceFactory) Copy(p Player, name string) (Player, error) {
	src, ok := p.(*player.Player)
	if !ok {
		return nil, fmt.Errorf("cannot copy %q: not an engine player", p.Name())
	}
	return src.Copy(name)
}
