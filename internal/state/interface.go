// internal/state/interface.go
package state

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	GetLastSession() (string, error)
	SaveLastSession(path string) error
	GetMasterVolume() (*uint, error)
	SaveMasterVolume(percent uint) error
	SaveSnapshot(path string, volume *uint) error
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
