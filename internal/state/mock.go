// internal/state/mock.go
package state

// Mock is a test double for Manager.
type Mock struct {
	lastSession  string
	masterVolume *uint
	closed       bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) GetLastSession() (string, error) {
	return m.lastSession, nil
}

func (m *Mock) SaveLastSession(path string) error {
	m.lastSession = path
	return nil
}

func (m *Mock) GetMasterVolume() (*uint, error) {
	return m.masterVolume, nil
}

func (m *Mock) SaveMasterVolume(percent uint) error {
	m.masterVolume = &percent
	return nil
}

func (m *Mock) SaveSnapshot(path string, volume *uint) error {
	m.lastSession = path
	if volume != nil {
		m.masterVolume = volume
	}
	return nil
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
