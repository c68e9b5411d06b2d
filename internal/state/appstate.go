package state

import (
	"database/sql"
	"errors"

	dbutil "github.com/llehouerou/ambience/internal/db"
)

// GetLastSession returns the path of the session file last saved or
// loaded, or "" when none has been recorded yet.
func (m *Manager) GetLastSession() (string, error) {
	var path sql.NullString
	row := m.db.QueryRow(`SELECT last_session FROM app_state WHERE id = 1`)
	err := row.Scan(&path)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return dbutil.NullStringValue(path), nil
}

// SaveLastSession records the session file path for the next launch.
func (m *Manager) SaveLastSession(path string) error {
	_, err := m.db.Exec(`
		INSERT INTO app_state (id, last_session)
		VALUES (1, ?)
		ON CONFLICT(id) DO UPDATE SET
			last_session = excluded.last_session
	`, path)
	return err
}

// GetMasterVolume returns the saved master volume percentage, or nil
// when none has been recorded.
func (m *Manager) GetMasterVolume() (*uint, error) {
	var volume sql.NullInt64
	row := m.db.QueryRow(`SELECT master_volume FROM app_state WHERE id = 1`)
	err := row.Scan(&volume)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved volume is valid on first run
	}
	if err != nil {
		return nil, err
	}
	raw := dbutil.NullInt64ToPtr(volume)
	if raw == nil {
		return nil, nil //nolint:nilnil
	}
	v := uint(*raw)
	return &v, nil
}

// SaveMasterVolume persists the master volume percentage.
func (m *Manager) SaveMasterVolume(percent uint) error {
	_, err := m.db.Exec(`
		INSERT INTO app_state (id, master_volume)
		VALUES (1, ?)
		ON CONFLICT(id) DO UPDATE SET
			master_volume = excluded.master_volume
	`, percent)
	return err
}

// SaveSnapshot records the session path and, when set, the master
// volume in a single transaction so a crash between the two writes
// cannot leave them out of step.
func (m *Manager) SaveSnapshot(path string, volume *uint) error {
	return dbutil.WithTx(m.db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`
			INSERT INTO app_state (id, last_session)
			VALUES (1, ?)
			ON CONFLICT(id) DO UPDATE SET
				last_session = excluded.last_session
		`, path); err != nil {
			return err
		}
		if volume == nil {
			return nil
		}
		_, err := tx.Exec(`UPDATE app_state SET master_volume = ? WHERE id = 1`, *volume)
		return err
	})
}
