package session

import (
	"fmt"
	"slices"
	"strings"
)

// resolve expands an "all"/group/id selection into player names.
//
//   - ids == ["all"] selects every top-level player
//   - otherwise the selection is the union of the named players and the
//     members of the named groups
//   - an empty selection falls back to the most recently added
//     top-level player
//
// Unknown names are an error before any player is touched.
func (s *Session) resolve(ids, groupIDs []string) ([]string, error) {
	for _, g := range groupIDs {
		if _, ok := s.groups[g]; !ok {
			return nil, fmt.Errorf("%q: %w", g, ErrUnknownGroup)
		}
	}
	if len(ids) == 1 && strings.EqualFold(ids[0], "all") {
		if len(s.top) == 0 {
			return nil, fmt.Errorf("%w", ErrNoPlayers)
		}
		return slices.Clone(s.top), nil
	}
	for _, id := range ids {
		if strings.EqualFold(id, "all") {
			return nil, fmt.Errorf("%w: 'all' is only valid on its own", ErrReservedName)
		}
		if _, ok := s.players[id]; !ok {
			return nil, fmt.Errorf("%q: %w", id, ErrUnknownPlayer)
		}
	}

	var names []string
	add := func(id string) {
		if !slices.Contains(names, id) {
			names = append(names, id)
		}
	}
	for _, id := range ids {
		add(id)
	}
	for _, g := range groupIDs {
		for _, id := range s.groups[g] {
			add(id)
		}
	}
	if len(names) == 0 {
		if len(s.top) == 0 {
			return nil, fmt.Errorf("%w", ErrNoPlayers)
		}
		names = append(names, s.top[len(s.top)-1])
	}
	return names, nil
}

// apply runs fn over the resolved selection, stopping at the first
// error.
func (s *Session) apply(ids, groupIDs []string, fn func(Player) error) error {
	names, err := s.resolve(ids, groupIDs)
	if err != nil {
		return err
	}
	for _, name := range names {
		if err := fn(s.players[name]); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}
