// Package session manages a named collection of players: adding and
// removing sounds, grouping them, applying operations across an
// "all"/group/id selection, and saving or loading the whole soundscape.
// The session serializes all access to its players; players themselves
// are not safe for concurrent use.
package session

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	ErrReservedName  = errors.New("'all' is a keyword and cannot be used as a name")
	ErrNameTaken     = errors.New("name is already used")
	ErrUnknownPlayer = errors.New("no player found with that name")
	ErrUnknownGroup  = errors.New("no group found with that name")
	ErrNoPlayers     = errors.New("no players to select; add a player first")
	ErrMissingIDs    = errors.New("no player names given")
	ErrNotInGroup    = errors.New("player is not part of that group")
)

// Session holds players by name, the insertion-ordered top level, and
// named groups. A player belongs either to the top level or to exactly
// one group.
type Session struct {
	factory Factory

	players    map[string]Player
	top        []string
	groups     map[string][]string
	groupOrder []string
}

func New(factory Factory) *Session {
	return &Session{
		factory: factory,
		players: make(map[string]Player),
		groups:  make(map[string][]string),
	}
}

// Add constructs a player for the media file and inserts it at the top
// level. The whole operation fails if the asset cannot be opened and
// decoded; no half-built player is inserted.
func (s *Session) Add(media, name string) error {
	if strings.EqualFold(name, "all") {
		return fmt.Errorf("%w", ErrReservedName)
	}
	if _, ok := s.players[name]; ok {
		return fmt.Errorf("%q: %w", name, ErrNameTaken)
	}
	p, err := s.factory.NewPlayer(media, name)
	if err != nil {
		return err
	}
	s.players[name] = p
	s.top = append(s.top, name)
	return nil
}

// Remove stops and removes the named players. Explicit names only;
// "all" is not valid here.
func (s *Session) Remove(ids []string) error {
	if len(ids) == 0 {
		return fmt.Errorf("%w", ErrMissingIDs)
	}
	for _, id := range ids {
		if strings.EqualFold(id, "all") {
			return fmt.Errorf("%w", ErrReservedName)
		}
		if _, ok := s.players[id]; !ok {
			return fmt.Errorf("%q: %w", id, ErrUnknownPlayer)
		}
	}
	for _, id := range ids {
		s.players[id].Stop()
		delete(s.players, id)
		s.top = slices.DeleteFunc(s.top, func(n string) bool { return n == id })
		for name := range s.groups {
			s.removeFromGroup(name, id)
		}
	}
	return nil
}

// Group moves the named players into the group, creating it if needed.
// A player already in another group is moved out of it first.
func (s *Session) Group(name string, ids []string) error {
	if len(ids) == 0 {
		return fmt.Errorf("%w", ErrMissingIDs)
	}
	for _, id := range ids {
		if _, ok := s.players[id]; !ok {
			return fmt.Errorf("%q: %w", id, ErrUnknownPlayer)
		}
	}
	for _, id := range ids {
		p := s.players[id]
		s.top = slices.DeleteFunc(s.top, func(n string) bool { return n == id })
		if prev := p.Group(); prev != "" {
			s.removeFromGroup(prev, id)
		}
		p.SetGroup(name)
		if !slices.Contains(s.groups[name], id) {
			s.groups[name] = append(s.groups[name], id)
		}
	}
	if !slices.Contains(s.groupOrder, name) {
		s.groupOrder = append(s.groupOrder, name)
	}
	return nil
}

// Ungroup moves the named players out of the group back to the top
// level. Removing the last members dissolves the group.
func (s *Session) Ungroup(name string, ids []string) error {
	members, ok := s.groups[name]
	if !ok {
		return fmt.Errorf("%q: %w", name, ErrUnknownGroup)
	}
	if len(ids) == 0 {
		return fmt.Errorf("%w", ErrMissingIDs)
	}
	for _, id := range ids {
		if _, ok := s.players[id]; !ok {
			return fmt.Errorf("%q: %w", id, ErrUnknownPlayer)
		}
		if !slices.Contains(members, id) {
			return fmt.Errorf("%q in %q: %w", id, name, ErrNotInGroup)
		}
	}
	for _, id := range ids {
		s.removeFromGroup(name, id)
		s.players[id].SetGroup("")
		s.top = append(s.top, id)
	}
	return nil
}

func (s *Session) removeFromGroup(group, id string) {
	members := slices.DeleteFunc(s.groups[group], func(n string) bool { return n == id })
	if len(members) == 0 {
		delete(s.groups, group)
		s.groupOrder = slices.DeleteFunc(s.groupOrder, func(n string) bool { return n == group })
		return
	}
	s.groups[group] = members
}

// Get returns the named player.
func (s *Session) Get(name string) (Player, bool) {
	p, ok := s.players[name]
	return p, ok
}

// Len returns the number of players in the session.
func (s *Session) Len() int { return len(s.players) }

// Names returns all player names in display order: top level first,
// then each group in creation order.
func (s *Session) Names() []string {
	names := slices.Clone(s.top)
	for _, g := range s.groupOrder {
		names = append(names, s.groups[g]...)
	}
	return names
}

// Groups returns the group names in creation order.
func (s *Session) Groups() []string { return slices.Clone(s.groupOrder) }
