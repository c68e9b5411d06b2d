package session

import (
	"fmt"
	"slices"
	"strings"
)

// Copy duplicates the selection. Named groups are duplicated whole: the
// copy gets a derived group name and freshly copied members. Named
// players are copied next to the original, joining its group when it has
// one. ids==["all"] copies every top-level player; an empty selection
// copies the most recently added top-level player. Copies come out
// Stopped with the source's settings and a free "name(2)", "name(3)", …
// name.
func (s *Session) Copy(ids, groupIDs []string) error {
	groups := dedupe(groupIDs)
	for _, g := range groups {
		if _, ok := s.groups[g]; !ok {
			return fmt.Errorf("%q: %w", g, ErrUnknownGroup)
		}
	}

	var names []string
	switch {
	case len(ids) == 1 && strings.EqualFold(ids[0], "all"):
		if len(s.top) == 0 {
			return fmt.Errorf("%w", ErrNoPlayers)
		}
		names = slices.Clone(s.top)
	default:
		for _, id := range ids {
			if strings.EqualFold(id, "all") {
				return fmt.Errorf("%w: 'all' is only valid on its own", ErrReservedName)
			}
			if _, ok := s.players[id]; !ok {
				return fmt.Errorf("%q: %w", id, ErrUnknownPlayer)
			}
		}
		names = dedupe(ids)
	}
	if len(names) == 0 && len(groups) == 0 {
		if len(s.top) == 0 {
			return fmt.Errorf("%w", ErrNoPlayers)
		}
		names = append(names, s.top[len(s.top)-1])
	}

	for _, g := range groups {
		newGroup := freeName(g, func(candidate string) bool {
			_, taken := s.groups[candidate]
			return taken
		})
		for _, id := range s.groups[g] {
			cp, err := s.copyPlayer(id)
			if err != nil {
				return err
			}
			cp.SetGroup(newGroup)
			s.players[cp.Name()] = cp
			s.groups[newGroup] = append(s.groups[newGroup], cp.Name())
		}
		s.groupOrder = append(s.groupOrder, newGroup)
	}

	for _, id := range names {
		cp, err := s.copyPlayer(id)
		if err != nil {
			return err
		}
		s.players[cp.Name()] = cp
		if g := cp.Group(); g != "" {
			s.groups[g] = append(s.groups[g], cp.Name())
		} else {
			s.top = append(s.top, cp.Name())
		}
	}
	return nil
}

func (s *Session) copyPlayer(id string) (Player, error) {
	name := freeName(id, func(candidate string) bool {
		_, taken := s.players[candidate]
		return taken
	})
	cp, err := s.factory.Copy(s.players[id], name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", id, err)
	}
	return cp, nil
}

// freeName derives the first untaken "name(2)", "name(3)", … variant.
func freeName(name string, taken func(string) bool) string {
	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s(%d)", name, n)
		if !taken(candidate) {
			return candidate
		}
	}
}

func dedupe(in []string) []string {
	var out []string
	for _, v := range in {
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}
