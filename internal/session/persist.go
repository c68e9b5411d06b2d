package session

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/llehouerou/ambience/internal/player"
)

// document is the on-disk form of a session: every player's record plus
// the ordering the maps cannot carry.
type document struct {
	Players []player.Record `json:"players"`
	Top     []string        `json:"top"`
	Groups  []groupRecord   `json:"groups,omitempty"`
}

type groupRecord struct {
	Name    string   `json:"name"`
	Members []string `json:"members"`
}

// Save writes the session to path as JSON. Players are written in
// display order so the file diffs cleanly across saves.
func (s *Session) Save(path string) error {
	doc := document{Top: s.top}
	for _, name := range s.Names() {
		doc.Players = append(doc.Players, s.players[name].Record())
	}
	for _, g := range s.groupOrder {
		doc.Groups = append(doc.Groups, groupRecord{Name: g, Members: s.groups[g]})
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing session file: %w", err)
	}
	return nil
}

// Load reads a session file and reconstructs its players, all Stopped.
// With merge set the loaded players join the current session and name
// collisions are an error; otherwise the current session is stopped and
// replaced. On any error the session is left untouched.
func (s *Session) Load(path string, merge bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading session file: %w", err)
	}
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decoding session file: %w", err)
	}
	if err := doc.validate(); err != nil {
		return fmt.Errorf("invalid session file: %w", err)
	}
	if merge {
		for _, rec := range doc.Players {
			if _, ok := s.players[rec.Name]; ok {
				return fmt.Errorf("%q: %w", rec.Name, ErrNameTaken)
			}
		}
	}

	loaded := make(map[string]Player, len(doc.Players))
	for _, rec := range doc.Players {
		p, err := s.factory.FromRecord(rec)
		if err != nil {
			return fmt.Errorf("restoring %q: %w", rec.Name, err)
		}
		loaded[rec.Name] = p
	}

	if !merge {
		for _, p := range s.players {
			p.Stop()
		}
		s.players = make(map[string]Player)
		s.top = nil
		s.groups = make(map[string][]string)
		s.groupOrder = nil
	}
	for name, p := range loaded {
		s.players[name] = p
	}
	s.top = append(s.top, doc.Top...)
	for _, name := range doc.Top {
		s.players[name].SetGroup("")
	}
	for _, g := range doc.Groups {
		s.groups[g.Name] = append(s.groups[g.Name], g.Members...)
		if !slices.Contains(s.groupOrder, g.Name) {
			s.groupOrder = append(s.groupOrder, g.Name)
		}
		for _, name := range g.Members {
			s.players[name].SetGroup(g.Name)
		}
	}
	return nil
}

// validate checks the document's internal references: every player
// appears exactly once in top or a group, every listed name exists, and
// nothing uses the reserved name.
func (doc document) validate() error {
	known := make(map[string]bool, len(doc.Players))
	for _, rec := range doc.Players {
		if rec.Name == "" {
			return fmt.Errorf("player with empty name")
		}
		if strings.EqualFold(rec.Name, "all") {
			return fmt.Errorf("%q: %w", rec.Name, ErrReservedName)
		}
		if known[rec.Name] {
			return fmt.Errorf("%q: %w", rec.Name, ErrNameTaken)
		}
		known[rec.Name] = true
	}
	placed := make(map[string]bool, len(doc.Players))
	place := func(name, where string) error {
		if !known[name] {
			return fmt.Errorf("%s lists %q: %w", where, name, ErrUnknownPlayer)
		}
		if placed[name] {
			return fmt.Errorf("%q listed twice", name)
		}
		placed[name] = true
		return nil
	}
	for _, name := range doc.Top {
		if err := place(name, "top level"); err != nil {
			return err
		}
	}
	for _, g := range doc.Groups {
		if g.Name == "" || strings.EqualFold(g.Name, "all") {
			return fmt.Errorf("group %q: %w", g.Name, ErrReservedName)
		}
		for _, name := range g.Members {
			if err := place(name, "group "+g.Name); err != nil {
				return err
			}
		}
	}
	for name := range known {
		if !placed[name] {
			return fmt.Errorf("%q is in no group and not at the top level", name)
		}
	}
	return nil
}
