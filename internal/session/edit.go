package session

import (
	"fmt"
	"log/slog"

	"saveedit/internal/decls"
	"saveedit/internal/waves"
)

// SetDeclarationValue rewrites the value of one declaration record. The
// value type is re-inferred from the new literal shape; name and category
// stay derived and refresh on the next parse only.
func (s *Session) SetDeclarationValue(ordinal int, value string) error {
	d, err := s.declaration(ordinal)
	if err != nil {
		return err
	}
	d.Value = value
	d.ValueType = decls.InferType(value)
	s.log.Debug("declaration updated",
		slog.String("name", d.Name),
		slog.String("type", string(d.ValueType)))
	return nil
}

// DeclarationPath reads one element of a structured declaration value.
func (s *Session) DeclarationPath(ordinal int, path string) (string, error) {
	d, err := s.declaration(ordinal)
	if err != nil {
		return "", err
	}
	return d.ValueAt(path)
}

// SetDeclarationPath rewrites one element of a structured declaration value.
func (s *Session) SetDeclarationPath(ordinal int, path, value string) error {
	d, err := s.declaration(ordinal)
	if err != nil {
		return err
	}
	return d.SetValueAt(path, value)
}

// DeclarationByName finds a declaration record by exact name.
func (s *Session) DeclarationByName(name string) (*decls.Declaration, error) {
	for _, d := range s.declRecords {
		if d.Name == name {
			return d, nil
		}
	}
	return nil, fmt.Errorf("no declaration named %q", name)
}

// SetEventContent rewrites one event line. The event's kind re-derives on
// the next parse, not retroactively.
func (s *Session) SetEventContent(waveOrdinal, eventOrdinal int, content string) error {
	w, err := s.wave(waveOrdinal)
	if err != nil {
		return err
	}
	if eventOrdinal < 0 || eventOrdinal >= len(w.Events) {
		return fmt.Errorf("event ordinal %d out of range in wave %d (%d events)", eventOrdinal, waveOrdinal, len(w.Events))
	}
	w.Events[eventOrdinal].Content = content
	return nil
}

// SetWaveHeader rewrites one wave's header line.
func (s *Session) SetWaveHeader(waveOrdinal int, header string) error {
	w, err := s.wave(waveOrdinal)
	if err != nil {
		return err
	}
	w.HeaderLine = header
	return nil
}

func (s *Session) declaration(ordinal int) (*decls.Declaration, error) {
	if s.active == ModeWaves {
		return nil, fmt.Errorf("session is in wave mode; declaration records are unavailable")
	}
	if ordinal < 0 || ordinal >= len(s.declRecords) {
		return nil, fmt.Errorf("declaration ordinal %d out of range (%d records)", ordinal, len(s.declRecords))
	}
	return s.declRecords[ordinal], nil
}

func (s *Session) wave(ordinal int) (*waves.Wave, error) {
	if s.active != ModeWaves {
		return nil, fmt.Errorf("session is not in wave mode; wave records are unavailable")
	}
	if ordinal < 0 || ordinal >= len(s.waveRecords) {
		return nil, fmt.Errorf("wave ordinal %d out of range (%d waves)", ordinal, len(s.waveRecords))
	}
	return s.waveRecords[ordinal], nil
}
