// Package idgen issues monotonically increasing identifiers backed by
// a sidecar counter file, so ids survive process restarts.
package idgen

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Sequence owns one counter file. The file's sole content is the
// last-issued identifier. Sequences assume a single process writer.
type Sequence struct {
	path string
	log  *slog.Logger
	last uint64
}

// NewSequence seeds the counter from its file. A missing or corrupt
// file seeds zero, so the first issued identifier is 1.
func NewSequence(path string, log *slog.Logger) *Sequence {
	s := &Sequence{path: path, log: log}
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn("id counter unreadable, seeding from zero", "path", path, "error", err)
		}
		return s
	}
	last, err := strconv.ParseUint(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		log.Warn("id counter corrupt, seeding from zero", "path", path, "error", err)
		return s
	}
	s.last = last
	return s
}

// Next issues the next identifier and persists it before returning.
// On a persist failure the error is returned, but the in-memory
// counter keeps the advanced value so a retry after the error can
// never reissue an identifier within this process lifetime.
func (s *Sequence) Next() (uint64, error) {
	s.last++
	id := s.last
	if err := os.WriteFile(s.path, []byte(strconv.FormatUint(id, 10)+"\n"), 0o644); err != nil {
		return id, fmt.Errorf("persist id counter %s: %w", s.path, err)
	}
	return id, nil
}

// Current reports the last-issued identifier, zero if none.
func (s *Sequence) Current() uint64 {
	return s.last
}
