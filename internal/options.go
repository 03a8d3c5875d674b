package internal

import (
	"errors"
)

// StdinPath selects standard input instead of a file.
const StdinPath = "-"

var ErrEmptyPath = errors.New("file path is required")

// SearchOptions - public options from CLI.
type SearchOptions struct {
	FilePath        string
	Pattern         string
	ShowLineNumber  bool
	CaseInsensitive bool
	// MaxMatches: 0 - unlimited, >0 - emit at most N, <0 - stop on first match without emitting.
	MaxMatches int
	Decompress bool
}

// Validate checks invariants.
// An empty pattern is allowed and matches every line.
func (o SearchOptions) Validate() error {
	if o.FilePath == "" {
		return ErrEmptyPath
	}
	return nil
}

// useStdin reports whether the input is standard input.
func (o SearchOptions) useStdin() bool { return o.FilePath == StdinPath }

// limitReached applies the match-limit policy to a freshly detected match.
// emitted is the number of lines already emitted.
func (o SearchOptions) limitReached(emitted int) bool {
	switch {
	case o.MaxMatches < 0:
		return true
	case o.MaxMatches > 0:
		return emitted >= o.MaxMatches
	}
	return false
}
