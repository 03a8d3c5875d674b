package internal

import (
	"strings"
)

// Pattern - fast interface for line match.
type Pattern interface {
	Match(string) bool
	Desc() string // for logs
}

// PlainPattern is a literal substring, optionally ASCII case-insensitive.
type PlainPattern struct {
	s           string
	insensitive bool
}

// NewPlainPattern builds the pattern for the given options.
// For insensitive patterns the needle is lowered once here.
func NewPlainPattern(s string, insensitive bool) *PlainPattern {
	if insensitive {
		s = asciiLower(s)
	}
	return &PlainPattern{s: s, insensitive: insensitive}
}

func (p *PlainPattern) Match(s string) bool {
	if p.insensitive {
		return strings.Contains(asciiLower(s), p.s)
	}
	return strings.Contains(s, p.s)
}

func (p *PlainPattern) Desc() string {
	if p.insensitive {
		return "plain:i:" + p.s
	}
	return p.s
}

// asciiLower folds only A-Z; other bytes (including non-ASCII runes) are kept.
func asciiLower(s string) string {
	for i := 0; i < len(s); i++ {
		if c := s[i]; 'A' <= c && c <= 'Z' {
			return lowerFrom(s, i)
		}
	}
	return s
}

func lowerFrom(s string, i int) string {
	b := []byte(s)
	for ; i < len(b); i++ {
		if c := b[i]; 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
