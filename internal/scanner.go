package internal

import (
	"context"
	"io"
	"strconv"

	"github.com/sirupsen/logrus"
)

// MatchResult is reported to a callback for every emitted line.
type MatchResult struct {
	LineNumber int
	Line       string
	// Output is the formatted line: "N:text" with line numbers, else the text.
	Output string
}

// ScanResult summarises one scan.
type ScanResult struct {
	Found bool
	// Halted is set when the match limit stopped the scan before the input ended.
	Halted bool
	Stats  ScanStats
}

// LineScanner searches one line source for a literal pattern.
type LineScanner struct {
	opts    SearchOptions
	pattern Pattern
}

func NewLineScanner(opts SearchOptions) *LineScanner {
	return &LineScanner{
		opts:    opts,
		pattern: NewPlainPattern(opts.Pattern, opts.CaseInsensitive),
	}
}

// Scan opens the configured input and scans it. An *OpenError means nothing was scanned.
func (ls *LineScanner) Scan(ctx context.Context, onMatch func(MatchResult)) (ScanResult, error) {
	src, err := OpenSource(ctx, ls.opts)
	if err != nil {
		return ScanResult{}, err
	}
	defer src.Close()
	return ls.ScanReader(ctx, src, onMatch)
}

// ScanReader scans r line by line and calls onMatch for every emitted match.
// Undecodable lines are counted but never tested. A read error ends the scan
// early; what was found up to that point is kept and the error is logged.
func (ls *LineScanner) ScanReader(ctx context.Context, r io.Reader, onMatch func(MatchResult)) (ScanResult, error) {
	var res ScanResult
	res.Stats.Start()
	defer res.Stats.Log(ls.opts.FilePath)

	lr := NewLineReader(r)
	lineNumber := 0
	for line := range lr.Lines() {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		lineNumber++
		res.Stats.Lines++
		if !line.Valid {
			res.Stats.Skipped++
			logrus.WithFields(logrus.Fields{"file": ls.opts.FilePath, "line": lineNumber}).Debug("Skip undecodable line")
			continue
		}
		if !ls.pattern.Match(line.Text) {
			continue
		}
		res.Found = true
		res.Stats.Matches++

		if ls.opts.limitReached(res.Stats.Emitted) {
			res.Halted = true
			logrus.WithFields(logrus.Fields{"line": lineNumber, "max": ls.opts.MaxMatches}).Debug("Match limit reached")
			break
		}
		res.Stats.Emitted++
		onMatch(MatchResult{
			LineNumber: lineNumber,
			Line:       line.Text,
			Output:     ls.format(lineNumber, line.Text),
		})
	}
	if err := lr.Err(); err != nil {
		logrus.WithError(err).WithField("file", ls.opts.FilePath).Warn("Read failed, scan stopped early")
	}
	return res, nil
}

func (ls *LineScanner) format(n int, text string) string {
	if ls.opts.ShowLineNumber {
		return strconv.Itoa(n) + ":" + text
	}
	return text
}
