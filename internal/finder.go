package internal

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Outcome of one search invocation.
type Outcome struct {
	Found      bool
	OpenFailed bool
	Result     ScanResult
}

// Search runs one full invocation and writes everything user-facing to w:
// the header, emitted lines, then the notices. Failing to open the input is
// reported on w and is not an error; the "not found" check still runs after it.
func Search(ctx context.Context, opts SearchOptions, w io.Writer) (Outcome, error) {
	if err := opts.Validate(); err != nil {
		return Outcome{}, err
	}
	logrus.WithFields(logrus.Fields{
		"file":        opts.FilePath,
		"pattern":     opts.Pattern,
		"line_number": opts.ShowLineNumber,
		"insensitive": opts.CaseInsensitive,
		"max":         opts.MaxMatches,
		"decompress":  opts.Decompress,
	}).Debug("Search started")

	PrintHeader(w, opts)

	var out Outcome
	res, err := NewLineScanner(opts).Scan(ctx, NewResultSink(w))
	var openErr *OpenError
	switch {
	case errors.As(err, &openErr):
		logrus.WithError(openErr.Err).WithField("file", openErr.Path).Warn("Cannot open input")
		fmt.Fprintln(w, FileNotFoundNotice)
		out.OpenFailed = true
	case err != nil:
		return Outcome{Result: res, Found: res.Found}, fmt.Errorf("scan %s: %w", opts.FilePath, err)
	}
	out.Result = res
	out.Found = res.Found

	if !out.Found {
		fmt.Fprintln(w, NotFoundNotice)
	}
	return out, nil
}
