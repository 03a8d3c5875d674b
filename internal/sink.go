package internal

import (
	"fmt"
	"io"
)

const (
	NotFoundNotice     = "Not found."
	FileNotFoundNotice = "File not found."
)

// PrintHeader echoes the searched pattern and path.
func PrintHeader(w io.Writer, opts SearchOptions) {
	fmt.Fprintf(w, "pattern searched:%q\nfile path:%q\n", opts.Pattern, opts.FilePath)
}

// NewResultSink returns a callback writing emitted lines to w, one per line.
func NewResultSink(w io.Writer) func(MatchResult) {
	return func(res MatchResult) {
		_, _ = io.WriteString(w, res.Output+"\n")
	}
}
