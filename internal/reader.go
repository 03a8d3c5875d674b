package internal

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"unicode/utf8"

	"github.com/mholt/archives"
	"github.com/sirupsen/logrus"
)

const readBufSize = 64 * 1024

var errDirectory = errors.New("is a directory")

// Line is one element of the line sequence: decoded text or a decode failure.
type Line struct {
	Text  string
	Valid bool
}

// OpenError is returned when the input cannot be opened at all.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string { return fmt.Sprintf("open %s: %v", e.Path, e.Err) }
func (e *OpenError) Unwrap() error { return e.Err }

// OpenSource opens the input named by opts.
// Stdin is never closed by the returned closer.
// With opts.Decompress a recognised compressed stream is decompressed on the fly;
// anything else is returned as-is.
func OpenSource(ctx context.Context, opts SearchOptions) (io.ReadCloser, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	var (
		name string
		src  io.ReadCloser
	)
	if opts.useStdin() {
		name, src = "", io.NopCloser(os.Stdin)
	} else {
		f, err := os.Open(opts.FilePath)
		if err != nil {
			return nil, &OpenError{Path: opts.FilePath, Err: err}
		}
		if st, err := f.Stat(); err == nil && st.IsDir() {
			_ = f.Close()
			return nil, &OpenError{Path: opts.FilePath, Err: errDirectory}
		}
		name, src = opts.FilePath, f
	}
	if !opts.Decompress {
		return src, nil
	}
	rc, err := decompress(ctx, name, src)
	if err != nil {
		_ = src.Close()
		return nil, &OpenError{Path: opts.FilePath, Err: err}
	}
	return rc, nil
}

// decompress wraps src in a decompressor when archives identifies a compression format.
func decompress(ctx context.Context, name string, src io.ReadCloser) (io.ReadCloser, error) {
	format, stream, err := archives.Identify(ctx, name, src)
	if stream == nil {
		stream = src
	}
	if err != nil {
		logrus.WithField("file", name).Debug("Not a compressed stream, scanning as-is")
		return rewound(src, stream)
	}
	dec, ok := format.(archives.Decompressor)
	if !ok {
		logrus.WithFields(logrus.Fields{"file": name, "format": format.Extension()}).Debug("Archive format is not a plain compression, scanning as-is")
		return rewound(src, stream)
	}
	rc, err := dec.OpenReader(stream)
	if err != nil {
		return nil, fmt.Errorf("decompress %s: %w", format.Extension(), err)
	}
	logrus.WithFields(logrus.Fields{"file": name, "format": format.Extension()}).Debug("Decompressing input")
	return &stackedCloser{ReadCloser: rc, under: src}, nil
}

// rewound returns a reader positioned at the start of the original input.
func rewound(src io.ReadCloser, stream io.Reader) (io.ReadCloser, error) {
	if s, ok := src.(io.Seeker); ok {
		if _, err := s.Seek(0, io.SeekStart); err != nil {
			return nil, err
		}
		return src, nil
	}
	return &stackedCloser{ReadCloser: io.NopCloser(stream), under: src}, nil
}

type stackedCloser struct {
	io.ReadCloser
	under io.Closer
}

func (c *stackedCloser) Close() error {
	err := c.ReadCloser.Close()
	if uerr := c.under.Close(); err == nil {
		err = uerr
	}
	return err
}

// LineReader streams newline-delimited lines from a reader.
type LineReader struct {
	br  *bufio.Reader
	err error
}

func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{br: bufio.NewReaderSize(r, readBufSize)}
}

// Lines yields every line once, in order. "\n" and a "\r" right before it are
// stripped; a final unterminated line is yielded as-is. Lines that are not valid UTF-8 are
// yielded with Valid=false. The sequence is single-use.
func (lr *LineReader) Lines() iter.Seq[Line] {
	return func(yield func(Line) bool) {
		for {
			b, err := lr.br.ReadBytes('\n')
			if len(b) > 0 {
				if bytes.HasSuffix(b, []byte{'\n'}) {
					b = bytes.TrimSuffix(b[:len(b)-1], []byte{'\r'})
				}
				if !yield(Line{Text: string(b), Valid: utf8.Valid(b)}) {
					return
				}
			}
			if err != nil {
				if err != io.EOF {
					lr.err = err
				}
				return
			}
		}
	}
}

// Err returns the read error that ended the sequence, if any (never io.EOF).
func (lr *LineReader) Err() error { return lr.err }
