package internal

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanString(t *testing.T, opts SearchOptions, input string) (ScanResult, []string) {
	t.Helper()
	if opts.FilePath == "" {
		opts.FilePath = "test.txt"
	}
	var out []string
	res, err := NewLineScanner(opts).ScanReader(context.Background(), strings.NewReader(input), func(m MatchResult) {
		out = append(out, m.Output)
	})
	require.NoError(t, err)
	return res, out
}

func TestScan_CaseSensitiveExample(t *testing.T) {
	res, out := scanString(t, SearchOptions{Pattern: "an"}, "apple\nBanana\ngrape\n")
	assert.True(t, res.Found)
	assert.Equal(t, []string{"Banana"}, out)
}

func TestScan_NoMatch(t *testing.T) {
	res, out := scanString(t, SearchOptions{Pattern: "kiwi"}, "apple\nBanana\n")
	assert.False(t, res.Found)
	assert.Empty(t, out)
	assert.Equal(t, 2, res.Stats.Lines)
}

func TestScan_CaseSensitiveMiss(t *testing.T) {
	res, _ := scanString(t, SearchOptions{Pattern: "Foo"}, "this has foo in it\n")
	assert.False(t, res.Found)
}

func TestScan_CaseInsensitive(t *testing.T) {
	res, out := scanString(t, SearchOptions{Pattern: "Foo", CaseInsensitive: true}, "this has foo in it\nbar\n")
	assert.True(t, res.Found)
	assert.Equal(t, []string{"this has foo in it"}, out)
}

func TestScan_LineNumbersCountAllLines(t *testing.T) {
	_, out := scanString(t, SearchOptions{Pattern: "x", ShowLineNumber: true}, "a\nx1\nb\nc\nx2\n")
	assert.Equal(t, []string{"2:x1", "5:x2"}, out)
}

func TestScan_UndecodableLineKeepsNumbering(t *testing.T) {
	res, out := scanString(t, SearchOptions{Pattern: "hit", ShowLineNumber: true}, "hit\n\xff hit\nhit\n")
	assert.Equal(t, []string{"1:hit", "3:hit"}, out)
	assert.Equal(t, 1, res.Stats.Skipped)
	assert.Equal(t, 3, res.Stats.Lines)
}

func TestScan_PositiveLimit(t *testing.T) {
	input := "m1\nm2\nm3\nm4\nm5\n"
	res, out := scanString(t, SearchOptions{Pattern: "m", MaxMatches: 2}, input)
	assert.True(t, res.Found)
	assert.True(t, res.Halted)
	assert.Equal(t, []string{"m1", "m2"}, out)
	// halted on the third detected match
	assert.Equal(t, 3, res.Stats.Matches)
	assert.Equal(t, 3, res.Stats.Lines)
}

func TestScan_PositiveLimitNotReached(t *testing.T) {
	res, out := scanString(t, SearchOptions{Pattern: "m", MaxMatches: 5}, "m1\nx\nm2\n")
	assert.False(t, res.Halted)
	assert.Equal(t, []string{"m1", "m2"}, out)
}

func TestScan_NegativeLimitSuppressesAll(t *testing.T) {
	res, out := scanString(t, SearchOptions{Pattern: "m", MaxMatches: -1}, "x\nm1\nm2\n")
	assert.True(t, res.Found)
	assert.True(t, res.Halted)
	assert.Empty(t, out)
	assert.Equal(t, 2, res.Stats.Lines)
}

func TestScan_UnlimitedEmitsEverything(t *testing.T) {
	_, out := scanString(t, SearchOptions{Pattern: ""}, "a\n\nb\n")
	assert.Equal(t, []string{"a", "", "b"}, out)
}

func TestScan_ReadErrorKeepsResults(t *testing.T) {
	r := io.MultiReader(strings.NewReader("foo\nbar\n"), &errorReader{})
	var out []string
	res, err := NewLineScanner(SearchOptions{FilePath: "f", Pattern: "foo"}).ScanReader(context.Background(), r, func(m MatchResult) {
		out = append(out, m.Output)
	})
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []string{"foo"}, out)
}

func TestScan_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewLineScanner(SearchOptions{FilePath: "f", Pattern: "a"}).ScanReader(ctx, strings.NewReader("a\n"), func(MatchResult) {
		t.Fatal("no line must be emitted after cancel")
	})
	require.ErrorIs(t, err, context.Canceled)
}

func TestScan_MatchResultFields(t *testing.T) {
	var got []MatchResult
	_, err := NewLineScanner(SearchOptions{FilePath: "f", Pattern: "b"}).ScanReader(context.Background(), strings.NewReader("a\nb\n"), func(m MatchResult) {
		got = append(got, m)
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].LineNumber)
	assert.Equal(t, "b", got[0].Line)
	assert.Equal(t, "b", got[0].Output)
}

func TestScan_CarriageReturnOnLastLine(t *testing.T) {
	res, out := scanString(t, SearchOptions{Pattern: "\r"}, "abc\r")
	assert.True(t, res.Found)
	assert.Equal(t, []string{"abc\r"}, out)

	res, _ = scanString(t, SearchOptions{Pattern: "\r"}, "abc\r\n")
	assert.False(t, res.Found)
}
