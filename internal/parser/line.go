package parser

import (
	"bufio"
	"io"
)

// isNewlineChar returns whether the given character is '\n' or '\r'.
func isNewlineChar(b byte) bool {
	return b == '\n' || b == '\r'
}

// splitLine is a split function for a bufio.Scanner that splits a sequence
// of bytes into lines. A line ends with a newline sequence, defined as
// either "\n", "\r", or "\r\n"; the sequence is not part of the token.
func splitLine(data []byte, atEOF bool) (advance int, token []byte, err error) {
	for i, l := 0, len(data); i < l; i++ {
		if !isNewlineChar(data[i]) {
			continue
		}

		advance = i + 1
		if data[i] == '\r' {
			if i == l-1 && !atEOF {
				// The buffer ends in '\r'; we can't yet tell whether an
				// '\n' follows it, so we request more data.
				return 0, nil, nil
			}
			if i < l-1 && data[i+1] == '\n' {
				advance++
			}
		}

		return advance, data[:i], nil
	}

	if atEOF && len(data) > 0 {
		// The stream ended without a final newline; the remainder is the
		// last line.
		return len(data), data, nil
	}

	return 0, nil, nil
}

// LineScanner reads newline terminated lines from a stream, blocking until
// a full line is available or the stream ends.
type LineScanner struct {
	s *bufio.Scanner
}

// NewLineScanner returns a LineScanner reading lines from r.
func NewLineScanner(r io.Reader) *LineScanner {
	s := bufio.NewScanner(r)
	s.Split(splitLine)

	return &LineScanner{s: s}
}

// Scan advances to the next line. It returns false when the stream ends or
// a read fails.
func (l *LineScanner) Scan() bool {
	return l.s.Scan()
}

// Line returns the current line, without its newline sequence.
func (l *LineScanner) Line() string {
	return l.s.Text()
}

// Err returns the first error encountered while reading, excluding io.EOF.
func (l *LineScanner) Err() error {
	return l.s.Err()
}
