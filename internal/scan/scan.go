// Package scan splits a continuous transport byte stream (serial port,
// file, socket) into individual candidate NMEA sentences for the decoder.
//
// It only delimits; it does not validate. Each token starts at a '$' and
// runs to the line ending or to the next '$', so a receiver that drops a
// line ending mid-stream re-synchronizes on the following sentence start.
package scan

import (
	"bufio"
	"bytes"
	"io"
)

// maxTokenLen bounds scanner buffering. Legal sentences are far shorter;
// the slack covers binary chatter between sentences on misconfigured ports.
const maxTokenLen = 4096

// Split is a bufio.SplitFunc producing one candidate sentence per token.
// Bytes before the first '$' (boot banners, binary protocol residue) are
// discarded.
func Split(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := bytes.IndexByte(data, '$')
	if start < 0 {
		// No sentence start yet; discard what we have.
		return len(data), nil, nil
	}

	for i := start + 1; i < len(data); i++ {
		switch data[i] {
		case '\r', '\n':
			return i + 1, data[start:i], nil
		case '$':
			// Missing line ending; the next sentence start delimits.
			return i, data[start:i], nil
		}
	}
	if atEOF {
		if start == len(data)-1 {
			// A lone '$' with nothing after it.
			return len(data), nil, nil
		}
		return len(data), data[start:], nil
	}
	return start, nil, nil
}

// Scanner yields candidate sentences from r. Wraps bufio.Scanner with the
// sentence split function and a bounded buffer.
type Scanner struct {
	s *bufio.Scanner
}

func NewScanner(r io.Reader) *Scanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 256), maxTokenLen)
	s.Split(Split)
	return &Scanner{s: s}
}

// Scan advances to the next candidate sentence.
func (s *Scanner) Scan() bool { return s.s.Scan() }

// Bytes returns the current candidate. The slice is only valid until the
// next Scan call, matching the decoder's borrow-for-the-call contract.
func (s *Scanner) Bytes() []byte { return s.s.Bytes() }

// Err returns the first non-EOF error hit by the underlying reader.
func (s *Scanner) Err() error { return s.s.Err() }
