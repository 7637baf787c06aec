// Package tokenize turns a raw X12 interchange byte stream into a flat
// sequence of x12.Segment values. It knows about delimiters and segment
// framing only; it has no notion of loops, transactions, or schemas.
package tokenize

import (
	"bytes"
	"strings"
	"unicode"

	"github.com/edihub/x12/x12"
)

// Scanner is a pull-based, lazy reader over an interchange's segment
// stream, in the style of bufio.Scanner: call Scan until it returns false,
// then read Segment after each successful call and Err once after the
// loop ends. The whole interchange is held in memory (X12 segments must be
// delimiter-scanned, not line-scanned, so there is no meaningful partial
// read), but segments are only materialized as the caller consumes them.
type Scanner struct {
	data   []byte
	pos    int
	delims x12.Delimiters
	cfg    config
	index  int
	cur    x12.Segment
	err    error
	isaRaw []byte
}

// New creates a Scanner over data. Unless WithDelimiters is supplied, it
// reads the fixed 106-byte ISA segment from the front of data and detects
// the delimiter set from it (x12.ReadISA, x12.Detect) before any segment is
// returned by Scan.
func New(data []byte, opts ...Option) (*Scanner, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	s := &Scanner{data: data, cfg: cfg}
	if cfg.delimiters != nil {
		d := *cfg.delimiters
		s.delims = x12.Delimiters{Element: d[0], Repetition: d[1], Component: d[2], Segment: d[3]}
		return s, nil
	}

	isa, rest, err := x12.ReadISA(data)
	if err != nil {
		return nil, err
	}
	delims, err := x12.Detect(isa)
	if err != nil {
		return nil, err
	}
	s.delims = delims
	s.isaRaw = isa
	s.pos = len(data) - len(rest)
	return s, nil
}

// Delimiters returns the delimiter set this scanner is using.
func (s *Scanner) Delimiters() x12.Delimiters { return s.delims }

// Scan advances to the next segment, returning false at end of input or on
// error. Callers must check Err after the final false return.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}

	if s.isaRaw != nil {
		// isaRaw carries ReadISA's full 106-byte slice, terminator included
		// (isa[105]) — trim it here since every other segment's terminator
		// is consumed by findTerminator before parseSegment ever sees the
		// raw bytes, and ISA16 (the component separator) would otherwise
		// come back fused with the terminator character.
		raw := bytes.TrimSuffix(s.isaRaw, []byte(string(s.delims.Segment)))
		s.isaRaw = nil
		seg, err := s.parseSegment(raw, 0)
		if err != nil {
			s.err = err
			return false
		}
		s.cur = seg
		s.index = 1
		return true
	}

	for {
		s.skipLineBreaks()
		if s.pos >= len(s.data) {
			return false
		}
		if s.index >= s.cfg.maxSegments {
			s.err = &x12.TokenError{Offset: s.pos, Reason: "interchange exceeds maximum segment count"}
			return false
		}

		start := s.pos
		end := s.findTerminator()

		if end == -1 {
			s.pos = len(s.data)
			if len(bytes.TrimSpace(s.data[start:])) == 0 {
				return false
			}
			s.err = &x12.TokenError{Offset: start, Reason: "unterminated final segment"}
			return false
		}
		raw := s.data[start:end]
		s.pos = end + 1

		if len(bytes.TrimSpace(raw)) == 0 {
			if s.cfg.allowEmptySegments {
				continue
			}
			s.err = &x12.TokenError{Offset: start, Reason: "empty segment"}
			return false
		}

		seg, err := s.parseSegment(raw, start)
		if err != nil {
			s.err = err
			return false
		}
		s.cur = seg
		s.index++
		return true
	}
}

// Segment returns the segment produced by the most recent successful Scan.
func (s *Scanner) Segment() x12.Segment { return s.cur }

// Err returns the first error encountered, if any.
func (s *Scanner) Err() error { return s.err }

func (s *Scanner) skipLineBreaks() {
	for s.pos < len(s.data) && (s.data[s.pos] == '\r' || s.data[s.pos] == '\n') {
		s.pos++
	}
}

func (s *Scanner) findTerminator() int {
	for i := s.pos; i < len(s.data); i++ {
		if rune(s.data[i]) == s.delims.Segment {
			return i
		}
	}
	return -1
}

func (s *Scanner) parseSegment(raw []byte, offset int) (x12.Segment, error) {
	parts := strings.Split(string(raw), string(s.delims.Element))
	id := strings.ToUpper(strings.TrimSpace(parts[0]))
	if !isValidSegmentID(id) {
		return x12.Segment{}, &x12.TokenError{Offset: offset, Reason: "invalid segment identifier", Cause: x12.ErrInvalidSegmentID}
	}

	elements := parts[1:]
	for _, e := range elements {
		if len(e) > s.cfg.maxElementSize {
			return x12.Segment{}, &x12.TokenError{Offset: offset, Reason: "element exceeds maximum size"}
		}
	}

	idx := s.index
	return x12.NewSegment(id, idx, elements...), nil
}

func isValidSegmentID(id string) bool {
	if len(id) < 2 || len(id) > 3 {
		return false
	}
	for i, r := range id {
		if i == 0 && !unicode.IsLetter(r) {
			return false
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// Tokenize is a convenience wrapper that drains a Scanner into a complete
// x12.Interchange. Use the Scanner directly when streaming large inputs
// matters; Tokenize is the common case for transaction-sized interchanges.
func Tokenize(data []byte, opts ...Option) (x12.Interchange, error) {
	s, err := New(data, opts...)
	if err != nil {
		return x12.Interchange{}, err
	}
	var segs []x12.Segment
	for s.Scan() {
		segs = append(segs, s.Segment())
	}
	if err := s.Err(); err != nil {
		return x12.Interchange{}, err
	}
	return x12.Interchange{Delimiters: s.Delimiters(), Segments: segs}, nil
}
