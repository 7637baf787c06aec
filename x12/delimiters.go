package x12

import (
	"errors"
	"fmt"
	"unicode"
)

// Standard default delimiters used when a model carries none of its own
// (e.g. a freshly-built model that was never parsed from the wire).
const (
	DefaultElementDelimiter    = '*'
	DefaultRepetitionDelimiter = '^'
	DefaultComponentDelimiter  = ':'
	DefaultSegmentTerminator   = '~'
)

// isaLength is the fixed width of the ISA segment, including its terminator
// (105 content bytes plus the terminator at index 105).
const isaLength = 106

// Errors returned while detecting delimiters from the opening ISA segment.
var (
	ErrShortISA             = errors.New("ISA segment shorter than 106 bytes")
	ErrNotISASegment        = errors.New("input does not begin with ISA")
	ErrDelimiterNotDistinct = errors.New("delimiters are not pairwise distinct")
	ErrDelimiterInvalidChar = errors.New("delimiter is alphanumeric or whitespace")
)

// DelimiterError wraps a fatal failure detecting the delimiter set from the
// ISA segment (spec §4.1, §7).
type DelimiterError struct {
	Reason string
	Cause  error
}

func (e *DelimiterError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("delimiter detection failed: %s: %v", e.Reason, e.Cause)
	}
	return fmt.Sprintf("delimiter detection failed: %s", e.Reason)
}

func (e *DelimiterError) Unwrap() error { return e.Cause }

// Delimiters holds the four characters that govern X12 tokenization. They
// are discovered once from the ISA segment and reused by value for every
// segment, transaction, and the eventual render pass.
type Delimiters struct {
	Element    rune // ISA position 3 (ISA*<element>...)
	Repetition rune // ISA position 82 (ISA11)
	Component  rune // ISA position 104 (ISA16)
	Segment    rune // ISA position 105, the byte following ISA16
}

// Default returns the conventional X12 delimiter set used by the renderer
// when a model carries no delimiters of its own.
func Default() Delimiters {
	return Delimiters{
		Element:    DefaultElementDelimiter,
		Repetition: DefaultRepetitionDelimiter,
		Component:  DefaultComponentDelimiter,
		Segment:    DefaultSegmentTerminator,
	}
}

// Detect extracts the four delimiters from the fixed-layout opening ISA
// segment. It expects isa to be the 106 ISA bytes (105 content bytes plus
// the segment terminator at index 105) — callers typically obtain this via
// ReadISA.
//
// ISA layout (1-based byte offsets, all fixed-width):
//
//	ISA  *AI*AuthInfo(10)*SI*SecInfo(10)*SenderQual(2)*SenderID(15)*
//	     ReceiverQual(2)*ReceiverID(15)*Date(6)*Time(4)*RepSep(1)*
//	     Version(5)*ControlNum(9)*AckReq(1)*UsageIndicator(1)*Component(1)
//
// Position 3 (0-based index 3) is the element separator (the character
// immediately following "ISA"). Position 82 is the repetition separator.
// Position 104 is the component separator (ISA16). The byte following it,
// position 105, is the segment terminator.
func Detect(isa []byte) (Delimiters, error) {
	if len(isa) < isaLength {
		return Delimiters{}, &DelimiterError{Reason: fmt.Sprintf("got %d bytes, need %d", len(isa), isaLength), Cause: ErrShortISA}
	}
	if string(isa[0:3]) != "ISA" {
		return Delimiters{}, &DelimiterError{Reason: "missing ISA prefix", Cause: ErrNotISASegment}
	}

	d := Delimiters{
		Element:    rune(isa[3]),
		Repetition: rune(isa[82]),
		Component:  rune(isa[104]),
		Segment:    rune(isa[105]),
	}

	if err := d.validate(); err != nil {
		return Delimiters{}, &DelimiterError{Reason: "invalid delimiter set", Cause: err}
	}
	return d, nil
}

// validate enforces the distinctness and printability invariants from
// spec §3: all four delimiters must be pairwise distinct, and none may be
// alphanumeric or whitespace.
func (d Delimiters) validate() error {
	chars := []rune{d.Element, d.Repetition, d.Component, d.Segment}
	seen := make(map[rune]bool, 4)
	for _, c := range chars {
		if seen[c] {
			return ErrDelimiterNotDistinct
		}
		seen[c] = true
		if unicode.IsLetter(c) || unicode.IsDigit(c) || unicode.IsSpace(c) {
			return fmt.Errorf("%w: %q", ErrDelimiterInvalidChar, c)
		}
	}
	return nil
}

// ReadISA reads exactly the fixed 106-byte ISA segment (content plus its
// own terminator, at isa[105]) from the front of data and returns it along
// with the remainder of the input, starting immediately at the next
// segment's first byte.  It does not validate delimiter content; call
// Detect on the returned slice for that.
func ReadISA(data []byte) (isa []byte, rest []byte, err error) {
	if len(data) < isaLength {
		return nil, nil, &DelimiterError{Reason: fmt.Sprintf("got %d bytes, need at least %d", len(data), isaLength), Cause: ErrShortISA}
	}
	return data[:isaLength], data[isaLength:], nil
}

// Equal reports whether two delimiter sets are identical.
func (d Delimiters) Equal(other Delimiters) bool {
	return d == other
}
