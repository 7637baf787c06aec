package x12

import (
	"strings"
)

// Segment is a single X12 segment: an identifier followed by an ordered
// list of elements, as delimited by the interchange's Delimiters. Segment
// carries no knowledge of which loop or transaction it belongs to — that
// association is made by the dispatch and loopctx packages.
type Segment struct {
	ID       string
	Elements []Field
	Index    int // 0-based position within the interchange's segment stream
}

// NewSegment builds a Segment from an identifier and raw element strings.
func NewSegment(id string, index int, elements ...string) Segment {
	fields := make([]Field, len(elements))
	for i, e := range elements {
		fields[i] = Field(e)
	}
	return Segment{ID: strings.ToUpper(id), Elements: fields, Index: index}
}

// Element returns the 1-based element at pos. A request past the end of the
// segment returns an empty Field and false rather than an error: trailing
// elements are routinely omitted on the wire when every field after them is
// also empty (spec §4.2), so a missing trailing element is not itself a
// fault.
func (s Segment) Element(pos int) (Field, bool) {
	if pos < 1 || pos > len(s.Elements) {
		return "", false
	}
	return s.Elements[pos-1], true
}

// At is like Element but returns the empty Field when pos is out of range,
// for callers that want to treat "absent" and "present but empty" alike.
func (s Segment) At(pos int) Field {
	f, _ := s.Element(pos)
	return f
}

// Count returns the number of elements present in the segment.
func (s Segment) Count() int {
	return len(s.Elements)
}

// Components splits a single element on the interchange's component
// delimiter. Per spec §4.2 this split is never performed by the tokenizer
// itself — it is exposed here as a helper for the schema/bind layer, which
// decides per-field whether composite structure applies.
func (s Segment) Components(pos int, d Delimiters) []string {
	f, ok := s.Element(pos)
	if !ok || f.Empty() {
		return nil
	}
	return strings.Split(string(f), string(d.Component))
}

// Repetitions splits a single element on the interchange's repetition
// delimiter, for the (rare in 005010) fields declared as repeating.
func (s Segment) Repetitions(pos int, d Delimiters) []string {
	f, ok := s.Element(pos)
	if !ok || f.Empty() {
		return nil
	}
	return strings.Split(string(f), string(d.Repetition))
}

// Loc builds a Location identifying this segment, or a specific element
// within it when element > 0.
func (s Segment) Loc(element int) Location {
	return Location{Segment: s.ID, SegmentIndex: s.Index, Element: element}
}
