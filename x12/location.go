package x12

import "fmt"

// Location identifies a position within an X12 interchange for diagnostics
// and error reporting. Unlike HL7, X12 fields carry no inferred repetition
// or component structure at this layer, so Location only descends to the
// element; a Component index is still recorded when a higher layer (schema
// or bind) reports a problem with a composite sub-field, but the tokenizer
// itself never produces one.
//
// SegmentIndex is the 0-based position of the segment within the full
// interchange byte stream (not within any loop or transaction). Element
// and Component are 1-based; zero means "the segment as a whole".
type Location struct {
	Segment      string
	SegmentIndex int
	Element      int
	Component    int
}

// Seg returns a Location identifying a segment with no element specified.
func Seg(name string, index int) Location {
	return Location{Segment: name, SegmentIndex: index}
}

// El returns a Location identifying a single element within a segment.
func El(name string, index, element int) Location {
	return Location{Segment: name, SegmentIndex: index, Element: element}
}

// String renders the location as SEG[idx]NN-CC, omitting parts that are zero.
func (l Location) String() string {
	s := l.Segment
	if l.SegmentIndex > 0 {
		s = fmt.Sprintf("%s[%d]", s, l.SegmentIndex)
	}
	if l.Element > 0 {
		s = fmt.Sprintf("%s%02d", s, l.Element)
	}
	if l.Component > 0 {
		s = fmt.Sprintf("%s-%d", s, l.Component)
	}
	return s
}
