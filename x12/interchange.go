package x12

// Interchange is the flat, loop-unaware segment stream produced by the
// tokenizer: exactly what was framed between ISA and IEA, in wire order,
// plus the delimiter set discovered from ISA. It has no notion of HL
// hierarchy, functional groups as anything but segments, or transaction
// boundaries — those are reconstructed by dispatch and loopctx on top of
// this flat list, the same way golevel7's Message is a flat segment list
// with no inferred grouping.
type Interchange struct {
	Delimiters Delimiters
	Segments   []Segment
}

// Segment returns the first segment with the given ID, scanning forward
// from the start of the interchange.
func (ic Interchange) Segment(id string) (Segment, bool) {
	for _, s := range ic.Segments {
		if s.ID == id {
			return s, true
		}
	}
	return Segment{}, false
}

// SegmentsByID returns every segment with the given ID, in wire order.
func (ic Interchange) SegmentsByID(id string) []Segment {
	var out []Segment
	for _, s := range ic.Segments {
		if s.ID == id {
			out = append(out, s)
		}
	}
	return out
}

// Slice returns the segments from index start up to but not including end,
// with both bounds clamped to the interchange; it returns nil when the
// clamped range is empty.
func (ic Interchange) Slice(start, end int) []Segment {
	if start < 0 {
		start = 0
	}
	if end > len(ic.Segments) {
		end = len(ic.Segments)
	}
	if start >= end {
		return nil
	}
	return ic.Segments[start:end]
}
