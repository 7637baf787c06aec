// Package dispatch decides which loop an incoming segment belongs to. A
// Table is a declarative set of match rules built once per (transaction
// code, version) pair; at parse time, looking up a segment's rule is an
// O(1) map lookup plus a short linear scan of same-ID candidates, never a
// walk of the whole loop tree.
package dispatch

import "github.com/edihub/x12/x12"

// FieldCondition requires a specific element to equal a fixed value for a
// Rule to match. Conditions disambiguate segments that share an ID but
// introduce different loops depending on a qualifier (e.g. NM1 with
// EntityIDCode "IL" opens the subscriber loop, "QC" opens the patient
// loop, "PR" opens the payer loop).
type FieldCondition struct {
	Position int
	Equals   string
}

// satisfies reports whether seg's element at Position equals Equals.
func (c FieldCondition) satisfies(seg x12.Segment) bool {
	return seg.At(c.Position).String() == c.Equals
}

// Rule declares that a segment matching SegmentID and every Condition
// belongs to the loop named by Target. NewInstance marks that a match
// opens a fresh instance of the target loop rather than joining one
// already open at the top of the current frame stack (see loopctx); most
// rules set it true since a loop's trigger segment is, by construction,
// the segment that starts it.
type Rule struct {
	SegmentID   string
	Conditions  []FieldCondition
	Target      string // loop ID this rule resolves to, see schema.Loop.ID
	NewInstance bool

	// RelativeToCurrent marks a rule whose Target cannot be resolved as an
	// absolute path from the transaction root, because the same trigger
	// segment opens different loops depending on which loop is currently
	// open (e.g. an EB segment belongs to loop 2110C under a subscriber or
	// 2110D under a dependent — EB itself carries no qualifier saying
	// which). When set, Target is ignored; the loop opened is whichever
	// child of the currently-open loop declares this rule's SegmentID as
	// its trigger (with NewInstance, a sibling of the open loop when that
	// loop is itself triggered by SegmentID).
	RelativeToCurrent bool
}

// Matches reports whether seg satisfies every condition on the rule. The
// caller is responsible for first filtering by SegmentID.
func (r Rule) Matches(seg x12.Segment) bool {
	for _, c := range r.Conditions {
		if !c.satisfies(seg) {
			return false
		}
	}
	return true
}
