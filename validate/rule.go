// Package validate runs segment-, loop-, and transaction-scope semantic
// rules over a bound model.LoopRecord tree, in the field-shape → segment →
// loop → transaction order fixed by spec §5. Field shape itself is bind's
// job (bind.Shape); this package picks up once a segment's elements are
// already known to coerce, and checks the relationships shape alone
// cannot: entity-type-dependent field combinations, duplicate qualifiers
// within a loop, HL parent/child integrity, SE segment counts. Like the
// teacher's Rule/Validator split, every rule here returns accumulated
// diagnostics rather than aborting (spec §7).
package validate

import (
	"github.com/edihub/x12/model"
	"github.com/edihub/x12/x12"
)

// SegmentRule validates a single segment in isolation from its siblings.
type SegmentRule func(seg x12.Segment) []x12.Diagnostic

// LoopRule validates one loop instance against the segments and children
// it owns directly.
type LoopRule func(rec *model.LoopRecord) []x12.Diagnostic

// TransactionRule validates the whole bound transaction set. segmentCount
// is the number of segments actually read between ST and SE inclusive, for
// the SE count check.
type TransactionRule func(root *model.LoopRecord, segmentCount int) []x12.Diagnostic
