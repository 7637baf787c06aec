package validate

import (
	"github.com/edihub/x12/model"
	"github.com/edihub/x12/x12"
)

// Validator composes segment-, loop-, and transaction-scope rules and
// walks a bound transaction tree exactly once, in the order spec §5
// fixes: segment rules as each segment is visited, loop rules as each
// loop instance is visited (after its own segments, before recursing into
// children), transaction rules last, over the fully-assembled tree.
type Validator struct {
	segmentRules     map[string][]SegmentRule
	loopRules        map[string][]LoopRule
	transactionRules []TransactionRule
}

// New creates an empty Validator. Use AddSegmentRule/AddLoopRule/
// AddTransactionRule to register rules, mirroring the teacher's
// RuleSet.Add chaining.
func New() *Validator {
	return &Validator{
		segmentRules: make(map[string][]SegmentRule),
		loopRules:    make(map[string][]LoopRule),
	}
}

// AddSegmentRule registers a rule to run against every segment with the
// given ID, wherever it appears in the tree.
func (v *Validator) AddSegmentRule(segID string, r SegmentRule) *Validator {
	v.segmentRules[segID] = append(v.segmentRules[segID], r)
	return v
}

// AddLoopRule registers a rule to run against every instance of the loop
// with the given ID.
func (v *Validator) AddLoopRule(loopID string, r LoopRule) *Validator {
	v.loopRules[loopID] = append(v.loopRules[loopID], r)
	return v
}

// AddTransactionRule registers a rule to run once over the whole
// transaction tree. Rules run in registration order — register
// SegmentCountMatches last, per its own doc comment.
func (v *Validator) AddTransactionRule(r TransactionRule) *Validator {
	v.transactionRules = append(v.transactionRules, r)
	return v
}

// Validate walks root and returns every diagnostic produced by the
// registered rules. segmentCount is the number of segments read between
// ST and SE inclusive, passed through to transaction rules.
func (v *Validator) Validate(root *model.LoopRecord, segmentCount int) *x12.Report {
	report := &x12.Report{}
	v.walk(root, report)
	for _, r := range v.transactionRules {
		for _, d := range r(root, segmentCount) {
			report.Add(d)
		}
	}
	return report
}

func (v *Validator) walk(rec *model.LoopRecord, report *x12.Report) {
	for _, seg := range rec.Segments {
		for _, r := range v.segmentRules[seg.ID] {
			for _, d := range r(seg) {
				report.Add(d)
			}
		}
	}
	for _, r := range v.loopRules[rec.LoopID] {
		for _, d := range r(rec) {
			report.Add(d)
		}
	}
	for _, child := range rec.Children {
		v.walk(child, report)
	}
}
