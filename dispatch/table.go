package dispatch

import (
	"fmt"

	"github.com/edihub/x12/x12"
)

// Table is an immutable, process-wide dispatch table for one transaction
// set implementation. Build it once with NewTable/Add at package init
// time and share it across every parse of that transaction code.
type Table struct {
	rules map[string][]Rule
}

// NewTable creates an empty dispatch table.
func NewTable() *Table {
	return &Table{rules: make(map[string][]Rule)}
}

// Add registers a rule. It returns an error if an existing rule for the
// same SegmentID already matches an identical condition set — such a tie
// can never be resolved at dispatch time and indicates a configuration
// mistake in the rule table itself, not malformed input.
func (t *Table) Add(r Rule) error {
	for _, existing := range t.rules[r.SegmentID] {
		if sameConditions(existing.Conditions, r.Conditions) {
			return fmt.Errorf("dispatch: duplicate rule for segment %s with identical conditions (targets %q and %q)",
				r.SegmentID, existing.Target, r.Target)
		}
	}
	t.rules[r.SegmentID] = append(t.rules[r.SegmentID], r)
	return nil
}

// MustAdd is Add but panics on error, for use in package-level table
// construction where a tie is a programming error caught long before any
// real input is parsed.
func (t *Table) MustAdd(r Rule) *Table {
	if err := t.Add(r); err != nil {
		panic(err)
	}
	return t
}

// Match returns the first rule whose SegmentID and Conditions are
// satisfied by seg. Rules are tried in registration order, so a general
// rule with no conditions should be registered after its more specific
// conditioned siblings.
func (t *Table) Match(seg x12.Segment) (Rule, bool) {
	for _, r := range t.rules[seg.ID] {
		if r.Matches(seg) {
			return r, true
		}
	}
	return Rule{}, false
}

func sameConditions(a, b []FieldCondition) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
