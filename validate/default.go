package validate

// Default returns the Validator used for every transaction set: the
// cross-cutting semantic rules that apply regardless of transaction code
// (NM1 entity consistency, no-duplicate-REF within a loop, HL hierarchy
// integrity, SE segment count). Transaction-specific rules can be layered
// on top via AddSegmentRule/AddLoopRule on the returned Validator.
func Default() *Validator {
	v := New().
		AddSegmentRule("NM1", NM1EntityConsistency()).
		AddTransactionRule(HLHierarchyValid())

	// NoDuplicateREFQualifiers is registered against every loop ID that
	// carries a REF segment in the 270/271 and 276/277 hierarchies; a loop
	// ID not in this list simply never triggers the rule.
	for _, loopID := range []string{"2100A", "2100B", "2100C", "2100D", "2110C", "2110D", "2200D"} {
		v.AddLoopRule(loopID, NoDuplicateREFQualifiers())
	}

	// SegmentCountMatches must run after every other transaction rule, per
	// its own doc comment on reporting order.
	v.AddTransactionRule(SegmentCountMatches())
	return v
}
