package validate

import (
	"testing"

	"github.com/edihub/x12/model"
	"github.com/edihub/x12/x12"
)

func TestNM1EntityConsistencyFlagsNonPersonNames(t *testing.T) {
	rule := NM1EntityConsistency()

	org := x12.NewSegment("NM1", 0, "PR", "2", "ABC INSURANCE", "JANE", "Q")
	diags := rule(org)
	if len(diags) != 2 {
		t.Fatalf("NM1EntityConsistency(org with names) = %d diagnostics, want 2", len(diags))
	}

	person := x12.NewSegment("NM1", 0, "IL", "1", "DOE", "JANE")
	if diags := rule(person); len(diags) != 0 {
		t.Errorf("NM1EntityConsistency(person) = %+v, want none", diags)
	}

	other := x12.NewSegment("REF", 0, "EJ", "123")
	if diags := rule(other); diags != nil {
		t.Errorf("NM1EntityConsistency(non-NM1 segment) = %+v, want nil", diags)
	}
}

func TestNoDuplicateREFQualifiers(t *testing.T) {
	rule := NoDuplicateREFQualifiers()
	rec := model.NewRecord("2100C", nil)
	rec.AddSegment(x12.NewSegment("REF", 0, "EJ", "ALT001"))
	rec.AddSegment(x12.NewSegment("REF", 1, "EJ", "ALT002"))
	rec.AddSegment(x12.NewSegment("REF", 2, "1L", "GRP001"))

	diags := rule(rec)
	if len(diags) != 1 {
		t.Fatalf("NoDuplicateREFQualifiers = %d diagnostics, want 1 (second EJ)", len(diags))
	}
}

func TestHLHierarchyValid(t *testing.T) {
	rule := HLHierarchyValid()
	root := model.NewRecord("270", nil)
	root.AddSegment(x12.NewSegment("HL", 0, "1", "", "20", "1"))
	root.AddSegment(x12.NewSegment("HL", 1, "2", "1", "21", "1"))
	root.AddSegment(x12.NewSegment("HL", 2, "3", "9", "22", "0"))

	diags := rule(root, 3)
	if len(diags) != 1 {
		t.Fatalf("HLHierarchyValid = %d diagnostics, want 1 (HL 3 points at unseen parent 9)", len(diags))
	}
}

func TestSegmentCountMatches(t *testing.T) {
	rule := SegmentCountMatches()

	ok := model.NewRecord("270", nil)
	ok.AddSegment(x12.NewSegment("SE", 0, "5", "0001"))
	if diags := rule(ok, 5); len(diags) != 0 {
		t.Errorf("SegmentCountMatches(matching count) = %+v, want none", diags)
	}

	mismatch := model.NewRecord("270", nil)
	mismatch.AddSegment(x12.NewSegment("SE", 0, "99", "0001"))
	diags := rule(mismatch, 5)
	if len(diags) != 1 || diags[0].Rule != "se-count" {
		t.Fatalf("SegmentCountMatches(mismatch) = %+v, want one se-count diagnostic", diags)
	}

	missing := model.NewRecord("270", nil)
	diags = rule(missing, 5)
	if len(diags) != 1 || diags[0].Severity != x12.SeverityFatal {
		t.Fatalf("SegmentCountMatches(no SE) = %+v, want one fatal diagnostic", diags)
	}
}

func TestValidatorWalksSegmentLoopAndTransactionRules(t *testing.T) {
	v := New().
		AddSegmentRule("NM1", NM1EntityConsistency()).
		AddLoopRule("2100C", NoDuplicateREFQualifiers()).
		AddTransactionRule(SegmentCountMatches())

	root := model.NewRecord("270", nil)
	root.AddSegment(x12.NewSegment("SE", 0, "3", "0001"))

	sub := model.NewRecord("2100C", root)
	root.AddChild(sub)
	sub.AddSegment(x12.NewSegment("NM1", 1, "IL", "2", "ABC", "JANE"))
	sub.AddSegment(x12.NewSegment("REF", 2, "EJ", "1"))
	sub.AddSegment(x12.NewSegment("REF", 3, "EJ", "2"))

	report := v.Validate(root, 3)
	if len(report.Diagnostics) != 2 {
		t.Fatalf("Validate() produced %d diagnostics, want 2 (nm1-entity-consistency + no-duplicate-ref)", len(report.Diagnostics))
	}
}
