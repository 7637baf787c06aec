package transactions

import (
	"testing"

	"github.com/edihub/x12/x12"
)

func TestClaimStatusRegistryHasCustomSegments(t *testing.T) {
	r := ClaimStatusRegistry()
	for _, id := range []string{"STC", "QTY", "AMT", "TRN", "ISA"} {
		if _, ok := r.Lookup(id); !ok {
			t.Errorf("ClaimStatusRegistry() missing segment schema for %s", id)
		}
	}
}

func TestClaimStatusLoopTreeShape(t *testing.T) {
	root := ClaimStatusLoopTree()
	if root.ID != ClaimStatus276 {
		t.Fatalf("root.ID = %s, want %s", root.ID, ClaimStatus276)
	}
	loop2200D := root.Find("2200D")
	if loop2200D == nil {
		t.Fatal("2200D not reachable from root")
	}
	if !loop2200D.Accepts("STC") {
		t.Error("2200D does not accept STC")
	}
}

func TestClaimStatusDispatchTableMatchesTRNAndNM1(t *testing.T) {
	table := ClaimStatusDispatchTable()

	trn := x12.NewSegment("TRN", 0, "1", "ABC123")
	rule, ok := table.Match(trn)
	if !ok || rule.Target != "2200D" {
		t.Fatalf("Match(TRN) = (%+v, %v), want 2200D", rule, ok)
	}

	patient := x12.NewSegment("NM1", 0, "IL", "1", "DOE")
	rule, ok = table.Match(patient)
	if !ok || rule.Target != "2100D" {
		t.Fatalf("Match(IL) = (%+v, %v), want 2100D", rule, ok)
	}
}

func TestBindClaimStatusTraceAndResponse(t *testing.T) {
	trn := x12.NewSegment("TRN", 0, "1", "ABC123")
	trace, err := BindClaimStatusTrace(trn)
	if err != nil {
		t.Fatalf("BindClaimStatusTrace: %v", err)
	}
	if trace.ReferenceID != "ABC123" {
		t.Errorf("ReferenceID = %q, want ABC123", trace.ReferenceID)
	}

	stc := x12.NewSegment("STC", 0, "A2:20:PR", "20210615", "", "", "250.00")
	resp, err := BindClaimStatusResponse(stc)
	if err != nil {
		t.Fatalf("BindClaimStatusResponse: %v", err)
	}
	if resp.EffectiveDate.Year() != 2021 || resp.TotalChargeAmount != 250.00 {
		t.Errorf("BindClaimStatusResponse = %+v, want year 2021, charge 250.00", resp)
	}
}
