package transactions

import "testing"

func TestIsStructural(t *testing.T) {
	if IsStructural(Eligibility270) {
		t.Error("IsStructural(270) = true, want false (270 is fully modeled)")
	}
	if !IsStructural("835") {
		t.Error("IsStructural(835) = false, want true")
	}
	if IsStructural("999") {
		t.Error("IsStructural(999) = true, want false (not a recognized code at all)")
	}
}

func TestSupportedCodesListsModeledCodesFirst(t *testing.T) {
	codes := SupportedCodes()
	if len(codes) != 11 {
		t.Fatalf("SupportedCodes() = %d codes, want 11 (4 modeled + 7 structural)", len(codes))
	}
	want := []string{Eligibility270, Eligibility271, ClaimStatus276, ClaimStatus277}
	for i, code := range want {
		if codes[i] != code {
			t.Errorf("SupportedCodes()[%d] = %s, want %s", i, codes[i], code)
		}
	}
}

func TestStructuralRegistryHasEnvelopeSegments(t *testing.T) {
	r := StructuralRegistry()
	if _, ok := r.Lookup("ISA"); !ok {
		t.Error("StructuralRegistry() missing ISA")
	}
}
