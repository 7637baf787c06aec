package schema

import "testing"

func TestDefaultRegistryHasEnvelopeSegments(t *testing.T) {
	r := Default()
	for _, id := range []string{"ISA", "GS", "ST", "SE", "GE", "IEA", "BHT", "HL", "NM1"} {
		if _, ok := r.Lookup(id); !ok {
			t.Errorf("Default() registry missing segment schema for %s", id)
		}
	}
}

func TestRegistryMerge(t *testing.T) {
	base := NewRegistry()
	base.Register(NewSegment("NM1", At(1, "NM101").OfType(Identifier).Build()))

	ext := NewRegistry()
	ext.Register(NewSegment("EB", At(1, "EB01").OfType(Identifier).Required().Build()))
	ext.Register(NewSegment("NM1", At(1, "NM101").OfType(Identifier).Required().Build()))

	merged := base.Merge(ext)

	eb, ok := merged.Lookup("EB")
	if !ok {
		t.Fatal("merged registry missing EB")
	}
	if len(eb.Fields) != 1 {
		t.Fatalf("EB fields = %v, want 1", eb.Fields)
	}

	nm1, ok := merged.Lookup("NM1")
	if !ok {
		t.Fatal("merged registry missing NM1")
	}
	f, _ := nm1.Field(1)
	if !f.Required {
		t.Error("Merge did not overwrite NM1 with ext's Required field")
	}
}

func TestRegistryLookupInLoopAppliesOverride(t *testing.T) {
	r := NewRegistry()
	r.Register(NewSegment("STC", At(1, "STC01").OfType(String).Build()))
	r.RegisterOverride("2200D", "STC", Override{
		FieldName: "STC01",
		Tighter:   At(1, "STC01").OfType(Identifier).Required().Codes("A1", "A2").Build(),
	})

	base, ok := r.LookupInLoop("STC", "9999Z")
	if !ok {
		t.Fatal("LookupInLoop with no override registered for this loop: want found")
	}
	f, _ := base.Field(1)
	if f.Type != String || f.Required {
		t.Errorf("STC01 outside 2200D = %+v, want untouched base field", f)
	}

	tight, ok := r.LookupInLoop("STC", "2200D")
	if !ok {
		t.Fatal("LookupInLoop(STC, 2200D): want found")
	}
	f, _ = tight.Field(1)
	if f.Type != Identifier || !f.Required || len(f.Codes) != 2 {
		t.Errorf("STC01 within 2200D = %+v, want overridden to a required 2-code Identifier", f)
	}

	// The base registration is untouched by the override.
	f, _ = base.Field(1)
	if f.Type != String {
		t.Error("RegisterOverride mutated the base schema's field in place")
	}
}

func TestLoopAcceptsAndFind(t *testing.T) {
	child := NewLoop("2100C", "NM1", false, "NM1", "REF")
	root := NewLoop("270", "ST", false, "ST", "BHT", "SE").WithChildren(child)

	if !root.Accepts("BHT") {
		t.Error("root.Accepts(BHT) = false, want true")
	}
	if root.Accepts("NM1") {
		t.Error("root.Accepts(NM1) = true, want false (NM1 belongs to the child loop, not root)")
	}
	if !child.Accepts("REF") {
		t.Error("child.Accepts(REF) = false, want true")
	}

	found := root.Find("2100C")
	if found == nil || found.ID != "2100C" {
		t.Fatalf("Find(2100C) = %v, want the child loop", found)
	}
	if root.Find("nope") != nil {
		t.Error("Find of a nonexistent loop ID returned non-nil")
	}
}
