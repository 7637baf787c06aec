package schema

import "testing"

func TestFieldValidCode(t *testing.T) {
	f := At(12, "ISA12_Version").OfType(Identifier).Codes("00501").Build()

	if !f.ValidCode("00501") {
		t.Error("ValidCode(00501) = false, want true")
	}
	if f.ValidCode("00401") {
		t.Error("ValidCode(00401) = true, want false")
	}

	free := At(3, "NM103_LastName").OfType(String).Build()
	if !free.ValidCode("anything") {
		t.Error("field with no code table: ValidCode = false, want true unconditionally")
	}
}

func TestBuilderChaining(t *testing.T) {
	f := At(1, "EB01").OfType(Identifier).Required().Length(1, 2).Codes("1", "2").Build()

	if f.Position != 1 || f.Name != "EB01" || f.Type != Identifier || !f.Required {
		t.Fatalf("Build() = %+v, unexpected basic fields", f)
	}
	if f.MinLength != 1 || f.MaxLength != 2 {
		t.Errorf("Length bounds = (%d,%d), want (1,2)", f.MinLength, f.MaxLength)
	}
	if len(f.Codes) != 2 {
		t.Errorf("Codes = %v, want 2 entries", f.Codes)
	}
}

func TestBuilderPattern(t *testing.T) {
	f := At(9, "ISA09_Date").OfType(String).Pattern(`^\d{6}$`).Build()
	if f.Pattern == nil {
		t.Fatal("Pattern() did not set a compiled regexp")
	}
	if !f.Pattern.MatchString("210101") {
		t.Error("pattern should match a 6-digit date")
	}
	if f.Pattern.MatchString("21-01-01") {
		t.Error("pattern should reject a non-digit date")
	}
}
