package bind

import (
	"testing"
	"time"

	"github.com/edihub/x12/x12"
)

func TestIntDecimalDateClockTime(t *testing.T) {
	seg := x12.NewSegment("EB", 0, "1", "", "", "", "", "", "125.50", "80")

	if n, ok := Int(seg, 8); !ok || n != 80 {
		t.Errorf("Int(8) = (%d, %v), want (80, true)", n, ok)
	}
	if f, ok := Decimal(seg, 7); !ok || f != 125.50 {
		t.Errorf("Decimal(7) = (%v, %v), want (125.50, true)", f, ok)
	}
	if _, ok := Int(seg, 2); ok {
		t.Error("Int on an empty element: want false")
	}

	dateSeg := x12.NewSegment("DTP", 0, "291", "D8", "20210615")
	d, ok := Date(dateSeg, 3)
	if !ok || d.Year() != 2021 || d.Month() != time.June || d.Day() != 15 {
		t.Errorf("Date(3) = (%v, %v), want 2021-06-15", d, ok)
	}

	clockSeg := x12.NewSegment("ISA", 0, "1253")
	c, ok := ClockTime(clockSeg, 1)
	if !ok || c.Hour() != 12 || c.Minute() != 53 {
		t.Errorf("ClockTime(1) = (%v, %v), want 12:53", c, ok)
	}
}

func TestSegmentBindsTaggedStruct(t *testing.T) {
	type nm1 struct {
		EntityIDCode string `x12:"1"`
		LastName     string `x12:"3"`
		Untagged     string
	}

	seg := x12.NewSegment("NM1", 0, "IL", "1", "DOE", "JANE")
	var v nm1
	if err := Segment(seg, &v); err != nil {
		t.Fatalf("Segment: %v", err)
	}
	if v.EntityIDCode != "IL" || v.LastName != "DOE" {
		t.Errorf("bound struct = %+v, want EntityIDCode=IL LastName=DOE", v)
	}
	if v.Untagged != "" {
		t.Errorf("untagged field was populated: %+v", v)
	}
}

func TestSegmentRejectsNonPointer(t *testing.T) {
	type s struct {
		X string `x12:"1"`
	}
	seg := x12.NewSegment("X", 0, "a")
	if err := Segment(seg, s{}); err == nil {
		t.Fatal("Segment with a non-pointer target: want error, got nil")
	}
}

func TestSegmentBindsTimeField(t *testing.T) {
	type dtp struct {
		Date time.Time `x12:"2"`
	}
	seg := x12.NewSegment("DTP", 0, "291", "20210615")
	var v dtp
	if err := Segment(seg, &v); err != nil {
		t.Fatalf("Segment: %v", err)
	}
	if v.Date.Year() != 2021 {
		t.Errorf("Date = %v, want year 2021", v.Date)
	}
}
