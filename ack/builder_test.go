package ack

import (
	"testing"
	"time"

	"github.com/edihub/x12/x12"
)

func fixedBuilder() *Builder {
	return NewBuilder(
		WithTimeFunc(func() time.Time { return time.Date(2026, 7, 31, 12, 0, 0, 0, time.UTC) }),
		WithControlIDFunc(func() string { return "000000001" }),
	)
}

func TestAcceptBuildsAACode(t *testing.T) {
	b := fixedBuilder()
	ic := b.Accept(Input{FunctionalIDCode: "HS", GroupControlNumber: "1", TransactionSetCode: "270", TransactionControlNum: "0001"})

	ik5, ok := ic.Segment("IK5")
	if !ok || ik5.At(1).String() != "A" {
		t.Fatalf("Accept: IK5 = %+v, want code A", ik5)
	}
	ak9, ok := ic.Segment("AK9")
	if !ok || ak9.At(1).String() != "A" {
		t.Fatalf("Accept: AK9 = %+v, want code A", ak9)
	}
}

func TestAcknowledgeRejectsOnError(t *testing.T) {
	b := fixedBuilder()
	report := &x12.Report{}
	report.Add(x12.Diagnostic{Severity: x12.SeverityError, Kind: x12.KindShape, Rule: "required",
		Location: x12.Location{Segment: "NM1", SegmentIndex: 3, Element: 1}})

	ic := b.Acknowledge(Input{
		FunctionalIDCode: "HS", GroupControlNumber: "1",
		TransactionSetCode: "270", TransactionControlNum: "0001",
		Report: report,
	})

	ik5, ok := ic.Segment("IK5")
	if !ok || ik5.At(1).String() != "R" {
		t.Fatalf("Acknowledge(error report): IK5 = %+v, want code R", ik5)
	}

	ik4s := ic.SegmentsByID("IK4")
	if len(ik4s) != 1 || ik4s[0].At(2).String() != "1" {
		t.Fatalf("Acknowledge: IK4 = %+v, want one entry with code 1 (required)", ik4s)
	}
}

func TestAcknowledgeAcceptsWithErrorsOnWarningOnly(t *testing.T) {
	b := fixedBuilder()
	report := &x12.Report{}
	report.Add(x12.Diagnostic{Severity: x12.SeverityWarning, Kind: x12.KindLoop, Rule: "no-duplicate-ref"})

	ic := b.Acknowledge(Input{TransactionSetCode: "271", Report: report})

	ik5, _ := ic.Segment("IK5")
	if ik5.At(1).String() != "E" {
		t.Errorf("Acknowledge(warning-only report): IK5 = %q, want E", ik5.At(1))
	}
}

func TestAcknowledgeNilReportAccepts(t *testing.T) {
	b := fixedBuilder()
	ic := b.Acknowledge(Input{TransactionSetCode: "270"})
	ik5, _ := ic.Segment("IK5")
	if ik5.At(1).String() != "A" {
		t.Errorf("Acknowledge(nil report): IK5 = %q, want A", ik5.At(1))
	}
}

func TestBuildSEDeclaresCorrectSegmentCount(t *testing.T) {
	b := fixedBuilder()
	ic := b.Accept(Input{FunctionalIDCode: "HS", GroupControlNumber: "1", TransactionSetCode: "270", TransactionControlNum: "0001"})

	se, ok := ic.Segment("SE")
	if !ok {
		t.Fatal("no SE segment produced")
	}
	if got, want := se.At(1).String(), "6"; got != want {
		t.Errorf("SE01 = %q, want %q (ST,AK1,AK2,IK5,AK9,SE)", got, want)
	}
}
