// Package transactions provides typed, struct-tag-bound accessors and
// dispatch/schema/loop definitions for the transaction sets this repo
// implements in full: 270/271 (eligibility, implementation guide
// 005010X279) and 276/277 (claim status, 005010X212) — the two worked
// examples, 270/271 being the scenario spec.md §8 itself walks through.
// The remaining seven supported transaction codes are registered
// structurally in registry.go (the shared segment schemas of
// schema.Default only, with no loop tree, so their segments are parsed
// flat), without a bespoke typed struct layer; see DESIGN.md for why that
// is a reasonable
// cut line.
package transactions

import (
	"github.com/edihub/x12/bind"
	"github.com/edihub/x12/dispatch"
	"github.com/edihub/x12/schema"
	"github.com/edihub/x12/x12"
)

// Eligibility270 is the transaction code for an eligibility inquiry; 271
// is its response, carried in the same loop shape plus the EB benefit
// loops that only a response populates.
const (
	Eligibility270 = "270"
	Eligibility271 = "271"
)

// eligibilitySegments extends schema.Default with the segment shapes
// specific to 270/271: service-type inquiry (EQ), benefit information
// (EB), additional eligibility/benefit info (III), and free-form
// messaging (MSG).
func eligibilitySegments() *schema.Registry {
	r := schema.NewRegistry()
	r.Register(schema.NewSegment("EQ",
		schema.At(1, "EQ01_ServiceTypeCode").OfType(schema.Identifier).
			Codes(schema.EligibilityServiceTypeCodes...).Build(),
	))
	r.Register(schema.NewSegment("EB",
		schema.At(1, "EB01_EligibilityInfoCode").OfType(schema.Identifier).Required().
			Codes(schema.EligibilityBenefitInformationCodes...).Build(),
		schema.At(2, "EB02_CoverageLevelCode").OfType(schema.Identifier).Build(),
		schema.At(3, "EB03_ServiceTypeCode").OfType(schema.Identifier).
			Codes(schema.EligibilityServiceTypeCodes...).Build(),
		schema.At(4, "EB04_InsuranceTypeCode").OfType(schema.Identifier).Build(),
		schema.At(5, "EB05_PlanCoverageDescription").OfType(schema.String).Build(),
		schema.At(6, "EB06_TimePeriodQualifier").OfType(schema.Identifier).Build(),
		schema.At(7, "EB07_MonetaryAmount").OfType(schema.Decimal).Build(),
		schema.At(8, "EB08_Percent").OfType(schema.Decimal).Build(),
	))
	r.Register(schema.NewSegment("III",
		schema.At(1, "III01_CodeListQualifier").OfType(schema.Identifier).Build(),
		schema.At(2, "III02_IndustryCode").OfType(schema.String).Build(),
	))
	r.Register(schema.NewSegment("MSG",
		schema.At(1, "MSG01_FreeFormText").OfType(schema.String).Length(1, 264).Build(),
	))
	return schema.Default().Merge(r)
}

// EligibilityRegistry is the merged segment-schema registry for 270/271.
func EligibilityRegistry() *schema.Registry {
	return eligibilitySegments()
}

// EligibilityLoopTree builds the 270/271 loop hierarchy: information
// source, information receiver, subscriber, and (optional, repeatable)
// dependent, each an HL-triggered loop with a name loop nested beneath it;
// subscriber and dependent additionally carry an EB-triggered benefit loop
// once a 271 response populates it. NM1 qualifier codes are a
// representative subset chosen to keep the role-to-loop mapping
// unambiguous for this port, not the full 005010X279 code list for each
// role (see DESIGN.md).
func EligibilityLoopTree() *schema.Loop {
	// EQ (service-type inquiry) has no dispatch rule of its own — a 270
	// request carries it directly in the subscriber/dependent loop, never
	// opening a nested 2110C/2110D instance the way a 271 response's EB
	// does, so it is declared as a direct member of 2100C/2100D rather than
	// of the benefit loop beneath them.
	loop2110C := schema.NewLoop("2110C", "EB", true, "EB", "REF", "DTP", "III", "MSG", "AMT", "QTY", "PER")
	loop2100C := schema.NewLoop("2100C", "NM1", false, "NM1", "N3", "N4", "DMG", "DTP", "REF", "PER", "TRN", "EQ").
		WithChildren(loop2110C)
	loop2000C := schema.NewLoop("2000C", "HL", false, "HL").WithChildren(loop2100C)

	loop2110D := schema.NewLoop("2110D", "EB", true, "EB", "REF", "DTP", "III", "MSG", "AMT", "QTY", "PER")
	loop2100D := schema.NewLoop("2100D", "NM1", false, "NM1", "N3", "N4", "DMG", "DTP", "REF", "PER", "TRN", "EQ").
		WithChildren(loop2110D)
	loop2000D := schema.NewLoop("2000D", "HL", true, "HL").WithChildren(loop2100D)

	loop2100B := schema.NewLoop("2100B", "NM1", false, "NM1", "N3", "N4", "PER", "REF")
	loop2000B := schema.NewLoop("2000B", "HL", false, "HL").WithChildren(loop2100B)

	loop2100A := schema.NewLoop("2100A", "NM1", false, "NM1", "N3", "N4", "PER", "REF")
	loop2000A := schema.NewLoop("2000A", "HL", false, "HL").WithChildren(loop2100A)

	root := schema.NewLoop(Eligibility270, "ST", false, "ST", "BHT", "SE")
	root.WithChildren(loop2000A, loop2000B, loop2000C, loop2000D)
	return root
}

// eligibilityNM1Codes maps an NM1's entity identifier code (NM101) to the
// 2100-level loop it opens.
var eligibilityNM1Codes = map[string]string{
	"PR": "2100A",
	"1P": "2100B",
	"36": "2100B",
	"41": "2100B",
	"IL": "2100C",
	"QC": "2100D",
}

// EligibilityDispatchTable builds the dispatch table shared by 270 and
// 271 interchanges: a response's EB loops simply never trigger when
// parsing a request.
func EligibilityDispatchTable() *dispatch.Table {
	t := dispatch.NewTable()
	levelTargets := map[string]string{"20": "2000A", "21": "2000B", "22": "2000C", "23": "2000D"}
	for level, target := range levelTargets {
		t.MustAdd(dispatch.Rule{
			SegmentID:   "HL",
			Conditions:  []dispatch.FieldCondition{{Position: 3, Equals: level}},
			Target:      target,
			NewInstance: true,
		})
	}
	for code, target := range eligibilityNM1Codes {
		t.MustAdd(dispatch.Rule{
			SegmentID:   "NM1",
			Conditions:  []dispatch.FieldCondition{{Position: 1, Equals: code}},
			Target:      target,
			NewInstance: true,
		})
	}
	t.MustAdd(dispatch.Rule{SegmentID: "EB", RelativeToCurrent: true, NewInstance: true})
	return t
}

// Subscriber is the typed accessor for a 2100C NM1 segment: the insured
// party an eligibility inquiry or response concerns.
type Subscriber struct {
	EntityIDCode    string `x12:"1"`
	EntityTypeQual  string `x12:"2"`
	LastName        string `x12:"3"`
	FirstName       string `x12:"4"`
	MiddleName      string `x12:"5"`
	IDCodeQualifier string `x12:"8"`
	IDCode          string `x12:"9"`
}

// BindSubscriber populates a Subscriber from an NM1 segment.
func BindSubscriber(seg x12.Segment) (Subscriber, error) {
	var s Subscriber
	err := bind.Segment(seg, &s)
	return s, err
}

// EligibilityInquiry is the typed accessor for an EQ segment: which
// service type a 270 is asking about.
type EligibilityInquiry struct {
	ServiceTypeCode string `x12:"1"`
}

// BindEligibilityInquiry populates an EligibilityInquiry from an EQ
// segment.
func BindEligibilityInquiry(seg x12.Segment) (EligibilityInquiry, error) {
	var e EligibilityInquiry
	err := bind.Segment(seg, &e)
	return e, err
}

// EligibilityBenefit is the typed accessor for an EB segment: one line of
// benefit information in a 271 response.
type EligibilityBenefit struct {
	InfoCode        string  `x12:"1"`
	CoverageLevel   string  `x12:"2"`
	ServiceTypeCode string  `x12:"3"`
	InsuranceType   string  `x12:"4"`
	PlanDescription string  `x12:"5"`
	TimePeriodQual  string  `x12:"6"`
	MonetaryAmount  float64 `x12:"7"`
	Percent         float64 `x12:"8"`
}

// BindEligibilityBenefit populates an EligibilityBenefit from an EB
// segment.
func BindEligibilityBenefit(seg x12.Segment) (EligibilityBenefit, error) {
	var b EligibilityBenefit
	err := bind.Segment(seg, &b)
	return b, err
}
