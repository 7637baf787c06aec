package transactions

import (
	"strings"
	"time"

	"github.com/edihub/x12/bind"
	"github.com/edihub/x12/dispatch"
	"github.com/edihub/x12/schema"
	"github.com/edihub/x12/x12"
)

// ClaimStatus276 is the transaction code for a claim status inquiry; 277
// is its response, carried in the same loop shape with STC populated by
// the payer.
const (
	ClaimStatus276 = "276"
	ClaimStatus277 = "277"
)

// claimStatusSegments extends schema.Default with the segment shapes
// specific to 276/277: claim status tracking number (TRN) is already in
// the base registry, leaving STC (health care claim status), QTY
// (quantity, used for service-line counts in a 277 response) and AMT
// (monetary amount) to add here.
func claimStatusSegments() *schema.Registry {
	r := schema.NewRegistry()
	r.Register(schema.NewSegment("STC",
		schema.At(1, "STC01_HealthCareClaimStatus").OfType(schema.String).Required().Build(),
		schema.At(2, "STC02_StatusInfoEffectiveDate").OfType(schema.Date).Build(),
		schema.At(3, "STC03_ActionCode").OfType(schema.Identifier).Build(),
		schema.At(4, "STC04_MonetaryAmount").OfType(schema.Decimal).Build(),
		schema.At(5, "STC05_TotalClaimChargeAmount").OfType(schema.Decimal).Build(),
	))
	r.Register(schema.NewSegment("QTY",
		schema.At(1, "QTY01_QuantityQualifier").OfType(schema.Identifier).Build(),
		schema.At(2, "QTY02_Quantity").OfType(schema.Decimal).Build(),
	))
	r.Register(schema.NewSegment("AMT",
		schema.At(1, "AMT01_AmountQualifierCode").OfType(schema.Identifier).Build(),
		schema.At(2, "AMT02_MonetaryAmount").OfType(schema.Decimal).Required().Build(),
	))

	// Within the claim status tracking loop (2200D), STC01 carries the
	// actual payer-assigned health care claim status category code and
	// should be checked against the real code table; everywhere else STC
	// appears it binds against the loose free-text base schema above
	// (spec §4.3 loop-local override, demonstrated here since 2200D is the
	// only loop this port gives STC a meaningfully tighter shape in). STC01
	// is itself a composite (category:status:entity, e.g. "A1:20:PR") that
	// this port's Field model has no native way to split at bind time, so
	// the category code is checked with a leading-component Pattern rather
	// than Codes, which would compare against the whole composite string.
	categoryPattern := "^(" + strings.Join(schema.ClaimStatusCategoryCodes, "|") + "):"
	r.RegisterOverride("2200D", "STC", schema.Override{
		FieldName: "STC01_HealthCareClaimStatus",
		Tighter: schema.At(1, "STC01_HealthCareClaimStatus").OfType(schema.Identifier).Required().
			Pattern(categoryPattern).Build(),
	})
	return schema.Default().Merge(r)
}

// ClaimStatusRegistry is the merged segment-schema registry for 276/277.
func ClaimStatusRegistry() *schema.Registry {
	return claimStatusSegments()
}

// ClaimStatusLoopTree builds the 276/277 loop hierarchy: information
// source, information receiver, provider of service, and patient event,
// the last carrying a TRN-triggered claim status tracking loop. Unlike
// 270/271's EB ambiguity, 276/277's status loop is unambiguous once the
// patient event loop is open, so it dispatches on an absolute Target
// rather than RelativeToCurrent.
func ClaimStatusLoopTree() *schema.Loop {
	loop2200D := schema.NewLoop("2200D", "TRN", true, "TRN", "STC", "REF", "DTP", "AMT", "QTY")
	loop2100D := schema.NewLoop("2100D", "NM1", false, "NM1", "REF", "N3", "N4", "DMG").
		WithChildren(loop2200D)
	loop2000D := schema.NewLoop("2000D", "HL", false, "HL").WithChildren(loop2100D)

	loop2100C := schema.NewLoop("2100C", "NM1", false, "NM1", "REF", "N3", "N4")
	loop2000C := schema.NewLoop("2000C", "HL", false, "HL").WithChildren(loop2100C)

	loop2100B := schema.NewLoop("2100B", "NM1", false, "NM1", "REF", "N3", "N4")
	loop2000B := schema.NewLoop("2000B", "HL", false, "HL").WithChildren(loop2100B)

	loop2100A := schema.NewLoop("2100A", "NM1", false, "NM1", "REF", "N3", "N4")
	loop2000A := schema.NewLoop("2000A", "HL", false, "HL").WithChildren(loop2100A)

	root := schema.NewLoop(ClaimStatus276, "ST", false, "ST", "BHT", "SE")
	root.WithChildren(loop2000A, loop2000B, loop2000C, loop2000D)
	return root
}

// claimStatusNM1Codes maps an NM1's entity identifier code (NM101) to the
// 2100-level loop it opens.
var claimStatusNM1Codes = map[string]string{
	"PR": "2100A",
	"41": "2100B",
	"1P": "2100C",
	"IL": "2100D",
}

// ClaimStatusDispatchTable builds the dispatch table shared by 276 and
// 277 interchanges.
func ClaimStatusDispatchTable() *dispatch.Table {
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
	for code, target := range claimStatusNM1Codes {
		t.MustAdd(dispatch.Rule{
			SegmentID:   "NM1",
			Conditions:  []dispatch.FieldCondition{{Position: 1, Equals: code}},
			Target:      target,
			NewInstance: true,
		})
	}
	t.MustAdd(dispatch.Rule{SegmentID: "TRN", Target: "2200D", NewInstance: true})
	return t
}

// ClaimStatusTrace is the typed accessor for the TRN segment that opens a
// 2200D claim status tracking loop.
type ClaimStatusTrace struct {
	TraceTypeCode string `x12:"1"`
	ReferenceID   string `x12:"2"`
}

// BindClaimStatusTrace populates a ClaimStatusTrace from a TRN segment.
func BindClaimStatusTrace(seg x12.Segment) (ClaimStatusTrace, error) {
	var t ClaimStatusTrace
	err := bind.Segment(seg, &t)
	return t, err
}

// ClaimStatusResponse is the typed accessor for an STC segment: the
// payer's status answer for one claim in a 277 response.
type ClaimStatusResponse struct {
	HealthCareClaimStatus string    `x12:"1"`
	EffectiveDate         time.Time `x12:"2"`
	ActionCode            string    `x12:"3"`
	TotalChargeAmount     float64   `x12:"5"`
}

// BindClaimStatusResponse populates a ClaimStatusResponse from an STC
// segment.
func BindClaimStatusResponse(seg x12.Segment) (ClaimStatusResponse, error) {
	var s ClaimStatusResponse
	err := bind.Segment(seg, &s)
	return s, err
}
