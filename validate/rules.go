package validate

import (
	"fmt"

	"github.com/edihub/x12/bind"
	"github.com/edihub/x12/model"
	"github.com/edihub/x12/x12"
)

// NM1EntityConsistency flags an NM1 segment declaring a non-person entity
// (NM102 "2") that still carries person-name fields (NM104 first name,
// NM105 middle name) — those fields have no meaning for an organization.
func NM1EntityConsistency() SegmentRule {
	return func(seg x12.Segment) []x12.Diagnostic {
		if seg.ID != "NM1" {
			return nil
		}
		entityType := seg.At(2).String()
		if entityType != "2" {
			return nil
		}
		var diags []x12.Diagnostic
		if !seg.At(4).Empty() {
			diags = append(diags, x12.Diagnostic{
				Severity: x12.SeverityError, Kind: x12.KindSegment, Location: seg.Loc(4),
				Message: "first name is not valid for a non-person entity (NM102=2)", Rule: "nm1-entity-consistency",
			})
		}
		if !seg.At(5).Empty() {
			diags = append(diags, x12.Diagnostic{
				Severity: x12.SeverityError, Kind: x12.KindSegment, Location: seg.Loc(5),
				Message: "middle name is not valid for a non-person entity (NM102=2)", Rule: "nm1-entity-consistency",
			})
		}
		return diags
	}
}

// NoDuplicateREFQualifiers flags a loop instance carrying more than one
// REF segment with the same REF01 qualifier — a trading partner loop
// should reference each identifier type at most once per loop instance.
func NoDuplicateREFQualifiers() LoopRule {
	return func(rec *model.LoopRecord) []x12.Diagnostic {
		seen := make(map[string]bool)
		var diags []x12.Diagnostic
		for _, ref := range rec.SegmentsByID("REF") {
			q := ref.At(1).String()
			if q == "" {
				continue
			}
			if seen[q] {
				diags = append(diags, x12.Diagnostic{
					Severity: x12.SeverityError, Kind: x12.KindLoop, Location: ref.Loc(1),
					Message: fmt.Sprintf("duplicate REF qualifier %q within loop %s", q, rec.LoopID),
					Rule:    "no-duplicate-ref",
				})
			}
			seen[q] = true
		}
		return diags
	}
}

// HLHierarchyValid checks that every HL segment's HL02 parent pointer (when
// present) refers to an HL01 identifier that occurred earlier in the
// transaction set. Segments are walked in wire order via root.AllSegments,
// so "earlier" here means "earlier in the interchange", matching the rule
// that an HL segment's parent must already have been introduced.
func HLHierarchyValid() TransactionRule {
	return func(root *model.LoopRecord, _ int) []x12.Diagnostic {
		var diags []x12.Diagnostic
		seen := make(map[string]bool)
		for _, seg := range root.AllSegments() {
			if seg.ID != "HL" {
				continue
			}
			id := seg.At(1).String()
			parent := seg.At(2).String()
			if parent != "" && !seen[parent] {
				diags = append(diags, x12.Diagnostic{
					Severity: x12.SeverityError, Kind: x12.KindTransaction, Location: seg.Loc(2),
					Message: fmt.Sprintf("HL %s declares parent %s which has not occurred yet", id, parent),
					Rule:    "hl-hierarchy",
				})
			}
			seen[id] = true
		}
		return diags
	}
}

// SegmentCountMatches checks that the transaction's SE01 declared segment
// count equals the number of segments actually read between ST and SE
// inclusive. Per spec §9's resolution of the open question on ordering: all
// other diagnostics for this transaction are reported before this one, so
// this rule should be registered last in a Validator's transaction rules.
func SegmentCountMatches() TransactionRule {
	return func(root *model.LoopRecord, segmentCount int) []x12.Diagnostic {
		se, ok := root.Segment("SE")
		if !ok {
			return []x12.Diagnostic{{
				Severity: x12.SeverityFatal, Kind: x12.KindTransaction,
				Message: "transaction set has no SE segment", Rule: "se-count",
			}}
		}
		declared, ok := bind.Int(se, 1)
		if !ok {
			return []x12.Diagnostic{{
				Severity: x12.SeverityError, Kind: x12.KindTransaction, Location: se.Loc(1),
				Message: "SE01 segment count is not a valid integer", Rule: "se-count",
			}}
		}
		if declared != segmentCount {
			return []x12.Diagnostic{{
				Severity: x12.SeverityError, Kind: x12.KindTransaction, Location: se.Loc(1),
				Message: fmt.Sprintf("SE01 declares %d segments but %d were read", declared, segmentCount),
				Rule:    "se-count",
			}}
		}
		return nil
	}
}
