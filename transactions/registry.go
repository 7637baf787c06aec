package transactions

import "github.com/edihub/x12/schema"

// StructuralCodes lists the transaction sets this repo recognizes but does
// not give a bespoke loop tree, dispatch table, or typed struct layer to:
// 278 (services review), 820 (premium payment), 834 (enrollment), 835
// (remittance advice), and the three 837 claim variants (professional,
// institutional, dental). Each still gets the shared checks (ST/SE and
// other in-transaction shape checks, SE segment-count check, HL hierarchy validity
// where HL segments appear at all) via schema.Default and validate.Default
// — what it does not get is a per-loop schema.Loop tree or dispatch.Table,
// so Parse for these codes returns a flat segment list under the
// transaction-set root rather than a reconstructed loop tree. See
// DESIGN.md for why 270/271 and 276/277 were chosen as the two
// fully-modeled transaction sets and the rest scoped this way.
var StructuralCodes = []string{
	"278",  // health care services review
	"820",  // payroll deducted and other group premium payment
	"834",  // benefit enrollment and maintenance
	"835",  // health care claim payment/advice
	"837P", // health care claim, professional
	"837I", // health care claim, institutional
	"837D", // health care claim, dental
}

// IsStructural reports whether code is one of the structurally-registered
// transaction sets rather than 270/271 or 276/277.
func IsStructural(code string) bool {
	for _, c := range StructuralCodes {
		if c == code {
			return true
		}
	}
	return false
}

// StructuralRegistry returns the segment-schema registry for a
// structurally-registered transaction set. Every one of them is built from
// schema.Default alone: none of their transaction-specific segments (SV1/
// SV2/CLM/HI/CAS/RMR/INS, etc.) get their own declared shape in this port,
// so those segments pass through shape checking unexamined, the same way
// an undeclared trailing element does within a segment schema.Default does
// cover.
func StructuralRegistry() *schema.Registry {
	return schema.Default()
}

// SupportedCodes lists every transaction set code Parse recognizes, the
// two fully-modeled ones first.
func SupportedCodes() []string {
	codes := []string{Eligibility270, Eligibility271, ClaimStatus276, ClaimStatus277}
	return append(codes, StructuralCodes...)
}
