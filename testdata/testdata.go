// Package testdata provides embedded X12 005010 interchange fixtures for
// testing this module, mirroring golevel7v2's own testdata package: a
// handful of well-formed worked examples plus a malformed/ directory of
// inputs that should fail at a specific, named stage of the pipeline.
package testdata

import (
	"embed"
	"fmt"
)

//go:embed *.edi malformed/*.edi
var FS embed.FS

// Well-formed interchange file names.
const (
	FileEligibility270Request  = "eligibility_270_request.edi"
	FileEligibility271Response = "eligibility_271_response.edi"
	FileClaimStatus276Request  = "claim_status_276_request.edi"
	FileClaimStatus277Response = "claim_status_277_response.edi"
)

// Malformed file names, one per failure mode this module is expected to
// catch.
const (
	FileShortISA          = "malformed/short_isa.edi"
	FileNotISAPrefix      = "malformed/not_isa_prefix.edi"
	FileBadSECount        = "malformed/bad_se_count.edi"
	FileDuplicateREF      = "malformed/duplicate_ref.edi"
	FileNM1MixedEntity    = "malformed/nm1_mixed_entity.edi"
	FileUnschemaSegment   = "malformed/unschema_segment.edi"
	FileImplicitLoopOrder = "malformed/implicit_loop_order.edi"
)

// LoadEligibility270Request loads a well-formed 270 eligibility inquiry:
// one subscriber, no dependent, one EQ service-type inquiry.
func LoadEligibility270Request() ([]byte, error) {
	return LoadFile(FileEligibility270Request)
}

// LoadEligibility271Response loads the 271 response to
// LoadEligibility270Request, with one EB benefit line.
func LoadEligibility271Response() ([]byte, error) {
	return LoadFile(FileEligibility271Response)
}

// LoadClaimStatus276Request loads a well-formed 276 claim status inquiry.
func LoadClaimStatus276Request() ([]byte, error) {
	return LoadFile(FileClaimStatus276Request)
}

// LoadClaimStatus277Response loads the 277 response to
// LoadClaimStatus276Request, with one STC status line.
func LoadClaimStatus277Response() ([]byte, error) {
	return LoadFile(FileClaimStatus277Response)
}

// LoadShortISA loads an interchange shorter than the fixed 106-byte ISA
// segment, expected to fail delimiter detection with x12.ErrShortISA.
func LoadShortISA() ([]byte, error) {
	return LoadFile(FileShortISA)
}

// LoadNotISAPrefix loads a 106-byte opening segment that is not ISA,
// expected to fail with x12.ErrNotISASegment.
func LoadNotISAPrefix() ([]byte, error) {
	return LoadFile(FileNotISAPrefix)
}

// LoadBadSECount loads an otherwise well-formed 270 whose SE01 declared
// segment count does not match the segments actually present, expected to
// produce a "se-count" Diagnostic rather than a parse failure.
func LoadBadSECount() ([]byte, error) {
	return LoadFile(FileBadSECount)
}

// LoadDuplicateREF loads a 270 whose subscriber loop carries two REF
// segments with the same qualifier, expected to produce a
// "no-duplicate-ref" Diagnostic.
func LoadDuplicateREF() ([]byte, error) {
	return LoadFile(FileDuplicateREF)
}

// LoadNM1MixedEntity loads a 270 whose payer NM1 declares a non-person
// entity (NM102=2) but still carries a first name, expected to produce an
// "nm1-entity-consistency" Diagnostic.
func LoadNM1MixedEntity() ([]byte, error) {
	return LoadFile(FileNM1MixedEntity)
}

// LoadUnschemaSegment loads a 270 with an MSG segment spliced into the
// payer loop (2100A), which declares no slot for MSG, expected to produce
// a "loop-membership" Diagnostic (spec §4.5 edge case (a)) rather than a
// parse failure.
func LoadUnschemaSegment() ([]byte, error) {
	return LoadFile(FileUnschemaSegment)
}

// LoadImplicitLoopOrder loads a 270 with the subscriber-level HL(22)
// segment removed, so the following NM1(IL) opens 2100C through an
// implicitly-synthesized 2000C that never saw its own HL trigger,
// expected to produce an "unexpected-segment-order" Diagnostic (spec §4.5
// edge case (b)) rather than a parse failure.
func LoadImplicitLoopOrder() ([]byte, error) {
	return LoadFile(FileImplicitLoopOrder)
}

// LoadFile loads any embedded fixture by name.
func LoadFile(name string) ([]byte, error) {
	data, err := FS.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("loading test fixture %s: %w", name, err)
	}
	return data, nil
}

// MustLoad loads an embedded fixture and panics on error. Useful for test
// setup where a missing fixture should halt the test immediately.
func MustLoad(name string) []byte {
	data, err := LoadFile(name)
	if err != nil {
		panic(err)
	}
	return data
}
