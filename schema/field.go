// Package schema declares the shape of X12 segments and elements: which
// elements a segment carries, their semantic type, length bounds, and code
// tables. Schema is purely declarative — it describes what a well-formed
// segment looks like but performs no coercion or validation itself; that is
// the bind and validate packages' job, both built on top of this package.
package schema

import "regexp"

// Type is the semantic data type an element's raw text is expected to
// coerce to.
type Type int

const (
	// String is free-form text (AN in X12 data element dictionaries).
	String Type = iota
	// Identifier is a code value, generally checked against a Codes list.
	Identifier
	// Numeric is an integer (N0).
	Numeric
	// Decimal is a fixed- or implied-decimal number (R, N2, etc).
	Decimal
	// Date is an 8-digit CCYYMMDD date (DT).
	Date
	// Time is an HHMM, HHMMSS, or HHMMSSDD time (TM).
	Time
	// Binary is an opaque byte payload, not a human string (B).
	Binary
)

// String returns the conventional short name of the type.
func (t Type) String() string {
	switch t {
	case String:
		return "AN"
	case Identifier:
		return "ID"
	case Numeric:
		return "N0"
	case Decimal:
		return "R"
	case Date:
		return "DT"
	case Time:
		return "TM"
	case Binary:
		return "B"
	default:
		return "UNKNOWN"
	}
}

// Field declares the shape of a single element within a segment.
type Field struct {
	Position  int    // 1-based element position within the segment
	Name      string // short mnemonic, e.g. "NM101"
	Type      Type
	Required  bool
	MinLength int
	MaxLength int
	Codes     []string       // when non-empty, the value must be one of these
	Pattern   *regexp.Regexp // when non-nil, the value must match
}

// ValidCode reports whether value is present in the field's code table.
// Returns true unconditionally when the field has no code table.
func (f Field) ValidCode(value string) bool {
	if len(f.Codes) == 0 {
		return true
	}
	for _, c := range f.Codes {
		if c == value {
			return true
		}
	}
	return false
}
